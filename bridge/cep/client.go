// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

// Package cep implements the [bridge] interfaces over the host's panel
// extension eval endpoint.
//
// The host exposes its scripting engine to extensions through a local
// HTTP endpoint that evaluates one member access or method call per
// request against a handle-addressed object. Objects returned by a call
// are kept alive host-side and referenced by opaque handle strings.
//
// The scripting engine is single-threaded and not reentrant, so every
// call goes through a single client-wide mutex; concurrent callers are
// serialized here rather than in the wrapper layer.
package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/studiopipe/go-premiere/bridge"
	"github.com/studiopipe/go-premiere/internal/config"
	"github.com/studiopipe/go-premiere/internal/logger"
)

const (
	kindGet  = "get"
	kindSet  = "set"
	kindCall = "call"
)

// appHandle addresses the host application object itself.
const appHandle = "app"

// Client talks to the host eval endpoint. Use [Client.App] to obtain
// the bridge entry point.
type Client struct {
	http *resty.Client

	// mu serializes every eval round trip; the host scripting engine
	// cannot run two evaluations at once.
	mu sync.Mutex

	logger *logger.Logger
}

// Dial constructs a Client for the configured bridge endpoint. It
// normalises and validates the base URL from cfg.Address and configures
// the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.Address is empty or cannot be parsed as a
// valid URL. No connection is attempted until the first call.
func Dial(cfg config.Bridge, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &Client{http: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// App returns the bridge entry point backed by this client.
func (c *Client) App() bridge.App {
	return &app{c: c}
}

func (c *Client) eval(ctx context.Context, req evalRequest) (evalResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req.ID = uuid.NewString()

	var out evalResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post("/api/eval")
	if err != nil {
		return evalResponse{}, fmt.Errorf("%w: %v", bridge.ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return evalResponse{}, err
	}
	if out.Error != nil {
		return evalResponse{}, mapEvalError(out.Error)
	}

	c.logger.Debug().
		Str("id", req.ID).
		Str("handle", req.Handle).
		Str("member", req.Member).
		Str("kind", req.Kind).
		Msg("eval")

	return out, nil
}

func (c *Client) get(ctx context.Context, handle, member string) (evalResponse, error) {
	return c.eval(ctx, evalRequest{Handle: handle, Member: member, Kind: kindGet})
}

func (c *Client) set(ctx context.Context, handle, member string, value any) error {
	_, err := c.eval(ctx, evalRequest{Handle: handle, Member: member, Kind: kindSet, Args: []any{value}})
	return err
}

func (c *Client) call(ctx context.Context, handle, member string, args ...any) (evalResponse, error) {
	return c.eval(ctx, evalRequest{Handle: handle, Member: member, Kind: kindCall, Args: args})
}

func (c *Client) getString(ctx context.Context, handle, member string) (string, error) {
	resp, err := c.get(ctx, handle, member)
	if err != nil {
		return "", err
	}
	return decodeString(resp)
}

func (c *Client) getInt(ctx context.Context, handle, member string) (int, error) {
	resp, err := c.get(ctx, handle, member)
	if err != nil {
		return 0, err
	}
	return decodeInt(resp)
}

func (c *Client) getInt64(ctx context.Context, handle, member string) (int64, error) {
	resp, err := c.get(ctx, handle, member)
	if err != nil {
		return 0, err
	}
	return decodeInt64(resp)
}

func (c *Client) callString(ctx context.Context, handle, member string, args ...any) (string, error) {
	resp, err := c.call(ctx, handle, member, args...)
	if err != nil {
		return "", err
	}
	return decodeString(resp)
}

func (c *Client) callBool(ctx context.Context, handle, member string, args ...any) (bool, error) {
	resp, err := c.call(ctx, handle, member, args...)
	if err != nil {
		return false, err
	}
	return decodeBool(resp)
}

func (c *Client) callFloat(ctx context.Context, handle, member string, args ...any) (float64, error) {
	resp, err := c.call(ctx, handle, member, args...)
	if err != nil {
		return 0, err
	}
	return decodeFloat(resp)
}

func decodeString(resp evalResponse) (string, error) {
	var v string
	if err := json.Unmarshal(resp.Result, &v); err != nil {
		return "", fmt.Errorf("decode string result: %w", err)
	}
	return v, nil
}

func decodeInt(resp evalResponse) (int, error) {
	var v int
	if err := json.Unmarshal(resp.Result, &v); err != nil {
		return 0, fmt.Errorf("decode int result: %w", err)
	}
	return v, nil
}

func decodeInt64(resp evalResponse) (int64, error) {
	var v int64
	if err := json.Unmarshal(resp.Result, &v); err != nil {
		return 0, fmt.Errorf("decode int64 result: %w", err)
	}
	return v, nil
}

func decodeBool(resp evalResponse) (bool, error) {
	var v bool
	if err := json.Unmarshal(resp.Result, &v); err != nil {
		return false, fmt.Errorf("decode bool result: %w", err)
	}
	return v, nil
}

func decodeFloat(resp evalResponse) (float64, error) {
	var v float64
	if err := json.Unmarshal(resp.Result, &v); err != nil {
		return 0, fmt.Errorf("decode float result: %w", err)
	}
	return v, nil
}
