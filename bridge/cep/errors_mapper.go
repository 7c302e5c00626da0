package cep

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/studiopipe/go-premiere/bridge"
)

// codeStaleHandle is reported by the endpoint when the addressed object
// no longer exists host-side.
const codeStaleHandle = "ESTALE"

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	if resp.StatusCode() >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d: %s", bridge.ErrUnavailable, resp.StatusCode(), body)
	}
	return fmt.Errorf("%w: http %d: %s", bridge.ErrHostFailure, resp.StatusCode(), body)
}

func mapEvalError(e *evalError) error {
	if e.Code == codeStaleHandle {
		return fmt.Errorf("%w: %s", bridge.ErrStaleHandle, e.Message)
	}
	return fmt.Errorf("%w: %s: %s", bridge.ErrHostFailure, e.Code, e.Message)
}
