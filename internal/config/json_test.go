// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Studiopipe Authors

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_AllFields(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"version": "1.2.3"},
		"bridge": {"address": "127.0.0.1:8088", "request_timeout": "45s"},
		"workers": {"snapshot_interval": "5s"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:8088", cfg.Bridge.Address)
	assert.Equal(t, 45*time.Second, cfg.Bridge.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Workers.SnapshotInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_PartialFields(t *testing.T) {
	path := writeTempFile(t, `{"bridge": {"address": "localhost:8088"}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8088", cfg.Bridge.Address)
	assert.Zero(t, cfg.Bridge.RequestTimeout)
	assert.Empty(t, cfg.App.Version)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempFile(t, "{not valid json")

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"duration string", `"30s"`, 30 * time.Second},
		{"compound duration string", `"1h30m"`, 90 * time.Minute},
		{"number of nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_InvalidString(t *testing.T) {
	var d Duration
	err := json.Unmarshal([]byte(`"not-a-duration"`), &d)

	require.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(data))
}
