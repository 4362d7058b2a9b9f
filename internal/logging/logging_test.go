// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "warn", Output: &buf, RunID: "run-1"})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "states", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "run_id=run-1")
	assert.Contains(t, out, "states=3")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", JSON: true, Output: &buf})
	require.NoError(t, err)

	log.Debug("loaded", "nodes", 4)

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "loaded", rec["msg"])
	assert.Equal(t, float64(4), rec["nodes"])
	assert.Len(t, rec["run_id"], 12)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "verbose"})
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNewRunID_Unique(t *testing.T) {
	a, b := logging.NewRunID(), logging.NewRunID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
