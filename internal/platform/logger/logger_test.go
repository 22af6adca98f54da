package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel(" warning "))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, "error", Error.String())
}

func TestLogger_JSON_MergesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "cat-collector", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("cat created", map[string]any{
		"cat_id": "c-1",
		"":       "ignored",
		"err":    errors.New("boom"),
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "cat created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cat-collector", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "c-1", entry["cat_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
	assert.Contains(t, entry, "ts")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	l.Warn("shown", map[string]any{"k": "v"})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}
