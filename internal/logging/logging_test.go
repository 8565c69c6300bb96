package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("1.2.3", "json", false, &buf)

	logger.Warn("test message", "tag", "b")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "Failed to parse JSON: %s", buf.String())

	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "bbc", entry["app"])
	assert.Equal(t, "1.2.3", entry["version"])
	assert.Equal(t, "b", entry["tag"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestSetup_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("dev", "", false, &buf)

	logger.Error("test message")

	output := buf.String()
	assert.Contains(t, output, "msg=\"test message\"")
	assert.Contains(t, output, "app=bbc")
}

func TestSetup_Verbose(t *testing.T) {
	var quiet, loud bytes.Buffer

	Setup("dev", "text", false, &quiet).Debug("stray tag token")
	Setup("dev", "text", true, &loud).Debug("stray tag token")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "stray tag token")
}

func TestSetup_WithAttrsKeepsAppAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("dev", "json", true, &buf).With("command", "render").WithGroup("engine")

	logger.Debug("constraint violation", "parent", "table")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "render", entry["command"])

	group, ok := entry["engine"].(map[string]any)
	require.True(t, ok, "engine group missing: %s", buf.String())
	assert.Equal(t, "table", group["parent"])
	assert.Equal(t, "bbc", group["app"])
}

func TestLogError_Oops(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("dev", "json", false, &buf)

	err := oops.Code("BBCODE_LIMIT_EXCEEDED").With("limit", "nesting depth").Errorf("too deep")
	LogError(logger, "render failed", err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "render failed", entry["msg"])
	assert.Equal(t, "BBCODE_LIMIT_EXCEEDED", entry["code"])

	ctx, ok := entry["context"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "nesting depth", ctx["limit"])
}

func TestLogError_Plain(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("dev", "json", false, &buf)

	LogError(logger, "read failed", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "code")
}
