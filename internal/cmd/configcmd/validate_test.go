package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

func TestRunValidate_Valid(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	cfg := &config.Config{
		Aliases: map[string]string{"sp": "spoiler"},
		Tags: map[string]config.TagConfig{
			"spoiler": {Open: "<details>", Close: "</details>"},
		},
	}
	require.NoError(t, cfg.Save(configPath))

	var buf bytes.Buffer
	require.NoError(t, runValidate(&buf, configPath, true))

	defaults := len(bbcode.DefaultRegistry().Names())
	out := buf.String()
	assert.Contains(t, out, "✓ Settings valid")
	assert.Contains(t, out, "✓ Tag definitions valid")
	assert.Contains(t, out, "tags and aliases available")
	assert.Contains(t, out, "\n"+strconv.Itoa(defaults+2)+" tags")
}

func TestRunValidate_NoFile(t *testing.T) {
	clearEnv(t)

	var buf bytes.Buffer
	require.NoError(t, runValidate(&buf, filepath.Join(t.TempDir(), "config.yml"), true))
	assert.Contains(t, buf.String(), "✓ Tag definitions valid")
}

func TestRunValidate_InvalidSetting(t *testing.T) {
	clearEnv(t)
	t.Setenv("BBC_OUTPUT", "xml")

	var buf bytes.Buffer
	err := runValidate(&buf, filepath.Join(t.TempDir(), "config.yml"), true)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "✗ Invalid setting")
}

func TestRunValidate_InvalidTags(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	cfg := &config.Config{Aliases: map[string]string{"sp": "missing"}}
	require.NoError(t, cfg.Save(configPath))

	var buf bytes.Buffer
	err := runValidate(&buf, configPath, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, bbcode.ErrInvalidRegistry)
	assert.Contains(t, buf.String(), "✗ Tag definitions rejected")
}

func TestRunValidate_UnreadableFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("aliases: ["), 0600))

	var buf bytes.Buffer
	err := runValidate(&buf, configPath, true)
	require.Error(t, err)
	assert.Contains(t, buf.String(), "bbc init")
}

func TestNewCmdConfig(t *testing.T) {
	cmd := NewCmdConfig()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"show", "validate", "clear"}, names)
}
