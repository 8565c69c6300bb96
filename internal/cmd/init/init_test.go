package init

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

func newTestOptions(t *testing.T) (*initOptions, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &initOptions{
		configPath: filepath.Join(t.TempDir(), "bbc", "config.yml"),
		writer:     &buf,
		confirm: func(string) (bool, error) {
			t.Fatal("confirm should not be called")
			return false, nil
		},
		prompt: func(*config.Config) error {
			t.Fatal("prompt should not be called")
			return nil
		},
	}, &buf
}

func TestRunInit_Defaults(t *testing.T) {
	opts, buf := newTestOptions(t)
	opts.defaults = true

	require.NoError(t, runInit(opts))

	cfg, err := config.Load(opts.configPath)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{OutputFormat: "table"}, cfg)
	assert.Contains(t, buf.String(), "Configuration saved to "+opts.configPath)
}

func TestRunInit_Prompt(t *testing.T) {
	opts, _ := newTestOptions(t)
	opts.prompt = func(cfg *config.Config) error {
		cfg.RemoveMisalignedTags = true
		cfg.Sanitize = true
		cfg.OutputFormat = "json"
		cfg.MaxDepth = 32
		return nil
	}

	require.NoError(t, runInit(opts))

	cfg, err := config.Load(opts.configPath)
	require.NoError(t, err)
	assert.True(t, cfg.RemoveMisalignedTags)
	assert.True(t, cfg.Sanitize)
	assert.False(t, cfg.KeepNewlines)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 32, cfg.MaxDepth)
}

func TestRunInit_PromptError(t *testing.T) {
	opts, _ := newTestOptions(t)
	opts.prompt = func(*config.Config) error { return errors.New("user aborted") }

	err := runInit(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user aborted")
}

func TestRunInit_ExistingConfig(t *testing.T) {
	existing := &config.Config{
		OutputFormat: "plain",
		Aliases:      map[string]string{"sp": "spoiler"},
		Tags: map[string]config.TagConfig{
			"spoiler": {Open: "<details>", Close: "</details>"},
		},
	}

	t.Run("declined", func(t *testing.T) {
		opts, buf := newTestOptions(t)
		require.NoError(t, existing.Save(opts.configPath))
		opts.confirm = func(string) (bool, error) { return false, nil }

		require.NoError(t, runInit(opts))
		assert.Contains(t, buf.String(), "Initialization cancelled.")
	})

	t.Run("confirmed keeps custom tags", func(t *testing.T) {
		opts, _ := newTestOptions(t)
		require.NoError(t, existing.Save(opts.configPath))
		var asked string
		opts.confirm = func(path string) (bool, error) {
			asked = path
			return true, nil
		}
		opts.prompt = func(cfg *config.Config) error {
			assert.Equal(t, "plain", cfg.OutputFormat)
			cfg.KeepNewlines = true
			return nil
		}

		require.NoError(t, runInit(opts))
		assert.Equal(t, opts.configPath, asked)

		cfg, err := config.Load(opts.configPath)
		require.NoError(t, err)
		assert.True(t, cfg.KeepNewlines)
		assert.Equal(t, existing.Tags, cfg.Tags)
		assert.Equal(t, existing.Aliases, cfg.Aliases)
	})

	t.Run("force skips confirmation", func(t *testing.T) {
		opts, _ := newTestOptions(t)
		require.NoError(t, existing.Save(opts.configPath))
		opts.force = true
		opts.defaults = true

		require.NoError(t, runInit(opts))
	})
}

func TestRunInit_InvalidResult(t *testing.T) {
	opts, _ := newTestOptions(t)
	opts.prompt = func(cfg *config.Config) error {
		cfg.OutputFormat = "xml"
		return nil
	}

	err := runInit(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"64", 64, false},
		{" 12 ", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"many", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLimit(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, validateLimit(tt.input))
		})
	}
}

func TestLimitString(t *testing.T) {
	assert.Equal(t, "", limitString(0))
	assert.Equal(t, "", limitString(-1))
	assert.Equal(t, "256", limitString(256))
}

func TestNewForm(t *testing.T) {
	depth, tags := "", ""
	assert.NotNil(t, newForm(&config.Config{}, &depth, &tags))
}

func TestNewCmdInit_Flags(t *testing.T) {
	cmd := NewCmdInit()
	assert.NotNil(t, cmd.Flags().Lookup("defaults"))
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}
