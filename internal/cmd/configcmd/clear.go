package configcmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

type clearOptions struct {
	configPath string
	dryRun     bool
	noColor    bool
}

// NewCmdClear creates the config clear command.
func NewCmdClear() *cobra.Command {
	opts := &clearOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the config file",
		Long: `Delete the bbc config file, including any custom tags and aliases it
defines. Rendering falls back to the built-in tags and default settings;
BBC_* environment variables keep applying.`,
		Example: `  # See what would be removed
  bbc config clear --dry-run

  # Remove a non-default config file
  bbc config clear -c ./bbc.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			opts.configPath = config.PathOrDefault(configPath)
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runClear(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would be removed without deleting anything")

	return cmd
}

func runClear(w io.Writer, opts *clearOptions) error {
	if opts.noColor {
		color.NoColor = true
	}
	green := color.New(color.FgGreen)
	dim := color.New(color.Faint)

	cfg, err := config.Load(opts.configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		_, _ = green.Fprintf(w, "✓ Nothing to clear: %s does not exist\n", opts.configPath)
		reportEnv(w, dim)
		return nil
	case err != nil:
		// An unparsable file can still be removed
		cfg = &config.Config{}
	}

	lost := fmt.Sprintf("%d custom tag(s) and %d alias(es)", len(cfg.Tags), len(cfg.Aliases))
	if opts.dryRun {
		fmt.Fprintf(w, "Would delete %s (%s)\n", opts.configPath, lost)
		return nil
	}

	if err := os.Remove(opts.configPath); err != nil {
		return fmt.Errorf("failed to delete config file: %w", err)
	}
	_, _ = green.Fprintf(w, "✓ Deleted %s (%s)\n", opts.configPath, lost)
	reportEnv(w, dim)

	return nil
}

// reportEnv lists BBC_* variables that still change the defaults.
func reportEnv(w io.Writer, dim *color.Color) {
	var active []string
	for _, v := range config.EnvVars {
		if os.Getenv(v) != "" {
			active = append(active, v)
		}
	}
	if len(active) > 0 {
		_, _ = dim.Fprintf(w, "Still set in the environment: %s\n", strings.Join(active, ", "))
	}
}
