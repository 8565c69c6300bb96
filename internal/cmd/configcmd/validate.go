package configcmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// NewCmdValidate creates the config validate command.
func NewCmdValidate() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate",
		Aliases: []string{"test"},
		Short:   "Check the configuration and custom tags",
		Long: `Load the configuration, apply environment overrides, and build the tag
registry to confirm that custom tags and aliases are usable.`,
		Example: `  # Validate config
  bbc config validate`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runValidate(cmd.OutOrStdout(), config.PathOrDefault(configPath), noColor)
		},
	}

	return cmd
}

func runValidate(w io.Writer, configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Config file could not be read:", err)
		fmt.Fprintln(w, "\nReconfigure with: bbc init")
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		_, _ = red.Fprintln(w, "✗ Invalid setting:", err)
		fmt.Fprintln(w, "\nCheck your settings with: bbc config show")
		return fmt.Errorf("invalid config: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Settings valid")

	engine, err := bbcode.New(cfg.EngineOptions()...)
	if err != nil {
		_, _ = red.Fprintln(w, "✗ Tag definitions rejected:", err)
		return fmt.Errorf("invalid tags: %w", err)
	}
	_, _ = green.Fprintln(w, "✓ Tag definitions valid")

	fmt.Fprintf(w, "\n%d tags and aliases available\n", len(engine.Registry().Names()))

	return nil
}
