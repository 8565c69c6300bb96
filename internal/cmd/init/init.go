// Package init provides the init command for bbc.
package init

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
)

type initOptions struct {
	configPath string
	defaults   bool
	force      bool
	writer     io.Writer

	// confirm asks whether an existing file may be replaced.
	confirm func(path string) (bool, error)
	// prompt fills cfg interactively.
	prompt func(cfg *config.Config) error
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{
		confirm: confirmOverwrite,
		prompt:  promptSettings,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize bbc configuration",
		Long: `Initialize bbc with your preferred rendering settings.

This command will guide you through choosing how unmatched tags and line
breaks are handled, whether output is sanitized, and the default output
format. The configuration will be saved to ~/.config/bbc/config.yml.

Custom tags and aliases can be added to the file afterwards under the
"tags" and "aliases" keys.`,
		Example: `  # Interactive setup
  bbc init

  # Write the default settings without prompting
  bbc init --defaults --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.writer = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "Write default settings without prompting")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing config without asking")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := config.PathOrDefault(opts.configPath)
	w := opts.writer
	if w == nil {
		w = os.Stdout
	}

	// Start from the existing file so custom tags survive a re-init
	cfg, err := config.Load(configPath)
	if err == nil {
		if !opts.force {
			overwrite, err := opts.confirm(configPath)
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(w, "Initialization cancelled.")
				return nil
			}
		}
	} else {
		cfg = &config.Config{}
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(view.FormatTable)
	}

	if !opts.defaults {
		if err := opts.prompt(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(w, "\nYou're all set! Try running:")
	fmt.Fprintln(w, "  echo '[b]hello[/b]' | bbc render")
	fmt.Fprintln(w, "  bbc tags list")

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration already exists").
		Description(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}

func promptSettings(cfg *config.Config) error {
	depth := limitString(cfg.MaxDepth)
	tags := limitString(cfg.MaxTags)

	if err := newForm(cfg, &depth, &tags).Run(); err != nil {
		return err
	}

	// The validators have already accepted these
	cfg.MaxDepth, _ = parseLimit(depth)
	cfg.MaxTags, _ = parseLimit(tags)
	return nil
}

func newForm(cfg *config.Config, depth, tags *string) *huh.Form {
	formats := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formats = append(formats, huh.NewOption(f, f))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Remove misaligned tags?").
				Description("Drop unmatched tags instead of showing them as text").
				Value(&cfg.RemoveMisalignedTags),

			huh.NewConfirm().
				Title("Keep line breaks?").
				Description("Leave newlines alone instead of converting them to <br/>").
				Value(&cfg.KeepNewlines),

			huh.NewConfirm().
				Title("Sanitize output?").
				Description("Run rendered HTML through an allow-list sanitizer").
				Value(&cfg.Sanitize),

			huh.NewSelect[string]().
				Title("Output format").
				Description("Default for commands that print structured data").
				Options(formats...).
				Value(&cfg.OutputFormat),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Maximum nesting depth (optional)").
				Description("Leave empty for the built-in limit").
				Placeholder("256").
				Value(depth).
				Validate(validateLimit),

			huh.NewInput().
				Title("Maximum tags per document (optional)").
				Description("Leave empty for the built-in limit").
				Placeholder("100000").
				Value(tags).
				Validate(validateLimit),
		),
	)
}

func limitString(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// parseLimit parses an optional positive limit. Empty means unset.
func parseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("must be a positive whole number")
	}
	return n, nil
}

func validateLimit(s string) error {
	_, err := parseLimit(s)
	return err
}
