package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type checkOptions struct {
	globalOptions

	file string
}

// checkResult is the JSON shape of the check command.
type checkResult struct {
	File        string   `json:"file,omitempty"`
	HasError    bool     `json:"has_error"`
	Diagnostics []string `json:"diagnostics"`
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report structural problems in a BBCode document",
		Long: `Check a BBCode document for unmatched tags and tags used where they are
not allowed, without printing the rendered HTML.

Exits with an error when any problem is found.`,
		Example: `  # Check a file
  bbc check post.bbcode

  # Check stdin, machine-readable
  cat post.bbcode | bbc check -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.globalOptions = globalsFrom(cmd)
			if len(args) > 0 {
				opts.file = args[0]
			}
			return runCheck(opts)
		},
	}

	return cmd
}

func runCheck(opts *checkOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	text, err := readInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg, opts.logger().With("command", "check"))
	if err != nil {
		return err
	}

	res, err := engine.Process(bbcode.Config{Text: text})
	if err != nil {
		return fmt.Errorf("failed to check: %w", err)
	}

	stdout, _ := opts.writers()
	renderer := view.NewRenderer(view.Format(cfg.OutputFormat), opts.noColor)
	renderer.SetWriter(stdout)

	if renderer.Format() == view.FormatJSON {
		if err := renderer.RenderJSON(checkResult{
			File:        opts.file,
			HasError:    res.HasError,
			Diagnostics: res.Diagnostics,
		}); err != nil {
			return err
		}
	} else {
		renderer.RenderDiagnostics(res.Diagnostics)
	}

	if res.HasError {
		return fmt.Errorf("found %d problem(s)", len(res.Diagnostics))
	}
	return nil
}
