// Package render provides the render and check commands.
package render

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/markdown"
	"github.com/open-cli-collective/bbcode-cli/internal/sanitize"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// Output targets of the render command.
const (
	TargetHTML     = "html"
	TargetMarkdown = "markdown"
)

type renderOptions struct {
	globalOptions

	file            string
	stripMisaligned *bool
	keepNewlines    *bool
	sanitize        *bool
	to              string
	strict          bool
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}
	var strip, keep, clean bool

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render BBCode to HTML",
		Long: `Render a BBCode document to HTML.

The document is read from the given file, or from standard input when no
file is given. Raw HTML in the input is always escaped.

Problems such as unclosed tags or tags used in the wrong place are
reported on standard error; the document is rendered regardless.`,
		Example: `  # Render a file
  bbc render post.bbcode

  # Render from stdin
  echo "[b]hello[/b]" | bbc render

  # Drop unmatched tags and sanitize the result
  bbc render post.bbcode --strip-misaligned --sanitize

  # Convert to markdown
  bbc render post.bbcode --to markdown

  # Full result as JSON
  bbc render post.bbcode -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.globalOptions = globalsFrom(cmd)
			if len(args) > 0 {
				opts.file = args[0]
			}
			if cmd.Flags().Changed("strip-misaligned") {
				opts.stripMisaligned = &strip
			}
			if cmd.Flags().Changed("keep-newlines") {
				opts.keepNewlines = &keep
			}
			if cmd.Flags().Changed("sanitize") {
				opts.sanitize = &clean
			}
			return runRender(opts)
		},
	}

	cmd.Flags().BoolVar(&strip, "strip-misaligned", false, "Remove unmatched tags instead of showing them")
	cmd.Flags().BoolVar(&keep, "keep-newlines", false, "Keep line breaks instead of converting them to <br/>")
	cmd.Flags().BoolVar(&clean, "sanitize", false, "Run the output through an HTML sanitizer")
	cmd.Flags().StringVar(&opts.to, "to", TargetHTML, "Output target: html, markdown")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when problems are reported")

	return cmd
}

func runRender(opts *renderOptions) error {
	if opts.to != TargetHTML && opts.to != TargetMarkdown {
		return fmt.Errorf("invalid target %q: must be %s or %s", opts.to, TargetHTML, TargetMarkdown)
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	if opts.stripMisaligned != nil {
		cfg.RemoveMisalignedTags = *opts.stripMisaligned
	}
	if opts.keepNewlines != nil {
		cfg.KeepNewlines = *opts.keepNewlines
	}
	if opts.sanitize != nil {
		cfg.Sanitize = *opts.sanitize
	}

	text, err := readInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	logger := opts.logger().With("command", "render")

	var extra []bbcode.Option
	if opts.to == TargetMarkdown {
		extra = append(extra, bbcode.WithTags(markdown.Tags()...))
	}
	engine, err := newEngine(cfg, logger, extra...)
	if err != nil {
		return err
	}

	res, err := engine.Process(bbcode.Config{
		Text:                 text,
		RemoveMisalignedTags: cfg.RemoveMisalignedTags,
		KeepNewlines:         cfg.KeepNewlines,
	})
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	if cfg.Sanitize {
		res.HTML = sanitize.New().Sanitize(res.HTML)
	}
	if opts.to == TargetMarkdown {
		md, err := markdown.FromHTML(res.HTML)
		if err != nil {
			return fmt.Errorf("failed to convert to markdown: %w", err)
		}
		res.HTML = md
	}

	stdout, stderr := opts.writers()
	renderer := view.NewRenderer(view.Format(cfg.OutputFormat), opts.noColor)
	renderer.SetWriter(stdout)

	if renderer.Format() == view.FormatJSON {
		if err := renderer.RenderJSON(res); err != nil {
			return err
		}
	} else {
		renderer.RenderText(res.HTML)

		warnings := view.NewRenderer(view.FormatPlain, opts.noColor)
		warnings.SetWriter(stderr)
		for _, d := range res.Diagnostics {
			warnings.Warning(d)
		}
	}

	if opts.strict && res.HasError {
		return fmt.Errorf("%d problem(s) reported", len(res.Diagnostics))
	}
	return nil
}
