package tags

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type listOptions struct {
	configPath string
	output     string
	noColor    bool
	writer     io.Writer
}

// NewCmdList creates the tags list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available tags",
		Long:    `List every tag and alias known to bbc, including those from the config file.`,
		Example: `  # List tags
  bbc tags list

  # Output as JSON
  bbc tags list -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.writer = cmd.OutOrStdout()
			return runList(opts)
		},
	}

	return cmd
}

func runList(opts *listOptions) error {
	registry, format, err := loadRegistry(opts.configPath, opts.output)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(writerOr(opts.writer))

	headers := []string{"NAME", "ALIAS OF", "FLAGS", "CHILDREN", "PARENTS"}
	var rows [][]string
	for _, name := range registry.Names() {
		tag, _ := registry.Lookup(name)
		target, _ := registry.AliasOf(name)
		rows = append(rows, []string{
			name,
			target,
			strings.Join(tagFlags(tag), ","),
			strings.Join(tag.AllowedChildren, ","),
			strings.Join(tag.AllowedParents, ","),
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}

// loadRegistry builds the registry the render command would use.
func loadRegistry(configPath, output string) (*bbcode.Registry, view.Format, error) {
	if err := view.ValidateFormat(output); err != nil {
		return nil, "", err
	}

	cfg, err := config.LoadWithEnv(config.PathOrDefault(configPath))
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w (run 'bbc init' to reconfigure)", err)
	}
	if output != "" {
		cfg.OutputFormat = output
	}

	engine, err := bbcode.New(cfg.EngineOptions()...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build engine: %w", err)
	}
	return engine.Registry(), view.Format(cfg.OutputFormat), nil
}

func tagFlags(tag *bbcode.Tag) []string {
	var flags []string
	if tag.NoParse {
		flags = append(flags, "no-parse")
	}
	if tag.HideContent {
		flags = append(flags, "hide-content")
	}
	if tag.StripLineBreaks {
		flags = append(flags, "strip-line-breaks")
	}
	return flags
}

func writerOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
