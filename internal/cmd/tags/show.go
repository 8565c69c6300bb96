package tags

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/view"
)

type showOptions struct {
	name       string
	configPath string
	output     string
	noColor    bool
	writer     io.Writer
}

// tagInfo is the JSON shape of a single tag.
type tagInfo struct {
	Name            string   `json:"name"`
	AliasOf         string   `json:"alias_of,omitempty"`
	Flags           []string `json:"flags"`
	AllowedChildren []string `json:"allowed_children"`
	AllowedParents  []string `json:"allowed_parents"`
}

// NewCmdShow creates the tags show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show a tag's rules",
		Long:  `Show the flags and nesting rules of a single tag or alias.`,
		Example: `  # Show the list tag
  bbc tags show list`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.name = args[0]
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.writer = cmd.OutOrStdout()
			return runShow(opts)
		},
	}

	return cmd
}

func runShow(opts *showOptions) error {
	registry, format, err := loadRegistry(opts.configPath, opts.output)
	if err != nil {
		return err
	}

	tag, ok := registry.Lookup(opts.name)
	if !ok {
		return fmt.Errorf("unknown tag %q (run 'bbc tags list' to see available tags)", opts.name)
	}
	target, _ := registry.AliasOf(opts.name)

	renderer := view.NewRenderer(format, opts.noColor)
	renderer.SetWriter(writerOr(opts.writer))

	info := tagInfo{
		Name:            strings.ToLower(opts.name),
		AliasOf:         target,
		Flags:           nonNil(tagFlags(tag)),
		AllowedChildren: nonNil(tag.AllowedChildren),
		AllowedParents:  nonNil(tag.AllowedParents),
	}

	if renderer.Format() == view.FormatJSON {
		return renderer.RenderJSON(info)
	}

	renderer.RenderKeyValue("Name", info.Name)
	if info.AliasOf != "" {
		renderer.RenderKeyValue("Alias of", info.AliasOf)
	}
	renderer.RenderKeyValue("Flags", orDash(info.Flags))
	renderer.RenderKeyValue("Children", orDash(info.AllowedChildren))
	renderer.RenderKeyValue("Parents", orDash(info.AllowedParents))
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orDash(s []string) string {
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ", ")
}
