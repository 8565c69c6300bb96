// Package root provides the root command for the bbc CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/completion"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/configcmd"
	initcmd "github.com/open-cli-collective/bbcode-cli/internal/cmd/init"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/render"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/tags"
	"github.com/open-cli-collective/bbcode-cli/internal/version"
)

// NewCmdRoot creates the root command for bbc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbc",
		Short: "Render BBCode to HTML",
		Long: `bbc converts BBCode forum markup into HTML.

It escapes raw HTML, reports unmatched tags and tags used in the wrong
place, and can sanitize the result or convert it to markdown. Custom
tags and aliases can be defined in the config file.

Get started by running: bbc init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/bbc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json, plain (default: from config, else table)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log debug details to stderr")

	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(render.NewCmdCheck())
	cmd.AddCommand(tags.NewCmdTags())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
