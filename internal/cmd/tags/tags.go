// Package tags provides commands for inspecting the tag registry.
package tags

import (
	"github.com/spf13/cobra"
)

// NewCmdTags creates the tags command.
func NewCmdTags() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Inspect available tags",
		Long:  `Commands for inspecting the built-in and configured BBCode tags.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdShow())

	return cmd
}
