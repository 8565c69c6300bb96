// Package completion provides shell completion generation commands.
package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// shell describes one supported completion target.
type shell struct {
	name    string
	load    string // command that loads completions in the current session
	install string // command that installs them for new sessions
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name:    "bash",
		load:    "source <(bbc completion bash)",
		install: "bbc completion bash > /etc/bash_completion.d/bbc",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name:    "zsh",
		load:    "source <(bbc completion zsh)",
		install: `bbc completion zsh > "${fpath[1]}/_bbc"`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name:    "fish",
		load:    "bbc completion fish | source",
		install: "bbc completion fish > ~/.config/fish/completions/bbc.fish",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name:    "powershell",
		load:    "bbc completion powershell | Out-String | Invoke-Expression",
		install: "bbc completion powershell >> $PROFILE",
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for bbc.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:   s.name,
		Short: fmt.Sprintf("Generate %s completion script", s.name),
		Long: fmt.Sprintf(`Generate %s completion script for bbc.

To load completions in your current shell session:

  %s

To load completions for every new session:

  %s`, s.name, s.load, s.install),
		Example: fmt.Sprintf(`  # Load in current session
  %s

  # Install permanently
  %s`, s.load, s.install),
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
