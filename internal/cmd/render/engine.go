package render

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/logging"
	"github.com/open-cli-collective/bbcode-cli/internal/version"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// globalOptions holds the root command's persistent flags.
type globalOptions struct {
	configPath string
	output     string
	noColor    bool
	verbose    bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func globalsFrom(cmd *cobra.Command) globalOptions {
	g := globalOptions{
		stdin:  cmd.InOrStdin(),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
	}
	g.configPath, _ = cmd.Flags().GetString("config")
	g.output, _ = cmd.Flags().GetString("output")
	g.noColor, _ = cmd.Flags().GetBool("no-color")
	g.verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

func (g *globalOptions) writers() (io.Writer, io.Writer) {
	stdout, stderr := g.stdout, g.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}

func (g *globalOptions) logger() *slog.Logger {
	_, stderr := g.writers()
	return logging.Setup(version.Version, "text", g.verbose, stderr)
}

// loadConfig reads the config file named by --config (or the default path),
// applies env overrides and validates the result. The --output flag wins
// over the configured output format.
func (g *globalOptions) loadConfig() (*config.Config, error) {
	if err := view.ValidateFormat(g.output); err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithEnv(config.PathOrDefault(g.configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'bbc init' to reconfigure)", err)
	}

	if g.output != "" {
		cfg.OutputFormat = g.output
	}
	return cfg, nil
}

// newEngine builds an engine from cfg. extra options are applied before the
// configured tags so user definitions take precedence.
func newEngine(cfg *config.Config, logger *slog.Logger, extra ...bbcode.Option) (*bbcode.Engine, error) {
	opts := append([]bbcode.Option{bbcode.WithLogger(logger)}, extra...)
	opts = append(opts, cfg.EngineOptions()...)

	engine, err := bbcode.New(opts...)
	if err != nil {
		logging.LogError(logger, "invalid tag configuration", err)
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, nil
}

// readInput reads the document from file, or from stdin when file is empty
// or "-".
func readInput(file string, stdin io.Reader) (string, error) {
	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if stdin == nil {
		stdin = os.Stdin
	}
	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", fmt.Errorf("no input: pass a file or pipe BBCode on stdin")
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
