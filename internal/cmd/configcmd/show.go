package configcmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current bbc configuration with source indicators.`,
		Example: `  # Show current config
  bbc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmd.OutOrStdout(), config.PathOrDefault(configPath), noColor)
		},
	}

	return cmd
}

func runShow(w io.Writer, configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	// Load full config with env overrides
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-19s", label+":")
		fmt.Fprint(w, value)

		source := "default"
		if fileErr == nil && fileValue == value && fileValue != "" {
			source = "config"
		}
		if envVar != "" && envValue(envVar) == value {
			source = envVar
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Remove misaligned", strconv.FormatBool(cfg.RemoveMisalignedTags),
		boolOrEmpty(fileCfg.RemoveMisalignedTags), "BBC_REMOVE_MISALIGNED")
	printField("Keep newlines", strconv.FormatBool(cfg.KeepNewlines),
		boolOrEmpty(fileCfg.KeepNewlines), "BBC_KEEP_NEWLINES")
	printField("Sanitize", strconv.FormatBool(cfg.Sanitize),
		boolOrEmpty(fileCfg.Sanitize), "BBC_SANITIZE")
	printField("Output", orDefault(cfg.OutputFormat, "table"), fileCfg.OutputFormat, "BBC_OUTPUT")
	printField("Max depth", limitOrDefault(cfg.MaxDepth), limitOrEmpty(fileCfg.MaxDepth), "")
	printField("Max tags", limitOrDefault(cfg.MaxTags), limitOrEmpty(fileCfg.MaxTags), "")

	_, _ = bold.Fprintf(w, "%-19s", "Custom tags:")
	fmt.Fprintln(w, joinKeys(cfg.Tags))
	_, _ = bold.Fprintf(w, "%-19s", "Aliases:")
	fmt.Fprintln(w, joinAliases(cfg.Aliases))

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}

// envValue returns the env var as LoadFromEnv would apply it, or "" when it
// is unset or ignored.
func envValue(name string) string {
	raw := os.Getenv(name)
	if raw == "" {
		return ""
	}
	if name == "BBC_OUTPUT" {
		return raw
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return ""
	}
	return strconv.FormatBool(b)
}

// boolOrEmpty reports only true values since false is indistinguishable
// from an omitted key.
func boolOrEmpty(b bool) string {
	if !b {
		return ""
	}
	return "true"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func limitOrEmpty(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func limitOrDefault(n int) string {
	if n <= 0 {
		return "built-in"
	}
	return strconv.Itoa(n)
}

func joinKeys[V any](m map[string]V) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func joinAliases(m map[string]string) string {
	if len(m) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+" -> "+m[k])
	}
	return strings.Join(pairs, ", ")
}
