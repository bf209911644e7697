package cmd

import (
	"fmt"

	"github.com/harrison/lsv/internal/config"
	"github.com/harrison/lsv/internal/engine"
	"github.com/harrison/lsv/internal/logger"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for lsv
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsv [flags] [path...]",
		Short: "List directory contents",
		Long: `lsv lists the entries of each directory, skipping names that start with ".".

Entries are sorted by name and shown in columns filled top to bottom, or
left to right with --horizontal, or one detailed line each with --long.
Names are colored by type: directories, symlinks, special files,
executables, archives and source files.

With no path the current directory is listed. When paths are given each
listing is preceded by a "Directory listing of <path>:" header.

Defaults can be set in $XDG_CONFIG_HOME/lsv/config.yaml (or the file named
by $LSV_CONFIG or --config). Flags override the configuration file.

Examples:
  lsv                      # current directory, in columns
  lsv -l /etc              # long format
  lsv -R src               # recurse into subdirectories
  lsv -x --width 60 docs   # horizontal wrap at 60 columns
  lsv --color never /tmp   # plain output`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runList,
	}

	cmd.Flags().BoolP("long", "l", false, "Use a long listing format")
	cmd.Flags().BoolP("horizontal", "x", false, "List entries by lines instead of by columns")
	cmd.Flags().BoolP("recursive", "R", false, "List subdirectories recursively")
	cmd.Flags().IntP("width", "w", 0, "Assume the display is this many columns wide (0 = detect)")
	cmd.Flags().String("color", config.ColorAuto, "Color names: auto, always or never")
	cmd.Flags().BoolP("human-readable", "H", false, "Print sizes like 1.5kB in long format")
	cmd.Flags().String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/lsv/config.yaml)")
	cmd.Flags().String("log-level", "", "Diagnostics level: trace, debug, info, warn, error")

	return cmd
}

// runList implements the listing command logic
func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg.MergeWithFlags(flagOverrides(cmd))
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	stdout := cmd.OutOrStdout()
	width := resolveWidth(cfg.Width, stdout)
	color := cfg.ColorEnabled(isTerminal(stdout))
	opts := cfg.Options(width, color, len(args) > 0)

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	log.LogDebug(fmt.Sprintf("width=%d long=%t horizontal=%t recursive=%t color=%t",
		opts.Width(), opts.LongFormat, opts.HorizontalLayout, opts.Recursive, opts.Color))

	return engine.New(opts, stdout, engine.WithLogger(log)).Run(args)
}

// loadConfig loads from --config when given, otherwise from the default location
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// flagOverrides collects the flags that were explicitly set on the command line
func flagOverrides(cmd *cobra.Command) config.FlagOverrides {
	var f config.FlagOverrides
	flags := cmd.Flags()

	if flags.Changed("long") {
		v, _ := flags.GetBool("long")
		f.Long = &v
	}
	if flags.Changed("horizontal") {
		v, _ := flags.GetBool("horizontal")
		f.Horizontal = &v
	}
	if flags.Changed("recursive") {
		v, _ := flags.GetBool("recursive")
		f.Recursive = &v
	}
	if flags.Changed("width") {
		v, _ := flags.GetInt("width")
		f.Width = &v
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		f.Color = &v
	}
	if flags.Changed("human-readable") {
		v, _ := flags.GetBool("human-readable")
		f.HumanSizes = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		f.LogLevel = &v
	}

	return f
}
