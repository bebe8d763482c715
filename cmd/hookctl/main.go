package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/hooks/internal/config"
	"github.com/vango-dev/hooks/internal/errors"
	"github.com/vango-dev/hooks/pkg/hooks"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	debug      bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "hookctl",
		Short: "Run hooks components from the command line",
		Long: `hookctl mounts demo components on a layout and drives them,
printing what their effects do.

Configuration is read from hooks.toml in the working directory,
or from the file named by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", config.FileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging and hook diagnostics")

	rootCmd.AddCommand(
		demoCmd(g),
		configCmd(g),
		versionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and installs the logger.
func (g *globalFlags) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	if g.debug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	g.cfg = cfg

	level := cfg.Level()
	g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(g.logger)

	hooks.DebugMode = cfg.Debug
	hooks.SetLogger(g.logger.With("subsystem", "hooks"))

	g.logger.Debug("configuration loaded", "path", cfg.Path(), "debug", cfg.Debug)
	return nil
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}
