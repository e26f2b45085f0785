package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"rise/internal/app"
	"rise/internal/config"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	version    = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "rise",
	Short: "Rise - seeded procedural landscape renderer",
	Long: `Rise renders a pseudo-3D field of structures, bubbles and hanging curtains
from a single seed. The same seed always produces the same image.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML tuning file")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(paramsCmd())
	rootCmd.AddCommand(palettesCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rise v%s\n", version)
	},
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	return logger
}

// loadConfig reads the tuning file, if any, applies the flags the user set
// and validates the result.
func loadConfig(cmd *cobra.Command, flags *app.Config) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if flags != nil {
		flags.Apply(cmd.Flags(), &cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
