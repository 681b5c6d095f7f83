// Package main provides the casemetrics binary entry point.
// Casemetrics cleans layout-damaged court judgment text and extracts
// citation and readability metrics from the cleaned corpus.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/casemetrics/casemetrics/config"
	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "casemetrics"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		outputDir  string
	)

	cmd := &cobra.Command{
		Use:   "casemetrics",
		Short: "Court judgment cleaning and metrics",
		Long: `Casemetrics repairs layout damage in plain-text and HTML renderings
of court judgments and extracts quantitative signals from the result.

It provides:
- Cleaning pipelines with SG- and UK-specific repair rules
- Section segmentation (headnotes, core judgment, footnotes)
- Citation counts by jurisdiction, academic reference counts
- Readability metrics (Flesch-Kincaid, SMOG)`,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")

	setup := func() (*App, error) {
		logger := newLogger(logLevel)
		cfg, err := loadConfig(configPath, logger)
		if err != nil {
			return nil, err
		}
		if outputDir != "" {
			cfg.Output.Dir = outputDir
		}
		return NewApp(cfg, logger), nil
	}

	var (
		jurisdiction string
		writeHTML    bool
		writeMD      bool
		article      bool
	)
	cleanCmd := &cobra.Command{
		Use:   "clean [paths...]",
		Short: "Clean judgment files into the three-section layout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup()
			if err != nil {
				return err
			}
			if jurisdiction != "" {
				app.cfg.Clean.Jurisdiction = jurisdiction
			}
			if writeHTML {
				app.cfg.Clean.WriteHTML = true
			}
			if writeMD {
				app.cfg.Clean.WriteMarkdown = true
			}
			if article {
				app.cfg.Clean.ExtractArticle = true
			}
			if err := app.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return app.CleanFiles(signalContext(), args)
		},
	}
	cleanCmd.Flags().StringVarP(&jurisdiction, "jurisdiction", "j", "", "Force jurisdiction (SG or UK, default: auto-detect)")
	cleanCmd.Flags().BoolVar(&writeHTML, "html", false, "Also write a side-by-side HTML review page")
	cleanCmd.Flags().BoolVar(&writeMD, "markdown", false, "Also write a markdown rendering")
	cleanCmd.Flags().BoolVar(&article, "article", false, "Extract the main article block from HTML sources before cleaning")
	cmd.AddCommand(cleanCmd)

	var (
		court   string
		workers int
	)
	analyzeCmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Extract citation and readability metrics from cleaned judgments",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup()
			if err != nil {
				return err
			}
			if court != "" {
				app.cfg.Analyze.Court = court
			}
			if workers > 0 {
				app.cfg.Analyze.Workers = workers
			}
			if err := app.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return app.AnalyzeFiles(signalContext(), args)
		},
	}
	analyzeCmd.Flags().StringVar(&court, "court", "", "Configured court to analyze (uses its input folders)")
	analyzeCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers (default from config)")
	cmd.AddCommand(analyzeCmd)

	watchCmd := &cobra.Command{
		Use:   "watch <dir>",
		Short: "Watch a directory and clean judgment files as they change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup()
			if err != nil {
				return err
			}
			if err := app.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return app.Watch(signalContext(), args[0])
		},
	}
	cmd.AddCommand(watchCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// newLogger configures the process logger from the log-level flag.
func newLogger(logLevel string) *slog.Logger {
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
	return logger
}

// loadConfig loads layered configuration, preferring an explicit path.
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	cfg, err := config.NewLoader(logger).Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()
	return ctx
}
