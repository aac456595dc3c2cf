package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/drowe/disktemps/internal/collector"
	"github.com/drowe/disktemps/internal/config"
	"github.com/drowe/disktemps/internal/statsd"
	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	flagSource string
	flagHost   string
	flagPort   int
	flagPrefix string
	verbose    bool
	dryRun     bool
)

var rootCmd = &cobra.Command{
	Use:   "disktemps",
	Short: "Ship array disk temperatures to a local metrics agent",
	Long: `disktemps reads the disk status file maintained by the storage
platform, extracts per-disk temperatures and attributes, and forwards one
gauge per disk to a dogstatsd-compatible agent over UDP.

It is meant to be run from cron or a systemd timer: each invocation
performs a single read-parse-emit pass and exits. Delivery is
fire-and-forget; a missed sample is superseded by the next run.`,
	Run: runCollect,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is /etc/disktemps/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "file", "", "disk status file to read")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&flagHost, "host", "", "metrics agent host")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "metrics agent port")
	rootCmd.Flags().StringVar(&flagPrefix, "prefix", "", "metric name prefix")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print wire lines to stdout instead of sending")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the config file and applies flag overrides, then builds
// the logger the pass will use.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagHost != "" {
		cfg.Agent.Host = flagHost
	}
	if flagPort != 0 {
		cfg.Agent.Port = flagPort
	}
	if flagPrefix != "" {
		cfg.Prefix = flagPrefix
	}
	if verbose {
		cfg.Verbose = true
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, log, nil
}

func runCollect(cmd *cobra.Command, args []string) {
	cfg, log, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var em collector.Emitter
	if dryRun {
		em = statsd.Printer{W: os.Stdout}
	} else {
		client, err := statsd.Dial(cfg.Addr())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer client.Close()
		em = client
	}

	sent, err := collector.Run(cfg.Source, cfg.Prefix, em, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info("pass complete", "metrics", sent)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
