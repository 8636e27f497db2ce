package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"svw.info/wordle/internal/config"
	"svw.info/wordle/internal/dictionary"
	"svw.info/wordle/internal/orchestrator"
	"svw.info/wordle/internal/usecase"
	"svw.info/wordle/internal/worker"
)

var (
	flagConfig   string
	flagLogLevel string
	flagWorkers  int
)

func main() {
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Analyze played Wordle games against an AI policy",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug|info|warn|error")
	root.PersistentFlags().IntVar(&flagWorkers, "workers", -1, "worker unit count (0 = one per CPU)")

	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newSelfPlayCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig applies persistent flags on top of file + env configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagWorkers >= 0 {
		cfg.Workers = flagWorkers
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// buildService wires dictionary → pool → orchestrator → usecase.
func buildService(cfg config.Config, logger *slog.Logger) (*usecase.Service, *orchestrator.Orchestrator, error) {
	var dict *dictionary.Dictionary
	var err error
	if cfg.CommonWords != "" {
		dict, err = dictionary.LoadFiles(cfg.CommonWords, cfg.OtherWords)
	} else {
		dict, err = dictionary.Load()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load dictionary: %w", err)
	}
	pool := worker.NewPool(cfg.Workers, dict.IsCommon, logger)
	orch := orchestrator.New(dict, pool, logger)
	return usecase.NewService(orch, nil), orch, nil
}
