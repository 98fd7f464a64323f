package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/graphexplorer/core/internal/config"
	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/parser"
	"github.com/spf13/cobra"
)

var (
	cfg    config.Config
	logger *slog.Logger

	definitionFlag string
	logLevelFlag   string
	logFormatFlag  string
)

var rootCmd = &cobra.Command{
	Use:               "graph-explorer",
	Short:             "Causal graph explorer: serve or inspect an attribute -> mediator -> outcome graph",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&definitionFlag, "definition", "", "Path to an HCL graph definition (default: built-in demo graph)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: text or json")
	addServeFlags(rootCmd)
}

// setup resolves configuration with flag > env > default precedence and
// installs the process logger.
func setup(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()
	cfg = config.FromEnv()

	flags := cmd.Flags()
	if flags.Changed("definition") {
		cfg.DefinitionPath = definitionFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevelFlag
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormatFlag
	}
	applyServeFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	l, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(logger)
	return nil
}

func loadGraph() (*graph.Index, error) {
	index, err := parser.Load(cfg.DefinitionPath)
	if err != nil {
		return nil, err
	}
	source := cfg.DefinitionPath
	if source == "" {
		source = "built-in demo"
	}
	logger.Debug("graph loaded",
		"source", source,
		"nodes", index.Store().NodeCount(),
		"edges", index.Store().EdgeCount(),
	)
	return index, nil
}
