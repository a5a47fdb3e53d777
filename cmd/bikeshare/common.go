package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nao1215/bikeshare/internal/config"
	"github.com/nao1215/bikeshare/internal/dataset"
	"github.com/nao1215/bikeshare/internal/log"
)

// env is the state shared by every data command: validated configuration,
// catalog, loader and logger.
type env struct {
	cfg     *config.Config
	catalog *config.Catalog
	loader  *dataset.Loader
	logger  *slog.Logger
}

// setup builds the configuration from defaults, the config file and flags,
// then creates the logger, catalog and loader.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd, cfg.Verbose)
	slog.SetDefault(logger)

	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	dataDir := cfg.DataDir
	if !cmd.Flags().Changed("data-dir") {
		dataDir = cfg.ResolveDataDir()
	}

	loader := dataset.NewLoader(catalog, dataDir,
		dataset.WithEncoding(cfg.Encoding),
		dataset.WithLogger(logger),
	)

	logger.Debug("configuration loaded",
		"config_file", cfg.ConfigFilePath,
		"data_dir", dataDir,
		"encoding", cfg.Encoding,
		"cities", catalog.Cities(),
	)

	return &env{cfg: cfg, catalog: catalog, loader: loader, logger: logger}, nil
}

// newLogger returns a text or JSON logger on the command's stderr.
func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs { //nolint:errcheck // flag is defined in NewRootCmd
		return log.NewJSONLogger(cmd.ErrOrStderr(), verbose)
	}
	return log.NewLogger(cmd.ErrOrStderr(), verbose)
}

// buildConfig creates a Config from defaults, the config file and the
// persistent flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Verbose, err = cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit config path must exist; the default locations are optional.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
		cfg.ConfigFilePath = configPath
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("data-dir") {
		cfg.DataDir, err = cmd.Flags().GetString("data-dir")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("encoding") {
		cfg.Encoding, err = cmd.Flags().GetString("encoding")
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// useColor reports whether output written to w should be coloured.
// Only stdout is coloured, and only when fatih/color detected a terminal.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && f == os.Stdout && !color.NoColor
}
