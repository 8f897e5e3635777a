// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fred-engine CLI: series search,
// high-frequency indicator ranking, and series lookup against the FRED API.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/fred-engine/internal/config"
	"github.com/pdiddy/fred-engine/internal/fred"
	"github.com/pdiddy/fred-engine/internal/httputil"
	"github.com/pdiddy/fred-engine/internal/logger"
	"github.com/pdiddy/fred-engine/internal/secrets"
	"github.com/pdiddy/fred-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds one file per API key, e.g. .secrets/fred-api-key.
const secretsDir = ".secrets/"

var (
	settings = config.New(version)
	cfg      types.Config
	log      = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "fred-engine",
	Short: "Search and inspect FRED economic data series",
	Long: `fred-engine queries the FRED series endpoints. It searches series by text
and filters, ranks the most popular daily and weekly indicators, and looks up
a single series by ID. Every command prints an indented JSON document.

Settings come from ./fred-engine.yaml or ~/.config/fred-engine/config.yaml,
FRED_ENGINE_* environment variables, and .secrets/fred-api-key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfgFile, _ := cmd.Flags().GetString("config")
		used, err := config.ReadFile(settings, cfgFile)
		if err != nil {
			return err
		}

		// Secrets load before the logger exists, so warnings go to a
		// stderr logger at the default level.
		s, err := secrets.Load(secretsDir, logger.New(types.LogConfig{}, os.Stderr))
		if err != nil {
			return err
		}

		cfg, err = config.Load(settings, s)
		if err != nil {
			return err
		}
		log = logger.New(cfg.Log, os.Stderr)

		if used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}
		if keys := s.Keys(); len(keys) > 0 {
			log.Debug().Strs("keys", keys).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./fred-engine.yaml or ~/.config/fred-engine/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = settings.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// newService validates the loaded settings and wires the HTTP transport.
func newService() (*fred.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return fred.NewService(httputil.NewClient(cfg.FRED, log), log), nil
}

// writeContent prints each text block followed by a newline.
func writeContent(w io.Writer, content []types.TextContent) error {
	for _, c := range content {
		if _, err := fmt.Fprintln(w, c.Text); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
