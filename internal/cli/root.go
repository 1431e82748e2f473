// Package cli implements the allotment command line interface.
package cli

import (
	"io"

	"github.com/allotment/backend/internal/app"
	"github.com/allotment/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// state is shared by all commands of one invocation.
type state struct {
	cfg *config.Config
}

// NewRootCmd creates the allotment command with all subcommands.
//
// Running it without a subcommand starts the API server.
func NewRootCmd() *cobra.Command {
	s := &state{}

	root := &cobra.Command{
		Use:   "allotment",
		Short: "Distribution plans with lockable periods",
		Long: `allotment serves the API for distribution plans, period locks and
recurring income. The subcommands work on the same database as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config.LoadEnvFile()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			setupLogging(cfg, cmd.ErrOrStderr())
			s.cfg = cfg
			return nil
		},
	}

	serve := newServeCmd(s)
	root.RunE = serve.RunE

	root.AddCommand(
		serve,
		newSeedCmd(s),
		newPeriodCmd(s),
		newAuditCmd(s),
	)

	return root
}

// setupLogging configures gin and the global logger.
func setupLogging(cfg *config.Config, out io.Writer) {
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		out = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// open opens the database for a command. The caller must close the App.
func (s *state) open() (*app.App, error) {
	return app.Open(s.cfg, log.Logger)
}
