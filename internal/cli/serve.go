package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/allotment/backend/internal/controllers/v1"
	"github.com/allotment/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return s.serve(ctx)
		},
	}
}

func (s *state) serve(ctx context.Context) error {
	a, err := s.open()
	if err != nil {
		return err
	}
	defer a.Close()

	// The first start creates the default plan
	if _, err := a.Plans.Seed(); err != nil {
		return fmt.Errorf("could not seed the default plan: %w", err)
	}

	if report := a.Periods.Audit(); !report.Consistent() {
		log.Warn().Interface("periods", report.MissingSnapshots).Msg("locked periods without snapshot, regenerate their snapshots")
	}

	r, teardown, err := router.Config(s.cfg.APIURL, s.cfg)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(v1.Controller{App: a}, r.Group("/"), s.cfg)

	srv := &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("backend startup complete")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
