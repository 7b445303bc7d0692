package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadscore-cli/internal/server"
)

const shutdownTimeout = 10 * time.Second

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		weights, _ := cmd.Flags().GetString("weights")
		eng, err := buildEngine(weights, 0)
		if err != nil {
			return err
		}

		api := server.New(eng.scorer, eng.validator, eng.orchestrator, eng.matcher, cfg.Dedupe.Threshold)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: api.Router(),
		}

		go func() {
			<-ctx.Done()
			gracefulShutdown(srv)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// gracefulShutdown drains in-flight requests on a fresh timeout context, so
// the drain is not cut short by the already-canceled signal context.
func gracefulShutdown(srv *http.Server) {
	zap.L().Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Warn("server shutdown", zap.Error(err))
	}
}

func init() {
	f := serveCmd.Flags()
	f.IntVar(&servePort, "port", 0, "server port (default from config)")
	f.String("weights", "", "YAML weights file overriding scoring config")
	rootCmd.AddCommand(serveCmd)
}
