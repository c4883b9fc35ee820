package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/config"
	"github.com/jsphweid/chordex/logger"
	"github.com/jsphweid/chordex/server"
	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "port to listen on, overrides CHORDEX_PORT")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves chord names over HTTP",
	Long:  `Serves POST /interpret and GET /health. Configured with CHORDEX_* environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.ProvideConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		log, err := logger.ProvideLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer log.Sync()

		h := server.NewHandler(log, chord.NewIdentifier(), cfg.MaxResults)
		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           server.NewRouter(h, cfg.AllowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			log.Infow("listening", "addr", srv.Addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}
