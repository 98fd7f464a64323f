package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/graphexplorer/core/cmd/api/middleware"
	"github.com/graphexplorer/core/internal/config"
	"github.com/graphexplorer/core/internal/graph"
	"github.com/graphexplorer/core/internal/handlers"
	"github.com/graphexplorer/core/internal/predict"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

var (
	portFlag   int
	originFlag string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the graph and prediction API over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	addServeFlags(serveCmd)
	rootCmd.AddCommand(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&portFlag, "port", config.DefaultPort, "HTTP port (env GRAPH_PORT)")
	cmd.Flags().StringVar(&originFlag, "origin", config.DefaultOrigin, "Allowed CORS origin (env CORS_ALLOWED_ORIGIN)")
}

func applyServeFlags(cmd *cobra.Command, c *config.Config) {
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		c.Port = portFlag
	}
	if f := cmd.Flags().Lookup("origin"); f != nil && f.Changed {
		c.AllowedOrigin = originFlag
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	index, err := loadGraph()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(index, cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return serve(ctx, srv, logger)
}

// newRouter mounts the API and wraps it in the middleware chain. Request ids
// are assigned first so every later log line carries one.
func newRouter(index *graph.Index, c config.Config, base *slog.Logger) http.Handler {
	api := handlers.New(index, predict.NewMapper(index))
	limiter := rate.NewLimiter(rate.Limit(c.PredictRate), c.PredictBurst)

	mux := http.NewServeMux()
	api.Register(mux, middleware.RateLimit(limiter))

	return middleware.Chain(mux,
		middleware.RequestID(base),
		middleware.Recover,
		middleware.Logging,
		middleware.Cors(c.AllowedOrigin),
	)
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, l *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		l.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	l.Info("server stopped")
	return nil
}
