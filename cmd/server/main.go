package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/chandhuDev/JobLens/internal/config"
	"github.com/chandhuDev/JobLens/internal/logger"
	"github.com/chandhuDev/JobLens/internal/metrics"
	"github.com/chandhuDev/JobLens/internal/models"
	"github.com/chandhuDev/JobLens/internal/service"
	"github.com/chandhuDev/JobLens/server/handlers"
	"github.com/chandhuDev/JobLens/server/middleware"
)

func main() {
	// .env may carry LOG_LEVEL, LOG_DIR and friends
	dotEnvErr := config.LoadDotEnv()
	logger.Init(logger.DefaultConfig())
	if dotEnvErr != nil {
		logger.Warn().Err(dotEnvErr).Msg("ignoring unreadable .env")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exitCode := run(ctx, cfg)

	logger.Info().Msg("Shutdown complete")
	os.Exit(exitCode)
}

func run(ctx context.Context, cfg *config.Config) int {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	pipeline, err := service.NewPipeline(ctx, cfg, m)
	if err != nil {
		logger.Error().Err(err).Msg("failed to set up pipeline")
		return 1
	}
	defer pipeline.Close()

	// The first build runs in the background; queries answer 503 until it lands.
	if err := pipeline.Dataset.RefreshAsync(ctx); err != nil {
		logger.Warn().Err(err).Msg("startup refresh not started")
	}

	refresher := service.NewRefreshService(pipeline.Dataset, cfg.RefreshSchedule)
	if err := refresher.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to start refresh schedule")
		return 1
	}

	h := handlers.NewHandlers(pipeline.Query, pipeline.Dataset, m)
	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr: cfg.HTTP.Addr,
		Handler: middleware.Chain(mux,
			middleware.CORS(middleware.DefaultCORSConfig(cfg.HTTP.CORSOrigins)),
			middleware.RateLimit(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst, m),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", server.Addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-hup:
				logger.Info().Msg("SIGHUP received, refreshing dataset")
				if err := pipeline.Dataset.RefreshAsync(gctx); errors.Is(err, models.ErrRefreshInProgress) {
					logger.Warn().Msg("refresh already running")
				}
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("Signal received, initiating shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		refresher.Stop(shutdownCtx)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown error")
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return 1
	}
	return 0
}
