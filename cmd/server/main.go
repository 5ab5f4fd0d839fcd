package main

import (
	"context"
	"cost-intelligence-service/internal/adapters/cache"
	"cost-intelligence-service/internal/adapters/charts"
	"cost-intelligence-service/internal/adapters/csvsource"
	"cost-intelligence-service/internal/api"
	"cost-intelligence-service/internal/platform/config"
	"cost-intelligence-service/internal/platform/obs"
	"cost-intelligence-service/internal/ports"
	"cost-intelligence-service/internal/services"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
)

// main is the application composition root.
// It wires the CSV source, the enriched-table cache and the chart renderer
// behind ports and starts the HTTP server.
func main() {
	dotenvErr := godotenv.Load()

	config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load("", pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if _, err := obs.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if dotenvErr != nil {
		log.Debug().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	orders, routes, delivery, costs := cfg.SourcePaths()
	paths := csvsource.Paths{Orders: orders, Routes: routes, Delivery: delivery, Costs: costs}
	source := csvsource.NewFileSource(paths)

	var enrichedCache ports.EnrichedCache
	var watcher *cache.Watcher
	if cfg.CacheEnabled {
		mem := cache.NewMemoryEnrichedCache()
		enrichedCache = mem
		if cfg.Watch {
			w, err := cache.NewWatcher(mem, paths.All())
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			watcher = w
		}
	}

	pipeline := services.NewPipeline(source, enrichedCache, services.Options{ZeroDistancePolicy: cfg.Policy()})

	// Fail fast on missing or malformed sources instead of on the first request.
	enriched, err := pipeline.Enriched(ctx)
	if err != nil {
		return fmt.Errorf("run: load sources: %w", err)
	}
	log.Info().
		Int("orders", len(enriched.Records)).
		Str("data_dir", cfg.DataDir).
		Str("zero_distance_policy", string(cfg.Policy())).
		Bool("cache", cfg.CacheEnabled).
		Msg("sources loaded")

	router := api.NewRouter(pipeline, charts.NewPNGRenderer())

	addr := ":" + strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}

	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
