// Trackrec - Track Recommendation Service
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/resonantlabs/trackrec

// Package main is the entry point for the trackrec server application.
//
// trackrec is a seed-track recommendation service: given a known track id
// it returns a ranked list of related tracks, blending co-listening
// collaborative filtering with audio-similarity re-ranking.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables
//  2. Resources: Load the catalogue, co-listening vocabulary, and audio
//     embedding bundle (falling back to demo data when DEMO_MODE=true)
//  3. Engine: Construct the recommendation engine over those resources
//  4. Result Cache: Open the embedded badger-backed cache
//  5. HTTP Server: REST API (health/songs/search/recommend) plus a
//     separate metrics server, both under supervision
//
// # Configuration
//
// Configuration is loaded entirely from environment variables; see
// internal/config for the full list and their defaults.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete
//   - Closes the result cache
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/resonantlabs/trackrec/internal/api"
	"github.com/resonantlabs/trackrec/internal/audioembed"
	"github.com/resonantlabs/trackrec/internal/cache"
	"github.com/resonantlabs/trackrec/internal/catalogue"
	"github.com/resonantlabs/trackrec/internal/config"
	"github.com/resonantlabs/trackrec/internal/covisit"
	"github.com/resonantlabs/trackrec/internal/engine"
	"github.com/resonantlabs/trackrec/internal/logging"
	"github.com/resonantlabs/trackrec/internal/metrics"
	"github.com/resonantlabs/trackrec/internal/rerank"
	"github.com/resonantlabs/trackrec/internal/supervisor"
	"github.com/resonantlabs/trackrec/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logging.Info().
		Str("engine_version", cfg.EngineVersion).
		Str("audio_model", cfg.AudioModel).
		Bool("demo_mode", cfg.DemoMode).
		Msg("Starting trackrec with supervisor tree")

	reg, err := catalogue.Load(cfg.SongMetaPath, cfg.DemoMode)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalogue")
	}
	logging.Info().Int("tracks", reg.Len()).Msg("Catalogue loaded")
	metrics.ResourceLoaded.WithLabelValues("catalogue").Set(1)

	vocab, err := covisit.Load(cfg.Item2VecPath)
	if err != nil {
		logging.Warn().Err(err).Msg("Co-listening vocabulary unavailable, CF retrieval disabled")
		vocab = nil
	}
	metrics.ResourceLoaded.WithLabelValues("vocabulary").Set(boolToFloat(vocab != nil))

	var bundle *audioembed.Bundle
	if !cfg.DemoMode {
		bundle, err = audioembed.Load(cfg.AudioEmbPath(), cfg.AudioModel)
		if err != nil {
			logging.Warn().Err(err).Msg("Audio embedding bundle unavailable, hybrid fusion disabled")
			bundle = nil
		}
	}
	metrics.ResourceLoaded.WithLabelValues("audio_bundle").Set(boolToFloat(bundle != nil))

	eng := engine.New(engine.Config{
		EngineVersion:    cfg.EngineVersion,
		AudioModel:       cfg.AudioModel,
		DefaultK:         cfg.DefaultK,
		CandidateTopN:    cfg.CandidateTopN,
		Stage3Candidates: cfg.Stage3Candidates,
		AlphaAudio:       cfg.AlphaAudio,
		DemoMode:         cfg.DemoMode,
		Rerank: rerank.Scalars{
			MaxPerArtistSoft:      cfg.MaxPerArtistSoft,
			MaxPerArtistFinal:     cfg.MaxPerArtistFinal,
			PenaltyPerExtra:       cfg.PenaltyPerExtra,
			OffrailPenaltyGeneral: cfg.OffrailPenaltyGeneral,
			OffrailPenaltySpecial: cfg.OffrailPenaltySpecial,
		},
	}, reg, vocab, bundle, logging.Logger())

	store, err := cache.Open(cfg.CacheDir)
	if err != nil {
		logging.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("Result cache unavailable, running without caching")
		store = nil
	}
	metrics.ResourceLoaded.WithLabelValues("result_cache").Set(boolToFloat(store != nil))
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing result cache")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	handler := api.NewHandler(eng, reg, store, cfg.CacheTTL(), cfg.SongMetaAudioPath != "", logging.Logger())
	router := api.NewRouter(handler, api.DefaultRouterConfig())

	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:         cfg.MetricsAddr,
		Handler:      metricsMux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(apiServer, 10*time.Second))
	tree.AddMetricsService(services.NewHTTPServerService(metricsServer, 10*time.Second))
	logging.Info().Str("addr", apiServer.Addr).Str("metrics_addr", metricsServer.Addr).Msg("HTTP services added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
