package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/actuallystonmai/course-recommendation-service/internal/config"
	"github.com/actuallystonmai/course-recommendation-service/internal/handler"
	"github.com/actuallystonmai/course-recommendation-service/internal/logging"
	"github.com/actuallystonmai/course-recommendation-service/internal/metrics"
	"github.com/actuallystonmai/course-recommendation-service/internal/model"
	"github.com/actuallystonmai/course-recommendation-service/internal/repository"
	"github.com/actuallystonmai/course-recommendation-service/internal/router"
	"github.com/actuallystonmai/course-recommendation-service/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	m := metrics.New(prometheus.NewRegistry())

	// ------------ Wiring ---------------
	repo := repository.NewRepository(cfg.UpstreamBaseURL, &http.Client{}, m)
	modelClient := model.NewClient(model.Config{
		Limit:                 cfg.Scoring.RecommendationLimit,
		ContributionThreshold: cfg.Scoring.ContributionThreshold,
		RelevanceThreshold:    cfg.Scoring.RelevanceThreshold,
	})
	svc := service.NewService(repo, modelClient, m, logging.Component(logger, "service"), service.Options{
		PassingScore:        cfg.Scoring.PassingScore,
		CompletionThreshold: cfg.Scoring.CompletionThreshold,
	})
	h := handler.NewHandler(svc, logging.Component(logger, "handler"))

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.Setup(h, m, logging.Component(logger, "http"), router.Options{AllowedOrigins: cfg.AllowedOrigins}),
	}

	// ---------------- Server --------------------
	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Str("upstream", cfg.UpstreamBaseURL).
			Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
