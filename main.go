package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enecpp/financial-news-analyzer/config"
	"github.com/enecpp/financial-news-analyzer/handlers"
	"github.com/enecpp/financial-news-analyzer/logger"
	"github.com/enecpp/financial-news-analyzer/router"
	"github.com/enecpp/financial-news-analyzer/services"
	csvstore "github.com/enecpp/financial-news-analyzer/store/csv"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Feedback backend chain, in priority order. The CSV store is last and
	// always available.
	feedbackStore := csvstore.NewStore(cfg.Feedback.CSV.BaseDir, cfg.Feedback.CSV.Filename)
	backends := []services.FeedbackBackend{
		services.NewGitHubBackend(&cfg.Feedback.GitHub),
		services.NewSheetsBackend(&cfg.Feedback.Sheets),
		services.NewEmailBackend(&cfg.Feedback.Email),
		services.NewCSVBackend(feedbackStore),
	}

	feedbackService := services.NewFeedbackService(backends...)
	newsService := services.NewNewsService()
	marketService := services.NewMarketService()
	sentimentService := services.NewSentimentService()
	healthService := services.NewHealthService(feedbackStore, backends, cfg.Server.Version)

	deps := router.Dependencies{
		Config:          cfg,
		FeedbackHandler: handlers.NewFeedbackHandler(feedbackService),
		NewsHandler:     handlers.NewNewsHandler(newsService, sentimentService),
		MarketHandler:   handlers.NewMarketHandler(marketService),
		AnalysisHandler: handlers.NewAnalysisHandler(sentimentService),
		HealthHandler:   handlers.NewHealthHandler(healthService),
		Logger:          log,
	}

	r := router.SetupRouter(deps)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
}
