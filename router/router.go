package router

import (
	"github.com/enecpp/financial-news-analyzer/config"
	"github.com/enecpp/financial-news-analyzer/handlers"
	"github.com/enecpp/financial-news-analyzer/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies holds everything required to set up routes. Constructed
// explicitly in main; there is no global service container.
type Dependencies struct {
	Config          *config.Config
	FeedbackHandler *handlers.FeedbackHandler
	NewsHandler     *handlers.NewsHandler
	MarketHandler   *handlers.MarketHandler
	AnalysisHandler *handlers.AnalysisHandler
	HealthHandler   *handlers.HealthHandler
	Logger          *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes
// defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and metrics routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API group
	v1 := r.Group("/v1")
	{
		v1.POST("/feedback", deps.FeedbackHandler.SubmitFeedback)

		v1.GET("/news", deps.NewsHandler.GetNews)
		v1.GET("/news/sentiment", deps.NewsHandler.GetNewsSentiment)

		v1.POST("/analysis/sentiment", deps.AnalysisHandler.AnalyzeSentiment)

		marketRoutes := v1.Group("/market")
		{
			marketRoutes.GET("/prices", deps.MarketHandler.GetPrices)
			marketRoutes.GET("/history/:symbol", deps.MarketHandler.GetHistory)
			marketRoutes.GET("/overview", deps.MarketHandler.GetOverview)
		}
	}

	return r
}
