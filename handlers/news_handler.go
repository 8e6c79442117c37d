package handlers

import (
	"net/http"
	"strconv"

	"github.com/enecpp/financial-news-analyzer/services"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/gin-gonic/gin"
)

const maxNewsLimit = 100

// NewsHandler serves the procedurally generated news feed.
type NewsHandler struct {
	newsService      *services.NewsService
	sentimentService *services.SentimentService
}

func NewNewsHandler(newsService *services.NewsService, sentimentService *services.SentimentService) *NewsHandler {
	return &NewsHandler{
		newsService:      newsService,
		sentimentService: sentimentService,
	}
}

// GetNews returns the latest generated articles. Supports limit, category
// and company query parameters.
func (h *NewsHandler) GetNews(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 20)

	if company := c.Query("company"); company != "" {
		c.JSON(http.StatusOK, gin.H{"news": h.newsService.CompanyNews(company, limit)})
		return
	}

	if category := c.Query("category"); category != "" {
		articles := h.newsService.NewsByCategory(types.NewsCategory(category), limit)
		c.JSON(http.StatusOK, gin.H{"news": articles})
		return
	}

	c.JSON(http.StatusOK, gin.H{"news": h.newsService.LatestNews(limit)})
}

// GetNewsSentiment generates a batch of articles and summarizes their
// sentiment distribution.
func (h *NewsHandler) GetNewsSentiment(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 50)
	articles := h.newsService.LatestNews(limit)

	var positive, negative, neutral int
	var scoreSum float64
	for _, a := range articles {
		scoreSum += a.SentimentScore
		switch a.Sentiment {
		case "Positive":
			positive++
		case "Negative":
			negative++
		default:
			neutral++
		}
	}

	avg := 0.0
	if len(articles) > 0 {
		avg = scoreSum / float64(len(articles))
	}

	c.JSON(http.StatusOK, gin.H{
		"article_count": len(articles),
		"positive":      positive,
		"negative":      negative,
		"neutral":       neutral,
		"average_score": avg,
	})
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	if limit > maxNewsLimit {
		return maxNewsLimit
	}
	return limit
}
