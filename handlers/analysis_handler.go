package handlers

import (
	"net/http"

	"github.com/enecpp/financial-news-analyzer/services"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/gin-gonic/gin"
)

// AnalysisHandler serves ad-hoc sentiment analysis of caller-supplied text.
type AnalysisHandler struct {
	sentimentService *services.SentimentService
}

func NewAnalysisHandler(sentimentService *services.SentimentService) *AnalysisHandler {
	return &AnalysisHandler{sentimentService: sentimentService}
}

// AnalyzeSentiment scores the supplied text with the keyword analyzer.
func (h *AnalysisHandler) AnalyzeSentiment(c *gin.Context) {
	var req types.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypeBind)
		return
	}

	result := h.sentimentService.AnalyzeAsResult("adhoc", req.Text)
	c.JSON(http.StatusOK, result)
}
