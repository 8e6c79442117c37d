package handlers

import (
	"net/http"
	"strings"

	"github.com/enecpp/financial-news-analyzer/services"
	"github.com/gin-gonic/gin"
)

// MarketHandler serves the demo market data endpoints.
type MarketHandler struct {
	marketService *services.MarketService
}

func NewMarketHandler(marketService *services.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

// GetPrices returns current demo quotes. The symbols query parameter is a
// comma-separated list; omitted means all known symbols.
func (h *MarketHandler) GetPrices(c *gin.Context) {
	var symbols []string
	if raw := c.Query("symbols"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
				symbols = append(symbols, s)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"quotes": h.marketService.CurrentQuotes(symbols)})
}

// GetHistory returns a generated OHLC series for one symbol.
func (h *MarketHandler) GetHistory(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	period := c.DefaultQuery("period", "1Y")

	candles, err := h.marketService.History(symbol, period)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"symbol":  symbol,
		"period":  period,
		"candles": candles,
	})
}

// GetOverview returns aggregate demo market metrics.
func (h *MarketHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketService.Overview())
}
