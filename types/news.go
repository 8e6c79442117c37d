package types

import "time"

// NewsCategory classifies a generated article.
type NewsCategory string

const (
	CategoryEarnings          NewsCategory = "earnings"
	CategoryProductLaunch     NewsCategory = "product_launch"
	CategoryMergerAcquisition NewsCategory = "merger_acquisition"
	CategoryPartnership       NewsCategory = "partnership"
	CategoryRegulation        NewsCategory = "regulation"
	CategoryMarketAnalysis    NewsCategory = "market_analysis"
	CategoryLeadershipChange  NewsCategory = "leadership_change"
	CategoryInnovation        NewsCategory = "innovation"
)

// NewsArticle is a synthetic financial news item. All articles are
// procedurally generated for demonstration; none reflect real events.
type NewsArticle struct {
	ID             string       `json:"id"`
	Headline       string       `json:"headline"`
	Summary        string       `json:"summary"`
	Company        string       `json:"company"`
	Source         string       `json:"source"`
	Category       NewsCategory `json:"category"`
	Sentiment      string       `json:"sentiment"`
	SentimentScore float64      `json:"sentiment_score"`
	ImpactScore    float64      `json:"impact_score"`
	PublishedAt    time.Time    `json:"published_at"`
	URL            string       `json:"url"`
}
