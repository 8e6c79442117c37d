package types

import "time"

// SentimentLabel is the coarse classification derived from a score.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// SentimentScore carries the detailed result of analyzing one text.
// Score ranges from -1.0 (very negative) to 1.0 (very positive);
// Confidence from 0.0 to 1.0.
type SentimentScore struct {
	Score      float64        `json:"score"`
	Confidence float64        `json:"confidence"`
	Label      SentimentLabel `json:"label"`
	Positive   float64        `json:"positive_probability"`
	Negative   float64        `json:"negative_probability"`
	Neutral    float64        `json:"neutral_probability"`
	KeyPhrases []string       `json:"key_phrases,omitempty"`
	TextLength int            `json:"analyzed_text_length"`
}

// AnalysisResult wraps a sentiment analysis with identification metadata.
type AnalysisResult struct {
	ID        string         `json:"id"`
	SubjectID string         `json:"subject_id"`
	Sentiment SentimentScore `json:"sentiment"`
	CreatedAt time.Time      `json:"created_at"`
}

// SentimentRequest is the request body for ad-hoc text analysis.
type SentimentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=10000"`
}
