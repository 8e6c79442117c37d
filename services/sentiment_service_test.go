package services

import (
	"testing"

	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_PositiveText(t *testing.T) {
	svc := NewSentimentService()

	score := svc.Analyze("Strong growth and record profit, analysts recommend buy")

	assert.Equal(t, types.SentimentPositive, score.Label)
	assert.Greater(t, score.Score, 0.2)
	assert.Greater(t, score.Confidence, 0.0)
	assert.NotEmpty(t, score.KeyPhrases)
}

func TestAnalyze_NegativeText(t *testing.T) {
	svc := NewSentimentService()

	score := svc.Analyze("Shares plunge amid bankruptcy risk and weak earnings miss")

	assert.Equal(t, types.SentimentNegative, score.Label)
	assert.Less(t, score.Score, -0.2)
}

func TestAnalyze_NeutralText(t *testing.T) {
	svc := NewSentimentService()

	score := svc.Analyze("The index was flat and steady, holding in a narrow range")

	assert.Equal(t, types.SentimentNeutral, score.Label)
	assert.InDelta(t, 0, score.Score, 0.2)
}

func TestAnalyze_EmptyText(t *testing.T) {
	svc := NewSentimentService()

	for _, text := range []string{"", "   ", "\n\t"} {
		score := svc.Analyze(text)
		assert.Equal(t, types.SentimentNeutral, score.Label)
		assert.Zero(t, score.Score)
		assert.Zero(t, score.Confidence)
		assert.Zero(t, score.TextLength)
	}
}

func TestAnalyze_NoKeywordsIsNeutral(t *testing.T) {
	svc := NewSentimentService()

	score := svc.Analyze("The quarterly report was published on Tuesday")

	assert.Equal(t, types.SentimentNeutral, score.Label)
	assert.Zero(t, score.Confidence)
	assert.Empty(t, score.KeyPhrases)
}

func TestAnalyze_ProbabilitiesSumToOne(t *testing.T) {
	svc := NewSentimentService()

	score := svc.Analyze("growth profit loss decline stable hold")

	assert.InDelta(t, 1.0, score.Positive+score.Negative+score.Neutral, 0.01)
}

func TestAnalyzeAsResult(t *testing.T) {
	svc := NewSentimentService()

	result := svc.AnalyzeAsResult("news-1", "bullish rally with strong gains")

	require.NotEmpty(t, result.ID)
	assert.Equal(t, "news-1", result.SubjectID)
	assert.Equal(t, types.SentimentPositive, result.Sentiment.Label)
	assert.False(t, result.CreatedAt.IsZero())
}
