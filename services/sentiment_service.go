package services

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/google/uuid"
)

var wordPattern = regexp.MustCompile(`[a-z]+`)

// SentimentService scores financial text with fixed keyword lexicons. It is
// deliberately simple: the dashboard needs plausible demo scores, not real
// inference.
type SentimentService struct {
	positive map[string]bool
	negative map[string]bool
	neutral  map[string]bool
}

func NewSentimentService() *SentimentService {
	return &SentimentService{
		positive: wordSet(
			"growth", "profit", "gain", "increase", "rise", "bull", "bullish",
			"positive", "strong", "robust", "outperform", "exceed", "beat",
			"surge", "rally", "boom", "upturn", "recovery", "expand", "improve",
			"optimistic", "confident", "breakthrough", "milestone", "record",
			"success", "achievement", "upward", "buy", "upgrade", "recommend",
		),
		negative: wordSet(
			"loss", "decline", "fall", "drop", "bear", "bearish", "negative",
			"weak", "poor", "underperform", "miss", "fail", "crash", "plunge",
			"collapse", "recession", "downturn", "crisis", "risk", "concern",
			"worry", "pessimistic", "uncertainty", "volatile", "sell", "downgrade",
			"warning", "threat", "challenge", "struggle", "bankruptcy", "debt",
		),
		neutral: wordSet(
			"stable", "maintain", "hold", "unchanged", "steady", "flat",
			"neutral", "sideways", "consolidate", "range", "monitor", "watch",
		),
	}
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// Analyze scores a single text. Empty or whitespace-only input yields a
// neutral score with zero confidence.
func (s *SentimentService) Analyze(text string) types.SentimentScore {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return types.SentimentScore{
			Label:    types.SentimentNeutral,
			Positive: 0.33, Negative: 0.33, Neutral: 0.33,
		}
	}

	words := wordPattern.FindAllString(strings.ToLower(trimmed), -1)

	var posHits, negHits, neuHits float64
	phraseCounts := make(map[string]int)
	for _, w := range words {
		switch {
		case s.positive[w]:
			posHits++
			phraseCounts[w]++
		case s.negative[w]:
			negHits++
			phraseCounts[w]++
		case s.neutral[w]:
			neuHits++
			phraseCounts[w]++
		}
	}

	total := posHits + negHits + neuHits
	var posProb, negProb, neuProb float64
	if total > 0 {
		posProb = posHits / total
		negProb = negHits / total
		neuProb = neuHits / total
	} else {
		posProb, negProb, neuProb = 0.33, 0.33, 0.33
	}

	score := posProb - negProb

	return types.SentimentScore{
		Score:      score,
		Confidence: s.confidence(posProb, negProb, neuProb, total),
		Label:      labelFor(score),
		Positive:   posProb,
		Negative:   negProb,
		Neutral:    neuProb,
		KeyPhrases: topPhrases(phraseCounts, 10),
		TextLength: len(trimmed),
	}
}

// AnalyzeAsResult wraps Analyze with identification metadata for API
// responses.
func (s *SentimentService) AnalyzeAsResult(subjectID, text string) types.AnalysisResult {
	return types.AnalysisResult{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Sentiment: s.Analyze(text),
		CreatedAt: time.Now().UTC(),
	}
}

// confidence grows with the dominance of the winning class and with the
// number of keyword hits, capped at 1.0.
func (s *SentimentService) confidence(pos, neg, neu, hits float64) float64 {
	if hits == 0 {
		return 0
	}

	maxProb := pos
	if neg > maxProb {
		maxProb = neg
	}
	if neu > maxProb {
		maxProb = neu
	}

	volume := hits / 10.0
	if volume > 1 {
		volume = 1
	}

	c := maxProb * (0.5 + 0.5*volume)
	if c > 1 {
		c = 1
	}
	return c
}

func labelFor(score float64) types.SentimentLabel {
	switch {
	case score > 0.2:
		return types.SentimentPositive
	case score < -0.2:
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}

func topPhrases(counts map[string]int, limit int) []string {
	if len(counts) == 0 {
		return nil
	}

	phrases := make([]string, 0, len(counts))
	for p := range counts {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if counts[phrases[i]] != counts[phrases[j]] {
			return counts[phrases[i]] > counts[phrases[j]]
		}
		return phrases[i] < phrases[j]
	})

	if len(phrases) > limit {
		phrases = phrases[:limit]
	}
	return phrases
}
