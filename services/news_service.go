package services

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/google/uuid"
)

var newsCompanies = []string{
	"Apple Inc.", "Microsoft Corp.", "Amazon.com Inc.", "Alphabet Inc.",
	"Tesla Inc.", "Meta Platforms Inc.", "Netflix Inc.", "NVIDIA Corp.",
}

var newsSources = []string{
	"Reuters", "Bloomberg", "Financial Times", "Wall Street Journal",
	"CNBC", "MarketWatch", "Yahoo Finance", "Seeking Alpha",
}

var newsCategories = []types.NewsCategory{
	types.CategoryEarnings,
	types.CategoryProductLaunch,
	types.CategoryMergerAcquisition,
	types.CategoryPartnership,
	types.CategoryRegulation,
	types.CategoryMarketAnalysis,
	types.CategoryLeadershipChange,
	types.CategoryInnovation,
}

// NewsService generates synthetic financial news articles. Every article is
// procedurally randomized; nothing here reflects real events.
type NewsService struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewNewsService() *NewsService {
	return NewNewsServiceWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewNewsServiceWithSource accepts a seeded source so tests get
// deterministic output.
func NewNewsServiceWithSource(rng *rand.Rand) *NewsService {
	return &NewsService{
		rng: rng,
		now: time.Now,
	}
}

// LatestNews generates limit articles with publication times spread over the
// last 72 hours, newest first.
func (s *NewsService) LatestNews(limit int) []types.NewsArticle {
	if limit <= 0 {
		limit = 20
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	articles := make([]types.NewsArticle, 0, limit)
	for i := 0; i < limit; i++ {
		articles = append(articles, s.generate())
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}

// NewsByCategory generates articles and keeps only those in the given
// category, up to limit.
func (s *NewsService) NewsByCategory(category types.NewsCategory, limit int) []types.NewsArticle {
	all := s.LatestNews(filterPool(limit))

	filtered := make([]types.NewsArticle, 0, limit)
	for _, a := range all {
		if a.Category == category {
			filtered = append(filtered, a)
		}
		if len(filtered) == limit {
			break
		}
	}
	return filtered
}

// CompanyNews generates articles and keeps only those mentioning the given
// company, matched case-insensitively, up to limit.
func (s *NewsService) CompanyNews(company string, limit int) []types.NewsArticle {
	all := s.LatestNews(filterPool(limit))
	needle := strings.ToLower(company)

	filtered := make([]types.NewsArticle, 0, limit)
	for _, a := range all {
		if strings.Contains(strings.ToLower(a.Company), needle) {
			filtered = append(filtered, a)
		}
		if len(filtered) == limit {
			break
		}
	}
	return filtered
}

func (s *NewsService) generate() types.NewsArticle {
	company := newsCompanies[s.rng.Intn(len(newsCompanies))]
	source := newsSources[s.rng.Intn(len(newsSources))]
	category := newsCategories[s.rng.Intn(len(newsCategories))]

	sentimentScore := s.rng.Float64()*2 - 1
	sentiment := "Neutral"
	if sentimentScore > 0.2 {
		sentiment = "Positive"
	} else if sentimentScore < -0.2 {
		sentiment = "Negative"
	}

	id := uuid.New().String()
	publishedAt := s.now().UTC().Add(-time.Duration(1+s.rng.Intn(72)) * time.Hour)

	return types.NewsArticle{
		ID:             id,
		Headline:       s.headline(company, category),
		Summary:        fmt.Sprintf("Latest developments from %s regarding %s.", company, strings.ReplaceAll(string(category), "_", " ")),
		Company:        company,
		Source:         source,
		Category:       category,
		Sentiment:      sentiment,
		SentimentScore: round3(sentimentScore),
		ImpactScore:    round3(0.1 + s.rng.Float64()*0.9),
		PublishedAt:    publishedAt,
		URL:            fmt.Sprintf("https://example.com/news/%s", id),
	}
}

func (s *NewsService) headline(company string, category types.NewsCategory) string {
	pick := func(options ...string) string {
		return options[s.rng.Intn(len(options))]
	}

	switch category {
	case types.CategoryEarnings:
		return fmt.Sprintf("%s Reports %s Q%d Earnings", company, pick("Strong", "Weak", "Mixed"), 1+s.rng.Intn(4))
	case types.CategoryProductLaunch:
		return fmt.Sprintf("%s Unveils %s Product Line", company, pick("Revolutionary", "New", "Updated"))
	case types.CategoryMergerAcquisition:
		return fmt.Sprintf("%s %s Tech Startup", company, pick("Acquires", "Merges with", "Partners with"))
	case types.CategoryPartnership:
		return fmt.Sprintf("%s Forms Strategic Partnership with Industry Leader", company)
	case types.CategoryRegulation:
		return fmt.Sprintf("New Regulations Impact %s's Operations", company)
	case types.CategoryMarketAnalysis:
		return fmt.Sprintf("Analysts %s %s Rating", pick("Upgrade", "Downgrade", "Maintain"), company)
	case types.CategoryLeadershipChange:
		return fmt.Sprintf("%s Announces %s Transition", company, pick("CEO", "CFO", "CTO"))
	case types.CategoryInnovation:
		return fmt.Sprintf("%s Breakthrough in %s Technology", company, pick("AI", "Cloud", "Hardware"))
	default:
		return fmt.Sprintf("%s News Update", company)
	}
}

// filterPool sizes the generation pool for filtered queries so a limit above
// the default pool can still be satisfied.
func filterPool(limit int) int {
	if limit > 50 {
		return limit
	}
	return 50
}

func round3(f float64) float64 {
	return float64(int(f*1000+0.5*sign(f))) / 1000
}

func sign(f float64) float64 {
	if f < 0 {
		return -1
	}
	return 1
}
