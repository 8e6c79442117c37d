package services

import (
	"context"
	"strings"
	"time"

	"github.com/enecpp/financial-news-analyzer/logger"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// FeedbackMetrics tracks submission outcomes per backend.
type FeedbackMetrics struct {
	submitLatency      prometheus.Histogram
	persistedTotal     *prometheus.CounterVec
	backendFailures    *prometheus.CounterVec
	validationFailures prometheus.Counter
}

// FeedbackService runs a submission through the prioritized backend chain,
// guaranteeing at most one write per backend and at least one successful
// persistence attempt before reporting success.
type FeedbackService struct {
	backends []FeedbackBackend
	metrics  *FeedbackMetrics
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewFeedbackService creates the pipeline with backends in priority order.
// The last backend is expected to be the always-available CSV store.
func NewFeedbackService(backends ...FeedbackBackend) *FeedbackService {
	return NewFeedbackServiceWithRegistry(prometheus.DefaultRegisterer, backends...)
}

// NewFeedbackServiceWithRegistry is like NewFeedbackService but registers
// metrics on the given registry. Used by tests to avoid duplicate
// registration on the default registry.
func NewFeedbackServiceWithRegistry(reg prometheus.Registerer, backends ...FeedbackBackend) *FeedbackService {
	metrics := &FeedbackMetrics{
		submitLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "feedback_submit_duration_seconds",
			Help:    "Time taken to run a submission through the backend chain",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		persistedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedback_persisted_total",
			Help: "Feedback submissions persisted, by backend",
		}, []string{"backend"}),
		backendFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedback_backend_failures_total",
			Help: "Feedback backend write failures, by backend",
		}, []string{"backend"}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feedback_validation_failures_total",
			Help: "Feedback submissions rejected before any backend attempt",
		}),
	}

	reg.MustRegister(metrics.submitLatency)
	reg.MustRegister(metrics.persistedTotal)
	reg.MustRegister(metrics.backendFailures)
	reg.MustRegister(metrics.validationFailures)

	return &FeedbackService{
		backends: backends,
		metrics:  metrics,
		log:      logger.GetLogger(),
		now:      time.Now,
	}
}

// Submit validates the three input fields, builds an immutable record with
// the current UTC timestamp, and walks the backend chain in priority order.
// The first successful backend wins; later backends are not attempted. A
// failed backend is skipped, never retried within a single call.
func (s *FeedbackService) Submit(ctx context.Context, name, email, message string) types.FeedbackOutcome {
	startTime := s.now()
	defer func() {
		s.metrics.submitLatency.Observe(time.Since(startTime).Seconds())
	}()

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		s.metrics.validationFailures.Inc()
		return types.FeedbackOutcome{
			Kind:          types.OutcomeValidationFailed,
			MissingFields: missing,
		}
	}

	record := &types.Feedback{
		Timestamp: startTime.UTC().Format(time.RFC3339),
		Name:      name,
		Email:     email,
		Message:   message,
	}

	for _, backend := range s.backends {
		if !backend.IsConfigured() {
			s.log.Debugw("Feedback backend unconfigured, skipping",
				"backend", backend.Name())
			continue
		}

		if err := backend.Save(ctx, record); err != nil {
			// Diagnostic detail stays in logs; the caller only sees
			// that the chain moved on.
			s.metrics.backendFailures.WithLabelValues(backend.Name()).Inc()
			s.log.Warnw("Feedback backend write failed",
				"backend", backend.Name(),
				"error", err,
				"submitter", logger.MaskEmail(record.Email))
			continue
		}

		s.metrics.persistedTotal.WithLabelValues(backend.Name()).Inc()
		s.log.Infow("Feedback persisted",
			"backend", backend.Name(),
			"submitter", logger.MaskEmail(record.Email))
		return types.FeedbackOutcome{
			Kind:    types.OutcomePersisted,
			Backend: backend.Name(),
		}
	}

	s.log.Errorw("All feedback backends failed",
		"backends", len(s.backends),
		"submitter", logger.MaskEmail(record.Email))
	return types.FeedbackOutcome{Kind: types.OutcomeAllBackendsFailed}
}
