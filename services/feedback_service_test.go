package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	name       string
	configured bool
	saveErr    error
	calls      int
	records    []types.Feedback
}

func (f *fakeBackend) Name() string       { return f.name }
func (f *fakeBackend) IsConfigured() bool { return f.configured }

func (f *fakeBackend) Save(_ context.Context, record *types.Feedback) error {
	f.calls++
	f.records = append(f.records, *record)
	return f.saveErr
}

func newTestService(backends ...FeedbackBackend) *FeedbackService {
	return NewFeedbackServiceWithRegistry(prometheus.NewRegistry(), backends...)
}

func TestSubmit_ValidationFailed(t *testing.T) {
	tests := []struct {
		name    string
		inName  string
		inEmail string
		inMsg   string
		missing []string
	}{
		{"empty name", "", "bob@example.com", "Hi", []string{"name"}},
		{"whitespace name", "   ", "bob@example.com", "Hi", []string{"name"}},
		{"empty email", "Bob", "", "Hi", []string{"email"}},
		{"empty message", "Bob", "bob@example.com", "  ", []string{"message"}},
		{"all empty", "", " ", "", []string{"name", "email", "message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{name: BackendCSV, configured: true}
			svc := newTestService(backend)

			outcome := svc.Submit(context.Background(), tt.inName, tt.inEmail, tt.inMsg)

			assert.Equal(t, types.OutcomeValidationFailed, outcome.Kind)
			assert.Equal(t, tt.missing, outcome.MissingFields)
			assert.Zero(t, backend.calls, "no backend should be invoked on validation failure")
		})
	}
}

func TestSubmit_FirstBackendWins(t *testing.T) {
	b1 := &fakeBackend{name: BackendIssueTracker, configured: true}
	b2 := &fakeBackend{name: BackendSpreadsheet, configured: true}
	b3 := &fakeBackend{name: BackendCSV, configured: true}
	svc := newTestService(b1, b2, b3)

	outcome := svc.Submit(context.Background(), "Alice", "alice@example.com", "Great tool!")

	assert.Equal(t, types.OutcomePersisted, outcome.Kind)
	assert.Equal(t, BackendIssueTracker, outcome.Backend)
	assert.Equal(t, 1, b1.calls)
	assert.Zero(t, b2.calls)
	assert.Zero(t, b3.calls)
}

func TestSubmit_FallsThroughOnFailure(t *testing.T) {
	b1 := &fakeBackend{name: BackendIssueTracker, configured: true, saveErr: errors.New("boom")}
	b2 := &fakeBackend{name: BackendSpreadsheet, configured: true}
	b3 := &fakeBackend{name: BackendCSV, configured: true}
	svc := newTestService(b1, b2, b3)

	outcome := svc.Submit(context.Background(), "Alice", "alice@example.com", "Great tool!")

	assert.Equal(t, types.OutcomePersisted, outcome.Kind)
	assert.Equal(t, BackendSpreadsheet, outcome.Backend)
	assert.Equal(t, 1, b1.calls, "failed backend is attempted exactly once, never retried")
	assert.Equal(t, 1, b2.calls)
	assert.Zero(t, b3.calls)
}

func TestSubmit_SkipsUnconfiguredBackends(t *testing.T) {
	b1 := &fakeBackend{name: BackendIssueTracker, configured: false}
	b2 := &fakeBackend{name: BackendSpreadsheet, configured: false}
	csv := &fakeBackend{name: BackendCSV, configured: true}
	svc := newTestService(b1, b2, csv)

	outcome := svc.Submit(context.Background(), "Alice", "alice@example.com", "Great tool!")

	assert.Equal(t, types.OutcomePersisted, outcome.Kind)
	assert.Equal(t, BackendCSV, outcome.Backend)
	assert.Zero(t, b1.calls, "unconfigured backend must not be attempted")
	assert.Zero(t, b2.calls)
	assert.Equal(t, 1, csv.calls)
}

func TestSubmit_AllBackendsFailed(t *testing.T) {
	b1 := &fakeBackend{name: BackendIssueTracker, configured: true, saveErr: errors.New("http 500")}
	csv := &fakeBackend{name: BackendCSV, configured: true, saveErr: errors.New("disk full")}
	svc := newTestService(b1, csv)

	outcome := svc.Submit(context.Background(), "Alice", "alice@example.com", "Great tool!")

	assert.Equal(t, types.OutcomeAllBackendsFailed, outcome.Kind)
	assert.Empty(t, outcome.Backend)
	assert.Equal(t, 1, b1.calls)
	assert.Equal(t, 1, csv.calls)
}

func TestSubmit_RecordImmutableAcrossAttempts(t *testing.T) {
	b1 := &fakeBackend{name: BackendIssueTracker, configured: true, saveErr: errors.New("boom")}
	b2 := &fakeBackend{name: BackendCSV, configured: true}
	svc := newTestService(b1, b2)

	outcome := svc.Submit(context.Background(), "  Alice  ", " alice@example.com ", " Great tool! ")

	require.Equal(t, types.OutcomePersisted, outcome.Kind)
	require.Len(t, b1.records, 1)
	require.Len(t, b2.records, 1)

	first := b1.records[0]
	second := b2.records[0]
	assert.Equal(t, first, second, "the record must not change between backend attempts")

	assert.Equal(t, "Alice", first.Name)
	assert.Equal(t, "alice@example.com", first.Email)
	assert.Equal(t, "Great tool!", first.Message)

	ts, err := time.Parse(time.RFC3339, first.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
