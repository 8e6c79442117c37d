package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enecpp/financial-news-analyzer/middleware"
	"github.com/enecpp/financial-news-analyzer/services"
	"github.com/enecpp/financial-news-analyzer/types"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBackend struct {
	name       string
	configured bool
	saveErr    error
	calls      int
}

func (s *stubBackend) Name() string       { return s.name }
func (s *stubBackend) IsConfigured() bool { return s.configured }

func (s *stubBackend) Save(_ context.Context, _ *types.Feedback) error {
	s.calls++
	return s.saveErr
}

func setupFeedbackRouter(backends ...services.FeedbackBackend) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewFeedbackServiceWithRegistry(prometheus.NewRegistry(), backends...)
	handler := NewFeedbackHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/v1/feedback", handler.SubmitFeedback)
	return r
}

func postFeedback(t *testing.T, r *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/feedback", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitFeedback_Persisted(t *testing.T) {
	backend := &stubBackend{name: services.BackendCSV, configured: true}
	r := setupFeedbackRouter(backend)

	w := postFeedback(t, r, types.FeedbackCreate{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Great tool!",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feedback submitted successfully", resp.Status)
	assert.Equal(t, services.BackendCSV, resp.Backend)
	assert.Equal(t, 1, backend.calls)
}

func TestSubmitFeedback_ValidationFailure(t *testing.T) {
	backend := &stubBackend{name: services.BackendCSV, configured: true}
	r := setupFeedbackRouter(backend)

	w := postFeedback(t, r, types.FeedbackCreate{
		Name:    "",
		Email:   "bob@example.com",
		Message: "Hi",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Details, "name")
	assert.Zero(t, backend.calls, "no backend write on validation failure")
}

func TestSubmitFeedback_AllBackendsFailed(t *testing.T) {
	backend := &stubBackend{name: services.BackendCSV, configured: true, saveErr: errors.New("disk full")}
	r := setupFeedbackRouter(backend)

	w := postFeedback(t, r, types.FeedbackCreate{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Great tool!",
	})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Message, "disk full",
		"backend diagnostics must not leak to the user")
}

func TestSubmitFeedback_ChainShortCircuits(t *testing.T) {
	remote := &stubBackend{name: services.BackendIssueTracker, configured: true}
	csv := &stubBackend{name: services.BackendCSV, configured: true}
	r := setupFeedbackRouter(remote, csv)

	w := postFeedback(t, r, types.FeedbackCreate{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Great tool!",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, remote.calls)
	assert.Zero(t, csv.calls, "chain must stop at the first successful backend")
}

func TestSubmitFeedback_MalformedJSON(t *testing.T) {
	r := setupFeedbackRouter(&stubBackend{name: services.BackendCSV, configured: true})

	req := httptest.NewRequest(http.MethodPost, "/v1/feedback", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
