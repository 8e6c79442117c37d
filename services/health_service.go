package services

import (
	"context"
	"time"

	"github.com/enecpp/financial-news-analyzer/logger"
	csvstore "github.com/enecpp/financial-news-analyzer/store/csv"
	"github.com/enecpp/financial-news-analyzer/types"
	"go.uber.org/zap"
)

// ConnectionTester is implemented by remote backends that support a
// connectivity self-test.
type ConnectionTester interface {
	TestConnection(ctx context.Context) error
}

// HealthService reports the availability of the feedback backend chain.
// Optional remote backends degrade the status at worst; only a broken CSV
// store marks the service down, since it is the guaranteed write path.
type HealthService struct {
	store    *csvstore.Store
	backends []FeedbackBackend
	version  string
	log      *zap.SugaredLogger
}

func NewHealthService(store *csvstore.Store, backends []FeedbackBackend, version string) *HealthService {
	return &HealthService{
		store:    store,
		backends: backends,
		version:  version,
		log:      logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	csvStatus := h.checkStore()
	components["csv_store"] = csvStatus
	if csvStatus.Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	for _, backend := range h.backends {
		if backend.Name() == BackendCSV {
			continue
		}

		status := h.checkBackend(ctx, backend)
		components[backend.Name()] = status
		if status.Status == types.HealthStatusDegraded && overallStatus == types.HealthStatusUp {
			overallStatus = types.HealthStatusDegraded
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *HealthService) checkStore() types.HealthComponent {
	if err := h.store.CheckWritable(); err != nil {
		h.log.Errorw("CSV store health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "data directory not writable",
		}
	}
	return types.HealthComponent{Status: types.HealthStatusUp}
}

func (h *HealthService) checkBackend(ctx context.Context, backend FeedbackBackend) types.HealthComponent {
	if !backend.IsConfigured() {
		return types.HealthComponent{
			Status:  types.HealthStatusUp,
			Details: "not configured",
		}
	}

	tester, ok := backend.(ConnectionTester)
	if !ok {
		return types.HealthComponent{Status: types.HealthStatusUp}
	}

	testCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := tester.TestConnection(testCtx); err != nil {
		h.log.Warnw("Backend connectivity self-test failed",
			"backend", backend.Name(),
			"error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "connectivity self-test failed",
		}
	}

	return types.HealthComponent{Status: types.HealthStatusUp}
}
