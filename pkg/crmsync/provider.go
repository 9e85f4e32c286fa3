package crmsync

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/metrics"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// Dispatcher broadcasts internal events to webhook subscribers.
type Dispatcher interface {
	Dispatch(ctx context.Context, event string, data map[string]interface{}) error
}

// BatchSummary describes one fetched page of a sync run.
type BatchSummary struct {
	Module string `json:"module,omitempty"`
	Batch  int    `json:"batch"`
	Count  int    `json:"count"`
}

// SyncResult is returned to the HTTP controller after a sync run.
type SyncResult struct {
	Count    int            `json:"count"`
	Summary  []BatchSummary `json:"summary,omitempty"`
	SyncedAt time.Time      `json:"syncedAt"`
}

// Status reports the sync state of one provider. Unconfigured providers are
// reported with IsConfigured=false instead of an error.
type Status struct {
	LastSyncAt   *time.Time
	LatestLog    *ent.IntegrationLog
	IsConfigured bool
}

// Provider is one external CRM pull-sync adapter.
type Provider interface {
	Name() string
	Sync(ctx context.Context) (*SyncResult, error)
	Status(ctx context.Context) (*Status, error)
}

// Manager owns the per-provider adapters and the inbound webhook path.
type Manager struct {
	registry   *integration.Registry
	dispatcher Dispatcher
	providers  map[string]Provider
	metrics    *metrics.Metrics
	log        logger.Logger
}

// NewManager creates a manager with all four CRM adapters registered.
// metrics may be nil.
func NewManager(registry *integration.Registry, dispatcher Dispatcher, log logger.Logger, m *metrics.Metrics) *Manager {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	mgr := &Manager{
		registry:   registry,
		dispatcher: dispatcher,
		providers:  make(map[string]Provider),
		metrics:    m,
		log:        log,
	}
	for _, p := range []Provider{
		NewZoho(registry, log, httpClient),
		NewSuiteCRM(registry, log, httpClient),
		NewEspoCRM(registry, log, httpClient),
		NewOroCRM(registry, log, httpClient),
	} {
		mgr.providers[p.Name()] = p
	}
	return mgr
}

// Provider returns the adapter for a CRM provider name.
func (m *Manager) Provider(name string) (Provider, error) {
	p, ok := m.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown sync provider: %s", name)
	}
	return p, nil
}

// Sync runs one pull sync for the named provider, recording metrics.
func (m *Manager) Sync(ctx context.Context, name string) (*SyncResult, error) {
	p, err := m.Provider(name)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := p.Sync(ctx)
	if m.metrics != nil {
		records := 0
		if result != nil {
			records = result.Count
		}
		m.metrics.RecordSyncRun(name, err == nil, records, time.Since(start))
	}
	return result, err
}

// Status returns the sync status for the named provider in response form.
func (m *Manager) Status(ctx context.Context, name string) (*models.SyncStatusResponse, error) {
	p, err := m.Provider(name)
	if err != nil {
		return nil, err
	}

	st, err := p.Status(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.SyncStatusResponse{
		LastSyncAt:   st.LastSyncAt,
		IsConfigured: st.IsConfigured,
	}
	if st.LatestLog != nil {
		resp.LatestLog = st.LatestLog
	}
	return resp, nil
}

// HandleInbound processes a generic inbound provider webhook: log the raw
// payload against the integration, then re-broadcast it internally under
// "<provider>.webhook". Works for any provider with an integration row,
// including whatsapp.
func (m *Manager) HandleInbound(ctx context.Context, provider string, payload map[string]interface{}) error {
	integ, err := m.registry.GetByProvider(ctx, provider)
	if err != nil {
		return err
	}

	event := provider + ".webhook"
	m.registry.LogExecution(ctx, integ.ID, event, integration.StatusSuccess, payload, nil)
	if m.metrics != nil {
		m.metrics.RecordInboundWebhook(provider)
	}

	if err := m.dispatcher.Dispatch(ctx, event, payload); err != nil {
		return fmt.Errorf("failed to re-broadcast %s: %w", event, err)
	}
	return nil
}
