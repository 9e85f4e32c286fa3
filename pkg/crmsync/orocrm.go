package crmsync

import (
	"context"
	"net/http"

	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// OroCRM pulls leads from the OroCRM REST API in a single unpaginated
// fetch. Simplest of the adapters.
type OroCRM struct {
	adapter
}

// NewOroCRM creates the OroCRM sync adapter.
func NewOroCRM(registry *integration.Registry, log logger.Logger, httpClient *http.Client) *OroCRM {
	return &OroCRM{adapter{
		provider: models.ProviderOroCRM,
		registry: registry,
		http:     httpClient,
		log:      log,
	}}
}

// Name returns the provider key.
func (o *OroCRM) Name() string { return o.provider }

// Sync fetches all leads in one request, logs the batch, then stamps
// orocrm_last_sync_at.
func (o *OroCRM) Sync(ctx context.Context) (*SyncResult, error) {
	integ, baseURL, token, err := o.resolve(ctx, "access_token")
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Authorization": "Bearer " + token}

	var records []map[string]interface{}
	if err := o.getJSON(ctx, baseURL+"/api/leads", headers, &records); err != nil {
		o.logFailure(ctx, integ.ID, err)
		return nil, err
	}

	o.logBatch(ctx, integ.ID, "", 1, len(records))

	syncedAt, err := o.finish(ctx, integ, len(records), 1)
	if err != nil {
		return nil, err
	}

	return &SyncResult{
		Count:    len(records),
		Summary:  []BatchSummary{{Batch: 1, Count: len(records)}},
		SyncedAt: syncedAt,
	}, nil
}

// Status reports the OroCRM sync state without throwing on missing config.
func (o *OroCRM) Status(ctx context.Context) (*Status, error) {
	return o.status(ctx)
}
