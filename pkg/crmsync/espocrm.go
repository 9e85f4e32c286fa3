package crmsync

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

const espoPageSize = 200

// EspoCRM pulls leads from the EspoCRM REST API using limit/offset
// pagination until a short page signals the end.
type EspoCRM struct {
	adapter
}

// NewEspoCRM creates the EspoCRM sync adapter.
func NewEspoCRM(registry *integration.Registry, log logger.Logger, httpClient *http.Client) *EspoCRM {
	return &EspoCRM{adapter{
		provider: models.ProviderEspoCRM,
		registry: registry,
		http:     httpClient,
		log:      log,
	}}
}

// Name returns the provider key.
func (e *EspoCRM) Name() string { return e.provider }

type espoPage struct {
	Total int                      `json:"total"`
	List  []map[string]interface{} `json:"list"`
}

// Sync fetches lead pages until fewer than espoPageSize records come back,
// logging one entry per page, then stamps espocrm_last_sync_at.
func (e *EspoCRM) Sync(ctx context.Context) (*SyncResult, error) {
	integ, baseURL, apiKey, err := e.resolve(ctx, "api_key")
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"X-Api-Key": apiKey}

	var summary []BatchSummary
	offset := 0
	batch := 0
	total := 0
	for {
		url := fmt.Sprintf("%s/api/v1/Lead?maxSize=%d&offset=%d", baseURL, espoPageSize, offset)

		var resp espoPage
		if err := e.getJSON(ctx, url, headers, &resp); err != nil {
			e.logFailure(ctx, integ.ID, err)
			return nil, err
		}

		batch++
		count := len(resp.List)
		total += count
		summary = append(summary, BatchSummary{Batch: batch, Count: count})
		e.logBatch(ctx, integ.ID, "", batch, count)

		if count < espoPageSize {
			break
		}
		offset += espoPageSize
	}

	syncedAt, err := e.finish(ctx, integ, total, batch)
	if err != nil {
		return nil, err
	}

	return &SyncResult{Count: total, Summary: summary, SyncedAt: syncedAt}, nil
}

// Status reports the EspoCRM sync state without throwing on missing config.
func (e *EspoCRM) Status(ctx context.Context) (*Status, error) {
	return e.status(ctx)
}
