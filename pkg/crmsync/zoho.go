package crmsync

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

const zohoPageSize = 200

// Zoho pulls leads from the Zoho CRM v2 REST API. Pagination follows the
// info.next_page cursor returned with each page.
type Zoho struct {
	adapter
}

// NewZoho creates the Zoho sync adapter.
func NewZoho(registry *integration.Registry, log logger.Logger, httpClient *http.Client) *Zoho {
	return &Zoho{adapter{
		provider: models.ProviderZoho,
		registry: registry,
		http:     httpClient,
		log:      log,
	}}
}

// Name returns the provider key.
func (z *Zoho) Name() string { return z.provider }

type zohoPage struct {
	Data []map[string]interface{} `json:"data"`
	Info struct {
		MoreRecords bool `json:"more_records"`
		NextPage    struct {
			Page int `json:"page"`
		} `json:"next_page"`
	} `json:"info"`
}

// Sync fetches all lead pages, logging one entry per page, then stamps
// zoho_last_sync_at.
func (z *Zoho) Sync(ctx context.Context) (*SyncResult, error) {
	integ, baseURL, token, err := z.resolve(ctx, "access_token")
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Authorization": "Zoho-oauthtoken " + token}

	var summary []BatchSummary
	page := 1
	batch := 0
	total := 0
	for {
		url := fmt.Sprintf("%s/crm/v2/Leads?page=%d&per_page=%d", baseURL, page, zohoPageSize)

		var resp zohoPage
		if err := z.getJSON(ctx, url, headers, &resp); err != nil {
			z.logFailure(ctx, integ.ID, err)
			return nil, err
		}

		batch++
		total += len(resp.Data)
		summary = append(summary, BatchSummary{Batch: batch, Count: len(resp.Data)})
		z.logBatch(ctx, integ.ID, "", batch, len(resp.Data))

		if resp.Info.NextPage.Page == 0 {
			break
		}
		page = resp.Info.NextPage.Page
	}

	syncedAt, err := z.finish(ctx, integ, total, batch)
	if err != nil {
		return nil, err
	}

	return &SyncResult{Count: total, Summary: summary, SyncedAt: syncedAt}, nil
}

// Status reports the Zoho sync state without throwing on missing config.
func (z *Zoho) Status(ctx context.Context) (*Status, error) {
	return z.status(ctx)
}
