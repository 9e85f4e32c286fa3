package crmsync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

const testCipherKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestRegistry(t *testing.T) (*integration.Registry, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	cipher, err := integration.NewSecretCipher(testCipherKey)
	require.NoError(t, err)

	return integration.NewRegistry(client, cipher, logger.Nop()), client
}

func setupIntegration(t *testing.T, registry *integration.Registry, provider, baseURL, secretKey, secretValue string) *ent.Integration {
	t.Helper()
	ctx := context.Background()

	integ, err := registry.Create(ctx, provider+" test", provider, "")
	require.NoError(t, err)

	integ, err = registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{
		Config: &models.IntegrationConfig{BaseURL: baseURL},
	})
	require.NoError(t, err)

	if secretKey != "" {
		require.NoError(t, registry.SetSecret(ctx, integ.ID, secretKey, secretValue))
	}
	return integ
}

func leadRecords(n int) []map[string]interface{} {
	records := make([]map[string]interface{}, n)
	for i := range records {
		records[i] = map[string]interface{}{"id": fmt.Sprintf("lead-%d", i)}
	}
	return records
}

func TestZohoSyncPagination(t *testing.T) {
	registry, client := newTestRegistry(t)
	ctx := context.Background()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		page := r.URL.Query().Get("page")

		resp := map[string]interface{}{}
		switch page {
		case "1":
			resp["data"] = leadRecords(2)
			resp["info"] = map[string]interface{}{
				"more_records": true,
				"next_page":    map[string]interface{}{"page": 2},
			}
		case "2":
			resp["data"] = leadRecords(1)
			resp["info"] = map[string]interface{}{"more_records": false}
		default:
			t.Errorf("unexpected page %q", page)
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	integ := setupIntegration(t, registry, models.ProviderZoho, srv.URL, "access_token", "zoho-token")

	zoho := NewZoho(registry, logger.Nop(), srv.Client())
	result, err := zoho.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Zoho-oauthtoken zoho-token", gotAuth)
	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Summary, 2)
	assert.Equal(t, BatchSummary{Batch: 1, Count: 2}, result.Summary[0])
	assert.Equal(t, BatchSummary{Batch: 2, Count: 1}, result.Summary[1])

	updated, err := registry.GetByProvider(ctx, models.ProviderZoho)
	require.NoError(t, err)
	require.NotNil(t, updated.Config.ZohoLastSyncAt)
	assert.WithinDuration(t, time.Now(), *updated.Config.ZohoLastSyncAt, 5*time.Second)

	// two page logs plus the final summary log
	count, err := client.IntegrationLog.Query().
		Where(
			integrationlog.IntegrationID(integ.ID),
			integrationlog.StatusEQ(integrationlog.StatusSuccess),
		).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSuiteCRMOffsetSafetyCap(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		// always a full page: without the cap this would never terminate
		json.NewEncoder(w).Encode(map[string]interface{}{"data": leadRecords(suitePageSize)})
	}))
	defer srv.Close()

	setupIntegration(t, registry, models.ProviderSuiteCRM, srv.URL, "access_token", "suite-token")

	suite := NewSuiteCRM(registry, logger.Nop(), srv.Client())
	result, err := suite.Sync(ctx)
	require.NoError(t, err)

	pagesPerModule := suiteMaxOffset / suitePageSize
	assert.Equal(t, int64(2*pagesPerModule), atomic.LoadInt64(&requests))
	assert.Equal(t, 2*suiteMaxOffset, result.Count)
}

func TestSuiteCRMIncrementalFilter(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	var sawFilter bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filter[date_modified][gt]") != "" {
			sawFilter = true
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"data": leadRecords(1)})
	}))
	defer srv.Close()

	integ := setupIntegration(t, registry, models.ProviderSuiteCRM, srv.URL, "access_token", "suite-token")

	lastSync := time.Now().Add(-time.Hour).UTC()
	_, err := registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{
		Config: &models.IntegrationConfig{BaseURL: srv.URL, LastSyncAt: &lastSync},
	})
	require.NoError(t, err)

	suite := NewSuiteCRM(registry, logger.Nop(), srv.Client())
	result, err := suite.Sync(ctx)
	require.NoError(t, err)

	assert.True(t, sawFilter, "expected date_modified filter when a last sync exists")
	assert.Equal(t, 2, result.Count)

	updated, err := registry.GetByProvider(ctx, models.ProviderSuiteCRM)
	require.NoError(t, err)
	require.NotNil(t, updated.Config.LastSyncAt)
	assert.True(t, updated.Config.LastSyncAt.After(lastSync))
}

func TestEspoCRMStopsOnShortPage(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "espo-key", r.Header.Get("X-Api-Key"))

		offset := r.URL.Query().Get("offset")
		list := leadRecords(espoPageSize)
		if offset != "0" {
			list = leadRecords(5)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"total": 205, "list": list})
	}))
	defer srv.Close()

	setupIntegration(t, registry, models.ProviderEspoCRM, srv.URL, "api_key", "espo-key")

	espo := NewEspoCRM(registry, logger.Nop(), srv.Client())
	result, err := espo.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 205, result.Count)
	require.Len(t, result.Summary, 2)
	assert.Equal(t, 5, result.Summary[1].Count)

	updated, err := registry.GetByProvider(ctx, models.ProviderEspoCRM)
	require.NoError(t, err)
	assert.NotNil(t, updated.Config.EspoLastSyncAt)
}

func TestOroCRMSingleFetch(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer oro-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/leads", r.URL.Path)
		json.NewEncoder(w).Encode(leadRecords(7))
	}))
	defer srv.Close()

	setupIntegration(t, registry, models.ProviderOroCRM, srv.URL, "access_token", "oro-token")

	oro := NewOroCRM(registry, logger.Nop(), srv.Client())
	result, err := oro.Sync(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, result.Count)
	require.Len(t, result.Summary, 1)
	assert.Equal(t, BatchSummary{Batch: 1, Count: 7}, result.Summary[0])
}

func TestSyncFailsFastWithoutConfig(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	var requests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
	}))
	defer srv.Close()

	// no integration row at all
	zoho := NewZoho(registry, logger.Nop(), srv.Client())
	_, err := zoho.Sync(ctx)
	assert.ErrorIs(t, err, integration.ErrNotConfigured)

	// row exists but has no base URL
	integ, err := registry.Create(ctx, "zoho", models.ProviderZoho, "")
	require.NoError(t, err)
	_, err = zoho.Sync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseUrl")

	// base URL set but the credential is missing
	_, err = registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{
		Config: &models.IntegrationConfig{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	_, err = zoho.Sync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access_token")

	assert.Equal(t, int64(0), atomic.LoadInt64(&requests), "no HTTP call should happen before config checks")
}

func TestSyncDisabledIntegration(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	integ := setupIntegration(t, registry, models.ProviderOroCRM, "http://unused.invalid", "access_token", "tok")
	disabled := false
	_, err := registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{IsActive: &disabled})
	require.NoError(t, err)

	oro := NewOroCRM(registry, logger.Nop(), http.DefaultClient)
	_, err = oro.Sync(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disabled")
}

func TestSyncUpstreamErrorIsLogged(t *testing.T) {
	registry, client := newTestRegistry(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	integ := setupIntegration(t, registry, models.ProviderZoho, srv.URL, "access_token", "tok")

	zoho := NewZoho(registry, logger.Nop(), srv.Client())
	_, err := zoho.Sync(ctx)
	require.Error(t, err)

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusTooManyRequests, ue.StatusCode)

	failed, err := client.IntegrationLog.Query().
		Where(
			integrationlog.IntegrationID(integ.ID),
			integrationlog.StatusEQ(integrationlog.StatusFailed),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "zoho.sync", failed.Event)
	assert.EqualValues(t, http.StatusTooManyRequests, failed.Response["status_code"])
}

func TestStatusReporting(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	zoho := NewZoho(registry, logger.Nop(), http.DefaultClient)

	// nothing configured: sentinel status, no error
	st, err := zoho.Status(ctx)
	require.NoError(t, err)
	assert.False(t, st.IsConfigured)
	assert.Nil(t, st.LastSyncAt)
	assert.Nil(t, st.LatestLog)

	// configured but never synced
	integ := setupIntegration(t, registry, models.ProviderZoho, "https://crm.example.com", "access_token", "tok")
	st, err = zoho.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.IsConfigured)
	assert.Nil(t, st.LastSyncAt)

	// after a sync stamp and a log row
	now := time.Now().UTC()
	cfg := integ.Config
	cfg.BaseURL = "https://crm.example.com"
	cfg.SetLastSync(models.ProviderZoho, now)
	_, err = registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{Config: &cfg})
	require.NoError(t, err)
	registry.LogExecution(ctx, integ.ID, "zoho.sync", integration.StatusSuccess, nil, nil)

	st, err = zoho.Status(ctx)
	require.NoError(t, err)
	assert.True(t, st.IsConfigured)
	require.NotNil(t, st.LastSyncAt)
	assert.WithinDuration(t, now, *st.LastSyncAt, time.Second)
	require.NotNil(t, st.LatestLog)
	assert.Equal(t, "zoho.sync", st.LatestLog.Event)
}

func TestManagerUnknownProvider(t *testing.T) {
	registry, _ := newTestRegistry(t)

	mgr := NewManager(registry, &recordingDispatcher{}, logger.Nop(), nil)

	_, err := mgr.Sync(context.Background(), "salesforce")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sync provider")
}

type recordingDispatcher struct {
	events []string
	data   []map[string]interface{}
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event string, data map[string]interface{}) error {
	d.events = append(d.events, event)
	d.data = append(d.data, data)
	return nil
}

func TestHandleInbound(t *testing.T) {
	registry, client := newTestRegistry(t)
	ctx := context.Background()

	integ := setupIntegration(t, registry, models.ProviderEspoCRM, "https://espo.example.com", "", "")

	dispatcher := &recordingDispatcher{}
	mgr := NewManager(registry, dispatcher, logger.Nop(), nil)

	payload := map[string]interface{}{"entityType": "Lead", "id": "abc-123"}
	require.NoError(t, mgr.HandleInbound(ctx, models.ProviderEspoCRM, payload))

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, "espocrm.webhook", dispatcher.events[0])
	assert.Equal(t, "abc-123", dispatcher.data[0]["id"])

	logged, err := client.IntegrationLog.Query().
		Where(integrationlog.IntegrationID(integ.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "espocrm.webhook", logged.Event)
	assert.Equal(t, "Lead", logged.Payload["entityType"])

	// unknown provider: no dispatch happens
	err = mgr.HandleInbound(ctx, models.ProviderZoho, payload)
	assert.ErrorIs(t, err, integration.ErrNotConfigured)
	assert.Len(t, dispatcher.events, 1)
}
