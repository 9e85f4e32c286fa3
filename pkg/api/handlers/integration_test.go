package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/pkg/crmsync"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
)

const testCipherKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

type recordingDispatcher struct {
	events []string
	data   []map[string]interface{}
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event string, data map[string]interface{}) error {
	d.events = append(d.events, event)
	d.data = append(d.data, data)
	return nil
}

func setupIntegrationHandler(t *testing.T) (*IntegrationHandler, *integration.Registry, *recordingDispatcher, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	cipher, err := integration.NewSecretCipher(testCipherKey)
	require.NoError(t, err)

	registry := integration.NewRegistry(client, cipher, logger.Nop())
	dispatcher := &recordingDispatcher{}
	mgr := crmsync.NewManager(registry, dispatcher, logger.Nop(), nil)

	return NewIntegrationHandler(registry, mgr), registry, dispatcher, client
}

func jsonContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIntegrationCreate(t *testing.T) {
	h, _, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/integrations",
		`{"name":"Zoho CRM","provider":"zoho","description":"main tenant"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "zoho", data["provider"])
}

func TestIntegrationCreateRejectsUnknownProvider(t *testing.T) {
	h, _, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/integrations",
		`{"name":"Bad","provider":"salesforce"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIntegrationCreateDuplicateConflicts(t *testing.T) {
	h, registry, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	_, err := registry.Create(context.Background(), "Zoho CRM", "zoho", "")
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/integrations",
		`{"name":"Zoho again","provider":"zoho"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestIntegrationGetNotConfigured(t *testing.T) {
	h, _, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodGet, "/", "")
	c.SetParamNames("provider")
	c.SetParamValues("espocrm")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegrationSetSecretIsWriteOnly(t *testing.T) {
	h, registry, _, client := setupIntegrationHandler(t)
	e := echo.New()
	ctx := context.Background()

	_, err := registry.Create(ctx, "EspoCRM", "espocrm", "")
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodPut, "/", `{"key":"api_key","value":"super-secret"}`)
	c.SetParamNames("provider")
	c.SetParamValues("espocrm")
	require.NoError(t, h.SetSecret(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "super-secret")

	// value is encrypted at rest
	row, err := client.IntegrationSecret.Query().
		Where(integrationsecret.Key("api_key")).
		Only(ctx)
	require.NoError(t, err)
	assert.NotContains(t, row.Ciphertext, "super-secret")

	// and comes back intact through the registry
	plain, err := registry.GetSecret(ctx, row.IntegrationID, "api_key")
	require.NoError(t, err)
	assert.Equal(t, "super-secret", plain)
}

func TestIntegrationSyncNotConfigured(t *testing.T) {
	h, _, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/", "")
	c.SetParamNames("provider")
	c.SetParamValues("zoho")
	require.NoError(t, h.Sync(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIntegrationSyncStatusAlwaysAnswers(t *testing.T) {
	h, _, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodGet, "/", "")
	c.SetParamNames("provider")
	c.SetParamValues("orocrm")
	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["isConfigured"])
}

func TestIntegrationInbound(t *testing.T) {
	h, registry, dispatcher, _ := setupIntegrationHandler(t)
	e := echo.New()
	ctx := context.Background()

	_, err := registry.Create(ctx, "EspoCRM", "espocrm", "")
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodPost, "/", `{"event":"Lead.update","id":"77"}`)
	c.SetParamNames("provider")
	c.SetParamValues("espocrm")
	require.NoError(t, h.Inbound(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, "espocrm.webhook", dispatcher.events[0])
}

func TestIntegrationInboundUnknownProvider(t *testing.T) {
	h, _, _, _ := setupIntegrationHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/", `{"event":"x"}`)
	c.SetParamNames("provider")
	c.SetParamValues("espocrm")
	require.NoError(t, h.Inbound(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
