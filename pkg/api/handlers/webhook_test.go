package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/webhook"
)

func setupWebhookHandler(t *testing.T) (*WebhookHandler, *webhook.Service, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := webhook.NewService(client, logger.Nop())
	return NewWebhookHandler(svc), svc, client
}

func TestWebhookCreateEndpointReturnsSecretOnce(t *testing.T) {
	h, _, _ := setupWebhookHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/webhook-endpoints",
		`{"url":"https://consumer.example.com/hook","events":["lead.created"],"description":"test"}`)
	c.Set("user_email", "ops@example.com")
	require.NoError(t, h.CreateEndpoint(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	created := resp["data"].(map[string]interface{})
	assert.Len(t, created["secret"], 64)

	// the list view never includes the secret
	c2, rec2 := jsonContext(e, http.MethodGet, "/api/v1/webhook-endpoints", "")
	require.NoError(t, h.ListEndpoints(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
	assert.NotContains(t, rec2.Body.String(), created["secret"])
	assert.Contains(t, rec2.Body.String(), "ops@example.com")
}

func TestWebhookCreateEndpointValidation(t *testing.T) {
	h, _, _ := setupWebhookHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/", `{"url":"not-a-url","events":[]}`)
	require.NoError(t, h.CreateEndpoint(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookDeleteEndpoint(t *testing.T) {
	h, svc, _ := setupWebhookHandler(t)
	e := echo.New()
	ctx := context.Background()

	ep, err := svc.CreateEndpoint(ctx, "https://consumer.example.com/hook", []string{"lead.created"}, "", "")
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(ep.ID))
	require.NoError(t, h.DeleteEndpoint(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c2, rec2 := jsonContext(e, http.MethodDelete, "/", "")
	c2.SetParamNames("id")
	c2.SetParamValues(strconv.Itoa(ep.ID))
	require.NoError(t, h.DeleteEndpoint(c2))
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}

func TestWebhookTestDispatchValidation(t *testing.T) {
	h, _, _ := setupWebhookHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/", `{"data":{"x":1}}`)
	require.NoError(t, h.TestDispatch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// no subscribers means a dispatch is a successful no-op
	c2, rec2 := jsonContext(e, http.MethodPost, "/", `{"event":"lead.created","data":{"x":1}}`)
	require.NoError(t, h.TestDispatch(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestWebhookListDeliveriesEmpty(t *testing.T) {
	h, _, _ := setupWebhookHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodGet, "/?limit=10", "")
	require.NoError(t, h.ListDeliveries(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
