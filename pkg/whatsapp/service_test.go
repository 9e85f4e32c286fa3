package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

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

func newTestService(t *testing.T) (*Service, *integration.Registry, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	key, err := integration.GenerateKey()
	require.NoError(t, err)
	cipher, err := integration.NewSecretCipher(key)
	require.NoError(t, err)

	registry := integration.NewRegistry(client, cipher, logger.Nop())
	return NewService(registry, logger.Nop(), nil), registry, client
}

func setupWhatsApp(t *testing.T, registry *integration.Registry, baseURL string) *ent.Integration {
	t.Helper()
	ctx := context.Background()

	integ, err := registry.Create(ctx, "whatsapp", models.ProviderWhatsApp, "")
	require.NoError(t, err)
	integ, err = registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{
		Config: &models.IntegrationConfig{
			BaseURL:         baseURL,
			WhatsAppPhoneID: "123456789",
		},
	})
	require.NoError(t, err)
	require.NoError(t, registry.SetSecret(ctx, integ.ID, "access_token", "wa-token"))
	return integ
}

func TestNormalizeE164(t *testing.T) {
	got, err := normalizeE164("+1 (555) 234-5678")
	require.NoError(t, err)
	assert.Equal(t, "+15552345678", got)

	_, err = normalizeE164("")
	assert.Error(t, err)

	// no country code: cannot be parsed without a region
	_, err = normalizeE164("5552345678")
	assert.Error(t, err)

	_, err = normalizeE164("+1999")
	assert.Error(t, err)
}

func TestSendText(t *testing.T) {
	svc, registry, client := newTestService(t)
	ctx := context.Background()

	var gotPath, gotAuth string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"messages": []map[string]string{{"id": "wamid.abc123"}},
		})
	}))
	defer srv.Close()

	integ := setupWhatsApp(t, registry, srv.URL)
	svc.http = srv.Client()

	result, err := svc.SendText(ctx, models.SendMessageRequest{
		To:   "+49 170 1234567",
		Body: "hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, "wamid.abc123", result.MessageID)
	assert.Equal(t, "+491701234567", result.To)
	assert.Equal(t, "/123456789/messages", gotPath)
	assert.Equal(t, "Bearer wa-token", gotAuth)
	assert.Equal(t, "whatsapp", gotBody["messaging_product"])
	assert.Equal(t, "+491701234567", gotBody["to"])
	assert.Equal(t, "hello there",
		gotBody["text"].(map[string]interface{})["body"])

	logged, err := client.IntegrationLog.Query().
		Where(integrationlog.IntegrationID(integ.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "whatsapp.send", logged.Event)
	assert.Equal(t, "success", string(logged.Status))
	assert.Equal(t, "wamid.abc123", logged.Response["message_id"])
}

func TestSendTextUpstreamFailureLogged(t *testing.T) {
	svc, registry, client := newTestService(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"invalid token"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	integ := setupWhatsApp(t, registry, srv.URL)
	svc.http = srv.Client()

	_, err := svc.SendText(ctx, models.SendMessageRequest{To: "+15552345678", Body: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")

	failed, err := client.IntegrationLog.Query().
		Where(
			integrationlog.IntegrationID(integ.ID),
			integrationlog.StatusEQ(integrationlog.StatusFailed),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "whatsapp.send", failed.Event)
}

func TestSendTextFailsFastWithoutConfig(t *testing.T) {
	svc, registry, _ := newTestService(t)
	ctx := context.Background()

	req := models.SendMessageRequest{To: "+15552345678", Body: "hi"}

	// no integration row
	_, err := svc.SendText(ctx, req)
	assert.ErrorIs(t, err, integration.ErrNotConfigured)

	// row without config
	integ, err := registry.Create(ctx, "whatsapp", models.ProviderWhatsApp, "")
	require.NoError(t, err)
	_, err = svc.SendText(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "baseUrl")

	// base URL but no phone id
	_, err = registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{
		Config: &models.IntegrationConfig{BaseURL: "https://graph.example.com"},
	})
	require.NoError(t, err)
	_, err = svc.SendText(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whatsapp_phone_id")

	// invalid recipient rejected before anything else
	_, err = svc.SendText(ctx, models.SendMessageRequest{To: "nonsense", Body: "hi"})
	assert.Error(t, err)
}
