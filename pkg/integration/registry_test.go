package integration

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

func newTestRegistry(t *testing.T) (*Registry, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	key, err := GenerateKey()
	require.NoError(t, err)
	cipher, err := NewSecretCipher(key)
	require.NoError(t, err)

	return NewRegistry(client, cipher, logger.Nop()), client
}

func TestGetByProviderNotConfigured(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := registry.GetByProvider(ctx, models.ProviderZoho)
	assert.ErrorIs(t, err, ErrNotConfigured)

	created, err := registry.Create(ctx, "Zoho CRM", models.ProviderZoho, "main zoho account")
	require.NoError(t, err)
	assert.True(t, created.IsActive)

	got, err := registry.GetByProvider(ctx, models.ProviderZoho)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Zoho CRM", got.Name)
}

func TestCreateRejectsDuplicateProvider(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	_, err := registry.Create(ctx, "first", models.ProviderEspoCRM, "")
	require.NoError(t, err)

	_, err = registry.Create(ctx, "second", models.ProviderEspoCRM, "")
	assert.Error(t, err, "provider column is unique")
}

func TestUpdatePartialFields(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	integ, err := registry.Create(ctx, "suite", models.ProviderSuiteCRM, "")
	require.NoError(t, err)

	cfg := &models.IntegrationConfig{BaseURL: "https://suite.example.com"}
	updated, err := registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{
		Config:   cfg,
		Triggers: []string{"lead.created"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://suite.example.com", updated.Config.BaseURL)
	assert.Equal(t, []string{"lead.created"}, updated.Triggers)
	assert.True(t, updated.IsActive, "untouched fields keep their value")

	disabled := false
	updated, err = registry.Update(ctx, integ.ID, models.UpdateIntegrationRequest{IsActive: &disabled})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "https://suite.example.com", updated.Config.BaseURL)
}

func TestSecretRoundTripAndUpsert(t *testing.T) {
	registry, client := newTestRegistry(t)
	ctx := context.Background()

	integ, err := registry.Create(ctx, "espo", models.ProviderEspoCRM, "")
	require.NoError(t, err)

	require.NoError(t, registry.SetSecret(ctx, integ.ID, "api_key", "first-value"))

	stored, err := client.IntegrationSecret.Query().
		Where(integrationsecret.IntegrationID(integ.ID)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "first-value", stored.Ciphertext, "secrets are encrypted at rest")

	got, err := registry.GetSecret(ctx, integ.ID, "api_key")
	require.NoError(t, err)
	assert.Equal(t, "first-value", got)

	// same key again: updated in place, not duplicated
	require.NoError(t, registry.SetSecret(ctx, integ.ID, "api_key", "second-value"))
	got, err = registry.GetSecret(ctx, integ.ID, "api_key")
	require.NoError(t, err)
	assert.Equal(t, "second-value", got)

	count, err := client.IntegrationSecret.Query().
		Where(integrationsecret.IntegrationID(integ.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = registry.GetSecret(ctx, integ.ID, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLogExecutionAndQueries(t *testing.T) {
	registry, _ := newTestRegistry(t)
	ctx := context.Background()

	integ, err := registry.Create(ctx, "oro", models.ProviderOroCRM, "")
	require.NoError(t, err)

	latest, err := registry.LatestLog(ctx, integ.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	registry.LogExecution(ctx, integ.ID, "orocrm.sync", StatusSuccess,
		map[string]interface{}{"batch": 1}, nil)
	time.Sleep(10 * time.Millisecond)
	registry.LogExecution(ctx, integ.ID, "orocrm.sync", StatusFailed,
		nil, map[string]interface{}{"error": "boom"})

	logs, err := registry.Logs(ctx, integ.ID, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "failed", string(logs[0].Status), "newest first")

	latest, err = registry.LatestLog(ctx, integ.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "boom", latest.Response["error"])

	// limit clamps to the default when out of range
	logs, err = registry.Logs(ctx, integ.ID, -1)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestListAutoSync(t *testing.T) {
	registry, client := newTestRegistry(t)
	ctx := context.Background()

	auto, err := registry.Create(ctx, "zoho", models.ProviderZoho, "")
	require.NoError(t, err)
	_, err = auto.Update().SetAutoSync(true).Save(ctx)
	require.NoError(t, err)

	disabledAuto, err := registry.Create(ctx, "espo", models.ProviderEspoCRM, "")
	require.NoError(t, err)
	_, err = disabledAuto.Update().SetAutoSync(true).SetIsActive(false).Save(ctx)
	require.NoError(t, err)

	_, err = registry.Create(ctx, "oro", models.ProviderOroCRM, "")
	require.NoError(t, err)

	got, err := registry.ListAutoSync(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, auto.ID, got[0].ID)

	total, err := client.Integration.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}
