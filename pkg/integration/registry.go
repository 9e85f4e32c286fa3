package integration

import (
	"context"
	"errors"
	"fmt"

	"github.com/mateovidal/crmbridge/ent"
	entintegration "github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/integrationlog"
	"github.com/mateovidal/crmbridge/ent/integrationsecret"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// Log status values.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ErrNotConfigured is returned when no integration row exists for a provider.
var ErrNotConfigured = errors.New("integration not configured")

// Registry manages integration rows, their credentials and their audit log.
type Registry struct {
	client *ent.Client
	cipher *SecretCipher
	log    logger.Logger
}

// NewRegistry creates a new integration registry.
func NewRegistry(client *ent.Client, cipher *SecretCipher, log logger.Logger) *Registry {
	return &Registry{client: client, cipher: cipher, log: log}
}

// GetByProvider looks up the single integration row for a provider.
// Returns ErrNotConfigured when absent.
func (r *Registry) GetByProvider(ctx context.Context, provider string) (*ent.Integration, error) {
	integ, err := r.client.Integration.Query().
		Where(entintegration.ProviderEQ(entintegration.Provider(provider))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotConfigured, provider)
		}
		return nil, fmt.Errorf("failed to get integration %s: %w", provider, err)
	}
	return integ, nil
}

// Create registers a new integration row for a provider.
func (r *Registry) Create(ctx context.Context, name, provider, description string) (*ent.Integration, error) {
	integ, err := r.client.Integration.Create().
		SetName(name).
		SetProvider(entintegration.Provider(provider)).
		SetDescription(description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create integration %s: %w", provider, err)
	}
	return integ, nil
}

// Update applies a partial update to an integration. The config field is
// replaced wholesale: callers must spread the existing config into the new
// one or sibling keys are lost (row-level last-write-wins, no version check).
func (r *Registry) Update(ctx context.Context, id int, req models.UpdateIntegrationRequest) (*ent.Integration, error) {
	update := r.client.Integration.UpdateOneID(id)

	if req.IsActive != nil {
		update.SetIsActive(*req.IsActive)
	}
	if req.Config != nil {
		update.SetConfig(*req.Config)
	}
	if req.Triggers != nil {
		update.SetTriggers(req.Triggers)
	}

	integ, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update integration: %w", err)
	}
	return integ, nil
}

// SetSecret upserts a credential value by (integration, key). The value is
// encrypted before it touches the database.
func (r *Registry) SetSecret(ctx context.Context, integrationID int, key, value string) error {
	ciphertext, err := r.cipher.Encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret %s: %w", key, err)
	}

	existing, err := r.client.IntegrationSecret.Query().
		Where(
			integrationsecret.IntegrationID(integrationID),
			integrationsecret.Key(key),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().SetCiphertext(ciphertext).Save(ctx)
	case ent.IsNotFound(err):
		_, err = r.client.IntegrationSecret.Create().
			SetIntegrationID(integrationID).
			SetKey(key).
			SetCiphertext(ciphertext).
			Save(ctx)
	default:
		return fmt.Errorf("failed to look up secret %s: %w", key, err)
	}
	if err != nil {
		return fmt.Errorf("failed to store secret %s: %w", key, err)
	}
	return nil
}

// GetSecret fetches and decrypts a credential value.
func (r *Registry) GetSecret(ctx context.Context, integrationID int, key string) (string, error) {
	secret, err := r.client.IntegrationSecret.Query().
		Where(
			integrationsecret.IntegrationID(integrationID),
			integrationsecret.Key(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("secret %s not found for integration %d", key, integrationID)
		}
		return "", fmt.Errorf("failed to get secret %s: %w", key, err)
	}

	return r.cipher.Decrypt(secret.Ciphertext)
}

// LogExecution appends an audit row. A failed log write never fails the
// caller's flow: the error is reported to the logger and swallowed.
func (r *Registry) LogExecution(ctx context.Context, integrationID int, event, status string, payload, response map[string]interface{}) {
	create := r.client.IntegrationLog.Create().
		SetIntegrationID(integrationID).
		SetEvent(event).
		SetStatus(integrationlog.Status(status))
	if payload != nil {
		create.SetPayload(payload)
	}
	if response != nil {
		create.SetResponse(response)
	}

	if _, err := create.Save(ctx); err != nil {
		r.log.Error("failed to write integration log",
			"integration_id", integrationID,
			"event", event,
			"error", err)
	}
}

// Logs returns up to limit log rows for an integration, newest first.
func (r *Registry) Logs(ctx context.Context, integrationID, limit int) ([]*ent.IntegrationLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	logs, err := r.client.IntegrationLog.Query().
		Where(integrationlog.IntegrationID(integrationID)).
		Order(ent.Desc(integrationlog.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list integration logs: %w", err)
	}
	return logs, nil
}

// LatestLog returns the most recent log row, or nil when there is none.
func (r *Registry) LatestLog(ctx context.Context, integrationID int) (*ent.IntegrationLog, error) {
	latest, err := r.client.IntegrationLog.Query().
		Where(integrationlog.IntegrationID(integrationID)).
		Order(ent.Desc(integrationlog.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest log: %w", err)
	}
	return latest, nil
}

// ListAutoSync returns active integrations with auto-sync enabled.
func (r *Registry) ListAutoSync(ctx context.Context) ([]*ent.Integration, error) {
	integrations, err := r.client.Integration.Query().
		Where(
			entintegration.IsActive(true),
			entintegration.AutoSync(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-sync integrations: %w", err)
	}
	return integrations, nil
}
