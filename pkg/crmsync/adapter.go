package crmsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

func updateConfig(cfg *models.IntegrationConfig) models.UpdateIntegrationRequest {
	return models.UpdateIntegrationRequest{Config: cfg}
}

// UpstreamError wraps a non-2xx response from a provider API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream API returned %d: %s", e.StatusCode, e.Body)
}

// adapter carries the pieces every provider adapter shares: integration
// resolution, authenticated JSON fetching, failure logging and last-sync
// stamping. Embedded by the concrete providers.
type adapter struct {
	provider string
	registry *integration.Registry
	http     *http.Client
	log      logger.Logger
}

// resolve loads the integration row, its base URL and the named credential.
// Fails fast, before any HTTP call, with an error naming what is missing.
func (a *adapter) resolve(ctx context.Context, secretKey string) (*ent.Integration, string, string, error) {
	integ, err := a.registry.GetByProvider(ctx, a.provider)
	if err != nil {
		return nil, "", "", err
	}
	if !integ.IsActive {
		return nil, "", "", fmt.Errorf("%s integration is disabled", a.provider)
	}

	baseURL := strings.TrimRight(integ.Config.BaseURL, "/")
	if baseURL == "" {
		return nil, "", "", fmt.Errorf("%s integration is missing baseUrl in config", a.provider)
	}

	token, err := a.registry.GetSecret(ctx, integ.ID, secretKey)
	if err != nil {
		return nil, "", "", fmt.Errorf("%s integration is missing secret %q: %w", a.provider, secretKey, err)
	}

	return integ, baseURL, token, nil
}

// getJSON performs an authenticated GET and decodes the response into out.
// Non-2xx responses become an UpstreamError carrying status and body.
func (a *adapter) getJSON(ctx context.Context, rawURL string, headers map[string]string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s API request failed: %w", a.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", a.provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UpstreamError{StatusCode: resp.StatusCode, Body: truncateBody(string(body))}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", a.provider, err)
	}
	return nil
}

// logBatch records one fetched page.
func (a *adapter) logBatch(ctx context.Context, integrationID int, module string, batch, count int) {
	payload := map[string]interface{}{"batch": batch, "count": count}
	if module != "" {
		payload["module"] = module
	}
	a.registry.LogExecution(ctx, integrationID, a.provider+".sync", integration.StatusSuccess, payload, nil)
}

// logFailure records a failed sync before the error propagates. Every
// adapter calls this on its failure path so the audit trail is uniform.
func (a *adapter) logFailure(ctx context.Context, integrationID int, syncErr error) {
	response := map[string]interface{}{"error": syncErr.Error()}
	var ue *UpstreamError
	if errors.As(syncErr, &ue) {
		response["status_code"] = ue.StatusCode
		response["body"] = ue.Body
	}
	a.registry.LogExecution(ctx, integrationID, a.provider+".sync", integration.StatusFailed, nil, response)
}

// finish stamps the provider's last-sync time into the integration config
// (spreading the existing config; row-level last-write-wins) and writes the
// final summary log entry.
func (a *adapter) finish(ctx context.Context, integ *ent.Integration, total, batches int) (time.Time, error) {
	now := time.Now().UTC()

	cfg := integ.Config
	cfg.SetLastSync(a.provider, now)
	if _, err := a.registry.Update(ctx, integ.ID, updateConfig(&cfg)); err != nil {
		return now, fmt.Errorf("failed to stamp last sync: %w", err)
	}

	a.registry.LogExecution(ctx, integ.ID, a.provider+".sync", integration.StatusSuccess,
		map[string]interface{}{"total": total, "batches": batches},
		map[string]interface{}{"synced_at": now.Format(time.RFC3339)})

	return now, nil
}

// status implements the shared non-throwing status read.
func (a *adapter) status(ctx context.Context) (*Status, error) {
	integ, err := a.registry.GetByProvider(ctx, a.provider)
	if err != nil {
		if errors.Is(err, integration.ErrNotConfigured) {
			return &Status{IsConfigured: false}, nil
		}
		return nil, err
	}

	latest, err := a.registry.LatestLog(ctx, integ.ID)
	if err != nil {
		a.log.Warn("failed to read latest log", "provider", a.provider, "error", err)
	}

	return &Status{
		LastSyncAt:   integ.Config.LastSync(a.provider),
		LatestLog:    latest,
		IsConfigured: integ.Config.BaseURL != "",
	}, nil
}

func truncateBody(s string) string {
	const max = 1000
	if len(s) <= max {
		return s
	}
	return s[:max]
}
