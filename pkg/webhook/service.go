package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/webhookdelivery"
	"github.com/mateovidal/crmbridge/ent/webhookendpoint"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/metrics"
)

// Event names dispatched by the application.
const (
	EventLeadCreated      = "lead.created"
	EventLeadUpdated      = "lead.updated"
	EventDealCreated      = "deal.created"
	EventDealStageChanged = "deal.stage_changed"
	EventCustomerCreated  = "customer.created"
)

const (
	// maxBodyBytes caps how much of a subscriber response is persisted.
	maxBodyBytes = 1000

	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 5
)

// Payload is the signed envelope POSTed to every subscribed endpoint.
type Payload struct {
	Event      string                 `json:"event"`
	EventID    string                 `json:"event_id"`
	OccurredAt string                 `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

// Service dispatches internal events to registered webhook endpoints and
// manages endpoint registrations.
type Service struct {
	client      *ent.Client
	httpClient  *http.Client
	log         logger.Logger
	metrics     *metrics.Metrics
	maxAttempts int
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout overrides the delivery HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.httpClient.Timeout = d }
}

// WithMaxAttempts overrides the redelivery cap.
func WithMaxAttempts(n int) Option {
	return func(s *Service) { s.maxAttempts = n }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a new webhook service.
func NewService(client *ent.Client, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		client: client,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log:         log,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateEndpoint registers a subscriber endpoint with a server-generated
// secret. The secret is returned embedded in the created record; callers are
// responsible for surfacing it exactly once.
func (s *Service) CreateEndpoint(ctx context.Context, url string, events []string, description, createdBy string) (*ent.WebhookEndpoint, error) {
	secret, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	ep, err := s.client.WebhookEndpoint.Create().
		SetURL(url).
		SetEvents(events).
		SetSecret(secret).
		SetDescription(description).
		SetCreatedBy(createdBy).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create endpoint: %w", err)
	}

	return ep, nil
}

// ListEndpoints lists all registered endpoints.
func (s *Service) ListEndpoints(ctx context.Context) ([]*ent.WebhookEndpoint, error) {
	endpoints, err := s.client.WebhookEndpoint.Query().
		Order(ent.Desc(webhookendpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list endpoints: %w", err)
	}
	return endpoints, nil
}

// DeleteEndpoint hard-deletes an endpoint by id.
func (s *Service) DeleteEndpoint(ctx context.Context, id int) error {
	if err := s.client.WebhookEndpoint.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("endpoint %d not found", id)
		}
		return fmt.Errorf("failed to delete endpoint: %w", err)
	}
	return nil
}

// ListDeliveries returns delivery rows, newest first, optionally filtered by
// endpoint.
func (s *Service) ListDeliveries(ctx context.Context, endpointID, limit int) ([]*ent.WebhookDelivery, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := s.client.WebhookDelivery.Query()
	if endpointID > 0 {
		q = q.Where(webhookdelivery.EndpointID(endpointID))
	}
	deliveries, err := q.
		Order(ent.Desc(webhookdelivery.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	return deliveries, nil
}

// Dispatch broadcasts one event to every active endpoint subscribed to it.
// All deliveries run concurrently; the call returns after every outcome has
// been recorded. One endpoint failing never affects its siblings, and no
// matching endpoints is a silent no-op.
func (s *Service) Dispatch(ctx context.Context, event string, data map[string]interface{}) error {
	endpoints, err := s.client.WebhookEndpoint.Query().
		Where(webhookendpoint.IsActive(true)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query endpoints for %s: %w", event, err)
	}

	var matched []*ent.WebhookEndpoint
	for _, ep := range endpoints {
		if containsEvent(ep.Events, event) {
			matched = append(matched, ep)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	payload := Payload{
		Event:      event,
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		Data:       data,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", event, err)
	}

	var payloadMap map[string]interface{}
	if err := json.Unmarshal(body, &payloadMap); err != nil {
		return fmt.Errorf("failed to build payload map for %s: %w", event, err)
	}

	var wg sync.WaitGroup
	for _, ep := range matched {
		wg.Add(1)
		go func(ep *ent.WebhookEndpoint) {
			defer wg.Done()
			s.deliver(ctx, ep, payload, payloadMap, body)
		}(ep)
	}
	wg.Wait()

	return nil
}

// deliver signs and POSTs the payload to one endpoint and unconditionally
// records a WebhookDelivery row for the outcome.
func (s *Service) deliver(ctx context.Context, ep *ent.WebhookEndpoint, payload Payload, payloadMap map[string]interface{}, body []byte) {
	status, respBody := s.post(ctx, ep.URL, ep.Secret, payload.Event, body)
	delivered := status >= 200 && status < 300

	create := s.client.WebhookDelivery.Create().
		SetEndpointID(ep.ID).
		SetEventID(payload.EventID).
		SetEventName(payload.Event).
		SetRequestPayload(payloadMap).
		SetResponseStatus(status).
		SetResponseBody(truncate(respBody, maxBodyBytes)).
		SetAttempt(1).
		SetDelivered(delivered)
	if !delivered {
		create.SetNextRetryAt(time.Now().Add(backoff(1)))
	}

	if _, err := create.Save(ctx); err != nil {
		// A failed delivery log must not surface as a dispatch failure.
		s.log.Error("failed to record webhook delivery",
			"endpoint_id", ep.ID,
			"event", payload.Event,
			"error", err)
	}

	if s.metrics != nil {
		s.metrics.RecordWebhookDelivery(delivered)
	}
}

// post performs one signed POST and returns (status, body). Transport errors
// synthesize a 500 with the error message as body.
func (s *Service) post(ctx context.Context, url, secret, event string, body []byte) (int, string) {
	signature := signPayload(body, secret)
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return http.StatusInternalServerError, err.Error()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Event", event)
	req.Header.Set("X-Webhook-Signature", signature)
	req.Header.Set("X-Webhook-Timestamp", timestamp)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return http.StatusInternalServerError, err.Error()
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	return resp.StatusCode, string(respBody)
}

// RetryDue redelivers failed deliveries whose next_retry_at has passed.
// Each redelivery updates the same row: attempt counter, latest outcome and
// the next backoff slot (2^attempt minutes), until success or the attempt
// cap is reached. Returns the number of rows processed.
func (s *Service) RetryDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.client.WebhookDelivery.Query().
		Where(
			webhookdelivery.Delivered(false),
			webhookdelivery.AttemptLT(s.maxAttempts),
			webhookdelivery.NextRetryAtNotNil(),
			webhookdelivery.NextRetryAtLTE(now),
		).
		WithEndpoint().
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query due deliveries: %w", err)
	}

	for _, d := range due {
		ep := d.Edges.Endpoint
		if ep == nil || !ep.IsActive {
			// Endpoint gone or disabled: stop retrying.
			if _, err := d.Update().ClearNextRetryAt().Save(ctx); err != nil {
				s.log.Error("failed to park delivery", "delivery_id", d.ID, "error", err)
			}
			continue
		}

		body, err := json.Marshal(d.RequestPayload)
		if err != nil {
			s.log.Error("failed to marshal stored payload", "delivery_id", d.ID, "error", err)
			continue
		}

		status, respBody := s.post(ctx, ep.URL, ep.Secret, d.EventName, body)
		delivered := status >= 200 && status < 300
		attempt := d.Attempt + 1

		update := d.Update().
			SetAttempt(attempt).
			SetResponseStatus(status).
			SetResponseBody(truncate(respBody, maxBodyBytes)).
			SetDelivered(delivered)
		if delivered || attempt >= s.maxAttempts {
			update.ClearNextRetryAt()
		} else {
			update.SetNextRetryAt(now.Add(backoff(attempt)))
		}
		if _, err := update.Save(ctx); err != nil {
			s.log.Error("failed to update delivery", "delivery_id", d.ID, "error", err)
		}

		if s.metrics != nil {
			s.metrics.RecordWebhookDelivery(delivered)
		}
	}

	return len(due), nil
}

// backoff returns the exponential redelivery delay after the given attempt.
func backoff(attempt int) time.Duration {
	return time.Duration(1<<uint(attempt)) * time.Minute
}

// generateSecret generates a random 32-byte hex secret for HMAC signing.
func generateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// signPayload generates the HMAC-SHA256 hex signature for a payload.
func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature verifies the HMAC signature of a webhook payload.
func VerifySignature(payload []byte, signature, secret string) bool {
	expected := signPayload(payload, secret)
	return hmac.Equal([]byte(signature), []byte(expected))
}

// containsEvent checks if events slice contains a specific event.
func containsEvent(events []string, event string) bool {
	for _, e := range events {
		if e == event {
			return true
		}
	}
	return false
}

// truncate limits s to max bytes.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
