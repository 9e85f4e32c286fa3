package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nyaruka/phonenumbers"

	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/metrics"
	"github.com/mateovidal/crmbridge/pkg/models"
)

const defaultTimeout = 15 * time.Second

// SendResult describes one accepted outbound message.
type SendResult struct {
	MessageID string `json:"message_id"`
	To        string `json:"to"`
}

// Service sends WhatsApp text messages through the Cloud API using the
// whatsapp integration row for configuration and credentials.
type Service struct {
	registry *integration.Registry
	http     *http.Client
	metrics  *metrics.Metrics
	log      logger.Logger
}

// NewService creates a new WhatsApp service. m may be nil.
func NewService(registry *integration.Registry, log logger.Logger, m *metrics.Metrics) *Service {
	return &Service{
		registry: registry,
		http:     &http.Client{Timeout: defaultTimeout},
		metrics:  m,
		log:      log,
	}
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             sendText `json:"text"`
}

type sendText struct {
	Body string `json:"body"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendText validates the recipient number, posts the message and records the
// outcome on the integration's audit log.
func (s *Service) SendText(ctx context.Context, req models.SendMessageRequest) (*SendResult, error) {
	to, err := normalizeE164(req.To)
	if err != nil {
		return nil, err
	}

	integ, err := s.registry.GetByProvider(ctx, models.ProviderWhatsApp)
	if err != nil {
		return nil, err
	}
	if !integ.IsActive {
		return nil, fmt.Errorf("whatsapp integration is disabled")
	}
	if integ.Config.BaseURL == "" {
		return nil, fmt.Errorf("whatsapp integration is missing baseUrl in config")
	}
	if integ.Config.WhatsAppPhoneID == "" {
		return nil, fmt.Errorf("whatsapp integration is missing whatsapp_phone_id in config")
	}

	token, err := s.registry.GetSecret(ctx, integ.ID, "access_token")
	if err != nil {
		return nil, fmt.Errorf("whatsapp integration is missing secret %q: %w", "access_token", err)
	}

	result, err := s.post(ctx, integ.Config.BaseURL, integ.Config.WhatsAppPhoneID, token, to, req.Body)
	if err != nil {
		s.registry.LogExecution(ctx, integ.ID, "whatsapp.send", integration.StatusFailed,
			map[string]interface{}{"to": to},
			map[string]interface{}{"error": err.Error()})
		if s.metrics != nil {
			s.metrics.RecordMessageSent(false)
		}
		return nil, err
	}

	s.registry.LogExecution(ctx, integ.ID, "whatsapp.send", integration.StatusSuccess,
		map[string]interface{}{"to": to},
		map[string]interface{}{"message_id": result.MessageID})
	if s.metrics != nil {
		s.metrics.RecordMessageSent(true)
	}

	return result, nil
}

func (s *Service) post(ctx context.Context, baseURL, phoneID, token, to, body string) (*SendResult, error) {
	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             sendText{Body: body},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", baseURL, phoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("whatsapp API request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read whatsapp response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("whatsapp API returned %d: %s", resp.StatusCode, respBody)
	}

	var decoded sendResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode whatsapp response: %w", err)
	}

	result := &SendResult{To: to}
	if len(decoded.Messages) > 0 {
		result.MessageID = decoded.Messages[0].ID
	}
	return result, nil
}

// normalizeE164 parses and validates a recipient number, returning it in
// E.164 form. Numbers must carry their country code.
func normalizeE164(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("recipient number cannot be empty")
	}

	parsed, err := phonenumbers.Parse(raw, "")
	if err != nil {
		return "", fmt.Errorf("failed to parse recipient number: %w", err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid recipient number: %s", raw)
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}
