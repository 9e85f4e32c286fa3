package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/pkg/billing"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
)

const stripeTestSecret = "whsec_handler_test"

func setupBillingHandler(t *testing.T) *BillingHandler {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	cipher, err := integration.NewSecretCipher(testCipherKey)
	require.NoError(t, err)
	registry := integration.NewRegistry(client, cipher, logger.Nop())

	svc := billing.NewService(client, registry, logger.Nop(), &billing.Config{
		SecretKey:     "sk_test_123",
		WebhookSecret: stripeTestSecret,
	})
	return NewBillingHandler(svc)
}

func stripeSignature(payload string) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(stripeTestSecret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeWebhookRequiresSignatureHeader(t *testing.T) {
	h := setupBillingHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/webhooks/stripe", `{}`)
	require.NoError(t, h.StripeWebhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhookRejectsBadSignature(t *testing.T) {
	h := setupBillingHandler(t)
	e := echo.New()

	payload := `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	rec := httptest.NewRecorder()
	require.NoError(t, h.StripeWebhook(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid signature")
}

func TestStripeWebhookAcceptsSignedEvent(t *testing.T) {
	h := setupBillingHandler(t)
	e := echo.New()

	payload := `{"id":"evt_2","object":"event","api_version":"2023-10-16","type":"invoice.finalized","data":{"object":{}}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/stripe", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Stripe-Signature", stripeSignature(payload))
	rec := httptest.NewRecorder()
	require.NoError(t, h.StripeWebhook(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "invoice.finalized")
}

func TestBillingCheckoutValidation(t *testing.T) {
	h := setupBillingHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/billing/checkout", `{"price_id":""}`)
	require.NoError(t, h.CreateCheckout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
