package billing

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

const testWebhookSecret = "whsec_test_secret"

func newTestService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := NewService(client, nil, logger.Nop(), &Config{
		SecretKey:     "sk_test_123",
		WebhookSecret: testWebhookSecret,
		SuccessURL:    "https://app.example.com/billing/success",
		CancelURL:     "https://app.example.com/billing/cancel",
	})
	return svc, client
}

// signStripe builds a Stripe-Signature header the way Stripe's SDK expects:
// v1 = HMAC-SHA256("{t}.{payload}", secret).
func signStripe(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func stripeEvent(t *testing.T, eventType string, object map[string]interface{}) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"id":          "evt_test_1",
		"object":      "event",
		"api_version": "2023-10-16",
		"type":        eventType,
		"data":        map[string]interface{}{"object": object},
	})
	require.NoError(t, err)
	return body
}

func TestHandleWebhookRejectsInvalidSignature(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	payload := stripeEvent(t, "payment_intent.succeeded", map[string]interface{}{
		"id":       "pi_123",
		"amount":   5000,
		"currency": "usd",
		"status":   "succeeded",
	})

	// missing header
	_, err := svc.HandleWebhook(ctx, payload, "")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// signed with the wrong secret
	_, err = svc.HandleWebhook(ctx, payload, signStripe(payload, "whsec_wrong", time.Now()))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// payload tampered after signing
	sig := signStripe(payload, testWebhookSecret, time.Now())
	tampered := append([]byte{}, payload...)
	tampered[len(tampered)-2] = 'X'
	_, err = svc.HandleWebhook(ctx, tampered, sig)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// stale timestamp outside the tolerance window
	_, err = svc.HandleWebhook(ctx, payload, signStripe(payload, testWebhookSecret, time.Now().Add(-time.Hour)))
	assert.ErrorIs(t, err, ErrInvalidSignature)

	count, err := client.Payment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "rejected webhooks must not write anything")
}

func TestHandleWebhookPaymentIntentSucceeded(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	cust, err := client.Customer.Create().
		SetName("Acme Inc").
		SetEmail("billing@acme.example").
		SetStripeCustomerID("cus_42").
		Save(ctx)
	require.NoError(t, err)

	payload := stripeEvent(t, "payment_intent.succeeded", map[string]interface{}{
		"id":       "pi_123",
		"amount":   5000,
		"currency": "usd",
		"status":   "succeeded",
		"customer": "cus_42",
	})

	eventType, err := svc.HandleWebhook(ctx, payload, signStripe(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "payment_intent.succeeded", eventType)

	p, err := client.Payment.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pi_123", p.StripePaymentIntentID)
	assert.EqualValues(t, 5000, p.Amount)
	assert.Equal(t, "usd", p.Currency)
	assert.Equal(t, "succeeded", p.Status)

	linked, err := p.QueryCustomer().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, cust.ID, linked.ID)

	// Stripe retries deliver the same object id: the row is updated, not
	// duplicated
	retry := stripeEvent(t, "payment_intent.succeeded", map[string]interface{}{
		"id":       "pi_123",
		"amount":   5000,
		"currency": "usd",
		"status":   "succeeded",
		"customer": "cus_42",
	})
	_, err = svc.HandleWebhook(ctx, retry, signStripe(retry, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	count, err := client.Payment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandleWebhookPaymentWithoutLocalCustomer(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	payload := stripeEvent(t, "payment_intent.succeeded", map[string]interface{}{
		"id":       "pi_orphan",
		"amount":   1200,
		"currency": "eur",
		"status":   "succeeded",
		"customer": "cus_unknown",
	})

	_, err := svc.HandleWebhook(ctx, payload, signStripe(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	p, err := client.Payment.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "pi_orphan", p.StripePaymentIntentID)

	_, err = p.QueryCustomer().Only(ctx)
	assert.True(t, ent.IsNotFound(err), "payment stored without a customer link")
}

func TestHandleWebhookSubscriptionLifecycle(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	periodEnd := time.Now().Add(30 * 24 * time.Hour).Unix()

	created := stripeEvent(t, "customer.subscription.created", map[string]interface{}{
		"id":                 "sub_123",
		"status":             "active",
		"current_period_end": periodEnd,
	})
	_, err := svc.HandleWebhook(ctx, created, signStripe(created, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	sub, err := client.Subscription.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sub_123", sub.StripeSubscriptionID)
	assert.Equal(t, "active", sub.Status)
	require.NotNil(t, sub.CurrentPeriodEnd)
	assert.Equal(t, periodEnd, sub.CurrentPeriodEnd.Unix())

	updated := stripeEvent(t, "customer.subscription.updated", map[string]interface{}{
		"id":                 "sub_123",
		"status":             "past_due",
		"current_period_end": periodEnd,
	})
	_, err = svc.HandleWebhook(ctx, updated, signStripe(updated, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	sub, err = client.Subscription.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "past_due", sub.Status)

	deleted := stripeEvent(t, "customer.subscription.deleted", map[string]interface{}{
		"id":     "sub_123",
		"status": "canceled",
	})
	_, err = svc.HandleWebhook(ctx, deleted, signStripe(deleted, testWebhookSecret, time.Now()))
	require.NoError(t, err)

	sub, err = client.Subscription.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "canceled", sub.Status)

	count, err := client.Subscription.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHandleWebhookUnknownSubscriptionDeletionIgnored(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	deleted := stripeEvent(t, "customer.subscription.deleted", map[string]interface{}{
		"id":     "sub_never_seen",
		"status": "canceled",
	})
	_, err := svc.HandleWebhook(ctx, deleted, signStripe(deleted, testWebhookSecret, time.Now()))
	assert.NoError(t, err)
}

func TestHandleWebhookIgnoresUnhandledTypes(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	payload := stripeEvent(t, "invoice.finalized", map[string]interface{}{"id": "in_1"})
	eventType, err := svc.HandleWebhook(ctx, payload, signStripe(payload, testWebhookSecret, time.Now()))
	require.NoError(t, err)
	assert.Equal(t, "invoice.finalized", eventType)

	payments, err := client.Payment.Query().Count(ctx)
	require.NoError(t, err)
	subs, err2 := client.Subscription.Query().Count(ctx)
	require.NoError(t, err2)
	assert.Zero(t, payments+subs)
}

func TestCreatePortalSessionRequiresStripeCustomer(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	cust, err := client.Customer.Create().
		SetName("No Stripe Yet").
		SetEmail("nostripe@example.com").
		Save(ctx)
	require.NoError(t, err)

	_, err = svc.CreatePortalSession(ctx, models.PortalRequest{CustomerID: cust.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Stripe customer ID")
}
