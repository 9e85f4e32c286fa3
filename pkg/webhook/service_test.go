package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/pkg/logger"
)

func newTestService(t *testing.T, opts ...Option) (*Service, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client, logger.Nop(), opts...), client
}

type capturedRequest struct {
	body      []byte
	event     string
	signature string
	timestamp string
}

// captureServer records every request it receives, answering with the given
// status.
func captureServer(t *testing.T, status int, respBody string) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var mu sync.Mutex
	var captured []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mu.Lock()
		captured = append(captured, capturedRequest{
			body:      body,
			event:     r.Header.Get("X-Webhook-Event"),
			signature: r.Header.Get("X-Webhook-Signature"),
			timestamp: r.Header.Get("X-Webhook-Timestamp"),
		})
		mu.Unlock()

		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		out := make([]capturedRequest, len(captured))
		copy(out, captured)
		return out
	}
}

func TestCreateEndpointGeneratesSecret(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ep, err := svc.CreateEndpoint(ctx, "https://example.com/hook", []string{EventLeadCreated}, "test hook", "admin")
	require.NoError(t, err)

	assert.Len(t, ep.Secret, 64)
	assert.NotEqual(t, strings.Repeat("0", 64), ep.Secret)
	assert.True(t, ep.IsActive)

	other, err := svc.CreateEndpoint(ctx, "https://example.com/hook2", []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)
	assert.NotEqual(t, ep.Secret, other.Secret)
}

func TestDispatchFanOut(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	srv, requests := captureServer(t, http.StatusOK, `{"ok":true}`)

	// three subscribers to the event, one subscribed to something else,
	// one inactive
	for i := 0; i < 3; i++ {
		_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated, EventDealCreated}, "", "admin")
		require.NoError(t, err)
	}
	_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventCustomerCreated}, "", "admin")
	require.NoError(t, err)
	inactive, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)
	_, err = inactive.Update().SetIsActive(false).Save(ctx)
	require.NoError(t, err)

	err = svc.Dispatch(ctx, EventLeadCreated, map[string]interface{}{"lead_id": 42})
	require.NoError(t, err)

	assert.Len(t, requests(), 3)

	deliveries, err := client.WebhookDelivery.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, deliveries, 3)

	eventID := deliveries[0].EventID
	assert.NotEmpty(t, eventID)
	for _, d := range deliveries {
		assert.Equal(t, eventID, d.EventID, "all fan-out rows share one event id")
		assert.Equal(t, EventLeadCreated, d.EventName)
		assert.Equal(t, http.StatusOK, d.ResponseStatus)
		assert.True(t, d.Delivered)
		assert.Equal(t, 1, d.Attempt)
		assert.Nil(t, d.NextRetryAt)
		assert.Equal(t, EventLeadCreated, d.RequestPayload["event"])
	}
}

func TestDispatchNoSubscribersIsNoOp(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	err := svc.Dispatch(ctx, EventDealStageChanged, map[string]interface{}{"deal_id": 1})
	require.NoError(t, err)

	count, err := client.WebhookDelivery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDispatchSignsPayload(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	srv, requests := captureServer(t, http.StatusOK, "")

	ep, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventDealCreated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, EventDealCreated, map[string]interface{}{"deal_id": 7}))

	got := requests()
	require.Len(t, got, 1)
	assert.Equal(t, EventDealCreated, got[0].event)
	assert.NotEmpty(t, got[0].timestamp)
	assert.Equal(t, signPayload(got[0].body, ep.Secret), got[0].signature)
	assert.True(t, VerifySignature(got[0].body, got[0].signature, ep.Secret))
	assert.False(t, VerifySignature(got[0].body, got[0].signature, "wrong-secret"))
	assert.False(t, VerifySignature(append(got[0].body, 'x'), got[0].signature, ep.Secret))
}

func TestDispatchRecordsFailure(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	srv, _ := captureServer(t, http.StatusBadGateway, "upstream down")

	_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadUpdated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, EventLeadUpdated, nil))

	d, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.False(t, d.Delivered)
	assert.Equal(t, http.StatusBadGateway, d.ResponseStatus)
	assert.Equal(t, "upstream down", d.ResponseBody)
	require.NotNil(t, d.NextRetryAt)
	assert.WithinDuration(t, time.Now().Add(2*time.Minute), *d.NextRetryAt, 10*time.Second)
}

func TestDispatchTransportErrorSynthesizes500(t *testing.T) {
	svc, client := newTestService(t, WithTimeout(time.Second))
	ctx := context.Background()

	// closed immediately: every delivery hits a transport error
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, EventLeadCreated, nil))

	d, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.False(t, d.Delivered)
	assert.Equal(t, http.StatusInternalServerError, d.ResponseStatus)
	assert.NotEmpty(t, d.ResponseBody)
}

func TestDispatchTruncatesResponseBody(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	srv, _ := captureServer(t, http.StatusOK, strings.Repeat("a", 5000))

	_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventCustomerCreated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, EventCustomerCreated, nil))

	d, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.Len(t, d.ResponseBody, maxBodyBytes)
}

func TestRetryDue(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	var fail = true
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		shouldFail := fail
		mu.Unlock()
		if shouldFail {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, EventLeadCreated, map[string]interface{}{"lead_id": 1}))

	d, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	require.False(t, d.Delivered)
	require.NotNil(t, d.NextRetryAt)

	// not yet due
	n, err := svc.RetryDue(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)

	// due, still failing: attempt bumps and next slot is scheduled
	now := d.NextRetryAt.Add(time.Second)
	n, err = svc.RetryDue(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err = client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Attempt)
	assert.False(t, d.Delivered)
	require.NotNil(t, d.NextRetryAt)
	assert.WithinDuration(t, now.Add(4*time.Minute), *d.NextRetryAt, time.Second)

	// due again, now succeeding: same row flips to delivered
	mu.Lock()
	fail = false
	mu.Unlock()

	n, err = svc.RetryDue(ctx, d.NextRetryAt.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err = client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.True(t, d.Delivered)
	assert.Equal(t, 3, d.Attempt)
	assert.Nil(t, d.NextRetryAt)
	assert.Equal(t, http.StatusOK, d.ResponseStatus)

	// one row per original dispatch, updated in place
	count, err := client.WebhookDelivery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRetryDueStopsAtAttemptCap(t *testing.T) {
	svc, client := newTestService(t, WithMaxAttempts(2))
	ctx := context.Background()

	srv, _ := captureServer(t, http.StatusServiceUnavailable, "")

	_, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)
	require.NoError(t, svc.Dispatch(ctx, EventLeadCreated, nil))

	d, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)

	n, err := svc.RetryDue(ctx, d.NextRetryAt.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err = client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Attempt)
	assert.False(t, d.Delivered)
	assert.Nil(t, d.NextRetryAt, "at the cap no further retry is scheduled")

	// nothing left due
	n, err = svc.RetryDue(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRetryDueSkipsDisabledEndpoint(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	srv, requests := captureServer(t, http.StatusServiceUnavailable, "")

	ep, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)
	require.NoError(t, svc.Dispatch(ctx, EventLeadCreated, nil))
	require.Len(t, requests(), 1)

	_, err = ep.Update().SetIsActive(false).Save(ctx)
	require.NoError(t, err)

	d, err := client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)

	_, err = svc.RetryDue(ctx, d.NextRetryAt.Add(time.Second))
	require.NoError(t, err)

	// no new request, retry parked
	assert.Len(t, requests(), 1)
	d, err = client.WebhookDelivery.Query().Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, d.NextRetryAt)
	assert.False(t, d.Delivered)
}

func TestListDeliveriesFilter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	srv, _ := captureServer(t, http.StatusOK, "")

	first, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)
	second, err := svc.CreateEndpoint(ctx, srv.URL, []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.Dispatch(ctx, EventLeadCreated, nil))

	all, err := svc.ListDeliveries(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := svc.ListDeliveries(ctx, first.ID, 0)
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, first.ID, scoped[0].EndpointID)
	assert.NotEqual(t, second.ID, scoped[0].EndpointID)
}

func TestDeleteEndpoint(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ep, err := svc.CreateEndpoint(ctx, "https://example.com/hook", []string{EventLeadCreated}, "", "admin")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEndpoint(ctx, ep.ID))

	err = svc.DeleteEndpoint(ctx, ep.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	endpoints, err := svc.ListEndpoints(ctx)
	require.NoError(t, err)
	assert.Empty(t, endpoints)
}

func TestBackoffDoubles(t *testing.T) {
	assert.Equal(t, 2*time.Minute, backoff(1))
	assert.Equal(t, 4*time.Minute, backoff(2))
	assert.Equal(t, 16*time.Minute, backoff(4))
}
