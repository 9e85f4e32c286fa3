package crm

import (
	"context"
	"errors"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/webhook"
)

type recordingDispatcher struct {
	events []string
	data   []map[string]interface{}
	err    error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event string, data map[string]interface{}) error {
	d.events = append(d.events, event)
	d.data = append(d.data, data)
	return d.err
}

func newTestService(t *testing.T) (*Service, *recordingDispatcher, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	dispatcher := &recordingDispatcher{}
	return NewService(client, dispatcher, logger.Nop()), dispatcher, client
}

func TestCreateLeadEmitsEvent(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()

	l, err := svc.CreateLead(ctx, "Jordan Reyes", "jordan@acme.example", "+15552345678", "Acme", "")
	require.NoError(t, err)
	assert.Equal(t, "new", string(l.Status))
	assert.Equal(t, "manual", l.Source)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, webhook.EventLeadCreated, dispatcher.events[0])
	assert.Equal(t, l.ID, dispatcher.data[0]["lead_id"])
	assert.Equal(t, "Jordan Reyes", dispatcher.data[0]["name"])
}

func TestCreateLeadWithSource(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	l, err := svc.CreateLead(ctx, "Imported", "", "", "", "zoho")
	require.NoError(t, err)
	assert.Equal(t, "zoho", l.Source)
}

func TestUpdateLeadStatus(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()

	l, err := svc.CreateLead(ctx, "Sam", "", "", "", "")
	require.NoError(t, err)

	updated, err := svc.UpdateLeadStatus(ctx, l.ID, "qualified")
	require.NoError(t, err)
	assert.Equal(t, "qualified", string(updated.Status))

	require.Len(t, dispatcher.events, 2)
	assert.Equal(t, webhook.EventLeadUpdated, dispatcher.events[1])
	assert.Equal(t, "qualified", dispatcher.data[1]["status"])

	_, err = svc.UpdateLeadStatus(ctx, 99999, "lost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListLeadsFilterAndOrder(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateLead(ctx, "First", "", "", "", "")
	require.NoError(t, err)
	second, err := svc.CreateLead(ctx, "Second", "", "", "", "")
	require.NoError(t, err)
	_, err = svc.UpdateLeadStatus(ctx, first.ID, "contacted")
	require.NoError(t, err)

	all, err := svc.ListLeads(ctx, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	contacted, err := svc.ListLeads(ctx, "contacted", 0)
	require.NoError(t, err)
	require.Len(t, contacted, 1)
	assert.Equal(t, first.ID, contacted[0].ID)
	assert.NotEqual(t, second.ID, contacted[0].ID)
}

func TestDealLifecycle(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()

	cust, err := svc.CreateCustomer(ctx, "Acme", "acme@example.com", "", "")
	require.NoError(t, err)

	d, err := svc.CreateDeal(ctx, "Annual license", 12000, "EUR", &cust.ID)
	require.NoError(t, err)
	assert.Equal(t, "prospecting", string(d.Stage))
	assert.Equal(t, "EUR", d.Currency)

	linked, err := d.QueryCustomer().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, cust.ID, linked.ID)

	updated, err := svc.UpdateDealStage(ctx, d.ID, "won")
	require.NoError(t, err)
	assert.Equal(t, "won", string(updated.Stage))

	// customer.created, deal.created, deal.stage_changed
	require.Len(t, dispatcher.events, 3)
	assert.Equal(t, webhook.EventDealStageChanged, dispatcher.events[2])
	assert.Equal(t, "won", dispatcher.data[2]["stage"])
	assert.Equal(t, "prospecting", dispatcher.data[2]["previous_stage"])
}

func TestCreateDealDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	d, err := svc.CreateDeal(ctx, "Small deal", 0, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "USD", d.Currency)
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc, dispatcher, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCustomer(ctx, "One", "same@example.com", "", "")
	require.NoError(t, err)

	_, err = svc.CreateCustomer(ctx, "Two", "same@example.com", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// only the successful create emitted an event
	assert.Len(t, dispatcher.events, 1)
}

func TestMutationSurvivesDispatchFailure(t *testing.T) {
	svc, dispatcher, client := newTestService(t)
	ctx := context.Background()

	dispatcher.err = errors.New("all subscribers down")

	l, err := svc.CreateLead(ctx, "Still created", "", "", "", "")
	require.NoError(t, err, "dispatch failure must not fail the write")

	stored, err := client.Lead.Get(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Still created", stored.Name)
}
