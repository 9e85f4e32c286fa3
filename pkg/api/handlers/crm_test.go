package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/enttest"
	"github.com/mateovidal/crmbridge/ent/lead"
	"github.com/mateovidal/crmbridge/pkg/crm"
	"github.com/mateovidal/crmbridge/pkg/logger"
)

func setupCRMHandler(t *testing.T) (*CRMHandler, *recordingDispatcher, *ent.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	dispatcher := &recordingDispatcher{}
	svc := crm.NewService(client, dispatcher, logger.Nop())
	return NewCRMHandler(svc), dispatcher, client
}

func TestCRMCreateLead(t *testing.T) {
	h, dispatcher, _ := setupCRMHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/leads",
		`{"name":"Ada Lovelace","email":"ada@example.com","company":"Analytical Engines"}`)
	require.NoError(t, h.CreateLead(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "new", data["status"])
	assert.Equal(t, "manual", data["source"])

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, "lead.created", dispatcher.events[0])
}

func TestCRMCreateLeadValidation(t *testing.T) {
	h, dispatcher, _ := setupCRMHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/leads", `{"email":"not-an-email"}`)
	require.NoError(t, h.CreateLead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, dispatcher.events)
}

func TestCRMLeadLifecycle(t *testing.T) {
	h, dispatcher, client := setupCRMHandler(t)
	e := echo.New()
	ctx := context.Background()

	l, err := client.Lead.Create().SetName("Grace Hopper").Save(ctx)
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodPatch, "/", `{"status":"qualified"}`)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(l.ID))
	require.NoError(t, h.UpdateLeadStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, dispatcher.events, "lead.updated")

	c2, rec2 := jsonContext(e, http.MethodPatch, "/", `{"status":"burned"}`)
	c2.SetParamNames("id")
	c2.SetParamValues(strconv.Itoa(l.ID))
	require.NoError(t, h.UpdateLeadStatus(c2))
	assert.Equal(t, http.StatusBadRequest, rec2.Code)
}

func TestCRMGetLeadNotFound(t *testing.T) {
	h, _, _ := setupCRMHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("9999")
	require.NoError(t, h.GetLead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCRMCreateDealAndMoveStage(t *testing.T) {
	h, dispatcher, _ := setupCRMHandler(t)
	e := echo.New()

	c, rec := jsonContext(e, http.MethodPost, "/api/v1/deals",
		`{"title":"Enterprise plan","amount":1200.50}`)
	require.NoError(t, h.CreateDeal(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "USD", data["currency"])
	id := int(data["id"].(float64))

	c2, rec2 := jsonContext(e, http.MethodPatch, "/", `{"stage":"won"}`)
	c2.SetParamNames("id")
	c2.SetParamValues(strconv.Itoa(id))
	require.NoError(t, h.UpdateDealStage(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)

	assert.Equal(t, []string{"deal.created", "deal.stage_changed"}, dispatcher.events)
}

func TestCRMCreateCustomerDuplicateEmail(t *testing.T) {
	h, _, _ := setupCRMHandler(t)
	e := echo.New()

	body := `{"name":"Acme","email":"billing@acme.example.com"}`
	c, rec := jsonContext(e, http.MethodPost, "/api/v1/customers", body)
	require.NoError(t, h.CreateCustomer(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	c2, rec2 := jsonContext(e, http.MethodPost, "/api/v1/customers", body)
	require.NoError(t, h.CreateCustomer(c2))
	assert.Equal(t, http.StatusConflict, rec2.Code)
}

func TestCRMListLeadsFilter(t *testing.T) {
	h, _, client := setupCRMHandler(t)
	e := echo.New()
	ctx := context.Background()

	_, err := client.Lead.Create().SetName("A").Save(ctx)
	require.NoError(t, err)
	_, err = client.Lead.Create().SetName("B").SetStatus(lead.StatusQualified).Save(ctx)
	require.NoError(t, err)

	c, rec := jsonContext(e, http.MethodGet, "/?status=qualified", "")
	require.NoError(t, h.ListLeads(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp["data"], 1)
}
