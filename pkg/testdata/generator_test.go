package testdata

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateovidal/crmbridge/ent/enttest"
)

func TestGeneratorRun(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	defer client.Close()
	ctx := context.Background()

	gen := NewGenerator(client, GeneratorConfig{
		Leads:            10,
		Customers:        4,
		DealsPerCustomer: 2,
		EmailChance:      1.0,
		PhoneChance:      1.0,
		Seed:             11,
	})

	leads, customers, deals, err := gen.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, leads)
	assert.Equal(t, 4, customers)
	assert.Equal(t, 8, deals)

	gotLeads, err := client.Lead.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, gotLeads, 10)
	for _, l := range gotLeads {
		assert.NotEmpty(t, l.Name)
		assert.NotEmpty(t, l.Email)
		assert.NotEmpty(t, l.Phone)
	}

	gotDeals, err := client.Deal.Query().WithCustomer().All(ctx)
	require.NoError(t, err)
	require.Len(t, gotDeals, 8)
	for _, d := range gotDeals {
		assert.NotNil(t, d.Edges.Customer, "every deal belongs to a customer")
		assert.Greater(t, d.Amount, 0.0)
	}

	// one inactive row per provider, idempotent across runs
	integs, err := client.Integration.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, integs, 5)
	for _, integ := range integs {
		assert.False(t, integ.IsActive)
	}

	_, _, _, err = gen.Run(ctx)
	require.NoError(t, err)
	count, err := client.Integration.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}
