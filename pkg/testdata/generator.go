package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/mateovidal/crmbridge/ent"
	"github.com/mateovidal/crmbridge/ent/deal"
	entintegration "github.com/mateovidal/crmbridge/ent/integration"
	"github.com/mateovidal/crmbridge/ent/lead"
)

// GeneratorConfig configures fake data generation.
type GeneratorConfig struct {
	Leads            int
	Customers        int
	DealsPerCustomer int
	EmailChance      float64 // 0.0-1.0 probability of a lead having an email
	PhoneChance      float64
	Seed             int64
}

// DefaultConfig returns sensible volumes for a local environment.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Leads:            200,
		Customers:        25,
		DealsPerCustomer: 3,
		EmailChance:      0.8,
		PhoneChance:      0.6,
	}
}

var leadSources = []string{"manual", "zoho", "suitecrm", "espocrm", "orocrm"}

var leadStatuses = []lead.Status{
	lead.StatusNew,
	lead.StatusContacted,
	lead.StatusQualified,
	lead.StatusLost,
}

var dealStages = []deal.Stage{
	deal.StageProspecting,
	deal.StageProposal,
	deal.StageNegotiation,
	deal.StageWon,
	deal.StageLost,
}

// Generator creates fake leads, customers and deals.
type Generator struct {
	db  *ent.Client
	cfg GeneratorConfig
	rng *rand.Rand
}

// NewGenerator creates a generator. A zero Seed produces varied output.
func NewGenerator(db *ent.Client, cfg GeneratorConfig) *Generator {
	if cfg.Seed != 0 {
		gofakeit.Seed(cfg.Seed)
	}
	return &Generator{
		db:  db,
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed + 1)),
	}
}

// Run populates the database and returns how many rows were created.
func (g *Generator) Run(ctx context.Context) (leads, customers, deals int, err error) {
	if err = g.seedIntegrations(ctx); err != nil {
		return
	}
	leads, err = g.generateLeads(ctx)
	if err != nil {
		return
	}
	customers, deals, err = g.generateCustomers(ctx)
	return
}

// seedIntegrations registers one inactive row per provider so the admin API
// has something to configure. Existing rows are left alone.
func (g *Generator) seedIntegrations(ctx context.Context) error {
	providers := map[entintegration.Provider]string{
		entintegration.ProviderZoho:     "Zoho CRM",
		entintegration.ProviderSuitecrm: "SuiteCRM",
		entintegration.ProviderEspocrm:  "EspoCRM",
		entintegration.ProviderOrocrm:   "OroCRM",
		entintegration.ProviderWhatsapp: "WhatsApp Business",
	}
	for provider, name := range providers {
		exists, err := g.db.Integration.Query().
			Where(entintegration.ProviderEQ(provider)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check integration %s: %w", provider, err)
		}
		if exists {
			continue
		}
		if _, err := g.db.Integration.Create().
			SetName(name).
			SetProvider(provider).
			SetIsActive(false).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to seed integration %s: %w", provider, err)
		}
	}
	return nil
}

func (g *Generator) generateLeads(ctx context.Context) (int, error) {
	created := 0
	for i := 0; i < g.cfg.Leads; i++ {
		company := gofakeit.Company()
		create := g.db.Lead.Create().
			SetName(gofakeit.Name()).
			SetCompany(company).
			SetSource(leadSources[g.rng.Intn(len(leadSources))]).
			SetStatus(leadStatuses[g.rng.Intn(len(leadStatuses))])

		if g.rng.Float64() < g.cfg.EmailChance {
			create.SetEmail(companyEmail(company))
		}
		if g.rng.Float64() < g.cfg.PhoneChance {
			create.SetPhone(gofakeit.Phone())
		}

		if _, err := create.Save(ctx); err != nil {
			return created, fmt.Errorf("failed to create lead: %w", err)
		}
		created++
	}
	return created, nil
}

func (g *Generator) generateCustomers(ctx context.Context) (int, int, error) {
	customers, deals := 0, 0
	for i := 0; i < g.cfg.Customers; i++ {
		company := gofakeit.Company()
		cust, err := g.db.Customer.Create().
			SetName(gofakeit.Name()).
			SetEmail(fmt.Sprintf("%d.%s", i, companyEmail(company))).
			SetPhone(gofakeit.Phone()).
			SetCompany(company).
			Save(ctx)
		if err != nil {
			return customers, deals, fmt.Errorf("failed to create customer: %w", err)
		}
		customers++

		for d := 0; d < g.cfg.DealsPerCustomer; d++ {
			_, err := g.db.Deal.Create().
				SetTitle(fmt.Sprintf("%s - %s", company, gofakeit.ProductName())).
				SetAmount(gofakeit.Price(500, 50000)).
				SetCurrency("USD").
				SetStage(dealStages[g.rng.Intn(len(dealStages))]).
				SetCustomer(cust).
				Save(ctx)
			if err != nil {
				return customers, deals, fmt.Errorf("failed to create deal: %w", err)
			}
			deals++
		}
	}
	return customers, deals, nil
}

func companyEmail(company string) string {
	domain := strings.ToLower(strings.NewReplacer(" ", "", ",", "", ".", "", "'", "").Replace(company))
	return fmt.Sprintf("%s@%s.example.com", strings.ToLower(gofakeit.Username()), domain)
}
