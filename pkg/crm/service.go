package crm

import (
	"context"
	"fmt"

	"github.com/mateovidal/crmbridge/ent"
	entcustomer "github.com/mateovidal/crmbridge/ent/customer"
	"github.com/mateovidal/crmbridge/ent/deal"
	"github.com/mateovidal/crmbridge/ent/lead"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/webhook"
)

// Dispatcher broadcasts internal events to webhook subscribers.
type Dispatcher interface {
	Dispatch(ctx context.Context, event string, data map[string]interface{}) error
}

// Service owns leads, deals and customers. Mutations emit webhook events
// after the write commits; a dispatch failure is logged but never rolls back
// or fails the mutation.
type Service struct {
	db         *ent.Client
	dispatcher Dispatcher
	log        logger.Logger
}

// NewService creates a new CRM service.
func NewService(db *ent.Client, dispatcher Dispatcher, log logger.Logger) *Service {
	return &Service{db: db, dispatcher: dispatcher, log: log}
}

// CreateLead creates a lead and emits lead.created.
func (s *Service) CreateLead(ctx context.Context, name, email, phone, company, source string) (*ent.Lead, error) {
	create := s.db.Lead.Create().
		SetName(name).
		SetEmail(email).
		SetPhone(phone).
		SetCompany(company)
	if source != "" {
		create.SetSource(source)
	}

	l, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.emit(ctx, webhook.EventLeadCreated, map[string]interface{}{
		"lead_id": l.ID,
		"name":    l.Name,
		"email":   l.Email,
		"source":  l.Source,
		"status":  string(l.Status),
	})
	return l, nil
}

// UpdateLeadStatus moves a lead through its lifecycle and emits lead.updated.
func (s *Service) UpdateLeadStatus(ctx context.Context, id int, status string) (*ent.Lead, error) {
	l, err := s.db.Lead.UpdateOneID(id).
		SetStatus(lead.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead %d not found", id)
		}
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	s.emit(ctx, webhook.EventLeadUpdated, map[string]interface{}{
		"lead_id": l.ID,
		"status":  string(l.Status),
	})
	return l, nil
}

// GetLead returns one lead by id.
func (s *Service) GetLead(ctx context.Context, id int) (*ent.Lead, error) {
	l, err := s.db.Lead.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("lead %d not found", id)
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

// ListLeads returns leads newest first, optionally filtered by status.
func (s *Service) ListLeads(ctx context.Context, status string, limit int) ([]*ent.Lead, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := s.db.Lead.Query()
	if status != "" {
		q = q.Where(lead.StatusEQ(lead.Status(status)))
	}
	leads, err := q.
		Order(ent.Desc(lead.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// CreateDeal creates a deal and emits deal.created.
func (s *Service) CreateDeal(ctx context.Context, title string, amount float64, currency string, customerID *int) (*ent.Deal, error) {
	create := s.db.Deal.Create().
		SetTitle(title).
		SetAmount(amount)
	if currency != "" {
		create.SetCurrency(currency)
	}
	if customerID != nil {
		create.SetCustomerID(*customerID)
	}

	d, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}

	s.emit(ctx, webhook.EventDealCreated, map[string]interface{}{
		"deal_id":  d.ID,
		"title":    d.Title,
		"amount":   d.Amount,
		"currency": d.Currency,
		"stage":    string(d.Stage),
	})
	return d, nil
}

// UpdateDealStage moves a deal to another pipeline stage and emits
// deal.stage_changed with both sides of the transition.
func (s *Service) UpdateDealStage(ctx context.Context, id int, stage string) (*ent.Deal, error) {
	current, err := s.db.Deal.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("deal %d not found", id)
		}
		return nil, fmt.Errorf("failed to get deal: %w", err)
	}
	previous := string(current.Stage)

	d, err := current.Update().
		SetStage(deal.Stage(stage)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}

	s.emit(ctx, webhook.EventDealStageChanged, map[string]interface{}{
		"deal_id":        d.ID,
		"stage":          string(d.Stage),
		"previous_stage": previous,
	})
	return d, nil
}

// ListDeals returns deals newest first, optionally filtered by stage.
func (s *Service) ListDeals(ctx context.Context, stage string, limit int) ([]*ent.Deal, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	q := s.db.Deal.Query()
	if stage != "" {
		q = q.Where(deal.StageEQ(deal.Stage(stage)))
	}
	deals, err := q.
		Order(ent.Desc(deal.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	return deals, nil
}

// CreateCustomer creates a customer and emits customer.created.
func (s *Service) CreateCustomer(ctx context.Context, name, email, phone, company string) (*ent.Customer, error) {
	c, err := s.db.Customer.Create().
		SetName(name).
		SetEmail(email).
		SetPhone(phone).
		SetCompany(company).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("customer with email %s already exists", email)
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.emit(ctx, webhook.EventCustomerCreated, map[string]interface{}{
		"customer_id": c.ID,
		"name":        c.Name,
		"email":       c.Email,
	})
	return c, nil
}

// GetCustomer returns one customer by id.
func (s *Service) GetCustomer(ctx context.Context, id int) (*ent.Customer, error) {
	c, err := s.db.Customer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("customer %d not found", id)
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}

// ListCustomers returns customers newest first.
func (s *Service) ListCustomers(ctx context.Context, limit int) ([]*ent.Customer, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	customers, err := s.db.Customer.Query().
		Order(ent.Desc(entcustomer.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

func (s *Service) emit(ctx context.Context, event string, data map[string]interface{}) {
	if err := s.dispatcher.Dispatch(ctx, event, data); err != nil {
		s.log.Error("failed to dispatch event", "event", event, "error", err)
	}
}
