package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v76"
	billingportalsession "github.com/stripe/stripe-go/v76/billingportal/session"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	stripecustomer "github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/mateovidal/crmbridge/ent"
	entcustomer "github.com/mateovidal/crmbridge/ent/customer"
	"github.com/mateovidal/crmbridge/ent/payment"
	entsubscription "github.com/mateovidal/crmbridge/ent/subscription"
	"github.com/mateovidal/crmbridge/pkg/integration"
	"github.com/mateovidal/crmbridge/pkg/logger"
	"github.com/mateovidal/crmbridge/pkg/models"
)

// ErrInvalidSignature is returned when a webhook payload fails Stripe's
// signature check. Callers must answer 400 and touch nothing.
var ErrInvalidSignature = errors.New("invalid stripe signature")

// Config holds Stripe configuration.
type Config struct {
	SecretKey     string
	WebhookSecret string
	SuccessURL    string
	CancelURL     string
}

// Service handles Stripe billing operations: checkout and portal sessions
// plus the strict inbound webhook.
type Service struct {
	db       *ent.Client
	registry *integration.Registry
	log      logger.Logger
	config   *Config
}

// NewService creates a new billing service. registry may be nil; when set,
// handled webhook events are recorded against the stripe integration row.
func NewService(db *ent.Client, registry *integration.Registry, log logger.Logger, config *Config) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:       db,
		registry: registry,
		log:      log,
		config:   config,
	}
}

// CreateCheckoutSession creates a Stripe checkout session for a customer,
// creating the Stripe-side customer object on first use.
func (s *Service) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutResponse, error) {
	customerID, err := s.ensureStripeCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Customer: stripe.String(customerID),
		Mode:     stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata: map[string]string{
			"customer_id": fmt.Sprintf("%d", req.CustomerID),
		},
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &models.CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// CreatePortalSession creates a Stripe customer portal session.
func (s *Service) CreatePortalSession(ctx context.Context, req models.PortalRequest) (*models.PortalResponse, error) {
	c, err := s.db.Customer.Get(ctx, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if c.StripeCustomerID == "" {
		return nil, fmt.Errorf("customer %d has no Stripe customer ID", req.CustomerID)
	}

	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = s.config.SuccessURL
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(c.StripeCustomerID),
		ReturnURL: stripe.String(returnURL),
	}

	sess, err := billingportalsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create portal session: %w", err)
	}

	return &models.PortalResponse{URL: sess.URL}, nil
}

// ensureStripeCustomer returns the Stripe customer id for a CRM customer,
// creating and persisting one when missing.
func (s *Service) ensureStripeCustomer(ctx context.Context, customerID int) (string, error) {
	c, err := s.db.Customer.Get(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("failed to get customer: %w", err)
	}

	if c.StripeCustomerID != "" {
		return c.StripeCustomerID, nil
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(c.Email),
		Name:  stripe.String(c.Name),
		Metadata: map[string]string{
			"customer_id": fmt.Sprintf("%d", customerID),
		},
	}
	cust, err := stripecustomer.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create stripe customer: %w", err)
	}

	if _, err := s.db.Customer.UpdateOneID(customerID).
		SetStripeCustomerID(cust.ID).
		Save(ctx); err != nil {
		return "", fmt.Errorf("failed to save stripe customer ID: %w", err)
	}

	return cust.ID, nil
}

// HandleWebhook verifies and processes one Stripe webhook delivery. A bad
// signature returns ErrInvalidSignature before anything is written. Returns
// the event type for access logging.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (string, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	eventType := string(event.Type)
	s.log.Info("stripe webhook received", "type", eventType, "event_id", event.ID)

	switch eventType {
	case "payment_intent.succeeded":
		err = s.handlePaymentIntentSucceeded(ctx, event)
	case "customer.subscription.created", "customer.subscription.updated":
		err = s.handleSubscriptionUpserted(ctx, event)
	case "customer.subscription.deleted":
		err = s.handleSubscriptionDeleted(ctx, event)
	default:
		s.log.Debug("unhandled stripe event type", "type", eventType)
		return eventType, nil
	}
	if err != nil {
		s.logStripeEvent(ctx, eventType, event.ID, integration.StatusFailed, err)
		return eventType, err
	}

	s.logStripeEvent(ctx, eventType, event.ID, integration.StatusSuccess, nil)
	return eventType, nil
}

// handlePaymentIntentSucceeded upserts a payment row keyed by the Stripe
// PaymentIntent id, linked to the customer when the Stripe customer id is
// known locally.
func (s *Service) handlePaymentIntentSucceeded(ctx context.Context, event stripe.Event) error {
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return fmt.Errorf("failed to unmarshal payment intent: %w", err)
	}

	existing, err := s.db.Payment.Query().
		Where(payment.StripePaymentIntentID(pi.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetAmount(pi.Amount).
			SetCurrency(string(pi.Currency)).
			SetStatus(string(pi.Status)).
			Save(ctx)
	case ent.IsNotFound(err):
		create := s.db.Payment.Create().
			SetStripePaymentIntentID(pi.ID).
			SetAmount(pi.Amount).
			SetCurrency(string(pi.Currency)).
			SetStatus(string(pi.Status))
		if c := s.findCustomer(ctx, pi.Customer); c != nil {
			create.SetCustomer(c)
		}
		_, err = create.Save(ctx)
	default:
		return fmt.Errorf("failed to look up payment %s: %w", pi.ID, err)
	}
	if err != nil {
		return fmt.Errorf("failed to store payment %s: %w", pi.ID, err)
	}
	return nil
}

// handleSubscriptionUpserted upserts a subscription row keyed by the Stripe
// Subscription id. created and updated events share this path.
func (s *Service) handleSubscriptionUpserted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	periodEnd := time.Unix(sub.CurrentPeriodEnd, 0)

	existing, err := s.db.Subscription.Query().
		Where(entsubscription.StripeSubscriptionID(sub.ID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetStatus(string(sub.Status)).
			SetCurrentPeriodEnd(periodEnd).
			Save(ctx)
	case ent.IsNotFound(err):
		create := s.db.Subscription.Create().
			SetStripeSubscriptionID(sub.ID).
			SetStatus(string(sub.Status)).
			SetCurrentPeriodEnd(periodEnd)
		if c := s.findCustomer(ctx, sub.Customer); c != nil {
			create.SetCustomer(c)
		}
		_, err = create.Save(ctx)
	default:
		return fmt.Errorf("failed to look up subscription %s: %w", sub.ID, err)
	}
	if err != nil {
		return fmt.Errorf("failed to store subscription %s: %w", sub.ID, err)
	}
	return nil
}

// handleSubscriptionDeleted marks a known subscription canceled. Unknown
// subscriptions are ignored.
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	existing, err := s.db.Subscription.Query().
		Where(entsubscription.StripeSubscriptionID(sub.ID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.log.Warn("subscription not found for deletion", "stripe_subscription_id", sub.ID)
			return nil
		}
		return fmt.Errorf("failed to find subscription %s: %w", sub.ID, err)
	}

	if _, err := existing.Update().
		SetStatus(string(stripe.SubscriptionStatusCanceled)).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to cancel subscription %s: %w", sub.ID, err)
	}
	return nil
}

// findCustomer resolves a Stripe customer reference to a local customer row,
// or nil when absent.
func (s *Service) findCustomer(ctx context.Context, ref *stripe.Customer) *ent.Customer {
	if ref == nil || ref.ID == "" {
		return nil
	}
	c, err := s.db.Customer.Query().
		Where(entcustomer.StripeCustomerID(ref.ID)).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			s.log.Warn("failed to resolve stripe customer", "stripe_customer_id", ref.ID, "error", err)
		}
		return nil
	}
	return c
}

// logStripeEvent records the handled event against the stripe integration
// row when one exists.
func (s *Service) logStripeEvent(ctx context.Context, eventType, eventID, status string, handleErr error) {
	if s.registry == nil {
		return
	}
	integ, err := s.registry.GetByProvider(ctx, models.ProviderStripe)
	if err != nil {
		return
	}

	payload := map[string]interface{}{"type": eventType, "event_id": eventID}
	var response map[string]interface{}
	if handleErr != nil {
		response = map[string]interface{}{"error": handleErr.Error()}
	}
	s.registry.LogExecution(ctx, integ.ID, "stripe.webhook", status, payload, response)
}
