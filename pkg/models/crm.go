package models

// CreateLeadRequest creates a lead.
type CreateLeadRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Company string `json:"company" validate:"max=200"`
	Source  string `json:"source" validate:"max=50"`
}

// UpdateLeadStatusRequest moves a lead through its lifecycle.
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified lost"`
}

// CreateDealRequest creates a deal.
type CreateDealRequest struct {
	Title      string  `json:"title" validate:"required,min=1,max=200"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Currency   string  `json:"currency" validate:"omitempty,len=3"`
	CustomerID *int    `json:"customer_id,omitempty"`
}

// UpdateDealStageRequest moves a deal to another pipeline stage.
type UpdateDealStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=prospecting proposal negotiation won lost"`
}

// CreateCustomerRequest creates a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Company string `json:"company" validate:"max=200"`
}

// SendMessageRequest sends a WhatsApp text message.
type SendMessageRequest struct {
	To   string `json:"to" validate:"required,min=5,max=20"`
	Body string `json:"body" validate:"required,min=1,max=4096"`
}

// CheckoutRequest creates a Stripe checkout session.
type CheckoutRequest struct {
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	PriceID    string `json:"price_id" validate:"required"`
}

// PortalRequest creates a Stripe billing portal session.
type PortalRequest struct {
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	ReturnURL  string `json:"return_url" validate:"omitempty,url"`
}
