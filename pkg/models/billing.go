package models

// CheckoutResponse is returned after creating a Stripe checkout session.
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// PortalResponse is returned after creating a billing portal session.
type PortalResponse struct {
	URL string `json:"url"`
}
