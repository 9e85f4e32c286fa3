package models

import "time"

// Provider keys for the integrations table.
const (
	ProviderZoho     = "zoho"
	ProviderSuiteCRM = "suitecrm"
	ProviderEspoCRM  = "espocrm"
	ProviderOroCRM   = "orocrm"
	ProviderWhatsApp = "whatsapp"
	ProviderStripe   = "stripe"
)

// IntegrationConfig is the typed configuration blob stored on an
// Integration row. Fields are optional per provider; unknown keys from
// older rows are dropped on the next write.
type IntegrationConfig struct {
	// BaseURL is the root URL of the provider's REST API.
	BaseURL string `json:"baseUrl,omitempty"`

	// LastSyncAt is the shared incremental-sync watermark (SuiteCRM).
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`

	// Per-provider sync stamps.
	ZohoLastSyncAt *time.Time `json:"zoho_last_sync_at,omitempty"`
	EspoLastSyncAt *time.Time `json:"espocrm_last_sync_at,omitempty"`
	OroLastSyncAt  *time.Time `json:"orocrm_last_sync_at,omitempty"`

	// WhatsAppPhoneID identifies the sending number for the messaging API.
	WhatsAppPhoneID string `json:"whatsapp_phone_id,omitempty"`
}

// LastSync returns the sync stamp for the given provider.
func (c IntegrationConfig) LastSync(provider string) *time.Time {
	switch provider {
	case ProviderZoho:
		return c.ZohoLastSyncAt
	case ProviderEspoCRM:
		return c.EspoLastSyncAt
	case ProviderOroCRM:
		return c.OroLastSyncAt
	default:
		return c.LastSyncAt
	}
}

// SetLastSync stamps the sync time for the given provider. SuiteCRM and
// any unknown provider use the shared last_sync_at key.
func (c *IntegrationConfig) SetLastSync(provider string, t time.Time) {
	switch provider {
	case ProviderZoho:
		c.ZohoLastSyncAt = &t
	case ProviderEspoCRM:
		c.EspoLastSyncAt = &t
	case ProviderOroCRM:
		c.OroLastSyncAt = &t
	default:
		c.LastSyncAt = &t
	}
}

// UpdateIntegrationRequest is the admin request to mutate an integration.
type UpdateIntegrationRequest struct {
	IsActive *bool              `json:"is_active,omitempty"`
	Config   *IntegrationConfig `json:"config,omitempty"`
	Triggers []string           `json:"triggers,omitempty"`
}

// SetSecretRequest is the admin request to store a credential.
type SetSecretRequest struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value string `json:"value" validate:"required"`
}

// SyncStatusResponse is returned by the per-provider status endpoint.
type SyncStatusResponse struct {
	LastSyncAt   *time.Time  `json:"lastSyncAt"`
	LatestLog    interface{} `json:"latestLog"`
	IsConfigured bool        `json:"isConfigured"`
}
