package models

// CreateEndpointRequest registers a webhook subscriber.
type CreateEndpointRequest struct {
	URL         string   `json:"url" validate:"required,url"`
	Events      []string `json:"events" validate:"required,min=1,dive,min=1"`
	Description string   `json:"description" validate:"max=500"`
}

// TestDispatchRequest triggers a synchronous dispatch of an arbitrary event.
type TestDispatchRequest struct {
	Event string                 `json:"event" validate:"required,min=1"`
	Data  map[string]interface{} `json:"data"`
}
