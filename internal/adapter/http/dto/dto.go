package dto

import (
	"encoding/json"
	"time"

	"webhook-dispatcher/internal/core/domain"
)

// CreateWebhookRequest is the request body for registering a webhook.
type CreateWebhookRequest struct {
	URL        string   `json:"url" binding:"required,max=2048,safe_url"`
	EventTypes []string `json:"event_types" binding:"omitempty,max=32,dive,event_type"`
}

// EmitEventRequest is the request body for producer-side event emission.
type EmitEventRequest struct {
	Type    string          `json:"type" binding:"required,event_type"`
	EventID string          `json:"event_id" binding:"omitempty,max=128,safe_id"`
	Data    json.RawMessage `json:"data"`
}

// ListCallsQuery holds pagination for the call history endpoint.
type ListCallsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// WebhookResponse is the public view of a webhook. The signing secret is never included.
type WebhookResponse struct {
	ID                  string   `json:"id"`
	URL                 string   `json:"url"`
	EventTypes          []string `json:"event_types"`
	Status              string   `json:"status"`
	ConsecutiveFailures int      `json:"consecutive_failures"`
	LastSuccessAt       *string  `json:"last_success_at,omitempty"`
	LastFailureAt       *string  `json:"last_failure_at,omitempty"`
	CreatedAt           string   `json:"created_at"`
	UpdatedAt           string   `json:"updated_at"`
}

// CreatedWebhookResponse includes the plaintext secret, shown exactly once.
type CreatedWebhookResponse struct {
	WebhookResponse
	Secret string `json:"secret"`
}

// SecretResponse carries a freshly rotated secret.
type SecretResponse struct {
	Secret string `json:"secret"`
}

// CallResponse is the public view of a webhook call and its last attempt.
type CallResponse struct {
	ID             string  `json:"id"`
	WebhookID      string  `json:"webhook_id"`
	Type           string  `json:"type"`
	Payload        string  `json:"payload"`
	Status         string  `json:"status"`
	Attempt        int     `json:"attempt"`
	NextAttemptAt  *string `json:"next_attempt_at,omitempty"`
	LastError      *string `json:"last_error,omitempty"`
	ResponseStatus *int    `json:"response_status,omitempty"`
	ResponseTimeMs *int    `json:"response_time_ms,omitempty"`
	ResponseText   *string `json:"response_text,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// CallListResponse wraps a page of call history.
type CallListResponse struct {
	Items []CallResponse `json:"items"`
	Count int            `json:"count"`
}

// CallIDResponse is returned when a call was queued.
type CallIDResponse struct {
	CallID string `json:"call_id"`
}

// NewWebhookResponse maps a domain webhook to its public view.
func NewWebhookResponse(w *domain.Webhook) WebhookResponse {
	eventTypes := w.EventTypes
	if eventTypes == nil {
		eventTypes = []string{}
	}
	return WebhookResponse{
		ID:                  w.ID.String(),
		URL:                 w.URL,
		EventTypes:          eventTypes,
		Status:              string(w.Status),
		ConsecutiveFailures: w.ConsecutiveFailures,
		LastSuccessAt:       formatTimePtr(w.LastSuccessAt),
		LastFailureAt:       formatTimePtr(w.LastFailureAt),
		CreatedAt:           formatTime(w.CreatedAt),
		UpdatedAt:           formatTime(w.UpdatedAt),
	}
}

// NewCallResponse maps a domain call to its public view.
func NewCallResponse(c *domain.WebhookCall) CallResponse {
	return CallResponse{
		ID:             c.ID.String(),
		WebhookID:      c.WebhookID.String(),
		Type:           c.Type,
		Payload:        c.Payload,
		Status:         string(c.Status),
		Attempt:        c.Attempt,
		NextAttemptAt:  formatTimePtr(c.NextAttemptAt),
		LastError:      c.LastError,
		ResponseStatus: c.ResponseStatus,
		ResponseTimeMs: c.ResponseTimeMs,
		ResponseText:   c.ResponseText,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}
