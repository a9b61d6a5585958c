package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// WebhookStatus represents the health/activation state of a subscription.
type WebhookStatus string

const (
	WebhookStatusActive           WebhookStatus = "ACTIVE"
	WebhookStatusAutoDisabled     WebhookStatus = "AUTO_DISABLED"
	WebhookStatusManuallyDisabled WebhookStatus = "MANUALLY_DISABLED"
)

// Webhook is a team's registered endpoint plus its event filter and health state.
type Webhook struct {
	ID                  uuid.UUID     `json:"id"`
	TeamID              uuid.UUID     `json:"team_id"`
	URL                 string        `json:"url"`
	SecretEnc           string        `json:"-"` // Sealed signing secret, never expose
	EventTypes          []string      `json:"event_types"`
	Status              WebhookStatus `json:"status"`
	ConsecutiveFailures int           `json:"consecutive_failures"`
	LastSuccessAt       *time.Time    `json:"last_success_at,omitempty"`
	LastFailureAt       *time.Time    `json:"last_failure_at,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

// IsActive returns true if the webhook should receive deliveries.
func (w *Webhook) IsActive() bool {
	return w.Status == WebhookStatusActive
}

// Subscribes reports whether the webhook wants eventType. An empty filter
// subscribes to everything.
func (w *Webhook) Subscribes(eventType string) bool {
	if len(w.EventTypes) == 0 {
		return true
	}
	return slices.Contains(w.EventTypes, eventType)
}

// CallStatus is the lifecycle state of one delivery attempt record.
type CallStatus string

const (
	CallStatusPending    CallStatus = "PENDING"
	CallStatusInProgress CallStatus = "IN_PROGRESS"
	CallStatusDelivered  CallStatus = "DELIVERED"
	CallStatusFailed     CallStatus = "FAILED"
	CallStatusDiscarded  CallStatus = "DISCARDED"
)

// IsTerminal returns true once a call can no longer change state.
func (s CallStatus) IsTerminal() bool {
	return s == CallStatusDelivered || s == CallStatusFailed || s == CallStatusDiscarded
}

// WebhookCall records one logical event being delivered to one webhook,
// including the cumulative diagnostics of every retry.
type WebhookCall struct {
	ID             uuid.UUID  `json:"id"`
	WebhookID      uuid.UUID  `json:"webhook_id"`
	TeamID         uuid.UUID  `json:"team_id"`
	Type           string     `json:"type"`
	Payload        string     `json:"payload"` // Serialized at emission time, immutable
	Status         CallStatus `json:"status"`
	Attempt        int        `json:"attempt"`
	NextAttemptAt  *time.Time `json:"next_attempt_at,omitempty"` // Advisory only
	LastError      *string    `json:"last_error,omitempty"`
	ResponseStatus *int       `json:"response_status,omitempty"`
	ResponseTimeMs *int       `json:"response_time_ms,omitempty"`
	ResponseText   *string    `json:"response_text,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsTerminal returns true if the call reached DELIVERED, FAILED or DISCARDED.
func (c *WebhookCall) IsTerminal() bool {
	return c.Status.IsTerminal()
}

// IsRetry reports whether the current attempt is a redelivery.
func (c *WebhookCall) IsRetry() bool {
	return c.Attempt > 1
}

// NewWebhookCall builds a PENDING call at attempt 0.
func NewWebhookCall(id uuid.UUID, webhook *Webhook, eventType, payload string, now time.Time) *WebhookCall {
	return &WebhookCall{
		ID:        id,
		WebhookID: webhook.ID,
		TeamID:    webhook.TeamID,
		Type:      eventType,
		Payload:   payload,
		Status:    CallStatusPending,
		Attempt:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DeliveryResult holds the diagnostics of a successful attempt.
type DeliveryResult struct {
	StatusCode     int
	ResponseTimeMs int
	ResponseText   string
}

// FailureOutcome is the authoritative subscription state after a failure was counted.
type FailureOutcome struct {
	ConsecutiveFailures int
	Status              WebhookStatus
}

// JustDisabled reports whether this failure tripped the circuit breaker.
func (o FailureOutcome) JustDisabled() bool {
	return o.Status == WebhookStatusAutoDisabled
}

// CallFailure is the persisted result of a failed attempt.
type CallFailure struct {
	CallID         uuid.UUID
	Status         CallStatus // PENDING while retries remain, FAILED otherwise
	Attempt        int
	NextAttemptAt  *time.Time
	LastError      string
	ResponseStatus *int
	ResponseTimeMs *int
	ResponseText   *string
}
