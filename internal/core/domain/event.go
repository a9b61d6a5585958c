package domain

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Event types delivered to webhooks.
const (
	EventEmailSent            = "email.sent"
	EventEmailDelivered       = "email.delivered"
	EventEmailDeliveryDelayed = "email.delivery_delayed"
	EventEmailBounced         = "email.bounced"
	EventEmailComplained      = "email.complained"
	EventEmailRejected        = "email.rejected"
	EventEmailFailed          = "email.failed"
	EventEmailOpened          = "email.opened"
	EventEmailClicked         = "email.clicked"
	EventEmailSuppressed      = "email.suppressed"
	EventEmailCancelled       = "email.cancelled"

	EventContactCreated = "contact.created"
	EventContactUpdated = "contact.updated"
	EventContactDeleted = "contact.deleted"

	EventDomainCreated  = "domain.created"
	EventDomainVerified = "domain.verified"
	EventDomainUpdated  = "domain.updated"
	EventDomainDeleted  = "domain.deleted"

	// EventWebhookTest is the sentinel type of synthetic "send test event" calls.
	EventWebhookTest = "webhook.test"
)

// EventFamily groups event types sharing one payload schema.
type EventFamily string

const (
	FamilyEmail   EventFamily = "email"
	FamilyContact EventFamily = "contact"
	FamilyDomain  EventFamily = "domain"
	FamilyWebhook EventFamily = "webhook"
)

var knownEventTypes = map[string]EventFamily{
	EventEmailSent:            FamilyEmail,
	EventEmailDelivered:       FamilyEmail,
	EventEmailDeliveryDelayed: FamilyEmail,
	EventEmailBounced:         FamilyEmail,
	EventEmailComplained:      FamilyEmail,
	EventEmailRejected:        FamilyEmail,
	EventEmailFailed:          FamilyEmail,
	EventEmailOpened:          FamilyEmail,
	EventEmailClicked:         FamilyEmail,
	EventEmailSuppressed:      FamilyEmail,
	EventEmailCancelled:       FamilyEmail,
	EventContactCreated:       FamilyContact,
	EventContactUpdated:       FamilyContact,
	EventContactDeleted:       FamilyContact,
	EventDomainCreated:        FamilyDomain,
	EventDomainVerified:       FamilyDomain,
	EventDomainUpdated:        FamilyDomain,
	EventDomainDeleted:        FamilyDomain,
	EventWebhookTest:          FamilyWebhook,
}

// FamilyOf resolves the payload family of an event type.
func FamilyOf(eventType string) (EventFamily, bool) {
	f, ok := knownEventTypes[eventType]
	return f, ok
}

// IsKnownEventType reports whether eventType belongs to the catalog.
func IsKnownEventType(eventType string) bool {
	_, ok := knownEventTypes[eventType]
	return ok
}

// EventPayload is implemented by every typed event body.
type EventPayload interface {
	EventFamily() EventFamily
}

// EmailBounce details a bounce event.
type EmailBounce struct {
	Type    string `json:"type"`
	SubType string `json:"subType"`
	Message string `json:"message,omitempty"`
}

// EmailEventData is the payload of every email.* event.
type EmailEventData struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	From       string       `json:"from"`
	To         []string     `json:"to"`
	Subject    string       `json:"subject,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
	Bounce     *EmailBounce `json:"bounce,omitempty"`
	Link       string       `json:"link,omitempty"` // email.clicked only
	Metadata   any          `json:"metadata,omitempty"`
}

func (EmailEventData) EventFamily() EventFamily { return FamilyEmail }

// ContactEventData is the payload of every contact.* event.
type ContactEventData struct {
	ID          string            `json:"id"`
	ContactBook string            `json:"contactBookId"`
	Email       string            `json:"email"`
	FirstName   string            `json:"firstName,omitempty"`
	LastName    string            `json:"lastName,omitempty"`
	Subscribed  bool              `json:"subscribed"`
	Properties  map[string]string `json:"properties,omitempty"`
	OccurredAt  time.Time         `json:"occurredAt"`
}

func (ContactEventData) EventFamily() EventFamily { return FamilyContact }

// DomainEventData is the payload of every domain.* event.
type DomainEventData struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	Region     string    `json:"region,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func (DomainEventData) EventFamily() EventFamily { return FamilyDomain }

// TestEventData is the fixed payload of webhook.test calls.
type TestEventData struct {
	Test      bool      `json:"test"`
	WebhookID string    `json:"webhookId"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

func (TestEventData) EventFamily() EventFamily { return FamilyWebhook }

// ValidatePayload checks a producer's payload against the schema of its event
// family. Opaque payloads (maps, raw JSON, nil) are accepted as-is; a typed
// payload must belong to the event type's family.
func ValidatePayload(eventType string, payload any) error {
	if strings.TrimSpace(eventType) == "" {
		return fmt.Errorf("event type is required")
	}

	typed, ok := asEventPayload(payload)
	if !ok {
		return nil
	}

	family, known := FamilyOf(eventType)
	if !known {
		return fmt.Errorf("unknown event type %q for %s payload", eventType, typed.EventFamily())
	}
	if typed.EventFamily() != family {
		return fmt.Errorf("event type %q expects a %s payload, got %s", eventType, family, typed.EventFamily())
	}
	return nil
}

func asEventPayload(payload any) (EventPayload, bool) {
	switch p := payload.(type) {
	case nil, json.RawMessage, map[string]any, string, []byte:
		return nil, false
	case EventPayload:
		// A typed nil pointer carries no family; treat it as opaque.
		if rv := reflect.ValueOf(p); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		return p, true
	default:
		return nil, false
	}
}
