package ports

import (
	"context"
	"time"

	"webhook-dispatcher/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService handles HMAC-SHA256 signing of outbound webhooks.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	// SignWebhook returns the "v1=<hex>" signature over "{timestamp}.{body}".
	SignWebhook(secretKey string, timestamp string, body []byte) string
}

// SecretCipher seals webhook signing secrets at rest.
type SecretCipher interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// TokenService handles team-scoped JWT bearer tokens for the management API.
type TokenService interface {
	Generate(teamID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	TeamID uuid.UUID
}

// DistributedLock is a TTL-bounded mutual-exclusion token in a shared store.
type DistributedLock interface {
	// Acquire sets key to token only if absent; returns whether the caller holds the lock.
	Acquire(ctx context.Context, key string, token string, ttl time.Duration) (bool, error)
	// Release deletes key only if it still holds token.
	Release(ctx context.Context, key string, token string) (bool, error)
}

// Job is one queued delivery of a call. ID equals the call id.
type Job struct {
	ID           string
	AttemptsMade int
}

// JobQueue is the durable delivery queue. It owns scheduling, backoff and
// the attempt limit.
type JobQueue interface {
	// Enqueue schedules jobID for immediate delivery; false if the id is already queued.
	Enqueue(ctx context.Context, jobID string) (bool, error)
	// Dequeue leases the next ready job, or returns nil when none is ready.
	Dequeue(ctx context.Context) (*Job, error)
	Ack(ctx context.Context, job *Job) error
	// Fail consumes an attempt and reschedules with backoff; returns true
	// when the job exhausted its attempts and was dead-lettered.
	Fail(ctx context.Context, job *Job, reason string) (bool, error)
	// Requeue reschedules after delay without consuming an attempt.
	Requeue(ctx context.Context, job *Job, delay time.Duration) error
}

// DeliveryExecutor performs a single signed HTTP attempt.
type DeliveryExecutor interface {
	Deliver(ctx context.Context, call *domain.WebhookCall, webhook *domain.Webhook) (*domain.DeliveryResult, error)
}

// CallProcessor runs the call state machine for one queue job.
type CallProcessor interface {
	Process(ctx context.Context, job Job) error
}

// EmitOptions tunes a single emission.
type EmitOptions struct {
	// EventID makes fan-out idempotent: the same event id yields the same call ids.
	EventID string
}

// EmitOption configures EmitOptions.
type EmitOption func(*EmitOptions)

// WithEventID sets a stable producer-side event id.
func WithEventID(id string) EmitOption {
	return func(o *EmitOptions) {
		o.EventID = id
	}
}

// DispatcherService is the producer-facing and management-facing entry point.
type DispatcherService interface {
	// Emit fans an event out to every matching webhook. It never fails.
	Emit(ctx context.Context, teamID uuid.UUID, eventType string, payload any, opts ...EmitOption)
	TestWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (uuid.UUID, error)
	RetryCall(ctx context.Context, callID uuid.UUID, teamID uuid.UUID) error
	ActivateWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) error
	GetCall(ctx context.Context, callID uuid.UUID, teamID uuid.UUID) (*domain.WebhookCall, error)
	ListCalls(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID, limit int) ([]domain.WebhookCall, error)
}

// CreateWebhookRequest describes a new subscription.
type CreateWebhookRequest struct {
	URL string
	// EventTypes filters deliveries; empty subscribes to every event.
	EventTypes []string
}

// CreatedWebhook is returned once on creation; Secret is never shown again.
type CreatedWebhook struct {
	Webhook *domain.Webhook
	Secret  string
}

// WebhookAdminService manages a team's subscriptions.
type WebhookAdminService interface {
	CreateWebhook(ctx context.Context, teamID uuid.UUID, req CreateWebhookRequest) (*CreatedWebhook, error)
	ListWebhooks(ctx context.Context, teamID uuid.UUID) ([]domain.Webhook, error)
	GetWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (*domain.Webhook, error)
	// RotateSecret replaces the signing secret and returns the new plaintext.
	RotateSecret(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (string, error)
	DisableWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) error
}
