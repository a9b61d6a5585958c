package ports

import (
	"context"
	"time"

	"webhook-dispatcher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookRepository defines persistence operations for webhook subscriptions.
// Methods accepting pgx.Tx are used inside the delivery outcome transaction.
type WebhookRepository interface {
	Create(ctx context.Context, webhook *domain.Webhook) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Webhook, error)
	ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Webhook, error)
	// ListActiveForEvent returns the team's ACTIVE webhooks whose filter is
	// empty or contains eventType.
	ListActiveForEvent(ctx context.Context, teamID uuid.UUID, eventType string) ([]domain.Webhook, error)
	// Activate re-enables a disabled webhook and resets its failure counter.
	// Returns false when no webhook matched id and teamID.
	Activate(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (bool, error)
	// Disable moves a webhook to MANUALLY_DISABLED. Returns false when no
	// webhook matched id and teamID.
	Disable(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (bool, error)
	UpdateSecret(ctx context.Context, id uuid.UUID, teamID uuid.UUID, secretEnc string) (bool, error)
	RecordSuccess(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error
	// RecordFailure increments the persisted failure counter and flips the
	// webhook to AUTO_DISABLED when the post-increment value reaches threshold.
	RecordFailure(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time, threshold int) (*domain.FailureOutcome, error)
}

// CallRepository defines persistence operations for delivery attempt records.
// Lifecycle updates never touch a call that already reached a terminal state.
type CallRepository interface {
	// Create inserts a call; returns false if a call with the same id exists.
	Create(ctx context.Context, call *domain.WebhookCall) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookCall, error)
	ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit int) ([]domain.WebhookCall, error)
	// MarkInProgress returns false when the call is already terminal.
	MarkInProgress(ctx context.Context, id uuid.UUID, attempt int) (bool, error)
	MarkPending(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time) error
	MarkDiscarded(ctx context.Context, id uuid.UUID, attempt int) error
	MarkDelivered(ctx context.Context, tx pgx.Tx, id uuid.UUID, result domain.DeliveryResult) error
	MarkFailed(ctx context.Context, tx pgx.Tx, update domain.CallFailure) error
	// ResetForRetry moves a FAILED call back to PENDING at attempt 0.
	// Returns false when the call is not FAILED.
	ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
