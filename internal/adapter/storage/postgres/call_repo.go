package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webhook-dispatcher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const callColumns = `id, webhook_id, team_id, type, payload, status, attempt, next_attempt_at,
		last_error, response_status, response_time_ms, response_text, created_at, updated_at`

// notTerminal guards every lifecycle UPDATE so a finished call never regresses.
const notTerminal = `status NOT IN ('DELIVERED', 'FAILED', 'DISCARDED')`

// CallRepo implements ports.CallRepository.
type CallRepo struct {
	pool Pool
}

// NewCallRepo creates a new CallRepo.
func NewCallRepo(pool Pool) *CallRepo {
	return &CallRepo{pool: pool}
}

// Create inserts a call. Returns false when the id already exists.
func (r *CallRepo) Create(ctx context.Context, c *domain.WebhookCall) (bool, error) {
	query := `INSERT INTO webhook_calls (` + callColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		c.ID, c.WebhookID, c.TeamID, c.Type, c.Payload, string(c.Status), c.Attempt, c.NextAttemptAt,
		c.LastError, c.ResponseStatus, c.ResponseTimeMs, c.ResponseText, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert webhook call: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByID fetches a call by its UUID.
func (r *CallRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WebhookCall, error) {
	query := `SELECT ` + callColumns + ` FROM webhook_calls WHERE id = $1`

	c, err := scanCall(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook call by id: %w", err)
	}
	return c, nil
}

// ListByWebhook returns the newest calls of a webhook first.
func (r *CallRepo) ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit int) ([]domain.WebhookCall, error) {
	query := `SELECT ` + callColumns + ` FROM webhook_calls
		WHERE webhook_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, webhookID, limit)
	if err != nil {
		return nil, fmt.Errorf("list webhook calls: %w", err)
	}
	defer rows.Close()

	var calls []domain.WebhookCall
	for rows.Next() {
		c, err := scanCall(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webhook call: %w", err)
		}
		calls = append(calls, *c)
	}
	return calls, rows.Err()
}

// MarkInProgress claims the call for an attempt. Returns false if it is already terminal.
func (r *CallRepo) MarkInProgress(ctx context.Context, id uuid.UUID, attempt int) (bool, error) {
	query := `UPDATE webhook_calls SET status = 'IN_PROGRESS', attempt = $2, updated_at = NOW()
		WHERE id = $1 AND ` + notTerminal

	tag, err := r.pool.Exec(ctx, query, id, attempt)
	if err != nil {
		return false, fmt.Errorf("mark call in progress: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkPending hands the call back to the queue without recording a failure.
func (r *CallRepo) MarkPending(ctx context.Context, id uuid.UUID, nextAttemptAt time.Time) error {
	query := `UPDATE webhook_calls SET status = 'PENDING', next_attempt_at = $2, updated_at = NOW()
		WHERE id = $1 AND ` + notTerminal

	if _, err := r.pool.Exec(ctx, query, id, nextAttemptAt); err != nil {
		return fmt.Errorf("mark call pending: %w", err)
	}
	return nil
}

// MarkDiscarded finalizes a call whose webhook is no longer active.
func (r *CallRepo) MarkDiscarded(ctx context.Context, id uuid.UUID, attempt int) error {
	query := `UPDATE webhook_calls SET status = 'DISCARDED', attempt = $2, next_attempt_at = NULL, updated_at = NOW()
		WHERE id = $1 AND ` + notTerminal

	if _, err := r.pool.Exec(ctx, query, id, attempt); err != nil {
		return fmt.Errorf("mark call discarded: %w", err)
	}
	return nil
}

// MarkDelivered records a successful attempt within a transaction.
func (r *CallRepo) MarkDelivered(ctx context.Context, tx pgx.Tx, id uuid.UUID, result domain.DeliveryResult) error {
	query := `UPDATE webhook_calls
		SET status = 'DELIVERED', response_status = $2, response_time_ms = $3, response_text = $4,
		    last_error = NULL, next_attempt_at = NULL, updated_at = NOW()
		WHERE id = $1 AND ` + notTerminal

	if _, err := tx.Exec(ctx, query, id, result.StatusCode, result.ResponseTimeMs, nullIfEmpty(result.ResponseText)); err != nil {
		return fmt.Errorf("mark call delivered: %w", err)
	}
	return nil
}

// MarkFailed records a failed attempt within a transaction.
func (r *CallRepo) MarkFailed(ctx context.Context, tx pgx.Tx, u domain.CallFailure) error {
	query := `UPDATE webhook_calls
		SET status = $2, attempt = $3, next_attempt_at = $4, last_error = $5,
		    response_status = $6, response_time_ms = $7, response_text = $8, updated_at = NOW()
		WHERE id = $1 AND ` + notTerminal

	_, err := tx.Exec(ctx, query,
		u.CallID, string(u.Status), u.Attempt, u.NextAttemptAt, u.LastError,
		u.ResponseStatus, u.ResponseTimeMs, u.ResponseText,
	)
	if err != nil {
		return fmt.Errorf("mark call failed: %w", err)
	}
	return nil
}

// ResetForRetry re-arms a FAILED call for manual redelivery.
func (r *CallRepo) ResetForRetry(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE webhook_calls
		SET status = 'PENDING', attempt = 0, next_attempt_at = NULL, last_error = NULL,
		    response_status = NULL, response_time_ms = NULL, response_text = NULL, updated_at = NOW()
		WHERE id = $1 AND status = 'FAILED'`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("reset call for retry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanCall(row pgx.Row) (*domain.WebhookCall, error) {
	c := &domain.WebhookCall{}
	err := row.Scan(
		&c.ID, &c.WebhookID, &c.TeamID, &c.Type, &c.Payload, &c.Status, &c.Attempt, &c.NextAttemptAt,
		&c.LastError, &c.ResponseStatus, &c.ResponseTimeMs, &c.ResponseText, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
