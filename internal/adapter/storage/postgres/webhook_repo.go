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

const webhookColumns = `id, team_id, url, secret_enc, event_types, status, consecutive_failures,
		last_success_at, last_failure_at, created_at, updated_at`

// WebhookRepo implements ports.WebhookRepository.
type WebhookRepo struct {
	pool Pool
}

// NewWebhookRepo creates a new WebhookRepo.
func NewWebhookRepo(pool Pool) *WebhookRepo {
	return &WebhookRepo{pool: pool}
}

// Create inserts a new webhook subscription.
func (r *WebhookRepo) Create(ctx context.Context, w *domain.Webhook) error {
	query := `INSERT INTO webhooks (` + webhookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	eventTypes := w.EventTypes
	if eventTypes == nil {
		eventTypes = []string{}
	}

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.TeamID, w.URL, w.SecretEnc, eventTypes, string(w.Status), w.ConsecutiveFailures,
		w.LastSuccessAt, w.LastFailureAt, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook: %w", err)
	}
	return nil
}

// GetByID fetches a webhook by its UUID.
func (r *WebhookRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Webhook, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhooks WHERE id = $1`

	w, err := scanWebhook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get webhook by id: %w", err)
	}
	return w, nil
}

// ListByTeam returns all webhooks of a team, oldest first.
func (r *WebhookRepo) ListByTeam(ctx context.Context, teamID uuid.UUID) ([]domain.Webhook, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhooks WHERE team_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("list webhooks by team: %w", err)
	}
	return collectWebhooks(rows)
}

// ListActiveForEvent returns the team's ACTIVE webhooks subscribed to eventType.
// An empty event_types array subscribes to everything.
func (r *WebhookRepo) ListActiveForEvent(ctx context.Context, teamID uuid.UUID, eventType string) ([]domain.Webhook, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhooks
		WHERE team_id = $1 AND status = 'ACTIVE'
		  AND (cardinality(event_types) = 0 OR $2 = ANY(event_types))
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, teamID, eventType)
	if err != nil {
		return nil, fmt.Errorf("list webhooks for event: %w", err)
	}
	return collectWebhooks(rows)
}

// Activate re-enables a webhook owned by teamID and clears its failure streak.
func (r *WebhookRepo) Activate(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (bool, error) {
	query := `UPDATE webhooks SET status = 'ACTIVE', consecutive_failures = 0, updated_at = NOW()
		WHERE id = $1 AND team_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, teamID)
	if err != nil {
		return false, fmt.Errorf("activate webhook: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Disable pauses a webhook on the team's request.
func (r *WebhookRepo) Disable(ctx context.Context, id uuid.UUID, teamID uuid.UUID) (bool, error) {
	query := `UPDATE webhooks SET status = 'MANUALLY_DISABLED', updated_at = NOW()
		WHERE id = $1 AND team_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, teamID)
	if err != nil {
		return false, fmt.Errorf("disable webhook: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateSecret stores a newly sealed signing secret.
func (r *WebhookRepo) UpdateSecret(ctx context.Context, id uuid.UUID, teamID uuid.UUID, secretEnc string) (bool, error) {
	query := `UPDATE webhooks SET secret_enc = $3, updated_at = NOW()
		WHERE id = $1 AND team_id = $2`

	tag, err := r.pool.Exec(ctx, query, id, teamID, secretEnc)
	if err != nil {
		return false, fmt.Errorf("update webhook secret: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RecordSuccess resets the failure streak within a transaction.
func (r *WebhookRepo) RecordSuccess(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	query := `UPDATE webhooks SET consecutive_failures = 0, last_success_at = $2, updated_at = $2
		WHERE id = $1`

	if _, err := tx.Exec(ctx, query, id, at); err != nil {
		return fmt.Errorf("record webhook success: %w", err)
	}
	return nil
}

// RecordFailure increments the failure streak within a transaction and trips
// the breaker in the same statement. The returned values come from RETURNING,
// so concurrent writers never see a stale count.
func (r *WebhookRepo) RecordFailure(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time, threshold int) (*domain.FailureOutcome, error) {
	query := `UPDATE webhooks
		SET consecutive_failures = consecutive_failures + 1,
		    last_failure_at = $2,
		    updated_at = $2,
		    status = CASE
		        WHEN status = 'ACTIVE' AND consecutive_failures + 1 >= $3 THEN 'AUTO_DISABLED'
		        ELSE status
		    END
		WHERE id = $1
		RETURNING consecutive_failures, status`

	out := &domain.FailureOutcome{}
	err := tx.QueryRow(ctx, query, id, at, threshold).Scan(&out.ConsecutiveFailures, &out.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("record webhook failure: webhook %s not found", id)
		}
		return nil, fmt.Errorf("record webhook failure: %w", err)
	}
	return out, nil
}

func scanWebhook(row pgx.Row) (*domain.Webhook, error) {
	w := &domain.Webhook{}
	err := row.Scan(
		&w.ID, &w.TeamID, &w.URL, &w.SecretEnc, &w.EventTypes, &w.Status, &w.ConsecutiveFailures,
		&w.LastSuccessAt, &w.LastFailureAt, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func collectWebhooks(rows pgx.Rows) ([]domain.Webhook, error) {
	defer rows.Close()

	var webhooks []domain.Webhook
	for rows.Next() {
		w, err := scanWebhook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan webhook: %w", err)
		}
		webhooks = append(webhooks, *w)
	}
	return webhooks, rows.Err()
}
