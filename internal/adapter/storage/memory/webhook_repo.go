package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"webhook-dispatcher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WebhookRepo implements ports.WebhookRepository.
type WebhookRepo struct {
	store *Store
}

// NewWebhookRepo creates a new WebhookRepo.
func NewWebhookRepo(store *Store) *WebhookRepo {
	return &WebhookRepo{store: store}
}

// Create inserts a new webhook subscription.
func (r *WebhookRepo) Create(_ context.Context, w *domain.Webhook) error {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.webhooks[w.ID]; exists {
		return fmt.Errorf("insert webhook: duplicate id %s", w.ID)
	}
	c := cloneWebhook(w)
	if c.EventTypes == nil {
		c.EventTypes = []string{}
	}
	r.store.webhooks[w.ID] = c
	return nil
}

// GetByID fetches a webhook. Returns nil, nil when it does not exist.
func (r *WebhookRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Webhook, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	w, ok := r.store.webhooks[id]
	if !ok {
		return nil, nil
	}
	return cloneWebhook(w), nil
}

// ListByTeam returns all webhooks of a team, oldest first.
func (r *WebhookRepo) ListByTeam(_ context.Context, teamID uuid.UUID) ([]domain.Webhook, error) {
	return r.list(func(w *domain.Webhook) bool { return w.TeamID == teamID }), nil
}

// ListActiveForEvent returns the team's ACTIVE webhooks subscribed to eventType, oldest first.
func (r *WebhookRepo) ListActiveForEvent(_ context.Context, teamID uuid.UUID, eventType string) ([]domain.Webhook, error) {
	return r.list(func(w *domain.Webhook) bool {
		return w.TeamID == teamID && w.IsActive() && w.Subscribes(eventType)
	}), nil
}

// Activate re-enables a webhook of teamID and clears its failure streak.
func (r *WebhookRepo) Activate(_ context.Context, id, teamID uuid.UUID) (bool, error) {
	return r.update(id, teamID, func(w *domain.Webhook) {
		w.Status = domain.WebhookStatusActive
		w.ConsecutiveFailures = 0
	}), nil
}

// Disable pauses a webhook on the team's request.
func (r *WebhookRepo) Disable(_ context.Context, id, teamID uuid.UUID) (bool, error) {
	return r.update(id, teamID, func(w *domain.Webhook) {
		w.Status = domain.WebhookStatusManuallyDisabled
	}), nil
}

// UpdateSecret stores a newly sealed signing secret.
func (r *WebhookRepo) UpdateSecret(_ context.Context, id, teamID uuid.UUID, secretEnc string) (bool, error) {
	return r.update(id, teamID, func(w *domain.Webhook) {
		w.SecretEnc = secretEnc
	}), nil
}

// RecordSuccess clears the failure streak within tx.
func (r *WebhookRepo) RecordSuccess(_ context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	t, err := asTx(tx)
	if err != nil {
		return fmt.Errorf("record webhook success: %w", err)
	}
	w := t.webhook(id)
	if w == nil {
		return nil
	}
	w.ConsecutiveFailures = 0
	w.LastSuccessAt = &at
	w.UpdatedAt = at
	return nil
}

// RecordFailure increments the failure streak within tx and trips the breaker
// once it reaches threshold.
func (r *WebhookRepo) RecordFailure(_ context.Context, tx pgx.Tx, id uuid.UUID, at time.Time, threshold int) (*domain.FailureOutcome, error) {
	t, err := asTx(tx)
	if err != nil {
		return nil, fmt.Errorf("record webhook failure: %w", err)
	}
	w := t.webhook(id)
	if w == nil {
		return nil, fmt.Errorf("record webhook failure: webhook %s not found", id)
	}
	w.ConsecutiveFailures++
	w.LastFailureAt = &at
	w.UpdatedAt = at
	if w.Status == domain.WebhookStatusActive && w.ConsecutiveFailures >= threshold {
		w.Status = domain.WebhookStatusAutoDisabled
	}
	return &domain.FailureOutcome{ConsecutiveFailures: w.ConsecutiveFailures, Status: w.Status}, nil
}

func (r *WebhookRepo) list(match func(*domain.Webhook) bool) []domain.Webhook {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.Webhook
	for _, w := range r.store.webhooks {
		if match(w) {
			out = append(out, *cloneWebhook(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// update applies fn to the team's webhook outside any transaction.
func (r *WebhookRepo) update(id, teamID uuid.UUID, fn func(*domain.Webhook)) bool {
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	w, ok := r.store.webhooks[id]
	if !ok || w.TeamID != teamID {
		return false
	}
	c := cloneWebhook(w)
	fn(c)
	c.UpdatedAt = time.Now().UTC()
	r.store.webhooks[id] = c
	return true
}
