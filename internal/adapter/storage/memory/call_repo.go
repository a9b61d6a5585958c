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

// CallRepo implements ports.CallRepository.
type CallRepo struct {
	store *Store
}

// NewCallRepo creates a new CallRepo.
func NewCallRepo(store *Store) *CallRepo {
	return &CallRepo{store: store}
}

// Create inserts a call. Returns false when the id already exists.
func (r *CallRepo) Create(_ context.Context, c *domain.WebhookCall) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.webhooks[c.WebhookID]; !ok {
		return false, fmt.Errorf("insert webhook call: webhook %s does not exist", c.WebhookID)
	}
	if _, exists := r.store.calls[c.ID]; exists {
		return false, nil
	}
	r.store.calls[c.ID] = cloneCall(c)
	return true, nil
}

// GetByID fetches a call. Returns nil, nil when it does not exist.
func (r *CallRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.WebhookCall, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.calls[id]
	if !ok {
		return nil, nil
	}
	return cloneCall(c), nil
}

// ListByWebhook returns up to limit calls of a webhook, newest first.
func (r *CallRepo) ListByWebhook(_ context.Context, webhookID uuid.UUID, limit int) ([]domain.WebhookCall, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var out []domain.WebhookCall
	for _, c := range r.store.calls {
		if c.WebhookID == webhookID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MarkInProgress claims the call for an attempt. Returns false if it is already terminal.
func (r *CallRepo) MarkInProgress(_ context.Context, id uuid.UUID, attempt int) (bool, error) {
	return r.update(id, func(c *domain.WebhookCall) {
		c.Status = domain.CallStatusInProgress
		c.Attempt = attempt
	}), nil
}

// MarkPending hands the call back to the queue without recording a failure.
func (r *CallRepo) MarkPending(_ context.Context, id uuid.UUID, nextAttemptAt time.Time) error {
	r.update(id, func(c *domain.WebhookCall) {
		c.Status = domain.CallStatusPending
		c.NextAttemptAt = &nextAttemptAt
	})
	return nil
}

// MarkDiscarded finalizes a call whose webhook is no longer active.
func (r *CallRepo) MarkDiscarded(_ context.Context, id uuid.UUID, attempt int) error {
	r.update(id, func(c *domain.WebhookCall) {
		c.Status = domain.CallStatusDiscarded
		c.Attempt = attempt
		c.NextAttemptAt = nil
	})
	return nil
}

// MarkDelivered records a successful attempt when tx commits.
func (r *CallRepo) MarkDelivered(_ context.Context, tx pgx.Tx, id uuid.UUID, result domain.DeliveryResult) error {
	t, err := asTx(tx)
	if err != nil {
		return fmt.Errorf("mark call delivered: %w", err)
	}
	var text *string
	if result.ResponseText != "" {
		text = &result.ResponseText
	}
	status, ms := result.StatusCode, result.ResponseTimeMs

	t.callOps = append(t.callOps, func() {
		r.updateLocked(id, func(c *domain.WebhookCall) {
			c.Status = domain.CallStatusDelivered
			c.ResponseStatus = &status
			c.ResponseTimeMs = &ms
			c.ResponseText = text
			c.LastError = nil
			c.NextAttemptAt = nil
		})
	})
	return nil
}

// MarkFailed records a failed attempt when tx commits.
func (r *CallRepo) MarkFailed(_ context.Context, tx pgx.Tx, u domain.CallFailure) error {
	t, err := asTx(tx)
	if err != nil {
		return fmt.Errorf("mark call failed: %w", err)
	}
	lastErr := u.LastError

	t.callOps = append(t.callOps, func() {
		r.updateLocked(u.CallID, func(c *domain.WebhookCall) {
			c.Status = u.Status
			c.Attempt = u.Attempt
			c.NextAttemptAt = u.NextAttemptAt
			c.LastError = &lastErr
			c.ResponseStatus = u.ResponseStatus
			c.ResponseTimeMs = u.ResponseTimeMs
			c.ResponseText = u.ResponseText
		})
	})
	return nil
}

// ResetForRetry re-arms a FAILED call for manual redelivery.
func (r *CallRepo) ResetForRetry(_ context.Context, id uuid.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.calls[id]
	if !ok || c.Status != domain.CallStatusFailed {
		return false, nil
	}
	cp := cloneCall(c)
	cp.Status = domain.CallStatusPending
	cp.Attempt = 0
	cp.NextAttemptAt = nil
	cp.LastError = nil
	cp.ResponseStatus = nil
	cp.ResponseTimeMs = nil
	cp.ResponseText = nil
	cp.UpdatedAt = time.Now().UTC()
	r.store.calls[id] = cp
	return true, nil
}

func (r *CallRepo) update(id uuid.UUID, fn func(*domain.WebhookCall)) bool {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.updateLocked(id, fn)
}

// updateLocked applies fn unless the call is missing or terminal. Callers hold store.mu.
func (r *CallRepo) updateLocked(id uuid.UUID, fn func(*domain.WebhookCall)) bool {
	c, ok := r.store.calls[id]
	if !ok || c.IsTerminal() {
		return false
	}
	cp := cloneCall(c)
	fn(cp)
	cp.UpdatedAt = time.Now().UTC()
	r.store.calls[id] = cp
	return true
}
