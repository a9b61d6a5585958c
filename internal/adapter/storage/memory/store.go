// Package memory is an in-process implementation of the storage ports. It
// mirrors the guarded UPDATE semantics of the postgres adapter and is meant
// for local development and end-to-end tests.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"webhook-dispatcher/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store holds all webhooks and calls.
//
// Writes to webhooks are serialized by txMu, the equivalent of a row lock
// held until commit. Call writes made inside a transaction are applied at
// commit time and re-check the terminal guard then.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	webhooks map[uuid.UUID]*domain.Webhook
	calls    map[uuid.UUID]*domain.WebhookCall
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		webhooks: make(map[uuid.UUID]*domain.Webhook),
		calls:    make(map[uuid.UUID]*domain.WebhookCall),
	}
}

// Tx is a store transaction. Only Commit and Rollback are supported; the
// embedded pgx.Tx is nil.
type Tx struct {
	pgx.Tx

	store    *Store
	webhooks map[uuid.UUID]*domain.Webhook
	callOps  []func()
	done     bool
}

var errTxDone = errors.New("memory: transaction already closed")

// Commit publishes staged writes.
func (t *Tx) Commit(_ context.Context) error {
	if t.done {
		return errTxDone
	}
	t.done = true

	t.store.mu.Lock()
	for id, w := range t.webhooks {
		t.store.webhooks[id] = w
	}
	for _, op := range t.callOps {
		op()
	}
	t.store.mu.Unlock()

	t.store.txMu.Unlock()
	return nil
}

// Rollback discards staged writes. It is a no-op after Commit.
func (t *Tx) Rollback(_ context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.store.txMu.Unlock()
	return nil
}

// webhook returns the transaction's view of a webhook.
func (t *Tx) webhook(id uuid.UUID) *domain.Webhook {
	if w, ok := t.webhooks[id]; ok {
		return w
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	w, ok := t.store.webhooks[id]
	if !ok {
		return nil
	}
	c := cloneWebhook(w)
	t.webhooks[id] = c
	return c
}

// Transactor implements ports.DBTransactor.
type Transactor struct {
	store *Store
}

// NewTransactor creates a Transactor over store.
func NewTransactor(store *Store) *Transactor {
	return &Transactor{store: store}
}

// Begin blocks until no other transaction is open.
func (tr *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tr.store.txMu.Lock()
	return &Tx{store: tr.store, webhooks: make(map[uuid.UUID]*domain.Webhook)}, nil
}

func asTx(tx pgx.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok || t == nil {
		return nil, errors.New("memory: foreign transaction")
	}
	if t.done {
		return nil, errTxDone
	}
	return t, nil
}

func cloneWebhook(w *domain.Webhook) *domain.Webhook {
	c := *w
	c.EventTypes = slices.Clone(w.EventTypes)
	return &c
}

func cloneCall(c *domain.WebhookCall) *domain.WebhookCall {
	cp := *c
	return &cp
}
