package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errSchemaMissing is returned by Ping when the database is reachable but the
// webhook tables have not been migrated yet.
var errSchemaMissing = errors.New("webhook schema not migrated")

const schemaReadyQuery = `SELECT to_regclass('public.webhooks') IS NOT NULL AND to_regclass('public.webhook_calls') IS NOT NULL`

// HealthCheck implements ports.HealthChecker for the webhook store. A server
// that answers but lacks the webhooks and webhook_calls tables is unhealthy.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the schema is in place.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var ready bool
	if err := h.pool.QueryRow(ctx, schemaReadyQuery).Scan(&ready); err != nil {
		return fmt.Errorf("checking webhook schema: %w", err)
	}
	if !ready {
		return errSchemaMissing
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
