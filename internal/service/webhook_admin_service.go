package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"slices"
	"time"

	"webhook-dispatcher/internal/core/domain"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SecretPrefix marks generated webhook signing secrets.
const SecretPrefix = "whsec_"

// WebhookAdminServiceImpl implements ports.WebhookAdminService.
type WebhookAdminServiceImpl struct {
	webhooks ports.WebhookRepository
	cipher   ports.SecretCipher
	now      func() time.Time
	log      zerolog.Logger
}

// NewWebhookAdminService creates a new subscription management service.
func NewWebhookAdminService(webhooks ports.WebhookRepository, cipher ports.SecretCipher, log zerolog.Logger) *WebhookAdminServiceImpl {
	return &WebhookAdminServiceImpl{
		webhooks: webhooks,
		cipher:   cipher,
		now:      time.Now,
		log:      log,
	}
}

// CreateWebhook registers an ACTIVE subscription with a fresh signing secret.
func (s *WebhookAdminServiceImpl) CreateWebhook(ctx context.Context, teamID uuid.UUID, req ports.CreateWebhookRequest) (*ports.CreatedWebhook, error) {
	if err := validateEndpoint(req.URL); err != nil {
		return nil, err
	}
	eventTypes, err := normalizeEventTypes(req.EventTypes)
	if err != nil {
		return nil, err
	}

	secret, sealed, err := s.newSecret()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	webhook := &domain.Webhook{
		ID:         uuid.New(),
		TeamID:     teamID,
		URL:        req.URL,
		SecretEnc:  sealed,
		EventTypes: eventTypes,
		Status:     domain.WebhookStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.webhooks.Create(ctx, webhook); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("webhook_id", webhook.ID.String()).
		Str("team_id", teamID.String()).
		Strs("event_types", eventTypes).
		Msg("Webhook created")

	return &ports.CreatedWebhook{Webhook: webhook, Secret: secret}, nil
}

// ListWebhooks returns the team's subscriptions.
func (s *WebhookAdminServiceImpl) ListWebhooks(ctx context.Context, teamID uuid.UUID) ([]domain.Webhook, error) {
	webhooks, err := s.webhooks.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return webhooks, nil
}

// GetWebhook returns one of the team's subscriptions.
func (s *WebhookAdminServiceImpl) GetWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (*domain.Webhook, error) {
	webhook, err := s.webhooks.GetByID(ctx, webhookID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if webhook == nil || webhook.TeamID != teamID {
		return nil, apperror.ErrNotFound("Webhook")
	}
	return webhook, nil
}

// RotateSecret replaces the signing secret. Calls already queued are signed
// with the new secret from their next attempt on.
func (s *WebhookAdminServiceImpl) RotateSecret(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) (string, error) {
	secret, sealed, err := s.newSecret()
	if err != nil {
		return "", err
	}

	ok, err := s.webhooks.UpdateSecret(ctx, webhookID, teamID, sealed)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if !ok {
		return "", apperror.ErrNotFound("Webhook")
	}

	s.log.Info().Str("webhook_id", webhookID.String()).Msg("Webhook secret rotated")
	return secret, nil
}

// DisableWebhook pauses deliveries until the webhook is activated again.
func (s *WebhookAdminServiceImpl) DisableWebhook(ctx context.Context, webhookID uuid.UUID, teamID uuid.UUID) error {
	ok, err := s.webhooks.Disable(ctx, webhookID, teamID)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !ok {
		return apperror.ErrNotFound("Webhook")
	}

	s.log.Info().Str("webhook_id", webhookID.String()).Msg("Webhook disabled manually")
	return nil
}

func (s *WebhookAdminServiceImpl) newSecret() (string, string, error) {
	secret, err := generateSecret(32)
	if err != nil {
		return "", "", apperror.InternalError(fmt.Errorf("generate webhook secret: %w", err))
	}
	sealed, err := s.cipher.Seal(secret)
	if err != nil {
		return "", "", apperror.ErrEncryptionFailure(err)
	}
	return secret, sealed, nil
}

func generateSecret(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return SecretPrefix + hex.EncodeToString(b), nil
}

func validateEndpoint(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apperror.Validation("url must be an absolute http or https URL")
	}
	return nil
}

// normalizeEventTypes rejects unknown types and the synthetic test type, and
// drops duplicates.
func normalizeEventTypes(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if !domain.IsKnownEventType(t) || t == domain.EventWebhookTest {
			return nil, apperror.Validation(fmt.Sprintf("unknown event type %q", t))
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out, nil
}
