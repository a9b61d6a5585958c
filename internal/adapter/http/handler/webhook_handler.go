package handler

import (
	"webhook-dispatcher/internal/adapter/http/dto"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"
	"webhook-dispatcher/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WebhookHandler handles webhook subscription management endpoints.
type WebhookHandler struct {
	adminSvc      ports.WebhookAdminService
	dispatcherSvc ports.DispatcherService
}

// NewWebhookHandler creates a new webhook handler.
func NewWebhookHandler(adminSvc ports.WebhookAdminService, dispatcherSvc ports.DispatcherService) *WebhookHandler {
	return &WebhookHandler{adminSvc: adminSvc, dispatcherSvc: dispatcherSvc}
}

// Create registers a new webhook and returns its secret once.
func (h *WebhookHandler) Create(c *gin.Context) {
	teamID, ok := requireTeam(c)
	if !ok {
		return
	}

	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	created, err := h.adminSvc.CreateWebhook(c.Request.Context(), teamID, ports.CreateWebhookRequest{
		URL:        req.URL,
		EventTypes: req.EventTypes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CreatedWebhookResponse{
		WebhookResponse: dto.NewWebhookResponse(created.Webhook),
		Secret:          created.Secret,
	})
}

// List returns every webhook of the team.
func (h *WebhookHandler) List(c *gin.Context) {
	teamID, ok := requireTeam(c)
	if !ok {
		return
	}

	webhooks, err := h.adminSvc.ListWebhooks(c.Request.Context(), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WebhookResponse, 0, len(webhooks))
	for i := range webhooks {
		items = append(items, dto.NewWebhookResponse(&webhooks[i]))
	}
	response.OK(c, items)
}

// Get returns a single webhook.
func (h *WebhookHandler) Get(c *gin.Context) {
	teamID, webhookID, ok := requestScope(c, "Webhook")
	if !ok {
		return
	}

	webhook, err := h.adminSvc.GetWebhook(c.Request.Context(), webhookID, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWebhookResponse(webhook))
}

// SendTest queues a synthetic webhook.test call.
func (h *WebhookHandler) SendTest(c *gin.Context) {
	teamID, webhookID, ok := requestScope(c, "Webhook")
	if !ok {
		return
	}

	callID, err := h.dispatcherSvc.TestWebhook(c.Request.Context(), webhookID, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.CallIDResponse{CallID: callID.String()})
}

// Activate re-enables a disabled webhook and resets its failure counter.
func (h *WebhookHandler) Activate(c *gin.Context) {
	teamID, webhookID, ok := requestScope(c, "Webhook")
	if !ok {
		return
	}

	if err := h.dispatcherSvc.ActivateWebhook(c.Request.Context(), webhookID, teamID); err != nil {
		response.Error(c, err)
		return
	}
	h.respondWithWebhook(c, webhookID, teamID)
}

// Disable pauses deliveries to a webhook.
func (h *WebhookHandler) Disable(c *gin.Context) {
	teamID, webhookID, ok := requestScope(c, "Webhook")
	if !ok {
		return
	}

	if err := h.adminSvc.DisableWebhook(c.Request.Context(), webhookID, teamID); err != nil {
		response.Error(c, err)
		return
	}
	h.respondWithWebhook(c, webhookID, teamID)
}

// RotateSecret issues a new signing secret.
func (h *WebhookHandler) RotateSecret(c *gin.Context) {
	teamID, webhookID, ok := requestScope(c, "Webhook")
	if !ok {
		return
	}

	secret, err := h.adminSvc.RotateSecret(c.Request.Context(), webhookID, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SecretResponse{Secret: secret})
}

// ListCalls returns the most recent calls of a webhook.
func (h *WebhookHandler) ListCalls(c *gin.Context) {
	teamID, webhookID, ok := requestScope(c, "Webhook")
	if !ok {
		return
	}

	var q dto.ListCallsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	calls, err := h.dispatcherSvc.ListCalls(c.Request.Context(), webhookID, teamID, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.CallResponse, 0, len(calls))
	for i := range calls {
		items = append(items, dto.NewCallResponse(&calls[i]))
	}
	response.OK(c, dto.CallListResponse{Items: items, Count: len(items)})
}

func (h *WebhookHandler) respondWithWebhook(c *gin.Context, webhookID, teamID uuid.UUID) {
	webhook, err := h.adminSvc.GetWebhook(c.Request.Context(), webhookID, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewWebhookResponse(webhook))
}
