package handler

import (
	"context"

	"webhook-dispatcher/internal/adapter/http/dto"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/apperror"
	"webhook-dispatcher/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler lets producers outside the process emit events.
type EventHandler struct {
	dispatcherSvc ports.DispatcherService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(dispatcherSvc ports.DispatcherService) *EventHandler {
	return &EventHandler{dispatcherSvc: dispatcherSvc}
}

// Emit fans the event out to the team's matching webhooks. Emission never
// fails from the producer's point of view, so the response is always 202
// once the request is valid.
func (h *EventHandler) Emit(c *gin.Context) {
	teamID, ok := requireTeam(c)
	if !ok {
		return
	}

	var req dto.EmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	var payload any
	if len(req.Data) > 0 {
		payload = req.Data
	}

	var opts []ports.EmitOption
	if req.EventID != "" {
		opts = append(opts, ports.WithEventID(req.EventID))
	}

	// A client disconnect must not cut a fan-out short.
	h.dispatcherSvc.Emit(context.WithoutCancel(c.Request.Context()), teamID, req.Type, payload, opts...)

	response.Accepted(c, gin.H{"type": req.Type, "event_id": req.EventID})
}
