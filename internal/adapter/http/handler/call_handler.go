package handler

import (
	"webhook-dispatcher/internal/adapter/http/dto"
	"webhook-dispatcher/internal/core/ports"
	"webhook-dispatcher/pkg/response"

	"github.com/gin-gonic/gin"
)

// CallHandler exposes delivery history and manual retries.
type CallHandler struct {
	dispatcherSvc ports.DispatcherService
}

// NewCallHandler creates a new call handler.
func NewCallHandler(dispatcherSvc ports.DispatcherService) *CallHandler {
	return &CallHandler{dispatcherSvc: dispatcherSvc}
}

// Get returns a single call with its last attempt diagnostics.
func (h *CallHandler) Get(c *gin.Context) {
	teamID, callID, ok := requestScope(c, "Call")
	if !ok {
		return
	}

	call, err := h.dispatcherSvc.GetCall(c.Request.Context(), callID, teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewCallResponse(call))
}

// Retry re-queues a FAILED call from attempt zero.
func (h *CallHandler) Retry(c *gin.Context) {
	teamID, callID, ok := requestScope(c, "Call")
	if !ok {
		return
	}

	if err := h.dispatcherSvc.RetryCall(c.Request.Context(), callID, teamID); err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, dto.CallIDResponse{CallID: callID.String()})
}
