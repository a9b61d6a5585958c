package handler

import (
	"webhook-dispatcher/internal/adapter/http/middleware"
	"webhook-dispatcher/pkg/apperror"
	"webhook-dispatcher/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestScope extracts the authenticated team and the :id path parameter.
// It writes the error response itself and returns false on failure.
func requestScope(c *gin.Context, entity string) (teamID uuid.UUID, id uuid.UUID, ok bool) {
	teamID, ok = requireTeam(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrNotFound(entity))
		return uuid.Nil, uuid.Nil, false
	}
	return teamID, id, true
}

func requireTeam(c *gin.Context) (uuid.UUID, bool) {
	teamID, ok := middleware.TeamID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return teamID, true
}
