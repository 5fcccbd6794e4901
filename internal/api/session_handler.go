package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fittrack/gym-app/internal/domain"
	"fittrack/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes admin CRUD over scheduled Zumba sessions.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// --- Request/Response Structs ---

type SessionRequest struct {
	Title             string    `json:"title" binding:"required"`
	ScheduledAt       time.Time `json:"scheduledAt" binding:"required"`
	NotifyLeadMinutes int       `json:"notifyLeadMinutes"`
	IsActive          *bool     `json:"isActive"`
}

type SessionResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	ScheduledAt       time.Time `json:"scheduledAt"`
	NotifyLeadMinutes int       `json:"notifyLeadMinutes"`
	IsActive          bool      `json:"isActive"`
	Notified          bool      `json:"notified"`
}

func mapSessionToResponse(s *domain.ZumbaSession) SessionResponse {
	return SessionResponse{
		ID:                s.ID.Hex(),
		Title:             s.Title,
		ScheduledAt:       s.ScheduledAt,
		NotifyLeadMinutes: s.LeadMinutes(),
		IsActive:          s.IsActive,
		Notified:          s.Notified,
	}
}

func (r *SessionRequest) active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

// --- Handler Methods ---

// CreateSession schedules a new Zumba session.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), req.Title, req.ScheduledAt, req.NotifyLeadMinutes, req.active())
	if err != nil {
		if errors.Is(err, service.ErrInvalidSession) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not create session")
		}
		return
	}

	c.JSON(http.StatusCreated, mapSessionToResponse(session))
}

// ListSessions returns every session, soonest first.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not list sessions")
		return
	}

	out := make([]SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, mapSessionToResponse(&sessions[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetSession returns one session by ID.
func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.sessionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not fetch session")
		}
		return
	}
	c.JSON(http.StatusOK, mapSessionToResponse(session))
}

// UpdateSession edits an existing session.
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	session, err := h.sessionService.Update(c.Request.Context(), c.Param("id"), req.Title, req.ScheduledAt, req.NotifyLeadMinutes, req.active())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidSession):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Could not update session")
		}
		return
	}

	c.JSON(http.StatusOK, mapSessionToResponse(session))
}

// DeleteSession removes a session.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.sessionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not delete session")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
