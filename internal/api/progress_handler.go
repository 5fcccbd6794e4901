package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fittrack/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler exposes a member's body-stats log.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

type ProgressRequest struct {
	Date     time.Time `json:"date"`
	WeightKg float64   `json:"weightKg" binding:"required,gt=0"`
	HeightCm float64   `json:"heightCm" binding:"required,gt=0"`
	Notes    string    `json:"notes"`
}

// AddEntry records a new progress entry for the authenticated member.
func (h *ProgressHandler) AddEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	entry, err := h.progressService.Add(c.Request.Context(), userID, req.Date, req.WeightKg, req.HeightCm, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProgress) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save progress entry")
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListEntries returns the authenticated member's log, newest first.
func (h *ProgressHandler) ListEntries(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entries, err := h.progressService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not list progress entries")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DeleteEntry removes one of the member's own entries.
func (h *ProgressHandler) DeleteEntry(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.progressService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, service.ErrProgressNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not delete progress entry")
		}
		return
	}
	c.Status(http.StatusNoContent)
}
