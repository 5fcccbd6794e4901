package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/gym-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler covers member self-service endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type NotifyOptInRequest struct {
	OptIn *bool `json:"optIn" binding:"required"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AvatarConfirmRequest struct {
	ObjectKey string `json:"objectKey" binding:"required"`
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.profileService.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not fetch profile")
		}
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// SetNotifyOptIn toggles session reminder emails for the member.
func (h *ProfileHandler) SetNotifyOptIn(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req NotifyOptInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Field 'optIn' is required")
		return
	}

	if err := h.profileService.SetNotifyOptIn(c.Request.Context(), userID, *req.OptIn); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not update notification setting")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"optIn": *req.OptIn})
}

// RequestAvatarUpload returns a presigned PUT URL for a new profile picture.
func (h *ProfileHandler) RequestAvatarUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AvatarUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	upload, err := h.profileService.RequestAvatarUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not create upload URL")
		return
	}
	c.JSON(http.StatusOK, upload)
}

// ConfirmAvatarUpload records the uploaded object key on the profile.
func (h *ProfileHandler) ConfirmAvatarUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AvatarConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Field 'objectKey' is required")
		return
	}

	if err := h.profileService.ConfirmAvatarUpload(c.Request.Context(), userID, req.ObjectKey); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not confirm upload")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAvatarURL returns a short-lived download URL for the current avatar.
func (h *ProfileHandler) GetAvatarURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	url, err := h.profileService.AvatarDownloadURL(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAvatar) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not create download URL")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
