package api

import (
	"fmt"
	"net/http"

	"fittrack/gym-app/internal/mailer"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ContactHandler accepts contact-form submissions and mails an
// acknowledgement back to the sender.
type ContactHandler struct {
	mail mailer.Mailer
	log  *logrus.Entry
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(mail mailer.Mailer) *ContactHandler {
	return &ContactHandler{
		mail: mail,
		log:  logrus.WithField("component", "contact"),
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit acknowledges a contact-form message. The acknowledgement email is
// best effort; a mail failure is logged but the submission still succeeds.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	h.log.WithField("from", req.Email).Info("contact form submitted")

	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Thanks for reaching out. We received your message and will get back to you within one business day.</p>
<p>— FitTrack</p>`,
		req.Name)

	if err := h.mail.Send(c.Request.Context(), req.Email, "We received your message", body); err != nil {
		h.log.WithError(err).Warn("acknowledgement email failed")
	}

	c.JSON(http.StatusAccepted, gin.H{"message": "Thanks! We'll be in touch soon."})
}
