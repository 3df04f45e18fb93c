package handlers

import (
	"net/http"

	"porchly/models"
	"porchly/services/contact"
	"porchly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact page submission.
type ContactHandler struct {
	svc    contact.ContactService
	logger *zap.Logger
}

// NewContactHandler returns a handler over the given contact service.
func NewContactHandler(svc contact.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, logger: logger}
}

// SubmitContactForm serializes the submission into an email draft.
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.svc.BuildDraft(msg)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "could not build contact draft", err.Error())
		return
	}

	h.logger.Info("contact draft built", zap.String("subject", draft.Subject))
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}
