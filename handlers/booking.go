package handlers

import (
	"errors"
	"net/http"

	"porchly/catalog"
	"porchly/models"
	"porchly/services/booking"
	"porchly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking funnel over HTTP.
type BookingHandler struct {
	svc    booking.BookingSessionService
	logger *zap.Logger
}

// NewBookingHandler returns a handler over the given session service.
func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// InitiateSession starts a new booking session with the default configuration.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, quote, err := h.svc.InitiateSession(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sessionResponse(session, quote))
}

// GetSession returns the session and its recomputed quote.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, quote, err := h.svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session, quote))
}

// UpdateSession applies one named configuration operation to the session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var update models.SessionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, quote, err := h.svc.ApplyUpdate(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(session, quote))
}

// ConfirmBooking submits the configuration for payment and, on success,
// returns the confirmed booking record.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	record, err := h.svc.ConfirmBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// CancelSession discards an in-progress session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func sessionResponse(session *models.BookingSession, quote models.PriceQuote) gin.H {
	return gin.H{
		"sessionId": session.SessionID,
		"status":    session.Status,
		"config":    session.Config,
		"quote":     quote,
	}
}

func (h *BookingHandler) writeError(c *gin.Context, err error) {
	var (
		declined   *booking.PaymentDeclinedError
		validation *booking.ValidationError
		unknownID  *catalog.UnknownIDError
		state      *booking.SessionStateError
	)
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &declined):
		// The collaborator's message goes to the customer verbatim.
		utils.JSONError(c, http.StatusPaymentRequired, "payment failed", declined.Message)
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusUnprocessableEntity, "invalid booking configuration", validation.Error())
	case errors.As(err, &unknownID):
		utils.JSONError(c, http.StatusUnprocessableEntity, "unknown catalog id", unknownID.Error())
	case errors.As(err, &state):
		utils.JSONError(c, http.StatusConflict, "booking session is busy", state.Error())
	default:
		h.logger.Error("booking operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
