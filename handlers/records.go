package handlers

import (
	"errors"
	"net/http"

	bookingRepo "porchly/database/repository/booking"
	"porchly/utils"

	"github.com/gin-gonic/gin"
)

// BookingRecordsHandler exposes confirmed booking lookups.
type BookingRecordsHandler struct {
	repo bookingRepo.BookingRepository
}

// NewBookingRecordsHandler returns a handler over the given repository.
func NewBookingRecordsHandler(repo bookingRepo.BookingRepository) *BookingRecordsHandler {
	return &BookingRecordsHandler{repo: repo}
}

// GetBooking returns one confirmed booking by id.
func (h *BookingRecordsHandler) GetBooking(c *gin.Context) {
	record, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// ListBookings returns confirmed bookings, optionally filtered by the
// customer email given in ?email=.
func (h *BookingRecordsHandler) ListBookings(c *gin.Context) {
	ctx := c.Request.Context()
	if email := c.Query("email"); email != "" {
		records, err := h.repo.GetByEmail(ctx, email)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": records})
		return
	}

	records, err := h.repo.List(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}
