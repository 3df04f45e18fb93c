package booking

import (
	"context"

	bookingRepo "porchly/database/repository/booking"
	"porchly/models"
	"porchly/services/payment"

	"go.uber.org/zap"
)

// BookingSessionService manages the stateful booking funnel: one mutable
// configuration per session, a derived quote on every read, and the final
// payment handoff.
type BookingSessionService interface {
	InitiateSession(ctx context.Context) (*models.BookingSession, models.PriceQuote, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, models.PriceQuote, error)
	ApplyUpdate(ctx context.Context, sessionID string, update models.SessionUpdate) (*models.BookingSession, models.PriceQuote, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Store    SessionStore
	Payments payment.PaymentProcessor
	Repo     bookingRepo.BookingRepository
	Logger   *zap.Logger
}
