package booking

import (
	"context"
	"fmt"
	"time"

	"porchly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConfirmBooking validates the configuration, hands the quoted total to the
// payment collaborator and, on success, persists the confirmed booking and
// discards the session. On failure the collaborator's message is surfaced
// verbatim and the session reopens; no retry is attempted here.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.Booking, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.SessionOpen {
		return nil, &SessionStateError{Status: session.Status}
	}

	if err := ValidateForSubmission(session.Config); err != nil {
		return nil, err
	}
	quote, err := BuildQuote(session.Config)
	if err != nil {
		return nil, err
	}

	// Mark the session processing before the handoff so a duplicate submit is
	// rejected while the collaborator runs.
	session.Status = models.SessionProcessing
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, err
	}

	receipt, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		BookingID:   session.SessionID,
		Amount:      quote.Total,
		Currency:    "usd",
		Customer:    session.Config.Contact,
		Address:     session.Config.Address,
		Description: fmt.Sprintf("Porch display booking (%s package)", session.Config.PackageID),
	})
	if err != nil {
		session.Status = models.SessionOpen
		session.UpdatedAt = time.Now()
		if saveErr := s.Store.Save(ctx, *session); saveErr != nil {
			s.Logger.Error("failed to reopen session after payment failure",
				zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return nil, &PaymentDeclinedError{Message: err.Error()}
	}

	record := models.Booking{
		ID:        uuid.New().String(),
		Config:    session.Config,
		Quote:     quote,
		ReceiptID: receipt.ReceiptID,
		Status:    models.BookingConfirmed,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("payment succeeded but booking could not be recorded: %w", err)
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to discard session after confirmation",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", record.ID),
		zap.String("package", record.Config.PackageID),
		zap.Int("total", quote.Total))
	return &record, nil
}
