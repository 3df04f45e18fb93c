package booking

import (
	"context"
	"fmt"
	"time"

	"porchly/models"

	"github.com/google/uuid"
)

// InitiateSession creates a fresh session with the default configuration,
// assigns it a unique SessionID and stores it. The initial quote reflects the
// default package alone.
func (s *DefaultBookingSessionService) InitiateSession(ctx context.Context) (*models.BookingSession, models.PriceQuote, error) {
	now := time.Now()
	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Status:    models.SessionOpen,
		Config:    NewConfiguration(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, models.PriceQuote{}, err
	}

	quote, err := BuildQuote(session.Config)
	if err != nil {
		return nil, models.PriceQuote{}, err
	}
	return &session, quote, nil
}

// GetSession returns the session with its quote recomputed.
func (s *DefaultBookingSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, models.PriceQuote, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.PriceQuote{}, err
	}
	quote, err := BuildQuote(session.Config)
	if err != nil {
		return nil, models.PriceQuote{}, err
	}
	return session, quote, nil
}

// ApplyUpdate applies one named operation to the session's configuration and
// saves it. A rejected mutation (unknown catalog id, unknown field) leaves
// the stored session untouched. Mutations against a session whose payment is
// processing are rejected outright.
func (s *DefaultBookingSessionService) ApplyUpdate(ctx context.Context, sessionID string, update models.SessionUpdate) (*models.BookingSession, models.PriceQuote, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, models.PriceQuote{}, err
	}
	if session.Status != models.SessionOpen {
		return nil, models.PriceQuote{}, &SessionStateError{Status: session.Status}
	}

	if err := applyOperation(&session.Config, update); err != nil {
		return nil, models.PriceQuote{}, err
	}

	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, *session); err != nil {
		return nil, models.PriceQuote{}, err
	}

	quote, err := BuildQuote(session.Config)
	if err != nil {
		return nil, models.PriceQuote{}, err
	}
	return session, quote, nil
}

// CancelSession discards an in-progress session.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func applyOperation(cfg *models.BookingConfiguration, update models.SessionUpdate) error {
	switch update.Op {
	case models.OpSetPackage:
		return SetPackage(cfg, update.ID)
	case models.OpSetDeliveryZone:
		return SetDeliveryZone(cfg, update.ID)
	case models.OpToggleAddOn:
		return ToggleAddOn(cfg, update.ID)
	case models.OpSetHaybaleQuantity:
		SetHaybaleQuantity(cfg, update.Quantity)
		return nil
	case models.OpSetField:
		return SetField(cfg, update.Field, update.Value)
	case models.OpReset:
		Reset(cfg)
		return nil
	default:
		return newValidationError("op", fmt.Sprintf("unknown operation %q", update.Op))
	}
}
