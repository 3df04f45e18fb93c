package booking

import (
	"context"

	"porchly/models"
)

// SessionStore holds in-progress booking sessions. Sessions are short-lived:
// an expired entry simply loses the in-progress state. Confirmed bookings are
// the only thing persisted durably.
type SessionStore interface {
	Save(ctx context.Context, session models.BookingSession) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
}
