package bookingRepo

import (
	"context"
	"sync"
	"time"

	"porchly/models"

	"github.com/google/uuid"
)

// memoryBookingRepo is an in-process BookingRepository used in tests and
// local development without MongoDB.
type memoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewMemoryBookingRepo returns an empty in-memory booking repository.
func NewMemoryBookingRepo() BookingRepository {
	return &memoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *memoryBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

func (r *memoryBookingRepo) GetByEmail(_ context.Context, email string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Config.Contact.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryBookingRepo) List(_ context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}
