package bookingRepo

import (
	"context"

	"porchly/config"
	"porchly/database"
	"porchly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for confirmed bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
