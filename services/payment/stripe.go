package payment

import (
	"context"
	"errors"
	"time"

	"porchly/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway charges through Stripe PaymentIntents. Card collection stays
// in Stripe's element on the client; this side only creates the intent.
// Requires stripe.Key to be set at startup.
type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway returns a Stripe-backed payment processor.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{logger: logger}
}

func (g *StripeGateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	if req.Amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(int64(req.Amount) * 100), // whole dollars to cents
		Currency:     stripe.String(req.Currency),
		Description:  stripe.String(req.Description),
		ReceiptEmail: stripe.String(req.Customer.Email),
	}
	params.Context = ctx
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("customerName", req.Customer.Name)
	params.AddMetadata("deliveryCity", req.Address.City)

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Warn("stripe payment failed", zap.String("bookingId", req.BookingID), zap.Error(err))
		return nil, err
	}

	receipt := &models.PaymentReceipt{
		ReceiptID: uuid.New().String(),
		PaymentID: pi.ID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    string(pi.Status),
		CreatedAt: time.Now(),
	}
	g.logger.Info("stripe payment intent created",
		zap.String("paymentId", pi.ID), zap.Int("amount", req.Amount))
	return receipt, nil
}
