package payment

import (
	"context"
	"errors"
	"sync"
	"time"

	"porchly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulatedGateway stands in for Stripe when no key is configured: it waits a
// fixed processing delay and reports success without creating any real
// charge. While the delay runs the owning session stays in "processing", so
// a duplicate submit is rejected.
type SimulatedGateway struct {
	logger *zap.Logger

	// Delay is the simulated processing time.
	Delay time.Duration

	mu      sync.Mutex
	failMsg string
}

// NewSimulatedGateway returns a simulated payment processor with the same
// processing delay the funnel's checkout used.
func NewSimulatedGateway(logger *zap.Logger) *SimulatedGateway {
	return &SimulatedGateway{logger: logger, Delay: 2 * time.Second}
}

// FailWith forces the next payment to fail with the given message. This is
// how the payment-declined path is exercised without a processor.
func (g *SimulatedGateway) FailWith(message string) {
	g.mu.Lock()
	g.failMsg = message
	g.mu.Unlock()
}

func (g *SimulatedGateway) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error) {
	if req.Amount <= 0 {
		return nil, errors.New("invalid payment amount")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(g.Delay):
	}

	g.mu.Lock()
	msg := g.failMsg
	g.failMsg = ""
	g.mu.Unlock()
	if msg != "" {
		return nil, errors.New(msg)
	}

	receipt := &models.PaymentReceipt{
		ReceiptID: uuid.New().String(),
		PaymentID: "pi_" + uuid.New().String(),
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "paid",
		CreatedAt: time.Now(),
	}
	g.logger.Info("simulated payment accepted",
		zap.String("paymentId", receipt.PaymentID), zap.Int("amount", req.Amount))
	return receipt, nil
}
