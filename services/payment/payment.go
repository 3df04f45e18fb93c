// Package payment is the external payment collaborator boundary. The booking
// engine treats it as opaque: a request either yields a receipt or an error
// whose message is shown to the customer verbatim. Card data never passes
// through this server.
package payment

import (
	"context"

	"porchly/models"
)

// PaymentProcessor processes one charge for a booking submission.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentReceipt, error)
}
