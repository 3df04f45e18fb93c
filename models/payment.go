package models

import "time"

// PaymentRequest is what the engine hands to the payment collaborator at
// submission. The collaborator owns all card handling.
type PaymentRequest struct {
	BookingID   string
	Amount      int // whole dollars
	Currency    string
	Customer    ContactInfo
	Address     Address
	Description string
}

// PaymentReceipt reports a successful charge back to the booking engine.
type PaymentReceipt struct {
	ReceiptID string    `json:"receiptId"`
	PaymentID string    `json:"paymentId"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
