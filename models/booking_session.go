package models

import "time"

// Session statuses. A session is "processing" while the payment collaborator
// runs; further mutations and duplicate submits are rejected until it
// reopens or completes.
const (
	SessionOpen       = "open"
	SessionProcessing = "processing"
)

// BookingSession carries one in-progress configuration between funnel steps.
type BookingSession struct {
	SessionID string               `json:"sessionId"`
	Status    string               `json:"status"`
	Config    BookingConfiguration `json:"config"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// Named operations a SessionUpdate can carry.
const (
	OpSetPackage         = "setPackage"
	OpSetDeliveryZone    = "setDeliveryZone"
	OpToggleAddOn        = "toggleAddOn"
	OpSetHaybaleQuantity = "setHaybaleQuantity"
	OpSetField           = "setField"
	OpReset              = "reset"
)

// SessionUpdate is one mutation applied to a booking session. Op selects the
// named operation; the matching value field accompanies it.
type SessionUpdate struct {
	Op       string `json:"op" binding:"required"`
	ID       string `json:"id,omitempty"`       // catalog id for setPackage/setDeliveryZone/toggleAddOn
	Field    string `json:"field,omitempty"`    // field name for setField
	Value    string `json:"value,omitempty"`    // value for setField
	Quantity int    `json:"quantity,omitempty"` // for setHaybaleQuantity
}
