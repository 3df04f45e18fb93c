package models

import "time"

// ContactInfo holds the customer's contact fields. Free text; only
// non-emptiness is enforced before submission.
type ContactInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// Address is the delivery address for the display.
type Address struct {
	Street string `bson:"street" json:"street"`
	City   string `bson:"city" json:"city"`
}

// BookingConfiguration is the customer's in-progress selection record for one
// booking attempt. All mutation funnels through the named operations in
// services/booking so the dependent-field invariants hold in one place.
type BookingConfiguration struct {
	Contact         ContactInfo `bson:"contact" json:"contact"`
	Address         Address     `bson:"address" json:"address"`
	PackageID       string      `bson:"package_id" json:"packageId"`
	DeliveryZoneID  string      `bson:"delivery_zone_id" json:"deliveryZoneId"` // empty until chosen; contributes $0
	AddOns          []string    `bson:"add_ons" json:"addOns"`
	HaybaleQuantity int         `bson:"haybale_quantity" json:"haybaleQuantity"` // >= 1, meaningful only with "haybale"
	RemovalWeek     string      `bson:"removal_week" json:"removalWeek"`         // meaningful only with "removal"
	DeliveryWeek    string      `bson:"delivery_week" json:"deliveryWeek"`
	TimePreference  string      `bson:"time_preference" json:"timePreference"`
	SpecialRequests string      `bson:"special_requests" json:"specialRequests"`
	Referral        string      `bson:"referral" json:"referral"`
}

// HasAddOn reports whether the given add-on is currently selected.
func (c *BookingConfiguration) HasAddOn(id string) bool {
	for _, a := range c.AddOns {
		if a == id {
			return true
		}
	}
	return false
}

// Booking is a confirmed booking record. It is only ever written after the
// payment collaborator reports success, so Status is always "confirmed".
type Booking struct {
	ID        string               `bson:"id" json:"id"`
	Config    BookingConfiguration `bson:"config" json:"config"`
	Quote     PriceQuote           `bson:"quote" json:"quote"` // snapshot taken at confirmation
	ReceiptID string               `bson:"receipt_id" json:"receiptId"`
	Status    string               `bson:"status" json:"status"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
}

// BookingConfirmed is the only status a persisted booking carries.
const BookingConfirmed = "confirmed"
