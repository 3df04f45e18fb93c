package booking

import (
	"strings"

	"porchly/catalog"
	"porchly/models"
)

// ValidateForSubmission enforces every required-field and dependent-field
// rule before the payment handoff, uniformly on the server rather than
// piecemeal in the form.
func ValidateForSubmission(cfg models.BookingConfiguration) error {
	if strings.TrimSpace(cfg.Contact.Name) == "" {
		return newValidationError("name", "full name is required")
	}
	if strings.TrimSpace(cfg.Contact.Email) == "" {
		return newValidationError("email", "email address is required")
	}
	if strings.TrimSpace(cfg.Contact.Phone) == "" {
		return newValidationError("phone", "phone number is required")
	}
	if strings.TrimSpace(cfg.Address.Street) == "" {
		return newValidationError("address", "street address is required")
	}
	if strings.TrimSpace(cfg.Address.City) == "" {
		return newValidationError("city", "city is required")
	}
	if cfg.DeliveryZoneID == "" {
		return newValidationError("deliveryZone", "a delivery zone must be selected")
	}
	if cfg.DeliveryWeek == "" {
		return newValidationError("deliveryWeek", "a delivery week must be selected")
	}
	if cfg.HasAddOn(catalog.AddOnRemoval) && cfg.RemovalWeek == "" {
		return newValidationError("removalWeek", "a removal week must be selected when removal is added")
	}
	return nil
}
