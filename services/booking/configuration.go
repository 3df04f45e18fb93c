package booking

import (
	"porchly/catalog"
	"porchly/models"
)

// The named configuration operations. Every field mutation in the funnel goes
// through one of these, which is what keeps the dependent-field invariants
// (haybale quantity, removal week) enforceable in one place.

// NewConfiguration returns the default configuration a fresh session starts
// from: default package selected, no zone, no add-ons, haybale quantity 1.
func NewConfiguration() models.BookingConfiguration {
	return models.BookingConfiguration{
		PackageID:       catalog.DefaultPackageID,
		HaybaleQuantity: 1,
		TimePreference:  catalog.DefaultTimePreference,
		AddOns:          []string{},
	}
}

// SetPackage replaces the selected package. No side effects on other fields.
func SetPackage(cfg *models.BookingConfiguration, id string) error {
	if _, err := catalog.PackageByID(id); err != nil {
		return err
	}
	cfg.PackageID = id
	return nil
}

// SetDeliveryZone replaces the selected delivery zone.
func SetDeliveryZone(cfg *models.BookingConfiguration, id string) error {
	if _, err := catalog.ZoneByID(id); err != nil {
		return err
	}
	cfg.DeliveryZoneID = id
	return nil
}

// ToggleAddOn flips membership of id in the add-on set. Removing an add-on
// resets its dependent field: haybale quantity back to 1, removal week back
// to empty. Adding one never auto-populates the dependent field; the
// customer still has to choose, and submission stays blocked until they do.
func ToggleAddOn(cfg *models.BookingConfiguration, id string) error {
	if _, err := catalog.AddOnByID(id); err != nil {
		return err
	}
	for i, existing := range cfg.AddOns {
		if existing != id {
			continue
		}
		cfg.AddOns = append(cfg.AddOns[:i], cfg.AddOns[i+1:]...)
		switch id {
		case catalog.AddOnHaybale:
			cfg.HaybaleQuantity = 1
		case catalog.AddOnRemoval:
			cfg.RemovalWeek = ""
		}
		return nil
	}
	cfg.AddOns = append(cfg.AddOns, id)
	return nil
}

// SetHaybaleQuantity sets the hay bale count, clamping to a minimum of 1.
// Only meaningful while "haybale" is selected.
func SetHaybaleQuantity(cfg *models.BookingConfiguration, n int) {
	if n < 1 {
		n = 1
	}
	cfg.HaybaleQuantity = n
}

// SetField is the generic setter for scalar fields: contact info, address,
// scheduling choices and free text. Enumerated fields reject values outside
// their catalog; free-text fields accept anything.
func SetField(cfg *models.BookingConfiguration, name, value string) error {
	switch name {
	case "name":
		cfg.Contact.Name = value
	case "email":
		cfg.Contact.Email = value
	case "phone":
		cfg.Contact.Phone = value
	case "address":
		cfg.Address.Street = value
	case "city":
		cfg.Address.City = value
	case "deliveryWeek":
		if value != "" && !catalog.ValidDeliveryWeek(value) {
			return &catalog.UnknownIDError{Kind: "delivery week", ID: value}
		}
		cfg.DeliveryWeek = value
	case "removalWeek":
		if value != "" && !catalog.ValidRemovalWeek(value) {
			return &catalog.UnknownIDError{Kind: "removal week", ID: value}
		}
		cfg.RemovalWeek = value
	case "timePreference":
		if value != "" && !catalog.ValidTimePreference(value) {
			return &catalog.UnknownIDError{Kind: "time preference", ID: value}
		}
		cfg.TimePreference = value
	case "specialRequests":
		cfg.SpecialRequests = value
	case "referral":
		cfg.Referral = value
	default:
		return newValidationError(name, "unknown configuration field")
	}
	return nil
}

// Reset returns the configuration to its defaults. Used after a reported
// payment success.
func Reset(cfg *models.BookingConfiguration) {
	*cfg = NewConfiguration()
}
