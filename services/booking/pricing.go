package booking

import (
	"porchly/catalog"
	"porchly/models"
)

// BuildQuote derives the per-line price breakdown for the current
// configuration: package price, each selected add-on (hay bales multiplied
// by quantity), then the delivery zone fee. Whole-dollar integer arithmetic
// throughout; no taxes or discounts. Pure and idempotent.
func BuildQuote(cfg models.BookingConfiguration) (models.PriceQuote, error) {
	var quote models.PriceQuote

	pkg, err := catalog.PackageByID(cfg.PackageID)
	if err != nil {
		return models.PriceQuote{}, err
	}
	quote.Lines = append(quote.Lines, models.QuoteLine{
		Kind:     "package",
		ID:       pkg.ID,
		Label:    pkg.Name,
		Quantity: 1,
		Amount:   pkg.Price,
	})

	for _, id := range cfg.AddOns {
		addOn, err := catalog.AddOnByID(id)
		if err != nil {
			return models.PriceQuote{}, err
		}
		qty := 1
		if addOn.PerUnit {
			qty = cfg.HaybaleQuantity
		}
		quote.Lines = append(quote.Lines, models.QuoteLine{
			Kind:     "addon",
			ID:       addOn.ID,
			Label:    addOn.Name,
			Quantity: qty,
			Amount:   addOn.Price * qty,
		})
	}

	// An unset zone contributes nothing; submission requires a selection.
	if cfg.DeliveryZoneID != "" {
		zone, err := catalog.ZoneByID(cfg.DeliveryZoneID)
		if err != nil {
			return models.PriceQuote{}, err
		}
		quote.Lines = append(quote.Lines, models.QuoteLine{
			Kind:     "delivery",
			ID:       zone.ID,
			Label:    zone.Name,
			Quantity: 1,
			Amount:   zone.Fee,
		})
	}

	for _, line := range quote.Lines {
		quote.Total += line.Amount
	}
	return quote, nil
}

// ComputeTotal derives the whole-dollar total for the configuration.
func ComputeTotal(cfg models.BookingConfiguration) (int, error) {
	quote, err := BuildQuote(cfg)
	if err != nil {
		return 0, err
	}
	return quote.Total, nil
}
