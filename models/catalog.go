package models

// Package is a fixed bundle of decoration items at a fixed price.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"` // whole dollars
	Emoji       string   `json:"emoji,omitempty"`
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
}

// AddOn is an optional, independently priced extra service. Some add-ons
// carry their own sub-configuration: hay bales a quantity, removal a week.
type AddOn struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`               // whole dollars, per unit for PerUnit add-ons
	PerUnit   bool   `json:"perUnit,omitempty"`   // price multiplies by the selected quantity
	NeedsWeek bool   `json:"needsWeek,omitempty"` // a scheduling week must be chosen before submission
}

// DeliveryZone is a geographic tier with an associated flat delivery fee.
type DeliveryZone struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Fee    int      `json:"fee"` // whole dollars
	Cities []string `json:"cities,omitempty"`
}

// CatalogOption is a generic enumerated choice (weeks, time preferences,
// referral sources).
type CatalogOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
