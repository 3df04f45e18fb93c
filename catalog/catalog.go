// Package catalog holds the static pricing tables and enumerations the
// booking funnel is built from. Catalogs are pure data, loaded once and
// immutable for the process lifetime. Unknown-id lookups are hard errors so
// a mistyped id can never price a booking at zero.
package catalog

import "porchly/models"

// Add-on identifiers with dependent sub-configuration.
const (
	AddOnDesign   = "design"
	AddOnHaybale  = "haybale"
	AddOnRemoval  = "removal"
	AddOnBackyard = "backyard"
)

// Defaults for a fresh booking configuration.
const (
	DefaultPackageID      = "mini"
	DefaultTimePreference = "morning"
)

var packages = []models.Package{
	{
		ID:          "starter",
		Name:        "Starter Package",
		Price:       245,
		Emoji:       "🎃🍂",
		Description: "A simple touch of fall for smaller porches",
		Features: []string{
			"4 Large Jack O Lanterns, 4 Medium Jack O Lanterns",
			"An assortment of Pie Pumpkins",
			"Front porch drop off included",
		},
	},
	{
		ID:          "mini",
		Name:        "Mini Package",
		Price:       325,
		Emoji:       "🎃🍁",
		Description: "Classic fall charm without the fuss",
		Features: []string{
			"5 Large Jack O Lanterns, 5 Medium Jack O Lanterns",
			"4 White Ghost Pumpkins, an assortment of Pie Pumpkins",
			"Front porch drop off included",
		},
	},
	{
		ID:          "standard",
		Name:        "Standard Package",
		Price:       525,
		Emoji:       "🎃",
		Description: "Perfect starter package for classic fall charm",
		Features: []string{
			"6 Large Jack O Lanterns, 6 Medium Jack O Lanterns",
			"6 White Ghost Pumpkins, an assortment of Pie Pumpkins",
			"8 Specialty Pumpkins and 2 Hay Bales",
			"Does not include design and layout",
			"Front porch drop off included",
		},
	},
	{
		ID:          "deluxe",
		Name:        "Deluxe Package",
		Price:       800,
		Emoji:       "🎃🌾",
		Description: "Our most popular package with Louisiana flair",
		Features: []string{
			"8 Large Jack O Lanterns, 8 Medium Jack O Lanterns",
			"8 White Ghost Pumpkins, an assortment of Pie Pumpkins",
			"14 Specialty Pumpkins, 2 Hay Bales and Ornamental Gourds",
			"Includes design and set up",
		},
		Popular: true,
	},
	{
		ID:          "custom",
		Name:        "Custom Package",
		Price:       1200,
		Emoji:       "🎃✨",
		Description: "Completely personalized for your unique style",
		Features: []string{
			"2 Grand Prize Pumpkins, 10 Large Jack O Lanterns",
			"8 Medium Jack O Lanterns, 8 White Ghost Pumpkins",
			"An assortment of Pie Pumpkins, 16 Specialty Pumpkins",
			"3 Hay Bales and Ornamental Gourds",
			"Includes design and set up",
		},
	},
}

var addOns = []models.AddOn{
	{ID: AddOnDesign, Name: "Design and Layout", Price: 75},
	{ID: AddOnHaybale, Name: "Haybale", Price: 35, PerUnit: true},
	{ID: AddOnRemoval, Name: "Removal and Disposal", Price: 75, NeedsWeek: true},
	{ID: AddOnBackyard, Name: "Backyard Set Up", Price: 75},
}

var zones = []models.DeliveryZone{
	{
		ID:     "free",
		Name:   "Free Delivery",
		Fee:    0,
		Cities: []string{"baton-rouge", "prairieville", "gonzales"},
	},
	{
		ID:     "standard",
		Name:   "Standard Delivery",
		Fee:    25,
		Cities: []string{"denham-springs", "walker", "baker", "zachary"},
	},
	{
		ID:     "extended",
		Name:   "Extended Delivery",
		Fee:    50,
		Cities: []string{"central", "geismar", "st-amant"},
	},
}

var deliveryWeeks = []models.CatalogOption{
	{ID: "oct-week1", Label: "Oct 1-7"},
	{ID: "oct-week2", Label: "Oct 8-14"},
	{ID: "oct-week3", Label: "Oct 15-21"},
	{ID: "oct-week4", Label: "Oct 22-31"},
	{ID: "nov-week1", Label: "Nov 1-7"},
}

var removalWeeks = []models.CatalogOption{
	{ID: "nov-week3", Label: "Nov 15-21"},
	{ID: "nov-week4", Label: "Nov 22-30"},
	{ID: "dec-week1", Label: "Dec 1-7"},
}

var timePreferences = []models.CatalogOption{
	{ID: "morning", Label: "Morning (8am-11am)"},
	{ID: "afternoon", Label: "Afternoon (12pm-3pm)"},
	{ID: "evening", Label: "Evening (4pm-7pm)"},
}

var referralSources = []models.CatalogOption{
	{ID: "friend", Label: "Friend/Family Referral"},
	{ID: "facebook", Label: "Facebook"},
	{ID: "instagram", Label: "Instagram"},
	{ID: "google", Label: "Google Search"},
	{ID: "neighbor", Label: "Saw neighbor's display"},
	{ID: "other", Label: "Other"},
}

// Packages returns the package catalog.
func Packages() []models.Package { return packages }

// AddOns returns the add-on catalog.
func AddOns() []models.AddOn { return addOns }

// Zones returns the delivery zone catalog.
func Zones() []models.DeliveryZone { return zones }

// DeliveryWeeks returns the install weeks the crew offers.
func DeliveryWeeks() []models.CatalogOption { return deliveryWeeks }

// RemovalWeeks returns the end-of-season pickup weeks.
func RemovalWeeks() []models.CatalogOption { return removalWeeks }

// TimePreferences returns the time-of-day choices.
func TimePreferences() []models.CatalogOption { return timePreferences }

// ReferralSources returns the "how did you hear about us" choices.
func ReferralSources() []models.CatalogOption { return referralSources }

// PackageByID looks up a package. Unknown ids are rejected.
func PackageByID(id string) (models.Package, error) {
	for _, p := range packages {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Package{}, &UnknownIDError{Kind: "package", ID: id}
}

// AddOnByID looks up an add-on. Unknown ids are rejected.
func AddOnByID(id string) (models.AddOn, error) {
	for _, a := range addOns {
		if a.ID == id {
			return a, nil
		}
	}
	return models.AddOn{}, &UnknownIDError{Kind: "add-on", ID: id}
}

// ZoneByID looks up a delivery zone. Unknown ids are rejected.
func ZoneByID(id string) (models.DeliveryZone, error) {
	for _, z := range zones {
		if z.ID == id {
			return z, nil
		}
	}
	return models.DeliveryZone{}, &UnknownIDError{Kind: "delivery zone", ID: id}
}

// ValidDeliveryWeek reports whether id names an offered install week.
func ValidDeliveryWeek(id string) bool { return optionExists(deliveryWeeks, id) }

// ValidRemovalWeek reports whether id names an offered pickup week.
func ValidRemovalWeek(id string) bool { return optionExists(removalWeeks, id) }

// ValidTimePreference reports whether id names an offered time of day.
func ValidTimePreference(id string) bool { return optionExists(timePreferences, id) }

func optionExists(opts []models.CatalogOption, id string) bool {
	for _, o := range opts {
		if o.ID == id {
			return true
		}
	}
	return false
}
