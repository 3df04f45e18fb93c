package models

// PageHero is the headline block of an informational page.
type PageHero struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Emojis   []string `json:"emojis,omitempty"`
}

// HomeContent backs the landing page.
type HomeContent struct {
	Hero       PageHero `json:"hero"`
	Highlights []string `json:"highlights"`
}

// HowItWorksStep is one step of the service walkthrough.
type HowItWorksStep struct {
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// GalleryItem is one display photo. Image is a path reference; hosting is out
// of scope.
type GalleryItem struct {
	Title   string `json:"title"`
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// FAQ is a question/answer pair on the packages page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContactDetails is the business contact block shown across pages.
type ContactDetails struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
	Hours string `json:"hours"`
}
