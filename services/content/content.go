// Package content serves the static marketing copy behind the informational
// pages. Pure data; rendering belongs to the client.
package content

import "porchly/models"

// Home returns the landing page content.
func Home() models.HomeContent {
	return models.HomeContent{
		Hero: models.PageHero{
			Title:    "Fall Magic, Delivered to Your Porch",
			Subtitle: "Professional seasonal porch displays with Louisiana flair. We design, deliver, set up and haul away.",
			Emojis:   []string{"🎃", "⚜️", "🌾", "🍂"},
		},
		Highlights: []string{
			"Locally grown pumpkins and hay bales",
			"Design, delivery and set up handled for you",
			"End-of-season removal available",
			"Serving the greater Baton Rouge area",
		},
	}
}

// HowItWorks returns the service walkthrough steps.
func HowItWorks() []models.HowItWorksStep {
	return []models.HowItWorksStep{
		{Order: 1, Title: "Pick Your Package", Description: "Choose the display size that fits your porch, from Starter to fully Custom."},
		{Order: 2, Title: "Book Your Week", Description: "Tell us where you are and which week works. We recommend booking 2-3 days in advance."},
		{Order: 3, Title: "We Deliver & Style", Description: "Our crew drops off and arranges everything. Deluxe and Custom include full design and set up."},
		{Order: 4, Title: "Enjoy the Season", Description: "Most displays last 4-8 weeks. Add end-of-season removal and we haul it all away."},
	}
}

// Gallery returns the display photo references.
func Gallery() []models.GalleryItem {
	return []models.GalleryItem{
		{Title: "Standard front porch", Image: "/images/standard-1.png", Caption: "Classic jack o lanterns with pie pumpkins"},
		{Title: "Standard with hay bales", Image: "/images/standard-2.png"},
		{Title: "Standard twilight", Image: "/images/standard-3.png"},
		{Title: "Deluxe with gourds", Image: "/images/deluxe-1.png", Caption: "Our most popular look"},
		{Title: "Custom grand display", Image: "/images/custom-1.png", Caption: "Grand prize pumpkins and full styling"},
	}
}

// FAQs returns the packages page question list.
func FAQs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "How long do the pumpkins last?",
			Answer:   "Most pumpkins last 4-8 weeks depending on weather and sun exposure. We also offer mid-season refresh options!",
		},
		{
			Question: "Do you take everything away at the end of the season?",
			Answer:   "Add the Removal and Disposal service and pick a pickup week; we haul away the whole display.",
		},
		{
			Question: "What if my city isn't listed?",
			Answer:   "Choose the closest delivery zone and mention your location in special requests; we'll confirm availability.",
		},
	}
}

// ContactDetails returns the business contact block.
func ContactDetails() models.ContactDetails {
	return models.ContactDetails{
		Phone: "(225) 555-0123",
		Email: "hello@porchly.com",
		Hours: "Mon-Sat 8am-6pm",
	}
}
