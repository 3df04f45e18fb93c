package handlers

import (
	"net/http"

	"porchly/catalog"
	"porchly/services/content"

	"github.com/gin-gonic/gin"
)

// GetCatalogHandler returns every enumeration the booking form renders.
func GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages":        catalog.Packages(),
		"addOns":          catalog.AddOns(),
		"deliveryZones":   catalog.Zones(),
		"deliveryWeeks":   catalog.DeliveryWeeks(),
		"removalWeeks":    catalog.RemovalWeeks(),
		"timePreferences": catalog.TimePreferences(),
		"referralSources": catalog.ReferralSources(),
	})
}

// GetHomeContentHandler returns the landing page content.
func GetHomeContentHandler(c *gin.Context) {
	c.JSON(http.StatusOK, content.Home())
}

// GetHowItWorksHandler returns the service walkthrough.
func GetHowItWorksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": content.HowItWorks()})
}

// GetPackagesHandler returns the package catalog with the page FAQ.
func GetPackagesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"packages": catalog.Packages(),
		"faqs":     content.FAQs(),
	})
}

// GetGalleryHandler returns the display photo references.
func GetGalleryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": content.Gallery()})
}

// GetContactInfoHandler returns the business contact block.
func GetContactInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, content.ContactDetails())
}
