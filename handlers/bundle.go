package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handler funcs the route registrar wires up.
type HandlerBundle struct {
	// Booking funnel endpoints.
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Catalog & marketing content endpoints.
	GetCatalog     gin.HandlerFunc
	GetHomeContent gin.HandlerFunc
	GetHowItWorks  gin.HandlerFunc
	GetPackages    gin.HandlerFunc
	GetGallery     gin.HandlerFunc
	GetContactInfo gin.HandlerFunc

	// Contact page endpoint.
	SubmitContactForm gin.HandlerFunc

	// Confirmed booking lookups.
	GetBooking   gin.HandlerFunc
	ListBookings gin.HandlerFunc
}
