package routes

import (
	"net/http"
	"time"

	"porchly/handlers"
	"porchly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking funnel.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PATCH("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterContentRoutes registers the catalog and marketing content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/catalog", hb.GetCatalog)

	contentGroup := r.Group("/api/content")
	{
		contentGroup.GET("/home", hb.GetHomeContent)
		contentGroup.GET("/how-it-works", hb.GetHowItWorks)
		contentGroup.GET("/packages", hb.GetPackages)
		contentGroup.GET("/gallery", hb.GetGallery)
		contentGroup.GET("/contact-info", hb.GetContactInfo)
	}
}

// RegisterContactRoutes registers the contact page endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", hb.SubmitContactForm)
}

// RegisterRecordsRoutes registers confirmed booking lookups.
func RegisterRecordsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	recordsGroup := r.Group("/api/bookings")
	{
		recordsGroup.GET("", hb.ListBookings)
		recordsGroup.GET("/:id", hb.GetBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm Porchly",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterRecordsRoutes(r, hb)
	RegisterHealthRoute(r)
}
