// File: porchly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"porchly/config"
	"porchly/database"
	bookingRepo "porchly/database/repository/booking"
	"porchly/handlers"
	"porchly/middleware"
	"porchly/routes"
	"porchly/services/booking"
	"porchly/services/contact"
	"porchly/services/payment"
	"porchly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// newPaymentProcessor picks the payment collaborator: Stripe when a key is
// configured, the simulated gateway otherwise. No real charge is ever
// created in simulated mode.
func newPaymentProcessor(logger *zap.Logger) payment.PaymentProcessor {
	if config.AppConfig.StripeKey != "" {
		stripe.Key = config.AppConfig.StripeKey
		return payment.NewStripeGateway(logger)
	}
	logger.Sugar().Warn("main: no Stripe key configured; payments run in simulated mode")
	return payment.NewSimulatedGateway(logger)
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepository := bookingRepo.NewMongoBookingRepo()

	processor := newPaymentProcessor(logger)

	// services.
	sessionStore := booking.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMinutes)*time.Minute,
	)
	bookingService := &booking.DefaultBookingSessionService{
		Store:    sessionStore,
		Payments: processor,
		Repo:     bookingRepository,
		Logger:   logger,
	}
	contactService := &contact.DefaultContactService{To: config.AppConfig.ContactEmail}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)
	recordsHandler := handlers.NewBookingRecordsHandler(bookingRepository)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking funnel endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		GetSession:      bookingHandler.GetSession,
		UpdateSession:   bookingHandler.UpdateSession,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,

		// Catalog & marketing content endpoints.
		GetCatalog:     handlers.GetCatalogHandler,
		GetHomeContent: handlers.GetHomeContentHandler,
		GetHowItWorks:  handlers.GetHowItWorksHandler,
		GetPackages:    handlers.GetPackagesHandler,
		GetGallery:     handlers.GetGalleryHandler,
		GetContactInfo: handlers.GetContactInfoHandler,

		// Contact page endpoint.
		SubmitContactForm: contactHandler.SubmitContactForm,

		// Confirmed booking lookups.
		GetBooking:   recordsHandler.GetBooking,
		ListBookings: recordsHandler.ListBookings,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
