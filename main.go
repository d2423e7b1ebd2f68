// File: handrest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"handrest/config"
	"handrest/cron"
	"handrest/database"
	bookingRepoPkg "handrest/database/repository/booking"
	catalogRepoPkg "handrest/database/repository/catalog"
	userRepoPkg "handrest/database/repository/user"
	"handrest/handlers"
	"handrest/routes"
	"handrest/services/booking"
	"handrest/services/jobs"
	"handrest/services/user"
	"handrest/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()

	// background task client doubles as the audit sink and reminder
	// scheduler for the core services.
	taskClient := cron.NewTaskClient()

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo:    bookingRepo,
		Catalog: catalogRepo,
		Numbers: &booking.RedisNumberSource{Client: utils.GetCacheClient()},
		Audit:   taskClient,
	}

	jobsService := &jobs.DefaultJobsService{
		Bookings:  bookingRepo,
		Users:     userRepo,
		Lifecycle: bookingService,
		Reminders: taskClient,
	}

	sessionStore := &user.RedisSessionStore{Client: utils.GetAuthCacheClient()}
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Catalog:  catalogRepo,
		Sessions: sessionStore,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(catalogRepo, utils.GetCacheClient())
	bookingHandler := handlers.NewBookingHandler(bookingService)
	jobsHandler := handlers.NewJobsHandler(jobsService)
	adminHandler := handlers.NewAdminHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		Sessions: sessionStore,

		// Auth endpoints.
		RegisterCustomerHandler: authHandler.RegisterCustomerHandler,
		RegisterStaffHandler:    authHandler.RegisterStaffHandler,
		LoginHandler:            authHandler.LoginHandler,
		LogoutHandler:           authHandler.LogoutHandler,

		// Catalog endpoints.
		CategoriesHandler:       catalogHandler.CategoriesHandler,
		PackagesHandler:         catalogHandler.PackagesHandler,
		FeaturedPackagesHandler: catalogHandler.FeaturedPackagesHandler,
		FeaturesHandler:         catalogHandler.FeaturesHandler,
		AddOnsHandler:           catalogHandler.AddOnsHandler,
		PanchayathsHandler:      catalogHandler.PanchayathsHandler,

		// Customer booking endpoints.
		QuoteHandler:         bookingHandler.QuoteHandler,
		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		MyBookingsHandler:    bookingHandler.MyBookingsHandler,
		TrackBookingHandler:  bookingHandler.TrackBookingHandler,
		RateBookingHandler:   bookingHandler.RateBookingHandler,

		// Staff job endpoints.
		AvailableJobsHandler: jobsHandler.AvailableJobsHandler,
		MyJobsHandler:        jobsHandler.MyJobsHandler,
		AcceptJobHandler:     jobsHandler.AcceptJobHandler,
		RejectJobHandler:     jobsHandler.RejectJobHandler,
		StartJobHandler:      jobsHandler.StartJobHandler,
		CompleteJobHandler:   jobsHandler.CompleteJobHandler,

		// Admin endpoints.
		AdminListBookingsHandler:    adminHandler.ListBookingsHandler,
		AdminGetBookingHandler:      adminHandler.GetBookingHandler,
		AdminUpdateStatusHandler:    adminHandler.UpdateStatusHandler,
		AdminFinalizePaymentHandler: adminHandler.FinalizePaymentHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background worker for reminders and override auditing.
	cron.InitWorker()

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
