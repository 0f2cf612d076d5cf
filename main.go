// File: nestcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"nestcare/config"
	"nestcare/cron"
	"nestcare/database"
	bookingRepoPkg "nestcare/database/repository/bookingrec"
	financialsRepoPkg "nestcare/database/repository/financials"
	ratesRepoPkg "nestcare/database/repository/rates"
	"nestcare/handlers"
	"nestcare/middleware"
	"nestcare/routes"
	"nestcare/services/booking"
	"nestcare/services/pricing"
	"nestcare/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQuoteCache()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	routes.SetupCORS(router)

	// repositories.
	bookings := bookingRepoPkg.NewMongoBookingRepo()
	financials := financialsRepoPkg.NewMongoFinancialsRepo()
	rates := ratesRepoPkg.NewMongoRateRepo()

	// Rate catalog: compiled defaults, overridden by the newest published
	// document when one exists. Refreshes swap the snapshot atomically.
	catalogStore := pricing.NewCatalogStore(pricing.DefaultRateCatalog())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if doc, err := rates.GetLatest(ctx); err == nil {
		catalogStore.Swap(pricing.NewRateCatalog(*doc))
		logger.Sugar().Infof("main: loaded rate catalog version %d", doc.Version)
	} else {
		logger.Sugar().Infof("main: no published rate catalog, using compiled defaults")
	}
	cancel()

	// services.
	engine := &pricing.DefaultPricingEngine{
		Catalog:  catalogStore,
		Logger:   logger,
		Now:      time.Now,
		Location: loc,
		Currency: config.AppConfig.Currency,
	}

	bookingService := &booking.DefaultBookingService{
		Engine:     engine,
		Bookings:   bookings,
		Financials: financials,
		Logger:     logger,
	}
	bookingService.AuditQueue = cron.InitAuditWorker(bookingService)

	bookingHandler := handlers.NewBookingHandler(bookingService)
	ratesHandler := handlers.NewRatesHandler(catalogStore, rates)

	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterAdminRoutes(router, bookingHandler, ratesHandler)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
