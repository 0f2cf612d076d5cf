package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nestcare/handlers"
)

// SetupCORS applies the API-wide CORS policy.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
}

// RegisterBookingRoutes registers all endpoints for the booking pricing engine.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("/quote", bh.QuoteHandler)
		booking.POST("", bh.CreateBookingHandler)
		booking.PUT("/:bookingID/requote", bh.RequoteBookingHandler)
		booking.GET("/:bookingID/financials", bh.GetFinancialsHandler)
		booking.GET("/:bookingID/financials/history", bh.FinancialsHistoryHandler)
	}
}

// RegisterAdminRoutes registers the admin audit and rate-catalog endpoints.
func RegisterAdminRoutes(r *gin.Engine, bh *handlers.BookingHandler, rh *handlers.RatesHandler) {
	admin := r.Group("/api/admin")
	{
		admin.POST("/bookings/:bookingID/audit", bh.AuditBookingHandler)
		admin.GET("/rates", rh.GetCatalogHandler)
		admin.POST("/rates", rh.PublishRatesHandler)
	}
}
