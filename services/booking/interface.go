package booking

import (
	"context"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	bookingRepo "nestcare/database/repository/bookingrec"
	financialsRepo "nestcare/database/repository/financials"
	"nestcare/models"
	"nestcare/services/pricing"
)

// BookingService is the booking-lifecycle workflow around the pricing
// engine: it owns persistence, financials versioning and audit scheduling.
// The engine itself computes values only.
type BookingService interface {
	Quote(ctx context.Context, raw models.RawBookingInput) (*models.PricingBreakdown, error)
	CreateBooking(ctx context.Context, clientID string, raw models.RawBookingInput) (*models.BookingRecord, *models.BookingFinancials, error)
	RequoteBooking(ctx context.Context, bookingID string, raw models.RawBookingInput) (*models.BookingRecord, *models.BookingFinancials, error)
	GetCurrentFinancials(ctx context.Context, bookingID string) (*models.BookingFinancials, error)
	FinancialsHistory(ctx context.Context, bookingID string) ([]models.BookingFinancials, error)
	AuditBooking(ctx context.Context, bookingID string) (*models.ValidationResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine     pricing.Engine
	Bookings   bookingRepo.BookingRepository
	Financials financialsRepo.FinancialsRepository
	AuditQueue *asynq.Client // nil disables background audits
	Logger     *zap.Logger
}
