package booking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"nestcare/models"
	"nestcare/services/pricing"
	"nestcare/services/tasks"
	"nestcare/utils"
)

// Quote normalizes the raw input and returns a pricing breakdown. Identical
// requests against an unchanged catalog produce identical quotes, so results
// are cached briefly in Redis. The cache key carries the catalog version
// alongside the canonical request hash; publishing a new rate document
// changes the version, so entries quoted against the superseded catalog are
// never served again.
func (s *DefaultBookingService) Quote(ctx context.Context, raw models.RawBookingInput) (*models.PricingBreakdown, error) {
	req, err := pricing.NormalizeBookingInput(raw)
	if err != nil {
		return nil, err
	}

	cacheKey, keyErr := quoteCacheKey(s.Engine.CatalogVersion(), req)
	cacheClient := utils.GetQuoteCacheClient()
	if keyErr == nil {
		if cached, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
			var bd models.PricingBreakdown
			if err := json.Unmarshal([]byte(cached), &bd); err == nil {
				return &bd, nil
			}
		}
	}

	bd, err := s.Engine.ComputePricing(req)
	if err != nil {
		return nil, err
	}

	if keyErr == nil {
		if data, err := json.Marshal(bd); err == nil {
			if err := cacheClient.Set(ctx, cacheKey, data, utils.QuoteCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache quote", zap.Error(err))
			}
		}
	}
	return bd, nil
}

// CreateBooking prices the request, splits the financials, and persists both
// as the booking's first financials version. Nothing is persisted when any
// computation fails.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, clientID string, raw models.RawBookingInput) (*models.BookingRecord, *models.BookingFinancials, error) {
	req, err := pricing.NormalizeBookingInput(raw)
	if err != nil {
		return nil, nil, err
	}
	bd, err := s.Engine.ComputePricing(req)
	if err != nil {
		return nil, nil, err
	}
	fin, err := s.Engine.ComputeFinancials(*bd)
	if err != nil {
		return nil, nil, err
	}

	bookingID := uuid.New().String()
	fin.BookingID = bookingID
	stored, err := s.Financials.Append(ctx, *fin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to persist financials: %w", err)
	}

	rec := models.BookingRecord{
		ID:                  bookingID,
		ClientID:            clientID,
		Request:             req,
		Breakdown:           *bd,
		CurrentFinancialsID: stored.ID,
		Status:              "quoted",
	}
	if _, err := s.Bookings.Create(ctx, rec); err != nil {
		return nil, nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.enqueueAudit(bookingID)
	return &rec, stored, nil
}

// RequoteBooking reprices a modified booking. The previous financials stay
// as immutable history; a superseding version is appended and the booking
// record is pointed at it.
func (s *DefaultBookingService) RequoteBooking(ctx context.Context, bookingID string, raw models.RawBookingInput) (*models.BookingRecord, *models.BookingFinancials, error) {
	rec, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("booking not found: %w", err)
	}

	req, err := pricing.NormalizeBookingInput(raw)
	if err != nil {
		return nil, nil, err
	}
	bd, err := s.Engine.ComputePricing(req)
	if err != nil {
		return nil, nil, err
	}
	fin, err := s.Engine.ComputeFinancials(*bd)
	if err != nil {
		return nil, nil, err
	}

	fin.BookingID = bookingID
	stored, err := s.Financials.Append(ctx, *fin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to persist superseding financials: %w", err)
	}

	if err := s.Bookings.UpdateQuote(ctx, bookingID, *bd, stored.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to update booking quote: %w", err)
	}
	rec.Request = req
	rec.Breakdown = *bd
	rec.CurrentFinancialsID = stored.ID

	s.enqueueAudit(bookingID)
	return rec, stored, nil
}

// GetCurrentFinancials returns the financials version in force for a booking.
func (s *DefaultBookingService) GetCurrentFinancials(ctx context.Context, bookingID string) (*models.BookingFinancials, error) {
	return s.Financials.GetCurrent(ctx, bookingID)
}

// FinancialsHistory returns the full financials audit trail, oldest first.
func (s *DefaultBookingService) FinancialsHistory(ctx context.Context, bookingID string) ([]models.BookingFinancials, error) {
	return s.Financials.History(ctx, bookingID)
}

// AuditBooking replays the reconciliation check against the stored quote and
// the financials version in force. It reports; stored values are never fixed
// up.
func (s *DefaultBookingService) AuditBooking(ctx context.Context, bookingID string) (*models.ValidationResult, error) {
	rec, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	fin, err := s.Financials.GetByID(ctx, rec.CurrentFinancialsID)
	if err != nil {
		return nil, fmt.Errorf("financials not found: %w", err)
	}
	res := s.Engine.ValidateReconciliation(rec.Breakdown, *fin)
	return &res, nil
}

func (s *DefaultBookingService) enqueueAudit(bookingID string) {
	if s.AuditQueue == nil {
		return
	}
	task, err := tasks.NewReconcileAuditTask(tasks.ReconcileAuditPayload{BookingID: bookingID})
	if err != nil {
		s.Logger.Warn("failed to build audit task", zap.String("booking_id", bookingID), zap.Error(err))
		return
	}
	if _, err := s.AuditQueue.Enqueue(task); err != nil {
		s.Logger.Warn("failed to enqueue audit task", zap.String("booking_id", bookingID), zap.Error(err))
	}
}

// quoteCacheKey hashes the canonical request so equivalent raw payloads hit
// the same cache entry. The catalog version is part of the key: a quote is
// only valid against the catalog that produced it.
func quoteCacheKey(catalogVersion int, req models.BookingRequest) (string, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%sv%d:%s", utils.QuoteCachePrefix, catalogVersion, hex.EncodeToString(sum[:])), nil
}
