package pricing

import (
	"time"

	"go.uber.org/zap"

	"nestcare/models"
)

// Engine is the booking pricing and financial reconciliation engine. All
// methods are pure given a catalog snapshot: no I/O, no shared mutable
// state, safe for concurrent use.
type Engine interface {
	ComputePricing(req models.BookingRequest) (*models.PricingBreakdown, error)
	ComputeFinancials(bd models.PricingBreakdown) (*models.BookingFinancials, error)
	ValidateReconciliation(bd models.PricingBreakdown, fin models.BookingFinancials) models.ValidationResult
	CatalogVersion() int
}

// DefaultPricingEngine implements Engine against a swappable catalog store.
// Now and Location are injected so "today" and weekday classification never
// read ambient process state.
type DefaultPricingEngine struct {
	Catalog  *CatalogStore
	Logger   *zap.Logger
	Now      func() time.Time
	Location *time.Location
	Currency string
}
