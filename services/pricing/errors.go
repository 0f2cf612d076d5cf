package pricing

import (
	"errors"
	"fmt"
)

// Engine error codes. Callers branch on these to decide user-facing
// behavior; the engine itself never swallows or downgrades them.
const (
	CodeInvalidBookingRequest  = "invalidBookingRequest"
	CodeUnknownRateKey         = "unknownRateKey"
	CodeDurationCapExceeded    = "durationCapExceeded"
	CodeNegativeEarnings       = "negativeEarnings"
	CodeReconciliationMismatch = "reconciliationMismatch"
)

// PricingError is the engine's error type.
type PricingError struct {
	Code    string
	Message string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidBookingRequest(format string, args ...interface{}) error {
	return &PricingError{Code: CodeInvalidBookingRequest, Message: fmt.Sprintf(format, args...)}
}

func NewUnknownRateKey(format string, args ...interface{}) error {
	return &PricingError{Code: CodeUnknownRateKey, Message: fmt.Sprintf(format, args...)}
}

// NewDurationCapExceeded names the violated cap so the caller can surface it.
func NewDurationCapExceeded(capName string, limit, got int) error {
	return &PricingError{
		Code:    CodeDurationCapExceeded,
		Message: fmt.Sprintf("%s: limit %d, got %d", capName, limit, got),
	}
}

// NewNegativeEarnings flags a rate-table or rule misconfiguration where fees
// plus commission would exceed the client total.
func NewNegativeEarnings(format string, args ...interface{}) error {
	return &PricingError{Code: CodeNegativeEarnings, Message: fmt.Sprintf(format, args...)}
}

// HasCode reports whether err is a PricingError carrying the given code.
func HasCode(err error, code string) bool {
	var pe *PricingError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
