package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nestcare/models"
	"nestcare/services/booking"
	"nestcare/services/pricing"
	"nestcare/utils"
)

// BookingHandler exposes the pricing engine and booking workflow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// statusForPricingError maps engine error codes onto HTTP statuses. The
// engine decided the failure; this layer only decides presentation.
func statusForPricingError(err error) (int, string) {
	switch {
	case pricing.HasCode(err, pricing.CodeInvalidBookingRequest):
		return http.StatusBadRequest, "invalid booking request"
	case pricing.HasCode(err, pricing.CodeDurationCapExceeded):
		return http.StatusUnprocessableEntity, "booking exceeds a duration limit"
	case pricing.HasCode(err, pricing.CodeUnknownRateKey):
		return http.StatusServiceUnavailable, "pricing unavailable, please retry"
	case pricing.HasCode(err, pricing.CodeNegativeEarnings):
		return http.StatusServiceUnavailable, "pricing unavailable, please retry"
	}
	return http.StatusInternalServerError, "internal error"
}

// QuoteHandler prices a booking request without persisting anything.
func (h *BookingHandler) QuoteHandler(c *gin.Context) {
	var raw models.RawBookingInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bd, err := h.Service.Quote(c.Request.Context(), raw)
	if err != nil {
		status, msg := statusForPricingError(err)
		utils.JSONError(c, status, msg, err.Error())
		return
	}
	c.JSON(http.StatusOK, bd)
}

// CreateBookingHandler prices, splits and persists a new booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		ClientID string                 `json:"clientId" binding:"required"`
		Booking  models.RawBookingInput `json:"booking"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, fin, err := h.Service.CreateBooking(c.Request.Context(), input.ClientID, input.Booking)
	if err != nil {
		status, msg := statusForPricingError(err)
		utils.JSONError(c, status, msg, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":    rec,
		"financials": fin,
	})
}

// RequoteBookingHandler reprices a modified booking, appending a superseding
// financials version.
func (h *BookingHandler) RequoteBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	var raw models.RawBookingInput
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, fin, err := h.Service.RequoteBooking(c.Request.Context(), bookingID, raw)
	if err != nil {
		status, msg := statusForPricingError(err)
		utils.JSONError(c, status, msg, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":    rec,
		"financials": fin,
	})
}

// GetFinancialsHandler returns the financials version in force for a booking.
func (h *BookingHandler) GetFinancialsHandler(c *gin.Context) {
	fin, err := h.Service.GetCurrentFinancials(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "financials not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, fin)
}

// FinancialsHistoryHandler returns the full append-only financials trail.
func (h *BookingHandler) FinancialsHistoryHandler(c *gin.Context) {
	history, err := h.Service.FinancialsHistory(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "financials history not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, history)
}

// AuditBookingHandler replays the reconciliation check for admin tooling.
func (h *BookingHandler) AuditBookingHandler(c *gin.Context) {
	res, err := h.Service.AuditBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, res)
}
