package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ratesRepo "nestcare/database/repository/rates"
	"nestcare/models"
	"nestcare/services/pricing"
	"nestcare/utils"
)

// RatesHandler serves the rate catalog and accepts newly published rate
// documents.
type RatesHandler struct {
	Store *pricing.CatalogStore
	Repo  ratesRepo.RateRepository
}

func NewRatesHandler(store *pricing.CatalogStore, repo ratesRepo.RateRepository) *RatesHandler {
	return &RatesHandler{Store: store, Repo: repo}
}

// GetCatalogHandler returns the rate-catalog snapshot currently in force.
func (h *RatesHandler) GetCatalogHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Current().Document())
}

// PublishRatesHandler appends a new rate document and swaps it in atomically.
// In-flight pricing keeps the snapshot it started with. Cached quotes are
// keyed by catalog version, so they stop being served the moment the swap
// lands.
func (h *RatesHandler) PublishRatesHandler(c *gin.Context) {
	var doc models.RateDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rate document", err.Error())
		return
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}

	if err := h.Repo.Publish(c.Request.Context(), doc); err != nil {
		utils.JSONError(c, http.StatusConflict, "failed to publish rate document", err.Error())
		return
	}
	h.Store.Swap(pricing.NewRateCatalog(doc))
	c.JSON(http.StatusCreated, gin.H{"version": doc.Version})
}
