// README: City handlers for the destination autocomplete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tarifa/internal/modules/pricing"
)

type CityHandler struct {
	pricing *pricing.Service
}

func NewCityHandler(svc *pricing.Service) *CityHandler {
	return &CityHandler{pricing: svc}
}

func (h *CityHandler) List(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"cities": h.pricing.AllCities()})
}

func (h *CityHandler) Search(c *gin.Context) {
	cities := h.pricing.SearchCities(c.Query("q"), c.Query("state"))
	writeJSON(c, http.StatusOK, map[string]any{"cities": cities})
}
