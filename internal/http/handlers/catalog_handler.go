// README: Catalogue handlers for UI pickers (vehicle labels, priority tiers).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tarifa/internal/modules/pricing"
	"tarifa/internal/modules/tariff"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) VehicleTypes(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{
		"vehicle_types": tariff.VehicleLabels(),
		"keys":          tariff.VehicleKeys(),
	})
}

type priorityResp struct {
	Value      pricing.Priority `json:"value"`
	Multiplier float64          `json:"multiplier"`
}

func (h *CatalogHandler) Priorities(c *gin.Context) {
	tiers := pricing.Priorities()
	out := make([]priorityResp, len(tiers))
	for i, p := range tiers {
		out[i] = priorityResp{Value: p, Multiplier: p.Multiplier()}
	}
	writeJSON(c, http.StatusOK, map[string]any{"priorities": out})
}
