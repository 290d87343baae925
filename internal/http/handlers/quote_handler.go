// README: Quote handlers (price a shipment, check route availability).
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tarifa/internal/modules/manualquote"
	"tarifa/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing      *pricing.Service
	manualQuotes *manualquote.Service
	log          *zap.Logger
}

// NewQuoteHandler accepts a nil manualQuotes service; unmatched quotes are
// then returned without being queued.
func NewQuoteHandler(pricingSvc *pricing.Service, manualQuotes *manualquote.Service, log *zap.Logger) *QuoteHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteHandler{pricing: pricingSvc, manualQuotes: manualQuotes, log: log}
}

type quoteReq struct {
	PickupCity    string `json:"pickup_city"`
	PickupState   string `json:"pickup_state"`
	DeliveryCity  string `json:"delivery_city"`
	DeliveryState string `json:"delivery_state"`
	VehicleType   string `json:"vehicle_type"`
	Priority      string `json:"priority"`
}

type quoteResp struct {
	pricing.ResultJSON
	ManualQuoteID string `json:"manual_quote_id,omitempty"`
}

func (h *QuoteHandler) Create(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.DeliveryCity) == "" {
		writeError(c, http.StatusBadRequest, "missing delivery_city")
		return
	}
	priority, err := pricing.ParsePriority(req.Priority)
	if err != nil {
		writeQuoteError(c, err)
		return
	}

	q := pricing.QuoteRequest{
		PickupCity:    req.PickupCity,
		PickupState:   req.PickupState,
		DeliveryCity:  req.DeliveryCity,
		DeliveryState: req.DeliveryState,
		VehicleType:   req.VehicleType,
		Priority:      priority,
	}
	res := h.pricing.CalculatePrice(q)
	resp := quoteResp{ResultJSON: res.JSON()}

	if !res.Found && h.manualQuotes != nil {
		mq, err := h.manualQuotes.Enqueue(c.Request.Context(), q, res)
		if err != nil {
			// The quote itself succeeded; the caller still gets the unmatched result.
			h.log.Error("enqueue manual quote", zap.Error(err))
		} else {
			resp.ManualQuoteID = mq.ID
		}
	}
	writeJSON(c, http.StatusOK, resp)
}

func (h *QuoteHandler) Availability(c *gin.Context) {
	deliveryCity := c.Query("delivery_city")
	if strings.TrimSpace(deliveryCity) == "" {
		writeError(c, http.StatusBadRequest, "missing delivery_city")
		return
	}
	available := h.pricing.IsRouteAvailable(
		c.Query("pickup_city"),
		c.Query("pickup_state"),
		deliveryCity,
		c.Query("delivery_state"),
	)
	writeJSON(c, http.StatusOK, map[string]any{"available": available})
}
