// README: Manual quote handlers (queue listing and lookup).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tarifa/internal/modules/manualquote"
)

type ManualQuoteHandler struct {
	manualQuotes *manualquote.Service
}

// NewManualQuoteHandler accepts a nil service; every route then answers 503.
func NewManualQuoteHandler(svc *manualquote.Service) *ManualQuoteHandler {
	return &ManualQuoteHandler{manualQuotes: svc}
}

func (h *ManualQuoteHandler) List(c *gin.Context) {
	if h.manualQuotes == nil {
		writeManualQuoteError(c, manualquote.ErrDisabled)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}
	list, err := h.manualQuotes.List(c.Request.Context(), limit)
	if err != nil {
		writeManualQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"manual_quotes": list})
}

func (h *ManualQuoteHandler) Get(c *gin.Context) {
	if h.manualQuotes == nil {
		writeManualQuoteError(c, manualquote.ErrDisabled)
		return
	}
	id := c.Param("id")
	if id == "" {
		writeError(c, http.StatusBadRequest, "missing manual quote id")
		return
	}
	mq, err := h.manualQuotes.Get(c.Request.Context(), id)
	if err != nil {
		writeManualQuoteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, mq)
}
