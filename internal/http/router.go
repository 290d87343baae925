// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tarifa/internal/http/handlers"
	"tarifa/internal/http/middleware"
	"tarifa/internal/modules/manualquote"
	"tarifa/internal/modules/pricing"
)

func NewRouter(
	pricingService *pricing.Service,
	manualQuoteService *manualquote.Service,
	log *zap.Logger,
) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	quoteHandler := handlers.NewQuoteHandler(pricingService, manualQuoteService, log)
	api.POST("/quotes", quoteHandler.Create)
	api.GET("/routes/availability", quoteHandler.Availability)

	cityHandler := handlers.NewCityHandler(pricingService)
	api.GET("/cities", cityHandler.List)
	api.GET("/cities/search", cityHandler.Search)

	catalogHandler := handlers.NewCatalogHandler()
	api.GET("/vehicle-types", catalogHandler.VehicleTypes)
	api.GET("/priorities", catalogHandler.Priorities)

	manualQuoteHandler := handlers.NewManualQuoteHandler(manualQuoteService)
	api.GET("/manual-quotes", manualQuoteHandler.List)
	api.GET("/manual-quotes/:id", manualQuoteHandler.Get)

	return r
}
