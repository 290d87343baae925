// README: API gateway; wires handlers onto the gin engine.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"tarifa/internal/modules/manualquote"
	"tarifa/internal/modules/pricing"
)

type ServerDeps struct {
	Pricing *pricing.Service
	// ManualQuotes is nil when no Redis address is configured.
	ManualQuotes *manualquote.Service
	Logger       *zap.Logger
}

type Server struct {
	pricing      *pricing.Service
	manualQuotes *manualquote.Service
	log          *zap.Logger
}

func NewServer(deps ServerDeps) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		pricing:      deps.Pricing,
		manualQuotes: deps.ManualQuotes,
		log:          log,
	}
}

func (s *Server) Routes() http.Handler {
	return NewRouter(s.pricing, s.manualQuotes, s.log)
}
