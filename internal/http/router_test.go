// README: Router tests: health, route wiring and panic recovery through the full middleware chain.
package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tarifa/internal/modules/pricing"
	"tarifa/internal/modules/tariff"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(ServerDeps{
		Pricing: pricing.NewService(tariff.MustDefaultTable(), zap.NewNop()),
	}).Routes()
}

func TestRouter_Health(t *testing.T) {
	h := newTestServer(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRouter_Routes(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/quotes", `{"delivery_city":"Reynosa","vehicle_type":"RABON"}`, http.StatusOK},
		{http.MethodGet, "/api/routes/availability?delivery_city=Reynosa", "", http.StatusOK},
		{http.MethodGet, "/api/cities", "", http.StatusOK},
		{http.MethodGet, "/api/cities/search?q=mon", "", http.StatusOK},
		{http.MethodGet, "/api/vehicle-types", "", http.StatusOK},
		{http.MethodGet, "/api/priorities", "", http.StatusOK},
		{http.MethodGet, "/api/manual-quotes", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			require.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestNewServer_NilLogger(t *testing.T) {
	s := NewServer(ServerDeps{Pricing: pricing.NewService(tariff.MustDefaultTable(), nil)})
	assert.NotNil(t, s.log)
}

func TestNewRouter_NilLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(pricing.NewService(tariff.MustDefaultTable(), nil), nil, nil)

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
