package pricing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tarifa/internal/modules/places"
	"tarifa/internal/modules/tariff"
	"tarifa/internal/types"
)

const reynosa1Ton = 3800.0

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(tariff.MustDefaultTable(), zap.NewNop())
}

func reynosa(priority Priority) QuoteRequest {
	return QuoteRequest{
		PickupCity:    "Monterrey",
		PickupState:   "Nuevo León",
		DeliveryCity:  "Reynosa",
		DeliveryState: "Tamaulipas",
		VehicleType:   "Camioneta 1 Ton",
		Priority:      priority,
	}
}

func TestService_CalculatePrice(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name      string
		priority  Priority
		wantFinal float64
	}{
		{name: "estandar keeps base price", priority: PriorityEstandar, wantFinal: reynosa1Ton},
		{name: "urgente", priority: PriorityUrgente, wantFinal: types.Round2(reynosa1Ton * 1.15)},
		{name: "economico", priority: PriorityEconomico, wantFinal: types.Round2(reynosa1Ton * 0.85)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.CalculatePrice(reynosa(tt.priority))
			require.True(t, res.Found, res.Error)
			assert.Equal(t, "Reynosa", res.Destination)
			assert.Equal(t, "Tamaulipas", res.State)
			assert.Equal(t, 220.0, res.DistanceKm)
			assert.Equal(t, tariff.Vehicle1Ton, res.VehicleType)
			assert.Equal(t, reynosa1Ton, res.BasePrice)
			assert.Equal(t, tt.wantFinal, res.FinalPrice)
			assert.Equal(t, tt.priority, res.Priority)
			assert.Equal(t, types.CurrencyMXN, res.Currency)
			assert.Equal(t, "Monterrey", res.PickupCity)
			assert.Empty(t, res.Error)
			assert.NoError(t, res.Err)
		})
	}
}

func TestService_UrgenteExample(t *testing.T) {
	res := newTestService(t).CalculatePrice(reynosa(PriorityUrgente))
	require.True(t, res.Found)
	assert.InDelta(t, 4370.0, res.FinalPrice, 1e-9)
}

func TestService_PickupDoesNotAffectPrice(t *testing.T) {
	svc := newTestService(t)
	a := reynosa(PriorityEstandar)
	b := reynosa(PriorityEstandar)
	b.PickupCity, b.PickupState = "Tijuana", "Baja California"

	assert.Equal(t, svc.CalculatePrice(a).FinalPrice, svc.CalculatePrice(b).FinalPrice)
}

func TestService_DestinationNotFound(t *testing.T) {
	svc := newTestService(t)

	for _, state := range []string{"Tamaulipas", "", "Atlantis"} {
		req := reynosa(PriorityEstandar)
		req.DeliveryCity = "Nonexistentville"
		req.DeliveryState = state

		res := svc.CalculatePrice(req)
		assert.False(t, res.Found)
		assert.True(t, errors.Is(res.Err, ErrDestinationNotFound))
		assert.Equal(t, CodeDestinationNotFound, res.ErrorCode)
		assert.NotEmpty(t, res.Error)
		assert.Zero(t, res.BasePrice)
		assert.Zero(t, res.FinalPrice)
		assert.Zero(t, res.DistanceKm)
		assert.Empty(t, res.Destination)
		assert.Empty(t, res.VehicleType)
	}
}

func TestService_VehicleTypeUnrecognized(t *testing.T) {
	req := reynosa(PriorityEstandar)
	req.VehicleType = "Bicicleta"

	res := newTestService(t).CalculatePrice(req)
	assert.False(t, res.Found)
	assert.True(t, errors.Is(res.Err, ErrVehicleTypeUnrecognized))
	assert.False(t, errors.Is(res.Err, ErrDestinationNotFound))
	assert.Equal(t, CodeVehicleTypeUnrecognized, res.ErrorCode)
	assert.Equal(t, "Reynosa", res.Destination)
	assert.Zero(t, res.FinalPrice)
}

func TestService_InvalidPriorityPanics(t *testing.T) {
	svc := newTestService(t)
	assert.Panics(t, func() { svc.CalculatePrice(reynosa(Priority("express"))) })
	assert.Panics(t, func() { svc.CalculatePrice(reynosa("")) })
}

func TestService_PriorityOrdering(t *testing.T) {
	svc := newTestService(t)

	for _, e := range svc.Table().Entries() {
		for _, key := range tariff.VehicleKeys() {
			eco := ComputePrice(e, key, PriorityEconomico)
			std := ComputePrice(e, key, PriorityEstandar)
			urg := ComputePrice(e, key, PriorityUrgente)
			require.True(t, std.Found)
			assert.Less(t, eco.FinalPrice, std.FinalPrice, "%s %s", e.Destination, key)
			assert.Less(t, std.FinalPrice, urg.FinalPrice, "%s %s", e.Destination, key)
			assert.Equal(t, types.Round2(std.BasePrice), std.FinalPrice)
		}
	}
}

func TestService_MissingPriceDistinctFromNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(tariff.MustDefaultTable(), zap.New(core))

	entry := tariff.Entry{
		Destination: "Reynosa",
		State:       places.Tamaulipas,
		DistanceKm:  220,
		BasePrices:  map[tariff.VehicleKey]float64{tariff.Vehicle1Ton: 3800},
	}
	res := ComputePrice(entry, tariff.VehicleTorton, PriorityEstandar)
	assert.False(t, res.Found)
	assert.True(t, errors.Is(res.Err, ErrPriceMissingForVehicle))
	assert.Equal(t, CodePriceMissingForVehicle, res.ErrorCode)
	assert.Equal(t, "Reynosa", res.Destination)
	assert.Zero(t, res.FinalPrice)

	req := reynosa(PriorityEstandar)
	req.DeliveryCity = "Nonexistentville"
	svc.CalculatePrice(req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "destination not found", entries[0].Message)
}

func TestService_IsRouteAvailable(t *testing.T) {
	svc := newTestService(t)

	assert.True(t, svc.IsRouteAvailable("Monterrey", "NL", "Reynosa", "Tamaulipas"))
	assert.True(t, svc.IsRouteAvailable("", "", "cd victoria", "tamps"))
	assert.False(t, svc.IsRouteAvailable("Monterrey", "NL", "Nonexistentville", ""))
	assert.False(t, svc.IsRouteAvailable("Monterrey", "NL", "Reynosa", "Jalisco"))
}

func TestService_Cities(t *testing.T) {
	svc := newTestService(t)

	all := svc.AllCities()
	assert.Greater(t, len(all), 50)

	res := svc.SearchCities("rey", "")
	require.NotEmpty(t, res)
	assert.LessOrEqual(t, len(res), tariff.MaxSearchResults)
	for _, c := range res {
		assert.Contains(t, c.NormalizedCity, "rey")
	}
	assert.Empty(t, svc.SearchCities("r", ""))
	assert.Equal(t, res, svc.SearchCities("rey", ""))
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "economico", want: PriorityEconomico},
		{in: "Económico", want: PriorityEconomico},
		{in: " URGENTE ", want: PriorityUrgente},
		{in: "Estándar", want: PriorityEstandar},
		{in: "", want: PriorityEstandar},
		{in: "express", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPriority)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPriority_Multiplier(t *testing.T) {
	assert.Equal(t, 0.85, PriorityEconomico.Multiplier())
	assert.Equal(t, 1.0, PriorityEstandar.Multiplier())
	assert.Equal(t, 1.15, PriorityUrgente.Multiplier())
	assert.Panics(t, func() { Priority("vip").Multiplier() })
	assert.Len(t, Priorities(), 3)
}

func TestComputePrice_HalfCentRoundsAwayFromZero(t *testing.T) {
	tests := []struct {
		name      string
		base      float64
		priority  Priority
		wantFinal float64
	}{
		{name: "10.10 urgente", base: 10.10, priority: PriorityUrgente, wantFinal: 11.62},
		{name: "1.10 urgente", base: 1.10, priority: PriorityUrgente, wantFinal: 1.27},
		{name: "2.30 economico", base: 2.30, priority: PriorityEconomico, wantFinal: 1.96},
		{name: "1.01 economico", base: 1.01, priority: PriorityEconomico, wantFinal: 0.86},
		{name: "10.10 estandar", base: 10.10, priority: PriorityEstandar, wantFinal: 10.10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tariff.Entry{
				Destination: "Reynosa",
				State:       places.Tamaulipas,
				DistanceKm:  220,
				BasePrices:  map[tariff.VehicleKey]float64{tariff.Vehicle1Ton: tt.base},
			}
			res := ComputePrice(entry, tariff.Vehicle1Ton, tt.priority)
			require.True(t, res.Found)
			assert.Equal(t, tt.base, res.BasePrice)
			assert.Equal(t, tt.wantFinal, res.FinalPrice)
		})
	}
}

func TestService_CentPricesFromTable(t *testing.T) {
	prices := make(map[tariff.VehicleKey]float64)
	for _, k := range tariff.VehicleKeys() {
		prices[k] = 10.10
	}
	table, err := tariff.NewTable([]tariff.Row{
		{Destination: "Reynosa", State: "Tamaulipas", DistanceKm: 220, Prices: prices},
	})
	require.NoError(t, err)

	res := NewService(table, nil).CalculatePrice(reynosa(PriorityUrgente))
	require.True(t, res.Found)
	assert.Equal(t, 11.62, res.FinalPrice)
}

func TestService_VirtualCapitalSuggestion(t *testing.T) {
	svc := newTestService(t)

	suggestions := svc.SearchCities("cdmx", "")
	require.NotEmpty(t, suggestions)
	for _, c := range suggestions {
		res := svc.CalculatePrice(QuoteRequest{
			DeliveryCity:  c.City,
			DeliveryState: c.State.String(),
			VehicleType:   string(DefaultVehicleKey),
			Priority:      PriorityEstandar,
		})
		if c.ManualQuote {
			assert.False(t, res.Found, c.City)
			assert.Equal(t, CodeDestinationNotFound, res.ErrorCode)
			assert.False(t, svc.IsRouteAvailable("", "", c.City, c.State.String()))
			continue
		}
		assert.True(t, res.Found, c.City)
	}

	capital := suggestions[len(suggestions)-1]
	assert.True(t, capital.Virtual)
	assert.True(t, capital.ManualQuote)
}

func TestService_VirtualCapitalPricesOnceTabled(t *testing.T) {
	prices := make(map[tariff.VehicleKey]float64)
	for _, k := range tariff.VehicleKeys() {
		prices[k] = 12000
	}
	table, err := tariff.NewTable([]tariff.Row{
		{Destination: "Ciudad de México", State: "Ciudad de México", DistanceKm: 915, Prices: prices},
	})
	require.NoError(t, err)
	svc := NewService(table, nil)

	suggestions := svc.SearchCities("cdmx", "")
	require.Len(t, suggestions, 1)
	assert.False(t, suggestions[0].Virtual)
	assert.False(t, suggestions[0].ManualQuote)
	assert.True(t, svc.IsRouteAvailable("", "", "CDMX", "CDMX"))
}

func TestResult_JSON(t *testing.T) {
	found := Result{
		Found:       true,
		Destination: "Guadalupe",
		State:       "Nuevo León",
		VehicleType: tariff.Vehicle1Ton,
		Priority:    PriorityEstandar,
		Currency:    "MXN",
	}
	b, err := json.Marshal(found)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, 0.0, body["distanceKm"])
	assert.Equal(t, 0.0, body["basePrice"])
	assert.Equal(t, 0.0, body["finalPrice"])
	assert.Equal(t, "Guadalupe", body["destination"])

	b, err = json.Marshal(failed(ErrDestinationNotFound))
	require.NoError(t, err)
	body = map[string]any{}
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, false, body["found"])
	assert.Equal(t, CodeDestinationNotFound, body["errorCode"])
	assert.NotContains(t, body, "distanceKm")
	assert.NotContains(t, body, "basePrice")
	assert.NotContains(t, body, "finalPrice")
}
