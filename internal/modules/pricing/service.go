// README: Pricing service: the quoting entry points used by the API and CLI.
package pricing

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tarifa/internal/modules/tariff"
)

// DefaultVehicleKey is used by IsRouteAvailable, which ignores the vehicle.
const DefaultVehicleKey = tariff.Vehicle1Ton

// Service holds no mutable state and is safe for concurrent use.
type Service struct {
	table  *tariff.Table
	cities *tariff.CityIndex
	log    *zap.Logger
}

func NewService(table *tariff.Table, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		table:  table,
		cities: tariff.BuildCityIndex(table.Entries()),
		log:    log.Named("pricing"),
	}
}

// Table exposes the underlying tariff table for catalogue and check commands.
func (s *Service) Table() *tariff.Table {
	return s.table
}

// CalculatePrice quotes req against the delivery destination. Unmatched
// destinations, unknown vehicle labels and missing prices come back as a
// Result with Found=false; an invalid priority panics.
func (s *Service) CalculatePrice(req QuoteRequest) Result {
	_ = req.Priority.Multiplier() // panics on a tier outside the enumeration

	res := s.calculate(req)
	res.Priority = req.Priority
	res.PickupCity = strings.TrimSpace(req.PickupCity)
	res.PickupState = strings.TrimSpace(req.PickupState)
	return res
}

func (s *Service) calculate(req QuoteRequest) Result {
	entry, ok := s.table.FindEntry(req.DeliveryCity, req.DeliveryState)
	if !ok {
		s.log.Info("destination not found",
			zap.String("delivery_city", req.DeliveryCity),
			zap.String("delivery_state", req.DeliveryState),
		)
		return failed(fmt.Errorf("%w: %q, %q", ErrDestinationNotFound,
			strings.TrimSpace(req.DeliveryCity), strings.TrimSpace(req.DeliveryState)))
	}

	key, ok := tariff.ResolveVehicleKey(req.VehicleType)
	if !ok {
		s.log.Info("vehicle type unrecognized", zap.String("vehicle_type", req.VehicleType))
		res := failed(fmt.Errorf("%w: %q", ErrVehicleTypeUnrecognized, strings.TrimSpace(req.VehicleType)))
		res.Destination = entry.Destination
		res.State = entry.State.String()
		return res
	}

	res := ComputePrice(entry, key, req.Priority)
	if !res.Found {
		s.log.Error("tariff data defect",
			zap.String("destination", entry.Destination),
			zap.Stringer("state", entry.State),
			zap.String("vehicle_key", string(key)),
			zap.Error(res.Err),
		)
	}
	return res
}

// IsRouteAvailable reports whether the delivery destination has a tariff,
// quoting the default vehicle at the standard tier.
func (s *Service) IsRouteAvailable(pickupCity, pickupState, deliveryCity, deliveryState string) bool {
	return s.CalculatePrice(QuoteRequest{
		PickupCity:    pickupCity,
		PickupState:   pickupState,
		DeliveryCity:  deliveryCity,
		DeliveryState: deliveryState,
		VehicleType:   string(DefaultVehicleKey),
		Priority:      PriorityEstandar,
	}).Found
}

func (s *Service) AllCities() []tariff.CityEntry {
	return s.cities.All()
}

func (s *Service) SearchCities(query, stateFilter string) []tariff.CityEntry {
	return s.cities.Search(query, stateFilter)
}
