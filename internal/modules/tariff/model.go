// README: Tariff entry, raw row and vehicle-key definitions.
package tariff

import (
	"maps"
	"slices"

	"tarifa/internal/modules/places"
)

// VehicleKey identifies a cargo-vehicle class; it indexes Entry.BasePrices.
type VehicleKey string

const (
	Vehicle1Ton      VehicleKey = "1.TON"
	Vehicle1_5Ton    VehicleKey = "1.5 TON"
	Vehicle3_5Ton    VehicleKey = "3.5 TON"
	Vehicle5_5Ton    VehicleKey = "5.5 TON"
	VehicleRabon     VehicleKey = "RABON"
	VehicleTorton    VehicleKey = "TORTON"
	VehicleTrailer48 VehicleKey = "TRAILER 48"
	VehicleTrailer53 VehicleKey = "TRAILER 53"
)

// vehicleKeys is the closed set, smallest to largest. Read-only.
var vehicleKeys = []VehicleKey{
	Vehicle1Ton,
	Vehicle1_5Ton,
	Vehicle3_5Ton,
	Vehicle5_5Ton,
	VehicleRabon,
	VehicleTorton,
	VehicleTrailer48,
	VehicleTrailer53,
}

// VehicleKeys returns every vehicle key, smallest to largest.
func VehicleKeys() []VehicleKey {
	return slices.Clone(vehicleKeys)
}

func (k VehicleKey) Valid() bool {
	return slices.Contains(vehicleKeys, k)
}

// Row is one raw dataset line before validation.
type Row struct {
	Destination string
	State       string
	DistanceKm  float64
	Prices      map[VehicleKey]float64
}

// Entry is one deliverable destination of a validated Table.
type Entry struct {
	Destination           string                 `json:"destination"`
	State                 places.State           `json:"state"`
	NormalizedDestination string                 `json:"normalizedDestination"`
	NormalizedState       string                 `json:"normalizedState"`
	DistanceKm            float64                `json:"distanceKm"`
	BasePrices            map[VehicleKey]float64 `json:"basePrices"`
}

// Price returns the base price for key, if the entry has one.
func (e Entry) Price(key VehicleKey) (float64, bool) {
	p, ok := e.BasePrices[key]
	return p, ok
}

func (e Entry) clone() Entry {
	e.BasePrices = maps.Clone(e.BasePrices)
	return e
}
