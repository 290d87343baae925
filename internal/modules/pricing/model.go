// README: Pricing types (priority tiers, quote request, pricing result, error kinds).
package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"tarifa/internal/modules/places"
	"tarifa/internal/modules/tariff"
)

var (
	ErrDestinationNotFound     = errors.New("destination not found")
	ErrVehicleTypeUnrecognized = errors.New("vehicle type unrecognized")
	ErrPriceMissingForVehicle  = errors.New("price missing for vehicle")
	ErrInvalidPriority         = errors.New("invalid priority")
)

// Priority is the service tier applied on top of the base price.
type Priority string

const (
	PriorityEconomico Priority = "economico"
	PriorityEstandar  Priority = "estandar"
	PriorityUrgente   Priority = "urgente"
)

// Multipliers are held in percent so prices stay in integer cents.
var priorityPercents = map[Priority]int64{
	PriorityEconomico: 85,
	PriorityEstandar:  100,
	PriorityUrgente:   115,
}

var priorities = []Priority{PriorityEconomico, PriorityEstandar, PriorityUrgente}

// Priorities lists every tier, cheapest first.
func Priorities() []Priority {
	return slices.Clone(priorities)
}

func (p Priority) Valid() bool {
	_, ok := priorityPercents[p]
	return ok
}

// Multiplier panics for values outside the enumeration; untrusted input must
// go through ParsePriority first.
func (p Priority) Multiplier() float64 {
	return float64(p.percent()) / 100
}

func (p Priority) percent() int64 {
	pct, ok := priorityPercents[p]
	if !ok {
		panic(fmt.Sprintf("pricing: %v: %q", ErrInvalidPriority, string(p)))
	}
	return pct
}

// ParsePriority accepts any case or accent variant of a tier name ("Económico").
// Blank input selects PriorityEstandar.
func ParsePriority(raw string) (Priority, error) {
	folded := places.Fold(raw)
	if folded == "" {
		return PriorityEstandar, nil
	}
	p := Priority(folded)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidPriority, strings.TrimSpace(raw), priorityList())
	}
	return p, nil
}

func priorityList() string {
	names := make([]string, len(priorities))
	for i, p := range priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// QuoteRequest carries raw, user-typed names. Pickup fields are kept for
// display; resolution keys off the delivery side only.
type QuoteRequest struct {
	PickupCity    string
	PickupState   string
	DeliveryCity  string
	DeliveryState string
	VehicleType   string
	Priority      Priority
}

// Result is returned for every quote, matched or not. Price fields are set
// only when Found is true; Error and ErrorCode only when it is false.
type Result struct {
	Found       bool              `json:"found"`
	Destination string            `json:"destination,omitempty"`
	State       string            `json:"state,omitempty"`
	DistanceKm  float64           `json:"distanceKm,omitempty"`
	BasePrice   float64           `json:"basePrice,omitempty"`
	FinalPrice  float64           `json:"finalPrice,omitempty"`
	VehicleType tariff.VehicleKey `json:"vehicleType,omitempty"`
	Priority    Priority          `json:"priority,omitempty"`
	Currency    string            `json:"currency,omitempty"`
	PickupCity  string            `json:"pickupCity,omitempty"`
	PickupState string            `json:"pickupState,omitempty"`
	ErrorCode   string            `json:"errorCode,omitempty"`
	Error       string            `json:"error,omitempty"`

	Err error `json:"-"`
}

type resultFields Result

// ResultJSON is the wire form of Result. The numeric fields of a found result
// are always present, zero included, and never those of a failed one. Embed it
// to extend a response.
type ResultJSON struct {
	resultFields
	DistanceKm *float64 `json:"distanceKm,omitempty"`
	BasePrice  *float64 `json:"basePrice,omitempty"`
	FinalPrice *float64 `json:"finalPrice,omitempty"`
}

func (r Result) JSON() ResultJSON {
	out := ResultJSON{resultFields: resultFields(r)}
	if r.Found {
		out.DistanceKm = &r.DistanceKm
		out.BasePrice = &r.BasePrice
		out.FinalPrice = &r.FinalPrice
	}
	return out
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.JSON())
}

const (
	CodeDestinationNotFound     = "destination_not_found"
	CodeVehicleTypeUnrecognized = "vehicle_type_unrecognized"
	CodePriceMissingForVehicle  = "price_missing_for_vehicle"
)

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrDestinationNotFound):
		return CodeDestinationNotFound
	case errors.Is(err, ErrVehicleTypeUnrecognized):
		return CodeVehicleTypeUnrecognized
	case errors.Is(err, ErrPriceMissingForVehicle):
		return CodePriceMissingForVehicle
	default:
		return ""
	}
}

func failed(err error) Result {
	return Result{Found: false, ErrorCode: errorCode(err), Error: err.Error(), Err: err}
}
