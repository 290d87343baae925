package pricing

import (
	"fmt"

	"tarifa/internal/modules/tariff"
	"tarifa/internal/types"
)

// ComputePrice applies the priority multiplier to the entry's base price for
// key. A missing price is reported as ErrPriceMissingForVehicle, which points
// at a data defect rather than an unserved route.
func ComputePrice(entry tariff.Entry, key tariff.VehicleKey, priority Priority) Result {
	pct := priority.percent()

	base, ok := entry.Price(key)
	if !ok {
		res := failed(fmt.Errorf("%w: %q for %s, %s", ErrPriceMissingForVehicle, key, entry.Destination, entry.State))
		res.Destination = entry.Destination
		res.State = entry.State.String()
		res.VehicleType = key
		res.Priority = priority
		return res
	}

	return Result{
		Found:       true,
		Destination: entry.Destination,
		State:       entry.State.String(),
		DistanceKm:  entry.DistanceKm,
		BasePrice:   base,
		FinalPrice:  types.ToCents(base).MulPercent(pct).Float(),
		VehicleType: key,
		Priority:    priority,
		Currency:    types.CurrencyMXN,
	}
}
