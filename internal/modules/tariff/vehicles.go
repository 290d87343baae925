// README: Vehicle label -> tariff key mapping used by UI selection controls.
package tariff

import (
	"fmt"
	"strings"

	"tarifa/internal/modules/places"
)

// VehicleLabel pairs a human-facing label with its tariff key.
type VehicleLabel struct {
	Label string     `json:"label"`
	Key   VehicleKey `json:"key"`
}

// vehicleLabels is the static alias table, in display order.
// Each key is also listed as a label of itself.
var vehicleLabels = []VehicleLabel{
	{"Camioneta 1 Ton", Vehicle1Ton},
	{"1 Tonelada", Vehicle1Ton},
	{"1.TON", Vehicle1Ton},
	{"Camioneta 1.5 Ton", Vehicle1_5Ton},
	{"1.5 Toneladas", Vehicle1_5Ton},
	{"1.5 TON", Vehicle1_5Ton},
	{"Camión 3.5 Ton", Vehicle3_5Ton},
	{"3.5 Toneladas", Vehicle3_5Ton},
	{"3.5 TON", Vehicle3_5Ton},
	{"Camión 5.5 Ton", Vehicle5_5Ton},
	{"5.5 Toneladas", Vehicle5_5Ton},
	{"5.5 TON", Vehicle5_5Ton},
	{"Camión Rabón", VehicleRabon},
	{"RABON", VehicleRabon},
	{"Camión Tortón", VehicleTorton},
	{"TORTON", VehicleTorton},
	{"Tráiler 48 pies", VehicleTrailer48},
	{"Caja seca 48", VehicleTrailer48},
	{"TRAILER 48", VehicleTrailer48},
	{"Tráiler 53 pies", VehicleTrailer53},
	{"Caja seca 53", VehicleTrailer53},
	{"TRAILER 53", VehicleTrailer53},
}

// labelIndex maps a folded label to its key. Read-only after init.
var labelIndex = buildLabelIndex()

func buildLabelIndex() map[string]VehicleKey {
	index := make(map[string]VehicleKey, len(vehicleLabels))
	covered := make(map[VehicleKey]bool, len(vehicleKeys))
	for _, l := range vehicleLabels {
		if !l.Key.Valid() {
			panic(fmt.Sprintf("tariff: label %q maps to unknown vehicle key %q", l.Label, l.Key))
		}
		folded := foldLabel(l.Label)
		if prev, ok := index[folded]; ok && prev != l.Key {
			panic(fmt.Sprintf("tariff: label %q maps to both %q and %q", l.Label, prev, l.Key))
		}
		index[folded] = l.Key
		covered[l.Key] = true
	}
	for _, k := range vehicleKeys {
		if !covered[k] {
			panic(fmt.Sprintf("tariff: vehicle key %q has no label", k))
		}
	}
	return index
}

// foldLabel keeps punctuation ("1.5" must not collide with "15"), unlike places.Fold.
func foldLabel(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(places.StripAccents(label))), " ")
}

// ResolveVehicleKey maps a UI label to its tariff key.
func ResolveVehicleKey(label string) (VehicleKey, bool) {
	key, ok := labelIndex[foldLabel(label)]
	return key, ok
}

// VehicleLabels lists the alias table in display order.
func VehicleLabels() []VehicleLabel {
	out := make([]VehicleLabel, len(vehicleLabels))
	copy(out, vehicleLabels)
	return out
}
