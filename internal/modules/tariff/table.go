// README: Immutable tariff table with startup validation and exact-match resolution.
package tariff

import (
	"errors"
	"fmt"
	"math"

	"tarifa/internal/modules/places"
)

var ErrInvalidTable = errors.New("invalid tariff table")

// Table is built once at startup and never mutated; it is safe to share
// between goroutines without locking.
type Table struct {
	entries []Entry
	byCity  map[string][]int
}

// NewTable validates rows and precomputes their lookup keys.
// Every row must name a canonical state, a finite non-negative distance and a
// finite non-negative price for every vehicle key.
func NewTable(rows []Row) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidTable)
	}

	t := &Table{
		entries: make([]Entry, 0, len(rows)),
		byCity:  make(map[string][]int, len(rows)),
	}
	for i, r := range rows {
		e, err := newEntry(r)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d (%q): %v", ErrInvalidTable, i, r.Destination, err)
		}
		t.byCity[e.NormalizedDestination] = append(t.byCity[e.NormalizedDestination], len(t.entries))
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// MustDefaultTable builds the table from DefaultRows and panics if the
// built-in dataset is malformed.
func MustDefaultTable() *Table {
	t, err := NewTable(DefaultRows())
	if err != nil {
		panic(err)
	}
	return t
}

func newEntry(r Row) (Entry, error) {
	dest := places.Normalize(r.Destination)
	if dest == "" {
		return Entry{}, errors.New("empty destination")
	}
	state, ok := places.ResolveState(r.State)
	if !ok {
		return Entry{}, fmt.Errorf("unknown state %q", r.State)
	}
	if state.String() != r.State {
		return Entry{}, fmt.Errorf("state %q is not canonical, want %q", r.State, state.String())
	}
	if math.IsNaN(r.DistanceKm) || math.IsInf(r.DistanceKm, 0) || r.DistanceKm < 0 {
		return Entry{}, fmt.Errorf("invalid distance %v", r.DistanceKm)
	}

	prices := make(map[VehicleKey]float64, len(vehicleKeys))
	for key, p := range r.Prices {
		if !key.Valid() {
			return Entry{}, fmt.Errorf("unknown vehicle key %q", key)
		}
		prices[key] = p
	}
	for _, key := range vehicleKeys {
		p, ok := prices[key]
		if !ok {
			return Entry{}, fmt.Errorf("missing price for %q", key)
		}
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return Entry{}, fmt.Errorf("invalid price %v for %q", p, key)
		}
	}

	return Entry{
		Destination:           r.Destination,
		State:                 state,
		NormalizedDestination: dest,
		NormalizedState:       state.Normalized(),
		DistanceKm:            r.DistanceKm,
		BasePrices:            prices,
	}, nil
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of every entry in table order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.clone()
	}
	return out
}

// FindEntry resolves a destination by exact normalized name.
//
// With a resolvable state the match is on (city, state) only. With a blank or
// unresolvable state the first entry in table order carrying that city name
// wins, even when the name exists in several states.
func (t *Table) FindEntry(city, state string) (Entry, bool) {
	idx := t.byCity[places.Normalize(city)]
	if len(idx) == 0 {
		return Entry{}, false
	}

	if s, ok := places.ResolveState(state); ok {
		for _, i := range idx {
			if t.entries[i].State == s {
				return t.entries[i].clone(), true
			}
		}
		return Entry{}, false
	}
	return t.entries[idx[0]].clone(), true
}
