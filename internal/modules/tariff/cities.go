// README: Deduplicated (city, state) index for autocomplete suggestions.
package tariff

import (
	"slices"
	"strings"
	"unicode/utf8"

	"tarifa/internal/modules/places"
)

const (
	// MaxSearchResults bounds the suggestion payload.
	MaxSearchResults = 10
	// MinQueryLength is measured on the normalized query, in runes.
	MinQueryLength = 2
)

// CityEntry is one autocomplete suggestion.
type CityEntry struct {
	City           string       `json:"city"`
	State          places.State `json:"state"`
	NormalizedCity string       `json:"normalizedCity"`
	Aliases        []string     `json:"aliases,omitempty"`
	Virtual        bool         `json:"virtual,omitempty"`

	// ManualQuote marks a suggestion with no tariff row: quoting it comes back
	// destination_not_found and is handled through a manual quote.
	ManualQuote bool `json:"manualQuote,omitempty"`
}

// virtualCities are served specially and are not rows of the tariff table.
// Aliases are stored folded. A table row for the same city replaces the
// virtual entry, which then prices normally.
var virtualCities = []CityEntry{
	{
		City:        "Ciudad de México",
		State:       places.CiudadDeMexico,
		Aliases:     []string{"cdmx", "df", "distrito federal", "mexico df"},
		Virtual:     true,
		ManualQuote: true,
	},
}

// CityIndex is immutable once built.
type CityIndex struct {
	entries []CityEntry
}

type cityKey struct {
	city  string
	state places.State
}

// BuildCityIndex deduplicates entries on (normalized city, state), keeps table
// order and appends the virtual cities not already present.
func BuildCityIndex(entries []Entry) *CityIndex {
	seen := make(map[cityKey]bool, len(entries)+len(virtualCities))
	ix := &CityIndex{entries: make([]CityEntry, 0, len(entries)+len(virtualCities))}

	for _, e := range entries {
		k := cityKey{city: e.NormalizedDestination, state: e.State}
		if seen[k] {
			continue
		}
		seen[k] = true
		ix.entries = append(ix.entries, CityEntry{
			City:           e.Destination,
			State:          e.State,
			NormalizedCity: e.NormalizedDestination,
		})
	}

	for _, v := range virtualCities {
		v.NormalizedCity = places.Normalize(v.City)
		k := cityKey{city: v.NormalizedCity, state: v.State}
		if seen[k] {
			continue
		}
		seen[k] = true
		v.Aliases = slices.Clone(v.Aliases)
		ix.entries = append(ix.entries, v)
	}
	return ix
}

func (ix *CityIndex) Len() int {
	return len(ix.entries)
}

// All returns every suggestion in insertion order.
func (ix *CityIndex) All() []CityEntry {
	out := make([]CityEntry, len(ix.entries))
	for i, c := range ix.entries {
		out[i] = c.clone()
	}
	return out
}

// Search returns up to MaxSearchResults entries whose normalized name (or, for
// virtual entries, an alias) contains the normalized query. A non-blank
// stateFilter restricts results to that state; a filter that does not resolve
// matches nothing. Results keep insertion order.
func (ix *CityIndex) Search(query, stateFilter string) []CityEntry {
	q := places.Normalize(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return []CityEntry{}
	}

	var state places.State
	if strings.TrimSpace(stateFilter) != "" {
		s, ok := places.ResolveState(stateFilter)
		if !ok {
			return []CityEntry{}
		}
		state = s
	}

	out := make([]CityEntry, 0, MaxSearchResults)
	for _, c := range ix.entries {
		if state != places.StateUnknown && c.State != state {
			continue
		}
		if !c.matches(q) {
			continue
		}
		out = append(out, c.clone())
		if len(out) == MaxSearchResults {
			break
		}
	}
	return out
}

func (c CityEntry) matches(q string) bool {
	if strings.Contains(c.NormalizedCity, q) {
		return true
	}
	for _, a := range c.Aliases {
		if strings.Contains(a, q) {
			return true
		}
	}
	return false
}

func (c CityEntry) clone() CityEntry {
	c.Aliases = slices.Clone(c.Aliases)
	return c
}
