// README: Closed registry of Mexican federal entities and their aliases.
package places

import "fmt"

// State is a canonical federal entity. The zero value is StateUnknown.
type State int

const (
	StateUnknown State = iota
	Aguascalientes
	BajaCalifornia
	BajaCaliforniaSur
	Campeche
	Chiapas
	Chihuahua
	CiudadDeMexico
	Coahuila
	Colima
	Durango
	EstadoDeMexico
	Guanajuato
	Guerrero
	Hidalgo
	Jalisco
	Michoacan
	Morelos
	Nayarit
	NuevoLeon
	Oaxaca
	Puebla
	Queretaro
	QuintanaRoo
	SanLuisPotosi
	Sinaloa
	Sonora
	Tabasco
	Tamaulipas
	Tlaxcala
	Veracruz
	Yucatan
	Zacatecas

	stateCount
)

type stateInfo struct {
	name    string
	aliases []string
}

// stateTable is indexed by State. The canonical name is always an alias of itself.
// CiudadDeMexico needs no extra aliases here: Normalize already folds "CDMX",
// "México D.F." and "Distrito Federal" into its canonical name.
var stateTable = [stateCount]stateInfo{
	Aguascalientes:    {"Aguascalientes", []string{"ags", "ags."}},
	BajaCalifornia:    {"Baja California", []string{"bc", "b.c.", "baja california norte"}},
	BajaCaliforniaSur: {"Baja California Sur", []string{"bcs", "b.c.s."}},
	Campeche:          {"Campeche", []string{"camp"}},
	Chiapas:           {"Chiapas", []string{"chis"}},
	Chihuahua:         {"Chihuahua", []string{"chih"}},
	CiudadDeMexico:    {"Ciudad de México", nil},
	Coahuila:          {"Coahuila", []string{"coah", "coahuila de zaragoza"}},
	Colima:            {"Colima", []string{"col"}},
	Durango:           {"Durango", []string{"dgo"}},
	EstadoDeMexico:    {"Estado de México", []string{"mexico", "edomex", "edo. mex.", "mex", "estado mex"}},
	Guanajuato:        {"Guanajuato", []string{"gto"}},
	Guerrero:          {"Guerrero", []string{"gro"}},
	Hidalgo:           {"Hidalgo", []string{"hgo"}},
	Jalisco:           {"Jalisco", []string{"jal"}},
	Michoacan:         {"Michoacán", []string{"mich", "michoacan de ocampo"}},
	Morelos:           {"Morelos", []string{"mor"}},
	Nayarit:           {"Nayarit", []string{"nay"}},
	NuevoLeon:         {"Nuevo León", []string{"nl", "n.l.", "nvo leon", "nvo. león"}},
	Oaxaca:            {"Oaxaca", []string{"oax"}},
	Puebla:            {"Puebla", []string{"pue"}},
	Queretaro:         {"Querétaro", []string{"qro", "queretaro de arteaga"}},
	QuintanaRoo:       {"Quintana Roo", []string{"qroo", "q. roo", "q roo"}},
	SanLuisPotosi:     {"San Luis Potosí", []string{"slp", "s.l.p."}},
	Sinaloa:           {"Sinaloa", []string{"sin"}},
	Sonora:            {"Sonora", []string{"son"}},
	Tabasco:           {"Tabasco", []string{"tab"}},
	Tamaulipas:        {"Tamaulipas", []string{"tamps", "tamp", "tamps."}},
	Tlaxcala:          {"Tlaxcala", []string{"tlax"}},
	Veracruz:          {"Veracruz", []string{"ver", "veracruz de ignacio de la llave"}},
	Yucatan:           {"Yucatán", []string{"yuc"}},
	Zacatecas:         {"Zacatecas", []string{"zac"}},
}

// stateAliases maps a normalized alias to its state. Read-only after init.
var stateAliases = buildStateAliases()

func buildStateAliases() map[string]State {
	aliases := make(map[string]State, int(stateCount)*4)
	add := func(alias string, s State) {
		key := Normalize(alias)
		if key == "" {
			panic(fmt.Sprintf("places: empty alias for state %d", s))
		}
		if prev, ok := aliases[key]; ok && prev != s {
			panic(fmt.Sprintf("places: alias %q maps to both %q and %q", key, stateTable[prev].name, stateTable[s].name))
		}
		aliases[key] = s
	}
	for s := StateUnknown + 1; s < stateCount; s++ {
		info := stateTable[s]
		if info.name == "" {
			panic(fmt.Sprintf("places: state %d has no canonical name", s))
		}
		add(info.name, s)
		for _, a := range info.aliases {
			add(a, s)
		}
	}
	return aliases
}

// ResolveState maps a raw state name or alias to its canonical State.
func ResolveState(raw string) (State, bool) {
	key := Normalize(raw)
	if key == "" {
		return StateUnknown, false
	}
	s, ok := stateAliases[key]
	return s, ok
}

// States lists every canonical state in declaration order.
func States() []State {
	out := make([]State, 0, stateCount-1)
	for s := StateUnknown + 1; s < stateCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s State) Valid() bool {
	return s > StateUnknown && s < stateCount
}

// String returns the canonical display name.
func (s State) String() string {
	if !s.Valid() {
		return ""
	}
	return stateTable[s].name
}

// Normalized returns the lookup form of the canonical name.
func (s State) Normalized() string {
	return Normalize(s.String())
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = StateUnknown
		return nil
	}
	v, ok := ResolveState(string(text))
	if !ok {
		return fmt.Errorf("unknown state %q", string(text))
	}
	*s = v
	return nil
}
