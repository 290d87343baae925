// README: Money helpers shared across modules (currency code, minor-unit rounding).
package types

import (
	"math"
	"strconv"
	"strings"
)

// CurrencyMXN is the only currency quoted; amounts are never converted.
const CurrencyMXN = "MXN"

// Cents is an amount in minor units.
type Cents int64

// ToCents rounds v to the nearest cent, half away from zero.
func ToCents(v float64) Cents {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	whole, frac, _ := strings.Cut(s, ".")
	frac += "000"

	w, _ := strconv.ParseInt(whole, 10, 64)
	c := w*100 + int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	if frac[2] >= '5' {
		c++
	}
	if neg {
		c = -c
	}
	return Cents(c)
}

// Float converts back to major units.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

// MulPercent returns c*pct/100 rounded to the cent, half away from zero.
// The product stays in integers so x.xx5 results round the way they read.
func (c Cents) MulPercent(pct int64) Cents {
	p := int64(c) * pct
	if p < 0 {
		return -Cents((-p + 50) / 100)
	}
	return Cents((p + 50) / 100)
}

// Round2 rounds to two decimal places, half away from zero, on the shortest
// decimal form of v.
func Round2(v float64) float64 {
	return ToCents(v).Float()
}
