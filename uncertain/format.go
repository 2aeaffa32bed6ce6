package uncertain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// scientific notation kicks in outside [10^-6, 10^3) error magnitudes
const (
	maxFixedPlaces = 6
	minFixedPlaces = -3
)

// String formats the value as "nominal ± stddev". The error is rounded to
// one significant digit and the nominal value to the same decimal place.
// Very large or small magnitudes use a shared exponent: "(8.1 ± 0.2)e+10".
// Exact values print the nominal value alone.
func (v Value) String() string {
	nom, sd, exp, ok := v.parts()
	if !ok {
		return strconv.FormatFloat(v.nominal, 'g', -1, 64)
	}
	if exp == 0 {
		return nom + " ± " + sd
	}

	return fmt.Sprintf("(%s ± %s)e%+03d", nom, sd, exp)
}

// LaTeX formats the value for a LaTeX table cell, e.g. "$2.0 \pm 0.1$".
func (v Value) LaTeX() string {
	nom, sd, exp, ok := v.parts()
	if !ok {
		return "$" + strconv.FormatFloat(v.nominal, 'g', -1, 64) + "$"
	}
	if exp == 0 {
		return "$" + nom + ` \pm ` + sd + "$"
	}

	return fmt.Sprintf(`$(%s \pm %s) \times 10^{%d}$`, nom, sd, exp)
}

// Percent formats the relative error as a percentage with two decimals.
func (v Value) Percent() string {
	return strconv.FormatFloat(v.RelativeError()*100, 'f', 2, 64) + "%"
}

// parts returns the rounded nominal and error strings and the shared decimal
// exponent. ok is false when there is no finite, non-zero error to round to.
func (v Value) parts() (nom, sd string, exp int, ok bool) {
	if v.stddev == 0 || math.IsInf(v.stddev, 0) || math.IsNaN(v.stddev) ||
		math.IsInf(v.nominal, 0) || math.IsNaN(v.nominal) {
		return "", "", 0, false
	}

	if place := decimalPlace(v.stddev); place <= maxFixedPlaces && place >= minFixedPlaces {
		nom, sd, _ = roundPair(v.nominal, v.stddev)
		return nom, sd, 0, true
	}

	// shared exponent of the larger magnitude
	exp = int(math.Floor(math.Log10(math.Max(math.Abs(v.nominal), v.stddev))))
	nom, sd, carried := roundPair(scaleDown(v.nominal, exp), scaleDown(v.stddev, exp))
	if carried {
		// 9.96 rounds to 10; move the digit into the exponent
		exp++
		nom, sd, _ = roundPair(scaleDown(v.nominal, exp), scaleDown(v.stddev, exp))
	}

	return nom, sd, exp, true
}

// roundPair rounds stddev to one significant digit and nominal to the same
// decimal place. carried reports that either rounded value reached 10.
func roundPair(nominal, stddev float64) (nom, sd string, carried bool) {
	place := decimalPlace(stddev)
	dn, ds := decimal.NewFromFloat(nominal), decimal.NewFromFloat(stddev)
	rounded := ds.Round(int32(place))
	// 0.096 rounds to 0.10; keep a single significant digit
	if rounded.GreaterThanOrEqual(decimal.New(1, int32(1-place))) {
		place--
		rounded = ds.Round(int32(place))
	}

	roundedNom := dn.Round(int32(place))
	ten := decimal.New(10, 0)
	carried = roundedNom.Abs().GreaterThanOrEqual(ten) || rounded.GreaterThanOrEqual(ten)

	if place > 0 {
		return dn.StringFixed(int32(place)), rounded.StringFixed(int32(place)), carried
	}

	return roundedNom.String(), rounded.String(), carried
}

func scaleDown(x float64, exp int) float64 {
	return x / math.Pow(10, float64(exp))
}

// decimalPlace returns the number of decimal places that keeps the first
// significant digit of x; negative for x >= 10.
func decimalPlace(x float64) int {
	return -int(math.Floor(math.Log10(math.Abs(x))))
}
