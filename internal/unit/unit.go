// Package unit converts scalar quantities between measurement units.
// It supports two dimensional families (linear and area), each convertible
// only within itself through a fixed factor to a common base, plus a family
// of count-style units that convert to each other as identity.
package unit

import (
	"fmt"
	"math"
	"strings"
)

// family identifies which conversion table a unit belongs to.
type family int

const (
	familyLinear family = iota
	familyArea
	familyCount
)

func (f family) String() string {
	switch f {
	case familyLinear:
		return "linear"
	case familyArea:
		return "area"
	default:
		return "count"
	}
}

// toBase maps a unit name to its factor into the family base unit.
// The linear base is feet; the area base is square feet. Count units
// carry a factor of 1 and never scale.
var toBase = map[string]struct {
	fam    family
	factor float64
}{
	// Linear units, factor to feet
	"in":     {familyLinear, 1.0 / 12.0},
	"inch":   {familyLinear, 1.0 / 12.0},
	"inches": {familyLinear, 1.0 / 12.0},
	"ft":     {familyLinear, 1.0},
	"feet":   {familyLinear, 1.0},
	"mm":     {familyLinear, 0.00328084},
	"cm":     {familyLinear, 0.0328084},
	"m":      {familyLinear, 3.28084},

	// Area units, factor to square feet
	"sqin": {familyArea, 1.0 / 144.0},
	"sqft": {familyArea, 1.0},
	"sqmm": {familyArea, 1.0764e-5},
	"sqcm": {familyArea, 1.0764e-3},
	"sqm":  {familyArea, 10.7639},

	// Count units, identity only
	"pcs":   {familyCount, 1},
	"piece": {familyCount, 1},
	"item":  {familyCount, 1},
	"unit":  {familyCount, 1},
	"set":   {familyCount, 1},
}

// Supported reports whether the unit name is known to the converter.
func Supported(u string) bool {
	_, ok := toBase[normalize(u)]
	return ok
}

func normalize(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// Convert converts value from one unit to another. Both units must belong
// to the same family. Count units pass the value through unchanged.
// Same-unit conversion is always identity, even for unknown units.
func Convert(value float64, from, to string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("cannot convert non-finite value %v", value)
	}

	fromN, toN := normalize(from), normalize(to)
	if fromN == toN {
		return value, nil
	}

	src, ok := toBase[fromN]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	dst, ok := toBase[toN]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if src.fam != dst.fam {
		return 0, fmt.Errorf("cannot convert %s unit %q to %s unit %q", src.fam, from, dst.fam, to)
	}

	if src.fam == familyCount {
		// pcs -> set etc: no scaling between count-style units
		return value, nil
	}

	result := value * src.factor / dst.factor
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, fmt.Errorf("conversion of %v from %q to %q produced a non-finite result", value, from, to)
	}
	return result, nil
}

// ToInches converts a linear length to inches.
func ToInches(value float64, from string) (float64, error) {
	return Convert(value, from, "in")
}

// FeetToInches and InchesToFeet are the conversions the optimizer leans on
// in its inner loop; they go through the same table as everything else.
func FeetToInches(ft float64) float64 { return ft * 12.0 }

func InchesToFeet(in float64) float64 { return in / 12.0 }
