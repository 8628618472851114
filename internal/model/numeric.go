package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseExternalNumber normalizes the numeric shapes that arrive from
// external systems into a plain float64. Accepted shapes:
//
//   - float64 / float32 / int variants
//   - a numeric string ("12.5")
//   - a decimal wrapper map: {"$numberDecimal": "12.5"}
//
// Database exports wrap decimals in the $numberDecimal envelope; string
// values are parsed through shopspring/decimal so long decimal literals
// survive without binary-float parsing quirks. All this duck-typing lives
// here so the engine only ever sees a typed float.
func ParseExternalNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return checkFinite(n)
	case float32:
		return checkFinite(float64(n))
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return parseNumericString(n.String())
	case string:
		return parseNumericString(n)
	case map[string]any:
		raw, ok := n["$numberDecimal"]
		if !ok {
			return 0, fmt.Errorf("object is not a decimal wrapper (missing $numberDecimal)")
		}
		s, ok := raw.(string)
		if !ok {
			return 0, fmt.Errorf("$numberDecimal value is %T, expected string", raw)
		}
		return parseNumericString(s)
	case nil:
		return 0, fmt.Errorf("numeric value is missing")
	default:
		return 0, fmt.Errorf("unsupported numeric type %T", v)
	}
}

func parseNumericString(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("numeric value is empty")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a number: %w", s, err)
	}
	return checkFinite(d.InexactFloat64())
}

func checkFinite(f float64) (float64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("value %v is not a finite number", f)
	}
	return f, nil
}

// UnmarshalJSON accepts the length field as a plain number, a numeric
// string, or a $numberDecimal wrapper, so catalogues exported straight
// from a document database load without a cleanup pass.
func (s *StandardLength) UnmarshalJSON(data []byte) error {
	var raw struct {
		Length   any     `json:"length"`
		Unit     string  `json:"unit"`
		LengthIn float64 `json:"length_in_inches"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	length, err := ParseExternalNumber(raw.Length)
	if err != nil {
		return fmt.Errorf("standard length: %w", err)
	}
	s.Length = length
	s.Unit = raw.Unit
	s.LengthIn = raw.LengthIn
	return nil
}
