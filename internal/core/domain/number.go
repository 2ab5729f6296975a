package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Number is a numeric amount that tolerates malformed input. Counters and
// budgets arrive from clients and storage in inconsistent shapes (numbers,
// formatted strings like "1,200abc", null) and must never propagate NaN into
// aggregation, so any value that cannot be parsed coerces to zero.
type Number float64

var nonNumeric = regexp.MustCompile(`[^0-9.\-]+`)

// coerceString strips everything except digits, '.' and '-' from s and
// parses the remainder as a float. Unparseable or non-finite results
// coerce to zero.
func coerceString(s string) float64 {
	f, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(s, ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Float returns the underlying float64 value.
func (n Number) Float() float64 { return float64(n) }

// UnmarshalJSON accepts JSON numbers, strings containing a number with
// arbitrary junk characters, and anything else as zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	switch t := v.(type) {
	case float64:
		*n = Number(t)
	case string:
		*n = Number(coerceString(t))
	default:
		*n = 0
	}
	return nil
}

// Scan implements sql.Scanner with the same coercion rules as UnmarshalJSON.
func (n *Number) Scan(src any) error {
	switch t := src.(type) {
	case nil:
		*n = 0
	case int64:
		*n = Number(t)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			*n = 0
		} else {
			*n = Number(t)
		}
	case string:
		*n = Number(coerceString(t))
	case []byte:
		*n = Number(coerceString(string(t)))
	default:
		return fmt.Errorf("cannot scan %T into Number", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (n Number) Value() (driver.Value, error) {
	return float64(n), nil
}
