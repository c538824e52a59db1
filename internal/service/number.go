package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Number accepts a JSON number or a numeric string, tracking whether the
// field was present and whether it parsed. Clients submit quantities from
// form inputs, so "3" and 3 must both work and "abc" must be reportable as
// invalid rather than silently zero.
type Number struct {
	set   bool
	valid bool
	value float64
}

// UnmarshalJSON never returns an error: an unparsable value is recorded as
// present-but-invalid so the service can answer with InvalidQuantity instead
// of a generic body-parse failure.
func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			n.set = true
			return nil
		}
		if strings.TrimSpace(str) == "" {
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			n.set = true
			return nil
		}
		n.set, n.valid, n.value = true, true, f
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		n.set = true
		return nil
	}
	n.set, n.valid, n.value = true, true, f
	return nil
}

// Present reports whether the field appeared in the request body.
func (n Number) Present() bool { return n.set }

// Invalid reports a value that was supplied but did not parse as a number.
func (n Number) Invalid() bool { return n.set && !n.valid }

// Value returns the parsed number, zero when absent or invalid.
func (n Number) Value() float64 {
	if !n.valid {
		return 0
	}
	return n.value
}

// Or returns the parsed value, or fallback when the field is absent, invalid
// or zero.
func (n Number) Or(fallback float64) float64 {
	if !n.valid || n.value == 0 {
		return fallback
	}
	return n.value
}

// NumberOf builds a valid Number, used by tests and internal callers.
func NumberOf(v float64) Number {
	return Number{set: true, valid: true, value: v}
}
