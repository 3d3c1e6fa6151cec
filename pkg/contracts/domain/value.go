package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ValueKind identifies what a cell holds
type ValueKind int

const (
	// KindEmpty is an absent cell
	KindEmpty ValueKind = iota
	// KindText is a text cell
	KindText
	// KindNumber is an integer or decimal cell
	KindNumber
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "empty"
	}
}

// Value is a single heterogeneous cell value
type Value struct {
	Kind   ValueKind
	Text   string
	Number float64
}

// Empty returns an absent value
func Empty() Value {
	return Value{Kind: KindEmpty}
}

// Text returns a text value. Empty strings are treated as absent.
func Text(s string) Value {
	if s == "" {
		return Empty()
	}
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric value
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// IsEmpty reports whether the value is absent
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// IsText reports whether the value holds text
func (v Value) IsText() bool {
	return v.Kind == KindText
}

// IsNumber reports whether the value holds a number
func (v Value) IsNumber() bool {
	return v.Kind == KindNumber
}

// String renders the raw value the way it was supplied
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes empty as null, text as a string and numbers as numbers.
// Non-finite numbers have no JSON form and are encoded as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindText:
		return json.Marshal(v.Text)
	case KindNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.Number)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes null and "" to empty, strings to text, numbers to
// numbers and booleans to their text form.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Empty()
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode text cell: %w", err)
		}
		*v = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return fmt.Errorf("decode boolean cell: %w", err)
		}
		*v = Text(strconv.FormatBool(b))
	default:
		var f float64
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("decode numeric cell: %w", err)
		}
		*v = Number(f)
	}
	return nil
}
