package engine

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies what sort of value a context entry holds
type Kind int

// Value kinds
const (
	// KindUnset is the zero value; it renders as the unresolved placeholder
	KindUnset Kind = iota
	KindNumber
	KindText
	KindDie
)

// Value is a single context entry: a number, a die size, or free text.
// The zero Value is unset and always renders as the unresolved placeholder.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Number creates a numeric value
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int creates a numeric value from an integer
func Int(n int) Value {
	return Value{kind: KindNumber, num: float64(n)}
}

// Text creates a free-text value, substituted verbatim
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Die creates a die-size value from a face count (e.g. 6 for a d6)
func Die(faces int) Value {
	return Value{kind: KindDie, num: float64(faces)}
}

// Kind returns the value's kind
func (v Value) Kind() Kind {
	return v.kind
}

// Num returns the numeric value for KindNumber values
func (v Value) Num() float64 {
	return v.num
}

// Faces returns the face count for KindDie values
func (v Value) Faces() int {
	return int(v.num)
}

// Str returns the text for KindText values
func (v Value) Str() string {
	return v.text
}

// Numeric returns the value usable in arithmetic (the number itself, or a
// die's face count) and whether the value is numeric at all.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindNumber, KindDie:
		return v.num, true
	default:
		return 0, false
	}
}

// MarshalJSON serializes numbers as JSON numbers, die sizes as their
// uppercase enumeration form ("D6"), text verbatim, and unset as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindDie:
		return json.Marshal(fmt.Sprintf("D%d", int(v.num)))
	case KindText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts JSON numbers, die-size strings ("D6" or "d6"),
// arbitrary strings, and null (which leaves the value unset).
func (v *Value) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*v = Value{}
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = Number(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("context values must be numbers, strings, or null: %w", err)
	}

	if faces, ok := parseDie(s); ok {
		*v = Die(faces)
		return nil
	}

	*v = Text(s)
	return nil
}

// parseDie recognizes the die-size enumeration in either case
func parseDie(s string) (int, bool) {
	if len(s) < 2 || (s[0] != 'D' && s[0] != 'd') {
		return 0, false
	}
	faces, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, false
	}
	switch faces {
	case 4, 6, 8, 10, 12:
		return faces, true
	default:
		return 0, false
	}
}

// Context maps token names to their values for a single render call.
// It is built fresh per call and never mutated by the engine.
type Context map[string]Value

// Clone returns a copy the caller can extend without mutating the original
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
