package forge

import (
	"fmt"
	"strings"
)

// DieSize is a polyhedral die attribute value. Stored in its uppercase
// enumeration form, displayed lowercase (d6).
type DieSize string

// Die sizes
const (
	DieD4  DieSize = "D4"
	DieD6  DieSize = "D6"
	DieD8  DieSize = "D8"
	DieD10 DieSize = "D10"
	DieD12 DieSize = "D12"
)

// Faces returns the die's face count, or 0 for an invalid size
func (d DieSize) Faces() int {
	switch d {
	case DieD4:
		return 4
	case DieD6:
		return 6
	case DieD8:
		return 8
	case DieD10:
		return 10
	case DieD12:
		return 12
	default:
		return 0
	}
}

// Display returns the lowercase display form, e.g. "d6"
func (d DieSize) Display() string {
	return strings.ToLower(string(d))
}

// IsValid reports whether the size is one of the known dice
func (d DieSize) IsValid() bool {
	return d.Faces() != 0
}

// ParseDieSize normalizes a die size from user input in either case
func ParseDieSize(s string) (DieSize, error) {
	d := DieSize(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("unknown die size %q", s)
	}
	return d, nil
}
