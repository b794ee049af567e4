package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// ArmorClass is a parsed "ac" property. A shield written "13/+1 bonus" is a
// composite: Base is the minimum AC it grants and Bonus is added to the
// wearer's existing AC. A plain number has Composite false and Bonus 0.
type ArmorClass struct {
	Base      int
	Bonus     int
	Composite bool
}

// ParseArmorClass parses "16", "13/+1 bonus" or "13/+1".
// Postcondition: an empty string parses as base 10.
func ParseArmorClass(s string) (ArmorClass, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ArmorClass{Base: 10}, nil
	}
	base, rest, composite := strings.Cut(s, "/")
	n, err := strconv.Atoi(strings.TrimSpace(base))
	if err != nil {
		return ArmorClass{}, fmt.Errorf("armor class %q: %w", s, err)
	}
	ac := ArmorClass{Base: n, Composite: composite}
	if composite {
		rest = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest), "bonus"))
		b, err := strconv.Atoi(strings.TrimPrefix(rest, "+"))
		if err != nil {
			return ArmorClass{}, fmt.Errorf("armor class %q: bonus: %w", s, err)
		}
		ac.Bonus = b
	}
	return ac, nil
}

// Apply returns the wearer's AC after adding this shield to current.
func (a ArmorClass) Apply(current int) int {
	if a.Composite {
		return max(a.Base, current+a.Bonus)
	}
	return max(current, a.Base)
}

// IsShield reports whether e occupies the shield slot.
func (e *Equipment) IsShield() bool { return e.Category == CategoryShield }

// ArmorClass parses e's "ac" property. Malformed values yield base 10.
func (e *Equipment) ArmorClass() ArmorClass {
	ac, err := ParseArmorClass(e.Prop("ac"))
	if err != nil {
		return ArmorClass{Base: 10}
	}
	return ac
}
