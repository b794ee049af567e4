package ruleset

import (
	"errors"
	"fmt"
)

// FocusTier orders focus power.
type FocusTier string

const (
	TierBasic    FocusTier = "basic"
	TierAdvanced FocusTier = "advanced"
	TierExotic   FocusTier = "exotic"
)

// PowerLevel selects which focus tiers are available to generation.
type PowerLevel string

const (
	FocusWeak   PowerLevel = "weak"
	FocusNormal PowerLevel = "normal"
	FocusStrong PowerLevel = "strong"
)

// Tiers returns the focus tiers p permits.
// Postcondition: unknown levels behave as FocusNormal.
func (p PowerLevel) Tiers() []FocusTier {
	switch p {
	case FocusWeak:
		return []FocusTier{TierBasic}
	case FocusStrong:
		return []FocusTier{TierBasic, TierAdvanced, TierExotic}
	default:
		return []FocusTier{TierBasic, TierAdvanced}
	}
}

// ValidPowerLevel reports whether p names a known power level.
func ValidPowerLevel(p PowerLevel) bool {
	return p == FocusWeak || p == FocusNormal || p == FocusStrong
}

// FocusDef is a reference-table focus template. Characters never hold a
// FocusDef directly; they hold a focus instance pointing at one.
type FocusDef struct {
	Name             string    `yaml:"name"`
	Tier             FocusTier `yaml:"tier"`
	Level1           string    `yaml:"level_1"`
	Level2           string    `yaml:"level_2"`
	IncompatibleWith []string  `yaml:"incompatible_with"`
	PsychicOnly      bool      `yaml:"psychic_only"`
	Combat           bool      `yaml:"combat"`
	AllowedClasses   []string  `yaml:"allowed_classes"` // empty = unrestricted
}

// Excludes reports whether f names other in its incompatibility list.
func (f *FocusDef) Excludes(other string) bool {
	key := foldKey(other)
	for _, n := range f.IncompatibleWith {
		if foldKey(n) == key {
			return true
		}
	}
	return false
}

// AllowsClass reports whether class may take f.
func (f *FocusDef) AllowsClass(class string) bool {
	if len(f.AllowedClasses) == 0 {
		return true
	}
	key := foldKey(class)
	for _, c := range f.AllowedClasses {
		if foldKey(c) == key {
			return true
		}
	}
	return false
}

// Validate reports every problem with the focus record.
func (f *FocusDef) Validate() error {
	var errs []error
	if f.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	switch f.Tier {
	case TierBasic, TierAdvanced, TierExotic:
	default:
		errs = append(errs, fmt.Errorf("tier %q must be one of [basic, advanced, exotic]", f.Tier))
	}
	if f.Level1 == "" {
		errs = append(errs, errors.New("level_1 must not be empty"))
	}
	return validationErr("focus "+f.Name, errs)
}
