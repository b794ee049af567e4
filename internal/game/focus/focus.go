// Package focus selects character foci under tier, class and
// mutual-exclusion constraints.
package focus

import (
	"strings"

	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

// Focus is a character-owned focus. Def is the shared template; Level is 1
// or 2 and belongs to this character only.
type Focus struct {
	Def   *ruleset.FocusDef
	Level int
	Bonus bool // granted by the class bonus slot
}

// New clones def into a level-1 focus.
//
// Precondition: def must be non-nil.
func New(def *ruleset.FocusDef) *Focus {
	if def == nil {
		panic("focus.New: precondition violated: nil def")
	}
	return &Focus{Def: def, Level: 1}
}

// Name returns the focus name.
func (f *Focus) Name() string { return f.Def.Name }

// Upgradable reports whether f may still advance to level 2.
func (f *Focus) Upgradable() bool { return f.Level == 1 }

// Compatible reports whether a and b may both be held as distinct foci.
// Same-name foci are never compatible; that path is an upgrade instead.
func Compatible(a, b *ruleset.FocusDef) bool {
	if strings.EqualFold(a.Name, b.Name) {
		return false
	}
	return !a.Excludes(b.Name) && !b.Excludes(a.Name)
}

// CompatibleWith reports whether def can be added next to every focus in held.
func CompatibleWith(def *ruleset.FocusDef, held []*Focus) bool {
	for _, h := range held {
		if !Compatible(def, h.Def) {
			return false
		}
	}
	return true
}

// Thresholds are the character levels that grant one additional focus pick.
var Thresholds = []int{2, 5, 7, 10}

// TotalPicks returns base + one per threshold reached + one if the class has a bonus slot.
func TotalPicks(base, level int, bonusSlot bool) int {
	n := base
	for _, t := range Thresholds {
		if level >= t {
			n++
		}
	}
	if bonusSlot {
		n++
	}
	return n
}
