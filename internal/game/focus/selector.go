package focus

import (
	"slices"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

// upgradePercent is the chance a threshold pick upgrades a held level-1 focus.
const upgradePercent = 30

// Filter narrows the focus pool for one character.
type Filter struct {
	Tiers   []ruleset.FocusTier
	Psychic bool   // psychic-only foci are allowed
	Class   string // class allow-list key
}

func (f Filter) admits(def *ruleset.FocusDef) bool {
	if !slices.Contains(f.Tiers, def.Tier) {
		return false
	}
	if def.PsychicOnly && !f.Psychic {
		return false
	}
	return def.AllowsClass(f.Class)
}

// Subset further restricts candidates, e.g. to combat foci for a bonus slot.
type Subset func(*ruleset.FocusDef) bool

// All admits every focus.
func All(*ruleset.FocusDef) bool { return true }

// SubsetFor maps a class bonus-focus policy to its candidate subset.
func SubsetFor(b ruleset.BonusFocus) Subset {
	switch b {
	case ruleset.BonusFocusCombat:
		return func(d *ruleset.FocusDef) bool { return d.Combat }
	case ruleset.BonusFocusNonCombat:
		return func(d *ruleset.FocusDef) bool { return !d.Combat && !d.PsychicOnly }
	default:
		return All
	}
}

// Selector picks foci from a template pool.
type Selector struct {
	defs   []*ruleset.FocusDef
	roller *dice.Roller
	logger *zap.Logger
}

// NewSelector creates a Selector over defs.
//
// Precondition: roller and logger must be non-nil.
func NewSelector(defs []*ruleset.FocusDef, roller *dice.Roller, logger *zap.Logger) *Selector {
	if roller == nil || logger == nil {
		panic("focus.NewSelector: precondition violated: nil argument")
	}
	return &Selector{defs: defs, roller: roller, logger: logger}
}

// Candidates returns the templates admitted by f and subset that are
// compatible with every focus in held.
func (s *Selector) Candidates(f Filter, held []*Focus, subset Subset) []*ruleset.FocusDef {
	var out []*ruleset.FocusDef
	for _, d := range s.defs {
		if f.admits(d) && subset(d) && CompatibleWith(d, held) {
			out = append(out, d)
		}
	}
	return out
}

// Select returns up to count distinct, mutually compatible level-1 foci.
//
// Postcondition: len(result) <= count.
func (s *Selector) Select(count int, f Filter) []*Focus {
	var held []*Focus
	for range count {
		next, ok := s.AddNew(held, f, All)
		if !ok {
			break
		}
		held = next
	}
	return held
}

// AddNew appends one random new compatible focus from subset to held.
// Postcondition: ok is false and held is returned unchanged when no candidate exists.
func (s *Selector) AddNew(held []*Focus, f Filter, subset Subset) ([]*Focus, bool) {
	cands := s.Candidates(f, held, subset)
	if len(cands) == 0 {
		return held, false
	}
	return append(held, New(dice.Pick(s.roller, cands))), true
}

// Upgrade raises a random held level-1 focus to level 2.
// Postcondition: returns false when nothing is upgradable.
func (s *Selector) Upgrade(held []*Focus) bool {
	var open []*Focus
	for _, h := range held {
		if h.Upgradable() {
			open = append(open, h)
		}
	}
	if len(open) == 0 {
		return false
	}
	dice.Pick(s.roller, open).Level = 2
	return true
}

// Pick either upgrades a held level-1 focus (30%) or adds a new one, falling
// back to the other path when the first finds nothing.
func (s *Selector) Pick(held []*Focus, f Filter) ([]*Focus, bool) {
	if s.roller.Chance(upgradePercent) && s.Upgrade(held) {
		return held, true
	}
	if next, ok := s.AddNew(held, f, All); ok {
		return next, true
	}
	return held, s.Upgrade(held)
}

// Build fills a character's focus list: base new picks, the class bonus slot
// from its subset, then one Pick per level threshold reached. Unfilled picks
// are logged and skipped.
func (s *Selector) Build(f Filter, base, level int, bonus ruleset.BonusFocus) []*Focus {
	held := s.Select(base, f)
	if len(held) < base {
		s.logger.Debug("focus pool exhausted", zap.Int("wanted", base), zap.Int("got", len(held)))
	}
	if bonus != ruleset.BonusFocusNone {
		next, ok := s.AddNew(held, f, SubsetFor(bonus))
		if ok {
			next[len(next)-1].Bonus = true
			held = next
		} else {
			s.logger.Debug("bonus focus slot unfilled", zap.String("subset", string(bonus)))
		}
	}
	for _, t := range Thresholds {
		if level < t {
			break
		}
		next, ok := s.Pick(held, f)
		if !ok {
			s.logger.Debug("threshold focus pick unfilled", zap.Int("threshold", t))
		}
		held = next
	}
	return held
}
