// Package psionics expands a character's discipline skill levels into an
// effort pool and chosen techniques.
package psionics

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

// Powers is the character-owned psychic power set. Each technique list
// starts with the discipline's core technique.
type Powers struct {
	EffortPool  int
	Disciplines map[string][]ruleset.Technique
}

// EffortPool returns 1 + the highest discipline level + max(0, modifier).
func EffortPool(levels map[string]int, modifier int) int {
	highest := 0
	for _, l := range levels {
		highest = max(highest, l)
	}
	return 1 + highest + max(0, modifier)
}

// Lookup resolves a discipline by name.
type Lookup func(name string) (*ruleset.Discipline, bool)

// Builder chooses techniques.
type Builder struct {
	lookup Lookup
	roller *dice.Roller
	logger *zap.Logger
}

// NewBuilder creates a Builder.
//
// Precondition: lookup, roller and logger must be non-nil.
func NewBuilder(lookup Lookup, roller *dice.Roller, logger *zap.Logger) *Builder {
	if lookup == nil || roller == nil || logger == nil {
		panic("psionics.NewBuilder: precondition violated: nil argument")
	}
	return &Builder{lookup: lookup, roller: roller, logger: logger}
}

// Build grants each held discipline (level >= 0) its core technique, then
// walks levels 1..level choosing one unchosen technique per step: one
// required at exactly that step if any, else one at or below it. A step with
// no candidate grants nothing.
//
// Postcondition: no technique appears twice within one discipline.
func (b *Builder) Build(levels map[string]int, modifier int) *Powers {
	held := make(map[string]int, len(levels))
	names := make([]string, 0, len(levels))
	for n, l := range levels {
		if l >= 0 {
			held[n] = l
			names = append(names, n)
		}
	}
	// Deterministic iteration keeps seeded runs reproducible.
	sort.Strings(names)

	p := &Powers{
		EffortPool:  EffortPool(held, modifier),
		Disciplines: make(map[string][]ruleset.Technique, len(names)),
	}
	for _, name := range names {
		d, ok := b.lookup(name)
		if !ok {
			b.logger.Debug("unknown discipline skipped", zap.String("discipline", name))
			continue
		}
		chosen := []ruleset.Technique{d.CoreTechnique}
		for step := 1; step <= held[name]; step++ {
			t, ok := b.pick(d, step, chosen)
			if !ok {
				b.logger.Debug("no technique for step",
					zap.String("discipline", d.Name),
					zap.Int("step", step),
				)
				continue
			}
			chosen = append(chosen, t)
		}
		p.Disciplines[d.Name] = chosen
	}
	return p
}

func (b *Builder) pick(d *ruleset.Discipline, step int, chosen []ruleset.Technique) (ruleset.Technique, bool) {
	taken := func(t ruleset.Technique) bool {
		for _, c := range chosen {
			if c.Name == t.Name {
				return true
			}
		}
		return false
	}
	var exact, lower []ruleset.Technique
	for _, t := range d.Techniques {
		if taken(t) || t.Level > step {
			continue
		}
		if t.Level == step {
			exact = append(exact, t)
		} else {
			lower = append(lower, t)
		}
	}
	switch {
	case len(exact) > 0:
		return dice.Pick(b.roller, exact), true
	case len(lower) > 0:
		return dice.Pick(b.roller, lower), true
	default:
		return ruleset.Technique{}, false
	}
}
