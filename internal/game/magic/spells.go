// Package magic builds a spellcaster's known spells and daily slots from a
// tradition's catalog and progression regime.
package magic

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

// SpellList is the character-owned spell set.
type SpellList struct {
	Tradition string
	Spells    []ruleset.Spell
	Slots     map[int]int
}

// Known returns the known spells of one spell level.
func (l *SpellList) Known(level int) []ruleset.Spell {
	var out []ruleset.Spell
	for _, s := range l.Spells {
		if s.Level == level {
			out = append(out, s)
		}
	}
	return out
}

// Builder draws spells.
type Builder struct {
	roller *dice.Roller
	logger *zap.Logger
}

// NewBuilder creates a Builder.
//
// Precondition: roller and logger must be non-nil.
func NewBuilder(roller *dice.Roller, logger *zap.Logger) *Builder {
	if roller == nil || logger == nil {
		panic("magic.NewBuilder: precondition violated: nil argument")
	}
	return &Builder{roller: roller, logger: logger}
}

// Build returns the spell list of a character of the given level in tradition t.
// Magister traditions follow the fixed known/slots table; Arcanists roll their
// known count per spell level and take slots from the slots-only table.
//
// Precondition: t must be non-nil.
// Postcondition: per spell level, known spells never exceed the catalog pool.
func (b *Builder) Build(t *ruleset.Tradition, level int) *SpellList {
	l := &SpellList{Tradition: t.Name, Slots: make(map[int]int)}

	known := make(map[int]int)
	if t.Regime == ruleset.RegimeArcanist {
		lo, hi := ArcanistKnownRange(level)
		slots := ArcanistSlots(level)
		// Roll in spell-level order so seeded runs replay exactly.
		for sl := 1; sl <= ruleset.MaxSpellLevel; sl++ {
			if n, ok := slots[sl]; ok {
				l.Slots[sl] = n
				known[sl] = b.roller.Between(lo, hi)
			}
		}
	} else {
		for sl, p := range MagisterProgression(level) {
			l.Slots[sl] = p.Slots
			known[sl] = p.Known
		}
	}

	levels := make([]int, 0, len(known))
	for sl := range known {
		levels = append(levels, sl)
	}
	sort.Ints(levels)
	for _, sl := range levels {
		pool := t.Pool(sl)
		picked := dice.Sample(b.roller, pool, known[sl])
		if len(picked) < known[sl] {
			b.logger.Debug("spell pool smaller than known count",
				zap.String("tradition", t.Name),
				zap.Int("spell_level", sl),
				zap.Int("known", known[sl]),
				zap.Int("pool", len(pool)),
			)
		}
		sort.Slice(picked, func(i, j int) bool { return picked[i].Name < picked[j].Name })
		l.Spells = append(l.Spells, picked...)
	}
	return l
}
