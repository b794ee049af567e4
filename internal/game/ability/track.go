// Package ability builds the special-ability sets of the track classes
// (Sunblade, Godhunter, Yama King, Free Nexus) through one engine
// parameterised by each track's reference data and formulas.
package ability

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

// Set is the character-owned ability set of one track.
type Set struct {
	Track          ruleset.TrackID
	Name           string
	CharacterLevel int
	SkillLevel     int
	Automatic      []ruleset.Ability
	Gated          []ruleset.Ability
	SacredWeapon   *ruleset.SacredWeapon
	Stats          Stats
}

// Abilities returns the automatic abilities followed by the gated ones.
func (s *Set) Abilities() []ruleset.Ability {
	out := make([]ruleset.Ability, 0, len(s.Automatic)+len(s.Gated))
	out = append(out, s.Automatic...)
	return append(out, s.Gated...)
}

// Builder builds ability sets.
type Builder struct {
	roller *dice.Roller
	logger *zap.Logger
}

// NewBuilder creates a Builder.
//
// Precondition: roller and logger must be non-nil.
func NewBuilder(roller *dice.Roller, logger *zap.Logger) *Builder {
	if roller == nil || logger == nil {
		panic("ability.NewBuilder: precondition violated: nil argument")
	}
	return &Builder{roller: roller, logger: logger}
}

// Build grants def's automatic tier, then its gated tier by def.Gating, draws
// a sacred weapon when the track has any, and evaluates the track formulas.
//
// Precondition: def must be non-nil and in.Level >= 1.
// Postcondition: no gated ability appears twice.
func (b *Builder) Build(def *ruleset.TrackDef, in Input) *Set {
	s := &Set{
		Track:          def.Track,
		Name:           def.Name,
		CharacterLevel: in.Level,
		SkillLevel:     in.SkillLevel,
		Automatic:      append([]ruleset.Ability(nil), def.Automatic...),
	}

	switch def.Gating {
	case ruleset.GatingTagged:
		for _, a := range def.Gated {
			if a.Level <= in.Level {
				s.Gated = append(s.Gated, a)
			}
		}
	default:
		want := EvenLevels(in.Level)
		s.Gated = dice.Sample(b.roller, def.Gated, want)
		if len(s.Gated) < want {
			b.logger.Debug("gated ability pool exhausted",
				zap.String("track", string(def.Track)),
				zap.Int("wanted", want),
				zap.Int("got", len(s.Gated)),
			)
		}
	}

	if len(def.SacredWeapons) > 0 {
		w := dice.Pick(b.roller, def.SacredWeapons)
		s.SacredWeapon = &w
	}

	if f, ok := formulas[def.Track]; ok {
		s.Stats = f(in, len(s.Gated))
	}
	return s
}
