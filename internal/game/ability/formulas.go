package ability

import (
	"fmt"

	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

// Stats are the derived numbers a track contributes to a character.
type Stats struct {
	EffortPool  int
	HitBonus    int
	ACBonus     int
	HPBonus     int
	SaveBonus   int
	DamageBonus int
	HealingDice string
}

// Input carries what the formulas read from the character.
type Input struct {
	Level      int
	SkillLevel int // Sunblade skill level; ignored by other tracks
	MentalMod  int // max(WIS, CHA) modifier
}

type formula func(in Input, gated int) Stats

var formulas = map[ruleset.TrackID]formula{
	ruleset.TrackSunblade: func(in Input, _ int) Stats {
		return Stats{
			EffortPool: in.SkillLevel + in.MentalMod,
			HitBonus:   HalfUp(in.Level),
		}
	},
	ruleset.TrackGodhunter: func(in Input, _ int) Stats {
		return Stats{
			HitBonus:    HalfUp(in.Level),
			ACBonus:     HalfUp(in.Level),
			HPBonus:     OddLevels(in.Level),
			SaveBonus:   godhunterSave(in.Level),
			DamageBonus: in.Level,
		}
	},
	ruleset.TrackFreeNexus: func(in Input, gated int) Stats {
		return Stats{
			EffortPool:  gated + in.MentalMod,
			HealingDice: fmt.Sprintf("%dd6", HalfUp(in.Level)),
		}
	},
	ruleset.TrackYamaKing: func(in Input, _ int) Stats {
		return Stats{EffortPool: 1 + HalfUp(in.Level) + max(0, in.MentalMod)}
	},
}

// HalfUp returns level/2 rounded up.
func HalfUp(level int) int { return (level + 1) / 2 }

// OddLevels counts the odd levels 1, 3, 5, 7, 9 at or below level.
func OddLevels(level int) int {
	n := 0
	for l := 1; l <= min(level, 9); l += 2 {
		n++
	}
	return n
}

// EvenLevels counts the even levels 2..10 at or below level.
func EvenLevels(level int) int {
	return min(max(level, 0), 10) / 2
}

func godhunterSave(level int) int {
	switch {
	case level >= 6:
		return 4
	case level >= 2:
		return 2
	default:
		return 0
	}
}
