package ability_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/swngen/internal/game/ability"
	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

func newBuilder(seed uint64) *ability.Builder {
	return ability.NewBuilder(dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop()), zap.NewNop())
}

func evenTrack(id ruleset.TrackID, pool int) *ruleset.TrackDef {
	def := &ruleset.TrackDef{
		Track:     id,
		Name:      string(id),
		Gating:    ruleset.GatingEvenLevels,
		Automatic: []ruleset.Ability{{Name: "Auto A"}, {Name: "Auto B"}},
	}
	for i := 0; i < pool; i++ {
		def.Gated = append(def.Gated, ruleset.Ability{Name: fmt.Sprintf("Gift %d", i)})
	}
	return def
}

func taggedTrack(id ruleset.TrackID) *ruleset.TrackDef {
	def := &ruleset.TrackDef{
		Track:     id,
		Name:      string(id),
		Gating:    ruleset.GatingTagged,
		Automatic: []ruleset.Ability{{Name: "Auto"}},
	}
	for l := 2; l <= 10; l++ {
		def.Gated = append(def.Gated, ruleset.Ability{Name: fmt.Sprintf("Rank %d", l), Level: l})
	}
	return def
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2, 2, 3}, []int{ability.HalfUp(1), ability.HalfUp(2), ability.HalfUp(3), ability.HalfUp(4), ability.HalfUp(5)})
	assert.Equal(t, 0, ability.OddLevels(0))
	assert.Equal(t, 1, ability.OddLevels(2))
	assert.Equal(t, 3, ability.OddLevels(6))
	assert.Equal(t, 5, ability.OddLevels(10))
	assert.Equal(t, 0, ability.EvenLevels(1))
	assert.Equal(t, 2, ability.EvenLevels(5))
	assert.Equal(t, 5, ability.EvenLevels(12))
}

func TestBuild_EvenLevels(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 10).Draw(rt, "level")
		set := newBuilder(rapid.Uint64().Draw(rt, "seed")).Build(evenTrack(ruleset.TrackFreeNexus, 8), ability.Input{Level: level})
		if len(set.Automatic) != 2 {
			rt.Fatalf("automatic tier = %d", len(set.Automatic))
		}
		if len(set.Gated) != level/2 {
			rt.Fatalf("level %d gated = %d", level, len(set.Gated))
		}
		seen := map[string]bool{}
		for _, a := range set.Gated {
			if seen[a.Name] {
				rt.Fatalf("%s granted twice", a.Name)
			}
			seen[a.Name] = true
		}
	})
}

func TestBuild_EvenLevels_PoolExhausted(t *testing.T) {
	set := newBuilder(1).Build(evenTrack(ruleset.TrackSunblade, 2), ability.Input{Level: 10})
	assert.Len(t, set.Gated, 2)
}

func TestBuild_Tagged(t *testing.T) {
	set := newBuilder(1).Build(taggedTrack(ruleset.TrackGodhunter), ability.Input{Level: 4})
	require.Len(t, set.Gated, 3)
	assert.Equal(t, "Rank 2", set.Gated[0].Name)
	assert.Equal(t, "Rank 4", set.Gated[2].Name)
	assert.Len(t, set.Abilities(), 4)
}

func TestBuild_SunbladeStats(t *testing.T) {
	def := evenTrack(ruleset.TrackSunblade, 5)
	def.SacredWeapons = []ruleset.SacredWeapon{{Type: "Sunblade Sword", Damage: "1d8"}}
	set := newBuilder(2).Build(def, ability.Input{Level: 5, SkillLevel: 2, MentalMod: 1})
	require.NotNil(t, set.SacredWeapon)
	assert.Equal(t, "Sunblade Sword", set.SacredWeapon.Type)
	assert.Equal(t, 3, set.Stats.EffortPool)
	assert.Equal(t, 3, set.Stats.HitBonus)
	assert.Equal(t, 2, set.SkillLevel)
}

func TestBuild_GodhunterStats(t *testing.T) {
	cases := []struct {
		level    int
		save, hp int
		hit      int
	}{
		{1, 0, 1, 1},
		{2, 2, 1, 1},
		{5, 2, 3, 3},
		{6, 4, 3, 3},
		{10, 4, 5, 5},
	}
	for _, c := range cases {
		set := newBuilder(3).Build(taggedTrack(ruleset.TrackGodhunter), ability.Input{Level: c.level})
		assert.Equal(t, c.save, set.Stats.SaveBonus, "level %d save", c.level)
		assert.Equal(t, c.hp, set.Stats.HPBonus, "level %d hp", c.level)
		assert.Equal(t, c.hit, set.Stats.HitBonus, "level %d hit", c.level)
		assert.Equal(t, c.hit, set.Stats.ACBonus, "level %d ac", c.level)
		assert.Equal(t, c.level, set.Stats.DamageBonus)
		assert.Nil(t, set.SacredWeapon)
	}
}

func TestBuild_FreeNexusStats(t *testing.T) {
	set := newBuilder(4).Build(evenTrack(ruleset.TrackFreeNexus, 6), ability.Input{Level: 5, MentalMod: 1})
	assert.Equal(t, 3, set.Stats.EffortPool, "two gifts + modifier")
	assert.Equal(t, "3d6", set.Stats.HealingDice)
}

func TestBuild_YamaKingStats(t *testing.T) {
	low := newBuilder(5).Build(taggedTrack(ruleset.TrackYamaKing), ability.Input{Level: 4, MentalMod: -1})
	assert.Equal(t, 3, low.Stats.EffortPool)

	high := newBuilder(5).Build(taggedTrack(ruleset.TrackYamaKing), ability.Input{Level: 5, MentalMod: 2})
	assert.Equal(t, 6, high.Stats.EffortPool)
	assert.Zero(t, high.Stats.SaveBonus)
}
