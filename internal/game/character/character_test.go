package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/swngen/internal/game/ability"
	"github.com/cory-johannsen/swngen/internal/game/character"
	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/focus"
	"github.com/cory-johannsen/swngen/internal/game/inventory"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
	"github.com/cory-johannsen/swngen/internal/game/skill"
)

func newRoller(seed uint64) *dice.Roller {
	return dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop())
}

func TestModifier_Boundaries(t *testing.T) {
	cases := map[int]int{3: -2, 4: -1, 7: -1, 8: 0, 13: 0, 14: 1, 17: 1, 18: 2}
	for score, want := range cases {
		assert.Equal(t, want, character.Modifier(score), "score %d", score)
	}
}

func TestModifier_Monotone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(-5, 25).Draw(rt, "a")
		b := rapid.IntRange(a, 25).Draw(rt, "b")
		if character.Modifier(a) > character.Modifier(b) {
			rt.Fatalf("Modifier(%d)=%d > Modifier(%d)=%d", a, character.Modifier(a), b, character.Modifier(b))
		}
	})
}

func TestParseMethod(t *testing.T) {
	m, err := character.ParseMethod(" Array ")
	require.NoError(t, err)
	assert.Equal(t, character.MethodArray, m)
	_, err = character.ParseMethod("point-buy")
	assert.Error(t, err)
}

func TestRollAbilities_Array(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := character.RollAbilities(character.MethodArray, newRoller(rapid.Uint64().Draw(rt, "seed")))
		counts := map[int]int{}
		for _, v := range a.Values() {
			counts[v]++
		}
		want := map[int]int{14: 1, 12: 1, 11: 1, 10: 1, 9: 1, 7: 1}
		if len(counts) != len(want) {
			rt.Fatalf("got %v", a.Values())
		}
		for k, n := range want {
			if counts[k] != n {
				rt.Fatalf("got %v", a.Values())
			}
		}
	})
}

// scripted replays fixed Intn results.
type scripted struct {
	vals []int
	i    int
}

func (s *scripted) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestRollAbilities_Roll_FirstMinimumBecomes14(t *testing.T) {
	// Each 3d6 consumes three Intn(6) draws; die value is draw+1.
	src := &scripted{vals: []int{
		5, 5, 5, // 18
		0, 0, 1, // 4
		2, 2, 2, // 9
		0, 0, 1, // 4 (tie, later)
		3, 3, 3, // 12
		4, 4, 4, // 15
	}}
	a := character.RollAbilities(character.MethodRoll, dice.NewLoggedRoller(src, zap.NewNop()))
	assert.Equal(t, [6]int{18, 14, 9, 4, 12, 15}, a.Values())
}

func TestRollAbilities_Roll_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		raw := [6]int{}
		r := newRoller(seed)
		for i := range raw {
			raw[i] = r.ThreeD6()
		}
		low := 0
		for i, v := range raw {
			if v < raw[low] {
				low = i
			}
		}
		got := character.RollAbilities(character.MethodRoll, newRoller(seed)).Values()
		for i := range got {
			want := raw[i]
			if i == low {
				want = 14
			}
			if got[i] != want {
				rt.Fatalf("slot %d: got %d want %d (raw %v)", i, got[i], want, raw)
			}
		}
	})
}

func TestComputeSaves_LevelOneZeroMods(t *testing.T) {
	flat := character.FromValues([6]int{10, 10, 10, 10, 10, 10})
	s := character.ComputeSaves(1, flat)
	assert.Equal(t, character.SavingThrows{Physical: 15, Evasion: 15, Mental: 15}, s)
}

func TestComputeSaves_BestModifier(t *testing.T) {
	a := character.FromValues([6]int{18, 7, 14, 10, 3, 13})
	s := character.ComputeSaves(3, a)
	assert.Equal(t, 16-3-2, s.Physical)
	assert.Equal(t, 16-3-0, s.Evasion)
	assert.Equal(t, 16-3-0, s.Mental)
}

func TestRollHP_Floor(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 10).Draw(rt, "level")
		con := rapid.IntRange(-2, 2).Draw(rt, "con")
		bonus := rapid.IntRange(-2, 2).Draw(rt, "bonus")
		hp := character.RollHP(level, bonus, con, newRoller(rapid.Uint64().Draw(rt, "seed")))
		if hp < level {
			rt.Fatalf("hp %d < level %d", hp, level)
		}
	})
}

func armor(ac any, cat string) *inventory.Equipment {
	return &inventory.Equipment{Name: "x", Category: cat, Properties: map[string]any{"ac": ac}}
}

func TestArmorClass_Examples(t *testing.T) {
	body := armor(16, inventory.CategoryCombatArmor)
	assert.Equal(t, 17, character.ArmorClass(body, nil, 1))
	assert.Equal(t, 19, character.ArmorClass(body, armor("16/+2 bonus", inventory.CategoryShield), 1))
	assert.Equal(t, 16, character.ArmorClass(nil, armor("16/+2 bonus", inventory.CategoryShield), -1))
	assert.Equal(t, 14, character.ArmorClass(nil, armor(14, inventory.CategoryShield), 0))
	assert.Equal(t, 9, character.ArmorClass(nil, nil, -1))
}

func TestAttackBonus(t *testing.T) {
	assert.Equal(t, 5, character.AttackBonus(1, 5))
	assert.Zero(t, character.AttackBonus(0, 10))
}

func TestClampLevel(t *testing.T) {
	assert.Equal(t, 1, character.ClampLevel(-3))
	assert.Equal(t, 10, character.ClampLevel(15))
	assert.Equal(t, 4, character.ClampLevel(4))
}

func TestCharacter_Sheet(t *testing.T) {
	skills := skill.NewSet()
	skills.Add("Shoot", 1)
	skills.Add("Notice", 0)
	c := &character.Character{
		ID:         "abc",
		Name:       "Mara Voss",
		Level:      2,
		Class:      &ruleset.Class{Name: "Godhunter", PowerType: ruleset.PowerNormal},
		Background: &ruleset.Background{Name: "Soldier"},
		Attributes: character.FromValues([6]int{14, 12, 11, 10, 9, 7}),
		Skills:     skills,
		Foci:       []*focus.Focus{{Def: &ruleset.FocusDef{Name: "Armsman", Tier: ruleset.TierBasic, Level1: "a", Level2: "b", Combat: true}, Level: 1, Bonus: true}},
		Abilities: &ability.Set{
			Track:     ruleset.TrackGodhunter,
			Automatic: []ruleset.Ability{{Name: "True Hand"}},
			Stats:     ability.Stats{ACBonus: 1, HitBonus: 1},
		},
		HP:          9,
		Saves:       character.SavingThrows{Physical: 13, Evasion: 14, Mental: 14},
		AttackBonus: 2,
		Equipment:   &inventory.EquipmentSet{Armor: armor(13, inventory.CategoryStreetArmor)},
		Credits:     750,
	}
	s := c.Sheet()
	assert.Equal(t, "normal", s.PowerType)
	assert.Equal(t, character.ScoreSheet{Score: 14, Modifier: 1}, s.Attributes[character.STR])
	assert.Equal(t, map[string]int{"Shoot": 1, "Notice": 0}, s.Skills)
	assert.Equal(t, 13, s.AC, "track AC bonus stays on the ability sheet")
	assert.Equal(t, 1, s.SpecialAbilities.ACBonus)
	require.NotNil(t, s.SpecialAbilities)
	assert.Equal(t, "godhunter", s.SpecialAbilities.Track)
	assert.Nil(t, s.Spells)
	assert.Nil(t, s.PsychicPowers)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	for _, key := range []string{"id", "name", "level", "power_type", "class", "background", "attributes",
		"skills", "foci", "special_abilities", "hp", "ac", "attack_bonus", "saving_throws", "equipment", "credits"} {
		assert.Contains(t, generic, key)
	}
	assert.NotContains(t, generic, "spells")
	saves := generic["saving_throws"].(map[string]any)
	assert.Contains(t, saves, "Physical")
	equip := generic["equipment"].(map[string]any)
	assert.Equal(t, []any{}, equip["weapons"], "no weapons encodes as an empty list")
	assert.Equal(t, []any{}, equip["gear"])

	var back character.Sheet
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s.Foci, back.Foci)
	assert.Equal(t, s.Attributes, back.Attributes)
}
