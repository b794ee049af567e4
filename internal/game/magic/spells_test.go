package magic_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/magic"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
)

func tradition(name string, regime ruleset.Regime, perLevel int) *ruleset.Tradition {
	t := &ruleset.Tradition{Name: name, Regime: regime, Spells: map[int][]ruleset.Spell{}}
	for sl := 1; sl <= ruleset.MaxSpellLevel; sl++ {
		for i := 0; i < perLevel; i++ {
			t.Spells[sl] = append(t.Spells[sl], ruleset.Spell{Name: fmt.Sprintf("%s %d-%d", name, sl, i), Level: sl})
		}
	}
	return t
}

func newBuilder(seed uint64) *magic.Builder {
	return magic.NewBuilder(dice.NewLoggedRoller(dice.NewSeededSource(seed), zap.NewNop()), zap.NewNop())
}

func TestMagisterProgression_Table(t *testing.T) {
	assert.Equal(t, map[int]magic.Progress{1: {Known: 2, Slots: 3}}, magic.MagisterProgression(1))
	assert.Equal(t, magic.Progress{Known: 2, Slots: 3}, magic.MagisterProgression(10)[5])
	assert.Equal(t, magic.MagisterProgression(10), magic.MagisterProgression(14), "clamps above 10")
	assert.Equal(t, magic.MagisterProgression(1), magic.MagisterProgression(0))
}

func TestArcanistKnownRange(t *testing.T) {
	lo, hi := magic.ArcanistKnownRange(5)
	assert.Equal(t, [2]int{2, 4}, [2]int{lo, hi})
	lo, hi = magic.ArcanistKnownRange(6)
	assert.Equal(t, [2]int{5, 8}, [2]int{lo, hi})
}

func TestBuild_MagisterLevelOne(t *testing.T) {
	l := newBuilder(1).Build(tradition("Pacter", ruleset.RegimeMagister, 6), 1)
	assert.Equal(t, "Pacter", l.Tradition)
	assert.Len(t, l.Known(1), 2)
	assert.Equal(t, map[int]int{1: 3}, l.Slots)
	assert.Len(t, l.Spells, 2)
}

func TestBuild_ArcanistLevelOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		l := newBuilder(rapid.Uint64().Draw(rt, "seed")).Build(tradition("Arcanist", ruleset.RegimeArcanist, 10), 1)
		n := len(l.Known(1))
		if n < 2 || n > 4 {
			rt.Fatalf("arcanist knows %d level-1 spells", n)
		}
		if l.Slots[1] != 2 {
			rt.Fatalf("arcanist level-1 slots = %d", l.Slots[1])
		}
	})
}

func TestBuild_CappedByPool(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.IntRange(1, 12).Draw(rt, "level")
		regime := rapid.SampledFrom([]ruleset.Regime{ruleset.RegimeMagister, ruleset.RegimeArcanist}).Draw(rt, "regime")
		tr := tradition("T", regime, rapid.IntRange(0, 3).Draw(rt, "pool"))
		l := newBuilder(rapid.Uint64().Draw(rt, "seed")).Build(tr, level)
		for sl := 1; sl <= ruleset.MaxSpellLevel; sl++ {
			if len(l.Known(sl)) > len(tr.Pool(sl)) {
				rt.Fatalf("level %d: %d known from pool of %d", sl, len(l.Known(sl)), len(tr.Pool(sl)))
			}
			seen := map[string]bool{}
			for _, s := range l.Known(sl) {
				if seen[s.Name] {
					rt.Fatalf("%s known twice", s.Name)
				}
				seen[s.Name] = true
			}
		}
	})
}

func TestBuild_HighLevelMagister(t *testing.T) {
	l := newBuilder(2).Build(tradition("War Mage", ruleset.RegimeMagister, 6), 10)
	require.Len(t, l.Slots, 5)
	for sl, p := range magic.MagisterProgression(10) {
		assert.Len(t, l.Known(sl), p.Known)
		assert.Equal(t, p.Slots, l.Slots[sl])
	}
}
