package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/swngen/internal/game/inventory"
)

func TestParseArmorClass_Plain(t *testing.T) {
	ac, err := inventory.ParseArmorClass("16")
	require.NoError(t, err)
	assert.Equal(t, inventory.ArmorClass{Base: 16}, ac)
}

func TestParseArmorClass_Composite(t *testing.T) {
	ac, err := inventory.ParseArmorClass("16/+2 bonus")
	require.NoError(t, err)
	assert.Equal(t, inventory.ArmorClass{Base: 16, Bonus: 2, Composite: true}, ac)

	ac, err = inventory.ParseArmorClass("13/+1")
	require.NoError(t, err)
	assert.Equal(t, inventory.ArmorClass{Base: 13, Bonus: 1, Composite: true}, ac)
}

func TestParseArmorClass_EmptyIsTen(t *testing.T) {
	ac, err := inventory.ParseArmorClass("")
	require.NoError(t, err)
	assert.Equal(t, 10, ac.Base)
}

func TestParseArmorClass_Malformed(t *testing.T) {
	_, err := inventory.ParseArmorClass("heavy")
	assert.Error(t, err)
	_, err = inventory.ParseArmorClass("13/+x bonus")
	assert.Error(t, err)
}

func TestArmorClass_Apply(t *testing.T) {
	composite := inventory.ArmorClass{Base: 16, Bonus: 2, Composite: true}
	assert.Equal(t, 19, composite.Apply(17))
	assert.Equal(t, 16, composite.Apply(11))

	plain := inventory.ArmorClass{Base: 14}
	assert.Equal(t, 17, plain.Apply(17))
	assert.Equal(t, 14, plain.Apply(12))
}

func TestArmorClass_Apply_NeverLowers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ac := inventory.ArmorClass{
			Base:      rapid.IntRange(10, 20).Draw(rt, "base"),
			Bonus:     rapid.IntRange(0, 3).Draw(rt, "bonus"),
			Composite: rapid.Bool().Draw(rt, "composite"),
		}
		current := rapid.IntRange(8, 22).Draw(rt, "current")
		if ac.Apply(current) < current {
			rt.Fatalf("Apply(%d) = %d lowered AC", current, ac.Apply(current))
		}
	})
}

func TestEquipment_ArmorClass_FromProperties(t *testing.T) {
	shield := &inventory.Equipment{Name: "Force Shield", Category: inventory.CategoryShield,
		Properties: map[string]any{"ac": "16/+2 bonus"}}
	assert.True(t, shield.IsShield())
	assert.Equal(t, inventory.ArmorClass{Base: 16, Bonus: 2, Composite: true}, shield.ArmorClass())

	armor := &inventory.Equipment{Name: "Woven Body Armor", Category: inventory.CategoryStreetArmor,
		Properties: map[string]any{"ac": 15}}
	assert.Equal(t, 15, armor.ArmorClass().Base)

	broken := &inventory.Equipment{Name: "Odd", Properties: map[string]any{"ac": "x"}}
	assert.Equal(t, 10, broken.ArmorClass().Base)
}

func TestEquipment_Validate(t *testing.T) {
	ok := &inventory.Equipment{Name: "Compad", Category: "communications", Cost: 100, Enc: 0, TechLevel: 4}
	assert.NoError(t, ok.Validate())

	assert.ErrorContains(t, (&inventory.Equipment{Category: "field"}).Validate(), "name")
	assert.ErrorContains(t, (&inventory.Equipment{Name: "X"}).Validate(), "category")
	assert.ErrorContains(t, (&inventory.Equipment{Name: "X", Category: "f", Cost: -1}).Validate(), "cost")
	assert.ErrorContains(t, (&inventory.Equipment{Name: "X", Category: "f", TechLevel: 6}).Validate(), "tech_level")
}

func TestEquipment_String(t *testing.T) {
	e := &inventory.Equipment{Name: "Laser Pistol", Cost: 200, Enc: 1, TechLevel: 4}
	assert.Equal(t, "Laser Pistol (TL4, 200cr, 1 enc)", e.String())
}
