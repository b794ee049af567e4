// Package character defines the generated character record, its attribute
// generation and its derived-stat formulas.
package character

import (
	"github.com/cory-johannsen/swngen/internal/game/ability"
	"github.com/cory-johannsen/swngen/internal/game/focus"
	"github.com/cory-johannsen/swngen/internal/game/inventory"
	"github.com/cory-johannsen/swngen/internal/game/magic"
	"github.com/cory-johannsen/swngen/internal/game/psionics"
	"github.com/cory-johannsen/swngen/internal/game/ruleset"
	"github.com/cory-johannsen/swngen/internal/game/skill"
)

// MinLevel and MaxLevel bound a character's level.
const (
	MinLevel = 1
	MaxLevel = 10
)

// ClampLevel forces level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

// Character is a generated player character. It is populated once by the
// generator and owned by the caller afterwards; Class and Background point
// at shared read-only reference data.
type Character struct {
	ID         string
	Name       string
	Level      int
	Class      *ruleset.Class
	Background *ruleset.Background
	Attributes AbilityScores
	Skills     *skill.Set
	Foci       []*focus.Focus

	// At most one of Psychic, Spells and Abilities is usually set; a class
	// may combine spells with a track.
	Psychic   *psionics.Powers
	Spells    *magic.SpellList
	Abilities *ability.Set

	HP          int
	Saves       SavingThrows
	AttackBonus int
	Equipment   *inventory.EquipmentSet
	Credits     int
}

// PowerType returns the class power type, or "normal" with no class.
func (c *Character) PowerType() ruleset.PowerType {
	if c.Class == nil {
		return ruleset.PowerNormal
	}
	return c.Class.PowerType
}

// Mod returns the modifier of one attribute.
func (c *Character) Mod(a Attribute) int { return c.Attributes.Mod(a) }

// MentalMod returns max(WIS, CHA) modifier.
func (c *Character) MentalMod() int { return max(c.Mod(WIS), c.Mod(CHA)) }

// ArmorClass computes AC from equipped armor, shield and DEX.
func (c *Character) ArmorClass() int {
	var armor, shield *inventory.Equipment
	if c.Equipment != nil {
		armor, shield = c.Equipment.Armor, c.Equipment.Shield
	}
	return ArmorClass(armor, shield, c.Mod(DEX))
}
