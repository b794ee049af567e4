package character

import (
	"github.com/cory-johannsen/swngen/internal/game/dice"
	"github.com/cory-johannsen/swngen/internal/game/inventory"
)

// SavingThrows are roll-under targets; lower is better.
type SavingThrows struct {
	Physical int
	Evasion  int
	Mental   int
}

// SaveTarget is the level-zero saving throw before modifiers.
const SaveTarget = 16

// ComputeSaves returns SaveTarget - level - best paired modifier for each save.
// Track bonuses are situational and stay on the ability sheet.
func ComputeSaves(level int, a AbilityScores) SavingThrows {
	return SavingThrows{
		Physical: SaveTarget - level - max(a.Mod(STR), a.Mod(CON)),
		Evasion:  SaveTarget - level - max(a.Mod(DEX), a.Mod(INT)),
		Mental:   SaveTarget - level - max(a.Mod(WIS), a.Mod(CHA)),
	}
}

// RollHP sums max(1, 1d6 + hpBonus + conMod) over level rolls.
//
// Postcondition: result >= level.
func RollHP(level, hpBonus, conMod int, r *dice.Roller) int {
	hp := 0
	for range level {
		hp += max(1, r.D6()+hpBonus+conMod)
	}
	return hp
}

// ArmorClass returns max(10, armor AC) + dexMod, then applies shield.
// A nil armor or shield is treated as absent.
func ArmorClass(armor, shield *inventory.Equipment, dexMod int) int {
	base := 10
	if armor != nil {
		base = max(base, armor.ArmorClass().Base)
	}
	ac := base + dexMod
	if shield != nil {
		ac = shield.ArmorClass().Apply(ac)
	}
	return ac
}

// AttackBonus returns perLevel * level.
func AttackBonus(perLevel, level int) int { return perLevel * level }
