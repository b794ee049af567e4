package character

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/swngen/internal/game/dice"
)

// Attribute names one of the six ability scores.
type Attribute string

const (
	STR Attribute = "STR"
	DEX Attribute = "DEX"
	CON Attribute = "CON"
	INT Attribute = "INT"
	WIS Attribute = "WIS"
	CHA Attribute = "CHA"
)

// Attributes lists the six attributes in roll order.
var Attributes = []Attribute{STR, DEX, CON, INT, WIS, CHA}

// AbilityScores holds the six ability score values.
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// FromValues assigns v to the attributes in roll order.
func FromValues(v [6]int) AbilityScores {
	return AbilityScores{v[0], v[1], v[2], v[3], v[4], v[5]}
}

// Values returns the scores in roll order.
func (a AbilityScores) Values() [6]int {
	return [6]int{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}

// Score returns the score of attr.
//
// Precondition: attr is one of Attributes.
func (a AbilityScores) Score(attr Attribute) int {
	switch attr {
	case STR:
		return a.Strength
	case DEX:
		return a.Dexterity
	case CON:
		return a.Constitution
	case INT:
		return a.Intelligence
	case WIS:
		return a.Wisdom
	case CHA:
		return a.Charisma
	}
	panic(fmt.Sprintf("character.AbilityScores.Score: unknown attribute %q", attr))
}

// Mod returns the modifier of attr.
func (a AbilityScores) Mod(attr Attribute) int { return Modifier(a.Score(attr)) }

// Modifier maps a score to its modifier: <=3 -2, 4-7 -1, 8-13 0, 14-17 +1, >=18 +2.
func Modifier(score int) int {
	switch {
	case score <= 3:
		return -2
	case score <= 7:
		return -1
	case score <= 13:
		return 0
	case score <= 17:
		return 1
	default:
		return 2
	}
}

// Method selects how attributes are generated.
type Method string

const (
	// MethodRoll rolls 3d6 per attribute in order and sets the lowest to 14.
	MethodRoll Method = "roll"
	// MethodArray deals the standard array to random attributes.
	MethodArray Method = "array"
)

// StandardArray is the score multiset dealt by MethodArray.
var StandardArray = [6]int{14, 12, 11, 10, 9, 7}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(strings.TrimSpace(s))); m {
	case MethodRoll, MethodArray:
		return m, nil
	}
	return "", fmt.Errorf("unknown attribute method %q: must be roll or array", s)
}

// RollAbilities generates scores with method using r.
//
// Precondition: method is MethodRoll or MethodArray; r is non-nil.
func RollAbilities(method Method, r *dice.Roller) AbilityScores {
	switch method {
	case MethodArray:
		v := StandardArray
		dice.Shuffle(r, v[:])
		return FromValues(v)
	case MethodRoll:
		var v [6]int
		low := 0
		for i := range v {
			v[i] = r.ThreeD6()
			if v[i] < v[low] {
				low = i
			}
		}
		v[low] = 14
		return FromValues(v)
	}
	panic(fmt.Sprintf("character.RollAbilities: unknown method %q", method))
}
