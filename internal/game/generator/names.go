package generator

import "github.com/cory-johannsen/swngen/internal/game/dice"

var firstNames = []string{
	"Kara", "Drake", "Lyra", "Rex", "Nova", "Zane", "Maya", "Cole",
	"Aria", "Jax", "Luna", "Vex", "Sage", "Kai", "Echo", "Finn",
	"Nyx", "Dex", "Vera", "Orion", "Skye", "Nash", "Iris", "Rafe",
}

var lastNames = []string{
	"Voss", "Kane", "Storm", "Cross", "Vale", "Reeves", "Drake", "Stone",
	"Night", "Fox", "Ryder", "Hayes", "West", "Black", "Chase", "Hunt",
	"Wells", "Reed", "Blake", "Wolf", "Cole", "Grey", "Steele", "Quinn",
}

// RandomName returns "First Last" drawn from the name pools.
func RandomName(r *dice.Roller) string {
	return dice.Pick(r, firstNames) + " " + dice.Pick(r, lastNames)
}
