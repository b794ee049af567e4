package inventory

// CreditsPerLevel is added to a class's base credits for each character level.
const CreditsPerLevel = 500

// StartingCredits returns base + CreditsPerLevel*level.
//
// Precondition: base >= 0 and level >= 1.
// Postcondition: result >= base.
func StartingCredits(base, level int) int {
	return base + CreditsPerLevel*level
}

// Remaining returns the credits left after buying set, floored at zero.
func Remaining(credits int, set *EquipmentSet) int {
	if set == nil {
		return max(0, credits)
	}
	return max(0, credits-set.TotalCost())
}
