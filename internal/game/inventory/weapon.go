package inventory

// Weapon sizes used by the melee heuristics.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// IsRanged reports whether e is a ranged weapon.
func (e *Equipment) IsRanged() bool { return e.Category == CategoryRanged }

// IsMelee reports whether e is a melee weapon.
func (e *Equipment) IsMelee() bool { return e.Category == CategoryMelee }
