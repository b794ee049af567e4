package magic

// Progress is the {known, slots} pair for one spell level.
type Progress struct {
	Known int
	Slots int
}

// MaxCharacterLevel is the last row of each table; higher levels clamp to it.
const MaxCharacterLevel = 10

// magisterTable is indexed [characterLevel-1][spellLevel].
var magisterTable = [MaxCharacterLevel]map[int]Progress{
	{1: {2, 3}},
	{1: {2, 4}},
	{1: {3, 5}, 2: {2, 2}},
	{1: {3, 6}, 2: {2, 3}},
	{1: {4, 6}, 2: {2, 3}, 3: {2, 2}},
	{1: {4, 6}, 2: {3, 4}, 3: {2, 3}},
	{1: {5, 6}, 2: {3, 4}, 3: {2, 3}, 4: {2, 2}},
	{1: {5, 6}, 2: {4, 5}, 3: {3, 4}, 4: {2, 3}},
	{1: {5, 6}, 2: {4, 5}, 3: {3, 4}, 4: {3, 3}, 5: {2, 2}},
	{1: {5, 6}, 2: {4, 6}, 3: {3, 5}, 4: {3, 4}, 5: {2, 3}},
}

// arcanistSlots is indexed [characterLevel-1][spellLevel] and gives prepared
// slots only; known counts are rolled.
var arcanistSlots = [MaxCharacterLevel]map[int]int{
	{1: 2},
	{1: 3},
	{1: 3, 2: 1},
	{1: 4, 2: 2},
	{1: 4, 2: 2, 3: 1},
	{1: 4, 2: 3, 3: 2},
	{1: 4, 2: 3, 3: 2, 4: 1},
	{1: 4, 2: 3, 3: 3, 4: 2},
	{1: 4, 2: 4, 3: 3, 4: 2, 5: 1},
	{1: 4, 2: 4, 3: 3, 4: 3, 5: 2},
}

func row(level int) int {
	return min(max(level, 1), MaxCharacterLevel) - 1
}

// MagisterProgression returns the fixed row for level.
func MagisterProgression(level int) map[int]Progress {
	return magisterTable[row(level)]
}

// ArcanistSlots returns the prepared slots for level.
func ArcanistSlots(level int) map[int]int {
	return arcanistSlots[row(level)]
}

// ArcanistKnownRange returns the inclusive bounds for rolled known spells per
// spell level at the given character level.
func ArcanistKnownRange(level int) (lo, hi int) {
	if level < 6 {
		return 2, 4
	}
	return 5, 8
}
