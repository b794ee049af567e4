package skill

import (
	"slices"

	"github.com/cory-johannsen/swngen/internal/game/dice"
)

const (
	// DefaultMaxAttempts bounds the allocator loop.
	DefaultMaxAttempts = 1000
	// priorityPercent is the chance each draw comes from the priority list.
	priorityPercent = 70
)

// Allocator spends a skill-point budget across eligible skills.
type Allocator struct {
	roller      *dice.Roller
	maxAttempts int
}

// NewAllocator returns an Allocator drawing from roller. maxAttempts <= 0 uses
// DefaultMaxAttempts.
//
// Precondition: roller must be non-nil.
func NewAllocator(roller *dice.Roller, maxAttempts int) *Allocator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Allocator{roller: roller, maxAttempts: maxAttempts}
}

// Allocate spends totalPoints minus the points already spent in set. Each
// attempt draws a skill (priority names with 70% probability, otherwise any
// eligible name) and raises it one step when it is below MaxLevelAt(level) and
// the step is affordable. Priority names outside eligible are ignored.
//
// Allocation is best-effort: it stops when the budget is exhausted, every
// eligible skill is capped, or the attempt bound is reached.
//
// Postcondition: returns the unspent remainder (>= 0 unless already overspent).
func (a *Allocator) Allocate(set *Set, totalPoints int, eligible, priority []string, characterLevel int) int {
	remaining := totalPoints - set.PointsSpent()
	if remaining <= 0 || len(eligible) == 0 {
		return remaining
	}
	levelCap := MaxLevelAt(characterLevel)

	var prio []string
	for _, p := range priority {
		if slices.Contains(eligible, p) {
			prio = append(prio, p)
		}
	}

	for attempt := 0; attempt < a.maxAttempts && remaining > 0; attempt++ {
		pool := eligible
		if len(prio) > 0 && a.roller.Chance(priorityPercent) {
			pool = prio
		}
		name := dice.Pick(a.roller, pool)

		cur := set.Level(name)
		if cur < levelCap {
			if cost, ok := StepCost(cur); ok && cost <= remaining {
				set.Add(name, cur+1)
				remaining -= cost
			}
		}

		if allCapped(set, eligible, levelCap) {
			break
		}
	}
	return remaining
}

func allCapped(set *Set, names []string, levelCap int) bool {
	for _, n := range names {
		if set.Level(n) < levelCap {
			return false
		}
	}
	return true
}
