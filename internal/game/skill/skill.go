// Package skill holds the character skill collection, the point-cost
// schedule, and the stochastic point-buy allocator.
package skill

import (
	"fmt"
	"sort"
)

const (
	// MinLevel is the lowest storable level; background free skills start here.
	MinLevel = -1
	// MaxLevel is the highest storable level.
	MaxLevel = 4
)

// Skill is a named skill at a level in [MinLevel, MaxLevel].
type Skill struct {
	Name  string
	Level int
}

// String renders the skill as "Name-Level".
func (s Skill) String() string { return fmt.Sprintf("%s-%d", s.Name, s.Level) }

// Set is a character's skill collection keyed by skill name.
//
// Invariant: a stored level never decreases.
type Set struct {
	skills map[string]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{skills: make(map[string]int)}
}

// Add records name at level, or raises an existing skill to level when level
// is higher than the stored value. Levels are clamped into [MinLevel, MaxLevel].
//
// Postcondition: Level(name) == max(previous, clamp(level)).
func (s *Set) Add(name string, level int) {
	level = max(MinLevel, min(MaxLevel, level))
	if cur, ok := s.skills[name]; ok && cur >= level {
		return
	}
	s.skills[name] = level
}

// Has reports whether name has been granted at any level.
func (s *Set) Has(name string) bool {
	_, ok := s.skills[name]
	return ok
}

// Level returns the stored level of name, or MinLevel when the skill is not held.
// Unheld skills and level -1 skills cost the same to raise, so the allocator
// treats both alike.
func (s *Set) Level(name string) int {
	if lvl, ok := s.skills[name]; ok {
		return lvl
	}
	return MinLevel
}

// Len returns the number of held skills.
func (s *Set) Len() int { return len(s.skills) }

// All returns every held skill sorted by name.
func (s *Set) All() []Skill {
	out := make([]Skill, 0, len(s.skills))
	for n, l := range s.skills {
		out = append(out, Skill{Name: n, Level: l})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Map returns a copy of the set as name -> level.
func (s *Set) Map() map[string]int {
	out := make(map[string]int, len(s.skills))
	for n, l := range s.skills {
		out[n] = l
	}
	return out
}

// PointsSpent returns the total cost of all held skills: a skill at level L >= 0
// contributes L+1 points; level -1 skills are free.
func (s *Set) PointsSpent() int {
	total := 0
	for _, l := range s.skills {
		total += CostTo(l)
	}
	return total
}

// StepCost returns the points needed to raise a skill from level from to from+1.
// ok is false once the skill is at MaxLevel.
func StepCost(from int) (cost int, ok bool) {
	if from < MinLevel || from >= MaxLevel {
		return 0, false
	}
	return 1, true
}

// CostTo returns the cumulative cost of a skill held at level.
func CostTo(level int) int {
	total := 0
	for l := MinLevel; l < level; l++ {
		c, ok := StepCost(l)
		if !ok {
			break
		}
		total += c
	}
	return total
}

// MaxLevelAt returns the highest level a skill may reach during generation for
// a character of the given level.
func MaxLevelAt(characterLevel int) int {
	switch {
	case characterLevel <= 2:
		return 1
	case characterLevel <= 5:
		return 2
	case characterLevel <= 8:
		return 3
	default:
		return 4
	}
}

// Raise greedily spends up to budget points raising name one step at a time
// toward target.
//
// Postcondition: returns the points spent; Level(name) <= max(previous, target).
func (s *Set) Raise(name string, target, budget int) int {
	spent := 0
	for {
		cur := s.Level(name)
		if cur >= target {
			return spent
		}
		cost, ok := StepCost(cur)
		if !ok || cost > budget-spent {
			return spent
		}
		s.Add(name, cur+1)
		spent += cost
	}
}
