package ruleset

import (
	"errors"
	"fmt"
)

// SkillCategory groups skills for eligibility filtering.
type SkillCategory string

const (
	CategoryCombat    SkillCategory = "combat"
	CategoryGeneral   SkillCategory = "general"
	CategoryExclusive SkillCategory = "exclusive" // class-gated; never allocated generally
)

// CombatSkills is the fixed pool an "Any Combat" grant draws from.
var CombatSkills = []string{"Shoot", "Stab", "Punch"}

// SkillDef is one entry of the skill list.
type SkillDef struct {
	Name     string        `yaml:"name"`
	Category SkillCategory `yaml:"category"`
}

// Validate reports every problem with the skill record.
func (s *SkillDef) Validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	switch s.Category {
	case CategoryCombat, CategoryGeneral, CategoryExclusive:
	default:
		errs = append(errs, fmt.Errorf("category %q must be one of [combat, general, exclusive]", s.Category))
	}
	return validationErr("skill "+s.Name, errs)
}
