package ruleset

import (
	"errors"
	"fmt"
)

// Technique is one psychic technique.
type Technique struct {
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	EffortCost  int    `yaml:"effort_cost"`
	Description string `yaml:"description"`
}

// Discipline is a psychic discipline. Its name doubles as a skill name.
type Discipline struct {
	Name          string      `yaml:"name"`
	Description   string      `yaml:"description"`
	CoreTechnique Technique   `yaml:"core_technique"`
	Techniques    []Technique `yaml:"techniques"`
}

// Validate reports every problem with the discipline record.
func (d *Discipline) Validate() error {
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if d.CoreTechnique.Name == "" {
		errs = append(errs, errors.New("core_technique.name must not be empty"))
	}
	for i, t := range d.Techniques {
		if t.Name == "" {
			errs = append(errs, fmt.Errorf("techniques[%d].name must not be empty", i))
		}
		if t.Level < 1 || t.Level > 4 {
			errs = append(errs, fmt.Errorf("technique %q level %d must be in [1,4]", t.Name, t.Level))
		}
	}
	return validationErr("discipline "+d.Name, errs)
}
