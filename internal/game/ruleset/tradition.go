package ruleset

import (
	"errors"
	"fmt"
)

// Regime selects a spell progression table.
type Regime string

const (
	RegimeMagister Regime = "magister"
	RegimeArcanist Regime = "arcanist"
)

// MaxSpellLevel is the highest spell level.
const MaxSpellLevel = 5

// Spell is a catalog spell. Level is filled from the table key on load.
type Spell struct {
	Name        string `yaml:"name"`
	Level       int    `yaml:"-"`
	Description string `yaml:"description"`
}

// Tradition is one spellcasting tradition and its catalog.
type Tradition struct {
	Name   string          `yaml:"tradition"`
	Regime Regime          `yaml:"regime"`
	Spells map[int][]Spell `yaml:"spells"`
}

// Pool returns the catalog spells of the given level.
func (t *Tradition) Pool(level int) []Spell { return t.Spells[level] }

func (t *Tradition) stampLevels() {
	for lvl, spells := range t.Spells {
		for i := range spells {
			spells[i].Level = lvl
		}
	}
}

// Validate reports every problem with the tradition record.
func (t *Tradition) Validate() error {
	var errs []error
	if t.Name == "" {
		errs = append(errs, errors.New("tradition must not be empty"))
	}
	if t.Regime != RegimeMagister && t.Regime != RegimeArcanist {
		errs = append(errs, fmt.Errorf("regime %q must be one of [magister, arcanist]", t.Regime))
	}
	for lvl := range t.Spells {
		if lvl < 1 || lvl > MaxSpellLevel {
			errs = append(errs, fmt.Errorf("spell level %d must be in [1,%d]", lvl, MaxSpellLevel))
		}
	}
	if len(t.Spells[1]) == 0 {
		errs = append(errs, errors.New("spells must include level 1"))
	}
	return validationErr("tradition "+t.Name, errs)
}
