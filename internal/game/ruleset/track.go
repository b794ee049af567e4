package ruleset

import (
	"errors"
	"fmt"
	"slices"
)

// Gating selects how a track's gated tier is granted.
type Gating string

const (
	// GatingEvenLevels draws one random distinct gated ability per even level.
	GatingEvenLevels Gating = "even_levels"
	// GatingTagged grants every gated ability whose level has been reached.
	GatingTagged Gating = "tagged"
)

// Ability is one special ability. Level is 0 for automatic abilities.
type Ability struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Level       int    `yaml:"level"`
}

// SacredWeapon is a Sunblade weapon form.
type SacredWeapon struct {
	Type      string `yaml:"type"`
	Damage    string `yaml:"damage"`
	Shock     string `yaml:"shock"`
	Attribute string `yaml:"attribute"`
	Range     string `yaml:"range"`
}

// TrackDef is the reference data for one special-ability track.
type TrackDef struct {
	Track         TrackID        `yaml:"track"`
	Name          string         `yaml:"name"`
	Gating        Gating         `yaml:"gating"`
	Automatic     []Ability      `yaml:"automatic"`
	Gated         []Ability      `yaml:"gated"`
	SacredWeapons []SacredWeapon `yaml:"sacred_weapons"`
}

// Validate reports every problem with the track record.
func (t *TrackDef) Validate() error {
	var errs []error
	if !slices.Contains(Tracks, t.Track) {
		errs = append(errs, fmt.Errorf("track %q is not valid", t.Track))
	}
	if t.Gating != GatingEvenLevels && t.Gating != GatingTagged {
		errs = append(errs, fmt.Errorf("gating %q must be one of [even_levels, tagged]", t.Gating))
	}
	if len(t.Automatic) == 0 {
		errs = append(errs, errors.New("automatic must not be empty"))
	}
	for _, a := range t.Gated {
		if t.Gating == GatingTagged && (a.Level < 2 || a.Level > 10) {
			errs = append(errs, fmt.Errorf("gated ability %q level %d must be in [2,10]", a.Name, a.Level))
		}
	}
	return validationErr("track "+string(t.Track), errs)
}
