package ruleset

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cory-johannsen/swngen/internal/game/inventory"
)

// Tables is the raw reference data a Registry is built from.
type Tables struct {
	Classes     []*Class
	Backgrounds []*Background
	Skills      []*SkillDef
	Foci        []*FocusDef
	Disciplines []*Discipline
	Traditions  []*Tradition
	Tracks      []*TrackDef
	Equipment   *inventory.Catalog
}

// Registry holds every reference table, indexed for case-insensitive lookup.
// It is immutable after construction and safe for concurrent readers.
type Registry struct {
	t           Tables
	classes     map[string]*Class
	backgrounds map[string]*Background
	skills      map[string]*SkillDef
	foci        map[string]*FocusDef
	disciplines map[string]*Discipline
	traditions  map[string]*Tradition
	tracks      map[TrackID]*TrackDef
}

// New validates t and indexes it.
// Precondition: no entry of t is nil.
// Postcondition: returns a Registry whose cross references all resolve, or an error.
func New(t Tables) (*Registry, error) {
	if t.Equipment == nil {
		t.Equipment = inventory.NewCatalog(nil, nil, nil)
	}
	r := &Registry{
		t:           t,
		classes:     make(map[string]*Class, len(t.Classes)),
		backgrounds: make(map[string]*Background, len(t.Backgrounds)),
		skills:      make(map[string]*SkillDef, len(t.Skills)),
		foci:        make(map[string]*FocusDef, len(t.Foci)),
		disciplines: make(map[string]*Discipline, len(t.Disciplines)),
		traditions:  make(map[string]*Tradition, len(t.Traditions)),
		tracks:      make(map[TrackID]*TrackDef, len(t.Tracks)),
	}
	var errs []error
	for _, c := range t.Classes {
		if c == nil {
			panic("ruleset.New: nil class")
		}
		c.applyDefaults()
		if err := c.Validate(); err != nil {
			errs = append(errs, err)
		}
		errs = appendDup(errs, r.classes, "class", c.Name, c)
	}
	for _, b := range t.Backgrounds {
		if b == nil {
			panic("ruleset.New: nil background")
		}
		if err := b.Validate(); err != nil {
			errs = append(errs, err)
		}
		errs = appendDup(errs, r.backgrounds, "background", b.Name, b)
	}
	for _, s := range t.Skills {
		if s == nil {
			panic("ruleset.New: nil skill")
		}
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
		errs = appendDup(errs, r.skills, "skill", s.Name, s)
	}
	for _, f := range t.Foci {
		if f == nil {
			panic("ruleset.New: nil focus")
		}
		if err := f.Validate(); err != nil {
			errs = append(errs, err)
		}
		errs = appendDup(errs, r.foci, "focus", f.Name, f)
	}
	for _, d := range t.Disciplines {
		if d == nil {
			panic("ruleset.New: nil discipline")
		}
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
		}
		errs = appendDup(errs, r.disciplines, "discipline", d.Name, d)
	}
	for _, tr := range t.Traditions {
		if tr == nil {
			panic("ruleset.New: nil tradition")
		}
		tr.stampLevels()
		if err := tr.Validate(); err != nil {
			errs = append(errs, err)
		}
		errs = appendDup(errs, r.traditions, "tradition", tr.Name, tr)
	}
	for _, td := range t.Tracks {
		if td == nil {
			panic("ruleset.New: nil track")
		}
		if err := td.Validate(); err != nil {
			errs = append(errs, err)
		}
		if _, dup := r.tracks[td.Track]; dup {
			errs = append(errs, fmt.Errorf("duplicate track %q", td.Track))
		}
		r.tracks[td.Track] = td
	}
	errs = append(errs, r.crossCheck()...)
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

func appendDup[T any](errs []error, index map[string]T, kind, name string, v T) []error {
	key := foldKey(name)
	if _, dup := index[key]; dup {
		return append(errs, fmt.Errorf("duplicate %s %q", kind, name))
	}
	index[key] = v
	return errs
}

// crossCheck verifies references between tables.
func (r *Registry) crossCheck() []error {
	var errs []error
	for _, c := range r.t.Classes {
		if c.Spellcaster {
			if _, ok := r.traditions[foldKey(c.Tradition)]; !ok {
				errs = append(errs, fmt.Errorf("class %q: tradition %q has no spell table", c.Name, c.Tradition))
			}
		}
		if c.Policy.AbilityTrack != TrackNone {
			if _, ok := r.tracks[c.Policy.AbilityTrack]; !ok {
				errs = append(errs, fmt.Errorf("class %q: ability track %q not loaded", c.Name, c.Policy.AbilityTrack))
			}
		}
		if c.Policy.BonusSkills == BonusSkillsDisciplines && len(r.t.Disciplines) == 0 {
			errs = append(errs, fmt.Errorf("class %q: grants disciplines but none are loaded", c.Name))
		}
	}
	for _, b := range r.t.Backgrounds {
		if !b.General() {
			if _, ok := r.classes[foldKey(b.Class)]; !ok {
				errs = append(errs, fmt.Errorf("background %q: class %q not loaded", b.Name, b.Class))
			}
		}
	}
	return errs
}

// Load reads every reference table below dir and builds a Registry.
// Precondition: dir contains classes, backgrounds, skills, foci, psionics,
// spells, abilities and equipment subdirectories.
// Postcondition: any missing or malformed source yields a *ContentError.
func Load(dir string) (*Registry, error) {
	var t Tables
	if err := decodeDir(filepath.Join(dir, "classes"), func(_ string, f *struct {
		Classes []*Class `yaml:"classes"`
	}) error {
		t.Classes = append(t.Classes, f.Classes...)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := decodeDir(filepath.Join(dir, "backgrounds"), func(_ string, f *struct {
		Backgrounds []*Background `yaml:"backgrounds"`
	}) error {
		t.Backgrounds = append(t.Backgrounds, f.Backgrounds...)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := decodeDir(filepath.Join(dir, "skills"), func(_ string, f *struct {
		Skills []*SkillDef `yaml:"skills"`
	}) error {
		t.Skills = append(t.Skills, f.Skills...)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := decodeDir(filepath.Join(dir, "foci"), func(_ string, f *struct {
		Foci []*FocusDef `yaml:"foci"`
	}) error {
		t.Foci = append(t.Foci, f.Foci...)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := decodeDir(filepath.Join(dir, "psionics"), func(_ string, f *struct {
		Disciplines []*Discipline `yaml:"disciplines"`
	}) error {
		t.Disciplines = append(t.Disciplines, f.Disciplines...)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := decodeDir(filepath.Join(dir, "spells"), func(_ string, f *Tradition) error {
		t.Traditions = append(t.Traditions, f)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := decodeDir(filepath.Join(dir, "abilities"), func(_ string, f *TrackDef) error {
		t.Tracks = append(t.Tracks, f)
		return nil
	}); err != nil {
		return nil, err
	}
	cat, err := inventory.LoadCatalog(filepath.Join(dir, "equipment"))
	if err != nil {
		return nil, contentErr(filepath.Join(dir, "equipment"), err)
	}
	t.Equipment = cat

	reg, err := New(t)
	if err != nil {
		return nil, contentErr(dir, err)
	}
	return reg, nil
}

// Classes returns every class in load order.
func (r *Registry) Classes() []*Class { return r.t.Classes }

// Class looks up a class by case-insensitive name.
func (r *Registry) Class(name string) (*Class, bool) {
	c, ok := r.classes[foldKey(name)]
	return c, ok
}

// Backgrounds returns every background in load order.
func (r *Registry) Backgrounds() []*Background { return r.t.Backgrounds }

// Background looks up a background by case-insensitive name.
func (r *Registry) Background(name string) (*Background, bool) {
	b, ok := r.backgrounds[foldKey(name)]
	return b, ok
}

// Skills returns every skill definition in load order.
func (r *Registry) Skills() []*SkillDef { return r.t.Skills }

// SkillNames returns the names of skills in any of the given categories.
func (r *Registry) SkillNames(cats ...SkillCategory) []string {
	var out []string
	for _, s := range r.t.Skills {
		for _, c := range cats {
			if s.Category == c {
				out = append(out, s.Name)
				break
			}
		}
	}
	return out
}

// Foci returns every focus template in load order.
func (r *Registry) Foci() []*FocusDef { return r.t.Foci }

// Disciplines returns every psychic discipline in load order.
func (r *Registry) Disciplines() []*Discipline { return r.t.Disciplines }

// Discipline looks up a discipline by case-insensitive name.
func (r *Registry) Discipline(name string) (*Discipline, bool) {
	d, ok := r.disciplines[foldKey(name)]
	return d, ok
}

// DisciplineNames returns the discipline names in load order.
func (r *Registry) DisciplineNames() []string {
	out := make([]string, len(r.t.Disciplines))
	for i, d := range r.t.Disciplines {
		out[i] = d.Name
	}
	return out
}

// Tradition looks up a spell tradition by case-insensitive name.
func (r *Registry) Tradition(name string) (*Tradition, bool) {
	t, ok := r.traditions[foldKey(name)]
	return t, ok
}

// Track returns the ability track with the given id.
func (r *Registry) Track(id TrackID) (*TrackDef, bool) {
	t, ok := r.tracks[id]
	return t, ok
}

// Equipment returns the equipment catalog.
func (r *Registry) Equipment() *inventory.Catalog { return r.t.Equipment }
