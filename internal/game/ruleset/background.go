package ruleset

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SkillRefKind discriminates the SkillRef variants.
type SkillRefKind int

const (
	// RefLiteral names one concrete skill.
	RefLiteral SkillRefKind = iota
	// RefAnyCombat resolves to one of the combat skills.
	RefAnyCombat
	// RefAnySkill resolves to any skill the character may learn.
	RefAnySkill
	// RefOneOf resolves to one of an explicit option list ("Shoot or Trade").
	RefOneOf
)

const (
	anyCombatText = "Any Combat"
	anySkillText  = "Any Skill"
)

// SkillRef is a background skill grant that may defer its concrete skill
// until the character is built.
type SkillRef struct {
	Kind    SkillRefKind
	Name    string
	Options []string
}

// ParseSkillRef decodes the textual form used in content files.
// Postcondition: returns an error only for empty text or an empty option.
func ParseSkillRef(text string) (SkillRef, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return SkillRef{}, errors.New("skill reference must not be empty")
	}
	switch {
	case strings.EqualFold(text, anyCombatText):
		return SkillRef{Kind: RefAnyCombat}, nil
	case strings.EqualFold(text, anySkillText):
		return SkillRef{Kind: RefAnySkill}, nil
	}
	parts := strings.Split(text, " or ")
	if len(parts) == 1 {
		return SkillRef{Kind: RefLiteral, Name: text}, nil
	}
	opts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return SkillRef{}, fmt.Errorf("skill reference %q has an empty option", text)
		}
		opts = append(opts, p)
	}
	return SkillRef{Kind: RefOneOf, Options: opts}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *SkillRef) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	ref, err := ParseSkillRef(text)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*r = ref
	return nil
}

// String renders the reference in its content-file form.
func (r SkillRef) String() string {
	switch r.Kind {
	case RefAnyCombat:
		return anyCombatText
	case RefAnySkill:
		return anySkillText
	case RefOneOf:
		return strings.Join(r.Options, " or ")
	default:
		return r.Name
	}
}

// Names returns the concrete skill names the reference mentions directly.
func (r SkillRef) Names() []string {
	switch r.Kind {
	case RefLiteral:
		return []string{r.Name}
	case RefOneOf:
		return r.Options
	default:
		return nil
	}
}

// Background is an immutable character background.
type Background struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Class       string     `yaml:"class"` // affinity for random selection; "" = general
	FreeSkill   SkillRef   `yaml:"free_skill"`
	QuickSkills []SkillRef `yaml:"quick_skills"`
}

// General reports whether the background carries no class affinity.
func (b *Background) General() bool { return b.Class == "" }

// FitsClass reports whether a random pick for class may land on b.
func (b *Background) FitsClass(class string) bool {
	return b.General() || foldKey(b.Class) == foldKey(class)
}

// Validate reports every problem with the background record.
// Postcondition: returns nil iff the background is well-formed.
func (b *Background) Validate() error {
	var errs []error
	if b.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if b.FreeSkill.String() == "" {
		errs = append(errs, errors.New("free_skill must not be empty"))
	}
	if len(b.QuickSkills) == 0 {
		errs = append(errs, errors.New("quick_skills must not be empty"))
	}
	return validationErr("background "+b.Name, errs)
}
