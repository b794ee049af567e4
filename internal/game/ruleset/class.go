package ruleset

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cory-johannsen/swngen/internal/game/inventory"
)

// PowerType is a class's supernatural access.
type PowerType string

const (
	PowerNormal  PowerType = "normal"
	PowerMagic   PowerType = "magic"
	PowerPsionic PowerType = "psionic"
)

// BonusSkills selects the class-specific skill grant made after background skills.
type BonusSkills string

const (
	BonusSkillsNone        BonusSkills = "none"
	BonusSkillsDisciplines BonusSkills = "disciplines"
	BonusSkillsSunblade    BonusSkills = "sunblade"
)

// BonusFocus selects the subset used to fill the class bonus focus slot.
type BonusFocus string

const (
	BonusFocusNone      BonusFocus = "none"
	BonusFocusCombat    BonusFocus = "combat"
	BonusFocusNonCombat BonusFocus = "noncombat"
)

// TrackID names a special-ability track.
type TrackID string

const (
	TrackNone      TrackID = "none"
	TrackSunblade  TrackID = "sunblade"
	TrackYamaKing  TrackID = "yama_king"
	TrackGodhunter TrackID = "godhunter"
	TrackFreeNexus TrackID = "free_nexus"
)

// Tracks lists every real ability track.
var Tracks = []TrackID{TrackSunblade, TrackYamaKing, TrackGodhunter, TrackFreeNexus}

// SunbladeSkill is the class-gated skill raised by Sunblades.
const SunbladeSkill = "Sunblade"

// CastMagicSkill is granted to every spellcaster.
const CastMagicSkill = "Cast Magic"

// Policy is the class-keyed dispatch record consumed by the generator in place
// of class-name comparisons.
type Policy struct {
	PrioritySkills   []string          `yaml:"priority_skills"`
	BonusSkills      BonusSkills       `yaml:"bonus_skills"`
	BaseFoci         int               `yaml:"base_foci"`
	BonusFocus       BonusFocus        `yaml:"bonus_focus"`
	EquipmentProfile inventory.Profile `yaml:"equipment_profile"`
	BaseCredits      int               `yaml:"base_credits"`
	AbilityTrack     TrackID           `yaml:"ability_track"`
	RandomExcluded   bool              `yaml:"random_excluded"`
}

// Class is an immutable character class shared by every Character of that class.
type Class struct {
	Name             string    `yaml:"name"`
	Description      string    `yaml:"description"`
	HPBonus          int       `yaml:"hp_bonus"`
	SkillPointsBase  int       `yaml:"skill_points_base"`
	AttackBonus      int       `yaml:"attack_bonus"`
	PowerType        PowerType `yaml:"power_type"`
	Spellcaster      bool      `yaml:"spellcaster"`
	Tradition        string    `yaml:"tradition"`
	SpecialAbilities []string  `yaml:"special_abilities"`
	Policy           Policy    `yaml:"policy"`
}

// Psionic reports whether the class uses psychic disciplines.
func (c *Class) Psionic() bool { return c.PowerType == PowerPsionic }

// applyDefaults fills optional fields left zero in YAML.
func (c *Class) applyDefaults() {
	if c.PowerType == "" {
		c.PowerType = PowerNormal
	}
	p := &c.Policy
	if p.BonusSkills == "" {
		p.BonusSkills = BonusSkillsNone
	}
	if p.BaseFoci == 0 {
		p.BaseFoci = 1
	}
	if p.BonusFocus == "" {
		p.BonusFocus = BonusFocusNone
	}
	if p.EquipmentProfile == "" {
		p.EquipmentProfile = inventory.ProfileAdventurer
	}
	if p.BaseCredits == 0 {
		p.BaseCredits = 1500
	}
	if p.AbilityTrack == "" {
		p.AbilityTrack = TrackNone
	}
}

// Validate reports every problem with the class record.
// Precondition: applyDefaults has run.
// Postcondition: returns nil iff the class is well-formed.
func (c *Class) Validate() error {
	var errs []error
	if c.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if c.SkillPointsBase < 0 {
		errs = append(errs, errors.New("skill_points_base must be >= 0"))
	}
	if c.AttackBonus < 0 {
		errs = append(errs, errors.New("attack_bonus must be >= 0"))
	}
	if !slices.Contains([]PowerType{PowerNormal, PowerMagic, PowerPsionic}, c.PowerType) {
		errs = append(errs, fmt.Errorf("power_type %q must be one of [normal, magic, psionic]", c.PowerType))
	}
	if c.Spellcaster && c.Tradition == "" {
		errs = append(errs, errors.New("spellcaster classes must name a tradition"))
	}
	p := c.Policy
	if !slices.Contains([]BonusSkills{BonusSkillsNone, BonusSkillsDisciplines, BonusSkillsSunblade}, p.BonusSkills) {
		errs = append(errs, fmt.Errorf("policy.bonus_skills %q is not valid", p.BonusSkills))
	}
	if p.BaseFoci < 1 {
		errs = append(errs, errors.New("policy.base_foci must be >= 1"))
	}
	if !slices.Contains([]BonusFocus{BonusFocusNone, BonusFocusCombat, BonusFocusNonCombat}, p.BonusFocus) {
		errs = append(errs, fmt.Errorf("policy.bonus_focus %q is not valid", p.BonusFocus))
	}
	if !inventory.ValidProfile(p.EquipmentProfile) {
		errs = append(errs, fmt.Errorf("policy.equipment_profile %q is not valid", p.EquipmentProfile))
	}
	if p.BaseCredits < 0 {
		errs = append(errs, errors.New("policy.base_credits must be >= 0"))
	}
	if p.AbilityTrack != TrackNone && !slices.Contains(Tracks, p.AbilityTrack) {
		errs = append(errs, fmt.Errorf("policy.ability_track %q is not valid", p.AbilityTrack))
	}
	return validationErr("class "+c.Name, errs)
}
