package character

import (
	"github.com/cory-johannsen/swngen/internal/game/inventory"
)

// Sheet is the stable export form of a Character. Field names are part of
// the JSON contract.
type Sheet struct {
	ID               string                   `json:"id"`
	Name             string                   `json:"name"`
	Level            int                      `json:"level"`
	PowerType        string                   `json:"power_type"`
	Class            string                   `json:"class"`
	Background       string                   `json:"background"`
	Attributes       map[Attribute]ScoreSheet `json:"attributes"`
	Skills           map[string]int           `json:"skills"`
	Foci             []FocusSheet             `json:"foci"`
	PsychicPowers    *PsychicSheet            `json:"psychic_powers,omitempty"`
	Spells           *SpellSheet              `json:"spells,omitempty"`
	SpecialAbilities *AbilitySheet            `json:"special_abilities,omitempty"`
	HP               int                      `json:"hp"`
	AC               int                      `json:"ac"`
	AttackBonus      int                      `json:"attack_bonus"`
	SavingThrows     SaveSheet                `json:"saving_throws"`
	Equipment        *EquipmentSheet          `json:"equipment,omitempty"`
	Credits          int                      `json:"credits"`
}

// ScoreSheet is one attribute.
type ScoreSheet struct {
	Score    int `json:"score"`
	Modifier int `json:"modifier"`
}

// FocusSheet is one held focus.
type FocusSheet struct {
	Name   string `json:"name"`
	Tier   string `json:"tier"`
	Level  int    `json:"level"`
	Level1 string `json:"level_1"`
	Level2 string `json:"level_2,omitempty"`
	Bonus  bool   `json:"bonus,omitempty"`
}

// TechniqueSheet is one psychic technique.
type TechniqueSheet struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	EffortCost  int    `json:"effort_cost"`
	Description string `json:"description,omitempty"`
}

// PsychicSheet is the psychic power block.
type PsychicSheet struct {
	EffortPool  int                         `json:"effort_pool"`
	Disciplines map[string][]TechniqueSheet `json:"disciplines"`
}

// SpellEntry is one known spell.
type SpellEntry struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
}

// SpellSheet is the spell block.
type SpellSheet struct {
	Tradition  string       `json:"tradition"`
	Spells     []SpellEntry `json:"spells"`
	SpellSlots map[int]int  `json:"spell_slots"`
}

// AbilityEntry is one special ability.
type AbilityEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Level       int    `json:"level,omitempty"`
}

// WeaponSheet is a Sunblade sacred weapon.
type WeaponSheet struct {
	Type      string `json:"type"`
	Damage    string `json:"damage"`
	Shock     string `json:"shock,omitempty"`
	Attribute string `json:"attribute,omitempty"`
	Range     string `json:"range,omitempty"`
}

// AbilitySheet is the special-ability block.
type AbilitySheet struct {
	Track          string         `json:"track"`
	CharacterLevel int            `json:"character_level"`
	SkillLevel     int            `json:"skill_level"`
	Abilities      []AbilityEntry `json:"abilities"`
	SacredWeapon   *WeaponSheet   `json:"sacred_weapon,omitempty"`
	EffortPool     int            `json:"effort_pool"`
	HitBonus       int            `json:"hit_bonus"`
	ACBonus        int            `json:"ac_bonus"`
	HPBonus        int            `json:"hp_bonus"`
	SaveBonus      int            `json:"save_bonus"`
	DamageBonus    int            `json:"damage_bonus"`
	HealingDice    string         `json:"healing_dice,omitempty"`
}

// SaveSheet is the saving-throw block.
type SaveSheet struct {
	Physical int `json:"Physical"`
	Evasion  int `json:"Evasion"`
	Mental   int `json:"Mental"`
}

// EquipmentSheet is the equipment block.
type EquipmentSheet struct {
	Armor            *inventory.Equipment   `json:"armor"`
	Shield           *inventory.Equipment   `json:"shield,omitempty"`
	Weapons          []*inventory.Equipment `json:"weapons"`
	Gear             []*inventory.Equipment `json:"gear"`
	TotalCost        int                    `json:"total_cost"`
	TotalEncumbrance int                    `json:"total_encumbrance"`
}

// Sheet converts c into its export form.
//
// Precondition: c was produced by the generator (Class, Background and Skills set).
func (c *Character) Sheet() *Sheet {
	s := &Sheet{
		ID:           c.ID,
		Name:         c.Name,
		Level:        c.Level,
		PowerType:    string(c.PowerType()),
		Class:        c.Class.Name,
		Background:   c.Background.Name,
		Attributes:   make(map[Attribute]ScoreSheet, len(Attributes)),
		Skills:       c.Skills.Map(),
		Foci:         make([]FocusSheet, 0, len(c.Foci)),
		HP:           c.HP,
		AC:           c.ArmorClass(),
		AttackBonus:  c.AttackBonus,
		SavingThrows: SaveSheet(c.Saves),
		Credits:      c.Credits,
	}
	for _, a := range Attributes {
		s.Attributes[a] = ScoreSheet{Score: c.Attributes.Score(a), Modifier: c.Mod(a)}
	}
	for _, f := range c.Foci {
		s.Foci = append(s.Foci, FocusSheet{
			Name:   f.Name(),
			Tier:   string(f.Def.Tier),
			Level:  f.Level,
			Level1: f.Def.Level1,
			Level2: f.Def.Level2,
			Bonus:  f.Bonus,
		})
	}
	if p := c.Psychic; p != nil {
		ps := &PsychicSheet{EffortPool: p.EffortPool, Disciplines: make(map[string][]TechniqueSheet, len(p.Disciplines))}
		for name, techs := range p.Disciplines {
			out := make([]TechniqueSheet, len(techs))
			for i, t := range techs {
				out[i] = TechniqueSheet{Name: t.Name, Level: t.Level, EffortCost: t.EffortCost, Description: t.Description}
			}
			ps.Disciplines[name] = out
		}
		s.PsychicPowers = ps
	}
	if l := c.Spells; l != nil {
		ss := &SpellSheet{Tradition: l.Tradition, Spells: make([]SpellEntry, len(l.Spells)), SpellSlots: l.Slots}
		for i, sp := range l.Spells {
			ss.Spells[i] = SpellEntry{Name: sp.Name, Level: sp.Level, Description: sp.Description}
		}
		s.Spells = ss
	}
	if a := c.Abilities; a != nil {
		st := a.Stats
		as := &AbilitySheet{
			Track:          string(a.Track),
			CharacterLevel: a.CharacterLevel,
			SkillLevel:     a.SkillLevel,
			EffortPool:     st.EffortPool,
			HitBonus:       st.HitBonus,
			ACBonus:        st.ACBonus,
			HPBonus:        st.HPBonus,
			SaveBonus:      st.SaveBonus,
			DamageBonus:    st.DamageBonus,
			HealingDice:    st.HealingDice,
			Abilities:      []AbilityEntry{},
		}
		for _, ab := range a.Abilities() {
			as.Abilities = append(as.Abilities, AbilityEntry{Name: ab.Name, Description: ab.Description, Level: ab.Level})
		}
		if w := a.SacredWeapon; w != nil {
			as.SacredWeapon = &WeaponSheet{Type: w.Type, Damage: w.Damage, Shock: w.Shock, Attribute: w.Attribute, Range: w.Range}
		}
		s.SpecialAbilities = as
	}
	if e := c.Equipment; e != nil {
		s.Equipment = &EquipmentSheet{
			Armor:            e.Armor,
			Shield:           e.Shield,
			Weapons:          append([]*inventory.Equipment{}, e.Weapons...),
			Gear:             append([]*inventory.Equipment{}, e.Gear...),
			TotalCost:        e.TotalCost(),
			TotalEncumbrance: e.TotalEncumbrance(),
		}
	}
	return s
}
