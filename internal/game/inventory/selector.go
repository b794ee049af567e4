package inventory

import (
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/swngen/internal/game/dice"
)

// Profile selects the class-flavoured equipment heuristics.
type Profile string

const (
	ProfileWarrior    Profile = "warrior"
	ProfileExpert     Profile = "expert"
	ProfilePsychic    Profile = "psychic"
	ProfileAdventurer Profile = "adventurer"
)

// ValidProfile reports whether p names a known profile.
func ValidProfile(p Profile) bool {
	_, ok := profileRules[p]
	return ok
}

// Essentials are bought first when affordable.
var Essentials = []string{"Compad", "Lazarus Patch", "Power Cell Type A", "Backpack"}

const (
	// MaxWeapons is the number of weapons the selector aims for.
	MaxWeapons = 2
	// MinGear and MaxGear bound the gear count.
	MinGear = 3
	MaxGear = 5

	priorityGearFraction = 0.10
	fillerGearFraction   = 0.05
	topArmorChoices      = 3
)

type heuristics struct {
	armorCategory  string
	shieldChance   int
	rangedEnc      int
	rangedFraction float64
	meleeSizes     []string
	gearPriorities []string
}

var profileRules = map[Profile]heuristics{
	ProfileWarrior: {
		armorCategory:  CategoryCombatArmor,
		shieldChance:   30,
		rangedEnc:      2,
		rangedFraction: 0.3,
		meleeSizes:     []string{SizeLarge},
		gearPriorities: []string{"medical", "ammo", "field"},
	},
	ProfileExpert: {
		armorCategory:  CategoryStreetArmor,
		rangedEnc:      1,
		rangedFraction: 0.2,
		meleeSizes:     []string{SizeSmall},
		gearPriorities: []string{"tools", "computing", "communications", "field"},
	},
	ProfilePsychic: {
		armorCategory:  CategoryStreetArmor,
		rangedEnc:      1,
		rangedFraction: 0.15,
		meleeSizes:     []string{SizeSmall},
		gearPriorities: []string{"medical", "communications", "field"},
	},
	ProfileAdventurer: {
		armorCategory:  CategoryCombatArmor,
		shieldChance:   30,
		rangedEnc:      1,
		rangedFraction: 0.2,
		meleeSizes:     []string{SizeMedium, SizeSmall},
		gearPriorities: []string{"field", "medical", "communications"},
	},
}

// Selector buys a starting kit from a Catalog. It is first-fit random, not
// budget-optimal, and never spends more than the budget it is given.
type Selector struct {
	catalog *Catalog
	roller  *dice.Roller
	logger  *zap.Logger
}

// NewSelector creates a Selector.
// Precondition: catalog, roller and logger must be non-nil.
func NewSelector(catalog *Catalog, roller *dice.Roller, logger *zap.Logger) *Selector {
	if catalog == nil || roller == nil || logger == nil {
		panic("inventory.NewSelector: precondition violated: nil argument")
	}
	return &Selector{catalog: catalog, roller: roller, logger: logger}
}

// purse tracks the running budget during one selection.
type purse struct{ credits int }

func (p *purse) affords(e *Equipment) bool { return e.Cost <= p.credits }

func (p *purse) within(e *Equipment, fraction float64) bool {
	return float64(e.Cost) <= float64(p.credits)*fraction
}

func (p *purse) buy(e *Equipment) { p.credits -= e.Cost }

// Select chooses armor, an optional shield, up to two weapons and three to
// five gear items usable at techLevel within budget.
// Precondition: budget >= 0.
// Postcondition: result.TotalCost() <= budget; len(result.Weapons) <= MaxWeapons.
func (s *Selector) Select(profile Profile, techLevel, budget int) *EquipmentSet {
	h, ok := profileRules[profile]
	if !ok {
		h = profileRules[ProfileAdventurer]
	}
	p := &purse{credits: budget}
	set := &EquipmentSet{}

	set.Armor = s.selectArmor(h, techLevel, p)
	if h.shieldChance > 0 && s.roller.Chance(h.shieldChance) {
		set.Shield = s.selectShield(techLevel, p)
	}
	set.Weapons = s.selectWeapons(h, techLevel, p)
	if len(set.Weapons) < MaxWeapons {
		s.logger.Debug("fewer weapons than ideal",
			zap.String("profile", string(profile)),
			zap.Int("weapons", len(set.Weapons)),
		)
	}
	count := s.roller.Between(MinGear, MaxGear)
	set.Gear = s.selectGear(h, techLevel, p, count)
	return set
}

func (s *Selector) selectArmor(h heuristics, techLevel int, p *purse) *Equipment {
	var available []*Equipment
	for _, a := range atTechLevel(s.catalog.Armor(), techLevel) {
		if p.affords(a) {
			available = append(available, a)
		}
	}
	if len(available) == 0 {
		return nil
	}
	var preferred []*Equipment
	for _, a := range available {
		if a.Category == h.armorCategory {
			preferred = append(preferred, a)
		}
	}
	var pick *Equipment
	if len(preferred) > 0 {
		pick = dice.Pick(s.roller, preferred)
	} else {
		sort.SliceStable(available, func(i, j int) bool {
			return available[i].ArmorClass().Base > available[j].ArmorClass().Base
		})
		pick = dice.Pick(s.roller, available[:min(topArmorChoices, len(available))])
	}
	p.buy(pick)
	return pick
}

func (s *Selector) selectShield(techLevel int, p *purse) *Equipment {
	var affordable []*Equipment
	for _, sh := range atTechLevel(s.catalog.Shields(), techLevel) {
		if p.affords(sh) {
			affordable = append(affordable, sh)
		}
	}
	if len(affordable) == 0 {
		return nil
	}
	pick := dice.Pick(s.roller, affordable)
	p.buy(pick)
	return pick
}

func (s *Selector) selectWeapons(h heuristics, techLevel int, p *purse) []*Equipment {
	ranged := atTechLevel(s.catalog.Ranged(), techLevel)
	melee := atTechLevel(s.catalog.Melee(), techLevel)
	var chosen []*Equipment

	take := func(pool []*Equipment, keep func(*Equipment) bool) bool {
		var cands []*Equipment
		for _, w := range pool {
			if p.affords(w) && !slices.Contains(chosen, w) && keep(w) {
				cands = append(cands, w)
			}
		}
		if len(cands) == 0 {
			return false
		}
		w := dice.Pick(s.roller, cands)
		p.buy(w)
		chosen = append(chosen, w)
		return true
	}

	take(ranged, func(w *Equipment) bool {
		return w.Enc == h.rangedEnc && p.within(w, h.rangedFraction)
	})
	take(melee, func(w *Equipment) bool {
		return slices.Contains(h.meleeSizes, w.Size())
	})

	anyWeapon := func(*Equipment) bool { return true }
	if len(chosen) == 0 {
		take(ranged, anyWeapon)
	}
	for len(chosen) < MaxWeapons {
		if !take(melee, anyWeapon) && !take(ranged, anyWeapon) {
			break
		}
	}
	return chosen
}

func (s *Selector) selectGear(h heuristics, techLevel int, p *purse, count int) []*Equipment {
	available := atTechLevel(s.catalog.Gear(), techLevel)
	var gear []*Equipment
	remove := func(e *Equipment) {
		available = slices.DeleteFunc(available, func(x *Equipment) bool { return x == e })
	}
	buy := func(e *Equipment) {
		gear = append(gear, e)
		p.buy(e)
		remove(e)
	}

	for _, name := range Essentials {
		if len(gear) >= count {
			break
		}
		i := slices.IndexFunc(available, func(e *Equipment) bool { return e.Name == name })
		if i >= 0 && p.affords(available[i]) {
			buy(available[i])
		}
	}

	for _, cat := range h.gearPriorities {
		if len(gear) >= count {
			break
		}
		var cands []*Equipment
		for _, e := range available {
			if e.Category == cat && p.within(e, priorityGearFraction) {
				cands = append(cands, e)
			}
		}
		if len(cands) > 0 {
			buy(dice.Pick(s.roller, cands))
		}
	}

	for len(gear) < count && len(available) > 0 {
		var cands []*Equipment
		for _, e := range available {
			if p.within(e, fillerGearFraction) {
				cands = append(cands, e)
			}
		}
		if len(cands) == 0 {
			break
		}
		buy(dice.Pick(s.roller, cands))
	}
	return gear
}
