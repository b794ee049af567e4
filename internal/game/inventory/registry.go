package inventory

import (
	"fmt"
	"path/filepath"
)

// Catalog holds every loaded equipment entry, partitioned for the selector.
// It is immutable after construction.
type Catalog struct {
	armor   []*Equipment
	shields []*Equipment
	ranged  []*Equipment
	melee   []*Equipment
	gear    []*Equipment
	byName  map[string]*Equipment
}

// NewCatalog partitions armor, weapons and gear.
// Precondition: no entry is nil.
// Postcondition: shields found in armor are moved to the shield list; weapons
// are split by category and non-weapon categories are ignored.
func NewCatalog(armor, weapons, gear []*Equipment) *Catalog {
	c := &Catalog{byName: make(map[string]*Equipment)}
	for _, a := range armor {
		if a.IsShield() {
			c.shields = append(c.shields, a)
		} else {
			c.armor = append(c.armor, a)
		}
		c.byName[a.Name] = a
	}
	for _, w := range weapons {
		switch {
		case w.IsRanged():
			c.ranged = append(c.ranged, w)
		case w.IsMelee():
			c.melee = append(c.melee, w)
		default:
			continue
		}
		c.byName[w.Name] = w
	}
	for _, g := range gear {
		c.gear = append(c.gear, g)
		c.byName[g.Name] = g
	}
	return c
}

// LoadCatalog reads armor, weapons and gear from the matching subdirectories of dir.
// Precondition: dir contains armor, weapons and gear directories.
// Postcondition: returns a populated Catalog or the first load error.
func LoadCatalog(dir string) (*Catalog, error) {
	armor, err := loadItems(filepath.Join(dir, "armor"), "armor")
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	weapons, err := loadItems(filepath.Join(dir, "weapons"), "weapons")
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	for _, w := range weapons {
		if !w.IsRanged() && !w.IsMelee() {
			return nil, fmt.Errorf("LoadCatalog: weapon %q category %q must be %s or %s", w.Name, w.Category, CategoryRanged, CategoryMelee)
		}
	}
	gear, err := loadItems(filepath.Join(dir, "gear"), "gear")
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	return NewCatalog(armor, weapons, gear), nil
}

// Item returns the entry with the given name and whether it was found.
func (c *Catalog) Item(name string) (*Equipment, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Armor returns body armor (shields excluded).
func (c *Catalog) Armor() []*Equipment { return c.armor }

// Shields returns the shield entries.
func (c *Catalog) Shields() []*Equipment { return c.shields }

// Ranged returns the ranged weapons.
func (c *Catalog) Ranged() []*Equipment { return c.ranged }

// Melee returns the melee weapons.
func (c *Catalog) Melee() []*Equipment { return c.melee }

// Gear returns the general gear.
func (c *Catalog) Gear() []*Equipment { return c.gear }

// Len returns the total number of entries.
func (c *Catalog) Len() int { return len(c.byName) }

// atTechLevel returns the entries of items usable at techLevel.
func atTechLevel(items []*Equipment, techLevel int) []*Equipment {
	var out []*Equipment
	for _, e := range items {
		if e.TechLevel <= techLevel {
			out = append(out, e)
		}
	}
	return out
}
