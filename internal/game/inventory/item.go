// Package inventory provides definitions, loaders and the budget-aware
// selector for armor, weapons and gear.
package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category constants for Equipment.Category that the selector reads.
const (
	CategoryCombatArmor = "combat"
	CategoryStreetArmor = "street"
	CategoryShield      = "shield"
	CategoryRanged      = "ranged_weapon"
	CategoryMelee       = "melee_weapon"
)

// Equipment is one catalog entry. Properties carries the free-form bag
// (ac, damage, range, size, ...).
type Equipment struct {
	Name        string         `yaml:"name" json:"name"`
	Category    string         `yaml:"category" json:"category"`
	Cost        int            `yaml:"cost" json:"cost"`
	Enc         int            `yaml:"enc" json:"enc"`
	TechLevel   int            `yaml:"tech_level" json:"tech_level"`
	Description string         `yaml:"description" json:"description,omitempty"`
	Properties  map[string]any `yaml:"properties" json:"properties,omitempty"`
}

// Prop returns the named property rendered as a string, or "".
func (e *Equipment) Prop(key string) string {
	v, ok := e.Properties[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

// Size returns the weapon size property ("small", "medium", "large") or "".
func (e *Equipment) Size() string { return strings.ToLower(e.Prop("size")) }

// String renders e as "Name (TLn, Ncr, N enc)".
func (e *Equipment) String() string {
	return fmt.Sprintf("%s (TL%d, %dcr, %d enc)", e.Name, e.TechLevel, e.Cost, e.Enc)
}

// Validate checks that the Equipment satisfies its invariants.
// Precondition: e is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (e *Equipment) Validate() error {
	var errs []error
	if e.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if e.Category == "" {
		errs = append(errs, errors.New("category must not be empty"))
	}
	if e.Cost < 0 {
		errs = append(errs, errors.New("cost must be >= 0"))
	}
	if e.Enc < 0 {
		errs = append(errs, errors.New("enc must be >= 0"))
	}
	if e.TechLevel < 0 || e.TechLevel > 5 {
		errs = append(errs, fmt.Errorf("tech_level %d must be in [0,5]", e.TechLevel))
	}
	if len(errs) > 0 {
		return fmt.Errorf("equipment %q validation failed: %v", e.Name, errs)
	}
	return nil
}

// loadItems reads all .yaml files in dir, each holding a list of equipment
// under key, validates every entry and returns them in file order.
// Precondition: dir must be a readable directory.
// Postcondition: returns a non-nil slice on success.
func loadItems(dir, key string) ([]*Equipment, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("loadItems: cannot read directory %q: %w", dir, err)
	}
	items := []*Equipment{}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loadItems: cannot read file %q: %w", path, err)
		}
		var file map[string][]*Equipment
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("loadItems: cannot parse file %q: %w", path, err)
		}
		for _, e := range file[key] {
			if err := e.Validate(); err != nil {
				return nil, fmt.Errorf("loadItems: invalid entry in %q: %w", path, err)
			}
			items = append(items, e)
		}
	}
	return items, nil
}
