package inventory

// EquipmentSet is the gear owned by one character.
type EquipmentSet struct {
	Armor   *Equipment
	Shield  *Equipment
	Weapons []*Equipment
	Gear    []*Equipment
}

// Items returns every owned entry: armor, shield, weapons, then gear.
func (s *EquipmentSet) Items() []*Equipment {
	var out []*Equipment
	if s.Armor != nil {
		out = append(out, s.Armor)
	}
	if s.Shield != nil {
		out = append(out, s.Shield)
	}
	out = append(out, s.Weapons...)
	return append(out, s.Gear...)
}

// TotalCost sums the cost of every owned entry.
func (s *EquipmentSet) TotalCost() int {
	total := 0
	for _, e := range s.Items() {
		total += e.Cost
	}
	return total
}

// TotalEncumbrance sums the encumbrance of every owned entry.
func (s *EquipmentSet) TotalEncumbrance() int {
	total := 0
	for _, e := range s.Items() {
		total += e.Enc
	}
	return total
}
