package rulebook

// TrappingCatalog maps archetypes to their starting equipment
type TrappingCatalog struct {
	byArchetype map[string][]string
}

// NewTrappingCatalog returns the built-in trapping catalog
func NewTrappingCatalog() *TrappingCatalog {
	return &TrappingCatalog{byArchetype: map[string][]string{
		"soldier":     {"Hand Weapon", "Shield", "Mail Shirt", "Helmet", "Uniform"},
		"knight":      {"Lance", "Hand Weapon", "Full Plate Armour", "Destrier with Saddle and Tack"},
		"duellist":    {"Rapier", "Main Gauche", "Fine Clothing", "Deck of Cards"},
		"hunter":      {"Bow with 10 Arrows", "Hand Weapon", "Leather Jack", "Animal Trap", "Rations (1 week)"},
		"outlaw":      {"Bow with 10 Arrows", "Hand Weapon", "Leather Jack", "Rope (10 yards)"},
		"scout":       {"Bow with 10 Arrows", "Hand Weapon", "Leather Jack", "Riding Horse with Saddle", "Map Case"},
		"thief":       {"Dagger", "Crowbar", "Lock Picks", "Sack", "Dark Cloak"},
		"assassin":    {"Dagger", "Throwing Knives", "Rope (10 yards)", "Dark Cloak", "Vial of Poison"},
		"wizard":      {"Quarterstaff", "Grimoire", "Writing Kit", "Robes"},
		"priest":      {"Hand Weapon", "Religious Symbol", "Prayer Book", "Robes", "Candles"},
		"scholar":     {"Writing Kit", "Three Books", "Reading Lens", "Court Clothing"},
		"physician":   {"Trade Tools (Medicine)", "Bandages", "Healing Draught", "Good Clothing"},
		"merchant":    {"Abacus", "Ledger", "Writing Kit", "Good Clothing", "Purse of Silver"},
		"entertainer": {"Lute", "Costume", "Juggling Balls", "Hand Weapon"},
	}}
}

// Get returns a copy of the starting trappings for an archetype. Unknown
// archetypes get an empty list.
func (c *TrappingCatalog) Get(archetypeID string) []string {
	items := c.byArchetype[archetypeID]
	out := make([]string, len(items))
	copy(out, items)
	return out
}
