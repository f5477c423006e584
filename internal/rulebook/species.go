package rulebook

import (
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// SpeciesCatalog is the fixed set of playable species with their baseline
// characteristic values and species-wide traits.
type SpeciesCatalog struct {
	byID  map[string]wfrp.Species
	order []string
}

// NewSpeciesCatalog returns the built-in species catalog
func NewSpeciesCatalog() *SpeciesCatalog {
	c := &SpeciesCatalog{byID: make(map[string]wfrp.Species)}
	for _, s := range builtinSpecies() {
		c.byID[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	return c
}

// Get returns the species with the given ID
func (c *SpeciesCatalog) Get(id string) (wfrp.Species, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// IDs returns species IDs in catalog order
func (c *SpeciesCatalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func builtinSpecies() []wfrp.Species {
	return []wfrp.Species{
		{
			ID: "human",
			Base: map[wfrp.Characteristic]int32{
				wfrp.CharWeaponSkill: 30, wfrp.CharBallisticSkill: 30,
				wfrp.CharStrength: 30, wfrp.CharToughness: 30,
				wfrp.CharInitiative: 30, wfrp.CharAgility: 30,
				wfrp.CharDexterity: 30, wfrp.CharIntelligence: 30,
				wfrp.CharWillpower: 30, wfrp.CharFellowship: 30,
			},
			Movement:         4,
			Fate:             2,
			Resilience:       1,
			IntrinsicTalents: []string{"Doomed"},
		},
		{
			ID: "dwarf",
			Base: map[wfrp.Characteristic]int32{
				wfrp.CharWeaponSkill: 40, wfrp.CharBallisticSkill: 30,
				wfrp.CharStrength: 30, wfrp.CharToughness: 40,
				wfrp.CharInitiative: 30, wfrp.CharAgility: 20,
				wfrp.CharDexterity: 40, wfrp.CharIntelligence: 30,
				wfrp.CharWillpower: 50, wfrp.CharFellowship: 20,
			},
			Movement:         3,
			Fate:             0,
			Resilience:       2,
			IntrinsicTalents: []string{"Magic Resistance", "Night Vision", "Resolute"},
		},
		{
			ID: "halfling",
			Base: map[wfrp.Characteristic]int32{
				wfrp.CharWeaponSkill: 20, wfrp.CharBallisticSkill: 40,
				wfrp.CharStrength: 20, wfrp.CharToughness: 30,
				wfrp.CharInitiative: 30, wfrp.CharAgility: 30,
				wfrp.CharDexterity: 40, wfrp.CharIntelligence: 30,
				wfrp.CharWillpower: 40, wfrp.CharFellowship: 40,
			},
			Movement:         3,
			Fate:             0,
			Resilience:       2,
			IntrinsicTalents: []string{"Night Vision", "Resistance (Chaos)", "Small"},
		},
		{
			ID: "high_elf",
			Base: map[wfrp.Characteristic]int32{
				wfrp.CharWeaponSkill: 40, wfrp.CharBallisticSkill: 40,
				wfrp.CharStrength: 30, wfrp.CharToughness: 30,
				wfrp.CharInitiative: 50, wfrp.CharAgility: 40,
				wfrp.CharDexterity: 40, wfrp.CharIntelligence: 40,
				wfrp.CharWillpower: 40, wfrp.CharFellowship: 30,
			},
			Movement:         5,
			Fate:             0,
			Resilience:       0,
			IntrinsicTalents: []string{"Acute Sense (Sight)", "Night Vision", "Second Sight", "Read/Write"},
		},
		{
			ID: "wood_elf",
			Base: map[wfrp.Characteristic]int32{
				wfrp.CharWeaponSkill: 40, wfrp.CharBallisticSkill: 40,
				wfrp.CharStrength: 30, wfrp.CharToughness: 30,
				wfrp.CharInitiative: 50, wfrp.CharAgility: 40,
				wfrp.CharDexterity: 40, wfrp.CharIntelligence: 40,
				wfrp.CharWillpower: 40, wfrp.CharFellowship: 30,
			},
			Movement:         5,
			Fate:             0,
			Resilience:       0,
			IntrinsicTalents: []string{"Acute Sense (Sight)", "Hardy", "Night Vision", "Rover"},
		},
	}
}
