package rulebook

import (
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// DefaultArchetypeID is used when a requested archetype is not in the catalog
const DefaultArchetypeID = "soldier"

// ArchetypeCatalog is the fixed set of NPC archetypes. Every archetype
// partitions all ten characteristics into priority tiers of 3, 3 and 4.
type ArchetypeCatalog struct {
	byID  map[string]wfrp.Archetype
	order []string
}

// NewArchetypeCatalog returns the built-in archetype catalog
func NewArchetypeCatalog() *ArchetypeCatalog {
	c := &ArchetypeCatalog{byID: make(map[string]wfrp.Archetype)}
	for _, a := range builtinArchetypes() {
		c.byID[a.ID] = a
		c.order = append(c.order, a.ID)
	}
	return c
}

// Get returns the archetype with the given ID
func (c *ArchetypeCatalog) Get(id string) (wfrp.Archetype, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Resolve looks up an archetype, substituting the default for unknown IDs.
// The second return reports whether the fallback was taken.
func (c *ArchetypeCatalog) Resolve(id string) (wfrp.Archetype, bool) {
	if a, ok := c.byID[id]; ok {
		return a, false
	}
	return c.byID[DefaultArchetypeID], true
}

// IDs returns archetype IDs in catalog order
func (c *ArchetypeCatalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func builtinArchetypes() []wfrp.Archetype {
	return []wfrp.Archetype{
		{
			ID:        "soldier",
			Primary:   []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharStrength, wfrp.CharToughness},
			Secondary: []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharAgility, wfrp.CharWillpower},
			Tertiary:  []wfrp.Characteristic{wfrp.CharInitiative, wfrp.CharDexterity, wfrp.CharIntelligence, wfrp.CharFellowship},
			FavoredSkills: []string{
				"Melee (Basic)", "Dodge", "Endurance", "Athletics", "Intimidate", "Consume Alcohol",
			},
			FavoredTalents:  []string{"Strike Mighty Blow", "Drilled", "Shieldsman", "Warrior Born"},
			SuggestedCareer: "Soldier",
		},
		{
			ID:        "knight",
			Primary:   []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharStrength, wfrp.CharFellowship},
			Secondary: []wfrp.Characteristic{wfrp.CharToughness, wfrp.CharWillpower, wfrp.CharAgility},
			Tertiary:  []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharInitiative, wfrp.CharDexterity, wfrp.CharIntelligence},
			FavoredSkills: []string{
				"Melee (Basic)", "Ride (Horse)", "Leadership", "Endurance", "Charm", "Intimidate",
			},
			FavoredTalents:  []string{"Noble Blood", "Strike Mighty Blow", "Robust", "Warleader"},
			SuggestedCareer: "Knight",
		},
		{
			ID:        "duellist",
			Primary:   []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharAgility, wfrp.CharInitiative},
			Secondary: []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharDexterity, wfrp.CharFellowship},
			Tertiary:  []wfrp.Characteristic{wfrp.CharStrength, wfrp.CharToughness, wfrp.CharIntelligence, wfrp.CharWillpower},
			FavoredSkills: []string{
				"Melee (Fencing)", "Dodge", "Perception", "Charm", "Sleight of Hand", "Gamble",
			},
			FavoredTalents:  []string{"Ambidextrous", "Combat Reflexes", "Riposte", "Reversal"},
			SuggestedCareer: "Duellist",
		},
		{
			ID:        "hunter",
			Primary:   []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharInitiative, wfrp.CharAgility},
			Secondary: []wfrp.Characteristic{wfrp.CharStrength, wfrp.CharToughness, wfrp.CharIntelligence},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharDexterity, wfrp.CharWillpower, wfrp.CharFellowship},
			FavoredSkills: []string{
				"Ranged (Bow)", "Track", "Outdoor Survival", "Perception", "Stealth (Rural)", "Climb",
			},
			FavoredTalents:  []string{"Marksman", "Rover", "Sharpshooter", "Strider"},
			SuggestedCareer: "Hunter",
		},
		{
			ID:        "outlaw",
			Primary:   []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharAgility, wfrp.CharInitiative},
			Secondary: []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharStrength, wfrp.CharFellowship},
			Tertiary:  []wfrp.Characteristic{wfrp.CharToughness, wfrp.CharDexterity, wfrp.CharIntelligence, wfrp.CharWillpower},
			FavoredSkills: []string{
				"Ranged (Bow)", "Stealth (Rural)", "Melee (Basic)", "Athletics", "Gossip", "Intimidate",
			},
			FavoredTalents:  []string{"Rover", "Marksman", "Criminal", "Flee!"},
			SuggestedCareer: "Outlaw",
		},
		{
			ID:        "scout",
			Primary:   []wfrp.Characteristic{wfrp.CharInitiative, wfrp.CharAgility, wfrp.CharIntelligence},
			Secondary: []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharToughness, wfrp.CharDexterity},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharStrength, wfrp.CharWillpower, wfrp.CharFellowship},
			FavoredSkills: []string{
				"Navigation", "Outdoor Survival", "Perception", "Ranged (Bow)", "Ride (Horse)", "Stealth (Rural)",
			},
			FavoredTalents:  []string{"Orientation", "Rover", "Acute Sense (Sight)", "Strider"},
			SuggestedCareer: "Scout",
		},
		{
			ID:        "thief",
			Primary:   []wfrp.Characteristic{wfrp.CharAgility, wfrp.CharDexterity, wfrp.CharInitiative},
			Secondary: []wfrp.Characteristic{wfrp.CharIntelligence, wfrp.CharWillpower, wfrp.CharFellowship},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharBallisticSkill, wfrp.CharStrength, wfrp.CharToughness},
			FavoredSkills: []string{
				"Stealth (Urban)", "Pick Lock", "Sleight of Hand", "Climb", "Perception", "Gossip",
			},
			FavoredTalents:  []string{"Alley Cat", "Nimble Fingered", "Trapper", "Criminal"},
			SuggestedCareer: "Thief",
		},
		{
			ID:        "assassin",
			Primary:   []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharAgility, wfrp.CharDexterity},
			Secondary: []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharInitiative, wfrp.CharWillpower},
			Tertiary:  []wfrp.Characteristic{wfrp.CharStrength, wfrp.CharToughness, wfrp.CharIntelligence, wfrp.CharFellowship},
			FavoredSkills: []string{
				"Melee (Basic)", "Stealth (Urban)", "Climb", "Perception", "Ranged (Throwing)", "Dodge",
			},
			FavoredTalents:  []string{"Combat Reflexes", "Alley Cat", "Strike to Injure", "Nimble Fingered"},
			SuggestedCareer: "Assassin",
		},
		{
			ID:        "wizard",
			Primary:   []wfrp.Characteristic{wfrp.CharIntelligence, wfrp.CharWillpower, wfrp.CharInitiative},
			Secondary: []wfrp.Characteristic{wfrp.CharDexterity, wfrp.CharAgility, wfrp.CharFellowship},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharBallisticSkill, wfrp.CharStrength, wfrp.CharToughness},
			FavoredSkills: []string{
				"Channelling", "Language (Magick)", "Lore (Magic)", "Perception", "Cool", "Intuition",
			},
			FavoredTalents:  []string{"Petty Magic", "Arcane Magic", "Aethyric Attunement", "Second Sight"},
			SuggestedCareer: "Wizard",
		},
		{
			ID:        "priest",
			Primary:   []wfrp.Characteristic{wfrp.CharWillpower, wfrp.CharFellowship, wfrp.CharToughness},
			Secondary: []wfrp.Characteristic{wfrp.CharIntelligence, wfrp.CharInitiative, wfrp.CharStrength},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharBallisticSkill, wfrp.CharAgility, wfrp.CharDexterity},
			FavoredSkills: []string{
				"Pray", "Cool", "Lore (Theology)", "Charm", "Heal", "Leadership",
			},
			FavoredTalents:  []string{"Bless", "Invoke", "Holy Visions", "Strong-minded"},
			SuggestedCareer: "Priest",
		},
		{
			ID:        "scholar",
			Primary:   []wfrp.Characteristic{wfrp.CharIntelligence, wfrp.CharInitiative, wfrp.CharDexterity},
			Secondary: []wfrp.Characteristic{wfrp.CharWillpower, wfrp.CharFellowship, wfrp.CharAgility},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharBallisticSkill, wfrp.CharStrength, wfrp.CharToughness},
			FavoredSkills: []string{
				"Lore (History)", "Research", "Language (Classical)", "Perception", "Evaluate", "Cool",
			},
			FavoredTalents:  []string{"Read/Write", "Bookish", "Linguistics", "Super Numerate"},
			SuggestedCareer: "Scholar",
		},
		{
			ID:        "physician",
			Primary:   []wfrp.Characteristic{wfrp.CharIntelligence, wfrp.CharDexterity, wfrp.CharWillpower},
			Secondary: []wfrp.Characteristic{wfrp.CharInitiative, wfrp.CharFellowship, wfrp.CharAgility},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharBallisticSkill, wfrp.CharStrength, wfrp.CharToughness},
			FavoredSkills: []string{
				"Heal", "Lore (Medicine)", "Perception", "Trade (Apothecary)", "Charm", "Cool",
			},
			FavoredTalents:  []string{"Surgery", "Field Dressing", "Concoct", "Read/Write"},
			SuggestedCareer: "Physician",
		},
		{
			ID:        "merchant",
			Primary:   []wfrp.Characteristic{wfrp.CharFellowship, wfrp.CharIntelligence, wfrp.CharWillpower},
			Secondary: []wfrp.Characteristic{wfrp.CharInitiative, wfrp.CharAgility, wfrp.CharDexterity},
			Tertiary:  []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharBallisticSkill, wfrp.CharStrength, wfrp.CharToughness},
			FavoredSkills: []string{
				"Haggle", "Evaluate", "Charm", "Gossip", "Bribery", "Consume Alcohol",
			},
			FavoredTalents:  []string{"Dealmaker", "Read/Write", "Suave", "Etiquette (Guilder)"},
			SuggestedCareer: "Merchant",
		},
		{
			ID:        "entertainer",
			Primary:   []wfrp.Characteristic{wfrp.CharFellowship, wfrp.CharAgility, wfrp.CharDexterity},
			Secondary: []wfrp.Characteristic{wfrp.CharWeaponSkill, wfrp.CharInitiative, wfrp.CharWillpower},
			Tertiary:  []wfrp.Characteristic{wfrp.CharBallisticSkill, wfrp.CharStrength, wfrp.CharToughness, wfrp.CharIntelligence},
			FavoredSkills: []string{
				"Entertain (Acting)", "Charm", "Play (Lute)", "Athletics", "Gossip", "Sleight of Hand",
			},
			FavoredTalents:  []string{"Attractive", "Suave", "Contortionist", "Mimic"},
			SuggestedCareer: "Entertainer",
		},
	}
}
