package rulebook

import (
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// fallbackLink is used for skills the table does not name. Agility keeps
// totals sane for physical specialisations we have not catalogued.
const fallbackLink = wfrp.CharAgility

// SkillLinks maps skill names to the characteristic their tests roll against
type SkillLinks struct {
	byName map[string]wfrp.Characteristic
}

// NewSkillLinks returns the built-in skill linkage table
func NewSkillLinks() *SkillLinks {
	return &SkillLinks{byName: map[string]wfrp.Characteristic{
		"Melee (Basic)":        wfrp.CharWeaponSkill,
		"Melee (Fencing)":      wfrp.CharWeaponSkill,
		"Ranged (Bow)":         wfrp.CharBallisticSkill,
		"Ranged (Throwing)":    wfrp.CharBallisticSkill,
		"Athletics":            wfrp.CharAgility,
		"Dodge":                wfrp.CharAgility,
		"Ride (Horse)":         wfrp.CharAgility,
		"Stealth (Rural)":      wfrp.CharAgility,
		"Stealth (Urban)":      wfrp.CharAgility,
		"Climb":                wfrp.CharStrength,
		"Intimidate":           wfrp.CharStrength,
		"Consume Alcohol":      wfrp.CharToughness,
		"Endurance":            wfrp.CharToughness,
		"Intuition":            wfrp.CharInitiative,
		"Navigation":           wfrp.CharInitiative,
		"Perception":           wfrp.CharInitiative,
		"Track":                wfrp.CharInitiative,
		"Pick Lock":            wfrp.CharDexterity,
		"Play (Lute)":          wfrp.CharDexterity,
		"Sleight of Hand":      wfrp.CharDexterity,
		"Trade (Apothecary)":   wfrp.CharDexterity,
		"Evaluate":             wfrp.CharIntelligence,
		"Gamble":               wfrp.CharIntelligence,
		"Heal":                 wfrp.CharIntelligence,
		"Language (Classical)": wfrp.CharIntelligence,
		"Language (Magick)":    wfrp.CharIntelligence,
		"Lore (History)":       wfrp.CharIntelligence,
		"Lore (Magic)":         wfrp.CharIntelligence,
		"Lore (Medicine)":      wfrp.CharIntelligence,
		"Lore (Theology)":      wfrp.CharIntelligence,
		"Outdoor Survival":     wfrp.CharIntelligence,
		"Research":             wfrp.CharIntelligence,
		"Channelling":          wfrp.CharWillpower,
		"Cool":                 wfrp.CharWillpower,
		"Bribery":              wfrp.CharFellowship,
		"Charm":                wfrp.CharFellowship,
		"Entertain (Acting)":   wfrp.CharFellowship,
		"Gossip":               wfrp.CharFellowship,
		"Haggle":               wfrp.CharFellowship,
		"Leadership":           wfrp.CharFellowship,
		"Pray":                 wfrp.CharFellowship,
	}}
}

// LinkedCharacteristic returns the characteristic a skill tests against,
// falling back to Agility for unlisted skills.
func (l *SkillLinks) LinkedCharacteristic(skill string) wfrp.Characteristic {
	if c, ok := l.byName[skill]; ok {
		return c
	}
	return fallbackLink
}
