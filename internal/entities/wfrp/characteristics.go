// Package wfrp defines the domain entities for Warhammer Fantasy Roleplay
// 4th edition NPC generation.
package wfrp

// Characteristic identifies one of the ten WFRP characteristics
type Characteristic string

// The ten characteristics, in rulebook order
const (
	CharWeaponSkill    Characteristic = "ws"
	CharBallisticSkill Characteristic = "bs"
	CharStrength       Characteristic = "s"
	CharToughness      Characteristic = "t"
	CharInitiative     Characteristic = "i"
	CharAgility        Characteristic = "ag"
	CharDexterity      Characteristic = "dex"
	CharIntelligence   Characteristic = "int"
	CharWillpower      Characteristic = "wp"
	CharFellowship     Characteristic = "fel"
)

// AllCharacteristics lists every characteristic in rulebook order. The order
// matters for deterministic iteration during allocation.
var AllCharacteristics = []Characteristic{
	CharWeaponSkill,
	CharBallisticSkill,
	CharStrength,
	CharToughness,
	CharInitiative,
	CharAgility,
	CharDexterity,
	CharIntelligence,
	CharWillpower,
	CharFellowship,
}

// displayNames maps characteristic codes to rulebook labels
var displayNames = map[Characteristic]string{
	CharWeaponSkill:    "Weapon Skill",
	CharBallisticSkill: "Ballistic Skill",
	CharStrength:       "Strength",
	CharToughness:      "Toughness",
	CharInitiative:     "Initiative",
	CharAgility:        "Agility",
	CharDexterity:      "Dexterity",
	CharIntelligence:   "Intelligence",
	CharWillpower:      "Willpower",
	CharFellowship:     "Fellowship",
}

// DisplayName returns the rulebook label for a characteristic
func (c Characteristic) DisplayName() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Bonus returns the characteristic bonus, the tens digit of the value
func Bonus(value int32) int32 {
	if value < 0 {
		return 0
	}
	return value / 10
}
