package wfrp

// CharacteristicAllocation records the advances purchased for one
// characteristic and what they cost.
type CharacteristicAllocation struct {
	Base     int32 `json:"base"`
	Advances int32 `json:"advances"`
	Final    int32 `json:"final"`
	XPSpent  int32 `json:"xp_spent"`
}

// SkillAllocation records the advances purchased for one favored skill.
// Total is the linked characteristic's final value plus the advances.
type SkillAllocation struct {
	Name                 string         `json:"name"`
	LinkedCharacteristic Characteristic `json:"linked_characteristic"`
	Advances             int32          `json:"advances"`
	Total                int32          `json:"total"`
	XPSpent              int32          `json:"xp_spent"`
}

// TalentAllocation records one acquired talent. Species-intrinsic talents
// carry zero XPSpent.
type TalentAllocation struct {
	Name    string `json:"name"`
	Rank    int32  `json:"rank"`
	XPSpent int32  `json:"xp_spent"`
}

// AllocationSummary totals the spend across the three categories
type AllocationSummary struct {
	CharacteristicXP int32 `json:"characteristic_xp"`
	SkillXP          int32 `json:"skill_xp"`
	TalentXP         int32 `json:"talent_xp"`
	TotalSpent       int32 `json:"total_spent"`
	Remaining        int32 `json:"remaining"`
}

// Allocation is the full result of spending an XP budget against an
// archetype and a species baseline. It is produced fresh per request and
// never persisted on its own.
type Allocation struct {
	ArchetypeID string `json:"archetype_id"`
	SpeciesID   string `json:"species_id"`
	TotalBudget int32  `json:"total_budget"`

	// FallbackUsed reports that the requested archetype was unknown and
	// the default archetype was substituted
	FallbackUsed bool `json:"fallback_used,omitempty"`

	Characteristics map[Characteristic]CharacteristicAllocation `json:"characteristics"`
	Skills          []SkillAllocation                           `json:"skills"`
	Talents         []TalentAllocation                          `json:"talents"`
	Summary         AllocationSummary                           `json:"summary"`
}

// FinalCharacteristics returns the post-allocation characteristic values
func (a *Allocation) FinalCharacteristics() map[Characteristic]int32 {
	finals := make(map[Characteristic]int32, len(a.Characteristics))
	for c, alloc := range a.Characteristics {
		finals[c] = alloc.Final
	}
	return finals
}

// DerivedStats are the secondary statistics computed from final
// characteristic values and the species lookups.
type DerivedStats struct {
	Wounds     int32 `json:"wounds"`
	Movement   int32 `json:"movement"`
	Fate       int32 `json:"fate"`
	Resilience int32 `json:"resilience"`
}
