package wfrp

// NPC is a generated non-player character as stored in the session store
type NPC struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SessionID string `json:"session_id"`

	SpeciesID   string `json:"species_id"`
	ArchetypeID string `json:"archetype_id"`
	Career      string `json:"career"`

	TotalBudget int32 `json:"total_budget"`

	Allocation *Allocation  `json:"allocation"`
	Derived    DerivedStats `json:"derived"`

	Trappings []string `json:"trappings"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
