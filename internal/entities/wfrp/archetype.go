package wfrp

// Archetype is a weighting profile describing which characteristics, skills
// and talents a generated NPC should favor. Archetypes are immutable static
// data; they are defined once in the rulebook catalog and never mutated.
type Archetype struct {
	ID string

	// Primary, Secondary and Tertiary are disjoint sets that together
	// partition the ten characteristics (3/3/4).
	Primary   []Characteristic
	Secondary []Characteristic
	Tertiary  []Characteristic

	// FavoredSkills is consulted in order when spending the skill budget
	FavoredSkills []string

	// FavoredTalents is consulted in order when spending the talent budget
	FavoredTalents []string

	// SuggestedCareer is a display label for the generated NPC
	SuggestedCareer string
}

// PriorityTier labels an archetype's weighting tier for a characteristic
type PriorityTier string

// Priority tiers
const (
	TierPrimary   PriorityTier = "primary"
	TierSecondary PriorityTier = "secondary"
	TierTertiary  PriorityTier = "tertiary"
)

// TierOf returns the priority tier the archetype assigns to a
// characteristic. Characteristics missing from all three sets are tertiary.
func (a *Archetype) TierOf(c Characteristic) PriorityTier {
	for _, p := range a.Primary {
		if p == c {
			return TierPrimary
		}
	}
	for _, s := range a.Secondary {
		if s == c {
			return TierSecondary
		}
	}
	return TierTertiary
}
