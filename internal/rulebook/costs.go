// Package rulebook holds the static WFRP 4e data consumed by the generation
// engine: advance cost schedules, the archetype and species catalogs, the
// skill linkage table, and starting trappings. Catalogs are immutable after
// construction and are passed into the engine by reference.
package rulebook

// ScheduleKind selects which progressive cost table applies
type ScheduleKind string

// The two progressive schedules. Talents are not on a schedule; they cost a
// flat amount per rank.
const (
	ScheduleCharacteristic ScheduleKind = "characteristic"
	ScheduleSkill          ScheduleKind = "skill"
)

// advancesPerTier is how many advances share a cost tier. The first tier is
// one advance wider (advances 0-5) than every later tier; that band is part
// of the published pricing and must not be "corrected".
const advancesPerTier = 5

// flatTalentCost is the XP cost of one talent rank
const flatTalentCost = 100

// CostSchedule prices advances from tiered cost tables. Indexing past the
// last tier reuses the final cost indefinitely.
type CostSchedule struct {
	characteristic []int32
	skill          []int32
}

// NewCostSchedule returns the WFRP 4e advance cost tables
func NewCostSchedule() *CostSchedule {
	return &CostSchedule{
		characteristic: []int32{25, 30, 40, 50, 70, 90, 120, 150, 190, 240},
		skill:          []int32{10, 15, 20, 30, 40, 60, 80, 110, 140, 180},
	}
}

// Cost returns the XP cost of the next advance given how many advances have
// already been purchased. incrementIndex is the zero-based count of prior
// advances, not the characteristic or skill value.
func (s *CostSchedule) Cost(kind ScheduleKind, incrementIndex int32) int32 {
	table := s.table(kind)

	// Advances 0-5 all price at tier 0; tiers step every 5 advances after.
	var tier int32
	if incrementIndex > advancesPerTier {
		tier = (incrementIndex - 1) / advancesPerTier
	}

	if tier >= int32(len(table)) {
		tier = int32(len(table)) - 1
	}
	return table[tier]
}

// TalentCost returns the flat XP cost of one talent rank
func (s *CostSchedule) TalentCost() int32 {
	return flatTalentCost
}

// MaxAdvances bounds the greedy purchase loop for a schedule. The bound is
// derived from the table length: once every tier has been walked the price
// only ever repeats, so tiers × advances-per-tier is as far as any sane
// budget reaches.
func (s *CostSchedule) MaxAdvances(kind ScheduleKind) int32 {
	return int32(len(s.table(kind))) * advancesPerTier
}

func (s *CostSchedule) table(kind ScheduleKind) []int32 {
	if kind == ScheduleSkill {
		return s.skill
	}
	return s.characteristic
}
