// Package engine defines the interface for game rule calculations
package engine

import (
	"context"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// Engine handles rule calculations for character generation
type Engine interface {
	// AllocateExperience spends an XP budget on characteristic advances,
	// skill advances and talents for an archetype and species
	AllocateExperience(ctx context.Context, input *AllocateExperienceInput) (*AllocateExperienceOutput, error)

	// CalculateDerivedStats computes wounds, movement, fate and resilience
	// from final characteristics and species traits
	CalculateDerivedStats(ctx context.Context, input *CalculateDerivedStatsInput) (*CalculateDerivedStatsOutput, error)

	// RollCharacteristicTest rolls a d100 against a target value and scores
	// success levels
	RollCharacteristicTest(ctx context.Context, input *RollCharacteristicTestInput) (*RollCharacteristicTestOutput, error)
}

// AllocateExperienceInput contains the data needed to spend an XP budget
type AllocateExperienceInput struct {
	ArchetypeID string
	SpeciesID   string
	Budget      int32
}

// AllocateExperienceOutput contains the complete spend breakdown
type AllocateExperienceOutput struct {
	Allocation *wfrp.Allocation
}

// CalculateDerivedStatsInput contains the data needed to derive secondary stats
type CalculateDerivedStatsInput struct {
	SpeciesID       string
	Characteristics map[wfrp.Characteristic]int32
}

// CalculateDerivedStatsOutput contains the derived stat block
type CalculateDerivedStatsOutput struct {
	Stats wfrp.DerivedStats
}

// RollCharacteristicTestInput contains the target value for a d100 test
type RollCharacteristicTestInput struct {
	Target int32
}

// RollCharacteristicTestOutput contains the roll and its outcome
type RollCharacteristicTestOutput struct {
	Roll          int32
	Target        int32
	Success       bool
	SuccessLevels int32
}
