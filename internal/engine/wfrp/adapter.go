// Package wfrp provides the concrete implementation of the engine interface
// using the WFRP 4e rulebook catalogs and rpg-toolkit modules.
package wfrp

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
)

// Budget split percentages. Characteristics and skills take fixed floored
// shares; talents absorb the rounding remainder.
const (
	characteristicShare = 60
	skillShare          = 25
)

// Priority tier shares of the characteristic budget
const (
	primaryShare   = 50
	secondaryShare = 30
	tertiaryShare  = 20
)

// Adapter implements the engine.Engine interface using the rulebook catalogs
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
	archetypes *rulebook.ArchetypeCatalog
	species    *rulebook.SpeciesCatalog
	skills     *rulebook.SkillLinks
	costs      *rulebook.CostSchedule
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	Archetypes *rulebook.ArchetypeCatalog
	Species    *rulebook.SpeciesCatalog
	Skills     *rulebook.SkillLinks
	Costs      *rulebook.CostSchedule
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if c.Archetypes == nil {
		return errors.InvalidArgument("archetype catalog is required")
	}
	if c.Species == nil {
		return errors.InvalidArgument("species catalog is required")
	}
	if c.Skills == nil {
		return errors.InvalidArgument("skill links are required")
	}
	if c.Costs == nil {
		return errors.InvalidArgument("cost schedule is required")
	}
	return nil
}

// NewAdapter creates a new WFRP engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
		archetypes: cfg.Archetypes,
		species:    cfg.Species,
		skills:     cfg.Skills,
		costs:      cfg.Costs,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// AllocateExperience spends an XP budget across characteristic advances,
// skill advances and talents. Rounding is always floor, at every division,
// so the spend can never exceed the budget. The computation is deterministic
// and total: zero or negative budgets yield a valid degenerate result.
func (a *Adapter) AllocateExperience(_ context.Context, input *engine.AllocateExperienceInput) (*engine.AllocateExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	species, ok := a.species.Get(input.SpeciesID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown species: %s", input.SpeciesID)
	}

	archetype, fellBack := a.archetypes.Resolve(input.ArchetypeID)

	budget := input.Budget
	var charBudget, skillBudget, talentBudget int32
	if budget > 0 {
		// Widen before multiplying: budget*share exceeds int32 for
		// budgets past ~35M. The quotient always fits back.
		charBudget = int32(int64(budget) * characteristicShare / 100)
		skillBudget = int32(int64(budget) * skillShare / 100)
		talentBudget = budget - charBudget - skillBudget
	}

	alloc := &wfrp.Allocation{
		ArchetypeID:  archetype.ID,
		SpeciesID:    species.ID,
		TotalBudget:  budget,
		FallbackUsed: fellBack,
	}

	alloc.Characteristics = a.buyCharacteristics(&archetype, &species, charBudget)
	alloc.Skills = a.buySkills(&archetype, alloc.Characteristics, skillBudget)
	alloc.Talents = a.pickTalents(&archetype, &species, talentBudget)
	alloc.Summary = summarize(alloc, budget)

	return &engine.AllocateExperienceOutput{Allocation: alloc}, nil
}

// buyCharacteristics splits the characteristic budget across priority tiers
// and purchases advances greedily within each per-characteristic sub-budget.
// Every characteristic in a tier gets an equal floored share.
func (a *Adapter) buyCharacteristics(archetype *wfrp.Archetype, species *wfrp.Species, budget int32) map[wfrp.Characteristic]wfrp.CharacteristicAllocation {
	out := make(map[wfrp.Characteristic]wfrp.CharacteristicAllocation, len(wfrp.AllCharacteristics))

	tierShares := map[wfrp.PriorityTier]int32{
		wfrp.TierPrimary:   primaryShare,
		wfrp.TierSecondary: secondaryShare,
		wfrp.TierTertiary:  tertiaryShare,
	}
	tierSizes := map[wfrp.PriorityTier]int32{
		wfrp.TierPrimary:   int32(len(archetype.Primary)),
		wfrp.TierSecondary: int32(len(archetype.Secondary)),
		wfrp.TierTertiary:  int32(len(archetype.Tertiary)),
	}

	for _, c := range wfrp.AllCharacteristics {
		tier := archetype.TierOf(c)

		var subBudget int32
		if size := tierSizes[tier]; size > 0 {
			subBudget = int32(int64(budget) * int64(tierShares[tier]) / 100 / int64(size))
		}

		advances, spent := a.buyAdvances(rulebook.ScheduleCharacteristic, subBudget)
		base := species.Base[c]
		out[c] = wfrp.CharacteristicAllocation{
			Base:     base,
			Advances: advances,
			Final:    base + advances,
			XPSpent:  spent,
		}
	}
	return out
}

// buySkills splits the skill budget evenly across the archetype's favored
// skills and purchases advances greedily per skill. A skill's total reads
// its linked characteristic's final value, so characteristic purchases must
// complete first. Skills that afford no advances are dropped.
func (a *Adapter) buySkills(archetype *wfrp.Archetype, chars map[wfrp.Characteristic]wfrp.CharacteristicAllocation, budget int32) []wfrp.SkillAllocation {
	out := []wfrp.SkillAllocation{}
	if len(archetype.FavoredSkills) == 0 {
		return out
	}

	perSkill := budget / int32(len(archetype.FavoredSkills))
	for _, name := range archetype.FavoredSkills {
		advances, spent := a.buyAdvances(rulebook.ScheduleSkill, perSkill)
		if advances == 0 {
			continue
		}

		linked := a.skills.LinkedCharacteristic(name)
		out = append(out, wfrp.SkillAllocation{
			Name:                 name,
			LinkedCharacteristic: linked,
			Advances:             advances,
			Total:                chars[linked].Final + advances,
			XPSpent:              spent,
		})
	}
	return out
}

// pickTalents appends the species' intrinsic talents at no cost, then buys
// favored talents in archetype order until the talent budget or the list
// runs out.
func (a *Adapter) pickTalents(archetype *wfrp.Archetype, species *wfrp.Species, budget int32) []wfrp.TalentAllocation {
	out := make([]wfrp.TalentAllocation, 0, len(species.IntrinsicTalents))
	for _, name := range species.IntrinsicTalents {
		out = append(out, wfrp.TalentAllocation{Name: name, Rank: 1})
	}

	count := budget / a.costs.TalentCost()
	for i := int32(0); i < count && int(i) < len(archetype.FavoredTalents); i++ {
		out = append(out, wfrp.TalentAllocation{
			Name:    archetype.FavoredTalents[i],
			Rank:    1,
			XPSpent: a.costs.TalentCost(),
		})
	}
	return out
}

// buyAdvances purchases advances greedily against a cost schedule until the
// next advance no longer fits the sub-budget. The schedule's advance ceiling
// bounds the loop for pathological budgets.
func (a *Adapter) buyAdvances(kind rulebook.ScheduleKind, subBudget int32) (advances, spent int32) {
	max := a.costs.MaxAdvances(kind)
	for advances < max {
		cost := a.costs.Cost(kind, advances)
		if spent+cost > subBudget {
			break
		}
		advances++
		spent += cost
	}
	return advances, spent
}

func summarize(alloc *wfrp.Allocation, budget int32) wfrp.AllocationSummary {
	var s wfrp.AllocationSummary
	for _, c := range alloc.Characteristics {
		s.CharacteristicXP += c.XPSpent
	}
	for _, sk := range alloc.Skills {
		s.SkillXP += sk.XPSpent
	}
	for _, t := range alloc.Talents {
		s.TalentXP += t.XPSpent
	}
	s.TotalSpent = s.CharacteristicXP + s.SkillXP + s.TalentXP
	s.Remaining = budget - s.TotalSpent
	return s
}

// CalculateDerivedStats computes the derived stat block from final
// characteristics and the species' fixed traits.
func (a *Adapter) CalculateDerivedStats(_ context.Context, input *engine.CalculateDerivedStatsInput) (*engine.CalculateDerivedStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	species, ok := a.species.Get(input.SpeciesID)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown species: %s", input.SpeciesID)
	}

	sb := wfrp.Bonus(input.Characteristics[wfrp.CharStrength])
	tb := wfrp.Bonus(input.Characteristics[wfrp.CharToughness])
	wb := wfrp.Bonus(input.Characteristics[wfrp.CharWillpower])

	// Halflings leave strength out of the wounds formula
	wounds := sb + 2*tb + wb
	if species.ID == "halfling" {
		wounds = 2*tb + wb
	}
	if wounds < 1 {
		wounds = 1
	}

	return &engine.CalculateDerivedStatsOutput{
		Stats: wfrp.DerivedStats{
			Wounds:     wounds,
			Movement:   species.Movement,
			Fate:       species.Fate,
			Resilience: species.Resilience,
		},
	}, nil
}

// RollCharacteristicTest rolls a d100 against a target. A roll at or under
// the target succeeds; success levels are the difference of the tens digits.
func (a *Adapter) RollCharacteristicTest(_ context.Context, input *engine.RollCharacteristicTestInput) (*engine.RollCharacteristicTestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Target < 0 {
		return nil, errors.InvalidArgument("target must be non-negative")
	}

	roll, err := a.diceRoller.Roll(100)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll d100")
	}

	r := int32(roll)
	return &engine.RollCharacteristicTestOutput{
		Roll:          r,
		Target:        input.Target,
		Success:       r <= input.Target,
		SuccessLevels: input.Target/10 - r/10,
	}, nil
}
