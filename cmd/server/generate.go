package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine"
	enginewfrp "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
)

var (
	genArchetype string
	genSpecies   string
	genBudget    int32
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one NPC and print it as JSON",
	Long:  `Run the allocation engine locally, without Redis or an MCP client, and print the resulting stat block as JSON.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genArchetype, "archetype", "soldier", "archetype ID")
	generateCmd.Flags().StringVar(&genSpecies, "species", "human", "species ID")
	generateCmd.Flags().Int32Var(&genBudget, "budget", 1000, "XP budget")
}

// generateResult is the JSON shape printed by the generate command
type generateResult struct {
	Allocation *wfrp.Allocation  `json:"allocation"`
	Derived    wfrp.DerivedStats `json:"derived"`
	Career     string            `json:"career"`
	Trappings  []string          `json:"trappings"`
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	archetypes := rulebook.NewArchetypeCatalog()
	species := rulebook.NewSpeciesCatalog()
	trappings := rulebook.NewTrappingCatalog()

	eng, err := enginewfrp.NewAdapter(&enginewfrp.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
		Archetypes: archetypes,
		Species:    species,
		Skills:     rulebook.NewSkillLinks(),
		Costs:      rulebook.NewCostSchedule(),
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	allocOut, err := eng.AllocateExperience(ctx, &engine.AllocateExperienceInput{
		ArchetypeID: genArchetype,
		SpeciesID:   genSpecies,
		Budget:      genBudget,
	})
	if err != nil {
		return err
	}

	derivedOut, err := eng.CalculateDerivedStats(ctx, &engine.CalculateDerivedStatsInput{
		SpeciesID:       allocOut.Allocation.SpeciesID,
		Characteristics: allocOut.Allocation.FinalCharacteristics(),
	})
	if err != nil {
		return err
	}

	archetype, _ := archetypes.Get(allocOut.Allocation.ArchetypeID)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(generateResult{
		Allocation: allocOut.Allocation,
		Derived:    derivedOut.Stats,
		Career:     archetype.SuggestedCareer,
		Trappings:  trappings.Get(allocOut.Allocation.ArchetypeID),
	})
}
