package tools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/gametest"
	npcsvc "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/services/npc"
)

// NPCGenerateTool defines the MCP tool schema for one-off NPC generation.
func NPCGenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "npc_generate",
		Description: "Generates a WFRP NPC stat block from an archetype, species and XP budget without saving it",
	}
}

// NPCCreateTool defines the MCP tool schema for creating a persisted NPC.
func NPCCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "npc_create",
		Description: "Generates a WFRP NPC and saves it into a game session",
	}
}

// NPCGetTool defines the MCP tool schema for fetching an NPC.
func NPCGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "npc_get",
		Description: "Fetches a saved NPC by ID",
	}
}

// NPCListTool defines the MCP tool schema for listing a session's NPCs.
func NPCListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "npc_list",
		Description: "Lists the NPCs saved in a game session",
	}
}

// NPCDeleteTool defines the MCP tool schema for deleting an NPC.
func NPCDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "npc_delete",
		Description: "Deletes a saved NPC by ID",
	}
}

// TestRollTool defines the MCP tool schema for d100 characteristic tests.
func TestRollTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "test_roll",
		Description: "Rolls a d100 characteristic test against a target value and reports success levels",
	}
}

// RollHistoryTool defines the MCP tool schema for reading roll history.
func RollHistoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_history",
		Description: "Lists the d100 test rolls recorded for a game session",
	}
}

// RollClearTool defines the MCP tool schema for clearing roll history.
func RollClearTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_clear",
		Description: "Discards a game session's recorded d100 test rolls",
	}
}

// ArchetypeListTool defines the MCP tool schema for listing archetypes.
func ArchetypeListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "archetype_list",
		Description: "Lists the available NPC archetypes",
	}
}

// SpeciesListTool defines the MCP tool schema for listing species.
func SpeciesListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "species_list",
		Description: "Lists the available species with their baseline characteristics",
	}
}

// NPCGenerateHandler runs a one-off NPC generation.
func NPCGenerateHandler(svc npcsvc.Service) mcp.ToolHandlerFor[NPCGenerateInput, NPCGenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NPCGenerateInput) (*mcp.CallToolResult, NPCGenerateResult, error) {
		out, err := svc.Generate(ctx, &npcsvc.GenerateInput{
			ArchetypeID: input.ArchetypeID,
			SpeciesID:   input.SpeciesID,
			Budget:      input.Budget,
		})
		if err != nil {
			return nil, NPCGenerateResult{}, fmt.Errorf("npc generation failed: %w", err)
		}

		return nil, NPCGenerateResult{
			Allocation: out.Allocation,
			Derived:    out.Derived,
			Career:     out.Career,
			Trappings:  out.Trappings,
			Rendered:   renderStatBlock("", out),
		}, nil
	}
}

// NPCCreateHandler generates and persists an NPC.
func NPCCreateHandler(svc npcsvc.Service) mcp.ToolHandlerFor[NPCCreateInput, NPCResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NPCCreateInput) (*mcp.CallToolResult, NPCResult, error) {
		out, err := svc.Create(ctx, &npcsvc.CreateInput{
			Name:        input.Name,
			SessionID:   input.SessionID,
			ArchetypeID: input.ArchetypeID,
			SpeciesID:   input.SpeciesID,
			Budget:      input.Budget,
		})
		if err != nil {
			return nil, NPCResult{}, fmt.Errorf("npc creation failed: %w", err)
		}

		return nil, NPCResult{
			NPC:      out.NPC,
			Rendered: renderNPC(out.NPC),
		}, nil
	}
}

// NPCGetHandler fetches a saved NPC.
func NPCGetHandler(svc npcsvc.Service) mcp.ToolHandlerFor[NPCGetInput, NPCResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NPCGetInput) (*mcp.CallToolResult, NPCResult, error) {
		out, err := svc.Get(ctx, &npcsvc.GetInput{NPCID: input.NPCID})
		if err != nil {
			return nil, NPCResult{}, fmt.Errorf("npc lookup failed: %w", err)
		}

		return nil, NPCResult{
			NPC:      out.NPC,
			Rendered: renderNPC(out.NPC),
		}, nil
	}
}

// NPCListHandler lists a session's NPCs.
func NPCListHandler(svc npcsvc.Service) mcp.ToolHandlerFor[NPCListInput, NPCListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NPCListInput) (*mcp.CallToolResult, NPCListResult, error) {
		out, err := svc.ListBySession(ctx, &npcsvc.ListBySessionInput{SessionID: input.SessionID})
		if err != nil {
			return nil, NPCListResult{}, fmt.Errorf("npc listing failed: %w", err)
		}

		result := NPCListResult{NPCs: make([]NPCSummary, 0, len(out.NPCs))}
		for _, npc := range out.NPCs {
			result.NPCs = append(result.NPCs, NPCSummary{
				ID:          npc.ID,
				Name:        npc.Name,
				ArchetypeID: npc.ArchetypeID,
				SpeciesID:   npc.SpeciesID,
				Career:      npc.Career,
				Wounds:      npc.Derived.Wounds,
			})
		}
		return nil, result, nil
	}
}

// NPCDeleteHandler deletes a saved NPC.
func NPCDeleteHandler(svc npcsvc.Service) mcp.ToolHandlerFor[NPCDeleteInput, NPCDeleteResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NPCDeleteInput) (*mcp.CallToolResult, NPCDeleteResult, error) {
		if _, err := svc.Delete(ctx, &npcsvc.DeleteInput{NPCID: input.NPCID}); err != nil {
			return nil, NPCDeleteResult{}, fmt.Errorf("npc deletion failed: %w", err)
		}
		return nil, NPCDeleteResult{Deleted: true}, nil
	}
}

// TestRollHandler rolls a d100 characteristic test.
func TestRollHandler(svc gametest.Service) mcp.ToolHandlerFor[TestRollInput, TestRollResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TestRollInput) (*mcp.CallToolResult, TestRollResult, error) {
		out, err := svc.RollTest(ctx, &gametest.RollTestInput{
			SessionID:      input.SessionID,
			Subject:        input.Subject,
			Characteristic: wfrp.Characteristic(input.Characteristic),
			Target:         input.Target,
		})
		if err != nil {
			return nil, TestRollResult{}, fmt.Errorf("test roll failed: %w", err)
		}

		outcome := "succeeds"
		if !out.Roll.Success {
			outcome = "fails"
		}
		rendered := fmt.Sprintf("%s test %s: rolled %d vs %d (%+d SL)",
			input.Characteristic, outcome, out.Roll.Roll, out.Roll.Target, out.Roll.SuccessLevels)

		return nil, TestRollResult{
			Roll:          out.Roll.Roll,
			Target:        out.Roll.Target,
			Success:       out.Roll.Success,
			SuccessLevels: out.Roll.SuccessLevels,
			Rendered:      rendered,
		}, nil
	}
}

// RollHistoryHandler reads a session's recorded rolls.
func RollHistoryHandler(svc gametest.Service) mcp.ToolHandlerFor[RollHistoryInput, RollHistoryResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollHistoryInput) (*mcp.CallToolResult, RollHistoryResult, error) {
		out, err := svc.GetHistory(ctx, &gametest.GetHistoryInput{SessionID: input.SessionID})
		if err != nil {
			return nil, RollHistoryResult{}, fmt.Errorf("roll history lookup failed: %w", err)
		}

		result := RollHistoryResult{
			SessionID: out.History.SessionID,
			Rolls:     make([]TestRollEntry, 0, len(out.History.Rolls)),
		}
		for _, r := range out.History.Rolls {
			result.Rolls = append(result.Rolls, TestRollEntry{
				RollID:         r.RollID,
				Subject:        r.Subject,
				Characteristic: r.Characteristic,
				Target:         r.Target,
				Roll:           r.Roll,
				Success:        r.Success,
				SuccessLevels:  r.SuccessLevels,
			})
		}
		return nil, result, nil
	}
}

// RollClearHandler discards a session's recorded rolls.
func RollClearHandler(svc gametest.Service) mcp.ToolHandlerFor[RollClearInput, RollClearResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RollClearInput) (*mcp.CallToolResult, RollClearResult, error) {
		out, err := svc.ClearHistory(ctx, &gametest.ClearHistoryInput{SessionID: input.SessionID})
		if err != nil {
			return nil, RollClearResult{}, fmt.Errorf("roll history clear failed: %w", err)
		}
		return nil, RollClearResult{RollsDeleted: out.RollsDeleted}, nil
	}
}

// ArchetypeListHandler lists the archetype catalog.
func ArchetypeListHandler(svc npcsvc.Service) mcp.ToolHandlerFor[ArchetypeListInput, ArchetypeListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ArchetypeListInput) (*mcp.CallToolResult, ArchetypeListResult, error) {
		out, err := svc.ListArchetypes(ctx, &npcsvc.ListArchetypesInput{})
		if err != nil {
			return nil, ArchetypeListResult{}, fmt.Errorf("archetype listing failed: %w", err)
		}

		result := ArchetypeListResult{Archetypes: make([]ArchetypeEntry, 0, len(out.Archetypes))}
		for _, a := range out.Archetypes {
			primary := make([]string, 0, len(a.Primary))
			for _, c := range a.Primary {
				primary = append(primary, string(c))
			}
			result.Archetypes = append(result.Archetypes, ArchetypeEntry{
				ID:             a.ID,
				Career:         a.SuggestedCareer,
				Primary:        primary,
				FavoredSkills:  a.FavoredSkills,
				FavoredTalents: a.FavoredTalents,
			})
		}
		return nil, result, nil
	}
}

// SpeciesListHandler lists the species catalog.
func SpeciesListHandler(svc npcsvc.Service) mcp.ToolHandlerFor[SpeciesListInput, SpeciesListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SpeciesListInput) (*mcp.CallToolResult, SpeciesListResult, error) {
		out, err := svc.ListSpecies(ctx, &npcsvc.ListSpeciesInput{})
		if err != nil {
			return nil, SpeciesListResult{}, fmt.Errorf("species listing failed: %w", err)
		}

		result := SpeciesListResult{Species: make([]SpeciesEntry, 0, len(out.Species))}
		for _, sp := range out.Species {
			base := make(map[string]int32, len(sp.Base))
			for c, v := range sp.Base {
				base[string(c)] = v
			}
			result.Species = append(result.Species, SpeciesEntry{
				ID:               sp.ID,
				Base:             base,
				Movement:         sp.Movement,
				Fate:             sp.Fate,
				Resilience:       sp.Resilience,
				IntrinsicTalents: sp.IntrinsicTalents,
			})
		}
		return nil, result, nil
	}
}

// renderNPC formats a stored NPC as a markdown stat block
func renderNPC(npc *wfrp.NPC) string {
	return renderStatBlock(npc.Name, &npcsvc.GenerateOutput{
		Allocation: npc.Allocation,
		Derived:    npc.Derived,
		Career:     npc.Career,
		Trappings:  npc.Trappings,
	})
}
