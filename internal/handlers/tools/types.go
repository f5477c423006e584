// Package tools exposes NPC generation and game-test operations as MCP tools
package tools

import (
	"fmt"
	"strings"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	npcsvc "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/services/npc"
)

// NPCGenerateInput is the MCP tool input for a one-off NPC generation.
type NPCGenerateInput struct {
	ArchetypeID string `json:"archetype_id" jsonschema:"archetype identifier, e.g. soldier or wizard"`
	SpeciesID   string `json:"species_id" jsonschema:"species identifier, e.g. human or dwarf"`
	Budget      int32  `json:"budget" jsonschema:"experience point budget to spend"`
}

// NPCGenerateResult is the MCP tool output for a one-off NPC generation.
type NPCGenerateResult struct {
	Allocation *wfrp.Allocation  `json:"allocation" jsonschema:"complete experience spend breakdown"`
	Derived    wfrp.DerivedStats `json:"derived" jsonschema:"wounds, movement, fate and resilience"`
	Career     string            `json:"career" jsonschema:"suggested career label"`
	Trappings  []string          `json:"trappings" jsonschema:"starting equipment"`
	Rendered   string            `json:"rendered" jsonschema:"markdown stat block"`
}

// NPCCreateInput is the MCP tool input for creating a persisted NPC.
type NPCCreateInput struct {
	Name        string `json:"name" jsonschema:"NPC name"`
	SessionID   string `json:"session_id" jsonschema:"game session the NPC belongs to"`
	ArchetypeID string `json:"archetype_id" jsonschema:"archetype identifier"`
	SpeciesID   string `json:"species_id" jsonschema:"species identifier"`
	Budget      int32  `json:"budget" jsonschema:"experience point budget to spend"`
}

// NPCResult is the MCP tool output carrying a stored NPC.
type NPCResult struct {
	NPC      *wfrp.NPC `json:"npc" jsonschema:"the stored NPC"`
	Rendered string    `json:"rendered" jsonschema:"markdown stat block"`
}

// NPCGetInput is the MCP tool input for fetching an NPC by ID.
type NPCGetInput struct {
	NPCID string `json:"npc_id" jsonschema:"NPC identifier"`
}

// NPCListInput is the MCP tool input for listing a session's NPCs.
type NPCListInput struct {
	SessionID string `json:"session_id" jsonschema:"game session identifier"`
}

// NPCListResult is the MCP tool output for listing a session's NPCs.
type NPCListResult struct {
	NPCs []NPCSummary `json:"npcs" jsonschema:"the session's NPCs"`
}

// NPCSummary is a compact listing entry for one NPC.
type NPCSummary struct {
	ID          string `json:"id" jsonschema:"NPC identifier"`
	Name        string `json:"name" jsonschema:"NPC name"`
	ArchetypeID string `json:"archetype_id" jsonschema:"archetype identifier"`
	SpeciesID   string `json:"species_id" jsonschema:"species identifier"`
	Career      string `json:"career" jsonschema:"suggested career label"`
	Wounds      int32  `json:"wounds" jsonschema:"wound total"`
}

// NPCDeleteInput is the MCP tool input for deleting an NPC.
type NPCDeleteInput struct {
	NPCID string `json:"npc_id" jsonschema:"NPC identifier"`
}

// NPCDeleteResult is the MCP tool output for deleting an NPC.
type NPCDeleteResult struct {
	Deleted bool `json:"deleted" jsonschema:"whether the NPC was removed"`
}

// TestRollInput is the MCP tool input for a d100 characteristic test.
type TestRollInput struct {
	SessionID      string `json:"session_id" jsonschema:"game session identifier"`
	Subject        string `json:"subject,omitempty" jsonschema:"optional name of who is tested"`
	Characteristic string `json:"characteristic" jsonschema:"characteristic code, e.g. ws or fel"`
	Target         int32  `json:"target" jsonschema:"target value to roll at or under"`
}

// TestRollResult is the MCP tool output for a d100 characteristic test.
type TestRollResult struct {
	Roll          int32  `json:"roll" jsonschema:"the d100 result"`
	Target        int32  `json:"target" jsonschema:"target value rolled against"`
	Success       bool   `json:"success" jsonschema:"whether the test succeeded"`
	SuccessLevels int32  `json:"success_levels" jsonschema:"success levels scored"`
	Rendered      string `json:"rendered" jsonschema:"one-line summary of the test"`
}

// RollHistoryInput is the MCP tool input for reading a session's roll history.
type RollHistoryInput struct {
	SessionID string `json:"session_id" jsonschema:"game session identifier"`
}

// RollHistoryResult is the MCP tool output for reading a session's roll history.
type RollHistoryResult struct {
	SessionID string          `json:"session_id" jsonschema:"game session identifier"`
	Rolls     []TestRollEntry `json:"rolls" jsonschema:"recorded rolls, oldest first"`
}

// TestRollEntry is one recorded roll in a session's history.
type TestRollEntry struct {
	RollID         string `json:"roll_id" jsonschema:"roll identifier"`
	Subject        string `json:"subject,omitempty" jsonschema:"who was tested"`
	Characteristic string `json:"characteristic" jsonschema:"characteristic code"`
	Target         int32  `json:"target" jsonschema:"target value rolled against"`
	Roll           int32  `json:"roll" jsonschema:"the d100 result"`
	Success        bool   `json:"success" jsonschema:"whether the test succeeded"`
	SuccessLevels  int32  `json:"success_levels" jsonschema:"success levels scored"`
}

// RollClearInput is the MCP tool input for clearing a session's roll history.
type RollClearInput struct {
	SessionID string `json:"session_id" jsonschema:"game session identifier"`
}

// RollClearResult is the MCP tool output for clearing a session's roll history.
type RollClearResult struct {
	RollsDeleted int32 `json:"rolls_deleted" jsonschema:"how many rolls were discarded"`
}

// ArchetypeListInput is the MCP tool input for listing archetypes.
type ArchetypeListInput struct{}

// ArchetypeListResult is the MCP tool output for listing archetypes.
type ArchetypeListResult struct {
	Archetypes []ArchetypeEntry `json:"archetypes" jsonschema:"available archetypes"`
}

// ArchetypeEntry describes one archetype.
type ArchetypeEntry struct {
	ID             string   `json:"id" jsonschema:"archetype identifier"`
	Career         string   `json:"career" jsonschema:"suggested career label"`
	Primary        []string `json:"primary" jsonschema:"primary characteristic codes"`
	FavoredSkills  []string `json:"favored_skills" jsonschema:"skills the archetype advances"`
	FavoredTalents []string `json:"favored_talents" jsonschema:"talents the archetype buys"`
}

// SpeciesListInput is the MCP tool input for listing species.
type SpeciesListInput struct{}

// SpeciesListResult is the MCP tool output for listing species.
type SpeciesListResult struct {
	Species []SpeciesEntry `json:"species" jsonschema:"available species"`
}

// SpeciesEntry describes one species.
type SpeciesEntry struct {
	ID               string           `json:"id" jsonschema:"species identifier"`
	Base             map[string]int32 `json:"base" jsonschema:"baseline characteristic values"`
	Movement         int32            `json:"movement" jsonschema:"movement rate"`
	Fate             int32            `json:"fate" jsonschema:"fate point maximum"`
	Resilience       int32            `json:"resilience" jsonschema:"resilience point maximum"`
	IntrinsicTalents []string         `json:"intrinsic_talents" jsonschema:"talents every member has"`
}

// renderStatBlock formats a generation result as a markdown stat block
func renderStatBlock(name string, out *npcsvc.GenerateOutput) string {
	var b strings.Builder

	alloc := out.Allocation
	if name == "" {
		name = fmt.Sprintf("%s (%s)", out.Career, alloc.SpeciesID)
	}
	fmt.Fprintf(&b, "## %s\n", name)
	fmt.Fprintf(&b, "*%s %s — %d XP*\n\n", alloc.SpeciesID, alloc.ArchetypeID, alloc.TotalBudget)

	var header, values strings.Builder
	for _, c := range wfrp.AllCharacteristics {
		fmt.Fprintf(&header, "| %s ", strings.ToUpper(string(c)))
		fmt.Fprintf(&values, "| %d ", alloc.Characteristics[c].Final)
	}
	b.WriteString(header.String() + "|\n")
	b.WriteString(strings.Repeat("|---", len(wfrp.AllCharacteristics)) + "|\n")
	b.WriteString(values.String() + "|\n\n")

	fmt.Fprintf(&b, "**W** %d | **M** %d | **Fate** %d | **Resilience** %d\n\n",
		out.Derived.Wounds, out.Derived.Movement, out.Derived.Fate, out.Derived.Resilience)

	if len(alloc.Skills) > 0 {
		names := make([]string, 0, len(alloc.Skills))
		for _, sk := range alloc.Skills {
			names = append(names, fmt.Sprintf("%s %d", sk.Name, sk.Total))
		}
		fmt.Fprintf(&b, "**Skills:** %s\n\n", strings.Join(names, ", "))
	}

	if len(alloc.Talents) > 0 {
		names := make([]string, 0, len(alloc.Talents))
		for _, t := range alloc.Talents {
			names = append(names, t.Name)
		}
		fmt.Fprintf(&b, "**Talents:** %s\n\n", strings.Join(names, ", "))
	}

	if len(out.Trappings) > 0 {
		fmt.Fprintf(&b, "**Trappings:** %s\n\n", strings.Join(out.Trappings, ", "))
	}

	fmt.Fprintf(&b, "*Spent %d XP (%d remaining)*\n",
		alloc.Summary.TotalSpent, alloc.Summary.Remaining)

	return b.String()
}
