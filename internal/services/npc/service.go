// Package npc defines the interface for NPC operations
package npc

import (
	"context"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
)

// Service defines the interface for NPC operations
type Service interface {
	// Generation
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)

	// Persisted NPC lifecycle
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
	ListBySession(ctx context.Context, input *ListBySessionInput) (*ListBySessionOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// Catalog lookups
	ListArchetypes(ctx context.Context, input *ListArchetypesInput) (*ListArchetypesOutput, error)
	ListSpecies(ctx context.Context, input *ListSpeciesInput) (*ListSpeciesOutput, error)
}

// GenerateInput defines the request for a one-off NPC generation
type GenerateInput struct {
	ArchetypeID string
	SpeciesID   string
	Budget      int32
}

// GenerateOutput defines the response for a one-off NPC generation
type GenerateOutput struct {
	Allocation *wfrp.Allocation
	Derived    wfrp.DerivedStats
	Career     string
	Trappings  []string
}

// ToNPC builds a persistable NPC from a generation result
func (g *GenerateOutput) ToNPC(id, name, sessionID string) *wfrp.NPC {
	return &wfrp.NPC{
		ID:          id,
		Name:        name,
		SessionID:   sessionID,
		SpeciesID:   g.Allocation.SpeciesID,
		ArchetypeID: g.Allocation.ArchetypeID,
		Career:      g.Career,
		TotalBudget: g.Allocation.TotalBudget,
		Allocation:  g.Allocation,
		Derived:     g.Derived,
		Trappings:   g.Trappings,
	}
}

// CreateInput defines the request for creating a persisted NPC
type CreateInput struct {
	Name        string
	SessionID   string
	ArchetypeID string
	SpeciesID   string
	Budget      int32
}

// CreateOutput defines the response for creating a persisted NPC
type CreateOutput struct {
	NPC *wfrp.NPC
}

// GetInput defines the request for getting an NPC
type GetInput struct {
	NPCID string
}

// GetOutput defines the response for getting an NPC
type GetOutput struct {
	NPC *wfrp.NPC
}

// ListBySessionInput defines the request for listing a session's NPCs
type ListBySessionInput struct {
	SessionID string
}

// ListBySessionOutput defines the response for listing a session's NPCs
type ListBySessionOutput struct {
	NPCs []*wfrp.NPC
}

// DeleteInput defines the request for deleting an NPC
type DeleteInput struct {
	NPCID string
}

// DeleteOutput defines the response for deleting an NPC
type DeleteOutput struct{}

// ListArchetypesInput defines the request for listing archetypes
type ListArchetypesInput struct{}

// ArchetypeSummary describes one archetype for catalog listings
type ArchetypeSummary struct {
	ID              string
	SuggestedCareer string
	Primary         []wfrp.Characteristic
	FavoredSkills   []string
	FavoredTalents  []string
}

// ListArchetypesOutput defines the response for listing archetypes
type ListArchetypesOutput struct {
	Archetypes []ArchetypeSummary
}

// ListSpeciesInput defines the request for listing species
type ListSpeciesInput struct{}

// SpeciesSummary describes one species for catalog listings
type SpeciesSummary struct {
	ID               string
	Base             map[wfrp.Characteristic]int32
	Movement         int32
	Fate             int32
	Resilience       int32
	IntrinsicTalents []string
}

// ListSpeciesOutput defines the response for listing species
type ListSpeciesOutput struct {
	Species []SpeciesSummary
}
