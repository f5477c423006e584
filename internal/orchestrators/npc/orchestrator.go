// Package npc implements the NPC orchestrator for generation and persistence
package npc

import (
	"context"
	"log/slog"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/idgen"
	npcrepo "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
	npcsvc "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/services/npc"
)

// Config holds the dependencies for the NPC orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  npcrepo.Repository
	Archetypes  *rulebook.ArchetypeCatalog
	Species     *rulebook.SpeciesCatalog
	Trappings   *rulebook.TrappingCatalog
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Archetypes == nil {
		vb.RequiredField("Archetypes")
	}
	if c.Species == nil {
		vb.RequiredField("Species")
	}
	if c.Trappings == nil {
		vb.RequiredField("Trappings")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	repo       npcrepo.Repository
	archetypes *rulebook.ArchetypeCatalog
	species    *rulebook.SpeciesCatalog
	trappings  *rulebook.TrappingCatalog
	idGen      idgen.Generator
}

// NewOrchestrator creates a new NPC orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (npcsvc.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:     cfg.Engine,
		repo:       cfg.Repository,
		archetypes: cfg.Archetypes,
		species:    cfg.Species,
		trappings:  cfg.Trappings,
		idGen:      cfg.IDGenerator,
	}, nil
}

// Ensure orchestrator implements the service interface
var _ npcsvc.Service = (*orchestrator)(nil)

func (o *orchestrator) Generate(ctx context.Context, input *npcsvc.GenerateInput) (*npcsvc.GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	allocOut, err := o.engine.AllocateExperience(ctx, &engine.AllocateExperienceInput{
		ArchetypeID: input.ArchetypeID,
		SpeciesID:   input.SpeciesID,
		Budget:      input.Budget,
	})
	if err != nil {
		return nil, err
	}
	alloc := allocOut.Allocation

	derivedOut, err := o.engine.CalculateDerivedStats(ctx, &engine.CalculateDerivedStatsInput{
		SpeciesID:       alloc.SpeciesID,
		Characteristics: alloc.FinalCharacteristics(),
	})
	if err != nil {
		return nil, err
	}

	if alloc.FallbackUsed {
		slog.InfoContext(ctx, "unknown archetype, used default",
			"requested", input.ArchetypeID,
			"used", alloc.ArchetypeID)
	}

	archetype, _ := o.archetypes.Get(alloc.ArchetypeID)

	return &npcsvc.GenerateOutput{
		Allocation: alloc,
		Derived:    derivedOut.Stats,
		Career:     archetype.SuggestedCareer,
		Trappings:  o.trappings.Get(alloc.ArchetypeID),
	}, nil
}

func (o *orchestrator) Create(ctx context.Context, input *npcsvc.CreateInput) (*npcsvc.CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("session_id", input.SessionID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	generated, err := o.Generate(ctx, &npcsvc.GenerateInput{
		ArchetypeID: input.ArchetypeID,
		SpeciesID:   input.SpeciesID,
		Budget:      input.Budget,
	})
	if err != nil {
		return nil, err
	}

	npc := generated.ToNPC(o.idGen.Generate(), input.Name, input.SessionID)

	createOut, err := o.repo.Create(ctx, npcrepo.CreateInput{NPC: npc})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "created npc",
		"npc_id", createOut.NPC.ID,
		"session_id", input.SessionID,
		"archetype", createOut.NPC.ArchetypeID,
		"species", createOut.NPC.SpeciesID,
		"budget", input.Budget)

	return &npcsvc.CreateOutput{NPC: createOut.NPC}, nil
}

func (o *orchestrator) Get(ctx context.Context, input *npcsvc.GetInput) (*npcsvc.GetOutput, error) {
	if input == nil || input.NPCID == "" {
		return nil, errors.InvalidArgument("npc ID is required")
	}

	out, err := o.repo.Get(ctx, npcrepo.GetInput{ID: input.NPCID})
	if err != nil {
		return nil, err
	}
	return &npcsvc.GetOutput{NPC: out.NPC}, nil
}

func (o *orchestrator) ListBySession(ctx context.Context, input *npcsvc.ListBySessionInput) (*npcsvc.ListBySessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.repo.ListBySessionID(ctx, npcrepo.ListBySessionIDInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}
	return &npcsvc.ListBySessionOutput{NPCs: out.NPCs}, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *npcsvc.DeleteInput) (*npcsvc.DeleteOutput, error) {
	if input == nil || input.NPCID == "" {
		return nil, errors.InvalidArgument("npc ID is required")
	}

	if _, err := o.repo.Delete(ctx, npcrepo.DeleteInput{ID: input.NPCID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "deleted npc", "npc_id", input.NPCID)
	return &npcsvc.DeleteOutput{}, nil
}

func (o *orchestrator) ListArchetypes(_ context.Context, _ *npcsvc.ListArchetypesInput) (*npcsvc.ListArchetypesOutput, error) {
	ids := o.archetypes.IDs()
	out := &npcsvc.ListArchetypesOutput{Archetypes: make([]npcsvc.ArchetypeSummary, 0, len(ids))}
	for _, id := range ids {
		a, _ := o.archetypes.Get(id)
		out.Archetypes = append(out.Archetypes, npcsvc.ArchetypeSummary{
			ID:              a.ID,
			SuggestedCareer: a.SuggestedCareer,
			Primary:         a.Primary,
			FavoredSkills:   a.FavoredSkills,
			FavoredTalents:  a.FavoredTalents,
		})
	}
	return out, nil
}

func (o *orchestrator) ListSpecies(_ context.Context, _ *npcsvc.ListSpeciesInput) (*npcsvc.ListSpeciesOutput, error) {
	ids := o.species.IDs()
	out := &npcsvc.ListSpeciesOutput{Species: make([]npcsvc.SpeciesSummary, 0, len(ids))}
	for _, id := range ids {
		s, _ := o.species.Get(id)
		out.Species = append(out.Species, npcsvc.SpeciesSummary{
			ID:               s.ID,
			Base:             s.Base,
			Movement:         s.Movement,
			Fate:             s.Fate,
			Resilience:       s.Resilience,
			IntrinsicTalents: s.IntrinsicTalents,
		})
	}
	return out, nil
}
