package npc_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	enginewfrp "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	orchestrator "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/idgen"
	npcrepo "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
	npcsvc "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/services/npc"
)

type OrchestratorTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	service   npcsvc.Service
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	repo, err := npcrepo.NewRedis(&npcrepo.RedisConfig{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	})
	s.Require().NoError(err)

	archetypes := rulebook.NewArchetypeCatalog()
	species := rulebook.NewSpeciesCatalog()

	eng, err := enginewfrp.NewAdapter(&enginewfrp.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: dice.DefaultRoller,
		Archetypes: archetypes,
		Species:    species,
		Skills:     rulebook.NewSkillLinks(),
		Costs:      rulebook.NewCostSchedule(),
	})
	s.Require().NoError(err)

	svc, err := orchestrator.NewOrchestrator(&orchestrator.Config{
		Engine:      eng,
		Repository:  repo,
		Archetypes:  archetypes,
		Species:     species,
		Trappings:   rulebook.NewTrappingCatalog(),
		IDGenerator: idgen.NewSequential("npc"),
	})
	s.Require().NoError(err)
	s.service = svc

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestGenerate() {
	out, err := s.service.Generate(s.ctx, &npcsvc.GenerateInput{
		ArchetypeID: "soldier",
		SpeciesID:   "human",
		Budget:      1000,
	})
	s.Require().NoError(err)

	s.Equal("Soldier", out.Career)
	s.NotEmpty(out.Trappings)
	s.False(out.Allocation.FallbackUsed)
	s.Equal(int32(890), out.Allocation.Summary.TotalSpent)

	// wounds from final WS-line values: SB 3 + 2*TB 3 + WB 3 = 12
	s.Equal(int32(12), out.Derived.Wounds)
	s.Equal(int32(4), out.Derived.Movement)
}

func (s *OrchestratorTestSuite) TestGenerateUnknownSpecies() {
	_, err := s.service.Generate(s.ctx, &npcsvc.GenerateInput{
		ArchetypeID: "soldier",
		SpeciesID:   "gnome",
		Budget:      1000,
	})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateAndLifecycle() {
	created, err := s.service.Create(s.ctx, &npcsvc.CreateInput{
		Name:        "Gunther",
		SessionID:   "session_abc",
		ArchetypeID: "soldier",
		SpeciesID:   "human",
		Budget:      1000,
	})
	s.Require().NoError(err)
	s.NotEmpty(created.NPC.ID)
	s.Equal("Gunther", created.NPC.Name)
	s.Require().NotNil(created.NPC.Allocation)
	s.Equal(int32(890), created.NPC.Allocation.Summary.TotalSpent)

	got, err := s.service.Get(s.ctx, &npcsvc.GetInput{NPCID: created.NPC.ID})
	s.Require().NoError(err)
	s.Equal(created.NPC.ID, got.NPC.ID)

	listed, err := s.service.ListBySession(s.ctx, &npcsvc.ListBySessionInput{SessionID: "session_abc"})
	s.Require().NoError(err)
	s.Len(listed.NPCs, 1)

	_, err = s.service.Delete(s.ctx, &npcsvc.DeleteInput{NPCID: created.NPC.ID})
	s.Require().NoError(err)

	_, err = s.service.Get(s.ctx, &npcsvc.GetInput{NPCID: created.NPC.ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestCreateValidation() {
	_, err := s.service.Create(s.ctx, &npcsvc.CreateInput{
		ArchetypeID: "soldier",
		SpeciesID:   "human",
		Budget:      1000,
	})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestCreateWithUnknownArchetype() {
	created, err := s.service.Create(s.ctx, &npcsvc.CreateInput{
		Name:        "Mysterious Stranger",
		SessionID:   "session_abc",
		ArchetypeID: "dragon_rider",
		SpeciesID:   "human",
		Budget:      500,
	})
	s.Require().NoError(err)
	s.Equal(rulebook.DefaultArchetypeID, created.NPC.ArchetypeID)
	s.True(created.NPC.Allocation.FallbackUsed)
}

func (s *OrchestratorTestSuite) TestCatalogListings() {
	archetypes, err := s.service.ListArchetypes(s.ctx, &npcsvc.ListArchetypesInput{})
	s.Require().NoError(err)
	s.Len(archetypes.Archetypes, 14)

	species, err := s.service.ListSpecies(s.ctx, &npcsvc.ListSpeciesInput{})
	s.Require().NoError(err)
	s.Len(species.Species, 5)
}
