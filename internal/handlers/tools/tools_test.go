package tools_test

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-toolkit/events"

	enginewfrp "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/handlers/tools"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/gametest"
	npcorch "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/clock"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/idgen"
	npcrepo "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/npc"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/rolls"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
	npcsvc "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/services/npc"
)

// settableRoller rolls a fixed d100 value
type settableRoller struct {
	value int
}

func (s *settableRoller) Roll(_ int) (int, error)       { return s.value, nil }
func (s *settableRoller) RollN(n, _ int) ([]int, error) { return make([]int, n), nil }

type testEnv struct {
	npcService  npcsvc.Service
	testService gametest.Service
	roller      *settableRoller
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	repo, err := npcrepo.NewRedis(&npcrepo.RedisConfig{Client: client})
	require.NoError(t, err)

	rollsRepo, err := rolls.NewRedisRepository(&rolls.Config{Client: client, Clock: clock.New()})
	require.NoError(t, err)

	archetypes := rulebook.NewArchetypeCatalog()
	species := rulebook.NewSpeciesCatalog()
	roller := &settableRoller{value: 30}

	eng, err := enginewfrp.NewAdapter(&enginewfrp.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: roller,
		Archetypes: archetypes,
		Species:    species,
		Skills:     rulebook.NewSkillLinks(),
		Costs:      rulebook.NewCostSchedule(),
	})
	require.NoError(t, err)

	npcService, err := npcorch.NewOrchestrator(&npcorch.Config{
		Engine:      eng,
		Repository:  repo,
		Archetypes:  archetypes,
		Species:     species,
		Trappings:   rulebook.NewTrappingCatalog(),
		IDGenerator: idgen.NewSequential("npc"),
	})
	require.NoError(t, err)

	testService, err := gametest.NewOrchestrator(&gametest.Config{
		Engine:      eng,
		RollsRepo:   rollsRepo,
		IDGenerator: idgen.NewSequential("roll"),
	})
	require.NoError(t, err)

	return &testEnv{npcService: npcService, testService: testService, roller: roller}
}

func TestNewServer(t *testing.T) {
	env := newTestEnv(t)

	server, err := tools.NewServer(&tools.Config{
		NPCService:  env.npcService,
		TestService: env.testService,
	})
	require.NoError(t, err)
	assert.NotNil(t, server)

	_, err = tools.NewServer(&tools.Config{NPCService: env.npcService})
	assert.Error(t, err)

	_, err = tools.NewServer(nil)
	assert.Error(t, err)
}

func TestNPCGenerateHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := tools.NPCGenerateHandler(env.npcService)

	_, result, err := handler(context.Background(), nil, tools.NPCGenerateInput{
		ArchetypeID: "soldier",
		SpeciesID:   "human",
		Budget:      1000,
	})
	require.NoError(t, err)

	require.NotNil(t, result.Allocation)
	assert.Equal(t, int32(890), result.Allocation.Summary.TotalSpent)
	assert.Equal(t, "Soldier", result.Career)
	assert.Equal(t, int32(12), result.Derived.Wounds)
	assert.NotEmpty(t, result.Trappings)

	assert.Contains(t, result.Rendered, "## Soldier (human)")
	assert.Contains(t, result.Rendered, "**Skills:**")
	assert.Contains(t, result.Rendered, "Doomed")
	assert.Contains(t, result.Rendered, "Spent 890 XP (110 remaining)")
}

func TestNPCGenerateHandler_UnknownSpecies(t *testing.T) {
	env := newTestEnv(t)
	handler := tools.NPCGenerateHandler(env.npcService)

	_, _, err := handler(context.Background(), nil, tools.NPCGenerateInput{
		ArchetypeID: "soldier",
		SpeciesID:   "gnome",
		Budget:      1000,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown species")
}

func TestNPCLifecycleHandlers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, created, err := tools.NPCCreateHandler(env.npcService)(ctx, nil, tools.NPCCreateInput{
		Name:        "Gunther",
		SessionID:   "session_abc",
		ArchetypeID: "soldier",
		SpeciesID:   "human",
		Budget:      1000,
	})
	require.NoError(t, err)
	require.NotNil(t, created.NPC)
	assert.True(t, strings.HasPrefix(created.NPC.ID, "npc_"))
	assert.Contains(t, created.Rendered, "## Gunther")

	_, got, err := tools.NPCGetHandler(env.npcService)(ctx, nil, tools.NPCGetInput{NPCID: created.NPC.ID})
	require.NoError(t, err)
	assert.Equal(t, "Gunther", got.NPC.Name)

	_, listed, err := tools.NPCListHandler(env.npcService)(ctx, nil, tools.NPCListInput{SessionID: "session_abc"})
	require.NoError(t, err)
	require.Len(t, listed.NPCs, 1)
	assert.Equal(t, created.NPC.ID, listed.NPCs[0].ID)
	assert.Equal(t, int32(12), listed.NPCs[0].Wounds)

	_, deleted, err := tools.NPCDeleteHandler(env.npcService)(ctx, nil, tools.NPCDeleteInput{NPCID: created.NPC.ID})
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	_, _, err = tools.NPCGetHandler(env.npcService)(ctx, nil, tools.NPCGetInput{NPCID: created.NPC.ID})
	assert.Error(t, err)
}

func TestTestRollHandler(t *testing.T) {
	env := newTestEnv(t)
	handler := tools.TestRollHandler(env.testService)

	env.roller.value = 23
	_, result, err := handler(context.Background(), nil, tools.TestRollInput{
		SessionID:      "session_abc",
		Subject:        "Gunther",
		Characteristic: "ws",
		Target:         45,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(23), result.Roll)
	assert.True(t, result.Success)
	assert.Equal(t, int32(2), result.SuccessLevels)
	assert.Contains(t, result.Rendered, "ws test succeeds")
	assert.Contains(t, result.Rendered, "+2 SL")
}

func TestRollHistoryHandlers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	roll := tools.TestRollHandler(env.testService)

	env.roller.value = 23
	_, _, err := roll(ctx, nil, tools.TestRollInput{
		SessionID:      "session_abc",
		Characteristic: "ws",
		Target:         45,
	})
	require.NoError(t, err)

	env.roller.value = 97
	_, _, err = roll(ctx, nil, tools.TestRollInput{
		SessionID:      "session_abc",
		Characteristic: "fel",
		Target:         30,
	})
	require.NoError(t, err)

	_, history, err := tools.RollHistoryHandler(env.testService)(ctx, nil, tools.RollHistoryInput{
		SessionID: "session_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "session_abc", history.SessionID)
	require.Len(t, history.Rolls, 2)
	assert.Equal(t, "ws", history.Rolls[0].Characteristic)
	assert.True(t, history.Rolls[0].Success)
	assert.Equal(t, int32(97), history.Rolls[1].Roll)
	assert.False(t, history.Rolls[1].Success)

	_, cleared, err := tools.RollClearHandler(env.testService)(ctx, nil, tools.RollClearInput{
		SessionID: "session_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), cleared.RollsDeleted)

	_, _, err = tools.RollHistoryHandler(env.testService)(ctx, nil, tools.RollHistoryInput{
		SessionID: "session_abc",
	})
	assert.Error(t, err)
}

func TestCatalogHandlers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, archetypes, err := tools.ArchetypeListHandler(env.npcService)(ctx, nil, tools.ArchetypeListInput{})
	require.NoError(t, err)
	assert.Len(t, archetypes.Archetypes, 14)
	assert.Equal(t, "soldier", archetypes.Archetypes[0].ID)
	assert.Len(t, archetypes.Archetypes[0].Primary, 3)

	_, species, err := tools.SpeciesListHandler(env.npcService)(ctx, nil, tools.SpeciesListInput{})
	require.NoError(t, err)
	assert.Len(t, species.Species, 5)
	assert.Equal(t, int32(30), species.Species[0].Base["ws"])
}
