package gametest_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-toolkit/events"

	enginewfrp "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/engine/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/orchestrators/gametest"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/clock"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/idgen"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/rolls"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/rulebook"
)

// fixedRoller always returns the same d100 result
type fixedRoller struct {
	value int
}

func (f *fixedRoller) Roll(_ int) (int, error)       { return f.value, nil }
func (f *fixedRoller) RollN(n, _ int) ([]int, error) { return make([]int, n), nil }

type GameTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	roller    *fixedRoller
	service   gametest.Service
	ctx       context.Context
}

func (s *GameTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	rollsRepo, err := rolls.NewRedisRepository(&rolls.Config{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
		Clock:  clock.New(),
	})
	s.Require().NoError(err)

	s.roller = &fixedRoller{value: 30}
	eng, err := enginewfrp.NewAdapter(&enginewfrp.AdapterConfig{
		EventBus:   events.NewBus(),
		DiceRoller: s.roller,
		Archetypes: rulebook.NewArchetypeCatalog(),
		Species:    rulebook.NewSpeciesCatalog(),
		Skills:     rulebook.NewSkillLinks(),
		Costs:      rulebook.NewCostSchedule(),
	})
	s.Require().NoError(err)

	svc, err := gametest.NewOrchestrator(&gametest.Config{
		Engine:      eng,
		RollsRepo:   rollsRepo,
		IDGenerator: idgen.NewSequential("roll"),
	})
	s.Require().NoError(err)
	s.service = svc

	s.ctx = context.Background()
}

func (s *GameTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func TestGameTestSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func (s *GameTestSuite) TestRollTestSuccess() {
	out, err := s.service.RollTest(s.ctx, &gametest.RollTestInput{
		SessionID:      "session_abc",
		Subject:        "Gunther",
		Characteristic: wfrp.CharWeaponSkill,
		Target:         45,
	})
	s.Require().NoError(err)

	s.Equal(int32(30), out.Roll.Roll)
	s.True(out.Roll.Success)
	s.Equal(int32(1), out.Roll.SuccessLevels)
	s.Equal("ws", out.Roll.Characteristic)
	s.NotEmpty(out.Roll.RollID)
}

func (s *GameTestSuite) TestRollTestFailure() {
	s.roller.value = 97
	out, err := s.service.RollTest(s.ctx, &gametest.RollTestInput{
		SessionID:      "session_abc",
		Characteristic: wfrp.CharFellowship,
		Target:         30,
	})
	s.Require().NoError(err)
	s.False(out.Roll.Success)
	s.Equal(int32(-6), out.Roll.SuccessLevels)
}

func (s *GameTestSuite) TestHistoryAccumulates() {
	for i := 0; i < 3; i++ {
		_, err := s.service.RollTest(s.ctx, &gametest.RollTestInput{
			SessionID:      "session_abc",
			Characteristic: wfrp.CharAgility,
			Target:         40,
		})
		s.Require().NoError(err)
	}

	history, err := s.service.GetHistory(s.ctx, &gametest.GetHistoryInput{SessionID: "session_abc"})
	s.Require().NoError(err)
	s.Len(history.History.Rolls, 3)

	cleared, err := s.service.ClearHistory(s.ctx, &gametest.ClearHistoryInput{SessionID: "session_abc"})
	s.Require().NoError(err)
	s.Equal(int32(3), cleared.RollsDeleted)

	_, err = s.service.GetHistory(s.ctx, &gametest.GetHistoryInput{SessionID: "session_abc"})
	s.True(errors.IsNotFound(err))
}

func (s *GameTestSuite) TestValidation() {
	_, err := s.service.RollTest(s.ctx, &gametest.RollTestInput{
		Characteristic: wfrp.CharWeaponSkill,
		Target:         45,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.RollTest(s.ctx, &gametest.RollTestInput{
		SessionID: "session_abc",
		Target:    45,
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.service.RollTest(s.ctx, &gametest.RollTestInput{
		SessionID:      "session_abc",
		Characteristic: "luck",
		Target:         45,
	})
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "must be one of")
}
