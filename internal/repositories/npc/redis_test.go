package npc_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/clock"
	redisclient "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/redis"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/repositories/npc"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      npc.Repository
	now       time.Time
	ctx       context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.miniRedis.Addr(),
	})

	s.now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	repo, err := npc.NewRedis(&npc.RedisConfig{
		Client: s.client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testNPC(id, sessionID string) *wfrp.NPC {
	return &wfrp.NPC{
		ID:          id,
		Name:        "Gunther",
		SessionID:   sessionID,
		SpeciesID:   "human",
		ArchetypeID: "soldier",
		Career:      "Soldier",
		TotalBudget: 1000,
		Derived:     wfrp.DerivedStats{Wounds: 12, Movement: 4, Fate: 2, Resilience: 1},
		Trappings:   []string{"Hand Weapon", "Shield"},
	}
}

func (s *RedisRepositoryTestSuite) TestLifecycle() {
	created, err := s.repo.Create(s.ctx, npc.CreateInput{NPC: s.testNPC("npc_001", "session_abc")})
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), created.NPC.CreatedAt)
	s.True(s.miniRedis.Exists("npc:npc_001"))

	got, err := s.repo.Get(s.ctx, npc.GetInput{ID: "npc_001"})
	s.Require().NoError(err)
	s.Equal("Gunther", got.NPC.Name)
	s.Equal("session_abc", got.NPC.SessionID)
	s.Equal(int32(12), got.NPC.Derived.Wounds)

	listed, err := s.repo.ListBySessionID(s.ctx, npc.ListBySessionIDInput{SessionID: "session_abc"})
	s.Require().NoError(err)
	s.Require().Len(listed.NPCs, 1)
	s.Equal("npc_001", listed.NPCs[0].ID)

	_, err = s.repo.Delete(s.ctx, npc.DeleteInput{ID: "npc_001"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists("npc:npc_001"))

	listed, err = s.repo.ListBySessionID(s.ctx, npc.ListBySessionIDInput{SessionID: "session_abc"})
	s.Require().NoError(err)
	s.Empty(listed.NPCs)
}

func (s *RedisRepositoryTestSuite) TestDuplicateCreate() {
	_, err := s.repo.Create(s.ctx, npc.CreateInput{NPC: s.testNPC("npc_001", "session_abc")})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, npc.CreateInput{NPC: s.testNPC("npc_001", "session_abc")})
	s.Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, npc.GetInput{ID: "npc_missing"})
	s.Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("npc_missing", errors.GetMeta(err)["npc_id"])
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, npc.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, npc.CreateInput{NPC: &wfrp.NPC{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, npc.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListBySessionID(s.ctx, npc.ListBySessionIDInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestListCleansStaleIndexEntries() {
	_, err := s.repo.Create(s.ctx, npc.CreateInput{NPC: s.testNPC("npc_001", "session_abc")})
	s.Require().NoError(err)

	// Simulate an orphaned index entry
	s.miniRedis.Del("npc:npc_001")

	listed, err := s.repo.ListBySessionID(s.ctx, npc.ListBySessionIDInput{SessionID: "session_abc"})
	s.Require().NoError(err)
	s.Empty(listed.NPCs)
}
