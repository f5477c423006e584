package npc

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/entities/wfrp"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/clock"
	redisclient "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/redis"
)

const (
	npcKeyPrefix       = "npc:"
	sessionIndexPrefix = "npc:session:"

	// Error messages
	errNPCNil         = "npc cannot be nil"
	errNPCIDEmpty     = "npc ID cannot be empty"
	errSessionIDEmpty = "session ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis NPC repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed NPC repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.NPC == nil {
		return nil, errors.InvalidArgument(errNPCNil)
	}
	if input.NPC.ID == "" {
		return nil, errors.InvalidArgument(errNPCIDEmpty)
	}

	key := npcKeyPrefix + input.NPC.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("npc with ID %s already exists", input.NPC.ID).
			WithMeta("npc_id", input.NPC.ID)
	}

	now := r.clock.Now().Unix()
	input.NPC.CreatedAt = now
	input.NPC.UpdatedAt = now

	data, err := json.Marshal(input.NPC)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal npc data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // NPCs persist for the session's lifetime
	if input.NPC.SessionID != "" {
		pipe.SAdd(ctx, sessionIndexPrefix+input.NPC.SessionID, input.NPC.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create npc")
	}

	return &CreateOutput{NPC: input.NPC}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errNPCIDEmpty)
	}

	key := npcKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("npc with ID %s not found", input.ID).
				WithMeta("npc_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get npc")
	}

	var npc wfrp.NPC
	if err := json.Unmarshal([]byte(result), &npc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal npc data")
	}

	return &GetOutput{NPC: &npc}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errNPCIDEmpty)
	}

	// Get the NPC to find its session index
	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, npcKeyPrefix+input.ID)
	if getOutput.NPC.SessionID != "" {
		pipe.SRem(ctx, sessionIndexPrefix+getOutput.NPC.SessionID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete npc")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListBySessionID(
	ctx context.Context,
	input ListBySessionIDInput,
) (*ListBySessionIDOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	indexKey := sessionIndexPrefix + input.SessionID
	slog.DebugContext(ctx, "listing npcs by session index",
		"session_id", input.SessionID,
		"index_key", indexKey)

	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get npc IDs from Redis",
			"index_key", indexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to get npcs from index %s", indexKey)
	}

	npcs := make([]*wfrp.NPC, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Clean up stale index entries
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "npc not found, cleaning up index",
					"npc_id", id,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get npc %s", id)
		}
		npcs = append(npcs, getOutput.NPC)
	}

	slog.DebugContext(ctx, "successfully listed npcs by session",
		"session_id", input.SessionID,
		"count", len(npcs))

	return &ListBySessionIDOutput{NPCs: npcs}, nil
}
