package rolls

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/errors"
	"github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/pkg/clock"
	redisclient "github.com/IT-Learning-Consulting/warhammer-mcp-sub000/internal/redis"
)

const (
	historyKeyPrefix = "rolls:session:"
	defaultTTL       = 4 * time.Hour

	// Error messages
	errSessionIDEmpty = "session ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roll histories
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Append records a roll, starting a fresh TTL'd history if none exists
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	history, err := r.load(ctx, input.SessionID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}
	if history == nil {
		history = &RollHistory{
			SessionID: input.SessionID,
			CreatedAt: now,
			ExpiresAt: now.Add(ttl),
		}
	}

	history.Rolls = append(history.Rolls, input.Roll)

	remaining := history.ExpiresAt.Sub(now)
	if remaining <= 0 {
		return nil, errors.FailedPrecondition("roll history has already expired")
	}

	data, err := json.Marshal(history)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal roll history")
	}

	key := historyKeyPrefix + input.SessionID
	if err := r.client.Set(ctx, key, data, remaining).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store roll history in Redis")
	}

	return &AppendOutput{History: history}, nil
}

// Get retrieves a session's roll history
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	history, err := r.load(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{History: history}, nil
}

// Delete clears a session's roll history
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	var rollsDeleted int32
	if history, err := r.load(ctx, input.SessionID); err == nil {
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(history.Rolls))
	}

	key := historyKeyPrefix + input.SessionID
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete roll history from Redis")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

func (r *redisRepository) load(ctx context.Context, sessionID string) (*RollHistory, error) {
	key := historyKeyPrefix + sessionID
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("roll history not found")
		}
		return nil, errors.Wrapf(err, "failed to get roll history from Redis")
	}

	var history RollHistory
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal roll history")
	}

	// The key may outlive the logical expiry when clocks are injected
	if r.clock.Now().After(history.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("roll history has expired")
	}

	return &history, nil
}
