package worlds

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
	redisclient "github.com/KirkDiggler/starjumper/internal/redis"
)

const (
	worldKeyPrefix     = "world:"
	subsectorKeyPrefix = "subsector:"
	membersKeySuffix   = ":worlds"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis world repository.
type RedisConfig struct {
	Client redisclient.Client
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

// NewRedis creates a new Redis-backed world repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func worldKey(id string) string {
	return worldKeyPrefix + id
}

func subsectorKey(id string) string {
	return subsectorKeyPrefix + id
}

func membersKey(subsectorID string) string {
	return subsectorKeyPrefix + subsectorID + membersKeySuffix
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateWorldData(input.Data); err != nil {
		return nil, err
	}

	id := input.Data.World.ID
	key := worldKey(id)

	data, err := json.Marshal(input.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal world data")
	}

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("world with ID %s already exists", id)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	if input.Data.SubsectorID != "" {
		pipe.SAdd(ctx, membersKey(input.Data.SubsectorID), id)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store world").
			WithMeta("world_id", id)
	}

	return &CreateOutput{Data: input.Data}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	result, err := r.client.Get(ctx, worldKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("world with ID %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get world")
	}

	var data WorldData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal world data")
	}

	return &GetOutput{Data: &data}, nil
}

func (r *redisRepository) ListBySubsector(ctx context.Context, input ListBySubsectorInput) (*ListBySubsectorOutput, error) {
	if input.SubsectorID == "" {
		return nil, errors.InvalidArgument(errSubsectorIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, membersKey(input.SubsectorID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list subsector worlds")
	}
	if len(ids) == 0 {
		return &ListBySubsectorOutput{Worlds: []*WorldData{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = worldKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get subsector worlds")
	}

	out := make([]*WorldData, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// index entry without a world; skip it
			continue
		}
		var data WorldData
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal world data").WithMeta("world_id", ids[i])
		}
		out = append(out, &data)
	}
	sortByHex(out)

	return &ListBySubsectorOutput{Worlds: out}, nil
}

func (r *redisRepository) CreateSubsector(ctx context.Context, input CreateSubsectorInput) (*CreateSubsectorOutput, error) {
	if err := validateSubsector(input.Subsector); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Subsector)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal subsector")
	}

	created, err := r.client.SetNX(ctx, subsectorKey(input.Subsector.ID), data, 0).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store subsector")
	}
	if !created {
		return nil, errors.AlreadyExistsf("subsector with ID %s already exists", input.Subsector.ID)
	}

	return &CreateSubsectorOutput{Subsector: input.Subsector}, nil
}

func (r *redisRepository) GetSubsector(ctx context.Context, input GetSubsectorInput) (*GetSubsectorOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSubsectorIDEmpty)
	}

	result, err := r.client.Get(ctx, subsectorKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("subsector with ID %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get subsector")
	}

	var subsector entities.Subsector
	if err := json.Unmarshal([]byte(result), &subsector); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal subsector")
	}

	return &GetSubsectorOutput{Subsector: &subsector}, nil
}
