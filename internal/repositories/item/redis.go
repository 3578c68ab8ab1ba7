package item

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/forge-api/internal/redis"
)

const (
	itemKeyPrefix   = "item:"
	slotIndexPrefix = "item:slot:"

	// Error messages
	errItemNil     = "item cannot be nil"
	errItemIDEmpty = "item ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis item repository.
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

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := itemKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item %s", input.ID)
	}

	var stored forge.Item
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item data")
	}

	return &GetOutput{Item: &stored}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKeys := make([]string, 0, len(forge.ItemSlots))
	if input.Slot != "" {
		indexKeys = append(indexKeys, slotIndexPrefix+input.Slot)
	} else {
		for _, slot := range forge.ItemSlots {
			indexKeys = append(indexKeys, slotIndexPrefix+slot)
		}
	}

	items := make([]*forge.Item, 0)
	for _, indexKey := range indexKeys {
		ids, err := r.client.SMembers(ctx, indexKey).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read item index %s", indexKey)
		}

		for _, id := range ids {
			output, err := r.Get(ctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					// Index entry outlived its item; heal the index
					r.client.SRem(ctx, indexKey, id)
					continue
				}
				return nil, err
			}
			items = append(items, output.Item)
		}
	}

	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := itemKeyPrefix + input.Item.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("item with ID %s already exists", input.Item.ID)
	}

	now := r.clock.Now().Unix()
	input.Item.CreatedAt = now
	input.Item.UpdatedAt = now

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // items have no TTL
	pipe.SAdd(ctx, slotIndexPrefix+input.Item.Slot, input.Item.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create item")
	}

	return &CreateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	key := itemKeyPrefix + input.Item.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %s not found", input.Item.ID)
		}
		return nil, errors.Wrapf(err, "failed to get item")
	}

	var existing forge.Item
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing item data")
	}

	input.Item.CreatedAt = existing.CreatedAt
	input.Item.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Item)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	// Move the slot index entry if the slot changed
	if existing.Slot != input.Item.Slot {
		pipe.SRem(ctx, slotIndexPrefix+existing.Slot, input.Item.ID)
		pipe.SAdd(ctx, slotIndexPrefix+input.Item.Slot, input.Item.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update item")
	}

	return &UpdateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errItemIDEmpty)
	}

	output, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, itemKeyPrefix+input.ID)
	pipe.SRem(ctx, slotIndexPrefix+output.Item.Slot, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for an item
// Exposed for testing purposes
func GetKey(itemID string) string {
	return itemKeyPrefix + itemID
}
