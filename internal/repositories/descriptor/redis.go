package descriptor

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
	descriptorKeyPrefix = "descriptor:"
	kindIndexPrefix     = "descriptor:kind:"

	// Error messages
	errTemplateNil     = "template cannot be nil"
	errTemplateIDEmpty = "template ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis descriptor repository.
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

// NewRedis creates a new Redis-backed descriptor template repository
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
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	key := descriptorKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("template with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get template %s", input.ID)
	}

	var stored forge.DescriptorTemplate
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal template data")
	}

	return &GetOutput{Template: &stored}, nil
}

func (r *redisRepository) ListByKind(ctx context.Context, input ListByKindInput) (*ListByKindOutput, error) {
	kinds := forge.DescriptorKinds
	if input.Kind != "" {
		kinds = []string{input.Kind}
	}

	templates := make([]*forge.DescriptorTemplate, 0)
	for _, kind := range kinds {
		ids, err := r.client.SMembers(ctx, kindIndexPrefix+kind).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read template index for kind %s", kind)
		}

		for _, id := range ids {
			output, err := r.Get(ctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					// Index entry outlived its template; heal the index
					r.client.SRem(ctx, kindIndexPrefix+kind, id)
					continue
				}
				return nil, err
			}
			templates = append(templates, output.Template)
		}
	}

	return &ListByKindOutput{Templates: templates}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Template == nil {
		return nil, errors.InvalidArgument(errTemplateNil)
	}
	if input.Template.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	key := descriptorKeyPrefix + input.Template.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("template with ID %s already exists", input.Template.ID)
	}

	now := r.clock.Now().Unix()
	input.Template.CreatedAt = now
	input.Template.UpdatedAt = now

	data, err := json.Marshal(input.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal template data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, kindIndexPrefix+input.Template.Kind, input.Template.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create template")
	}

	return &CreateOutput{Template: input.Template}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Template == nil {
		return nil, errors.InvalidArgument(errTemplateNil)
	}
	if input.Template.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	key := descriptorKeyPrefix + input.Template.ID

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("template with ID %s not found", input.Template.ID)
		}
		return nil, errors.Wrapf(err, "failed to get template")
	}

	var existing forge.DescriptorTemplate
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing template data")
	}

	input.Template.CreatedAt = existing.CreatedAt
	input.Template.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Template)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal template data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	// Move the kind index entry if the kind changed
	if existing.Kind != input.Template.Kind {
		pipe.SRem(ctx, kindIndexPrefix+existing.Kind, input.Template.ID)
		pipe.SAdd(ctx, kindIndexPrefix+input.Template.Kind, input.Template.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update template")
	}

	return &UpdateOutput{Template: input.Template}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errTemplateIDEmpty)
	}

	output, err := r.Get(ctx, GetInput{ID: input.ID})
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, descriptorKeyPrefix+input.ID)
	pipe.SRem(ctx, kindIndexPrefix+output.Template.Kind, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete template %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

// GetKey returns the Redis key for a descriptor template
// Exposed for testing purposes
func GetKey(templateID string) string {
	return descriptorKeyPrefix + templateID
}
