package item_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	redisclient "github.com/KirkDiggler/forge-api/internal/redis"
	"github.com/KirkDiggler/forge-api/internal/repositories/item"
)

type RedisItemTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	repo      item.Repository
	ctx       context.Context
}

func (s *RedisItemTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)
	s.client = client

	repo, err := item.NewRedis(&item.RedisConfig{
		Client: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisItemTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisItemTestSuite) testItem(id, slot string) *forge.Item {
	return &forge.Item{
		ID:                    id,
		Name:                  "Ashen Blade",
		Slot:                  slot,
		MeleePhysicalStrength: 3,
		Attributes: []forge.AttributeSelection{
			{DescriptorID: "desc_keen", Die: forge.DieD8},
		},
	}
}

func (s *RedisItemTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *item.RedisConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "success with valid config",
			config:  &item.RedisConfig{Client: s.client},
			wantErr: false,
		},
		{
			name:    "error with nil config",
			config:  nil,
			wantErr: true,
			errMsg:  "config cannot be nil",
		},
		{
			name:    "error with nil client",
			config:  &item.RedisConfig{Client: nil},
			wantErr: true,
			errMsg:  "client cannot be nil",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := item.NewRedis(tc.config)

			if tc.wantErr {
				s.Error(err)
				s.Contains(err.Error(), tc.errMsg)
				s.Nil(repo)
			} else {
				s.NoError(err)
				s.NotNil(repo)
			}
		})
	}
}

func (s *RedisItemTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, item.CreateInput{
		Item: s.testItem("item_001", forge.SlotWeapon),
	})
	s.Require().NoError(err)
	s.NotZero(created.Item.CreatedAt)
	s.True(s.miniRedis.Exists(item.GetKey("item_001")))

	got, err := s.repo.Get(s.ctx, item.GetInput{ID: "item_001"})
	s.Require().NoError(err)
	s.Equal("Ashen Blade", got.Item.Name)
	s.Equal(forge.SlotWeapon, got.Item.Slot)
	s.Require().Len(got.Item.Attributes, 1)
	s.Equal(forge.DieD8, got.Item.Attributes[0].Die)
}

func (s *RedisItemTestSuite) TestCreateDuplicate() {
	_, err := s.repo.Create(s.ctx, item.CreateInput{
		Item: s.testItem("item_001", forge.SlotWeapon),
	})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, item.CreateInput{
		Item: s.testItem("item_001", forge.SlotWeapon),
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisItemTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, item.CreateInput{Item: nil})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, item.CreateInput{Item: &forge.Item{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisItemTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, item.GetInput{ID: "item_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisItemTestSuite) TestListBySlot() {
	for _, tc := range []struct{ id, slot string }{
		{"item_001", forge.SlotWeapon},
		{"item_002", forge.SlotWeapon},
		{"item_003", forge.SlotShield},
	} {
		_, err := s.repo.Create(s.ctx, item.CreateInput{Item: s.testItem(tc.id, tc.slot)})
		s.Require().NoError(err)
	}

	weapons, err := s.repo.List(s.ctx, item.ListInput{Slot: forge.SlotWeapon})
	s.Require().NoError(err)
	s.Len(weapons.Items, 2)

	all, err := s.repo.List(s.ctx, item.ListInput{})
	s.Require().NoError(err)
	s.Len(all.Items, 3)
}

func (s *RedisItemTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, item.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Items)
}

func (s *RedisItemTestSuite) TestUpdate() {
	_, err := s.repo.Create(s.ctx, item.CreateInput{
		Item: s.testItem("item_001", forge.SlotWeapon),
	})
	s.Require().NoError(err)

	updated := s.testItem("item_001", forge.SlotShield)
	updated.Name = "Bulwark of Cinders"
	updated.PPV = 9

	out, err := s.repo.Update(s.ctx, item.UpdateInput{Item: updated})
	s.Require().NoError(err)
	s.Equal("Bulwark of Cinders", out.Item.Name)

	// Slot index follows the item across slots
	shields, err := s.repo.List(s.ctx, item.ListInput{Slot: forge.SlotShield})
	s.Require().NoError(err)
	s.Len(shields.Items, 1)

	weapons, err := s.repo.List(s.ctx, item.ListInput{Slot: forge.SlotWeapon})
	s.Require().NoError(err)
	s.Empty(weapons.Items)
}

func (s *RedisItemTestSuite) TestUpdateNotFound() {
	_, err := s.repo.Update(s.ctx, item.UpdateInput{
		Item: s.testItem("item_missing", forge.SlotWeapon),
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisItemTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, item.CreateInput{
		Item: s.testItem("item_001", forge.SlotWeapon),
	})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, item.DeleteInput{ID: "item_001"})
	s.Require().NoError(err)
	s.False(s.miniRedis.Exists(item.GetKey("item_001")))

	_, err = s.repo.Delete(s.ctx, item.DeleteInput{ID: "item_001"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func TestRedisItemSuite(t *testing.T) {
	suite.Run(t, new(RedisItemTestSuite))
}
