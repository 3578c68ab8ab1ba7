package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/forge-api/internal/errors"
	redisclient "github.com/KirkDiggler/forge-api/internal/redis"
	dicesession "github.com/KirkDiggler/forge-api/internal/repositories/dice_session"
)

// fixedClock pins repository time for expiry tests
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type RedisDiceSessionTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	clock     *fixedClock
	repo      dicesession.Repository
	ctx       context.Context
}

func (s *RedisDiceSessionTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr

	client, err := redisclient.NewClient(mr.Addr(), nil)
	s.Require().NoError(err)

	s.clock = &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisDiceSessionTestSuite) TearDownTest() {
	s.miniRedis.Close()
}

func (s *RedisDiceSessionTestSuite) TestNewRedisRepository() {
	_, err := dicesession.NewRedisRepository(&dicesession.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "redis client is required")

	_, err = dicesession.NewRedisRepository(&dicesession.Config{Clock: s.clock})
	s.Require().Error(err)
}

func (s *RedisDiceSessionTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "2d8", Dice: []int32{3, 7}, Total: 10, DiceTotal: 10},
		},
	})
	s.Require().NoError(err)
	s.Equal(s.clock.now, created.Session.CreatedAt)
	s.Equal(s.clock.now.Add(15*time.Minute), created.Session.ExpiresAt)

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
	})
	s.Require().NoError(err)
	s.Require().Len(got.Session.Rolls, 1)
	s.Equal("2d8", got.Session.Rolls[0].Notation)
}

func (s *RedisDiceSessionTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{Context: "attack_playtest"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, dicesession.CreateInput{EntityID: "item_001"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisDiceSessionTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, dicesession.GetInput{
		EntityID: "item_missing",
		Context:  "attack_playtest",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisDiceSessionTestSuite) TestGetExpired() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
		TTL:      time.Hour,
	})
	s.Require().NoError(err)

	// Stored expiry timestamp passes even though the key still exists
	s.clock.now = s.clock.now.Add(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
	})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisDiceSessionTestSuite) TestUpdateAppendsRolls() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "mon_001",
		Context:  "trait_playtest",
	})
	s.Require().NoError(err)

	session := created.Session
	session.Rolls = append(session.Rolls, dicesession.DiceRoll{
		RollID: "roll_1", Notation: "1d12", Dice: []int32{9}, Total: 9, DiceTotal: 9,
	})

	s.Require().NoError(s.repo.Update(s.ctx, session))

	got, err := s.repo.Get(s.ctx, dicesession.GetInput{
		EntityID: "mon_001",
		Context:  "trait_playtest",
	})
	s.Require().NoError(err)
	s.Len(got.Session.Rolls, 1)
}

func (s *RedisDiceSessionTestSuite) TestUpdateExpiredSession() {
	created, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "mon_001",
		Context:  "trait_playtest",
	})
	s.Require().NoError(err)

	s.clock.now = s.clock.now.Add(time.Hour)

	err = s.repo.Update(s.ctx, created.Session)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisDiceSessionTestSuite) TestDelete() {
	_, err := s.repo.Create(s.ctx, dicesession.CreateInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
		Rolls: []dicesession.DiceRoll{
			{RollID: "roll_1", Notation: "1d8", Dice: []int32{5}, Total: 5, DiceTotal: 5},
			{RollID: "roll_2", Notation: "1d8", Dice: []int32{2}, Total: 2, DiceTotal: 2},
		},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
	})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RollsDeleted)

	_, err = s.repo.Get(s.ctx, dicesession.GetInput{
		EntityID: "item_001",
		Context:  "attack_playtest",
	})
	s.True(errors.IsNotFound(err))
}

func TestRedisDiceSessionSuite(t *testing.T) {
	suite.Run(t, new(RedisDiceSessionTestSuite))
}
