package dice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	dice "github.com/KirkDiggler/forge-api/internal/orchestrators/dice"
	idgenmock "github.com/KirkDiggler/forge-api/internal/pkg/idgen/mock"
	dicesession "github.com/KirkDiggler/forge-api/internal/repositories/dice_session"
	dicesessionmock "github.com/KirkDiggler/forge-api/internal/repositories/dice_session/mock"
	itemrepo "github.com/KirkDiggler/forge-api/internal/repositories/item"
	itemrepomock "github.com/KirkDiggler/forge-api/internal/repositories/item/mock"
)

type DiceOrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *dicesessionmock.MockRepository
	mockItemRepo *itemrepomock.MockRepository
	mockIDGen    *idgenmock.MockGenerator
	orchestrator dice.Service
	ctx          context.Context
}

func (s *DiceOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = dicesessionmock.NewMockRepository(s.ctrl)
	s.mockItemRepo = itemrepomock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)

	orch, err := dice.NewOrchestrator(&dice.Config{
		DiceSessionRepo: s.mockRepo,
		ItemRepo:        s.mockItemRepo,
		IDGenerator:     s.mockIDGen,
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.ctx = context.Background()
}

func (s *DiceOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiceOrchestratorTestSuite) TestRollDiceNewSession() {
	s.mockIDGen.EXPECT().Generate().Return("roll_1")
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "item_123", Context: "attack_playtest"}).
		Return(nil, errors.NotFound("session not found"))
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in dicesession.CreateInput) (*dicesession.CreateOutput, error) {
			s.Equal("item_123", in.EntityID)
			s.Equal(dice.DefaultSessionTTL, in.TTL)
			s.Require().Len(in.Rolls, 1)
			return &dicesession.CreateOutput{Session: &dicesession.DiceSession{
				EntityID: in.EntityID,
				Context:  in.Context,
				Rolls:    in.Rolls,
			}}, nil
		})

	output, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "item_123",
		Context:  "attack_playtest",
		Notation: "2d6",
		Modifier: 3,
	})
	s.Require().NoError(err)

	roll := output.Roll
	s.Equal("roll_1", roll.RollID)
	s.Equal("2d6", roll.Notation)
	s.Len(roll.Dice, 2)
	for _, d := range roll.Dice {
		s.GreaterOrEqual(d, int32(1))
		s.LessOrEqual(d, int32(6))
	}
	s.Equal(roll.DiceTotal+3, roll.Total)
	s.Equal(int32(3), roll.Modifier)
}

func (s *DiceOrchestratorTestSuite) TestRollDiceAppendsToExistingSession() {
	existing := &dicesession.DiceSession{
		EntityID: "item_123",
		Context:  "attack_playtest",
		Rolls:    []dicesession.DiceRoll{{RollID: "roll_0"}},
	}

	s.mockIDGen.EXPECT().Generate().Return("roll_1")
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(&dicesession.GetOutput{Session: existing}, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, existing).
		Return(nil)

	output, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{
		EntityID: "item_123",
		Context:  "attack_playtest",
		Notation: "1d8",
	})
	s.Require().NoError(err)
	s.Len(output.Session.Rolls, 2)
}

func (s *DiceOrchestratorTestSuite) TestRollDiceValidatesNotation() {
	testCases := []string{"", "d6", "2x6", "0d6", "2d0", "banana"}

	for _, notation := range testCases {
		s.Run("notation "+notation, func() {
			_, err := s.orchestrator.RollDice(s.ctx, &dice.RollDiceInput{
				EntityID: "item_123",
				Context:  "attack_playtest",
				Notation: notation,
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *DiceOrchestratorTestSuite) TestRollItemAttributes() {
	item := &forge.Item{
		ID:   "item_123",
		Name: "Bone Saw",
		Slot: forge.SlotWeapon,
		Attributes: []forge.AttributeSelection{
			{DescriptorID: "desc_slash", Die: forge.DieD8},
			{DescriptorID: "desc_crush", Die: forge.DieD4},
		},
	}

	s.mockItemRepo.EXPECT().
		Get(s.ctx, itemrepo.GetInput{ID: "item_123"}).
		Return(&itemrepo.GetOutput{Item: item}, nil)
	s.mockIDGen.EXPECT().Generate().Return("roll_1")
	s.mockIDGen.EXPECT().Generate().Return("roll_2")
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "item_123", Context: dice.ContextAttributePlaytest}).
		Return(nil, errors.NotFound("session not found"))
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in dicesession.CreateInput) (*dicesession.CreateOutput, error) {
			s.Len(in.Rolls, 2)
			return &dicesession.CreateOutput{Session: &dicesession.DiceSession{
				EntityID: in.EntityID,
				Context:  in.Context,
				Rolls:    in.Rolls,
			}}, nil
		})

	output, err := s.orchestrator.RollItemAttributes(s.ctx, &dice.RollItemAttributesInput{ItemID: "item_123"})
	s.Require().NoError(err)

	s.Require().Len(output.Rolls, 2)
	s.Equal("1d8", output.Rolls[0].Notation)
	s.Equal("1d4", output.Rolls[1].Notation)
	s.GreaterOrEqual(output.Rolls[1].Total, int32(1))
	s.LessOrEqual(output.Rolls[1].Total, int32(4))
}

func (s *DiceOrchestratorTestSuite) TestRollItemAttributesNoDice() {
	s.mockItemRepo.EXPECT().
		Get(s.ctx, itemrepo.GetInput{ID: "item_123"}).
		Return(&itemrepo.GetOutput{Item: &forge.Item{ID: "item_123", Slot: forge.SlotArmor}}, nil)

	_, err := s.orchestrator.RollItemAttributes(s.ctx, &dice.RollItemAttributesInput{ItemID: "item_123"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceOrchestratorTestSuite) TestGetRollSession() {
	s.mockRepo.EXPECT().
		Get(s.ctx, dicesession.GetInput{EntityID: "mon_1", Context: "trait_playtest"}).
		Return(&dicesession.GetOutput{Session: &dicesession.DiceSession{EntityID: "mon_1"}}, nil)

	output, err := s.orchestrator.GetRollSession(s.ctx, &dice.GetRollSessionInput{
		EntityID: "mon_1",
		Context:  "trait_playtest",
	})
	s.Require().NoError(err)
	s.Equal("mon_1", output.Session.EntityID)
}

func (s *DiceOrchestratorTestSuite) TestClearRollSession() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, dicesession.DeleteInput{EntityID: "item_123", Context: "attack_playtest"}).
		Return(&dicesession.DeleteOutput{RollsDeleted: 3}, nil)

	output, err := s.orchestrator.ClearRollSession(s.ctx, &dice.ClearRollSessionInput{
		EntityID: "item_123",
		Context:  "attack_playtest",
	})
	s.Require().NoError(err)
	s.Equal(int32(3), output.RollsDeleted)
}

func TestDiceOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(DiceOrchestratorTestSuite))
}
