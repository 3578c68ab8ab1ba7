package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/forge-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/forge-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/forge-api/internal/orchestrators/dice/mock"
	dicesession "github.com/KirkDiggler/forge-api/internal/repositories/dice_session"
)

type DiceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *dicemock.MockService
	mux         *http.ServeMux
}

func (s *DiceHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = dicemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewDiceHandler(&v1alpha1.DiceHandlerConfig{
		DiceService: s.mockService,
	})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *DiceHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DiceHandlerTestSuite) testSession(rolls ...dicesession.DiceRoll) *dicesession.DiceSession {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &dicesession.DiceSession{
		EntityID:  "item_123",
		Context:   "attribute_playtest",
		Rolls:     rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(15 * time.Minute),
	}
}

func (s *DiceHandlerTestSuite) TestRoll() {
	roll := dicesession.DiceRoll{
		RollID:    "roll_1",
		Notation:  "2d6",
		Dice:      []int32{3, 5},
		Total:     10,
		DiceTotal: 8,
		Modifier:  2,
	}

	s.mockService.EXPECT().
		RollDice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *dice.RollDiceInput) (*dice.RollDiceOutput, error) {
			s.Equal("item_123", in.EntityID)
			s.Equal("2d6", in.Notation)
			s.Equal(int32(2), in.Modifier)
			return &dice.RollDiceOutput{
				Roll:    &roll,
				Session: s.testSession(roll),
			}, nil
		})

	body := `{"entity_id": "item_123", "context": "attribute_playtest", "notation": "2d6", "modifier": 2}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/dice/rolls", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)

	var resp v1alpha1.RollResponseJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int32(10), resp.Roll.Total)
	s.Equal([]int32{3, 5}, resp.Roll.Dice)
	s.Require().NotNil(resp.Session)
	s.Len(resp.Session.Rolls, 1)
}

func (s *DiceHandlerTestSuite) TestRollBadNotation() {
	s.mockService.EXPECT().
		RollDice(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidArgument("invalid dice notation: banana"))

	body := `{"entity_id": "item_123", "context": "attribute_playtest", "notation": "banana"}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/dice/rolls", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *DiceHandlerTestSuite) TestRollItemAttributes() {
	rollOne := dicesession.DiceRoll{RollID: "roll_1", Notation: "1d8", Dice: []int32{6}, Total: 6, DiceTotal: 6}
	rollTwo := dicesession.DiceRoll{RollID: "roll_2", Notation: "1d4", Dice: []int32{2}, Total: 2, DiceTotal: 2}

	s.mockService.EXPECT().
		RollItemAttributes(gomock.Any(), &dice.RollItemAttributesInput{ItemID: "item_123"}).
		Return(&dice.RollItemAttributesOutput{
			Rolls:   []*dicesession.DiceRoll{&rollOne, &rollTwo},
			Session: s.testSession(rollOne, rollTwo),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/dice/items/item_123/attributes", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)

	var resp v1alpha1.RollAttributesResponseJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Rolls, 2)
	s.Equal("1d8", resp.Rolls[0].Notation)
	s.Equal("1d4", resp.Rolls[1].Notation)
}

func (s *DiceHandlerTestSuite) TestGetSession() {
	roll := dicesession.DiceRoll{RollID: "roll_1", Notation: "1d6", Dice: []int32{4}, Total: 4, DiceTotal: 4}

	s.mockService.EXPECT().
		GetRollSession(gomock.Any(), &dice.GetRollSessionInput{
			EntityID: "item_123",
			Context:  "attribute_playtest",
		}).
		Return(&dice.GetRollSessionOutput{Session: s.testSession(roll)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/dice/rolls/item_123/attribute_playtest", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp v1alpha1.DiceSessionJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("item_123", resp.EntityID)
	s.Require().Len(resp.Rolls, 1)
	s.Equal(int32(4), resp.Rolls[0].Total)
}

func (s *DiceHandlerTestSuite) TestGetSessionNotFound() {
	s.mockService.EXPECT().
		GetRollSession(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no session for entity item_123"))

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/dice/rolls/item_123/attribute_playtest", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *DiceHandlerTestSuite) TestClearSession() {
	s.mockService.EXPECT().
		ClearRollSession(gomock.Any(), &dice.ClearRollSessionInput{
			EntityID: "item_123",
			Context:  "attribute_playtest",
		}).
		Return(&dice.ClearRollSessionOutput{RollsDeleted: 3}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1alpha1/dice/rolls/item_123/attribute_playtest", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp v1alpha1.ClearSessionResponseJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int32(3), resp.RollsDeleted)
}

func TestDiceHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiceHandlerTestSuite))
}
