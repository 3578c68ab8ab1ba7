package v1alpha1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/forge-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/monster"
	monstermock "github.com/KirkDiggler/forge-api/internal/orchestrators/monster/mock"
)

type MonsterHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *monstermock.MockService
	mux         *http.ServeMux
}

func (s *MonsterHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = monstermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewMonsterHandler(&v1alpha1.MonsterHandlerConfig{
		MonsterService: s.mockService,
	})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *MonsterHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MonsterHandlerTestSuite) TestCreate() {
	s.mockService.EXPECT().
		CreateMonster(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *monster.CreateMonsterInput) (*monster.CreateMonsterOutput, error) {
			s.Equal("Marsh Lurker", in.Monster.Name)
			s.Equal(forge.DieD10, in.Monster.Might)
			s.Equal(forge.DieD6, in.Monster.Agility)

			created := *in.Monster
			created.ID = "monster_123"
			return &monster.CreateMonsterOutput{Monster: &created}, nil
		})

	body := `{
		"name": "Marsh Lurker",
		"tier": 2,
		"might": "d10",
		"agility": "d6",
		"will": "d8",
		"attack_actions": [{"descriptor_id": "desc_claw", "name": "Claw", "strength": 4, "die": "d8"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/monsters", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)

	var resp v1alpha1.MonsterJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("monster_123", resp.ID)
	s.Equal("d10", resp.Might)
	s.Require().Len(resp.AttackActions, 1)
	s.Equal("Claw", resp.AttackActions[0].Name)
}

func (s *MonsterHandlerTestSuite) TestCreateRejectsBadDie() {
	body := `{"name": "Marsh Lurker", "tier": 1, "might": "d20", "agility": "d6", "will": "d8"}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/monsters", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *MonsterHandlerTestSuite) TestListWithTierFilter() {
	s.mockService.EXPECT().
		ListMonsters(gomock.Any(), &monster.ListMonstersInput{Tier: 2}).
		Return(&monster.ListMonstersOutput{Monsters: []*forge.Monster{
			{ID: "monster_1", Name: "Marsh Lurker", Tier: 2, Might: forge.DieD10, Agility: forge.DieD6, Will: forge.DieD8},
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/monsters?tier=2", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Monsters []v1alpha1.MonsterJSON `json:"monsters"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Monsters, 1)
	s.Equal("Marsh Lurker", resp.Monsters[0].Name)
}

func (s *MonsterHandlerTestSuite) TestListRejectsBadTier() {
	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/monsters?tier=heavy", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *MonsterHandlerTestSuite) TestGetNotFound() {
	s.mockService.EXPECT().
		GetMonster(gomock.Any(), &monster.GetMonsterInput{ID: "monster_missing"}).
		Return(nil, errors.NotFound("monster not found"))

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/monsters/monster_missing", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *MonsterHandlerTestSuite) TestDelete() {
	s.mockService.EXPECT().
		DeleteMonster(gomock.Any(), &monster.DeleteMonsterInput{ID: "monster_123"}).
		Return(&monster.DeleteMonsterOutput{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1alpha1/monsters/monster_123", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *MonsterHandlerTestSuite) TestStatBlock() {
	s.mockService.EXPECT().
		RenderStatBlock(gomock.Any(), &monster.RenderStatBlockInput{ID: "monster_123"}).
		Return(&monster.RenderStatBlockOutput{Block: &monster.StatBlock{
			MonsterID: "monster_123",
			Name:      "Marsh Lurker",
			Tier:      2,
			Might:     "d10",
			Agility:   "d6",
			Will:      "d8",
			AttackActions: []monster.BlockLine{
				{Name: "Claw", Text: "Claw: roll d8, deal 6 damage"},
			},
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/monsters/monster_123/statblock", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp v1alpha1.StatBlockJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("d10", resp.Might)
	s.Require().Len(resp.AttackActions, 1)
	s.Equal("Claw: roll d8, deal 6 damage", resp.AttackActions[0].Text)
}

func TestMonsterHandlerSuite(t *testing.T) {
	suite.Run(t, new(MonsterHandlerTestSuite))
}
