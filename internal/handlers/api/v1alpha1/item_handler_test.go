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
	"github.com/KirkDiggler/forge-api/internal/orchestrators/item"
	itemmock "github.com/KirkDiggler/forge-api/internal/orchestrators/item/mock"
)

type ItemHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *itemmock.MockService
	mux         *http.ServeMux
}

func (s *ItemHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = itemmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewItemHandler(&v1alpha1.ItemHandlerConfig{
		ItemService: s.mockService,
	})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *ItemHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ItemHandlerTestSuite) TestNewItemHandlerRequiresService() {
	_, err := v1alpha1.NewItemHandler(&v1alpha1.ItemHandlerConfig{})
	s.Require().Error(err)
}

func (s *ItemHandlerTestSuite) TestCreate() {
	s.mockService.EXPECT().
		CreateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *item.CreateItemInput) (*item.CreateItemOutput, error) {
			s.Equal("Bone Saw", in.Item.Name)
			s.Equal(forge.SlotWeapon, in.Item.Slot)
			s.Require().Len(in.Item.Attributes, 1)
			s.Equal(forge.DieD8, in.Item.Attributes[0].Die)

			created := *in.Item
			created.ID = "item_123"
			return &item.CreateItemOutput{Item: &created}, nil
		})

	body := `{
		"name": "Bone Saw",
		"slot": "SLOT_WEAPON",
		"melee_physical_strength": 3,
		"attributes": [{"descriptor_id": "desc_slash", "die": "d8"}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/items", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)

	var resp v1alpha1.ItemJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("item_123", resp.ID)
	s.Equal("d8", resp.Attributes[0].Die)
}

func (s *ItemHandlerTestSuite) TestCreateRejectsUnknownFields() {
	body := `{"name": "Bone Saw", "slot": "SLOT_WEAPON", "sharpness": 11}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/items", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ItemHandlerTestSuite) TestCreateRejectsBadDie() {
	body := `{"name": "Bone Saw", "slot": "SLOT_WEAPON", "attributes": [{"descriptor_id": "x", "die": "d7"}]}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/items", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ItemHandlerTestSuite) TestGetNotFound() {
	s.mockService.EXPECT().
		GetItem(gomock.Any(), &item.GetItemInput{ID: "item_missing"}).
		Return(nil, errors.NotFound("item not found"))

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/items/item_missing", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)

	var resp errors.HTTPBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.CodeNotFound), resp.Code)
}

func (s *ItemHandlerTestSuite) TestListWithSlotFilter() {
	s.mockService.EXPECT().
		ListItems(gomock.Any(), &item.ListItemsInput{Slot: forge.SlotArmor}).
		Return(&item.ListItemsOutput{Items: []*forge.Item{
			{ID: "item_1", Name: "Chain Vest", Slot: forge.SlotArmor},
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/items?slot=SLOT_ARMOR", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Items []v1alpha1.ItemJSON `json:"items"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Items, 1)
	s.Equal("Chain Vest", resp.Items[0].Name)
}

func (s *ItemHandlerTestSuite) TestUpdateUsesPathID() {
	s.mockService.EXPECT().
		UpdateItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *item.UpdateItemInput) (*item.UpdateItemOutput, error) {
			s.Equal("item_123", in.Item.ID)
			return &item.UpdateItemOutput{Item: in.Item}, nil
		})

	body := `{"name": "Bone Saw II", "slot": "SLOT_WEAPON"}`
	req := httptest.NewRequest(http.MethodPut, "/v1alpha1/items/item_123", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ItemHandlerTestSuite) TestDelete() {
	s.mockService.EXPECT().
		DeleteItem(gomock.Any(), &item.DeleteItemInput{ID: "item_123"}).
		Return(&item.DeleteItemOutput{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1alpha1/items/item_123", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ItemHandlerTestSuite) TestPrint() {
	s.mockService.EXPECT().
		RenderPrintCard(gomock.Any(), &item.RenderPrintCardInput{ID: "item_123"}).
		Return(&item.RenderPrintCardOutput{Card: &item.PrintCard{
			ItemID: "item_123",
			Name:   "Bone Saw",
			Slot:   forge.SlotWeapon,
			Sections: []item.CardSection{
				{Title: item.SectionAttackActions, Lines: []item.CardLine{
					{Name: "Slash", Text: "Roll d8, deal 3 damage"},
				}},
			},
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/items/item_123/print", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp v1alpha1.PrintCardJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Sections, 1)
	s.Equal("Roll d8, deal 3 damage", resp.Sections[0].Lines[0].Text)
}

func TestItemHandlerSuite(t *testing.T) {
	suite.Run(t, new(ItemHandlerTestSuite))
}
