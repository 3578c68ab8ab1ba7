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

	"github.com/KirkDiggler/forge-api/internal/engine"
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	v1alpha1 "github.com/KirkDiggler/forge-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/descriptor"
	descriptormock "github.com/KirkDiggler/forge-api/internal/orchestrators/descriptor/mock"
)

type DescriptorHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *descriptormock.MockService
	mux         *http.ServeMux
}

func (s *DescriptorHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = descriptormock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewDescriptorHandler(&v1alpha1.DescriptorHandlerConfig{
		DescriptorService: s.mockService,
	})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *DescriptorHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DescriptorHandlerTestSuite) TestCreate() {
	s.mockService.EXPECT().
		CreateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *descriptor.CreateTemplateInput) (*descriptor.CreateTemplateOutput, error) {
			s.Equal(forge.DescriptorEffect, in.Template.Kind)
			s.Equal("Bleeding", in.Template.Name)

			created := *in.Template
			created.ID = "desc_123"
			return &descriptor.CreateTemplateOutput{Template: &created}, nil
		})

	body := `{
		"kind": "DESCRIPTOR_EFFECT",
		"name": "Bleeding",
		"template": "Target bleeds for [Rank]*2 rounds"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/descriptors", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)

	var resp v1alpha1.DescriptorJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("desc_123", resp.ID)
}

func (s *DescriptorHandlerTestSuite) TestCreateValidationErrorHasFieldMeta() {
	s.mockService.EXPECT().
		CreateTemplate(gomock.Any(), gomock.Any()).
		Return(nil, errors.NewValidationBuilder().
			RequiredField("template").
			Build())

	body := `{"kind": "DESCRIPTOR_EFFECT", "name": "Bleeding", "template": ""}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/descriptors", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp errors.HTTPBody
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.CodeInvalidArgument), resp.Code)
	s.NotEmpty(resp.Meta)
}

func (s *DescriptorHandlerTestSuite) TestListByKind() {
	s.mockService.EXPECT().
		ListTemplates(gomock.Any(), &descriptor.ListTemplatesInput{Kind: forge.DescriptorTrait}).
		Return(&descriptor.ListTemplatesOutput{Templates: []*forge.DescriptorTemplate{
			{ID: "desc_1", Kind: forge.DescriptorTrait, Name: "Regeneration", Template: "Regains [Amount] wounds"},
		}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/descriptors?kind=DESCRIPTOR_TRAIT", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp struct {
		Descriptors []v1alpha1.DescriptorJSON `json:"descriptors"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Descriptors, 1)
	s.Equal("Regeneration", resp.Descriptors[0].Name)
}

func (s *DescriptorHandlerTestSuite) TestGetNotFound() {
	s.mockService.EXPECT().
		GetTemplate(gomock.Any(), &descriptor.GetTemplateInput{ID: "desc_missing"}).
		Return(nil, errors.NotFound("descriptor not found"))

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/descriptors/desc_missing", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *DescriptorHandlerTestSuite) TestDelete() {
	s.mockService.EXPECT().
		DeleteTemplate(gomock.Any(), &descriptor.DeleteTemplateInput{ID: "desc_123"}).
		Return(&descriptor.DeleteTemplateOutput{}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1alpha1/descriptors/desc_123", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *DescriptorHandlerTestSuite) TestValidate() {
	s.mockService.EXPECT().
		ValidateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *descriptor.ValidateTemplateInput) (*descriptor.ValidateTemplateOutput, error) {
			s.Equal(forge.DescriptorAttribute, in.Template.Kind)
			return &descriptor.ValidateTemplateOutput{Tokens: []string{"AttributeDie", "MeleePhysicalStrength"}}, nil
		})

	body := `{"kind": "DESCRIPTOR_ATTRIBUTE", "name": "Slashing", "template": "Roll [AttributeDie], deal [MeleePhysicalStrength] damage"}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/descriptors/validate", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp v1alpha1.ValidateResponseJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Valid)
	s.Equal([]string{"AttributeDie", "MeleePhysicalStrength"}, resp.Tokens)
}

func (s *DescriptorHandlerTestSuite) TestPreview() {
	s.mockService.EXPECT().
		Preview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *descriptor.PreviewInput) (*descriptor.PreviewOutput, error) {
			s.Equal("Soak [ceil(PPV/2)] wounds", in.Template)
			s.Equal(engine.Number(7), in.Context["PPV"])
			return &descriptor.PreviewOutput{
				Rendered: "Soak 4 wounds",
				Tokens:   []string{"PPV"},
			}, nil
		})

	body := `{"template": "Soak [ceil(PPV/2)] wounds", "context": {"PPV": 7}}`
	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/descriptors/preview", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var resp v1alpha1.PreviewResponseJSON
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Soak 4 wounds", resp.Rendered)
	s.Equal([]string{"PPV"}, resp.Tokens)
}

func TestDescriptorHandlerSuite(t *testing.T) {
	suite.Run(t, new(DescriptorHandlerTestSuite))
}
