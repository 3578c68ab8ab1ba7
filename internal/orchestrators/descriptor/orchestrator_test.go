package descriptor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/forge-api/internal/engine"
	enginedescriptor "github.com/KirkDiggler/forge-api/internal/engine/descriptor"
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	descriptor "github.com/KirkDiggler/forge-api/internal/orchestrators/descriptor"
	idgenmock "github.com/KirkDiggler/forge-api/internal/pkg/idgen/mock"
	descriptorrepo "github.com/KirkDiggler/forge-api/internal/repositories/descriptor"
	descriptorrepomock "github.com/KirkDiggler/forge-api/internal/repositories/descriptor/mock"
)

type DescriptorOrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *descriptorrepomock.MockRepository
	mockIDGen    *idgenmock.MockGenerator
	orchestrator descriptor.Service
	ctx          context.Context
}

func (s *DescriptorOrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = descriptorrepomock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)

	orch, err := descriptor.NewOrchestrator(&descriptor.Config{
		DescriptorRepo: s.mockRepo,
		Engine:         enginedescriptor.New(),
		IDGenerator:    s.mockIDGen,
	})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.ctx = context.Background()
}

func (s *DescriptorOrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DescriptorOrchestratorTestSuite) TestCreateTemplate() {
	input := &descriptor.CreateTemplateInput{
		Template: &forge.DescriptorTemplate{
			Kind:     forge.DescriptorEffect,
			Name:     "Bleed",
			Template: "Target bleeds for ([Rank]*2) rounds",
		},
	}

	s.mockIDGen.EXPECT().Generate().Return("desc_123")
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in descriptorrepo.CreateInput) (*descriptorrepo.CreateOutput, error) {
			s.Equal("desc_123", in.Template.ID)
			return &descriptorrepo.CreateOutput{Template: in.Template}, nil
		})

	output, err := s.orchestrator.CreateTemplate(s.ctx, input)
	s.Require().NoError(err)
	s.Equal("desc_123", output.Template.ID)
}

func (s *DescriptorOrchestratorTestSuite) TestCreateTemplateRejectsUnknownTokens() {
	// Rank is an effect token, not a trait token
	input := &descriptor.CreateTemplateInput{
		Template: &forge.DescriptorTemplate{
			Kind:     forge.DescriptorTrait,
			Name:     "Bad Trait",
			Template: "Deals [Rank] plus [Banana] damage",
		},
	}

	_, err := s.orchestrator.CreateTemplate(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Rank")
	s.Contains(err.Error(), "Banana")
}

func (s *DescriptorOrchestratorTestSuite) TestCreateTemplateRejectsUnknownKind() {
	input := &descriptor.CreateTemplateInput{
		Template: &forge.DescriptorTemplate{
			Kind:     "DESCRIPTOR_SNACK",
			Name:     "Snack",
			Template: "Tasty",
		},
	}

	_, err := s.orchestrator.CreateTemplate(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "kind")
}

func (s *DescriptorOrchestratorTestSuite) TestCreateTemplateAllowsStatTokens() {
	input := &descriptor.CreateTemplateInput{
		Template: &forge.DescriptorTemplate{
			Kind:     forge.DescriptorLimitBreak,
			Name:     "Last Stand",
			Template: "Deal ([ChosenPhysicalStrength]*2) damage, then break",
		},
	}

	s.mockIDGen.EXPECT().Generate().Return("desc_456")
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, in descriptorrepo.CreateInput) (*descriptorrepo.CreateOutput, error) {
			return &descriptorrepo.CreateOutput{Template: in.Template}, nil
		})

	_, err := s.orchestrator.CreateTemplate(s.ctx, input)
	s.Require().NoError(err)
}

func (s *DescriptorOrchestratorTestSuite) TestUpdateTemplateValidatesTokens() {
	input := &descriptor.UpdateTemplateInput{
		Template: &forge.DescriptorTemplate{
			ID:       "desc_123",
			Kind:     forge.DescriptorEffect,
			Name:     "Bleed",
			Template: "Target bleeds for [Toes] rounds",
		},
	}

	_, err := s.orchestrator.UpdateTemplate(s.ctx, input)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Toes")
}

func (s *DescriptorOrchestratorTestSuite) TestListTemplatesRejectsUnknownKind() {
	_, err := s.orchestrator.ListTemplates(s.ctx, &descriptor.ListTemplatesInput{Kind: "DESCRIPTOR_SNACK"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DescriptorOrchestratorTestSuite) TestListTemplates() {
	s.mockRepo.EXPECT().
		ListByKind(s.ctx, descriptorrepo.ListByKindInput{Kind: forge.DescriptorTrait}).
		Return(&descriptorrepo.ListByKindOutput{Templates: []*forge.DescriptorTemplate{{ID: "desc_1"}}}, nil)

	output, err := s.orchestrator.ListTemplates(s.ctx, &descriptor.ListTemplatesInput{Kind: forge.DescriptorTrait})
	s.Require().NoError(err)
	s.Len(output.Templates, 1)
}

func (s *DescriptorOrchestratorTestSuite) TestValidateTemplate() {
	output, err := s.orchestrator.ValidateTemplate(s.ctx, &descriptor.ValidateTemplateInput{
		Template: &forge.DescriptorTemplate{
			Kind:     forge.DescriptorEffect,
			Name:     "Bleed",
			Template: "Target bleeds for ([Rank]*2) rounds",
		},
	})
	s.Require().NoError(err)
	s.Equal([]string{"Rank"}, output.Tokens)
}

func (s *DescriptorOrchestratorTestSuite) TestValidateTemplateReportsOffenders() {
	_, err := s.orchestrator.ValidateTemplate(s.ctx, &descriptor.ValidateTemplateInput{
		Template: &forge.DescriptorTemplate{
			Kind:     forge.DescriptorEffect,
			Name:     "Bleed",
			Template: "Target bleeds for [Toes] rounds",
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Toes")
}

func (s *DescriptorOrchestratorTestSuite) TestPreview() {
	output, err := s.orchestrator.Preview(s.ctx, &descriptor.PreviewInput{
		Template: "Soak (ceil([PPV]/[ArmorSkill])) wounds from [Source]",
		Context: engine.Context{
			"PPV":        engine.Int(7),
			"ArmorSkill": engine.Int(2),
		},
	})
	s.Require().NoError(err)
	s.Equal("Soak 4 wounds from ?", output.Rendered)
	s.Equal([]string{"PPV", "ArmorSkill", "Source"}, output.Tokens)
}

func (s *DescriptorOrchestratorTestSuite) TestPreviewRequiresTemplate() {
	_, err := s.orchestrator.Preview(s.ctx, &descriptor.PreviewInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestDescriptorOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(DescriptorOrchestratorTestSuite))
}
