// Package descriptor implements the descriptor template orchestrator:
// authoring CRUD with token validation, plus render previews
package descriptor

//go:generate mockgen -destination=mock/mock_service.go -package=descriptormock github.com/KirkDiggler/forge-api/internal/orchestrators/descriptor Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/forge-api/internal/engine"
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	descriptorrepo "github.com/KirkDiggler/forge-api/internal/repositories/descriptor"
)

// Service defines the interface for descriptor template operations
type Service interface {
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error)
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)

	// CreateTemplate and UpdateTemplate reject templates referencing
	// tokens outside the kind's allowed set. Authoring is the only place
	// unknown tokens can be caught; at render time they degrade to the
	// placeholder.
	CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*CreateTemplateOutput, error)
	UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error)
	DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error)

	// ValidateTemplate runs the same checks as CreateTemplate without
	// persisting, for the authoring form's save-button state
	ValidateTemplate(ctx context.Context, input *ValidateTemplateInput) (*ValidateTemplateOutput, error)

	// Preview renders template text against a caller-supplied context
	// without persisting anything
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)
}

// Config holds the dependencies for the descriptor orchestrator
type Config struct {
	DescriptorRepo descriptorrepo.Repository
	Engine         engine.Engine
	IDGenerator    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DescriptorRepo == nil {
		vb.RequiredField("DescriptorRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	descriptorRepo descriptorrepo.Repository
	engine         engine.Engine
	idGen          idgen.Generator
}

// NewOrchestrator creates a new descriptor orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		descriptorRepo: cfg.DescriptorRepo,
		engine:         cfg.Engine,
		idGen:          cfg.IDGenerator,
	}, nil
}

// validateTemplate checks the authored fields and the token whitelist
func (o *orchestrator) validateTemplate(tmpl *forge.DescriptorTemplate) error {
	vb := errors.NewValidationBuilder()

	if tmpl.Name == "" {
		vb.RequiredField("name")
	}
	if tmpl.Template == "" {
		vb.RequiredField("template")
	}
	if !forge.IsDescriptorKind(tmpl.Kind) {
		vb.Fieldf("kind", "must be one of: %s", strings.Join(forge.DescriptorKinds, ", "))
		return vb.Build()
	}

	allowed := make(map[string]bool)
	for _, name := range forge.AllowedTokens(tmpl.Kind) {
		allowed[name] = true
	}

	var unknown []string
	for _, name := range o.engine.ExtractTokens(tmpl.Template) {
		if !allowed[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		vb.Fieldf("template", "references unknown tokens: %s", strings.Join(unknown, ", "))
	}

	return vb.Build()
}

func (o *orchestrator) GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	getOutput, err := o.descriptorRepo.Get(ctx, descriptorrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get template")
	}

	return &GetTemplateOutput{Template: getOutput.Template}, nil
}

func (o *orchestrator) ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error) {
	if !forge.IsDescriptorKind(input.Kind) {
		return nil, errors.InvalidArgumentf("unknown descriptor kind: %s", input.Kind)
	}

	listOutput, err := o.descriptorRepo.ListByKind(ctx, descriptorrepo.ListByKindInput{Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	return &ListTemplatesOutput{Templates: listOutput.Templates}, nil
}

func (o *orchestrator) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*CreateTemplateOutput, error) {
	if input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if err := o.validateTemplate(input.Template); err != nil {
		return nil, err
	}

	tmpl := *input.Template
	tmpl.ID = o.idGen.Generate()

	createOutput, err := o.descriptorRepo.Create(ctx, descriptorrepo.CreateInput{Template: &tmpl})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create template")
	}

	slog.Info("Descriptor template created",
		"template_id", createOutput.Template.ID,
		"kind", createOutput.Template.Kind,
		"name", createOutput.Template.Name,
	)

	return &CreateTemplateOutput{Template: createOutput.Template}, nil
}

func (o *orchestrator) UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	if input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if input.Template.ID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}
	if err := o.validateTemplate(input.Template); err != nil {
		return nil, err
	}

	updateOutput, err := o.descriptorRepo.Update(ctx, descriptorrepo.UpdateInput{Template: input.Template})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update template")
	}

	return &UpdateTemplateOutput{Template: updateOutput.Template}, nil
}

func (o *orchestrator) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	if _, err := o.descriptorRepo.Delete(ctx, descriptorrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete template")
	}

	slog.Info("Descriptor template deleted", "template_id", input.ID)

	return &DeleteTemplateOutput{}, nil
}

func (o *orchestrator) ValidateTemplate(ctx context.Context, input *ValidateTemplateInput) (*ValidateTemplateOutput, error) {
	if input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if err := o.validateTemplate(input.Template); err != nil {
		return nil, err
	}

	return &ValidateTemplateOutput{
		Tokens: o.engine.ExtractTokens(input.Template.Template),
	}, nil
}

func (o *orchestrator) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input.Template == "" {
		return nil, errors.InvalidArgument("template text is required")
	}

	return &PreviewOutput{
		Rendered: o.engine.Render(input.Template, input.Context),
		Tokens:   o.engine.ExtractTokens(input.Template),
	}, nil
}
