package descriptor

import (
	"github.com/KirkDiggler/forge-api/internal/engine"
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// GetTemplateInput defines the request for getting a template
type GetTemplateInput struct {
	ID string
}

// GetTemplateOutput defines the response for getting a template
type GetTemplateOutput struct {
	Template *forge.DescriptorTemplate
}

// ListTemplatesInput defines the request for listing templates of a kind
type ListTemplatesInput struct {
	Kind string
}

// ListTemplatesOutput defines the response for listing templates
type ListTemplatesOutput struct {
	Templates []*forge.DescriptorTemplate
}

// CreateTemplateInput defines the request for creating a template
type CreateTemplateInput struct {
	Template *forge.DescriptorTemplate
}

// CreateTemplateOutput defines the response for creating a template
type CreateTemplateOutput struct {
	Template *forge.DescriptorTemplate
}

// UpdateTemplateInput defines the request for updating a template
type UpdateTemplateInput struct {
	Template *forge.DescriptorTemplate
}

// UpdateTemplateOutput defines the response for updating a template
type UpdateTemplateOutput struct {
	Template *forge.DescriptorTemplate
}

// DeleteTemplateInput defines the request for deleting a template
type DeleteTemplateInput struct {
	ID string
}

// DeleteTemplateOutput defines the response for deleting a template
type DeleteTemplateOutput struct{}

// ValidateTemplateInput defines the request for validating template text
// without saving it
type ValidateTemplateInput struct {
	Template *forge.DescriptorTemplate
}

// ValidateTemplateOutput defines the response for a validation check that
// passed
type ValidateTemplateOutput struct {
	// Tokens lists the token names the template references
	Tokens []string
}

// PreviewInput defines the request for previewing a template render.
// The template text comes from the authoring form and need not be saved.
type PreviewInput struct {
	Template string
	Context  engine.Context
}

// PreviewOutput defines the response for previewing a template render
type PreviewOutput struct {
	// Rendered is the engine's output, unresolved tokens degraded to
	// the placeholder
	Rendered string
	// Tokens lists the token names the template references
	Tokens []string
}
