// Package descriptor provides the interface for descriptor template persistence
package descriptor

//go:generate mockgen -destination=mock/mock_repository.go -package=descriptormock github.com/KirkDiggler/forge-api/internal/repositories/descriptor Repository

import (
	"context"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// Repository defines the interface for descriptor template persistence.
// Template token validation happens in the orchestrator before save; the
// repository stores whatever it is given.
type Repository interface {
	// Get retrieves a template by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the template does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByKind retrieves templates of one kind, or all kinds when
	// Kind is empty
	ListByKind(ctx context.Context, input ListByKindInput) (*ListByKindOutput, error)

	// Create stores a new template
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing template
	// Returns errors.NotFound if the template does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a template
	// Returns errors.NotFound if the template does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a template
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a template
type GetOutput struct {
	Template *forge.DescriptorTemplate
}

// ListByKindInput defines the input for listing templates
type ListByKindInput struct {
	Kind string
}

// ListByKindOutput defines the output for listing templates
type ListByKindOutput struct {
	Templates []*forge.DescriptorTemplate
}

// CreateInput defines the input for creating a template
type CreateInput struct {
	Template *forge.DescriptorTemplate
}

// CreateOutput defines the output for creating a template
type CreateOutput struct {
	Template *forge.DescriptorTemplate
}

// UpdateInput defines the input for updating a template
type UpdateInput struct {
	Template *forge.DescriptorTemplate
}

// UpdateOutput defines the output for updating a template
type UpdateOutput struct {
	Template *forge.DescriptorTemplate
}

// DeleteInput defines the input for deleting a template
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a template
type DeleteOutput struct{}
