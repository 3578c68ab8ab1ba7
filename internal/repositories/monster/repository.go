// Package monster provides the interface for summoning circle persistence
package monster

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/KirkDiggler/forge-api/internal/repositories/monster Repository

import (
	"context"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// Repository defines the interface for monster stat block persistence
type Repository interface {
	// Get retrieves a monster by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the monster does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves monsters, optionally filtered by tier
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Create stores a new monster
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing monster
	// Returns errors.NotFound if the monster does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a monster
	// Returns errors.NotFound if the monster does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a monster
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *forge.Monster
}

// ListInput defines the input for listing monsters
type ListInput struct {
	// Tier filters by monster tier when positive
	Tier int32
}

// ListOutput defines the output for listing monsters
type ListOutput struct {
	Monsters []*forge.Monster
}

// CreateInput defines the input for creating a monster
type CreateInput struct {
	Monster *forge.Monster
}

// CreateOutput defines the output for creating a monster
type CreateOutput struct {
	Monster *forge.Monster
}

// UpdateInput defines the input for updating a monster
type UpdateInput struct {
	Monster *forge.Monster
}

// UpdateOutput defines the output for updating a monster
type UpdateOutput struct {
	Monster *forge.Monster
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct{}
