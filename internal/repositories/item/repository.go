// Package item provides the interface for forge item persistence
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemmock github.com/KirkDiggler/forge-api/internal/repositories/item Repository

import (
	"context"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// Repository defines the interface for forge item persistence
type Repository interface {
	// Get retrieves an item by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the item does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List retrieves items, optionally filtered by slot
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Create stores a new item
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing item
	// Returns errors.NotFound if the item does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *forge.Item
}

// ListInput defines the input for listing items
type ListInput struct {
	// Slot filters by item slot when set
	Slot string
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*forge.Item
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *forge.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *forge.Item
}

// UpdateInput defines the input for updating an item
type UpdateInput struct {
	Item *forge.Item
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *forge.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}
