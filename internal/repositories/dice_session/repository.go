// Package dicesession provides repository interface and types for playtest
// dice roll sessions
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/forge-api/internal/repositories/dice_session Repository

// DiceSession groups the playtest rolls made against one entity (a forge
// item or a monster) under a named context
type DiceSession struct {
	// EntityID owns these rolls (e.g. "item_123", "mon_789")
	EntityID string

	// Context groups related rolls (e.g. "attack_playtest")
	Context string

	Rolls []DiceRoll

	CreatedAt time.Time
	ExpiresAt time.Time
}

// DiceRoll is a single playtest roll result
type DiceRoll struct {
	// RollID identifies this roll within the session
	RollID string

	// Notation that was rolled (e.g. "2d8", "1d12")
	Notation string

	// Dice holds the individual die values
	Dice []int32

	// Total after applying the modifier
	Total int32

	// Description of the roll for display
	Description string

	// DiceTotal is the raw dice sum before modifiers
	DiceTotal int32

	// Modifier applied to get the final total
	Modifier int32
}

// CreateInput contains parameters for creating a dice session
type CreateInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	TTL      time.Duration
}

// CreateOutput contains the result of creating a dice session
type CreateOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Create stores a new dice session with the specified TTL
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a dice session by entity ID and context
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// Update replaces an existing dice session (used for adding rolls)
	Update(ctx context.Context, session *DiceSession) error
}
