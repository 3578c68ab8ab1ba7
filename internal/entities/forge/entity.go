package forge

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// ItemEntity wraps Item to implement the rpg-toolkit core.Entity
// interface, so items can own playtest dice roll sessions
type ItemEntity struct {
	*Item
}

// GetID returns the item's ID
func (e *ItemEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *ItemEntity) GetType() string {
	return "forge_item"
}

// Compile-time check that the wrapper implements core.Entity
var _ core.Entity = (*ItemEntity)(nil)
