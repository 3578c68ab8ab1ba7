package item

import (
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// GetItemInput defines the request for getting an item
type GetItemInput struct {
	ID string
}

// GetItemOutput defines the response for getting an item
type GetItemOutput struct {
	Item *forge.Item
}

// ListItemsInput defines the request for listing items
type ListItemsInput struct {
	// Slot filters by item slot when set
	Slot string
}

// ListItemsOutput defines the response for listing items
type ListItemsOutput struct {
	Items []*forge.Item
}

// CreateItemInput defines the request for creating an item
type CreateItemInput struct {
	Item *forge.Item
}

// CreateItemOutput defines the response for creating an item
type CreateItemOutput struct {
	Item *forge.Item
}

// UpdateItemInput defines the request for updating an item
type UpdateItemInput struct {
	Item *forge.Item
}

// UpdateItemOutput defines the response for updating an item
type UpdateItemOutput struct {
	Item *forge.Item
}

// DeleteItemInput defines the request for deleting an item
type DeleteItemInput struct {
	ID string
}

// DeleteItemOutput defines the response for deleting an item
type DeleteItemOutput struct{}

// RenderPrintCardInput defines the request for rendering an item's print card
type RenderPrintCardInput struct {
	ID string
}

// RenderPrintCardOutput defines the response for rendering an item's print card
type RenderPrintCardOutput struct {
	Card *PrintCard
}

// PrintCard is the fully rendered display form of a forge item
type PrintCard struct {
	ItemID   string
	Name     string
	Slot     string
	Sections []CardSection

	// LoreHTML is the item's markdown lore rendered to HTML
	LoreHTML string
}

// CardSection groups rendered descriptor lines under a heading
type CardSection struct {
	Title string
	Lines []CardLine
}

// CardLine is one rendered descriptor on the card
type CardLine struct {
	// Name is the descriptor template's display name
	Name string
	// Text is the engine's rendered output for this line
	Text string
}

// Section titles on the print card
const (
	SectionModifiers     = "Modifiers"
	SectionAttackActions = "Attack Actions"
	SectionDefence       = "Defence"
)
