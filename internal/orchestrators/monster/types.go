package monster

import (
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
)

// GetMonsterInput defines the request for getting a monster
type GetMonsterInput struct {
	ID string
}

// GetMonsterOutput defines the response for getting a monster
type GetMonsterOutput struct {
	Monster *forge.Monster
}

// ListMonstersInput defines the request for listing monsters
type ListMonstersInput struct {
	// Tier filters by monster tier when positive
	Tier int32
}

// ListMonstersOutput defines the response for listing monsters
type ListMonstersOutput struct {
	Monsters []*forge.Monster
}

// CreateMonsterInput defines the request for creating a monster
type CreateMonsterInput struct {
	Monster *forge.Monster
}

// CreateMonsterOutput defines the response for creating a monster
type CreateMonsterOutput struct {
	Monster *forge.Monster
}

// UpdateMonsterInput defines the request for updating a monster
type UpdateMonsterInput struct {
	Monster *forge.Monster
}

// UpdateMonsterOutput defines the response for updating a monster
type UpdateMonsterOutput struct {
	Monster *forge.Monster
}

// DeleteMonsterInput defines the request for deleting a monster
type DeleteMonsterInput struct {
	ID string
}

// DeleteMonsterOutput defines the response for deleting a monster
type DeleteMonsterOutput struct{}

// RenderStatBlockInput defines the request for rendering a monster's stat block
type RenderStatBlockInput struct {
	ID string
}

// RenderStatBlockOutput defines the response for rendering a monster's stat block
type RenderStatBlockOutput struct {
	Block *StatBlock
}

// StatBlock is the fully rendered display form of a summoning circle monster
type StatBlock struct {
	MonsterID string
	Name      string
	Tier      int32

	// Attribute dice in display form ("d8")
	Might   string
	Agility string
	Will    string

	PPV        int32
	ArmorSkill int32

	Traits        []BlockLine
	AttackActions []BlockLine

	// LoreHTML is the monster's markdown lore rendered to HTML
	LoreHTML string
}

// BlockLine is one rendered descriptor on the stat block
type BlockLine struct {
	// Name is the display name for the line: the trait template's name,
	// or the attack action's authored name
	Name string
	// Text is the engine's rendered output for this line
	Text string
}
