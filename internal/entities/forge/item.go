// Package forge implements the campaign content entities: forge items,
// summoning circle stat blocks, and descriptor templates.
// NOTE: These are data-only structs. Rendering an item or monster into
// display text is done by the engine, not here.
package forge

// Item slots
const (
	SlotWeapon = "SLOT_WEAPON"
	SlotArmor  = "SLOT_ARMOR"
	SlotShield = "SLOT_SHIELD"
)

// ItemSlots lists the valid forge item slots
var ItemSlots = []string{SlotWeapon, SlotArmor, SlotShield}

// Item is a forge item: a weapon, armor piece, or shield assembled from
// attribute dice and effect selections.
type Item struct {
	ID   string
	Name string
	Slot string

	// Defensive stats (armor and shields)
	PPV        int32 // physical protection value
	ArmorSkill int32

	// Offensive strengths per damage track (weapons)
	MeleePhysicalStrength  int32
	RangedPhysicalStrength int32
	MagicalStrength        int32

	// Authoring selections rendered onto the print card
	Attributes []AttributeSelection
	Effects    []EffectSelection

	// Lore is flavor text in markdown, rendered to HTML for print
	Lore string

	CreatedAt int64
	UpdatedAt int64
}

// AttributeSelection binds an attribute descriptor template to the die
// size chosen for this item
type AttributeSelection struct {
	DescriptorID string
	Die          DieSize
}

// EffectSelection binds an effect descriptor template to its chosen rank
type EffectSelection struct {
	DescriptorID string
	Rank         int32
}

// IsWeapon reports whether the item occupies the weapon slot
func (i *Item) IsWeapon() bool {
	return i.Slot == SlotWeapon
}

// ChosenPhysicalStrength returns the strength the print card leads with:
// melee when present, otherwise ranged.
func (i *Item) ChosenPhysicalStrength() int32 {
	if i.MeleePhysicalStrength != 0 {
		return i.MeleePhysicalStrength
	}
	return i.RangedPhysicalStrength
}
