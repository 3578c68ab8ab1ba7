package forge

// Monster is a summoning circle stat block
type Monster struct {
	ID   string
	Name string
	Tier int32

	// Attribute dice
	Might   DieSize
	Agility DieSize
	Will    DieSize

	// Defensive stats
	PPV        int32
	ArmorSkill int32

	Traits        []TraitSelection
	AttackActions []AttackAction

	// Lore is flavor text in markdown, rendered to HTML for print
	Lore string

	CreatedAt int64
	UpdatedAt int64
}

// TraitSelection binds a trait descriptor template to this monster's
// per-trait numbers (e.g. a regeneration amount the template references)
type TraitSelection struct {
	DescriptorID string
	Values       map[string]float64
}

// AttackAction is one attack line on the stat block
type AttackAction struct {
	DescriptorID string
	Name         string
	Strength     int32
	Die          DieSize
}
