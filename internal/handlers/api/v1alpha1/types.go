package v1alpha1

import (
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/item"
	"github.com/KirkDiggler/forge-api/internal/orchestrators/monster"
	dicesession "github.com/KirkDiggler/forge-api/internal/repositories/dice_session"
)

// ItemJSON is the wire form of a forge item
type ItemJSON struct {
	ID                     string                   `json:"id,omitempty"`
	Name                   string                   `json:"name"`
	Slot                   string                   `json:"slot"`
	PPV                    int32                    `json:"ppv,omitempty"`
	ArmorSkill             int32                    `json:"armor_skill,omitempty"`
	MeleePhysicalStrength  int32                    `json:"melee_physical_strength,omitempty"`
	RangedPhysicalStrength int32                    `json:"ranged_physical_strength,omitempty"`
	MagicalStrength        int32                    `json:"magical_strength,omitempty"`
	Attributes             []AttributeSelectionJSON `json:"attributes,omitempty"`
	Effects                []EffectSelectionJSON    `json:"effects,omitempty"`
	Lore                   string                   `json:"lore,omitempty"`
	CreatedAt              int64                    `json:"created_at,omitempty"`
	UpdatedAt              int64                    `json:"updated_at,omitempty"`
}

// AttributeSelectionJSON is the wire form of an attribute selection
type AttributeSelectionJSON struct {
	DescriptorID string `json:"descriptor_id"`
	Die          string `json:"die"`
}

// EffectSelectionJSON is the wire form of an effect selection
type EffectSelectionJSON struct {
	DescriptorID string `json:"descriptor_id"`
	Rank         int32  `json:"rank"`
}

func itemToJSON(i *forge.Item) *ItemJSON {
	out := &ItemJSON{
		ID:                     i.ID,
		Name:                   i.Name,
		Slot:                   i.Slot,
		PPV:                    i.PPV,
		ArmorSkill:             i.ArmorSkill,
		MeleePhysicalStrength:  i.MeleePhysicalStrength,
		RangedPhysicalStrength: i.RangedPhysicalStrength,
		MagicalStrength:        i.MagicalStrength,
		Lore:                   i.Lore,
		CreatedAt:              i.CreatedAt,
		UpdatedAt:              i.UpdatedAt,
	}
	for _, attr := range i.Attributes {
		out.Attributes = append(out.Attributes, AttributeSelectionJSON{
			DescriptorID: attr.DescriptorID,
			Die:          attr.Die.Display(),
		})
	}
	for _, effect := range i.Effects {
		out.Effects = append(out.Effects, EffectSelectionJSON{
			DescriptorID: effect.DescriptorID,
			Rank:         effect.Rank,
		})
	}
	return out
}

func itemFromJSON(in *ItemJSON) (*forge.Item, error) {
	out := &forge.Item{
		ID:                     in.ID,
		Name:                   in.Name,
		Slot:                   in.Slot,
		PPV:                    in.PPV,
		ArmorSkill:             in.ArmorSkill,
		MeleePhysicalStrength:  in.MeleePhysicalStrength,
		RangedPhysicalStrength: in.RangedPhysicalStrength,
		MagicalStrength:        in.MagicalStrength,
		Lore:                   in.Lore,
	}
	for _, attr := range in.Attributes {
		die, err := forge.ParseDieSize(attr.Die)
		if err != nil {
			return nil, errors.InvalidArgumentf("attributes: %v", err)
		}
		out.Attributes = append(out.Attributes, forge.AttributeSelection{
			DescriptorID: attr.DescriptorID,
			Die:          die,
		})
	}
	for _, effect := range in.Effects {
		out.Effects = append(out.Effects, forge.EffectSelection{
			DescriptorID: effect.DescriptorID,
			Rank:         effect.Rank,
		})
	}
	return out, nil
}

// MonsterJSON is the wire form of a summoning circle monster
type MonsterJSON struct {
	ID            string               `json:"id,omitempty"`
	Name          string               `json:"name"`
	Tier          int32                `json:"tier"`
	Might         string               `json:"might"`
	Agility       string               `json:"agility"`
	Will          string               `json:"will"`
	PPV           int32                `json:"ppv,omitempty"`
	ArmorSkill    int32                `json:"armor_skill,omitempty"`
	Traits        []TraitSelectionJSON `json:"traits,omitempty"`
	AttackActions []AttackActionJSON   `json:"attack_actions,omitempty"`
	Lore          string               `json:"lore,omitempty"`
	CreatedAt     int64                `json:"created_at,omitempty"`
	UpdatedAt     int64                `json:"updated_at,omitempty"`
}

// TraitSelectionJSON is the wire form of a trait selection
type TraitSelectionJSON struct {
	DescriptorID string             `json:"descriptor_id"`
	Values       map[string]float64 `json:"values,omitempty"`
}

// AttackActionJSON is the wire form of an attack action
type AttackActionJSON struct {
	DescriptorID string `json:"descriptor_id"`
	Name         string `json:"name"`
	Strength     int32  `json:"strength"`
	Die          string `json:"die"`
}

func monsterToJSON(m *forge.Monster) *MonsterJSON {
	out := &MonsterJSON{
		ID:         m.ID,
		Name:       m.Name,
		Tier:       m.Tier,
		Might:      m.Might.Display(),
		Agility:    m.Agility.Display(),
		Will:       m.Will.Display(),
		PPV:        m.PPV,
		ArmorSkill: m.ArmorSkill,
		Lore:       m.Lore,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, trait := range m.Traits {
		out.Traits = append(out.Traits, TraitSelectionJSON{
			DescriptorID: trait.DescriptorID,
			Values:       trait.Values,
		})
	}
	for _, attack := range m.AttackActions {
		out.AttackActions = append(out.AttackActions, AttackActionJSON{
			DescriptorID: attack.DescriptorID,
			Name:         attack.Name,
			Strength:     attack.Strength,
			Die:          attack.Die.Display(),
		})
	}
	return out
}

func monsterFromJSON(in *MonsterJSON) (*forge.Monster, error) {
	might, err := forge.ParseDieSize(in.Might)
	if err != nil {
		return nil, errors.InvalidArgumentf("might: %v", err)
	}
	agility, err := forge.ParseDieSize(in.Agility)
	if err != nil {
		return nil, errors.InvalidArgumentf("agility: %v", err)
	}
	will, err := forge.ParseDieSize(in.Will)
	if err != nil {
		return nil, errors.InvalidArgumentf("will: %v", err)
	}

	out := &forge.Monster{
		ID:         in.ID,
		Name:       in.Name,
		Tier:       in.Tier,
		Might:      might,
		Agility:    agility,
		Will:       will,
		PPV:        in.PPV,
		ArmorSkill: in.ArmorSkill,
		Lore:       in.Lore,
	}
	for _, trait := range in.Traits {
		out.Traits = append(out.Traits, forge.TraitSelection{
			DescriptorID: trait.DescriptorID,
			Values:       trait.Values,
		})
	}
	for _, attack := range in.AttackActions {
		die, err := forge.ParseDieSize(attack.Die)
		if err != nil {
			return nil, errors.InvalidArgumentf("attack_actions: %v", err)
		}
		out.AttackActions = append(out.AttackActions, forge.AttackAction{
			DescriptorID: attack.DescriptorID,
			Name:         attack.Name,
			Strength:     attack.Strength,
			Die:          die,
		})
	}
	return out, nil
}

// DescriptorJSON is the wire form of a descriptor template
type DescriptorJSON struct {
	ID        string `json:"id,omitempty"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Template  string `json:"template"`
	CreatedAt int64  `json:"created_at,omitempty"`
	UpdatedAt int64  `json:"updated_at,omitempty"`
}

func descriptorToJSON(d *forge.DescriptorTemplate) *DescriptorJSON {
	return &DescriptorJSON{
		ID:        d.ID,
		Kind:      d.Kind,
		Name:      d.Name,
		Template:  d.Template,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func descriptorFromJSON(in *DescriptorJSON) *forge.DescriptorTemplate {
	return &forge.DescriptorTemplate{
		ID:       in.ID,
		Kind:     in.Kind,
		Name:     in.Name,
		Template: in.Template,
	}
}

// PrintCardJSON is the wire form of a rendered item card
type PrintCardJSON struct {
	ItemID   string            `json:"item_id"`
	Name     string            `json:"name"`
	Slot     string            `json:"slot"`
	Sections []CardSectionJSON `json:"sections"`
	LoreHTML string            `json:"lore_html,omitempty"`
}

// CardSectionJSON is the wire form of a card section
type CardSectionJSON struct {
	Title string         `json:"title"`
	Lines []CardLineJSON `json:"lines"`
}

// CardLineJSON is the wire form of a rendered line
type CardLineJSON struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

func printCardToJSON(card *item.PrintCard) *PrintCardJSON {
	out := &PrintCardJSON{
		ItemID:   card.ItemID,
		Name:     card.Name,
		Slot:     card.Slot,
		Sections: []CardSectionJSON{},
		LoreHTML: card.LoreHTML,
	}
	for _, section := range card.Sections {
		jsonSection := CardSectionJSON{Title: section.Title}
		for _, line := range section.Lines {
			jsonSection.Lines = append(jsonSection.Lines, CardLineJSON{Name: line.Name, Text: line.Text})
		}
		out.Sections = append(out.Sections, jsonSection)
	}
	return out
}

// StatBlockJSON is the wire form of a rendered monster block
type StatBlockJSON struct {
	MonsterID     string         `json:"monster_id"`
	Name          string         `json:"name"`
	Tier          int32          `json:"tier"`
	Might         string         `json:"might"`
	Agility       string         `json:"agility"`
	Will          string         `json:"will"`
	PPV           int32          `json:"ppv"`
	ArmorSkill    int32          `json:"armor_skill"`
	Traits        []CardLineJSON `json:"traits"`
	AttackActions []CardLineJSON `json:"attack_actions"`
	LoreHTML      string         `json:"lore_html,omitempty"`
}

func statBlockToJSON(block *monster.StatBlock) *StatBlockJSON {
	out := &StatBlockJSON{
		MonsterID:     block.MonsterID,
		Name:          block.Name,
		Tier:          block.Tier,
		Might:         block.Might,
		Agility:       block.Agility,
		Will:          block.Will,
		PPV:           block.PPV,
		ArmorSkill:    block.ArmorSkill,
		Traits:        []CardLineJSON{},
		AttackActions: []CardLineJSON{},
	}
	for _, line := range block.Traits {
		out.Traits = append(out.Traits, CardLineJSON{Name: line.Name, Text: line.Text})
	}
	for _, line := range block.AttackActions {
		out.AttackActions = append(out.AttackActions, CardLineJSON{Name: line.Name, Text: line.Text})
	}
	out.LoreHTML = block.LoreHTML
	return out
}

// DiceRollJSON is the wire form of a playtest roll
type DiceRollJSON struct {
	RollID      string  `json:"roll_id"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice"`
	Total       int32   `json:"total"`
	Description string  `json:"description,omitempty"`
	DiceTotal   int32   `json:"dice_total"`
	Modifier    int32   `json:"modifier,omitempty"`
}

// DiceSessionJSON is the wire form of a playtest roll session
type DiceSessionJSON struct {
	EntityID  string         `json:"entity_id"`
	Context   string         `json:"context"`
	Rolls     []DiceRollJSON `json:"rolls"`
	CreatedAt int64          `json:"created_at"`
	ExpiresAt int64          `json:"expires_at"`
}

func diceRollToJSON(roll *dicesession.DiceRoll) DiceRollJSON {
	return DiceRollJSON{
		RollID:      roll.RollID,
		Notation:    roll.Notation,
		Dice:        roll.Dice,
		Total:       roll.Total,
		Description: roll.Description,
		DiceTotal:   roll.DiceTotal,
		Modifier:    roll.Modifier,
	}
}

func diceSessionToJSON(session *dicesession.DiceSession) *DiceSessionJSON {
	out := &DiceSessionJSON{
		EntityID:  session.EntityID,
		Context:   session.Context,
		Rolls:     []DiceRollJSON{},
		CreatedAt: session.CreatedAt.Unix(),
		ExpiresAt: session.ExpiresAt.Unix(),
	}
	for i := range session.Rolls {
		out.Rolls = append(out.Rolls, diceRollToJSON(&session.Rolls[i]))
	}
	return out
}
