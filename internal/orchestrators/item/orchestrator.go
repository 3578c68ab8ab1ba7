// Package item implements the forge item orchestrator: CRUD plus print
// card rendering
package item

//go:generate mockgen -destination=mock/mock_service.go -package=itemmock github.com/KirkDiggler/forge-api/internal/orchestrators/item Service

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/KirkDiggler/forge-api/internal/engine"
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	descriptorrepo "github.com/KirkDiggler/forge-api/internal/repositories/descriptor"
	itemrepo "github.com/KirkDiggler/forge-api/internal/repositories/item"
)

// Service defines the interface for forge item operations
type Service interface {
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error)
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error)

	// RenderPrintCard renders every descriptor selected on an item and
	// groups the lines into print card sections
	RenderPrintCard(ctx context.Context, input *RenderPrintCardInput) (*RenderPrintCardOutput, error)
}

// Config holds the dependencies for the item orchestrator
type Config struct {
	ItemRepo       itemrepo.Repository
	DescriptorRepo descriptorrepo.Repository
	Engine         engine.Engine
	IDGenerator    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.DescriptorRepo == nil {
		vb.RequiredField("DescriptorRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	itemRepo       itemrepo.Repository
	descriptorRepo descriptorrepo.Repository
	engine         engine.Engine
	idGen          idgen.Generator
	markdown       goldmark.Markdown
}

// NewOrchestrator creates a new item orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		itemRepo:       cfg.ItemRepo,
		descriptorRepo: cfg.DescriptorRepo,
		engine:         cfg.Engine,
		idGen:          cfg.IDGenerator,
		markdown:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// validateItem checks the authored fields common to create and update
func validateItem(item *forge.Item) error {
	vb := errors.NewValidationBuilder()

	if item.Name == "" {
		vb.RequiredField("name")
	}

	validSlot := false
	for _, slot := range forge.ItemSlots {
		if item.Slot == slot {
			validSlot = true
			break
		}
	}
	if !validSlot {
		vb.Fieldf("slot", "must be one of: %s", strings.Join(forge.ItemSlots, ", "))
	}

	for _, attr := range item.Attributes {
		if attr.DescriptorID == "" {
			vb.RequiredField("attributes.descriptor_id")
		}
		if !attr.Die.IsValid() {
			vb.InvalidField("attributes.die", "must be a valid die size")
		}
	}
	for _, effect := range item.Effects {
		if effect.DescriptorID == "" {
			vb.RequiredField("effects.descriptor_id")
		}
		if effect.Rank <= 0 {
			vb.InvalidField("effects.rank", "must be positive")
		}
	}

	return vb.Build()
}

func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	getOutput, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}

	return &GetItemOutput{Item: getOutput.Item}, nil
}

func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	listOutput, err := o.itemRepo.List(ctx, itemrepo.ListInput{Slot: input.Slot})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return &ListItemsOutput{Items: listOutput.Items}, nil
}

func (o *orchestrator) CreateItem(ctx context.Context, input *CreateItemInput) (*CreateItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	item := *input.Item
	item.ID = o.idGen.Generate()

	createOutput, err := o.itemRepo.Create(ctx, itemrepo.CreateInput{Item: &item})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	slog.Info("Forge item created",
		"item_id", createOutput.Item.ID,
		"name", createOutput.Item.Name,
		"slot", createOutput.Item.Slot,
	)

	return &CreateItemOutput{Item: createOutput.Item}, nil
}

func (o *orchestrator) UpdateItem(ctx context.Context, input *UpdateItemInput) (*UpdateItemOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument("item is required")
	}
	if input.Item.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}
	if err := validateItem(input.Item); err != nil {
		return nil, err
	}

	updateOutput, err := o.itemRepo.Update(ctx, itemrepo.UpdateInput{Item: input.Item})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update item")
	}

	return &UpdateItemOutput{Item: updateOutput.Item}, nil
}

func (o *orchestrator) DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteItemOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	if _, err := o.itemRepo.Delete(ctx, itemrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete item")
	}

	slog.Info("Forge item deleted", "item_id", input.ID)

	return &DeleteItemOutput{}, nil
}

// baseContext builds the render context shared by every line on the card
func baseContext(item *forge.Item) engine.Context {
	return engine.Context{
		forge.TokenItemName:               engine.Text(item.Name),
		forge.TokenPPV:                    engine.Int(int(item.PPV)),
		forge.TokenArmorSkill:             engine.Int(int(item.ArmorSkill)),
		forge.TokenMeleePhysicalStrength:  engine.Int(int(item.MeleePhysicalStrength)),
		forge.TokenRangedPhysicalStrength: engine.Int(int(item.RangedPhysicalStrength)),
		forge.TokenMagicalStrength:        engine.Int(int(item.MagicalStrength)),
		forge.TokenChosenPhysicalStrength: engine.Int(int(item.ChosenPhysicalStrength())),
	}
}

// RenderPrintCard assembles the display card for one item: every selected
// attribute and effect descriptor rendered against the item's stats, plus
// the lore markdown as HTML.
func (o *orchestrator) RenderPrintCard(ctx context.Context, input *RenderPrintCardInput) (*RenderPrintCardOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	getOutput, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}
	item := getOutput.Item

	base := baseContext(item)

	// Attribute lines describe the item's dice. Weapons present them as
	// attacks; armor and shields present them as defences.
	var attributeLines []CardLine
	for _, attr := range item.Attributes {
		tmpl, err := o.descriptorRepo.Get(ctx, descriptorrepo.GetInput{ID: attr.DescriptorID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get attribute descriptor %s", attr.DescriptorID)
		}

		lineCtx := base.Clone()
		lineCtx[forge.TokenAttributeDie] = engine.Die(attr.Die.Faces())

		attributeLines = append(attributeLines, CardLine{
			Name: tmpl.Template.Name,
			Text: o.engine.Render(tmpl.Template.Template, lineCtx),
		})
	}

	var effectLines []CardLine
	for _, effect := range item.Effects {
		tmpl, err := o.descriptorRepo.Get(ctx, descriptorrepo.GetInput{ID: effect.DescriptorID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get effect descriptor %s", effect.DescriptorID)
		}

		lineCtx := base.Clone()
		lineCtx[forge.TokenRank] = engine.Int(int(effect.Rank))

		effectLines = append(effectLines, CardLine{
			Name: tmpl.Template.Name,
			Text: o.engine.Render(tmpl.Template.Template, lineCtx),
		})
	}

	var sections []CardSection
	if len(effectLines) > 0 {
		sections = append(sections, CardSection{Title: SectionModifiers, Lines: effectLines})
	}
	if len(attributeLines) > 0 {
		title := SectionDefence
		if item.IsWeapon() {
			title = SectionAttackActions
		}
		sections = append(sections, CardSection{Title: title, Lines: attributeLines})
	}

	loreHTML, err := o.renderLore(item.Lore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render lore")
	}

	return &RenderPrintCardOutput{
		Card: &PrintCard{
			ItemID:   item.ID,
			Name:     item.Name,
			Slot:     item.Slot,
			Sections: sections,
			LoreHTML: loreHTML,
		},
	}, nil
}

func (o *orchestrator) renderLore(lore string) (string, error) {
	if lore == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := o.markdown.Convert([]byte(lore), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
