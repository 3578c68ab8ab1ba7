// Package monster implements the summoning circle orchestrator: CRUD plus
// stat block rendering
package monster

//go:generate mockgen -destination=mock/mock_service.go -package=monstermock github.com/KirkDiggler/forge-api/internal/orchestrators/monster Service

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/KirkDiggler/forge-api/internal/engine"
	forge "github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	descriptorrepo "github.com/KirkDiggler/forge-api/internal/repositories/descriptor"
	monsterrepo "github.com/KirkDiggler/forge-api/internal/repositories/monster"
)

// Service defines the interface for monster operations
type Service interface {
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)

	// RenderStatBlock renders a monster's trait and attack action
	// descriptors into display lines
	RenderStatBlock(ctx context.Context, input *RenderStatBlockInput) (*RenderStatBlockOutput, error)
}

// Config holds the dependencies for the monster orchestrator
type Config struct {
	MonsterRepo    monsterrepo.Repository
	DescriptorRepo descriptorrepo.Repository
	Engine         engine.Engine
	IDGenerator    idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
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
	monsterRepo    monsterrepo.Repository
	descriptorRepo descriptorrepo.Repository
	engine         engine.Engine
	idGen          idgen.Generator
	markdown       goldmark.Markdown
}

// NewOrchestrator creates a new monster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		monsterRepo:    cfg.MonsterRepo,
		descriptorRepo: cfg.DescriptorRepo,
		engine:         cfg.Engine,
		idGen:          cfg.IDGenerator,
		markdown:       goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}, nil
}

// validateMonster checks the authored fields common to create and update
func validateMonster(monster *forge.Monster) error {
	vb := errors.NewValidationBuilder()

	if monster.Name == "" {
		vb.RequiredField("name")
	}
	if monster.Tier <= 0 {
		vb.InvalidField("tier", "must be positive")
	}
	if !monster.Might.IsValid() {
		vb.InvalidField("might", "must be a valid die size")
	}
	if !monster.Agility.IsValid() {
		vb.InvalidField("agility", "must be a valid die size")
	}
	if !monster.Will.IsValid() {
		vb.InvalidField("will", "must be a valid die size")
	}

	for _, trait := range monster.Traits {
		if trait.DescriptorID == "" {
			vb.RequiredField("traits.descriptor_id")
		}
	}
	for _, attack := range monster.AttackActions {
		if attack.DescriptorID == "" {
			vb.RequiredField("attack_actions.descriptor_id")
		}
		if attack.Name == "" {
			vb.RequiredField("attack_actions.name")
		}
		if !attack.Die.IsValid() {
			vb.InvalidField("attack_actions.die", "must be a valid die size")
		}
	}

	return vb.Build()
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get monster")
	}

	return &GetMonsterOutput{Monster: getOutput.Monster}, nil
}

func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	listOutput, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{Tier: input.Tier})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}

	return &ListMonstersOutput{Monsters: listOutput.Monsters}, nil
}

func (o *orchestrator) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if err := validateMonster(input.Monster); err != nil {
		return nil, err
	}

	monster := *input.Monster
	monster.ID = o.idGen.Generate()

	createOutput, err := o.monsterRepo.Create(ctx, monsterrepo.CreateInput{Monster: &monster})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create monster")
	}

	slog.Info("Monster created",
		"monster_id", createOutput.Monster.ID,
		"name", createOutput.Monster.Name,
		"tier", createOutput.Monster.Tier,
	)

	return &CreateMonsterOutput{Monster: createOutput.Monster}, nil
}

func (o *orchestrator) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument("monster is required")
	}
	if input.Monster.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}
	if err := validateMonster(input.Monster); err != nil {
		return nil, err
	}

	updateOutput, err := o.monsterRepo.Update(ctx, monsterrepo.UpdateInput{Monster: input.Monster})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update monster")
	}

	return &UpdateMonsterOutput{Monster: updateOutput.Monster}, nil
}

func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	if _, err := o.monsterRepo.Delete(ctx, monsterrepo.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete monster")
	}

	slog.Info("Monster deleted", "monster_id", input.ID)

	return &DeleteMonsterOutput{}, nil
}

// baseContext builds the render context shared by every line on the block
func baseContext(monster *forge.Monster) engine.Context {
	return engine.Context{
		forge.TokenMonsterName: engine.Text(monster.Name),
		forge.TokenTier:        engine.Int(int(monster.Tier)),
		forge.TokenMight:       engine.Die(monster.Might.Faces()),
		forge.TokenAgility:     engine.Die(monster.Agility.Faces()),
		forge.TokenWill:        engine.Die(monster.Will.Faces()),
		forge.TokenPPV:         engine.Int(int(monster.PPV)),
		forge.TokenArmorSkill:  engine.Int(int(monster.ArmorSkill)),
	}
}

// RenderStatBlock assembles the display block for one monster: every trait
// rendered against the monster's stats plus its per-trait values, every
// attack action rendered with its name, strength, and die.
func (o *orchestrator) RenderStatBlock(ctx context.Context, input *RenderStatBlockInput) (*RenderStatBlockOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("monster ID is required")
	}

	getOutput, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get monster")
	}
	monster := getOutput.Monster

	base := baseContext(monster)

	var traitLines []BlockLine
	for _, trait := range monster.Traits {
		tmpl, err := o.descriptorRepo.Get(ctx, descriptorrepo.GetInput{ID: trait.DescriptorID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get trait descriptor %s", trait.DescriptorID)
		}

		lineCtx := base.Clone()
		for name, value := range trait.Values {
			lineCtx[name] = engine.Number(value)
		}

		traitLines = append(traitLines, BlockLine{
			Name: tmpl.Template.Name,
			Text: o.engine.Render(tmpl.Template.Template, lineCtx),
		})
	}

	var attackLines []BlockLine
	for _, attack := range monster.AttackActions {
		tmpl, err := o.descriptorRepo.Get(ctx, descriptorrepo.GetInput{ID: attack.DescriptorID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get attack descriptor %s", attack.DescriptorID)
		}

		lineCtx := base.Clone()
		lineCtx[forge.TokenAttackName] = engine.Text(attack.Name)
		lineCtx[forge.TokenStrength] = engine.Int(int(attack.Strength))
		lineCtx[forge.TokenAttackDie] = engine.Die(attack.Die.Faces())

		attackLines = append(attackLines, BlockLine{
			Name: attack.Name,
			Text: o.engine.Render(tmpl.Template.Template, lineCtx),
		})
	}

	loreHTML, err := o.renderLore(monster.Lore)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render lore")
	}

	return &RenderStatBlockOutput{
		Block: &StatBlock{
			MonsterID:     monster.ID,
			Name:          monster.Name,
			Tier:          monster.Tier,
			Might:         monster.Might.Display(),
			Agility:       monster.Agility.Display(),
			Will:          monster.Will.Display(),
			PPV:           monster.PPV,
			ArmorSkill:    monster.ArmorSkill,
			Traits:        traitLines,
			AttackActions: attackLines,
			LoreHTML:      loreHTML,
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
