package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/forge-api/internal/config"
	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	descriptorrepo "github.com/KirkDiggler/forge-api/internal/repositories/descriptor"
	itemrepo "github.com/KirkDiggler/forge-api/internal/repositories/item"
	monsterrepo "github.com/KirkDiggler/forge-api/internal/repositories/monster"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load content from a YAML file into Redis",
	Long:  `Load descriptor templates, items, and monsters from a YAML file. Existing entries with the same ID are replaced.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "seed.yaml", "path to the seed file")
}

// seedData is the YAML schema for the seed file. Die sizes accept either
// case ("d8" or "D8").
type seedData struct {
	Descriptors []seedDescriptor `yaml:"descriptors"`
	Items       []seedItem       `yaml:"items"`
	Monsters    []seedMonster    `yaml:"monsters"`
}

type seedDescriptor struct {
	ID       string `yaml:"id"`
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

type seedItem struct {
	ID                     string `yaml:"id"`
	Name                   string `yaml:"name"`
	Slot                   string `yaml:"slot"`
	PPV                    int32  `yaml:"ppv"`
	ArmorSkill             int32  `yaml:"armor_skill"`
	MeleePhysicalStrength  int32  `yaml:"melee_physical_strength"`
	RangedPhysicalStrength int32  `yaml:"ranged_physical_strength"`
	MagicalStrength        int32  `yaml:"magical_strength"`
	Attributes             []struct {
		DescriptorID string `yaml:"descriptor_id"`
		Die          string `yaml:"die"`
	} `yaml:"attributes"`
	Effects []struct {
		DescriptorID string `yaml:"descriptor_id"`
		Rank         int32  `yaml:"rank"`
	} `yaml:"effects"`
	Lore string `yaml:"lore"`
}

type seedMonster struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Tier       int32  `yaml:"tier"`
	Might      string `yaml:"might"`
	Agility    string `yaml:"agility"`
	Will       string `yaml:"will"`
	PPV        int32  `yaml:"ppv"`
	ArmorSkill int32  `yaml:"armor_skill"`
	Traits     []struct {
		DescriptorID string             `yaml:"descriptor_id"`
		Values       map[string]float64 `yaml:"values"`
	} `yaml:"traits"`
	AttackActions []struct {
		DescriptorID string `yaml:"descriptor_id"`
		Name         string `yaml:"name"`
		Strength     int32  `yaml:"strength"`
		Die          string `yaml:"die"`
	} `yaml:"attack_actions"`
	Lore string `yaml:"lore"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	raw, err := os.ReadFile(seedFile) // #nosec G304 // operator-supplied path
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var data seedData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	repos, err := buildRepositories(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()

	for _, d := range data.Descriptors {
		tmpl := &forge.DescriptorTemplate{ID: d.ID, Kind: d.Kind, Name: d.Name, Template: d.Template}
		if _, err := repos.descriptors.Create(ctx, descriptorrepo.CreateInput{Template: tmpl}); err != nil {
			if !errors.IsAlreadyExists(err) {
				return fmt.Errorf("descriptor %s: %w", d.ID, err)
			}
			if _, err := repos.descriptors.Update(ctx, descriptorrepo.UpdateInput{Template: tmpl}); err != nil {
				return fmt.Errorf("descriptor %s: %w", d.ID, err)
			}
		}
		slog.Info("Seeded descriptor", "id", d.ID, "kind", d.Kind)
	}

	for _, i := range data.Items {
		entity, err := seedItemToEntity(i)
		if err != nil {
			return fmt.Errorf("item %s: %w", i.ID, err)
		}
		if _, err := repos.items.Create(ctx, itemrepo.CreateInput{Item: entity}); err != nil {
			if !errors.IsAlreadyExists(err) {
				return fmt.Errorf("item %s: %w", i.ID, err)
			}
			if _, err := repos.items.Update(ctx, itemrepo.UpdateInput{Item: entity}); err != nil {
				return fmt.Errorf("item %s: %w", i.ID, err)
			}
		}
		slog.Info("Seeded item", "id", i.ID, "slot", i.Slot)
	}

	for _, m := range data.Monsters {
		entity, err := seedMonsterToEntity(m)
		if err != nil {
			return fmt.Errorf("monster %s: %w", m.ID, err)
		}
		if _, err := repos.monsters.Create(ctx, monsterrepo.CreateInput{Monster: entity}); err != nil {
			if !errors.IsAlreadyExists(err) {
				return fmt.Errorf("monster %s: %w", m.ID, err)
			}
			if _, err := repos.monsters.Update(ctx, monsterrepo.UpdateInput{Monster: entity}); err != nil {
				return fmt.Errorf("monster %s: %w", m.ID, err)
			}
		}
		slog.Info("Seeded monster", "id", m.ID, "tier", m.Tier)
	}

	slog.Info("Seed complete",
		"descriptors", len(data.Descriptors),
		"items", len(data.Items),
		"monsters", len(data.Monsters))
	return nil
}

func seedItemToEntity(in seedItem) (*forge.Item, error) {
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
			return nil, err
		}
		out.Attributes = append(out.Attributes, forge.AttributeSelection{DescriptorID: attr.DescriptorID, Die: die})
	}
	for _, effect := range in.Effects {
		out.Effects = append(out.Effects, forge.EffectSelection{DescriptorID: effect.DescriptorID, Rank: effect.Rank})
	}
	return out, nil
}

func seedMonsterToEntity(in seedMonster) (*forge.Monster, error) {
	might, err := forge.ParseDieSize(in.Might)
	if err != nil {
		return nil, err
	}
	agility, err := forge.ParseDieSize(in.Agility)
	if err != nil {
		return nil, err
	}
	will, err := forge.ParseDieSize(in.Will)
	if err != nil {
		return nil, err
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
		out.Traits = append(out.Traits, forge.TraitSelection{DescriptorID: trait.DescriptorID, Values: trait.Values})
	}
	for _, attack := range in.AttackActions {
		die, err := forge.ParseDieSize(attack.Die)
		if err != nil {
			return nil, err
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
