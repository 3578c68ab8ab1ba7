// Package dice implements the playtest dice orchestrator: authors roll an
// item's or monster's dice from the editing UI and the results live in a
// short-lived session
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/forge-api/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/forge-api/internal/entities/forge"
	"github.com/KirkDiggler/forge-api/internal/errors"
	"github.com/KirkDiggler/forge-api/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/forge-api/internal/repositories/dice_session"
	itemrepo "github.com/KirkDiggler/forge-api/internal/repositories/item"
)

const (
	// ContextAttributePlaytest groups rolls made against an item's
	// attribute dice
	ContextAttributePlaytest = "attribute_playtest"

	// DefaultSessionTTL bounds how long playtest rolls stick around
	DefaultSessionTTL = 15 * time.Minute
)

// diceNotationRegex parses simple notation like "2d6", "1d12"
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)

// Service defines the interface for playtest dice operations
type Service interface {
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// RollItemAttributes rolls each of an item's attribute dice once and
	// stores the results under the attribute playtest context
	RollItemAttributes(ctx context.Context, input *RollItemAttributesInput) (*RollItemAttributesOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	ItemRepo        itemrepo.Repository
	IDGenerator     idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	itemRepo        itemrepo.Repository
	idGen           idgen.Generator
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		itemRepo:        cfg.ItemRepo,
		idGen:           cfg.IDGenerator,
	}, nil
}

// parseDiceNotation parses simple dice notation like "2d6" and returns count and size
func parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(notation))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	return count, size, nil
}

// rollDice uses rpg-toolkit to roll and returns the individual die values
// and their sum
func rollDice(count, size int) ([]int32, int32, error) {
	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to create dice roll")
	}

	total := roll.GetValue()
	description := roll.GetDescription()

	// The toolkit only exposes individual values through the description,
	// format "+2d6[3,4]=7"
	var individualDice []int32
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start >= 0 && end > start {
		for _, ds := range strings.Split(description[start+1:end], ",") {
			if d, err := strconv.Atoi(strings.TrimSpace(ds)); err == nil {
				individualDice = append(individualDice, int32(d))
			}
		}
	}

	return individualDice, int32(total), nil
}

// appendToSession adds rolls to the entity's session, creating it when absent
func (o *orchestrator) appendToSession(ctx context.Context, entityID, sessionContext string, rolls []dicesession.DiceRoll, ttl time.Duration) (*dicesession.DiceSession, error) {
	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: entityID,
		Context:  sessionContext,
	})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to check for existing session")
		}

		if ttl == 0 {
			ttl = DefaultSessionTTL
		}
		createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
			EntityID: entityID,
			Context:  sessionContext,
			Rolls:    rolls,
			TTL:      ttl,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create dice session")
		}
		return createOutput.Session, nil
	}

	session := getOutput.Session
	session.Rolls = append(session.Rolls, rolls...)
	if err := o.diceSessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update dice session")
	}
	return session, nil
}

// RollDice rolls the given notation and stores the result in the entity's session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, err := parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	individualDice, diceTotal, err := rollDice(count, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	roll := &dicesession.DiceRoll{
		RollID:      o.idGen.Generate(),
		Notation:    input.Notation,
		Dice:        individualDice,
		Total:       diceTotal + input.Modifier,
		Description: input.Description,
		DiceTotal:   diceTotal,
		Modifier:    input.Modifier,
	}

	session, err := o.appendToSession(ctx, input.EntityID, input.Context, []dicesession.DiceRoll{*roll}, input.TTL)
	if err != nil {
		return nil, err
	}

	slog.Info("Dice rolled",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", input.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: session,
	}, nil
}

// RollItemAttributes playtests an item: one roll per selected attribute die
func (o *orchestrator) RollItemAttributes(ctx context.Context, input *RollItemAttributesInput) (*RollItemAttributesOutput, error) {
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	getOutput, err := o.itemRepo.Get(ctx, itemrepo.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get item")
	}
	item := getOutput.Item

	if len(item.Attributes) == 0 {
		return nil, errors.InvalidArgumentf("item %s has no attribute dice to roll", item.ID)
	}

	// Sessions are keyed by the owning entity
	entity := &forge.ItemEntity{Item: item}

	var rolls []*dicesession.DiceRoll
	for i, attr := range item.Attributes {
		faces := attr.Die.Faces()
		individualDice, total, err := rollDice(1, faces)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll attribute %d", i+1)
		}

		rolls = append(rolls, &dicesession.DiceRoll{
			RollID:      o.idGen.Generate(),
			Notation:    fmt.Sprintf("1d%d", faces),
			Dice:        individualDice,
			Total:       total,
			Description: fmt.Sprintf("Attribute %d (%s)", i+1, attr.DescriptorID),
			DiceTotal:   total,
		})
	}

	rollValues := make([]dicesession.DiceRoll, len(rolls))
	for i, roll := range rolls {
		rollValues[i] = *roll
	}

	session, err := o.appendToSession(ctx, entity.GetID(), ContextAttributePlaytest, rollValues, DefaultSessionTTL)
	if err != nil {
		return nil, err
	}

	slog.Info("Item attributes playtested",
		"item_id", entity.GetID(),
		"rolls_count", len(rolls),
	)

	return &RollItemAttributesOutput{
		Rolls:   rolls,
		Session: session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}
