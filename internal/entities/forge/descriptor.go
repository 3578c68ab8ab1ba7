package forge

// Descriptor template kinds
const (
	DescriptorAttribute    = "DESCRIPTOR_ATTRIBUTE"
	DescriptorEffect       = "DESCRIPTOR_EFFECT"
	DescriptorTrait        = "DESCRIPTOR_TRAIT"
	DescriptorAttackAction = "DESCRIPTOR_ATTACK_ACTION"
	DescriptorLimitBreak   = "DESCRIPTOR_LIMIT_BREAK"
)

// DescriptorKinds lists the valid descriptor template kinds
var DescriptorKinds = []string{
	DescriptorAttribute,
	DescriptorEffect,
	DescriptorTrait,
	DescriptorAttackAction,
	DescriptorLimitBreak,
}

// Token names templates may reference. The render context keys derive
// from these; authoring validation checks extracted tokens against the
// per-kind allowed set before a template can be saved.
const (
	TokenItemName               = "ItemName"
	TokenPPV                    = "PPV"
	TokenArmorSkill             = "ArmorSkill"
	TokenMeleePhysicalStrength  = "MeleePhysicalStrength"
	TokenRangedPhysicalStrength = "RangedPhysicalStrength"
	TokenMagicalStrength        = "MagicalStrength"
	TokenChosenPhysicalStrength = "ChosenPhysicalStrength"
	TokenAttributeDie           = "AttributeDie"
	TokenRank                   = "Rank"
	TokenMonsterName            = "MonsterName"
	TokenTier                   = "Tier"
	TokenMight                  = "Might"
	TokenAgility                = "Agility"
	TokenWill                   = "Will"
	TokenAttackName             = "AttackName"
	TokenStrength               = "Strength"
	TokenAttackDie              = "AttackDie"
	TokenAmount                 = "Amount"
	TokenCount                  = "Count"
)

// itemStatTokens are available to every item-facing template kind
var itemStatTokens = []string{
	TokenItemName,
	TokenPPV,
	TokenArmorSkill,
	TokenMeleePhysicalStrength,
	TokenRangedPhysicalStrength,
	TokenMagicalStrength,
	TokenChosenPhysicalStrength,
}

// monsterStatTokens are available to every monster-facing template kind
var monsterStatTokens = []string{
	TokenMonsterName,
	TokenTier,
	TokenMight,
	TokenAgility,
	TokenWill,
	TokenPPV,
	TokenArmorSkill,
}

// allowedTokens maps each descriptor kind to its whitelist
var allowedTokens = map[string][]string{
	DescriptorAttribute:    append([]string{TokenAttributeDie}, itemStatTokens...),
	DescriptorEffect:       append([]string{TokenRank}, itemStatTokens...),
	DescriptorLimitBreak:   itemStatTokens,
	DescriptorTrait:        append([]string{TokenAmount, TokenCount}, monsterStatTokens...),
	DescriptorAttackAction: append([]string{TokenAttackName, TokenStrength, TokenAttackDie}, monsterStatTokens...),
}

// AllowedTokens returns the token names templates of the given kind may
// reference. Returns nil for unknown kinds.
func AllowedTokens(kind string) []string {
	return allowedTokens[kind]
}

// IsDescriptorKind reports whether kind is a known descriptor kind
func IsDescriptorKind(kind string) bool {
	_, ok := allowedTokens[kind]
	return ok
}

// DescriptorTemplate is an authored template row: the text the engine
// renders for an attribute, effect, trait, attack action, or limit break.
type DescriptorTemplate struct {
	ID       string
	Kind     string
	Name     string
	Template string

	CreatedAt int64
	UpdatedAt int64
}
