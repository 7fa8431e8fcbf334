package character

import (
	"github.com/tidegate/charcore/internal/domain/ability"
	"github.com/tidegate/charcore/internal/domain/attribute"
)

// ProvisionState tracks the one-shot ability provisioning machine for a
// character. Granting happens at most once per lifetime; repossession only
// refreshes context and never re-enters the granting step.
type ProvisionState int

const (
	// ProvisionUninitialized means activation has not run yet
	ProvisionUninitialized ProvisionState = iota

	// ProvisionReady means the authoritative grant step completed
	ProvisionReady

	// ProvisionContextOnly means this instance is non-authoritative and only
	// binds ability context
	ProvisionContextOnly
)

// String returns the state name for logging
func (s ProvisionState) String() string {
	switch s {
	case ProvisionReady:
		return "ready"
	case ProvisionContextOnly:
		return "context_only"
	default:
		return "uninitialized"
	}
}

// Character is one simulated character instance. Authority is resolved
// externally from the network role and injected at construction; it gates
// ability provisioning but never attribute math, which must compute
// identically on every instance that receives an effect.
type Character struct {
	ID   string
	Name string

	// Authority reports whether this simulation instance is authoritative
	// for the character
	Authority bool

	// Attributes is exclusively owned by this character and mutated only
	// through the effect processor
	Attributes *attribute.Set

	// StartingAbilities is the ordered design-time grant list; entries may
	// be intentionally empty
	StartingAbilities []*ability.Class

	// Grants records every submitted ability grant
	Grants *ability.GrantRecord

	// Provision is the one-shot provisioning state
	Provision ProvisionState
}

// Config holds everything needed to construct a character instance
type Config struct {
	ID                string
	Name              string
	Authority         bool
	Defaults          attribute.Defaults
	StartingAbilities []*ability.Class
}

// New constructs a character with its attribute set seeded from design-time
// defaults and an empty grant record
func New(cfg *Config) *Character {
	return &Character{
		ID:                cfg.ID,
		Name:              cfg.Name,
		Authority:         cfg.Authority,
		Attributes:        attribute.NewSet(cfg.Defaults),
		StartingAbilities: cfg.StartingAbilities,
		Grants:            ability.NewGrantRecord(),
		Provision:         ProvisionUninitialized,
	}
}
