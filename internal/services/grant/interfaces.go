package grant

//go:generate mockgen -destination=mock/mock_ability_system.go -package=mockgrant -source=interfaces.go

import (
	"context"

	"github.com/tidegate/charcore/internal/domain/ability"
)

// AbilitySpec is one grant submission: the ability class, the input slot it
// activates from, and the character the grant is sourced to
type AbilitySpec struct {
	Class             *ability.Class
	InputID           ability.InputID
	SourceCharacterID string
}

// ActorInfo is the ability-actor-context binding; for a character granting
// its own abilities, owner and avatar are both the character itself
type ActorInfo struct {
	OwnerID  string
	AvatarID string
}

// AbilitySystem is the external ability-system collaborator. It registers
// grants, binds actor context, and later routes activation; ability
// execution lives entirely on its side.
type AbilitySystem interface {
	// GiveAbility submits a grant and returns the handle id it was
	// registered under
	GiveAbility(ctx context.Context, spec *AbilitySpec) (string, error)

	// InitAbilityActorInfo binds the ability actor context for a character
	InitAbilityActorInfo(ctx context.Context, info ActorInfo) error

	// RefreshAbilityActorInfo re-binds the context after (re)possession
	RefreshAbilityActorInfo(ctx context.Context, characterID string) error
}
