package grant

import (
	"context"
	"log"

	"github.com/tidegate/charcore/internal/domain/ability"
	"github.com/tidegate/charcore/internal/domain/character"
	coreerr "github.com/tidegate/charcore/internal/errors"
	"github.com/tidegate/charcore/internal/events"
)

// Service provisions a character's starting abilities exactly once, on the
// authoritative instance only
type Service interface {
	// ProvisionStartingAbilities runs the one-shot activation step: grant
	// the starting list under authority, or bind context only without it.
	// Calling it again on a provisioned character refreshes context and
	// grants nothing.
	ProvisionStartingAbilities(ctx context.Context, char *character.Character) error

	// RefreshContext re-binds the ability actor context on (re)possession.
	// Idempotent, never grants.
	RefreshContext(ctx context.Context, char *character.Character) error
}

type service struct {
	abilitySystem AbilitySystem
	eventBus      *events.Bus
}

// ServiceConfig holds configuration for the grant service
type ServiceConfig struct {
	AbilitySystem AbilitySystem
	EventBus      *events.Bus
}

// NewService creates a new grant service
func NewService(cfg *ServiceConfig) Service {
	if cfg.AbilitySystem == nil {
		panic("ability system is required")
	}

	return &service{
		abilitySystem: cfg.AbilitySystem,
		eventBus:      cfg.EventBus,
	}
}

// ProvisionStartingAbilities implements the activation step
func (s *service) ProvisionStartingAbilities(ctx context.Context, char *character.Character) error {
	if char == nil {
		return coreerr.InvalidArgument("character cannot be nil")
	}

	// Re-running activation is a possession change in disguise; grants
	// stay untouched
	if char.Provision != character.ProvisionUninitialized {
		log.Printf("GrantService: %s already provisioned (%s), refreshing context only", char.ID, char.Provision)
		return s.RefreshContext(ctx, char)
	}

	if !char.Authority {
		char.Provision = character.ProvisionContextOnly
		return s.RefreshContext(ctx, char)
	}

	for _, class := range char.StartingAbilities {
		// Design-time content may leave slots empty on purpose
		if !class.IsValid() {
			continue
		}

		spec := &AbilitySpec{
			Class:             class,
			InputID:           class.DefaultInput,
			SourceCharacterID: char.ID,
		}
		handleID, err := s.abilitySystem.GiveAbility(ctx, spec)
		if err != nil {
			return coreerr.Wrapf(err, "failed to grant ability %q to %s", class.Key, char.ID)
		}

		char.Grants.Add(ability.Handle{
			ID:       handleID,
			ClassKey: class.Key,
			InputID:  class.DefaultInput,
		})
		s.emitGranted(char, class, handleID)
	}

	// Context binds regardless of list length, including empty
	if err := s.abilitySystem.InitAbilityActorInfo(ctx, ActorInfo{
		OwnerID:  char.ID,
		AvatarID: char.ID,
	}); err != nil {
		return coreerr.Wrapf(err, "failed to init ability context for %s", char.ID)
	}

	char.Provision = character.ProvisionReady
	return nil
}

// RefreshContext implements the (re)possession step
func (s *service) RefreshContext(ctx context.Context, char *character.Character) error {
	if char == nil {
		return coreerr.InvalidArgument("character cannot be nil")
	}

	if err := s.abilitySystem.RefreshAbilityActorInfo(ctx, char.ID); err != nil {
		return coreerr.Wrapf(err, "failed to refresh ability context for %s", char.ID)
	}
	return nil
}

func (s *service) emitGranted(char *character.Character, class *ability.Class, handleID string) {
	if s.eventBus == nil {
		return
	}

	event := &events.AbilityGrantedEvent{
		BaseEvent: events.BaseEvent{
			Type:        events.EventTypeAbilityGranted,
			CharacterID: char.ID,
		},
		AbilityClass: class.Key,
		InputID:      class.DefaultInput.String(),
		Handle:       handleID,
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("GrantService: grant notification failed for %s: %v", char.ID, err)
	}
}
