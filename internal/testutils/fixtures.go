package testutils

import (
	"github.com/tidegate/charcore/internal/domain/ability"
	"github.com/tidegate/charcore/internal/domain/attribute"
	"github.com/tidegate/charcore/internal/domain/character"
	"github.com/tidegate/charcore/internal/uuid"
)

// DefaultAttributeDefaults returns attribute defaults used across tests
func DefaultAttributeDefaults() attribute.Defaults {
	return attribute.Defaults{
		Health:  attribute.GroupDefaults{Current: 80, Maximum: 100, Regen: 1},
		Mana:    attribute.GroupDefaults{Current: 50, Maximum: 50, Regen: 2},
		Stamina: attribute.GroupDefaults{Current: 100, Maximum: 100, Regen: 5},
	}
}

// DefaultStartingAbilities returns a starting list with one empty slot, the
// shape design-time content usually has
func DefaultStartingAbilities() []*ability.Class {
	return []*ability.Class{
		{Key: "fireball", Name: "Fireball", DefaultInput: ability.InputAbility1},
		nil,
		{Key: "blink", Name: "Blink", DefaultInput: ability.InputAbility2},
	}
}

// CreateTestCharacter builds an authoritative character with the default
// fixture data
func CreateTestCharacter(name string) *character.Character {
	gen := uuid.NewGoogleUUIDGenerator()
	return character.New(&character.Config{
		ID:                gen.New(),
		Name:              name,
		Authority:         true,
		Defaults:          DefaultAttributeDefaults(),
		StartingAbilities: DefaultStartingAbilities(),
	})
}
