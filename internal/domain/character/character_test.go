package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tidegate/charcore/internal/domain/attribute"
	"github.com/tidegate/charcore/internal/domain/character"
)

func TestNew(t *testing.T) {
	char := character.New(&character.Config{
		ID:        "char-1",
		Name:      "Testa",
		Authority: true,
		Defaults: attribute.Defaults{
			Health:  attribute.GroupDefaults{Current: 120, Maximum: 100, Regen: 1},
			Mana:    attribute.GroupDefaults{Current: 30, Maximum: 60, Regen: 2},
			Stamina: attribute.GroupDefaults{Current: 100, Maximum: 100, Regen: 5},
		},
	})

	assert.Equal(t, "char-1", char.ID)
	assert.True(t, char.Authority)
	assert.Equal(t, character.ProvisionUninitialized, char.Provision)
	assert.Zero(t, char.Grants.Size())

	// Defaults above maximum are clamped at construction
	assert.Equal(t, 100.0, char.Attributes.Group(attribute.GroupHealth).Current())
	assert.Equal(t, 30.0, char.Attributes.Group(attribute.GroupMana).Current())
}

func TestProvisionStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", character.ProvisionUninitialized.String())
	assert.Equal(t, "ready", character.ProvisionReady.String())
	assert.Equal(t, "context_only", character.ProvisionContextOnly.String())
}
