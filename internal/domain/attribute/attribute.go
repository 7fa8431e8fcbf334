package attribute

import (
	"github.com/tidegate/charcore/internal/errors"
)

// ID identifies a single numeric attribute on a character
type ID string

const (
	Health       ID = "Health"
	MaxHealth    ID = "MaxHealth"
	HealthRegen  ID = "HealthRegen"
	Mana         ID = "Mana"
	MaxMana      ID = "MaxMana"
	ManaRegen    ID = "ManaRegen"
	Stamina      ID = "Stamina"
	MaxStamina   ID = "MaxStamina"
	StaminaRegen ID = "StaminaRegen"
)

// IDs lists every attribute the core tracks, in replication order
var IDs = []ID{
	Health, MaxHealth, HealthRegen,
	Mana, MaxMana, ManaRegen,
	Stamina, MaxStamina, StaminaRegen,
}

// GroupID identifies one clamped resource group
type GroupID string

const (
	GroupHealth  GroupID = "health"
	GroupMana    GroupID = "mana"
	GroupStamina GroupID = "stamina"
)

// GroupIDs lists the resource groups a character owns
var GroupIDs = []GroupID{GroupHealth, GroupMana, GroupStamina}

// Field identifies which slot of a group an attribute addresses
type Field int

const (
	FieldCurrent Field = iota
	FieldMaximum
	FieldRegen
)

// String returns the field name for logging
func (f Field) String() string {
	switch f {
	case FieldCurrent:
		return "current"
	case FieldMaximum:
		return "maximum"
	case FieldRegen:
		return "regen"
	default:
		return "unknown"
	}
}

type binding struct {
	group GroupID
	field Field
}

var bindings = map[ID]binding{
	Health:       {GroupHealth, FieldCurrent},
	MaxHealth:    {GroupHealth, FieldMaximum},
	HealthRegen:  {GroupHealth, FieldRegen},
	Mana:         {GroupMana, FieldCurrent},
	MaxMana:      {GroupMana, FieldMaximum},
	ManaRegen:    {GroupMana, FieldRegen},
	Stamina:      {GroupStamina, FieldCurrent},
	MaxStamina:   {GroupStamina, FieldMaximum},
	StaminaRegen: {GroupStamina, FieldRegen},
}

// Resolve maps an attribute identifier to its resource group and field.
// Unknown identifiers are a configuration error, never fatal.
func Resolve(id ID) (GroupID, Field, error) {
	b, ok := bindings[id]
	if !ok {
		return "", 0, errors.InvalidArgumentf("unresolved attribute identifier %q", id)
	}
	return b.group, b.field, nil
}

// CurrentOf returns the current-valued attribute id of a group
func CurrentOf(group GroupID) ID {
	switch group {
	case GroupHealth:
		return Health
	case GroupMana:
		return Mana
	default:
		return Stamina
	}
}

// MaximumOf returns the maximum-valued attribute id of a group
func MaximumOf(group GroupID) ID {
	switch group {
	case GroupHealth:
		return MaxHealth
	case GroupMana:
		return MaxMana
	default:
		return MaxStamina
	}
}

// RegenOf returns the regen-rate attribute id of a group
func RegenOf(group GroupID) ID {
	switch group {
	case GroupHealth:
		return HealthRegen
	case GroupMana:
		return ManaRegen
	default:
		return StaminaRegen
	}
}
