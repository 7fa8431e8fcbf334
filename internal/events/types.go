package events

import (
	"github.com/tidegate/charcore/internal/domain/attribute"
)

// EventType represents the type of simulation event
type EventType string

const (
	// EventTypeAttributePreChange fires with the proposed value before an
	// attribute commit; listeners may adjust the proposal
	EventTypeAttributePreChange EventType = "attribute.pre_change"

	// EventTypeAttributeChanged fires after an attribute commit
	EventTypeAttributeChanged EventType = "attribute.changed"

	// EventTypeAbilityGranted fires when a starting ability is granted
	EventTypeAbilityGranted EventType = "ability.granted"
)

// Event is the base interface for all simulation events
type Event interface {
	GetType() EventType
	GetCharacterID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type        EventType
	CharacterID string
	Cancelled   bool
}

func (e *BaseEvent) GetType() EventType     { return e.Type }
func (e *BaseEvent) GetCharacterID() string { return e.CharacterID }
func (e *BaseEvent) IsCancelled() bool      { return e.Cancelled }
func (e *BaseEvent) Cancel()                { e.Cancelled = true }

// AttributePreChangeEvent carries a proposed attribute value before commit.
// Listeners mutate Proposed to apply additional policy; the baseline clamp
// still runs on whatever value survives the hook chain.
type AttributePreChangeEvent struct {
	BaseEvent
	Attribute attribute.ID
	Current   float64
	Proposed  float64
}

// AttributeChangedEvent reports a committed attribute change. This is the
// notification the replication transport and UI observers consume.
type AttributeChangedEvent struct {
	BaseEvent
	Attribute attribute.ID
	OldValue  float64
	NewValue  float64
}

// AbilityGrantedEvent reports a starting ability grant on the authoritative
// instance.
type AbilityGrantedEvent struct {
	BaseEvent
	AbilityClass string
	InputID      string
	Handle       string
}
