package effects

import (
	"log"

	"github.com/tidegate/charcore/internal/domain/attribute"
	"github.com/tidegate/charcore/internal/errors"
	"github.com/tidegate/charcore/internal/events"
)

// Processor is the single authorized mutation path for a character's
// attribute state. Every applied gameplay effect runs to completion —
// resolve, pre-change hook, clamp or rescale, commit, notify — before the
// next one starts, so observers only ever see committed state and the
// rescale always reads a stable old maximum.
type Processor struct {
	characterID string
	attributes  *attribute.Set
	eventBus    *events.Bus
}

// ProcessorConfig holds configuration for an effect processor
type ProcessorConfig struct {
	CharacterID string
	Attributes  *attribute.Set
	EventBus    *events.Bus
}

// NewProcessor creates a processor bound to one character's attribute set
func NewProcessor(cfg *ProcessorConfig) *Processor {
	if cfg.Attributes == nil {
		panic("attribute set is required")
	}

	return &Processor{
		characterID: cfg.CharacterID,
		attributes:  cfg.Attributes,
		eventBus:    cfg.EventBus,
	}
}

// Apply processes one gameplay effect. An unresolvable attribute identifier
// is rejected with no mutation and no notification; the error is a
// configuration error for the caller to log, never fatal to the tick.
// Returned changes are already committed and notified, in emit order.
func (p *Processor) Apply(effect Effect) ([]Change, error) {
	group, field, err := attribute.Resolve(effect.Attribute)
	if err != nil {
		return nil, errors.Wrapf(err, "rejecting effect %s %v", effect.Operation, effect.Value)
	}

	old, err := p.attributes.Value(effect.Attribute)
	if err != nil {
		return nil, err
	}

	proposed := effect.Value
	if effect.Operation == OperationDelta {
		proposed = old + effect.Value
	}

	var changes []Change

	switch field {
	case attribute.FieldMaximum:
		proposed = p.preChange(effect.Attribute, old, proposed)
		change := p.attributes.CommitMaximum(group, proposed)
		if change.NewMaximum != change.OldMaximum {
			changes = append(changes, Change{
				Attribute: attribute.MaximumOf(group),
				OldValue:  change.OldMaximum,
				NewValue:  change.NewMaximum,
			})
		}
		if change.NewCurrent != change.OldCurrent {
			changes = append(changes, Change{
				Attribute: attribute.CurrentOf(group),
				OldValue:  change.OldCurrent,
				NewValue:  change.NewCurrent,
			})
		}

	case attribute.FieldCurrent:
		proposed = p.preChange(effect.Attribute, old, proposed)
		oldCurrent, committed := p.attributes.CommitCurrent(group, proposed)
		if committed != oldCurrent {
			changes = append(changes, Change{
				Attribute: effect.Attribute,
				OldValue:  oldCurrent,
				NewValue:  committed,
			})
		}

	case attribute.FieldRegen:
		// Regen rates commit directly, no clamp and no pre-change hook
		oldRegen := p.attributes.CommitRegen(group, proposed)
		if proposed != oldRegen {
			changes = append(changes, Change{
				Attribute: effect.Attribute,
				OldValue:  oldRegen,
				NewValue:  proposed,
			})
		}
	}

	p.notify(changes)
	return changes, nil
}

// preChange runs the pre-change observation point and returns the proposed
// value that survived the hook chain
func (p *Processor) preChange(id attribute.ID, current, proposed float64) float64 {
	if p.eventBus == nil {
		return proposed
	}

	event := &events.AttributePreChangeEvent{
		BaseEvent: events.BaseEvent{
			Type:        events.EventTypeAttributePreChange,
			CharacterID: p.characterID,
		},
		Attribute: id,
		Current:   current,
		Proposed:  proposed,
	}
	if err := p.eventBus.Emit(event); err != nil {
		log.Printf("Processor: pre-change hook failed for %s on %s: %v", id, p.characterID, err)
	}
	return event.Proposed
}

// notify emits one change notification per committed mutation, after commit
func (p *Processor) notify(changes []Change) {
	if p.eventBus == nil {
		return
	}

	for _, change := range changes {
		event := &events.AttributeChangedEvent{
			BaseEvent: events.BaseEvent{
				Type:        events.EventTypeAttributeChanged,
				CharacterID: p.characterID,
			},
			Attribute: change.Attribute,
			OldValue:  change.OldValue,
			NewValue:  change.NewValue,
		}
		if err := p.eventBus.Emit(event); err != nil {
			log.Printf("Processor: change notification failed for %s on %s: %v", change.Attribute, p.characterID, err)
		}
	}
}
