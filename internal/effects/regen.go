package effects

import (
	"context"
	"time"

	"github.com/tidegate/charcore/internal/domain/attribute"
)

// RegenDriver is the periodic-tick collaborator that turns each group's
// regen rate into delta effects on the paired current value. Rates may be
// negative, representing decay; the normal processing path keeps the result
// clamped either way.
type RegenDriver struct {
	attributes *attribute.Set
	sink       Submitter
}

// RegenDriverConfig holds configuration for a regen driver
type RegenDriverConfig struct {
	Attributes *attribute.Set
	Sink       Submitter
}

// NewRegenDriver creates a regen driver reading rates from the given set
// and submitting deltas to the sink
func NewRegenDriver(cfg *RegenDriverConfig) *RegenDriver {
	if cfg.Attributes == nil {
		panic("attribute set is required")
	}
	if cfg.Sink == nil {
		panic("effect sink is required")
	}

	return &RegenDriver{
		attributes: cfg.Attributes,
		sink:       cfg.Sink,
	}
}

// Tick submits one regen delta per group with a non-zero rate, scaled by
// elapsed time
func (d *RegenDriver) Tick(ctx context.Context, elapsed time.Duration) error {
	for _, group := range attribute.GroupIDs {
		rate := d.attributes.Group(group).Regen()
		if rate == 0 {
			continue
		}

		effect := Effect{
			Attribute: attribute.CurrentOf(group),
			Operation: OperationDelta,
			Value:     rate * elapsed.Seconds(),
		}
		if err := d.sink.Submit(ctx, effect); err != nil {
			return err
		}
	}
	return nil
}
