package input

import (
	"time"

	"github.com/tidegate/charcore/internal/domain/ability"
)

// Action and axis names as bound in the host's input settings
const (
	ActionJump    = "Jump"
	ActionConfirm = "Confirm"
	ActionCancel  = "Cancel"

	AxisMoveForward = "MoveForward"
	AxisMoveRight   = "MoveRight"

	// Turn and LookUp take absolute deltas (mouse); the Rate variants take
	// a rate of change (analog stick) scaled by the configured rate and
	// elapsed frame time
	AxisTurn       = "Turn"
	AxisTurnRate   = "TurnRate"
	AxisLookUp     = "LookUp"
	AxisLookUpRate = "LookUpRate"
)

// Default turn and look rates, in degrees per second
const (
	DefaultBaseTurnRate   = 45.0
	DefaultBaseLookUpRate = 45.0
)

// Locomotion receives movement and rotation input derived by the router
type Locomotion interface {
	AddMovementInput(direction Vector, scale float64)
	AddYawInput(delta float64)
	AddPitchInput(delta float64)
	Jump()
	StopJumping()
}

// AbilityActivator routes activation presses and releases by input slot
type AbilityActivator interface {
	AbilityInputPressed(id ability.InputID)
	AbilityInputReleased(id ability.InputID)
}

// Router maps raw input actions onto locomotion calls and ability
// activation lookups. It holds no per-frame state; unbound actions are
// ignored.
type Router struct {
	locomotion      Locomotion
	abilities       AbilityActivator
	controlYaw      func() float64
	baseTurnRate    float64
	baseLookUpRate  float64
	abilityBindings map[string]ability.InputID
}

// Config holds configuration for an input router
type Config struct {
	Locomotion Locomotion
	Abilities  AbilityActivator

	// ControlYaw supplies the controller's current yaw in degrees, used to
	// project movement axes into world-space directions
	ControlYaw func() float64

	// BaseTurnRate and BaseLookUpRate scale the rate axis families, in
	// degrees per second; zero selects the defaults
	BaseTurnRate   float64
	BaseLookUpRate float64

	// AbilityBindings maps extra action names onto activation slots, on
	// top of the built-in Confirm and Cancel bindings
	AbilityBindings map[string]ability.InputID
}

// NewRouter creates a new input router
func NewRouter(cfg *Config) *Router {
	if cfg.Locomotion == nil {
		panic("locomotion sink is required")
	}

	r := &Router{
		locomotion:     cfg.Locomotion,
		abilities:      cfg.Abilities,
		controlYaw:     cfg.ControlYaw,
		baseTurnRate:   cfg.BaseTurnRate,
		baseLookUpRate: cfg.BaseLookUpRate,
		abilityBindings: map[string]ability.InputID{
			ActionConfirm: ability.InputConfirm,
			ActionCancel:  ability.InputCancel,
		},
	}
	if r.controlYaw == nil {
		r.controlYaw = func() float64 { return 0 }
	}
	if r.baseTurnRate == 0 {
		r.baseTurnRate = DefaultBaseTurnRate
	}
	if r.baseLookUpRate == 0 {
		r.baseLookUpRate = DefaultBaseLookUpRate
	}
	for name, id := range cfg.AbilityBindings {
		r.abilityBindings[name] = id
	}
	return r
}

// HandleAction routes a digital action press or release
func (r *Router) HandleAction(name string, pressed bool) {
	if name == ActionJump {
		if pressed {
			r.locomotion.Jump()
		} else {
			r.locomotion.StopJumping()
		}
		return
	}

	if id, ok := r.abilityBindings[name]; ok && r.abilities != nil {
		if pressed {
			r.abilities.AbilityInputPressed(id)
		} else {
			r.abilities.AbilityInputReleased(id)
		}
	}
}

// HandleTouch maps touch start and stop onto jumping
func (r *Router) HandleTouch(pressed bool) {
	r.HandleAction(ActionJump, pressed)
}

// HandleAxis routes one axis sample. The elapsed frame time only matters
// for the rate families.
func (r *Router) HandleAxis(name string, value float64, elapsed time.Duration) {
	switch name {
	case AxisMoveForward:
		if value != 0 {
			r.locomotion.AddMovementInput(ForwardFromYaw(r.controlYaw()), value)
		}
	case AxisMoveRight:
		if value != 0 {
			r.locomotion.AddMovementInput(RightFromYaw(r.controlYaw()), value)
		}
	case AxisTurn:
		r.locomotion.AddYawInput(value)
	case AxisLookUp:
		r.locomotion.AddPitchInput(value)
	case AxisTurnRate:
		r.locomotion.AddYawInput(value * r.baseTurnRate * elapsed.Seconds())
	case AxisLookUpRate:
		r.locomotion.AddPitchInput(value * r.baseLookUpRate * elapsed.Seconds())
	}
}
