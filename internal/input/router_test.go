package input_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tidegate/charcore/internal/domain/ability"
	"github.com/tidegate/charcore/internal/input"
)

// Test helper: records locomotion calls
type fakeLocomotion struct {
	moves []moveCall
	yaw   float64
	pitch float64
	jumps int
	stops int
}

type moveCall struct {
	direction input.Vector
	scale     float64
}

func (f *fakeLocomotion) AddMovementInput(direction input.Vector, scale float64) {
	f.moves = append(f.moves, moveCall{direction: direction, scale: scale})
}
func (f *fakeLocomotion) AddYawInput(delta float64)   { f.yaw += delta }
func (f *fakeLocomotion) AddPitchInput(delta float64) { f.pitch += delta }
func (f *fakeLocomotion) Jump()                       { f.jumps++ }
func (f *fakeLocomotion) StopJumping()                { f.stops++ }

// Test helper: records ability activation routing
type fakeActivator struct {
	pressed  []ability.InputID
	released []ability.InputID
}

func (f *fakeActivator) AbilityInputPressed(id ability.InputID)  { f.pressed = append(f.pressed, id) }
func (f *fakeActivator) AbilityInputReleased(id ability.InputID) { f.released = append(f.released, id) }

func TestRouter_MovementProjectsControllerYaw(t *testing.T) {
	loco := &fakeLocomotion{}
	yaw := 90.0
	router := input.NewRouter(&input.Config{
		Locomotion: loco,
		ControlYaw: func() float64 { return yaw },
	})

	router.HandleAxis(input.AxisMoveForward, 1, 0)
	router.HandleAxis(input.AxisMoveRight, 0.5, 0)

	// Yaw 90: forward is +Y, right is -X
	if assert.Len(t, loco.moves, 2) {
		assert.InDelta(t, 0, loco.moves[0].direction.X, 1e-9)
		assert.InDelta(t, 1, loco.moves[0].direction.Y, 1e-9)
		assert.Equal(t, 1.0, loco.moves[0].scale)

		assert.InDelta(t, -1, loco.moves[1].direction.X, 1e-9)
		assert.InDelta(t, 0, loco.moves[1].direction.Y, 1e-9)
		assert.Equal(t, 0.5, loco.moves[1].scale)
	}
}

func TestRouter_ZeroMovementIgnored(t *testing.T) {
	loco := &fakeLocomotion{}
	router := input.NewRouter(&input.Config{Locomotion: loco})

	router.HandleAxis(input.AxisMoveForward, 0, 0)
	assert.Empty(t, loco.moves)
}

func TestRouter_RotationFamilies(t *testing.T) {
	loco := &fakeLocomotion{}
	router := input.NewRouter(&input.Config{Locomotion: loco})

	// Absolute family passes through untouched
	router.HandleAxis(input.AxisTurn, 2.5, time.Second)
	assert.Equal(t, 2.5, loco.yaw)

	// Rate family scales by base rate and frame time: 1 * 45°/s * 0.1s
	loco.yaw = 0
	router.HandleAxis(input.AxisTurnRate, 1, 100*time.Millisecond)
	assert.InDelta(t, 4.5, loco.yaw, 1e-9)

	router.HandleAxis(input.AxisLookUpRate, -1, 100*time.Millisecond)
	assert.InDelta(t, -4.5, loco.pitch, 1e-9)
}

func TestRouter_CustomTurnRate(t *testing.T) {
	loco := &fakeLocomotion{}
	router := input.NewRouter(&input.Config{
		Locomotion:   loco,
		BaseTurnRate: 90,
	})

	router.HandleAxis(input.AxisTurnRate, 1, time.Second)
	assert.InDelta(t, 90.0, loco.yaw, 1e-9)
}

func TestRouter_JumpAndTouch(t *testing.T) {
	loco := &fakeLocomotion{}
	router := input.NewRouter(&input.Config{Locomotion: loco})

	router.HandleAction(input.ActionJump, true)
	router.HandleAction(input.ActionJump, false)
	router.HandleTouch(true)
	router.HandleTouch(false)

	assert.Equal(t, 2, loco.jumps)
	assert.Equal(t, 2, loco.stops)
}

func TestRouter_AbilityActivation(t *testing.T) {
	loco := &fakeLocomotion{}
	activator := &fakeActivator{}
	router := input.NewRouter(&input.Config{
		Locomotion: loco,
		Abilities:  activator,
		AbilityBindings: map[string]ability.InputID{
			"Fire": ability.InputAbility1,
		},
	})

	router.HandleAction(input.ActionConfirm, true)
	router.HandleAction(input.ActionCancel, true)
	router.HandleAction("Fire", true)
	router.HandleAction("Fire", false)

	assert.Equal(t, []ability.InputID{ability.InputConfirm, ability.InputCancel, ability.InputAbility1}, activator.pressed)
	assert.Equal(t, []ability.InputID{ability.InputAbility1}, activator.released)
}

func TestRouter_UnboundActionIgnored(t *testing.T) {
	loco := &fakeLocomotion{}
	router := input.NewRouter(&input.Config{Locomotion: loco})

	// No activator registered and no such binding; nothing should happen
	router.HandleAction("OpenMap", true)
	router.HandleAxis("Zoom", 1, time.Second)

	assert.Empty(t, loco.moves)
	assert.Zero(t, loco.jumps)
	assert.Zero(t, loco.yaw)
}
