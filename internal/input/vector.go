package input

import "math"

// Vector is a world-space direction on the ground plane
type Vector struct {
	X float64
	Y float64
	Z float64
}

// ForwardFromYaw returns the unit forward vector for a controller yaw in
// degrees, ignoring pitch and roll so movement stays on the ground plane
func ForwardFromYaw(yawDegrees float64) Vector {
	rad := yawDegrees * math.Pi / 180
	return Vector{X: math.Cos(rad), Y: math.Sin(rad)}
}

// RightFromYaw returns the unit right vector for a controller yaw in degrees
func RightFromYaw(yawDegrees float64) Vector {
	return ForwardFromYaw(yawDegrees + 90)
}
