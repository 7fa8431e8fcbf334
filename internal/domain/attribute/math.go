package attribute

// Clamp forces a current value into [0, maximum], saturating at the bounds.
// Clamping is the defined correction for out-of-range values, not a failure.
func Clamp(current, maximum float64) float64 {
	if current < 0 {
		return 0
	}
	if current > maximum {
		return maximum
	}
	return current
}

// RescaleForMaxChange derives the new current value when a group's maximum
// changes, preserving the fraction full across the capacity change. A zero
// old maximum is the uninitialized case and is treated as full.
func RescaleForMaxChange(oldCurrent, oldMaximum, newMaximum float64) float64 {
	if oldMaximum <= 0 {
		return Clamp(newMaximum, newMaximum)
	}
	return Clamp(oldCurrent*(newMaximum/oldMaximum), newMaximum)
}
