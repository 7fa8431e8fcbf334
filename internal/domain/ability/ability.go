package ability

// InputID identifies the input slot an ability activates from
type InputID int32

const (
	InputNone InputID = iota
	InputConfirm
	InputCancel
	InputAbility1
	InputAbility2
	InputAbility3
	InputAbility4
)

// String returns the input slot name for logging
func (i InputID) String() string {
	switch i {
	case InputConfirm:
		return "Confirm"
	case InputCancel:
		return "Cancel"
	case InputAbility1:
		return "Ability1"
	case InputAbility2:
		return "Ability2"
	case InputAbility3:
		return "Ability3"
	case InputAbility4:
		return "Ability4"
	default:
		return "None"
	}
}

// Class describes a design-time ability class. The default input id is the
// activation slot the class binds to when granted, mirroring how content
// authors assign one per ability.
type Class struct {
	Key          string
	Name         string
	DefaultInput InputID
}

// IsValid reports whether the entry is a usable class. Content may
// intentionally leave slots empty, so invalid entries are skipped, not errors.
func (c *Class) IsValid() bool {
	return c != nil && c.Key != ""
}
