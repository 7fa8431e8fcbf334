package attribute

// Group is one clamped (current, maximum, regen) triple. The regen rate is
// unclamped and may be negative, representing decay; it is consumed by the
// periodic regen driver, never by the group itself.
type Group struct {
	current float64
	maximum float64
	regen   float64
}

// Current returns the clamped current value
func (g Group) Current() float64 { return g.current }

// Maximum returns the capacity of the group
func (g Group) Maximum() float64 { return g.maximum }

// Regen returns the per-second regeneration rate
func (g Group) Regen() float64 { return g.regen }

// Fraction returns how full the group is, in [0, 1]
func (g Group) Fraction() float64 {
	if g.maximum <= 0 {
		return 0
	}
	return g.current / g.maximum
}

// GroupDefaults carries the design-time starting values for one group
type GroupDefaults struct {
	Current float64
	Maximum float64
	Regen   float64
}

// Defaults carries the design-time starting values for a whole set
type Defaults struct {
	Health  GroupDefaults
	Mana    GroupDefaults
	Stamina GroupDefaults
}

// Set owns the three clamped resource groups for one character. It has the
// same lifetime as the character and is mutated only through the effect
// processor; the commit methods enforce the clamp invariant on every write,
// so the invariant holds after every committed mutation regardless of caller.
type Set struct {
	groups map[GroupID]*Group
}

// NewSet constructs a set seeded with the provided design-time defaults.
// Defaults are clamped on construction so the invariant holds from the start.
func NewSet(d Defaults) *Set {
	s := &Set{groups: make(map[GroupID]*Group, len(GroupIDs))}
	for group, gd := range map[GroupID]GroupDefaults{
		GroupHealth:  d.Health,
		GroupMana:    d.Mana,
		GroupStamina: d.Stamina,
	} {
		s.groups[group] = &Group{
			current: Clamp(gd.Current, gd.Maximum),
			maximum: gd.Maximum,
			regen:   gd.Regen,
		}
	}
	return s
}

// Group returns a copy of the named group's state
func (s *Set) Group(id GroupID) Group {
	return *s.groups[id]
}

// Value resolves an attribute identifier and returns its value
func (s *Set) Value(id ID) (float64, error) {
	group, field, err := Resolve(id)
	if err != nil {
		return 0, err
	}
	g := s.groups[group]
	switch field {
	case FieldMaximum:
		return g.maximum, nil
	case FieldRegen:
		return g.regen, nil
	default:
		return g.current, nil
	}
}

// Snapshot returns every attribute value, keyed by id
func (s *Set) Snapshot() map[ID]float64 {
	snap := make(map[ID]float64, len(IDs))
	for _, id := range IDs {
		v, err := s.Value(id)
		if err != nil {
			continue
		}
		snap[id] = v
	}
	return snap
}

// CommitCurrent commits a proposed current value for a group, clamping it
// against the group's present maximum. Returns the old and committed values.
func (s *Set) CommitCurrent(group GroupID, proposed float64) (old, committed float64) {
	g := s.groups[group]
	old = g.current
	g.current = Clamp(proposed, g.maximum)
	return old, g.current
}

// MaxChange reports the outcome of a maximum commit, including the paired
// current value derived by the proportional rescale.
type MaxChange struct {
	OldMaximum float64
	NewMaximum float64
	OldCurrent float64
	NewCurrent float64
}

// CommitMaximum commits a proposed maximum for a group and rescales the
// paired current value so the fraction full is preserved. Both writes land
// together; the caller observes only the completed state.
func (s *Set) CommitMaximum(group GroupID, proposed float64) MaxChange {
	g := s.groups[group]
	change := MaxChange{
		OldMaximum: g.maximum,
		NewMaximum: proposed,
		OldCurrent: g.current,
	}
	change.NewCurrent = RescaleForMaxChange(g.current, g.maximum, proposed)
	g.maximum = proposed
	g.current = change.NewCurrent
	return change
}

// CommitRegen commits a regen rate for a group. Regen is unclamped.
func (s *Set) CommitRegen(group GroupID, proposed float64) (old float64) {
	g := s.groups[group]
	old = g.regen
	g.regen = proposed
	return old
}
