package ability

// Handle records one submitted grant: which class, which input slot, and the
// id the ability system registered it under
type Handle struct {
	ID       string
	ClassKey string
	InputID  InputID
}

// GrantRecord is the set of abilities already granted to a character. It is
// created empty at character construction, populated once under authority,
// and never cleared during the character's lifetime.
type GrantRecord struct {
	handles []Handle
	byClass map[string]int
}

// NewGrantRecord creates an empty grant record
func NewGrantRecord() *GrantRecord {
	return &GrantRecord{
		byClass: make(map[string]int),
	}
}

// Add records a grant handle, preserving submission order
func (r *GrantRecord) Add(h Handle) {
	r.byClass[h.ClassKey] = len(r.handles)
	r.handles = append(r.handles, h)
}

// Size returns the number of recorded grants
func (r *GrantRecord) Size() int {
	return len(r.handles)
}

// Has reports whether a class has already been granted
func (r *GrantRecord) Has(classKey string) bool {
	_, ok := r.byClass[classKey]
	return ok
}

// Handle returns the recorded handle for a class
func (r *GrantRecord) Handle(classKey string) (Handle, bool) {
	i, ok := r.byClass[classKey]
	if !ok {
		return Handle{}, false
	}
	return r.handles[i], true
}

// Handles returns the recorded handles in submission order
func (r *GrantRecord) Handles() []Handle {
	out := make([]Handle, len(r.handles))
	copy(out, r.handles)
	return out
}
