package domain

// Requirement is the aggregated demand for one ingredient key.
type Requirement struct {
	Key         string
	Ref         IngredientRef
	DisplayName string
	Required    int
	Inventory   int
}

// Satisfied reports whether enough is stored to cover the demand.
func (r Requirement) Satisfied() bool {
	return r.Inventory >= r.Required
}

// Snapshot is the immutable result of one checklist computation.
// Use [SnapshotBuilder] to create one.
type Snapshot struct {
	mode    Mode
	recipes []string
	order   []string
	reqs    map[string]Requirement
}

// Mode returns the mode the snapshot was computed for.
func (s *Snapshot) Mode() Mode { return s.mode }

// UnmadeRecipes returns the unmade recipe display names in database order.
func (s *Snapshot) UnmadeRecipes() []string {
	out := make([]string, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// Requirements returns all requirements in first-demanded order.
func (s *Snapshot) Requirements() []Requirement {
	out := make([]Requirement, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.reqs[k])
	}
	return out
}

// Requirement returns the requirement for a key.
func (s *Snapshot) Requirement(key string) (Requirement, bool) {
	r, ok := s.reqs[key]
	return r, ok
}

// Len returns the number of requirements.
func (s *Snapshot) Len() int { return len(s.order) }

// Empty reports whether nothing is left to make.
func (s *Snapshot) Empty() bool {
	return len(s.recipes) == 0 && len(s.order) == 0
}

// SnapshotBuilder accumulates a snapshot. It is not safe for reuse after
// Build.
type SnapshotBuilder struct {
	snap *Snapshot
}

// NewSnapshotBuilder starts an empty snapshot for the mode.
func NewSnapshotBuilder(mode Mode) *SnapshotBuilder {
	return &SnapshotBuilder{snap: &Snapshot{
		mode: mode,
		reqs: make(map[string]Requirement),
	}}
}

// AddRecipe appends an unmade recipe name.
func (b *SnapshotBuilder) AddRecipe(name string) {
	b.snap.recipes = append(b.snap.recipes, name)
}

// AddDemand merges a demand, summing the required quantity.
func (b *SnapshotBuilder) AddDemand(d Demand) {
	r, ok := b.snap.reqs[d.Key]
	if !ok {
		r = Requirement{Key: d.Key, Ref: d.Ref, DisplayName: d.DisplayName}
		b.snap.order = append(b.snap.order, d.Key)
	}
	r.Required += d.Quantity
	b.snap.reqs[d.Key] = r
}

// Has reports whether a requirement exists for the key.
func (b *SnapshotBuilder) Has(key string) bool {
	_, ok := b.snap.reqs[key]
	return ok
}

// AddInventory adds stored quantity to an existing requirement. Unknown
// keys and non-positive quantities are ignored.
func (b *SnapshotBuilder) AddInventory(key string, qty int) bool {
	r, ok := b.snap.reqs[key]
	if !ok || qty <= 0 {
		return false
	}
	r.Inventory += qty
	b.snap.reqs[key] = r
	return true
}

// Build returns the finished snapshot.
func (b *SnapshotBuilder) Build() *Snapshot {
	s := b.snap
	b.snap = nil
	return s
}
