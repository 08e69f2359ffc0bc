// Package gamestate models the local player's saved state: unlocked and
// made recipes, carried items, and the locations with their containers.
package gamestate

import (
	"github.com/hammamikhairi/cooktrack/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.PlayerProgress  = (*State)(nil)
	_ domain.InventorySource = (*State)(nil)
	_ domain.Location        = (*Location)(nil)
)

// Location is a map area with placed objects. Placing on an occupied tile
// replaces the previous object but keeps its scan position.
type Location struct {
	name    string
	fridge  *domain.Placed
	objects []domain.Placed
	byTile  map[domain.Tile]int
}

// NewLocation creates an empty location.
func NewLocation(name string) *Location {
	return &Location{name: name, byTile: make(map[domain.Tile]int)}
}

// SetFridge gives the location a built-in fridge holding the stacks.
func (l *Location) SetFridge(items ...domain.Stack) *Location {
	l.fridge = &domain.Placed{QualifiedID: "fridge", Container: true, Items: items}
	return l
}

// Place puts an object on its tile.
func (l *Location) Place(p domain.Placed) *Location {
	if i, ok := l.byTile[p.Tile]; ok {
		l.objects[i] = p
		return l
	}
	l.byTile[p.Tile] = len(l.objects)
	l.objects = append(l.objects, p)
	return l
}

// PlaceChest puts a container of the given id on a tile.
func (l *Location) PlaceChest(t domain.Tile, id string, items ...domain.Stack) *Location {
	return l.Place(domain.Placed{Tile: t, QualifiedID: id, Container: true, Items: items})
}

// PlaceStructure puts a non-container object on a tile.
func (l *Location) PlaceStructure(t domain.Tile, id string) *Location {
	return l.Place(domain.Placed{Tile: t, QualifiedID: id})
}

func (l *Location) Name() string { return l.name }

func (l *Location) Fridge() (domain.Placed, bool) {
	if l.fridge == nil {
		return domain.Placed{}, false
	}
	return *l.fridge, true
}

func (l *Location) Objects() []domain.Placed {
	out := make([]domain.Placed, len(l.objects))
	copy(out, l.objects)
	return out
}

func (l *Location) ObjectAt(t domain.Tile) (domain.Placed, bool) {
	i, ok := l.byTile[t]
	if !ok {
		return domain.Placed{}, false
	}
	return l.objects[i], true
}

// State is the local player's snapshot of the world.
type State struct {
	carried   []domain.Stack
	position  domain.Vec2
	current   string
	locations map[string]*Location

	cookingKnown  map[string]bool
	cooked        map[string]int
	craftingKnown map[string]int
}

// New creates an empty state with no current location.
func New() *State {
	return &State{
		locations:     make(map[string]*Location),
		cookingKnown:  make(map[string]bool),
		cooked:        make(map[string]int),
		craftingKnown: make(map[string]int),
	}
}

// Carry adds stacks to the player's bag.
func (s *State) Carry(stacks ...domain.Stack) *State {
	s.carried = append(s.carried, stacks...)
	return s
}

// MoveTo sets the player's position inside the current location.
func (s *State) MoveTo(x, y float64) *State {
	s.position = domain.Vec2{X: x, Y: y}
	return s
}

// AddLocation registers a location.
func (s *State) AddLocation(l *Location) *State {
	s.locations[l.Name()] = l
	return s
}

// Enter makes a registered location current. An unknown name leaves the
// player without a current location.
func (s *State) Enter(name string) *State {
	s.current = name
	return s
}

// LearnCooking unlocks a cooking recipe.
func (s *State) LearnCooking(name string) *State {
	s.cookingKnown[name] = true
	return s
}

// Cook records a cooking product (unqualified id) as prepared n times.
func (s *State) Cook(productID string, n int) *State {
	s.cooked[productID] += n
	return s
}

// LearnCrafting unlocks a crafting recipe with a crafted count.
func (s *State) LearnCrafting(name string, crafted int) *State {
	s.craftingKnown[name] = crafted
	return s
}

func (s *State) KnowsRecipe(mode domain.Mode, name string) bool {
	if mode == domain.ModeCrafting {
		_, ok := s.craftingKnown[name]
		return ok
	}
	return s.cookingKnown[name]
}

func (s *State) CookedCount(productID string) (int, bool) {
	n, ok := s.cooked[productID]
	return n, ok
}

func (s *State) CraftedCount(name string) int {
	return s.craftingKnown[name]
}

func (s *State) Carried() []domain.Stack {
	out := make([]domain.Stack, len(s.carried))
	copy(out, s.carried)
	return out
}

func (s *State) PlayerPosition() domain.Vec2 { return s.position }

func (s *State) CurrentLocation() (domain.Location, bool) {
	l, ok := s.locations[s.current]
	if !ok {
		return nil, false
	}
	return l, true
}
