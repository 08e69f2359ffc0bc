package domain

import (
	"math"
	"strings"
)

// Item id type prefixes used by the host's registry.
const (
	PrefixObject       = "(O)"
	PrefixBigCraftable = "(BC)"
)

// Well-known big craftables.
const (
	WorkbenchID  = "(BC)208"
	MiniFridgeID = "(BC)216"
)

// QualifyObject prefixes an unqualified id with the object type.
func QualifyObject(id string) string { return PrefixObject + id }

// QualifyBigCraftable prefixes an unqualified id with the big craftable type.
func QualifyBigCraftable(id string) string { return PrefixBigCraftable + id }

// NormalizeStackID maps a stack's item id onto the requirement key space.
// Objects are stored unqualified there, so "(O)388" becomes "388". Every
// other qualified id is kept as-is and can never collide with an object key.
func NormalizeStackID(id string) string {
	return strings.TrimPrefix(id, PrefixObject)
}

// Item is what the catalog knows about one item id.
type Item struct {
	QualifiedID  string
	InternalName string
	DisplayName  string
	Category     int
	BigCraftable bool
}

// Stack is a quantity of one item held by a container.
type Stack struct {
	ItemID   string // qualified or unqualified
	Quantity int
}

// Tile is an integer grid position inside a location.
type Tile struct {
	X, Y int
}

// Add returns t shifted by d.
func (t Tile) Add(d Tile) Tile { return Tile{X: t.X + d.X, Y: t.Y + d.Y} }

// Vec2 is a continuous position, used for the player.
type Vec2 struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance from v to the tile.
func (v Vec2) DistanceTo(t Tile) float64 {
	return math.Hypot(float64(t.X)-v.X, float64(t.Y)-v.Y)
}

// Neighborhood8 holds the four cardinal and four diagonal offsets.
var Neighborhood8 = [8]Tile{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Placed is an object standing on a tile. Containers (chests, fridges)
// carry their contents; other structures have none.
type Placed struct {
	Tile        Tile
	QualifiedID string
	Container   bool
	Items       []Stack
}
