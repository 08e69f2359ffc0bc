package domain

// ItemCatalog answers read-only questions about item ids. Implementations
// accept qualified ("(O)246", "(BC)208") and unqualified ids; unqualified
// ids name objects.
type ItemCatalog interface {
	Lookup(id string) (Item, bool)
	CategoryLabel(category int) (string, bool)
}

// RecipeTable maps recipe names to raw encoded records, in the table's
// natural order.
type RecipeTable interface {
	Names() []string
	Raw(name string) (string, bool)
}

// RecipeDatabase holds the cooking and crafting tables.
type RecipeDatabase interface {
	Table(mode Mode) RecipeTable
}

// PlayerProgress reports what the local player has unlocked and made.
type PlayerProgress interface {
	// KnowsRecipe reports whether the recipe is unlocked.
	KnowsRecipe(mode Mode, name string) bool
	// CookedCount returns how often a cooking product (unqualified id)
	// has been prepared, and whether it has been prepared at all.
	CookedCount(productID string) (int, bool)
	// CraftedCount returns how often a crafting recipe has been used.
	CraftedCount(name string) int
}

// Location is a host map area with placed objects.
type Location interface {
	Name() string
	// Fridge returns the location's built-in fridge, if it has one.
	Fridge() (Placed, bool)
	// Objects returns every placed object in scan order.
	Objects() []Placed
	// ObjectAt returns the object on the tile, if any.
	ObjectAt(t Tile) (Placed, bool)
}

// InventorySource exposes the player's carried stacks and surroundings.
type InventorySource interface {
	Carried() []Stack
	PlayerPosition() Vec2
	CurrentLocation() (Location, bool)
}

// Diagnostics is the leveled sink for recoverable data faults.
type Diagnostics interface {
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Labels supplies the localized strings the core needs.
type Labels interface {
	Any() string
	Egg() string
	Milk() string
	WildSeeds() string
	Locked() string
}
