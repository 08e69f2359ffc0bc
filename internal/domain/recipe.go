// Package domain defines the core types and interfaces for the unmade
// recipe tracker. All other packages depend on domain; domain depends on
// nothing.
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which recipe table a checklist works on.
type Mode int

const (
	ModeCooking Mode = iota
	ModeCrafting
)

// String returns a human-readable mode.
func (m Mode) String() string {
	switch m {
	case ModeCooking:
		return "cooking"
	case ModeCrafting:
		return "crafting"
	default:
		return "unknown"
	}
}

// Other returns the mode a toggle switches to.
func (m Mode) Other() Mode {
	if m == ModeCooking {
		return ModeCrafting
	}
	return ModeCooking
}

// ParseMode converts "cooking" or "crafting" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cooking", "cook":
		return ModeCooking, nil
	case "crafting", "craft":
		return ModeCrafting, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

// RefKind tags an IngredientRef.
type RefKind int

const (
	// RefExact refers to one specific item.
	RefExact RefKind = iota
	// RefCategory refers to any item in a category.
	RefCategory
)

// IngredientRef is either Exact(itemID) or AnyInCategory(categoryID).
type IngredientRef struct {
	Kind     RefKind
	ItemID   string // set for RefExact
	Category int    // set for RefCategory, always negative
}

// Exact builds a reference to a single item.
func Exact(itemID string) IngredientRef {
	return IngredientRef{Kind: RefExact, ItemID: itemID}
}

// AnyInCategory builds a reference to any item of a category.
func AnyInCategory(category int) IngredientRef {
	return IngredientRef{Kind: RefCategory, Category: category}
}

// Key returns the stable aggregation key: the item id for exact refs,
// the signed category number for category refs.
func (r IngredientRef) Key() string {
	if r.Kind == RefCategory {
		return strconv.Itoa(r.Category)
	}
	return r.ItemID
}

// String implements fmt.Stringer.
func (r IngredientRef) String() string {
	if r.Kind == RefCategory {
		return fmt.Sprintf("any(%d)", r.Category)
	}
	return fmt.Sprintf("item(%s)", r.ItemID)
}

// ParseToken classifies a raw ingredient token. A leading '-' means a
// category and must be followed by an integer; anything else non-empty is
// an exact item id.
func ParseToken(token string) (IngredientRef, error) {
	if token == "" {
		return IngredientRef{}, fmt.Errorf("empty token: %w", ErrUnrecognizedToken)
	}
	if token[0] != '-' {
		return Exact(token), nil
	}
	n, err := strconv.Atoi(token)
	if err != nil || n >= 0 {
		return IngredientRef{}, fmt.Errorf("token %q: %w", token, ErrUnrecognizedToken)
	}
	return AnyInCategory(n), nil
}

// IngredientPair is one raw (token, quantity) entry of a recipe.
type IngredientPair struct {
	Token    string
	Quantity int
}

// RecipeRecord is the decoded form of a raw recipe entry.
type RecipeRecord struct {
	Name         string
	Ingredients  []IngredientPair
	ProductID    string // unqualified
	ProductCount int
	BigCraftable bool // crafting only
}

// QualifiedProductID returns the product id the catalog should be asked
// about. Cooking products stay unqualified; crafting products are
// qualified by their big-craftable flag.
func (r RecipeRecord) QualifiedProductID(mode Mode) string {
	if mode == ModeCooking {
		return r.ProductID
	}
	if r.BigCraftable {
		return QualifyBigCraftable(r.ProductID)
	}
	return QualifyObject(r.ProductID)
}

// Demand is one flattened ingredient requirement of a single recipe.
type Demand struct {
	Key         string
	Ref         IngredientRef
	DisplayName string
	Quantity    int
}
