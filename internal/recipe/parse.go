// Package recipe decodes raw recipe records and provides recipe database
// implementations.
package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/cooktrack/internal/domain"
)

// Raw record layout, slash separated:
//
//	"tok qty tok qty .../<unused>/<product> [count]/<bigcraftable or unlock>/..."
const (
	fieldIngredients = 0
	fieldProduct     = 2
	fieldBigCraft    = 3
)

// ParseIngredients decodes the ingredient field into (token, quantity)
// pairs. It rejects empty lists, odd token counts, and non-positive
// quantities.
func ParseIngredients(field string) ([]domain.IngredientPair, error) {
	parts := strings.Fields(field)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no ingredients: %w", domain.ErrMalformedRecipe)
	}
	if len(parts)%2 != 0 {
		return nil, fmt.Errorf("odd ingredient token count %d: %w", len(parts), domain.ErrMalformedRecipe)
	}

	out := make([]domain.IngredientPair, 0, len(parts)/2)
	for i := 0; i < len(parts); i += 2 {
		qty, err := strconv.Atoi(parts[i+1])
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("bad quantity %q for %q: %w", parts[i+1], parts[i], domain.ErrMalformedRecipe)
		}
		out = append(out, domain.IngredientPair{Token: parts[i], Quantity: qty})
	}
	return out, nil
}

// ParseRecord decodes a raw record of the given mode.
func ParseRecord(mode domain.Mode, name, raw string) (domain.RecipeRecord, error) {
	rec, err := ParseProduct(mode, name, raw)
	if err != nil {
		return domain.RecipeRecord{}, err
	}
	fields := strings.Split(raw, "/")
	ingredients, err := ParseIngredients(fields[fieldIngredients])
	if err != nil {
		return domain.RecipeRecord{}, fmt.Errorf("recipe %q: %w", name, err)
	}
	rec.Ingredients = ingredients
	return rec, nil
}

// ParseProduct decodes only the product fields of a raw record, leaving
// Ingredients nil. A record with broken ingredients still names its
// product.
func ParseProduct(mode domain.Mode, name, raw string) (domain.RecipeRecord, error) {
	fields := strings.Split(raw, "/")
	if len(fields) <= fieldProduct {
		return domain.RecipeRecord{}, fmt.Errorf("recipe %q has %d fields: %w", name, len(fields), domain.ErrMalformedRecipe)
	}

	product := strings.Fields(fields[fieldProduct])
	if len(product) == 0 {
		return domain.RecipeRecord{}, fmt.Errorf("recipe %q has no product: %w", name, domain.ErrMalformedRecipe)
	}

	rec := domain.RecipeRecord{
		Name:         name,
		ProductID:    product[0],
		ProductCount: 1,
	}
	if len(product) > 1 {
		if n, err := strconv.Atoi(product[1]); err == nil && n > 0 {
			rec.ProductCount = n
		}
	}
	if mode == domain.ModeCrafting && len(fields) > fieldBigCraft {
		rec.BigCraftable = strings.EqualFold(strings.TrimSpace(fields[fieldBigCraft]), "true")
	}
	return rec, nil
}

// Lookup fetches and decodes a recipe from a database.
func Lookup(db domain.RecipeDatabase, mode domain.Mode, name string) (domain.RecipeRecord, error) {
	raw, ok := db.Table(mode).Raw(name)
	if !ok {
		return domain.RecipeRecord{}, fmt.Errorf("%s recipe %q: %w", mode, name, domain.ErrRecipeNotFound)
	}
	return ParseRecord(mode, name, raw)
}
