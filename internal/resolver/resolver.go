// Package resolver expands a recipe into the base ingredients it needs.
// An ingredient that is itself the product of another recipe in the same
// table is expanded recursively.
package resolver

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/recipe"
)

// Category numbers with a fixed display name per mode.
const (
	categoryEgg       = -5
	categoryMilk      = -6
	categoryWildSeeds = -777
)

// Resolver turns recipe names into flattened demand lists. It holds no
// state between calls.
type Resolver struct {
	db      domain.RecipeDatabase
	catalog domain.ItemCatalog
	labels  domain.Labels
	diag    domain.Diagnostics
}

// New creates a resolver.
func New(db domain.RecipeDatabase, catalog domain.ItemCatalog, labels domain.Labels, diag domain.Diagnostics) *Resolver {
	return &Resolver{db: db, catalog: catalog, labels: labels, diag: diag}
}

// Resolve returns the base ingredients of a recipe, one Demand per key in
// first-seen order with quantities summed.
//
// When an ingredient is the product of another recipe in the same table,
// that recipe's base ingredients are added to those read so far and the
// remaining ingredients are not read. The intermediate's quantity is not
// multiplied in. A recipe reached twice on one path fails with
// ErrCyclicRecipe.
func (r *Resolver) Resolve(name string, mode domain.Mode) ([]domain.Demand, error) {
	visited := mapset.New[string]()
	return r.resolve(name, mode, visited)
}

func (r *Resolver) resolve(name string, mode domain.Mode, visited mapset.Set[string]) ([]domain.Demand, error) {
	if visited.Has(name) {
		return nil, fmt.Errorf("%s recipe %q: %w", mode, name, domain.ErrCyclicRecipe)
	}
	visited.Put(name)

	rec, err := recipe.Lookup(r.db, mode, name)
	if err != nil {
		return nil, err
	}

	table := r.db.Table(mode)
	acc := newAccumulator()
	for _, pair := range rec.Ingredients {
		ref, err := domain.ParseToken(pair.Token)
		if err != nil {
			r.diag.Error("skipping ingredient of %q: %v", name, err)
			continue
		}

		var item domain.Item
		found := false
		if ref.Kind == domain.RefExact {
			item, found = r.catalog.Lookup(ref.ItemID)
		}
		if found {
			if _, ok := table.Raw(item.InternalName); ok {
				sub, err := r.resolve(item.InternalName, mode, visited)
				if err != nil {
					return nil, err
				}
				for _, d := range sub {
					acc.add(d)
				}
				return acc.list(), nil
			}
		}

		display, err := r.displayName(ref, mode, item, found)
		if err != nil {
			r.diag.Error("skipping ingredient %q of %q: %v", pair.Token, name, err)
			continue
		}
		acc.add(domain.Demand{Key: ref.Key(), Ref: ref, DisplayName: display, Quantity: pair.Quantity})
	}
	return acc.list(), nil
}

func (r *Resolver) displayName(ref domain.IngredientRef, mode domain.Mode, item domain.Item, found bool) (string, error) {
	if ref.Kind == domain.RefExact {
		if !found {
			return "", fmt.Errorf("item %s: %w", ref.ItemID, domain.ErrUnresolvableIngredient)
		}
		return item.DisplayName, nil
	}

	var label string
	switch {
	case mode == domain.ModeCooking && ref.Category == categoryEgg:
		label = r.labels.Egg()
	case mode == domain.ModeCooking && ref.Category == categoryMilk:
		label = r.labels.Milk()
	case mode == domain.ModeCrafting && ref.Category == categoryWildSeeds:
		label = r.labels.WildSeeds()
	default:
		l, ok := r.catalog.CategoryLabel(ref.Category)
		if !ok {
			return "", fmt.Errorf("category %d: %w", ref.Category, domain.ErrUnresolvableIngredient)
		}
		label = l
	}
	return fmt.Sprintf("%s (%s)", label, r.labels.Any()), nil
}

type accumulator struct {
	order []string
	byKey map[string]domain.Demand
}

func newAccumulator() *accumulator {
	return &accumulator{byKey: make(map[string]domain.Demand)}
}

func (a *accumulator) add(d domain.Demand) {
	cur, ok := a.byKey[d.Key]
	if !ok {
		a.order = append(a.order, d.Key)
		a.byKey[d.Key] = d
		return
	}
	cur.Quantity += d.Quantity
	a.byKey[d.Key] = cur
}

func (a *accumulator) list() []domain.Demand {
	out := make([]domain.Demand, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, a.byKey[k])
	}
	return out
}
