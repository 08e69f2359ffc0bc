// Package engine builds unmade-recipe checklists and runs the checklist
// session state machine.
package engine

import (
	"fmt"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/logger"
	"github.com/hammamikhairi/cooktrack/internal/recipe"
	"github.com/hammamikhairi/cooktrack/internal/resolver"
)

// weddingRing is never listed as unmade.
const weddingRing = "Wedding Ring"

// Option configures the engine.
type Option func(*Engine)

// WithCategoryMatching makes stored stacks also count toward the
// any-in-category requirement of their catalog category.
func WithCategoryMatching(on bool) Option {
	return func(e *Engine) {
		e.matchCategories = on
	}
}

// Engine computes checklist snapshots. It depends only on interfaces and
// is fully testable with in-memory fixtures.
type Engine struct {
	recipes   domain.RecipeDatabase
	catalog   domain.ItemCatalog
	progress  domain.PlayerProgress
	inventory domain.InventorySource
	labels    domain.Labels
	resolver  *resolver.Resolver
	log       *logger.Logger

	matchCategories bool
}

// New creates an engine with the given collaborators and options.
func New(
	recipes domain.RecipeDatabase,
	catalog domain.ItemCatalog,
	progress domain.PlayerProgress,
	inventory domain.InventorySource,
	labels domain.Labels,
	log *logger.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		recipes:   recipes,
		catalog:   catalog,
		progress:  progress,
		inventory: inventory,
		labels:    labels,
		resolver:  resolver.New(recipes, catalog, labels, log),
		log:       log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecipeNames returns every recipe of a mode in database order.
func (e *Engine) RecipeNames(mode domain.Mode) []string {
	return e.recipes.Table(mode).Names()
}

// Compute builds a fresh snapshot of the unmade recipes of a mode and the
// ingredients they still need. Data faults are logged and skipped; only an
// unknown mode is returned as an error.
func (e *Engine) Compute(mode domain.Mode) (*domain.Snapshot, error) {
	if mode != domain.ModeCooking && mode != domain.ModeCrafting {
		return nil, fmt.Errorf("compute: unknown mode %d", mode)
	}

	b := domain.NewSnapshotBuilder(mode)
	table := e.recipes.Table(mode)
	for _, name := range table.Names() {
		raw, _ := table.Raw(name)
		rec, err := recipe.ParseProduct(mode, name, raw)
		if err != nil {
			e.log.Error("skipping %s recipe: %v", mode, err)
			continue
		}
		if e.made(mode, rec) {
			continue
		}

		display, err := e.productName(mode, rec)
		if err != nil {
			e.log.Error("skipping %s recipe %q: %v", mode, name, err)
			continue
		}
		b.AddRecipe(display)

		demands, err := e.resolver.Resolve(name, mode)
		if err != nil {
			e.log.Error("no ingredients for %s recipe %q: %v", mode, name, err)
			continue
		}
		for _, d := range demands {
			b.AddDemand(d)
		}
	}

	e.reconcile(mode, b)

	snap := b.Build()
	e.log.Debug("computed %s checklist: %d unmade, %d ingredients", mode, len(snap.UnmadeRecipes()), snap.Len())
	return snap, nil
}

// MadeCount reports how often a recipe has been made: the cooked count of
// its product for cooking, the crafted count for crafting.
func (e *Engine) MadeCount(mode domain.Mode, name string) (int, error) {
	raw, ok := e.recipes.Table(mode).Raw(name)
	if !ok {
		return 0, fmt.Errorf("%s recipe %q: %w", mode, name, domain.ErrRecipeNotFound)
	}
	if mode == domain.ModeCrafting {
		return e.progress.CraftedCount(name), nil
	}
	rec, err := recipe.ParseProduct(mode, name, raw)
	if err != nil {
		return 0, err
	}
	n, _ := e.progress.CookedCount(rec.ProductID)
	return n, nil
}

func (e *Engine) made(mode domain.Mode, rec domain.RecipeRecord) bool {
	if mode == domain.ModeCrafting {
		return rec.Name == weddingRing || e.progress.CraftedCount(rec.Name) > 0
	}
	_, cooked := e.progress.CookedCount(rec.ProductID)
	return cooked
}

func (e *Engine) productName(mode domain.Mode, rec domain.RecipeRecord) (string, error) {
	id := rec.QualifiedProductID(mode)
	item, ok := e.catalog.Lookup(id)
	if !ok {
		return "", fmt.Errorf("product %s: %w", id, domain.ErrUnresolvableProduct)
	}
	name := item.DisplayName
	if !e.progress.KnowsRecipe(mode, rec.Name) {
		name = fmt.Sprintf("%s (%s)", name, e.labels.Locked())
	}
	return name, nil
}
