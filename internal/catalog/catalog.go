// Package catalog provides the item catalog: item ids to names and
// categories, and category numbers to labels.
package catalog

import (
	"strings"

	"github.com/hammamikhairi/cooktrack/internal/domain"
)

// Compile-time interface check.
var _ domain.ItemCatalog = (*Catalog)(nil)

// Catalog is an in-memory, read-only item registry once built.
type Catalog struct {
	objects    map[string]domain.Item
	big        map[string]domain.Item
	categories map[int]string
}

// New creates a catalog seeded with the default category labels.
func New() *Catalog {
	c := &Catalog{
		objects:    make(map[string]domain.Item),
		big:        make(map[string]domain.Item),
		categories: make(map[int]string, len(defaultCategories)),
	}
	for k, v := range defaultCategories {
		c.categories[k] = v
	}
	return c
}

// AddObject registers an object under its unqualified id. An empty display
// name falls back to the internal name.
func (c *Catalog) AddObject(id, internalName, displayName string, category int) *Catalog {
	c.objects[id] = domain.Item{
		QualifiedID:  domain.QualifyObject(id),
		InternalName: internalName,
		DisplayName:  orDefault(displayName, internalName),
		Category:     category,
	}
	return c
}

// AddBigCraftable registers a big craftable under its unqualified id.
func (c *Catalog) AddBigCraftable(id, internalName, displayName string) *Catalog {
	c.big[id] = domain.Item{
		QualifiedID:  domain.QualifyBigCraftable(id),
		InternalName: internalName,
		DisplayName:  orDefault(displayName, internalName),
		BigCraftable: true,
	}
	return c
}

// SetCategory overrides or adds a category label. An empty label removes
// the category.
func (c *Catalog) SetCategory(category int, label string) *Catalog {
	if label == "" {
		delete(c.categories, category)
		return c
	}
	c.categories[category] = label
	return c
}

// Lookup resolves a qualified or unqualified item id. Unqualified ids are
// objects. Unknown type prefixes never resolve.
func (c *Catalog) Lookup(id string) (domain.Item, bool) {
	switch {
	case strings.HasPrefix(id, domain.PrefixObject):
		it, ok := c.objects[strings.TrimPrefix(id, domain.PrefixObject)]
		return it, ok
	case strings.HasPrefix(id, domain.PrefixBigCraftable):
		it, ok := c.big[strings.TrimPrefix(id, domain.PrefixBigCraftable)]
		return it, ok
	case strings.HasPrefix(id, "("):
		return domain.Item{}, false
	default:
		it, ok := c.objects[id]
		return it, ok
	}
}

// CategoryLabel returns the label of a category number.
func (c *Catalog) CategoryLabel(category int) (string, bool) {
	l, ok := c.categories[category]
	return l, ok
}

// Len returns the number of registered items.
func (c *Catalog) Len() int { return len(c.objects) + len(c.big) }

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
