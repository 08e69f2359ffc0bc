package recipe

import (
	"fmt"

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.RecipeTable    = (*Table)(nil)
	_ domain.RecipeDatabase = (*Database)(nil)
)

// Table is an ordered, read-only name -> raw record map. Insertion order
// is the table's natural order.
type Table struct {
	names []string
	raw   map[string]string
}

// Entry is one (name, raw) pair used to build a table.
type Entry struct {
	Name string
	Raw  string
}

// NewTable builds a table from entries in order. A repeated name keeps its
// first position and its last record.
func NewTable(entries ...Entry) *Table {
	t := &Table{raw: make(map[string]string, len(entries))}
	for _, e := range entries {
		t.put(e.Name, e.Raw)
	}
	return t
}

func (t *Table) put(name, raw string) {
	if _, ok := t.raw[name]; !ok {
		t.names = append(t.names, name)
	}
	t.raw[name] = raw
}

// Names returns recipe names in natural order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Raw returns the encoded record for a recipe.
func (t *Table) Raw(name string) (string, bool) {
	r, ok := t.raw[name]
	return r, ok
}

// Len returns the number of recipes.
func (t *Table) Len() int { return len(t.names) }

// Database pairs a cooking and a crafting table.
type Database struct {
	cooking  *Table
	crafting *Table
}

// NewDatabase creates a database from two tables. Nil tables are empty.
func NewDatabase(cooking, crafting *Table) *Database {
	if cooking == nil {
		cooking = NewTable()
	}
	if crafting == nil {
		crafting = NewTable()
	}
	return &Database{cooking: cooking, crafting: crafting}
}

// Table returns the table for a mode.
func (d *Database) Table(mode domain.Mode) domain.RecipeTable {
	if mode == domain.ModeCrafting {
		return d.crafting
	}
	return d.cooking
}

// Validate decodes every record and logs the ones that would be skipped
// at compute time. It returns the number of bad records.
func Validate(db domain.RecipeDatabase, log *logger.Logger) int {
	bad := 0
	for _, mode := range []domain.Mode{domain.ModeCooking, domain.ModeCrafting} {
		table := db.Table(mode)
		for _, name := range table.Names() {
			if _, err := Lookup(db, mode, name); err != nil {
				bad++
				log.Warn("invalid %s recipe: %v", mode, err)
			}
		}
		log.Debug("validated %d %s recipes", len(table.Names()), mode)
	}
	return bad
}

// Describe returns a short summary such as "12 cooking / 30 crafting".
func Describe(db domain.RecipeDatabase) string {
	return fmt.Sprintf("%d cooking / %d crafting",
		len(db.Table(domain.ModeCooking).Names()),
		len(db.Table(domain.ModeCrafting).Names()))
}
