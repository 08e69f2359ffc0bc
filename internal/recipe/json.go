package recipe

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/cooktrack/internal/logger"
)

// File names of the two tables inside a content directory.
const (
	CookingFile  = "CookingRecipes.json"
	CraftingFile = "CraftingRecipes.json"
)

// ParseTableJSON reads a JSON object of name -> raw record. Document order
// becomes the table order, matching how the host enumerates its data.
func ParseTableJSON(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.New("recipe table must be a JSON object")
	}

	t := NewTable()
	var err error
	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.String {
			err = fmt.Errorf("recipe %q: record must be a string", key.String())
			return false
		}
		t.put(key.String(), value.String())
		return true
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTableFile reads one table from disk.
func LoadTableFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := ParseTableJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

// LoadDir reads both tables from a content directory.
func LoadDir(dir string, log *logger.Logger) (*Database, error) {
	cooking, err := LoadTableFile(filepath.Join(dir, CookingFile))
	if err != nil {
		return nil, err
	}
	crafting, err := LoadTableFile(filepath.Join(dir, CraftingFile))
	if err != nil {
		return nil, err
	}
	db := NewDatabase(cooking, crafting)
	log.Info("loaded recipes from %s (%s)", dir, Describe(db))
	return db, nil
}
