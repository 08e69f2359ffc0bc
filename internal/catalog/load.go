package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/cooktrack/internal/logger"
)

// File names inside a content directory. Categories is optional.
const (
	ObjectsFile       = "Objects.json"
	BigCraftablesFile = "BigCraftables.json"
	CategoriesFile    = "Categories.json"
)

// ParseObjects adds every entry of an Objects.json document:
//
//	{"246": {"Name": "Wheat Flour", "DisplayName": "Wheat Flour", "Category": -25}}
func (c *Catalog) ParseObjects(data []byte) error {
	return eachEntry(data, func(id string, v gjson.Result) {
		c.AddObject(id, v.Get("Name").String(), v.Get("DisplayName").String(), int(v.Get("Category").Int()))
	})
}

// ParseBigCraftables adds every entry of a BigCraftables.json document.
func (c *Catalog) ParseBigCraftables(data []byte) error {
	return eachEntry(data, func(id string, v gjson.Result) {
		c.AddBigCraftable(id, v.Get("Name").String(), v.Get("DisplayName").String())
	})
}

// ParseCategories applies a {"-75": "Vegetable"} document over the defaults.
func (c *Catalog) ParseCategories(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid JSON")
	}
	var err error
	gjson.ParseBytes(data).ForEach(func(k, v gjson.Result) bool {
		n, convErr := strconv.Atoi(k.String())
		if convErr != nil {
			err = fmt.Errorf("category key %q is not a number", k.String())
			return false
		}
		c.SetCategory(n, v.String())
		return true
	})
	return err
}

func eachEntry(data []byte, fn func(id string, v gjson.Result)) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return errors.New("item data must be a JSON object")
	}
	var err error
	root.ForEach(func(k, v gjson.Result) bool {
		if !v.IsObject() {
			err = fmt.Errorf("item %q: entry must be an object", k.String())
			return false
		}
		fn(k.String(), v)
		return true
	})
	return err
}

// LoadDir builds a catalog from a content directory.
func LoadDir(dir string, log *logger.Logger) (*Catalog, error) {
	c := New()

	steps := []struct {
		file     string
		parse    func([]byte) error
		optional bool
	}{
		{ObjectsFile, c.ParseObjects, false},
		{BigCraftablesFile, c.ParseBigCraftables, false},
		{CategoriesFile, c.ParseCategories, true},
	}
	for _, s := range steps {
		path := filepath.Join(dir, s.file)
		data, err := os.ReadFile(path)
		if err != nil {
			if s.optional && errors.Is(err, os.ErrNotExist) {
				log.Debug("no %s, using default categories", s.file)
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := s.parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	log.Info("loaded %d items from %s", c.Len(), dir)
	return c, nil
}
