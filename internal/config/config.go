// Package config resolves cooktrack settings from .env files, environment
// variables, and command-line flags, in increasing priority.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvDataDir         = "COOKTRACK_DATA_DIR"
	EnvSave            = "COOKTRACK_SAVE"
	EnvDB              = "COOKTRACK_DB"
	EnvOpenKey         = "COOKTRACK_OPEN_KEY"
	EnvMenuKey         = "COOKTRACK_MENU_KEY"
	EnvLang            = "COOKTRACK_LANG"
	EnvMatchCategories = "COOKTRACK_MATCH_CATEGORIES"
)

// Config holds every persisted setting.
type Config struct {
	DataDir         string
	SavePath        string
	DBPath          string
	OpenKey         string
	MenuKey         string
	Lang            string
	MatchCategories bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:  "data",
		SavePath: filepath.Join("data", "save.json"),
		OpenKey:  "r",
		MenuKey:  "e",
		Lang:     "en",
	}
}

// Load reads an optional .env file and applies the environment on top of
// the defaults. A missing .env file is not an error.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv applies variables from getenv on top of the defaults. Empty
// values keep the default.
func FromEnv(getenv func(string) string) Config {
	c := Default()
	if v := getenv(EnvDataDir); v != "" {
		c.DataDir = v
		c.SavePath = filepath.Join(v, "save.json")
	}
	setString(&c.SavePath, getenv(EnvSave))
	setString(&c.DBPath, getenv(EnvDB))
	setString(&c.OpenKey, getenv(EnvOpenKey))
	setString(&c.MenuKey, getenv(EnvMenuKey))
	setString(&c.Lang, getenv(EnvLang))
	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(EnvMatchCategories))); err == nil {
		c.MatchCategories = v
	}
	return c
}

// RegisterFlags binds c's fields to flags on fs, using c's current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.DataDir, "data", c.DataDir, "directory holding the recipe and item JSON files")
	fs.StringVar(&c.SavePath, "save", c.SavePath, "player save file")
	fs.StringVar(&c.DBPath, "db", c.DBPath, "SQLite recipe cache to load recipes from (empty reads JSON)")
	fs.StringVar(&c.OpenKey, "open-key", c.OpenKey, "key that opens the checklist")
	fs.StringVar(&c.MenuKey, "menu-key", c.MenuKey, "key that closes the checklist")
	fs.StringVar(&c.Lang, "lang", c.Lang, "label language (en, fr, es)")
	fs.BoolVar(&c.MatchCategories, "match-categories", c.MatchCategories, "count stored items toward any-in-category ingredients")
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}
