// cooktrack is a checklist of the cooking and crafting recipes a player has
// not made yet, with the ingredients still missing.
//
// Usage:
//
//	cooktrack [-data dir] [-save file] [-db file] [-verbose] [-quiet]
//	cooktrack -print cooking|crafting
//	cooktrack -made "Recipe Name"
//	cooktrack -import-db recipes.db
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/cooktrack/internal/catalog"
	"github.com/hammamikhairi/cooktrack/internal/config"
	"github.com/hammamikhairi/cooktrack/internal/display"
	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/engine"
	"github.com/hammamikhairi/cooktrack/internal/gamestate"
	"github.com/hammamikhairi/cooktrack/internal/i18n"
	"github.com/hammamikhairi/cooktrack/internal/logger"
	"github.com/hammamikhairi/cooktrack/internal/recipe"
	"github.com/hammamikhairi/cooktrack/internal/storage"
)

func main() {
	cfg := config.Load()
	cfg.RegisterFlags(flag.CommandLine)

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".cooktrack-logs/cooktrack.log", "file to write logs to (use \"stderr\" to log to console)")
	printMode := flag.String("print", "", "print the cooking or crafting checklist and exit")
	made := flag.String("made", "", "print how often a recipe has been made and exit")
	importDB := flag.String("import-db", "", "import the JSON recipe tables into a SQLite file and exit")
	page := flag.String("page", "none", "host page the UI starts on (none, cooking, crafting)")
	wheel := flag.Int("wheel-step", 1, "rows scrolled per mouse wheel notch")
	flag.Parse()

	// Headless commands log to stderr; the UI logs to a file so the
	// screen stays clean.
	headless := *printMode != "" || *made != "" || *importDB != ""
	logOut, closeLog := openLog(*logFile, headless)
	defer closeLog()
	log := logger.New(logger.ParseLevel(*verbose, *quiet), logOut)

	ctx := context.Background()

	if *importDB != "" {
		if err := runImport(ctx, cfg, *importDB, log); err != nil {
			fatal(err)
		}
		return
	}

	tr, err := i18n.New(cfg.Lang)
	if err != nil {
		log.Warn("%v", err)
	}

	recipes, err := loadRecipes(ctx, cfg, log)
	if err != nil {
		fatal(err)
	}
	if bad := recipe.Validate(recipes, log); bad > 0 {
		log.Warn("%d recipes have invalid records and will be skipped or listed without ingredients", bad)
	}

	items, err := catalog.LoadDir(cfg.DataDir, log)
	if err != nil {
		fatal(err)
	}
	state, err := gamestate.LoadFile(cfg.SavePath, log)
	if err != nil {
		fatal(err)
	}

	eng := engine.New(recipes, items, state, state, tr, log,
		engine.WithCategoryMatching(cfg.MatchCategories),
	)

	switch {
	case *printMode != "":
		mode, err := domain.ParseMode(*printMode)
		if err != nil {
			fatal(err)
		}
		snap, err := eng.Compute(mode)
		if err != nil {
			fatal(err)
		}
		fmt.Print(display.PlainText(snap, tr, 80))

	case *made != "":
		if err := printMadeCount(os.Stdout, eng, tr, *made); err != nil {
			fatal(err)
		}

	default:
		ui := display.NewUI(engine.NewChecklist(eng), tr, log,
			display.WithKeys(cfg.OpenKey, cfg.MenuKey),
			display.WithWheelStep(*wheel),
			display.WithStartPage(domain.PageFromString(*page)),
		)
		if err := ui.Run(); err != nil {
			fatal(err)
		}
	}
}

// loadRecipes reads the SQLite cache when one is configured, else the
// JSON tables.
func loadRecipes(ctx context.Context, cfg config.Config, log *logger.Logger) (*recipe.Database, error) {
	if cfg.DBPath == "" {
		return recipe.LoadDir(cfg.DataDir, log)
	}
	store, err := storage.Open(cfg.DBPath, log)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	db, err := store.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%s is empty, run with -import-db first: %w", cfg.DBPath, err)
	}
	return db, err
}

func runImport(ctx context.Context, cfg config.Config, path string, log *logger.Logger) error {
	src, err := recipe.LoadDir(cfg.DataDir, log)
	if err != nil {
		return err
	}
	store, err := storage.Open(path, log)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Import(ctx, src); err != nil {
		return err
	}
	fmt.Printf("imported %s into %s\n", recipe.Describe(src), path)
	return nil
}

// printMadeCount looks a recipe up in both tables and prints its made
// count. Unknown names get a spelling suggestion.
func printMadeCount(w io.Writer, eng *engine.Engine, tr *i18n.Translator, query string) error {
	var all []string
	for _, mode := range []domain.Mode{domain.ModeCooking, domain.ModeCrafting} {
		names := eng.RecipeNames(mode)
		all = append(all, names...)

		name, ok := recipe.Find(names, query)
		if !ok {
			continue
		}
		n, err := eng.MadeCount(mode, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s (%s): %s\n", name, mode, tr.MadeCount(n))
		return nil
	}

	if s := recipe.Suggest(all, query); s != "" {
		return fmt.Errorf("unknown recipe %q, did you mean %q?: %w", query, s, domain.ErrRecipeNotFound)
	}
	return fmt.Errorf("unknown recipe %q: %w", query, domain.ErrRecipeNotFound)
}

func openLog(path string, headless bool) (io.Writer, func()) {
	if headless || path == "" || path == "stderr" {
		return os.Stderr, func() {}
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", path, err)
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
