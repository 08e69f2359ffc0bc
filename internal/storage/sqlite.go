// Package storage caches recipe tables in a local SQLite database so the
// checklist can start without the JSON data files.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/hammamikhairi/cooktrack/internal/domain"
	"github.com/hammamikhairi/cooktrack/internal/logger"
	"github.com/hammamikhairi/cooktrack/internal/recipe"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// RecipeStore persists raw recipe tables with their order.
type RecipeStore struct {
	db  *sql.DB
	log *logger.Logger
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string, log *logger.Logger) (*RecipeStore, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}

	log.Debug("opened recipe store %s", path)
	return &RecipeStore{db: db, log: log}, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS recipes (
			mode TEXT NOT NULL,
			ord INTEGER NOT NULL,
			name TEXT NOT NULL,
			raw TEXT NOT NULL,
			PRIMARY KEY (mode, name)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_recipes_mode_ord ON recipes(mode, ord);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database.
func (s *RecipeStore) Close() error {
	return s.db.Close()
}

// Import replaces the stored tables with the contents of src, keeping
// each table's order.
func (s *RecipeStore) Import(ctx context.Context, src domain.RecipeDatabase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM recipes`); err != nil {
		return fmt.Errorf("failed to clear recipes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO recipes (mode, ord, name, raw) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	total := 0
	for _, mode := range []domain.Mode{domain.ModeCooking, domain.ModeCrafting} {
		table := src.Table(mode)
		for i, name := range table.Names() {
			raw, _ := table.Raw(name)
			if _, err := stmt.ExecContext(ctx, mode.String(), i, name, raw); err != nil {
				return fmt.Errorf("failed to insert %s recipe %q: %w", mode, name, err)
			}
			total++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	s.log.Info("imported %d recipes", total)
	return nil
}

// Load reads both tables back into an in-memory database. An empty store
// returns domain.ErrNotFound.
func (s *RecipeStore) Load(ctx context.Context) (*recipe.Database, error) {
	cooking, err := s.loadTable(ctx, domain.ModeCooking)
	if err != nil {
		return nil, err
	}
	crafting, err := s.loadTable(ctx, domain.ModeCrafting)
	if err != nil {
		return nil, err
	}
	if cooking.Len() == 0 && crafting.Len() == 0 {
		return nil, fmt.Errorf("recipe store: %w", domain.ErrNotFound)
	}
	s.log.Debug("loaded %d cooking / %d crafting recipes from store", cooking.Len(), crafting.Len())
	return recipe.NewDatabase(cooking, crafting), nil
}

// Count returns the number of stored recipes of a mode.
func (s *RecipeStore) Count(ctx context.Context, mode domain.Mode) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes WHERE mode = ?`, mode.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s recipes: %w", mode, err)
	}
	return n, nil
}

func (s *RecipeStore) loadTable(ctx context.Context, mode domain.Mode) (*recipe.Table, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, raw FROM recipes WHERE mode = ? ORDER BY ord ASC`, mode.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query %s recipes: %w", mode, err)
	}
	defer rows.Close()

	var entries []recipe.Entry
	for rows.Next() {
		var e recipe.Entry
		if err := rows.Scan(&e.Name, &e.Raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s recipe: %w", mode, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return recipe.NewTable(entries...), nil
}
