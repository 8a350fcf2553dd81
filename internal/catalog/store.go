// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog indexes the generated variable-font records in SQLite so
// they can be queried by axis.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/fontgen/pkg/types"
)

// Store manages the catalog SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the catalog at path, creating the parent
// directory and the schema if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS fonts (
			id TEXT PRIMARY KEY,
			family TEXT NOT NULL,
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS axes (
			font_id TEXT NOT NULL REFERENCES fonts(id) ON DELETE CASCADE,
			tag TEXT NOT NULL,
			min_value TEXT NOT NULL,
			max_value TEXT NOT NULL,
			step TEXT NOT NULL,
			default_value TEXT NOT NULL,
			PRIMARY KEY (font_id, tag)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_axes_tag ON axes(tag)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Replace swaps the catalog contents for fonts in a single transaction.
// Fonts sharing an id keep the first occurrence.
func (s *Store) Replace(ctx context.Context, fonts []types.VariableFont) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM axes`); err != nil {
		return fmt.Errorf("clearing axes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM fonts`); err != nil {
		return fmt.Errorf("clearing fonts: %w", err)
	}

	for i, f := range fonts {
		res, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO fonts (id, family, position) VALUES (?, ?, ?)`,
			f.ID, f.Family, i)
		if err != nil {
			return fmt.Errorf("inserting font %s: %w", f.ID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			continue
		}
		for tag, a := range f.Axes {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO axes (font_id, tag, min_value, max_value, step, default_value) VALUES (?, ?, ?, ?, ?, ?)`,
				f.ID, tag, a.Min, a.Max, a.Step, a.Default); err != nil {
				return fmt.Errorf("inserting axis %s/%s: %w", f.ID, tag, err)
			}
		}
	}

	return tx.Commit()
}

// All returns every font in output order.
func (s *Store) All(ctx context.Context) ([]types.VariableFont, error) {
	return s.query(ctx, `SELECT id, family FROM fonts ORDER BY position`)
}

// ByAxis returns the fonts that have an axis tagged tag, in output order.
func (s *Store) ByAxis(ctx context.Context, tag string) ([]types.VariableFont, error) {
	return s.query(ctx, `SELECT f.id, f.family FROM fonts f
		JOIN axes a ON a.font_id = f.id
		WHERE a.tag = ?
		ORDER BY f.position`, tag)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]types.VariableFont, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying fonts: %w", err)
	}

	var fonts []types.VariableFont
	for rows.Next() {
		var f types.VariableFont
		if err := rows.Scan(&f.ID, &f.Family); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning font: %w", err)
		}
		fonts = append(fonts, f)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range fonts {
		axes, err := s.axes(ctx, fonts[i].ID)
		if err != nil {
			return nil, err
		}
		fonts[i].Axes = axes
	}
	return fonts, nil
}

func (s *Store) axes(ctx context.Context, fontID string) (map[string]types.AxisRange, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag, min_value, max_value, step, default_value FROM axes WHERE font_id = ?`, fontID)
	if err != nil {
		return nil, fmt.Errorf("querying axes for %s: %w", fontID, err)
	}
	defer rows.Close()

	axes := make(map[string]types.AxisRange)
	for rows.Next() {
		var (
			tag string
			a   types.AxisRange
		)
		if err := rows.Scan(&tag, &a.Min, &a.Max, &a.Step, &a.Default); err != nil {
			return nil, fmt.Errorf("scanning axis: %w", err)
		}
		axes[tag] = a
	}
	return axes, rows.Err()
}
