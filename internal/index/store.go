// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index maintains a SQLite full-text index of converted maps,
// so nodes can be searched across the whole collection.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/classydev100/react-mindmap/pkg/types"
)

const dbFile = "maps.db"

// Store manages the node index SQLite database.
type Store struct {
	db         *sql.DB
	indexDir   string
	maxResults int
}

// NewStore opens or creates the index database at indexDir/maps.db,
// creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.IndexDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(cfg.IndexDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		indexDir:   cfg.IndexDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS maps (
			path TEXT PRIMARY KEY,
			title TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS nodes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			map_path TEXT NOT NULL REFERENCES maps(path),
			kind TEXT NOT NULL,
			text TEXT NOT NULL,
			category TEXT,
			url TEXT,
			parent TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_map_path ON nodes(map_path)`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_category ON nodes(category)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			map_path TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='nodes_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE nodes_fts USING fts5(text, content=nodes, content_rowid=rowid)`,
			`CREATE TRIGGER nodes_ai AFTER INSERT ON nodes BEGIN
				INSERT INTO nodes_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
			`CREATE TRIGGER nodes_ad AFTER DELETE ON nodes BEGIN
				INSERT INTO nodes_fts(nodes_fts, rowid, text) VALUES('delete', old.rowid, old.text);
			END`,
			`CREATE TRIGGER nodes_au AFTER UPDATE ON nodes BEGIN
				INSERT INTO nodes_fts(nodes_fts, rowid, text) VALUES('delete', old.rowid, old.text);
				INSERT INTO nodes_fts(rowid, text) VALUES (new.rowid, new.text);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an index build run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of maps processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest walks mapsDir for converted map JSON files and populates the
// database. New, changed, and unchanged files are detected by mod time
// for incremental rebuilds.
func (s *Store) Ingest(ctx context.Context, mapsDir string, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	err := filepath.WalkDir(mapsDir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, err := filepath.Rel(mapsDir, p)
		if err != nil {
			return err
		}
		mapPath := filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapPath, err)
			summary.Failed++
			return nil
		}
		modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

		// Skip files unchanged since the last build.
		var storedModTime string
		err = s.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM indexing_status WHERE map_path = ?`, mapPath,
		).Scan(&storedModTime)

		if err == nil && storedModTime == modTime {
			fmt.Fprintf(w, "skipped %s\n", mapPath)
			summary.Skipped++
			return nil
		}

		isUpdate := err == nil

		data, err := os.ReadFile(p)
		if err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapPath, err)
			summary.Failed++
			return nil
		}

		var m types.Map
		if err := json.Unmarshal(data, &m); err != nil {
			fmt.Fprintf(w, "failed  %s: parse error: %v\n", mapPath, err)
			summary.Failed++
			return nil
		}

		if err := s.ingestMap(ctx, mapPath, &m, modTime, isUpdate); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", mapPath, err)
			summary.Failed++
			return nil
		}

		count := len(m.Nodes) + len(m.Subnodes)
		if isUpdate {
			fmt.Fprintf(w, "updated %s (%d nodes)\n", mapPath, count)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "indexed %s (%d nodes)\n", mapPath, count)
			summary.Indexed++
		}
		return nil
	})
	if err != nil {
		return summary, fmt.Errorf("walking %s: %w", mapsDir, err)
	}

	fmt.Fprintf(w, "\nindexed: %d, updated: %d, skipped: %d, failed: %d\n",
		summary.Indexed, summary.Updated, summary.Skipped, summary.Failed)

	return summary, nil
}

func (s *Store) ingestMap(ctx context.Context, mapPath string, m *types.Map, modTime string, isUpdate bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if isUpdate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM nodes WHERE map_path = ?`, mapPath); err != nil {
			return fmt.Errorf("deleting old nodes: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO maps (path, title) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET title=excluded.title`,
		mapPath, m.Title,
	); err != nil {
		return fmt.Errorf("upserting map: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO nodes (map_path, kind, text, category, url, parent)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	insert := func(kind string, n types.Node, parent string) error {
		url := ""
		if n.URL != nil {
			url = *n.URL
		}
		_, err := stmt.ExecContext(ctx, mapPath, kind, n.Text, n.Category, url, parent)
		return err
	}

	for _, n := range m.Nodes {
		if err := insert("node", n, ""); err != nil {
			return fmt.Errorf("inserting node %q: %w", n.Text, err)
		}
	}
	for _, sub := range m.Subnodes {
		if err := insert("subnode", sub.Node, sub.Parent); err != nil {
			return fmt.Errorf("inserting subnode %q: %w", sub.Text, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO indexing_status (map_path, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(map_path) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		mapPath, modTime,
	); err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}

	return tx.Commit()
}
