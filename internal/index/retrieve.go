// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// QueryOptions holds parameters for node index queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over node text.
	Query string

	// Category filters by taxonomy label (e.g. "video", "paper").
	Category string

	// MapPath filters by the converted map's relative path.
	MapPath string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Category == "" && q.MapPath == ""
}

// QueryResult is one indexed node with its map context.
type QueryResult struct {
	Text     string `json:"text" yaml:"text"`
	Kind     string `json:"kind" yaml:"kind"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	Parent   string `json:"parent,omitempty" yaml:"parent,omitempty"`
	MapPath  string `json:"map_path" yaml:"map_path"`
	MapTitle string `json:"map_title" yaml:"map_title"`
}

// Search queries the index with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// filter-only queries are sorted by map path and insertion order.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT n.text, n.kind, n.category, n.url, n.parent, n.map_path, m.title
			FROM nodes_fts
			JOIN nodes n ON n.rowid = nodes_fts.rowid
			LEFT JOIN maps m ON n.map_path = m.path
			WHERE nodes_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT n.text, n.kind, n.category, n.url, n.parent, n.map_path, m.title
			FROM nodes n
			LEFT JOIN maps m ON n.map_path = m.path
			WHERE 1=1`)
	}

	if opts.Category != "" {
		qb.WriteString(` AND n.category = ?`)
		args = append(args, opts.Category)
	}

	if opts.MapPath != "" {
		qb.WriteString(` AND n.map_path = ?`)
		args = append(args, opts.MapPath)
	}

	if useFTS {
		qb.WriteString(` ORDER BY nodes_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY n.map_path, n.rowid`)
	}
	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			r        QueryResult
			category sql.NullString
			url      sql.NullString
			parent   sql.NullString
			title    sql.NullString
		)
		if err := rows.Scan(&r.Text, &r.Kind, &category, &url, &parent, &r.MapPath, &title); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		r.Category = category.String
		r.URL = url.String
		r.Parent = parent.String
		r.MapTitle = title.String
		results = append(results, r)
	}
	return results, rows.Err()
}

const exportLimit = 100000

// ExportYAML writes the index (or a filtered subset) to export.yaml
// beside the database.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) error {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.yaml"), data, 0o644)
}

// ExportJSON writes the index (or a filtered subset) to export.json
// beside the database.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) error {
	results, err := s.exportResults(ctx, opts)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(filepath.Join(s.indexDir, "export.json"), data, 0o644)
}

func (s *Store) exportResults(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	opts.MaxResults = exportLimit
	results, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return results, nil
}
