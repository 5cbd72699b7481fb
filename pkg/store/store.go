// Package store reads packages and dependency rows from a crawled SQLite
// snapshot.
//
// The store is a read-only collaborator: two schema-stable queries, no
// pagination, no filtering pushed down. All pruning happens downstream in
// pkg/depgraph. Failures are wrapped with the failed operation and
// propagated unmodified; the store never retries.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/pkgviz/depdot/pkg/depgraph"
)

// Store is an open handle on the package snapshot database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at path in read-only mode and verifies the
// connection. Opening a path that does not exist fails instead of creating
// an empty database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Packages returns all package rows in database order.
func (s *Store) Packages(ctx context.Context) ([]depgraph.Package, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT `id`, `name` FROM `packages`")
	if err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var pkgs []depgraph.Package
	for rows.Next() {
		var p depgraph.Package
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan package: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query packages: %w", err)
	}
	return pkgs, nil
}

// Dependencies returns all dependency rows in database order.
func (s *Store) Dependencies(ctx context.Context) ([]depgraph.Dependency, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT `package`, `needs_package`, `times` FROM `dependencies`")
	if err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	defer rows.Close()

	var deps []depgraph.Dependency
	for rows.Next() {
		var d depgraph.Dependency
		if err := rows.Scan(&d.PackageID, &d.NeedsID, &d.Times); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	return deps, nil
}
