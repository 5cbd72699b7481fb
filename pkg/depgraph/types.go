package depgraph

// Package is one row of the package table. ID is unique and stable; Name is
// a display label only and carries no uniqueness guarantee.
type Package struct {
	ID   int64
	Name string
}

// Dependency records that PackageID requires NeedsID, observed Times times.
// Rows whose endpoints reference no known package are tolerated; they are
// silently skipped at edge emission. Duplicate (PackageID, NeedsID) rows are
// treated as independent edges.
type Dependency struct {
	PackageID int64 // the dependent package
	NeedsID   int64 // the package it requires
	Times     int64 // occurrence count; read from the store, never emitted
}

// IsSelf reports whether the dependency points back at its own package.
func (d Dependency) IsSelf() bool { return d.PackageID == d.NeedsID }

// Options controls node pruning and truncation in [Filter].
type Options struct {
	// MaxNodes caps the node count after pruning. Zero or negative means
	// unlimited.
	MaxNodes int

	// RemoveDisconnected drops packages that appear in no dependency row at
	// all, on either side. A self-dependency counts as connected.
	RemoveDisconnected bool

	// RemoveSelfImportOnly drops packages without at least one outgoing
	// dependency on a different package. Only outgoing edges count: a
	// package that is depended upon but requires nothing (or only itself)
	// is still dropped.
	RemoveSelfImportOnly bool
}
