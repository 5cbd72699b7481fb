package depgraph

// Filter derives the final node set from pkgs according to opts.
//
// Pruning modes compose in a fixed order: the connectivity pass first, the
// self-import pass second. Both consult the full, unfiltered dependency
// list. Truncation to MaxNodes happens last. Input order is preserved
// throughout; pkgs and deps are not modified.
func Filter(pkgs []Package, deps []Dependency, opts Options) []Package {
	if opts.RemoveDisconnected || opts.RemoveSelfImportOnly {
		pkgs = keepConnected(pkgs, deps)
	}
	if opts.RemoveSelfImportOnly {
		pkgs = keepImporters(pkgs, deps)
	}
	if opts.MaxNodes > 0 && len(pkgs) > opts.MaxNodes {
		pkgs = pkgs[:opts.MaxNodes]
	}
	return pkgs
}

// keepConnected retains packages that appear on either side of at least one
// dependency row. Self-dependencies count.
func keepConnected(pkgs []Package, deps []Dependency) []Package {
	connected := make(map[int64]struct{}, len(deps))
	for _, d := range deps {
		connected[d.PackageID] = struct{}{}
		connected[d.NeedsID] = struct{}{}
	}

	kept := make([]Package, 0, len(pkgs))
	for _, p := range pkgs {
		if _, ok := connected[p.ID]; ok {
			kept = append(kept, p)
		}
	}
	return kept
}

// keepImporters retains packages with at least one outgoing dependency on a
// different package. Incoming edges do not save a package.
func keepImporters(pkgs []Package, deps []Dependency) []Package {
	importers := make(map[int64]struct{}, len(pkgs))
	for _, d := range deps {
		if !d.IsSelf() {
			importers[d.PackageID] = struct{}{}
		}
	}

	kept := make([]Package, 0, len(pkgs))
	for _, p := range pkgs {
		if _, ok := importers[p.ID]; ok {
			kept = append(kept, p)
		}
	}
	return kept
}
