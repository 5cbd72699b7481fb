// Package depgraph turns a flat record set of packages and their pairwise
// dependency counts into a Graphviz DOT description.
//
// The package is the pure core of depdot: it knows nothing about where the
// records come from or where the output goes. [Filter] derives the final
// node set from the raw package list, [Write] and [WriteFile] serialize
// nodes and surviving edges.
//
// # Pipeline
//
//	pkgs, _ := store.Packages(ctx)
//	deps, _ := store.Dependencies(ctx)
//	nodes := depgraph.Filter(pkgs, deps, depgraph.Options{RemoveDisconnected: true})
//	err := depgraph.WriteFile("graphviz.dot", nodes, deps)
//
// Both steps are single-pass and side-effect free apart from the final file
// write; inputs are never mutated.
package depgraph
