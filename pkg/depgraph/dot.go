package depgraph

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// GraphName is the name of the emitted digraph. Downstream tooling keys on
// it, so it is fixed rather than configurable.
const GraphName = "python_package_dependencies"

// Write serializes nodes and the surviving subset of deps as a directed
// graph in DOT syntax.
//
// Node statements come first, in the order of nodes; edge statements follow
// in the order of deps. An edge is emitted only when both of its endpoints
// are in nodes, and it points from the required package to the requiring
// one (needs -> package). Edges are neither deduplicated nor weighted:
// Dependency.Times is not part of the output.
//
// Node labels are written verbatim. A package name containing a double
// quote therefore produces DOT that strict parsers reject; this matches the
// established output byte for byte and is deliberately not escaped here.
func Write(w io.Writer, nodes []Package, deps []Dependency) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "digraph %s {\n", GraphName)

	// Node ids go into a set once so that edge endpoint checks stay O(1)
	// even against millions of dependency rows.
	ids := make(map[int64]struct{}, len(nodes))
	for _, n := range nodes {
		fmt.Fprintf(bw, "%d [shape=point, label=\"%s\"];\n", n.ID, n.Name)
		ids[n.ID] = struct{}{}
	}

	for _, d := range deps {
		if _, ok := ids[d.NeedsID]; !ok {
			continue
		}
		if _, ok := ids[d.PackageID]; !ok {
			continue
		}
		fmt.Fprintf(bw, "%d -> %d;\n", d.NeedsID, d.PackageID)
	}

	fmt.Fprint(bw, "}")

	// bufio keeps the first write error sticky, so flushing surfaces it.
	return bw.Flush()
}

// WriteFile writes the graph to path, creating or truncating the file.
// The file is closed on every path; a failed write leaves whatever the
// underlying writes produced, there is no cleanup.
func WriteFile(path string, nodes []Package, deps []Dependency) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, nodes, deps); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
