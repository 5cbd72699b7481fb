package depgraph

import (
	"slices"
	"testing"
)

func TestFilter(t *testing.T) {
	pkgs := []Package{{1, "a"}, {2, "b"}, {3, "c"}}
	deps := []Dependency{
		{PackageID: 1, NeedsID: 2, Times: 5},
		{PackageID: 3, NeedsID: 3, Times: 1},
	}

	tests := []struct {
		name string
		pkgs []Package
		deps []Dependency
		opts Options
		want []int64
	}{
		{
			name: "NoPruning",
			pkgs: pkgs,
			deps: deps,
			want: []int64{1, 2, 3},
		},
		{
			name: "RemoveDisconnectedKeepsSelfEdge",
			pkgs: pkgs,
			deps: deps,
			opts: Options{RemoveDisconnected: true},
			// 3 only has a self-edge, but that still counts as connected.
			want: []int64{1, 2, 3},
		},
		{
			name: "RemoveDisconnectedDropsIsolated",
			pkgs: []Package{{1, "a"}, {2, "b"}, {4, "d"}},
			deps: []Dependency{{PackageID: 1, NeedsID: 2}},
			opts: Options{RemoveDisconnected: true},
			want: []int64{1, 2},
		},
		{
			name: "RemoveSelfImportOnly",
			pkgs: pkgs,
			deps: deps,
			opts: Options{RemoveSelfImportOnly: true},
			// 2 has no outgoing edge, 3 only imports itself; being imported
			// does not save 2.
			want: []int64{1},
		},
		{
			name: "BothFlags",
			pkgs: pkgs,
			deps: deps,
			opts: Options{RemoveDisconnected: true, RemoveSelfImportOnly: true},
			want: []int64{1},
		},
		{
			name: "Truncate",
			pkgs: pkgs,
			deps: deps,
			opts: Options{MaxNodes: 2},
			want: []int64{1, 2},
		},
		{
			name: "TruncateAfterPruning",
			pkgs: []Package{{4, "d"}, {1, "a"}, {2, "b"}},
			deps: []Dependency{{PackageID: 1, NeedsID: 2}},
			opts: Options{RemoveDisconnected: true, MaxNodes: 1},
			// 4 falls to pruning first, so the cap keeps 1, not 4.
			want: []int64{1},
		},
		{
			name: "MaxNodesLargerThanSet",
			pkgs: pkgs,
			deps: deps,
			opts: Options{MaxNodes: 10},
			want: []int64{1, 2, 3},
		},
		{
			name: "ZeroMaxNodesMeansUnlimited",
			pkgs: pkgs,
			deps: deps,
			opts: Options{MaxNodes: 0},
			want: []int64{1, 2, 3},
		},
		{
			name: "EmptyPackages",
			pkgs: nil,
			deps: deps,
			opts: Options{RemoveDisconnected: true},
			want: []int64{},
		},
		{
			name: "EmptyDependencies",
			pkgs: pkgs,
			deps: nil,
			opts: Options{RemoveDisconnected: true},
			want: []int64{},
		},
		{
			name: "DanglingEndpointsStillConnect",
			pkgs: []Package{{1, "a"}},
			deps: []Dependency{{PackageID: 1, NeedsID: 99}},
			opts: Options{RemoveDisconnected: true, RemoveSelfImportOnly: true},
			// 99 is unknown, yet the row proves 1 imports something else.
			want: []int64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.pkgs, tt.deps, tt.opts)

			ids := make([]int64, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("Filter() ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	pkgs := []Package{{3, "c"}, {1, "a"}, {2, "b"}}
	deps := []Dependency{
		{PackageID: 1, NeedsID: 2},
		{PackageID: 2, NeedsID: 3},
		{PackageID: 3, NeedsID: 1},
	}

	got := Filter(pkgs, deps, Options{RemoveDisconnected: true})

	want := []int64{3, 1, 2}
	for i, p := range got {
		if p.ID != want[i] {
			t.Fatalf("Filter() order = %v, want %v", got, want)
		}
	}
}

func TestFilterDoesNotMutateInputs(t *testing.T) {
	pkgs := []Package{{1, "a"}, {2, "b"}, {3, "c"}}
	deps := []Dependency{{PackageID: 1, NeedsID: 2}}

	Filter(pkgs, deps, Options{RemoveDisconnected: true, RemoveSelfImportOnly: true, MaxNodes: 1})

	if len(pkgs) != 3 || pkgs[0].ID != 1 || pkgs[2].ID != 3 {
		t.Errorf("input packages mutated: %v", pkgs)
	}
	if len(deps) != 1 || deps[0].PackageID != 1 {
		t.Errorf("input dependencies mutated: %v", deps)
	}
}
