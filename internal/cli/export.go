package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgviz/depdot/pkg/depgraph"
	"github.com/pkgviz/depdot/pkg/store"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	db             string // SQLite snapshot path
	file           string // destination dotfile
	maxNodes       int    // node cap, 0 = unlimited
	removeNoEdge   bool   // drop packages without any edge
	removeSelfOnly bool   // drop packages that only import themselves
	configPath     string // explicit config file, empty = depdot.toml if present
}

// exportCommand creates the export command, the one real operation of the
// tool.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dependency graph as a Graphviz dotfile",
		Long: `Write the dependency graph as a Graphviz dotfile.

The command reads all packages and dependency rows from the snapshot
database, optionally prunes the package set, caps it to a maximum node
count, and writes a directed graph in DOT syntax. The destination file is
fully overwritten on each run.

Examples:
  depdot export                          # everything, into graphviz.dot
  depdot export -r -n 1000               # 1000 connected packages
  depdot export -s -f pruned.dot         # drop self-importers, custom file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, &opts); err != nil {
				return err
			}
			return c.runExport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.db, "db", "pypi.db", "SQLite snapshot to read")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "graphviz.dot", "write dotfile to FILE")
	cmd.Flags().IntVarP(&opts.maxNodes, "nodes", "n", 0, "how many nodes the graph will have (0 = all)")
	cmd.Flags().BoolVarP(&opts.removeNoEdge, "remove", "r", false, "remove packages which are not imported and do not import")
	cmd.Flags().BoolVarP(&opts.removeSelfOnly, "remove_selfimport_only", "s", false, "remove packages which only import themselves")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file with flag defaults (default "+defaultConfigFile+" if present)")

	return cmd
}

// applyConfig merges config file values into opts for flags the user did
// not set explicitly.
func applyConfig(cmd *cobra.Command, opts *exportOpts) error {
	path := opts.configPath
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		path = defaultConfigFile
	}

	cfg, err := loadConfig(path, explicit)
	if err != nil || cfg == nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Database != "" && !flags.Changed("db") {
		opts.db = cfg.Database
	}
	if cfg.File != "" && !flags.Changed("file") {
		opts.file = cfg.File
	}
	if cfg.MaxNodes > 0 && !flags.Changed("nodes") {
		opts.maxNodes = cfg.MaxNodes
	}
	if cfg.RemoveDisconnected && !flags.Changed("remove") {
		opts.removeNoEdge = true
	}
	if cfg.RemoveSelfImportOnly && !flags.Changed("remove_selfimport_only") {
		opts.removeSelfOnly = true
	}
	return nil
}

// runExport executes one batch run: fetch, filter, write.
func (c *CLI) runExport(ctx context.Context, opts exportOpts) error {
	logger := loggerFromContext(ctx)

	logger.Info("Start fetching data from database...")
	spinner := newSpinnerWithContext(ctx, "Fetching snapshot...")
	spinner.Start()

	st, err := store.Open(ctx, opts.db)
	if err != nil {
		spinner.StopWithError("Snapshot unavailable")
		return err
	}
	defer st.Close()

	pkgs, err := st.Packages(ctx)
	if err != nil {
		spinner.StopWithError("Fetching packages failed")
		return err
	}
	deps, err := st.Dependencies(ctx)
	if err != nil {
		spinner.StopWithError("Fetching dependencies failed")
		return err
	}
	spinner.Stop()
	logger.Infof("Loaded %d packages and %d dependency rows", len(pkgs), len(deps))

	nodes := depgraph.Filter(pkgs, deps, depgraph.Options{
		MaxNodes:             opts.maxNodes,
		RemoveDisconnected:   opts.removeNoEdge,
		RemoveSelfImportOnly: opts.removeSelfOnly,
	})
	if len(nodes) < len(pkgs) {
		logger.Infof("%d of %d packages remaining after filtering", len(nodes), len(pkgs))
	}

	prog := newProgress(logger)
	logger.Info("Start writing graphviz file...")
	if err := depgraph.WriteFile(opts.file, nodes, deps); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %s", opts.file))

	printSuccess("Exported %d nodes", len(nodes))
	printFile(opts.file)
	return nil
}
