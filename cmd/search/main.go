// Command search finds shortest paths between two pages in a Wikipedia
// link graph built by cmd/buildgraph.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arvasato/wikipath/bfs"
	"github.com/arvasato/wikipath/dag"
	"github.com/arvasato/wikipath/graphfile"
	"github.com/arvasato/wikipath/wikisearch"
)

var (
	flagRandom     bool
	flagSkip       int64
	flagMax        int64
	flagOrder      string
	flagEnumerate  string
	flagLockPolicy string

	rootCmd = &cobra.Command{
		Use:   "search <graph-file> <start> <finish>",
		Short: "Find shortest paths through a Wikipedia link graph",
		Long: `Searches for the shortest path between two pages, printed with the
classic bidirectional search and without building the full DAG of all
shortest paths. For DAG-based output, use one of the subcommands:
count, path, paths, edges, dot.

<start> and <finish> are each either a page title, "#<id>" for a numeric
page id, or "?" for a randomly selected page.`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runClassic,
	}

	countCmd = &cobra.Command{
		Use:   "count <graph-file> <start> <finish>",
		Short: "Print the number of distinct shortest paths",
		Args:  cobra.ExactArgs(3),
		RunE:  runCount,
	}

	pathCmd = &cobra.Command{
		Use:   "path <graph-file> <start> <finish>",
		Short: "Print a single shortest path, via the DAG algorithm",
		Args:  cobra.ExactArgs(3),
		RunE:  runPath,
	}

	pathsCmd = &cobra.Command{
		Use:   "paths <graph-file> <start> <finish>",
		Short: "Print all shortest paths, one per line",
		Args:  cobra.ExactArgs(3),
		RunE:  runPaths,
	}

	edgesCmd = &cobra.Command{
		Use:   "edges <graph-file> <start> <finish>",
		Short: "Print the edges of the shortest-path DAG, one per line",
		Args:  cobra.ExactArgs(3),
		RunE:  runEdges,
	}

	dotCmd = &cobra.Command{
		Use:   "dot <graph-file> <start> <finish>",
		Short: "Print the shortest-path DAG in GraphViz DOT format",
		Args:  cobra.ExactArgs(3),
		RunE:  runDot,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLockPolicy, "lock", "none", `memory lock policy: "none", "foreground", "background", or "populate"`)

	pathCmd.Flags().BoolVar(&flagRandom, "random", false, "select a path uniformly at random")
	for _, c := range []*cobra.Command{pathCmd, pathsCmd} {
		c.Flags().StringVar(&flagOrder, "order", "id", `path ordering: "id", "title", or "text"`)
		c.Flags().StringVar(&flagEnumerate, "enumerate", "recursive", `enumeration method: "recursive" or "iterative"`)
	}
	pathsCmd.Flags().Int64Var(&flagSkip, "skip", 0, "skip the first N paths")
	pathsCmd.Flags().Int64Var(&flagMax, "max", -1, "print at most N paths (negative means unlimited)")

	rootCmd.AddCommand(countCmd, pathCmd, pathsCmd, edgesCmd, dotCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func parseLinkOrder(s string) (dag.LinkOrder, error) {
	switch s {
	case "id":
		return dag.OrderByID, nil
	case "title":
		return dag.OrderByTitle, nil
	case "text":
		return dag.OrderByText, nil
	default:
		return 0, fmt.Errorf("invalid --order value: %q", s)
	}
}

func parseLockPolicy(s string) (graphfile.LockPolicy, error) {
	switch s {
	case "none":
		return graphfile.LockNone, nil
	case "foreground":
		return graphfile.LockForeground, nil
	case "background":
		return graphfile.LockBackground, nil
	case "populate":
		return graphfile.LockPopulate, nil
	default:
		return 0, fmt.Errorf("invalid --lock value: %q", s)
	}
}

// openAndResolve opens the graph/metadata pair named by args[0] and
// resolves args[1]/args[2] as start/finish page ids.
func openAndResolve(args []string, logger *zap.Logger) (reader *wikisearch.Reader, start, finish uint32, err error) {
	lockPolicy, err := parseLockPolicy(flagLockPolicy)
	if err != nil {
		return nil, 0, 0, err
	}
	reader, err = wikisearch.Open(args[0], lockPolicy, logger)
	if err != nil {
		return nil, 0, 0, err
	}
	start = reader.ParsePageArgument(args[1])
	finish = reader.ParsePageArgument(args[2])
	if start == 0 || finish == 0 {
		reader.Close()
		return nil, 0, 0, fmt.Errorf("could not resolve page arguments")
	}
	fmt.Fprintf(os.Stderr, "Searching shortest path from %s to %s...\n", reader.PageRef(start), reader.PageRef(finish))
	return reader, start, finish, nil
}

func dumpSearchStats(stats *bfs.CountingStats) {
	fmt.Fprintf(os.Stderr, "Vertices reached:  %d\n", stats.VerticesReached)
	fmt.Fprintf(os.Stderr, "Vertices expanded: %d\n", stats.VerticesExpanded)
	fmt.Fprintf(os.Stderr, "Edges expanded:    %d\n", stats.EdgesExpandedN)
	fmt.Fprintf(os.Stderr, "Search time:       %s\n", stats.TimeTaken)
}

func runClassic(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	reader, start, finish, err := openAndResolve(args, logger)
	if err != nil {
		return err
	}
	defer reader.Close()

	stats := bfs.NewCountingStats(nil)
	path, err := bfs.FindShortestPath(reader.Graph(), start, finish, stats)
	dumpSearchStats(stats)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		fmt.Fprintln(os.Stderr, "No path found!")
		return nil
	}
	for i, id := range path {
		if i == 0 {
			fmt.Println(reader.PageRef(id))
		} else {
			fmt.Println(reader.ForwardLinkRef(path[i-1], id))
		}
	}
	return nil
}

// findDag opens the reader, resolves start/finish, and runs the DAG
// search, printing stats to stderr. A nil edges slice with a nil error
// means "no path found"; callers distinguish that from an empty,
// non-nil slice, which means start == finish.
func findDag(args []string) (reader *wikisearch.Reader, edges []bfs.Edge, start, finish uint32, err error) {
	logger := newLogger()
	reader, start, finish, err = openAndResolve(args, logger)
	if err != nil {
		return nil, nil, 0, 0, err
	}
	stats := bfs.NewCountingStats(nil)
	edges, searchErr := bfs.FindShortestPathDag(reader.Graph(), start, finish, stats)
	dumpSearchStats(stats)
	if searchErr != nil {
		logger.Warn("shortest-path DAG search failed", zap.Error(searchErr))
		edges = nil
	}
	return reader, edges, start, finish, nil
}

func newLogger() *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runCount(cmd *cobra.Command, args []string) error {
	reader, edges, start, finish, err := findDag(args)
	if err != nil {
		return err
	}
	defer reader.Close()
	if edges == nil {
		fmt.Println(0)
		return nil
	}
	annotated, err := dag.NewAnnotatedDag(reader, start, finish, edges)
	if err != nil {
		return err
	}
	fmt.Println(annotated.CountPaths())
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	order, err := parseLinkOrder(flagOrder)
	if err != nil {
		return err
	}
	reader, edges, start, finish, err := findDag(args)
	if err != nil {
		return err
	}
	defer reader.Close()
	if edges == nil {
		fmt.Fprintln(os.Stderr, "No path found!")
		return nil
	}
	annotated, err := dag.NewAnnotatedDag(reader, start, finish, edges)
	if err != nil {
		return err
	}
	printPath(annotated, order, flagEnumerate, flagRandom)
	return nil
}

func runPaths(cmd *cobra.Command, args []string) error {
	order, err := parseLinkOrder(flagOrder)
	if err != nil {
		return err
	}
	if flagSkip < 0 {
		return fmt.Errorf("invalid --skip value: %d", flagSkip)
	}
	reader, edges, start, finish, err := findDag(args)
	if err != nil {
		return err
	}
	defer reader.Close()
	if edges == nil {
		return nil
	}
	annotated, err := dag.NewAnnotatedDag(reader, start, finish, edges)
	if err != nil {
		return err
	}
	max := flagMax
	if max < 0 {
		max = 1<<63 - 1
	}
	printPaths(annotated, order, flagEnumerate, flagSkip, max)
	return nil
}

func runEdges(cmd *cobra.Command, args []string) error {
	reader, edges, _, _, err := findDag(args)
	if err != nil {
		return err
	}
	defer reader.Close()
	for _, e := range edges {
		fmt.Printf("%s -> %s\n", reader.PageRef(e.U), reader.ForwardLinkRef(e.U, e.V))
	}
	return nil
}

func runDot(cmd *cobra.Command, args []string) error {
	order, err := parseLinkOrder(flagOrder)
	if err != nil {
		return err
	}
	reader, edges, start, finish, err := findDag(args)
	if err != nil {
		return err
	}
	defer reader.Close()
	if edges == nil {
		fmt.Fprintln(os.Stderr, "No path found!")
		return nil
	}
	annotated, err := dag.NewAnnotatedDag(reader, start, finish, edges)
	if err != nil {
		return err
	}
	return dag.WriteDot(os.Stdout, annotated, order)
}

func printPath(d *dag.AnnotatedDag, order dag.LinkOrder, enumerate string, random bool) {
	var skip int64
	if random {
		count := d.CountPaths()
		if count > 0 {
			skip = rand.Int63n(count)
		}
		fmt.Fprintf(os.Stderr, "Randomly selected path %d of %d.\n", skip+1, count)
	}

	print := func(links []*dag.AnnotatedLink) {
		fmt.Println(d.Start().Ref())
		for _, link := range links {
			fmt.Println(link.ForwardRef())
		}
	}

	if enumerate == "iterative" {
		it := dag.NewPathIterator(d, order)
		if skip > 0 && !it.Advance(skip) {
			return
		}
		if links, ok := it.Next(); ok {
			print(links)
		}
		return
	}

	d.EnumeratePaths(func(links []*dag.AnnotatedLink) bool {
		print(links)
		return false
	}, skip, order)
}

func printPaths(d *dag.AnnotatedDag, order dag.LinkOrder, enumerate string, skip, max int64) {
	if max <= 0 {
		return
	}
	if skip < 0 {
		skip = 0
	}

	print := func(links []*dag.AnnotatedLink) {
		fmt.Print(d.Start().Ref())
		for _, link := range links {
			fmt.Print(" -> ")
			fmt.Print(link.ForwardRef())
		}
		fmt.Println()
	}

	if enumerate == "iterative" {
		it := dag.NewPathIterator(d, order)
		if skip > 0 && !it.Advance(skip) {
			return
		}
		for max > 0 {
			links, ok := it.Next()
			if !ok {
				return
			}
			print(links)
			max--
		}
		return
	}

	d.EnumeratePaths(func(links []*dag.AnnotatedLink) bool {
		print(links)
		max--
		return max > 0
	}, skip, order)
}
