// Command buildgraph assembles a CSR graph file from a plain edge-list
// text file, for use in tests and fixtures. It does not parse MediaWiki
// XML dumps; production indexing from a dump is out of scope.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arvasato/wikipath/graphfile"
)

var rootCmd = &cobra.Command{
	Use:   "buildgraph <edges.txt> <out.graph>",
	Short: "Build a CSR graph file from a whitespace-separated \"from to\" edge list",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	b := graphfile.NewBuildGraph()
	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return fmt.Errorf("%s:%d: expected \"from to\", got %q", args[0], lineNo, line)
		}
		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid from id %q: %w", args[0], lineNo, fields[0], err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid to id %q: %w", args[0], lineNo, fields[1], err)
		}
		if err := b.AddEdge(uint32(u), uint32(v)); err != nil {
			return fmt.Errorf("%s:%d: %w", args[0], lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()
	if err := graphfile.Write(out, b); err != nil {
		return err
	}
	return out.Close()
}
