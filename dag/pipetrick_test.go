package dag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvasato/wikipath/dag"
)

// Cases drawn from https://en.wikipedia.org/wiki/Help:Pipe_trick.
func TestResolvePipeTrick(t *testing.T) {
	cases := []struct {
		input, want string
	}{
		{"", ""},
		{"Foo Bar", "Foo Bar"},
		{"Pipe (computing)", "Pipe"},
		{"Phoenix, Arizona", "Phoenix"},
		{"Wikipedia:Verifiability", "Verifiability"},
		{"Yours, Mine and Ours (1968 film)", "Yours, Mine and Ours"},
		{":es:Wikipedia:Políticas", "Wikipedia:Políticas"},
		{"Il Buono, il Brutto, il Cattivo", "Il Buono"},
		{"Wikipedia:Manual of Style (Persian)", "Manual of Style"},
		{":Test", "Test"},
		{"\t Whitespace \n", "Whitespace"},
		{"Test (foo) (bar) (baz)", "Test (foo) (bar)"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, dag.ResolvePipeTrick(c.input), "input=%q", c.input)
	}
}
