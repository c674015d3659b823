package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/complib"
	"github.com/npillmayer/complib/segtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestUnionFindCommand(t *testing.T) {
	input := `5 6
0 1 2
0 3 2
1 1 3
1 0 4
0 2 4
1 4 1
`
	out, err := execute(t, input, "unionfind")
	require.NoError(t, err)
	assert.Equal(t, "Yes\nNo\nYes\n", out)
}

func TestUnionFindRejectsTruncatedInput(t *testing.T) {
	_, err := execute(t, "3 2\n0 1 2\n", "unionfind")
	assert.True(t, errors.Is(err, complib.ErrMalformedInput), "got %v", err)
	_, err = execute(t, "3 1\n1 0 3\n", "unionfind")
	assert.True(t, errors.Is(err, complib.ErrMalformedInput), "got %v", err)
}

func TestRMQCommand(t *testing.T) {
	input := `8
3 -1 4 1 5 9 2 6
4
1 0 8
1 1 4
0 2 100
1 0 8
`
	out, err := execute(t, input, "rmq")
	require.NoError(t, err)
	assert.Equal(t, "9\n4\n100\n", out)

	out, err = execute(t, "4\n5 3 8 1\n2\n1 0 2\n1 2 4\n", "rmq", "--op", "min")
	require.NoError(t, err)
	assert.Equal(t, "3\n1\n", out)

	out, err = execute(t, "3\n1 2 3\n2\n1 0 3\n1 1 1\n", "rmq", "--op", "sum")
	require.NoError(t, err)
	assert.Equal(t, "6\n0\n", out)
}

func TestRMQCommandRejectsInvalidRanges(t *testing.T) {
	_, err := execute(t, "3\n1 2 3\n1\n1 2 1\n", "rmq")
	assert.True(t, errors.Is(err, segtree.ErrInvalidRange), "got %v", err)
	_, err = execute(t, "3\n1 2 3\n1\n0 3 7\n", "rmq")
	assert.True(t, errors.Is(err, complib.ErrMalformedInput), "got %v", err)
	_, err = execute(t, "1\n1\n0\n", "rmq", "--op", "avg")
	assert.True(t, errors.Is(err, complib.ErrIllegalArguments), "got %v", err)
}

func TestDijkstraCommand(t *testing.T) {
	doc := `nodes: 4
edges:
  - {from: 0, to: 1, cost: 4}
  - {from: 0, to: 2, cost: 1}
  - {from: 2, to: 1, cost: 2}
`
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	out, err := execute(t, "", "dijkstra", path)
	require.NoError(t, err)
	assert.Equal(t, "0: 0\n1: 3\n2: 1\n3: INF\n", out)

	out, err = execute(t, doc, "dijkstra", "-", "--from", "2")
	require.NoError(t, err)
	assert.Equal(t, "0: INF\n1: 2\n2: 0\n3: INF\n", out)
}

func TestDijkstraCommandRejectsBadGraphs(t *testing.T) {
	_, err := execute(t, "nodes: [1, 2]\n", "dijkstra", "-")
	assert.True(t, errors.Is(err, complib.ErrMalformedInput), "got %v", err)
	_, err = execute(t, "nodes: 1\nedges:\n  - {from: 0, to: 1, cost: 1}\n", "dijkstra", "-")
	assert.Error(t, err)
}

func TestNumberCommands(t *testing.T) {
	out, err := execute(t, "", "factor", "36", "97", "1")
	require.NoError(t, err)
	assert.Equal(t, "36: 2^2 * 3^2\n97: 97\n1: -\n", out)

	out, err = execute(t, "", "binom", "5", "2")
	require.NoError(t, err)
	assert.Equal(t, "C(5,2): 10\nP(5,2): 20\n", out)

	_, err = execute(t, "", "binom", "5", "x")
	assert.True(t, errors.Is(err, complib.ErrIllegalArguments), "got %v", err)
}

func TestTraceLevelFlag(t *testing.T) {
	_, err := execute(t, "", "factor", "6", "--trace", "debug")
	require.NoError(t, err)
	_, err = execute(t, "", "factor", "6", "--trace", "loud")
	assert.True(t, errors.Is(err, complib.ErrIllegalArguments), "got %v", err)
}
