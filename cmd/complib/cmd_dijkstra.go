package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/complib"
	"github.com/npillmayer/complib/graph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// graphDocument is the YAML representation of a weighted digraph.
//
//	nodes: 3
//	edges:
//	  - {from: 0, to: 1, cost: 4}
//	  - {from: 1, to: 2, cost: 1}
type graphDocument struct {
	Nodes int            `yaml:"nodes"`
	Edges []edgeDocument `yaml:"edges"`
}

type edgeDocument struct {
	From int    `yaml:"from"`
	To   int    `yaml:"to"`
	Cost uint64 `yaml:"cost"`
}

func newDijkstraCommand(opts *options) *cobra.Command {
	var from int
	cmd := &cobra.Command{
		Use:   "dijkstra FILE",
		Short: "Compute shortest distances in a graph from a YAML document",
		Long: `Loads a weighted directed graph from a YAML document (use "-" for stdin)
and prints the distance of every node from the start node, or INF if a node
is unreachable.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadGraph(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runDijkstra(doc, from, newPrinter(cmd.OutOrStdout(), opts))
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start node")
	return cmd
}

func loadGraph(name string, stdin io.Reader) (*graphDocument, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	doc := &graphDocument{}
	if err := yaml.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("%w: graph %s: %v", complib.ErrMalformedInput, name, err)
	}
	if doc.Nodes < 0 {
		return nil, fmt.Errorf("%w: graph %s: negative node count", complib.ErrMalformedInput, name)
	}
	return doc, nil
}

func runDijkstra(doc *graphDocument, from int, out *printer) error {
	d := graph.NewDijkstra(doc.Nodes)
	for _, e := range doc.Edges {
		if err := d.AddEdge(e.From, e.To, e.Cost); err != nil {
			return err
		}
	}
	if err := d.Solve(from); err != nil {
		return err
	}
	for node := 0; node < d.Len(); node++ {
		dist, ok := d.Distance(node)
		if !ok {
			out.Labeled(strconv.Itoa(node), "INF")
			continue
		}
		out.Labeled(strconv.Itoa(node), dist)
	}
	return nil
}
