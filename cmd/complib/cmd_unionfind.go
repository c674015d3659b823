package main

import (
	"fmt"

	"github.com/npillmayer/complib"
	"github.com/npillmayer/complib/unionfind"
	"github.com/spf13/cobra"
)

func newUnionFindCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unionfind",
		Short: "Answer union/same-set queries read from stdin",
		Long: `Reads "n q" followed by q queries "p a b" from stdin. For p = 0, the sets
of a and b are united; otherwise "Yes" or "No" is printed, depending on
whether a and b are in the same set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := newTokens(cmd.InOrStdin())
			out := newPrinter(cmd.OutOrStdout(), opts)
			return runUnionFind(in, out)
		},
	}
}

func runUnionFind(in *tokens, out *printer) error {
	n, err := in.Count("element count")
	if err != nil {
		return err
	}
	q, err := in.Count("query count")
	if err != nil {
		return err
	}
	uf := unionfind.New(n)
	for i := 0; i < q; i++ {
		p, err := in.Int("query type")
		if err != nil {
			return err
		}
		a, err := in.Count("element")
		if err != nil {
			return err
		}
		b, err := in.Count("element")
		if err != nil {
			return err
		}
		if a >= n || b >= n {
			return fmt.Errorf("%w: query %d: element out of range [0,%d)", complib.ErrMalformedInput, i, n)
		}
		if p == 0 {
			uf.Unite(a, b)
		} else {
			out.YesNo(uf.Same(a, b))
		}
	}
	complib.T().Debugf("unionfind: %d queries on %d elements, %d sets remaining", q, n, uf.Count())
	return nil
}
