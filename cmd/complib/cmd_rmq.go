package main

import (
	"fmt"

	"github.com/npillmayer/complib"
	"github.com/npillmayer/complib/monoid"
	"github.com/npillmayer/complib/segtree"
	"github.com/spf13/cobra"
)

func newRMQCommand(opts *options) *cobra.Command {
	var op string
	cmd := &cobra.Command{
		Use:   "rmq",
		Short: "Answer range queries on a sequence read from stdin",
		Long: `Reads "n", n integer values, "q" and q queries from stdin. A query
"0 i v" sets position i to v, a query "1 l r" prints the aggregate of the
half-open range [l, r) under the operation selected by --op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := rangeMonoid(op)
			if err != nil {
				return err
			}
			in := newTokens(cmd.InOrStdin())
			out := newPrinter(cmd.OutOrStdout(), opts)
			return runRMQ(in, out, m)
		},
	}
	cmd.Flags().StringVar(&op, "op", "max", "aggregation: max, min or sum")
	return cmd
}

func rangeMonoid(op string) (monoid.Monoid[int64], error) {
	switch op {
	case "max":
		return monoid.Max[int64]{}, nil
	case "min":
		return monoid.Min[int64]{}, nil
	case "sum":
		return monoid.Sum[int64]{}, nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", complib.ErrIllegalArguments, op)
}

func runRMQ(in *tokens, out *printer, m monoid.Monoid[int64]) error {
	n, err := in.Count("sequence length")
	if err != nil {
		return err
	}
	values := make([]int64, n)
	for i := range values {
		if values[i], err = in.Int("value"); err != nil {
			return err
		}
	}
	tree, err := segtree.From(segtree.Config[int64]{Monoid: m}, values)
	if err != nil {
		return err
	}
	q, err := in.Count("query count")
	if err != nil {
		return err
	}
	for i := 0; i < q; i++ {
		kind, err := in.Int("query type")
		if err != nil {
			return err
		}
		a, err := in.Count("position")
		if err != nil {
			return err
		}
		b, err := in.Int("operand")
		if err != nil {
			return err
		}
		if kind == 0 {
			if a >= n {
				return fmt.Errorf("%w: query %d: position %d out of range [0,%d)",
					complib.ErrMalformedInput, i, a, n)
			}
			if err := tree.Update(a, b); err != nil {
				return err
			}
			continue
		}
		if b > int64(n) {
			return fmt.Errorf("%w: query %d: range end %d beyond %d", complib.ErrMalformedInput, i, b, n)
		}
		v, err := tree.Query(a, int(b))
		if err != nil {
			return fmt.Errorf("query %d: %w", i, err)
		}
		out.Value(v)
	}
	return nil
}
