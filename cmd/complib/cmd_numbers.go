package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/complib"
	"github.com/npillmayer/complib/factor"
	"github.com/npillmayer/complib/modular"
	"github.com/spf13/cobra"
)

// maxTableSize limits the size of combinatorics tables built on request.
const maxTableSize = 10_000_000

func newFactorCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "factor N...",
		Short: "Print the prime factorization of numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newPrinter(cmd.OutOrStdout(), opts)
			for _, arg := range args {
				n, err := strconv.ParseUint(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("%w: %v", complib.ErrIllegalArguments, err)
				}
				factors := factor.Factorize(n)
				if len(factors) == 0 {
					out.Labeled(arg, "-")
					continue
				}
				out.Labeled(arg, factors)
			}
			return nil
		},
	}
}

func newBinomCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "binom N R",
		Short: "Print C(N,R) and P(N,R) modulo 1e9+7",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", complib.ErrIllegalArguments, err)
			}
			r, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %v", complib.ErrIllegalArguments, err)
			}
			if n < 0 || r < 0 || n > maxTableSize {
				return fmt.Errorf("%w: need 0 <= N <= %d and R >= 0", complib.ErrIllegalArguments, maxTableSize)
			}
			comb := modular.NewCombination(n)
			out := newPrinter(cmd.OutOrStdout(), opts)
			out.Labeled(fmt.Sprintf("C(%d,%d)", n, r), comb.C(n, r))
			out.Labeled(fmt.Sprintf("P(%d,%d)", n, r), comb.P(n, r))
			return nil
		},
	}
}
