package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/evaluator"
)

// newRankCmd evaluates once and prints the winner under every priority
// order, re-ranking the same results each time.
func newRankCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Show the best algorithm under every priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			g, label, err := s.grid(o.random)
			if err != nil {
				return err
			}
			e, err := evaluator.New(evaluator.WithLogger(s.logger))
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			out, err := e.Evaluate(ctx, g, s.order)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s, batch %s\n", label, out.BatchID)
			for _, order := range evaluator.Permutations() {
				best, err := out.Rerank(order)
				if err != nil {
					return err
				}
				name := "-"
				if best != nil {
					name = best.Name
				}
				marker := " "
				if order == s.order {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %-16s %s\n", marker, order, name)
			}
			return nil
		},
	}
	o.bind(cmd.Flags())
	return cmd
}
