package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"l4hal-go/internal/clockgraph"
)

func newOrderCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the clock bring-up order for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, c, err := o.selected()
			if err != nil {
				return err
			}
			order, err := clockgraph.Order(c)
			if err != nil {
				return err
			}
			names := make([]string, len(order))
			for i, n := range order {
				names[i] = n.String()
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " -> "))
			return nil
		},
	}
}
