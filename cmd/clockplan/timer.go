package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"l4hal-go/periph"
)

func newTimerCmd(o *rootOpts) *cobra.Command {
	var apb2 bool
	cmd := &cobra.Command{
		Use:   "timer <seconds>",
		Short: "Compute timer PSC/ARR for an update period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := o.selected()
			if err != nil {
				return err
			}
			period, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return fmt.Errorf("timer: %w", err)
			}
			bus := periph.APB1
			if apb2 {
				bus = periph.APB2
			}
			sp := c.Speeds()
			psc, arr, err := periph.PeriodValues(float32(period), sp, bus)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v timer clock %.3f MHz: PSC=%d ARR=%d (%.9f s)\n",
				bus, bus.ClockMHz(sp), psc, arr, periph.Period(psc, arr, sp, bus))
			return nil
		},
	}
	cmd.Flags().BoolVar(&apb2, "apb2", false, "timer on APB2 instead of APB1")
	return cmd
}
