package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"l4hal-go/clocks"
	"l4hal-go/drivers/rcc"
	"l4hal-go/drivers/rcc/rcctest"
	"l4hal-go/x/poll"
)

func newSetupCmd(o *rootOpts) *cobra.Command {
	var writes bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Dry-run the clock sequencer against a simulated RCC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, c, err := o.selected()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			f := rcctest.New()
			trace := func(s clocks.Step) {
				if s.Name == "" {
					fmt.Fprintf(out, "[%v]\n", s.State)
					return
				}
				fmt.Fprintf(out, "  %s\n", s.Name)
			}
			seq := clocks.NewSequencer(rcc.New(f.Regs()), clocks.WithWaiter(poll.Bounded(16)), clocks.WithTrace(trace))
			err = seq.Setup(c)
			if writes {
				for _, w := range f.Log {
					fmt.Fprintf(out, "%-12s <- %#010x\n", w.Reg, w.Value)
				}
			}
			for _, v := range f.Violations {
				fmt.Fprintf(out, "violation: %s\n", v)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%d register writes, final state %v\n", f.Writes(), seq.State())
			return nil
		},
	}
	cmd.Flags().BoolVar(&writes, "writes", false, "list every register store")
	return cmd
}
