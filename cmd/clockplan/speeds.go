package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"l4hal-go/clocks"
)

func newSpeedsCmd(o *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "speeds",
		Short: "Print the clock frequencies a profile produces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, c, err := o.selected()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "profile %s (%s), input %v at %.3f MHz\n", p.Name, p.Board, c.InputSrc, c.InputMHz())
			printSpeeds(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func printSpeeds(w io.Writer, c clocks.Config) {
	sp := c.Speeds()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		name string
		mhz  float32
	}{
		{"sysclk", sp.Sysclk},
		{"hclk", sp.HCLK},
		{"systick", sp.Systick},
		{"fclk", sp.FCLK},
		{"pclk1", sp.PCLK1},
		{"timer1", sp.Timer1},
		{"pclk2", sp.PCLK2},
		{"timer2", sp.Timer2},
		{"usb", sp.USB},
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.3f MHz\n", r.name, r.mhz)
	}
	fmt.Fprintf(tw, "flash\t%d wait states\n", clocks.FlashLatency(sp.HCLK))
	tw.Flush()
}
