package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"l4hal-go/clocks"
)

func newValidateCmd(o *rootOpts) *cobra.Command {
	var usb bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a profile against the hardware limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, c, err := o.selected()
			if err != nil {
				return err
			}
			v := c.Validate()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: primary %s, usb %s\n", p.Name, verdict(v.Primary), verdict(v.USB))
			for _, f := range []struct {
				bad  bool
				what string
			}{
				{v.MulOutOfRange, "a PLL multiplier is outside 7..86"},
				{v.SysclkOver, "sysclk outside (0, 80] MHz"},
				{v.HCLKOver, "hclk outside (0, 80] MHz"},
				{v.PCLK1Over, "pclk1 outside (0, 80] MHz"},
				{v.PCLK2Over, "pclk2 outside (0, 80] MHz"},
			} {
				if f.bad {
					fmt.Fprintf(out, "  %s\n", f.what)
				}
			}
			if !v.OK() {
				return v.Err()
			}
			if usb && v.USB != clocks.Valid {
				return v.Err()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&usb, "usb", false, "also fail when the USB clock is not 48 MHz")
	return cmd
}

func verdict(v clocks.Validation) string {
	if v == clocks.Valid {
		return "ok"
	}
	return "invalid"
}
