package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"l4hal-go/rtc"
)

func newWakeupCmd(o *rootOpts) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "wakeup [seconds]",
		Short: "Encode an RTC wakeup period",
		Long:  "Encode an RTC wakeup period. Without an argument the selected profile's rtc section is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				src rtc.ClockSource
				enc rtc.Encoding
			)
			if len(args) == 0 {
				p, _, err := o.selected()
				if err != nil {
					return err
				}
				var ok bool
				src, enc, ok, err = p.Wakeup()
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("profile %q has no rtc section", p.Name)
				}
			} else {
				secs, err := strconv.ParseFloat(args[0], 32)
				if err != nil {
					return fmt.Errorf("wakeup: %w", err)
				}
				if src, err = parseRTCSource(source); err != nil {
					return err
				}
				if enc, err = rtc.Encode(float32(secs), src); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "source %v: WUCKSEL=%03b WUT=%d (%.6f s)\n",
				src, enc.Clock.Bits(), enc.Reload, enc.Period(src))
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "lsi", "RTC clock source (lse, lsi, hse)")
	return cmd
}

func parseRTCSource(s string) (rtc.ClockSource, error) {
	for _, src := range []rtc.ClockSource{rtc.LSE, rtc.LSI, rtc.HSE} {
		if src.String() == s {
			return src, nil
		}
	}
	return 0, fmt.Errorf("unknown rtc source %q", s)
}
