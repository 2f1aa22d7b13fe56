package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProfilesCmd(o *rootOpts) *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List the available profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := o.profiles()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dump {
				b, err := ps.Marshal()
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			for _, p := range ps {
				c, err := p.Config()
				if err != nil {
					fmt.Fprintf(out, "%-12s %-16s invalid: %v\n", p.Name, p.Board, err)
					continue
				}
				fmt.Fprintf(out, "%-12s %-16s %-10v %5.1f MHz\n", p.Name, p.Board, c.InputSrc, c.Speeds().Sysclk)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "yaml", false, "print the profile set as YAML")
	return cmd
}
