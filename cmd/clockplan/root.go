package main

import (
	"github.com/spf13/cobra"

	"l4hal-go/clocks"
	"l4hal-go/internal/profile"
)

type rootOpts struct {
	file    string
	profile string
}

func newRootCmd() *cobra.Command {
	o := &rootOpts{}
	cmd := &cobra.Command{
		Use:          "clockplan",
		Short:        "Plan and check STM32L4 clock configurations",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&o.file, "profiles", "f", "", "YAML profile file (default: built-in set)")
	cmd.PersistentFlags().StringVarP(&o.profile, "profile", "p", "default", "profile name")

	cmd.AddCommand(
		newProfilesCmd(o),
		newSpeedsCmd(o),
		newValidateCmd(o),
		newOrderCmd(o),
		newSetupCmd(o),
		newWakeupCmd(o),
		newTimerCmd(o),
	)
	return cmd
}

func (o *rootOpts) profiles() (profile.Profiles, error) {
	if o.file == "" {
		return profile.Default(), nil
	}
	return profile.Load(o.file)
}

func (o *rootOpts) selected() (profile.Profile, clocks.Config, error) {
	ps, err := o.profiles()
	if err != nil {
		return profile.Profile{}, clocks.Config{}, err
	}
	p, err := ps.Find(o.profile)
	if err != nil {
		return p, clocks.Config{}, err
	}
	c, err := p.Config()
	return p, c, err
}
