package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/706f6c6c7578/enigma/internal/config"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [NAME]",
		Short: "List the built-in machines, or print one as a YAML configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, name := range config.Presets() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			}

			d, err := config.Preset(args[0])
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), d)
		},
	}
}
