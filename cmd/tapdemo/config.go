package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tapkit"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective dispatcher config as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := tapkit.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return fmt.Errorf("encode config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
