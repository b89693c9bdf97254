package cmd

import (
	"github.com/spf13/cobra"

	"github.com/productscience/liquidstaking/apiconfig"
)

func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config utilities",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "default",
			Short: "Print the default config as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return apiconfig.Write(apiconfig.DefaultConfig(), cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective config after file and env overrides",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				config, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				return apiconfig.Write(config, cmd.OutOrStdout())
			},
		},
	)
	return cmd
}
