package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/productscience/liquidstaking/internal/engine"
)

func GenesisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Genesis document utilities",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "default",
			Short: "Print the default genesis",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return printJSON(cmd, engine.DefaultGenesis())
			},
		},
		&cobra.Command{
			Use:   "validate [file]",
			Short: "Check a genesis file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				genesis, err := engine.ReadGenesisFile(args[0])
				if err != nil {
					return err
				}
				if err := genesis.Validate(); err != nil {
					return errors.Wrapf(err, "invalid genesis %s", args[0])
				}
				cmd.Printf("genesis %s is valid\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import [file]",
			Short: "Initialize an empty data dir from a genesis file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				config, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				genesis, err := engine.ReadGenesisFile(args[0])
				if err != nil {
					return err
				}
				e, err := openEngine(config)
				if err != nil {
					return err
				}
				defer e.Close()
				return e.InitGenesis(genesis)
			},
		},
		&cobra.Command{
			Use:   "export",
			Short: "Print the committed engine state as a genesis document",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				config, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				e, err := openEngine(config)
				if err != nil {
					return err
				}
				defer e.Close()
				if !e.Initialized() {
					return errors.Errorf("no engine state in %s", config.StoreDir())
				}
				genesis, err := e.ExportGenesis()
				if err != nil {
					return err
				}
				return printJSON(cmd, genesis)
			},
		},
	)
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
