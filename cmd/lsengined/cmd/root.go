package cmd

import (
	"os"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/productscience/liquidstaking/apiconfig"
	"github.com/productscience/liquidstaking/internal/engine"
	"github.com/productscience/liquidstaking/logging"
	"github.com/productscience/liquidstaking/merkleproof"
	bookkeeperkeeper "github.com/productscience/liquidstaking/x/bookkeeper/keeper"
)

const flagConfig = "config"

// NewRootCmd creates the lsengined command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lsengined",
		Short:         "Liquid staking matching and remote bonding engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "path to the YAML config file (env LSENGINE_* overrides it)")

	rootCmd.AddCommand(
		StartCmd(),
		GenesisCmd(),
		ConfigCmd(),
	)
	return rootCmd
}

func loadConfig(cmd *cobra.Command) (apiconfig.Config, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	config, err := apiconfig.LoadFile(path)
	if err != nil {
		return apiconfig.Config{}, err
	}
	logging.Setup(cmd.ErrOrStderr(), config.LogLevel)
	return config, nil
}

// openEngine opens the engine over the state database of config.
func openEngine(config apiconfig.Config) (*engine.Engine, error) {
	if err := os.MkdirAll(config.StoreDir(), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data dir")
	}
	db, err := dbm.NewGoLevelDB("state", config.StoreDir(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open state db")
	}
	e, err := engine.New(engine.Options{
		DB:         db,
		Logger:     log.NewLogger(os.Stderr, log.OutputJSONOption()),
		Authority:  config.Authority,
		MaxPending: config.Outbox.MaxPending,
		Verifier:   &merkleproof.Verifier{UseProofRuntime: config.Proofs.UseProofRuntime},
		LedgerLog: bookkeeperkeeper.LogConfig{
			DoubleEntry: config.Bookkeeping.DoubleEntry,
			SimpleEntry: config.Bookkeeping.SimpleEntry,
			LogLevel:    config.Bookkeeping.LogLevel,
		},
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return e, nil
}

// loadGenesis returns the genesis at path, or the default one when path is empty.
func loadGenesis(path string) (engine.Genesis, error) {
	if path == "" {
		return engine.DefaultGenesis(), nil
	}
	return engine.ReadGenesisFile(path)
}
