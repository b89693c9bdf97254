package engine

import (
	"testing"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/productscience/liquidstaking/internal/engine"
	bookkeepertypes "github.com/productscience/liquidstaking/x/bookkeeper/types"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// Funded is an account holding amount of the staking denom at genesis.
type Funded struct {
	Address sdk.AccAddress
	Amount  int64
}

// NewEngine returns an engine on a fresh in-memory database with genesis
// already loaded.
func NewEngine(t testing.TB, verifier types.ProofVerifier, funded ...Funded) *engine.Engine {
	e, err := engine.New(engine.Options{
		DB:         dbm.NewMemDB(),
		MaxPending: 64,
		Verifier:   verifier,
	})
	require.NoError(t, err)

	genesis := engine.DefaultGenesis()
	for _, f := range funded {
		genesis.Bookkeeper.Balances = append(genesis.Bookkeeper.Balances, bookkeepertypes.Balance{
			Address: f.Address.String(),
			Coins:   sdk.NewCoins(sdk.NewInt64Coin(types.DefaultStakingDenom, f.Amount)),
		})
	}
	require.NoError(t, e.InitGenesis(genesis))
	return e
}
