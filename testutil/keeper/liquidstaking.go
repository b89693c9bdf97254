package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	bookkeeperkeeper "github.com/productscience/liquidstaking/x/bookkeeper/keeper"
	bookkeepertypes "github.com/productscience/liquidstaking/x/bookkeeper/types"
	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// LiquidStakingMocks holds the collaborators behind a test keeper
type LiquidStakingMocks struct {
	Ledger    bookkeeperkeeper.Keeper
	Transport *InMemoryTransport
	Oracle    *InMemoryOracle
	Verifier  *MockProofVerifier
	Loans     *MockLoansKeeper
}

func LiquidStakingKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	k, ctx, _ := LiquidStakingKeeperReturningMocks(t)
	return k, ctx
}

// LiquidStakingKeeperReturningMocks wires the keeper to a real token ledger,
// in-memory remote fakes and gomock verifier and lending market.
func LiquidStakingKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, LiquidStakingMocks) {
	ctrl := gomock.NewController(t)
	mocks := LiquidStakingMocks{
		Transport: NewInMemoryTransport(),
		Oracle:    NewInMemoryOracle(),
		Verifier:  NewMockProofVerifier(ctrl),
		Loans:     NewMockLoansKeeper(ctrl),
	}
	k, ctx, ledger := liquidStakingKeeperWith(t, mocks.Transport, mocks.Oracle, mocks.Verifier, mocks.Loans)
	mocks.Ledger = ledger
	return k, ctx, mocks
}

// LiquidStakingKeeperWithoutLoans leaves the lending market unconfigured.
func LiquidStakingKeeperWithoutLoans(t testing.TB) (keeper.Keeper, sdk.Context, LiquidStakingMocks) {
	ctrl := gomock.NewController(t)
	mocks := LiquidStakingMocks{
		Transport: NewInMemoryTransport(),
		Oracle:    NewInMemoryOracle(),
		Verifier:  NewMockProofVerifier(ctrl),
	}
	k, ctx, ledger := liquidStakingKeeperWith(t, mocks.Transport, mocks.Oracle, mocks.Verifier, nil)
	mocks.Ledger = ledger
	return k, ctx, mocks
}

// LiquidStakingKeeperWithTransport swaps the in-memory transport for a gomock one.
func LiquidStakingKeeperWithTransport(t testing.TB) (keeper.Keeper, sdk.Context, *MockRemoteTransport) {
	ctrl := gomock.NewController(t)
	transport := NewMockRemoteTransport(ctrl)
	k, ctx, _ := liquidStakingKeeperWith(t, transport, NewInMemoryOracle(), NewMockProofVerifier(ctrl), nil)
	return k, ctx, transport
}

func liquidStakingKeeperWith(
	t testing.TB,
	transport types.RemoteTransport,
	oracle types.BlockHeightOracle,
	verifier types.ProofVerifier,
	loans types.LoansKeeper,
) (keeper.Keeper, sdk.Context, bookkeeperkeeper.Keeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range []*storetypes.KVStoreKey{storeKey, authKey, bankKey} {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	bank := bookkeeperkeeper.NewBankStack(
		runtime.NewKVStoreService(authKey),
		runtime.NewKVStoreService(bankKey),
		log.NewNopLogger(),
		authority.String(),
		map[string][]string{types.ModuleName: {authtypes.Minter, authtypes.Burner}},
	)
	ledger := bookkeeperkeeper.NewKeeper(
		log.NewNopLogger(),
		bank.BankKeeper,
		bank.AccountKeeper,
		bank.ModuleAccounts(),
		bookkeeperkeeper.LogConfig{},
	)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		authority.String(),
		ledger,
		ledger,
		transport,
		oracle,
		verifier,
		loans,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	ledger.InitGenesis(ctx, *bookkeepertypes.DefaultGenesis())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx, ledger
}

// BookkeeperKeeper returns a token ledger on bare auth and bank stores.
// The "vault" and "other" module accounts may mint and burn.
func BookkeeperKeeper(t testing.TB) (bookkeeperkeeper.Keeper, sdk.Context) {
	authKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(authKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := bookkeeperkeeper.NewBankStack(
		runtime.NewKVStoreService(authKey),
		runtime.NewKVStoreService(bankKey),
		log.NewNopLogger(),
		authtypes.NewModuleAddress(govtypes.ModuleName).String(),
		map[string][]string{
			"vault": {authtypes.Minter, authtypes.Burner},
			"other": nil,
		},
	)
	k := bookkeeperkeeper.NewKeeper(
		log.NewNopLogger(),
		bank.BankKeeper,
		bank.AccountKeeper,
		bank.ModuleAccounts(),
		bookkeeperkeeper.LogConfig{DoubleEntry: true, SimpleEntry: true, LogLevel: "debug"},
	)
	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return k, ctx
}
