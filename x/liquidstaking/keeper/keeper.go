package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type Keeper struct {
	storeService store.KVStoreService
	logger       log.Logger

	// the address capable of executing admin messages: forced era and ledger
	// overrides, reserve reduction and direct remote operations.
	authority string

	bankViewKeeper        types.BankKeeper
	bookkeepingBankKeeper types.BookkeepingBankKeeper
	transport             types.RemoteTransport
	oracle                types.BlockHeightOracle
	proofVerifier         types.ProofVerifier
	loansKeeper           types.LoansKeeper

	Schema              collections.Schema
	params              collections.Item[types.Params]
	ExchangeRate        collections.Item[math.LegacyDec]
	CurrentEra          collections.Item[uint32]
	EraStartBlock       collections.Item[uint64]
	IsMatched           collections.Item[bool]
	MatchingPool        collections.Item[types.MatchingLedger]
	TotalReserves       collections.Item[math.Int]
	StakingLedgers      collections.Map[uint16, types.StakingLedger]
	IsUpdated           collections.KeySet[uint16]
	Unlockings          collections.Map[sdk.AccAddress, types.UnlockChunks]
	FastUnstakeRequests collections.Map[sdk.AccAddress, math.Int]
	RemoteRequests      collections.Map[uint64, types.RemoteRequest]
	ValidationData      collections.Item[types.ValidationSnapshot]
}

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bankKeeper types.BankKeeper,
	bookkeepingBankKeeper types.BookkeepingBankKeeper,
	transport types.RemoteTransport,
	oracle types.BlockHeightOracle,
	proofVerifier types.ProofVerifier,
	loansKeeper types.LoansKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bankViewKeeper:        bankKeeper,
		bookkeepingBankKeeper: bookkeepingBankKeeper,
		transport:             transport,
		oracle:                oracle,
		proofVerifier:         proofVerifier,
		loansKeeper:           loansKeeper,

		params:              collections.NewItem(sb, types.ParamsKey, "params", types.JSONValue[types.Params]("params")),
		ExchangeRate:        collections.NewItem(sb, types.ExchangeRateKey, "exchange_rate", types.JSONValue[math.LegacyDec]("exchange_rate")),
		CurrentEra:          collections.NewItem(sb, types.CurrentEraKey, "current_era", collections.Uint32Value),
		EraStartBlock:       collections.NewItem(sb, types.EraStartBlockKey, "era_start_block", collections.Uint64Value),
		IsMatched:           collections.NewItem(sb, types.IsMatchedKey, "is_matched", collections.BoolValue),
		MatchingPool:        collections.NewItem(sb, types.MatchingPoolKey, "matching_pool", types.JSONValue[types.MatchingLedger]("matching_pool")),
		TotalReserves:       collections.NewItem(sb, types.TotalReservesKey, "total_reserves", sdk.IntValue),
		StakingLedgers:      collections.NewMap(sb, types.StakingLedgersKey, "staking_ledgers", collections.Uint16Key, types.JSONValue[types.StakingLedger]("staking_ledger")),
		IsUpdated:           collections.NewKeySet(sb, types.IsUpdatedKey, "is_updated", collections.Uint16Key),
		Unlockings:          collections.NewMap(sb, types.UnlockingsKey, "unlockings", sdk.AccAddressKey, types.JSONValue[types.UnlockChunks]("unlockings")),
		FastUnstakeRequests: collections.NewMap(sb, types.FastUnstakeRequestsKey, "fast_unstake_requests", sdk.AccAddressKey, sdk.IntValue),
		RemoteRequests:      collections.NewMap(sb, types.RemoteRequestsKey, "remote_requests", collections.Uint64Key, types.RemoteRequestValue),
		ValidationData:      collections.NewItem(sb, types.ValidationDataKey, "validation_data", types.JSONValue[types.ValidationSnapshot]("validation_data")),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) LogInfo(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Info(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogError(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Error(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogWarn(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Warn(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogDebug(msg string, subSystem types.SubSystem, keyVals ...interface{}) {
	k.Logger().Debug(msg, append(keyVals, "subsystem", subSystem.String())...)
}

// InTransaction runs fn on a branch of ctx. State changes and events reach
// ctx only if fn returns nil.
func (k Keeper) InTransaction(ctx sdk.Context, fn func(ctx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}
	write()
	return nil
}

// getItem reads an item, falling back to def when it was never written.
func getItem[V any](ctx context.Context, item collections.Item[V], def V) V {
	v, err := item.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return def
	}
	if err != nil {
		panic(err)
	}
	return v
}

func (k Keeper) GetTotalReserves(ctx context.Context) math.Int {
	return getItem(ctx, k.TotalReserves, math.ZeroInt())
}

func (k Keeper) SetTotalReserves(ctx context.Context, amount math.Int) {
	if err := k.TotalReserves.Set(ctx, amount); err != nil {
		panic(err)
	}
}

// GetValidationData returns the external state snapshot stored at the end of the last round.
func (k Keeper) GetValidationData(ctx context.Context) (types.ValidationSnapshot, bool) {
	snapshot, err := k.ValidationData.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.ValidationSnapshot{}, false
	}
	if err != nil {
		panic(err)
	}
	return snapshot, true
}
