package engine

import (
	"context"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	pruningtypes "cosmossdk.io/store/pruning/types"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/internal/outbox"
	"github.com/productscience/liquidstaking/logging"
	bookkeeperkeeper "github.com/productscience/liquidstaking/x/bookkeeper/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	liquidstaking "github.com/productscience/liquidstaking/x/liquidstaking/module"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// ModuleAccountPermissions are the module accounts the engine's bank knows.
var ModuleAccountPermissions = map[string][]string{
	types.ModuleName:            {authtypes.Minter, authtypes.Burner},
	types.FeeReceiverModuleName: nil,
}

type Options struct {
	DB        dbm.DB
	Logger    log.Logger
	Authority string
	// MaxPending bounds the outbox; see outbox.Outbox.Submit.
	MaxPending uint64
	Verifier   types.ProofVerifier
	// Loans may be nil, which disables the loans unstake provider.
	Loans     types.LoansKeeper
	LedgerLog bookkeeperkeeper.LogConfig
}

// CommitHook observes state right after a commit.
type CommitHook func(ctx sdk.Context)

// Engine hosts the keeper on a committed multistore. Every entry point runs
// under one lock on a fresh cache of the store, which is written and
// committed only when the entry point succeeds.
type Engine struct {
	mu     sync.Mutex
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	logger log.Logger
	hooks  []CommitHook
	state  state

	Keeper    keeper.Keeper
	Ledger    bookkeeperkeeper.Keeper
	Outbox    *outbox.Outbox
	Oracle    *Oracle
	MsgServer types.MsgServer

	module liquidstaking.AppModule
}

func New(opts Options) (*Engine, error) {
	if opts.DB == nil {
		return nil, errors.New("engine needs a database")
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	if opts.Authority == "" {
		opts.Authority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
	}
	if _, err := sdk.AccAddressFromBech32(opts.Authority); err != nil {
		return nil, errors.Wrap(err, "invalid authority")
	}

	stakingKey := storetypes.NewKVStoreKey(types.StoreKey)
	authKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	outboxKey := storetypes.NewKVStoreKey(outbox.StoreKey)
	engineKey := storetypes.NewKVStoreKey(StoreKey)

	cms := store.NewCommitMultiStore(opts.DB, opts.Logger, metrics.NewNoOpMetrics())
	for _, key := range []*storetypes.KVStoreKey{stakingKey, authKey, bankKey, outboxKey, engineKey} {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	cms.SetPruning(pruningtypes.NewPruningOptions(pruningtypes.PruningEverything))
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "failed to load engine state")
	}

	st := newState(runtime.NewKVStoreService(engineKey))
	oracle := NewOracle()
	height, found, err := st.observedHeight(sdk.NewContext(cms.CacheMultiStore(), cmtproto.Header{}, false, opts.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read observed height")
	}
	if found {
		oracle.restore(height)
	}

	box := outbox.New(runtime.NewKVStoreService(outboxKey), opts.MaxPending)
	bank := bookkeeperkeeper.NewBankStack(
		runtime.NewKVStoreService(authKey),
		runtime.NewKVStoreService(bankKey),
		opts.Logger,
		opts.Authority,
		ModuleAccountPermissions,
	)
	ledger := bookkeeperkeeper.NewKeeper(opts.Logger, bank.BankKeeper, bank.AccountKeeper, bank.ModuleAccounts(), opts.LedgerLog)
	k := keeper.NewKeeper(
		runtime.NewKVStoreService(stakingKey),
		opts.Logger,
		opts.Authority,
		ledger,
		ledger,
		box,
		oracle,
		opts.Verifier,
		opts.Loans,
	)

	return &Engine{
		db:        opts.DB,
		cms:       cms,
		logger:    opts.Logger,
		state:     st,
		Keeper:    k,
		Ledger:    ledger,
		Outbox:    box,
		Oracle:    oracle,
		MsgServer: keeper.NewMsgServerImpl(k),
		module:    liquidstaking.NewAppModule(k),
	}, nil
}

// OnCommit registers hook to run after every successful commit. Hooks run
// under the engine lock and must not call back into the engine.
func (e *Engine) OnCommit(hook CommitHook) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.hooks = append(e.hooks, hook)
}

// Initialized reports whether genesis was ever committed.
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cms.LastCommitID().Version > 0
}

func (e *Engine) Version() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cms.LastCommitID().Version
}

func (e *Engine) newContext(ms storetypes.MultiStore, height int64) sdk.Context {
	header := cmtproto.Header{Height: height, Time: time.Now().UTC()}
	return sdk.NewContext(ms, header, false, e.logger)
}

// Execute runs fn as one transaction and commits it.
func (e *Engine) Execute(fn func(ctx sdk.Context) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	height := e.cms.LastCommitID().Version + 1
	cache := e.cms.CacheMultiStore()
	ctx := e.newContext(cache, height)
	if err := fn(ctx); err != nil {
		return err
	}
	cache.Write()
	commit := e.cms.Commit()
	logging.Trace("state committed", types.System, "version", commit.Version)

	for _, hook := range e.hooks {
		hook(e.newContext(e.cms.CacheMultiStore(), commit.Version))
	}
	return nil
}

// View runs fn against the committed state and discards its writes.
func (e *Engine) View(fn func(ctx sdk.Context) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.newContext(e.cms.CacheMultiStore(), e.cms.LastCommitID().Version))
}

// Deliver runs one message handler as a transaction of e.
func Deliver[M, R any](e *Engine, msg M, handler func(context.Context, M) (R, error)) (R, error) {
	var resp R
	err := e.Execute(func(ctx sdk.Context) error {
		var err error
		resp, err = handler(ctx, msg)
		return err
	})
	return resp, err
}

// Tick records a remote block and runs the periodic era logic at it. The
// height is committed with the era state so a restarted engine resumes from it.
func (e *Engine) Tick(obs Observation) error {
	if err := e.Oracle.Observe(obs); err != nil {
		return err
	}
	return e.Execute(func(ctx sdk.Context) error {
		if err := e.state.ObservedHeight.Set(ctx, obs.Height); err != nil {
			return err
		}
		if err := e.module.BeginBlock(ctx); err != nil {
			return err
		}
		return e.module.EndBlock(ctx)
	})
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.db.Close()
}
