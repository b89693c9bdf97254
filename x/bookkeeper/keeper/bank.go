package keeper

import (
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	"github.com/productscience/liquidstaking/x/bookkeeper/types"
)

// BankStack is the x/auth and x/bank pair the ledger settles through.
type BankStack struct {
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
}

// NewBankStack builds account and bank keepers on their own stores.
// permissions lists the module accounts and what they may do; the
// bookkeeper module is added as a minter for FundAccount.
func NewBankStack(
	authService store.KVStoreService,
	bankService store.KVStoreService,
	logger log.Logger,
	authority string,
	permissions map[string][]string,
) BankStack {
	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	perms := map[string][]string{types.ModuleName: {authtypes.Minter}}
	for name, p := range permissions {
		perms[name] = p
	}

	prefix := sdk.GetConfig().GetBech32AccountAddrPrefix()
	ak := authkeeper.NewAccountKeeper(
		cdc,
		authService,
		authtypes.ProtoBaseAccount,
		perms,
		addresscodec.NewBech32Codec(prefix),
		prefix,
		authority,
	)
	bk := bankkeeper.NewBaseKeeper(
		cdc,
		bankService,
		ak,
		map[string]bool{},
		authority,
		logger,
	)
	return BankStack{AccountKeeper: ak, BankKeeper: bk}
}

// ModuleAccounts names every module account the stack knows about.
func (b BankStack) ModuleAccounts() []string {
	names := make([]string, 0, len(b.AccountKeeper.GetModulePermissions()))
	for name := range b.AccountKeeper.GetModulePermissions() {
		names = append(names, name)
	}
	return names
}
