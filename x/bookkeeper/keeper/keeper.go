package keeper

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/bookkeeper/types"
)

// Keeper settles every movement of value through x/bank and writes it to the
// audit log the way LogConfig asks for.
type Keeper struct {
	logger log.Logger

	bankKeeper     types.BankKeeper
	accountKeeper  types.AccountKeeper
	moduleAccounts []string
	logConfig      LogConfig
}

type LogConfig struct {
	DoubleEntry bool   `json:"double_entry"`
	SimpleEntry bool   `json:"simple_entry"`
	LogLevel    string `json:"log_level"`
}

// NewKeeper wraps bankKeeper. moduleAccounts are created at genesis, before
// any balance lands on their addresses.
func NewKeeper(
	logger log.Logger,
	bankKeeper types.BankKeeper,
	accountKeeper types.AccountKeeper,
	moduleAccounts []string,
	logConfig LogConfig,
) Keeper {
	names := append([]string(nil), moduleAccounts...)
	sort.Strings(names)
	return Keeper{
		logger:         logger,
		bankKeeper:     bankKeeper,
		accountKeeper:  accountKeeper,
		moduleAccounts: names,
		logConfig:      logConfig,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return k.bankKeeper.GetBalance(ctx, addr, denom)
}

func (k Keeper) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return k.bankKeeper.SpendableCoins(ctx, addr)
}

func (k Keeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return k.bankKeeper.GetSupply(ctx, denom)
}

func (k Keeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoins(ctx, fromAddr, toAddr, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, toAddr.String(), fromAddr.String(), coin, memo, "")
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, senderModule, recipientAddr, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientAddr.String(), senderModule, coin, memo, "")
	}
	return nil
}

func (k Keeper) SendCoinsFromModuleToModule(ctx context.Context, senderModule, recipientModule string, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoinsFromModuleToModule(ctx, senderModule, recipientModule, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientModule, senderModule, coin, memo, "")
	}
	return nil
}

func (k Keeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins, memo string) error {
	err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, recipientModule, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, recipientModule, senderAddr.String(), coin, memo, "")
	}
	return nil
}

func (k Keeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	err := k.bankKeeper.MintCoins(ctx, moduleName, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, moduleName, types.SupplyAccount, coin, memo, "")
	}
	return nil
}

func (k Keeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		k.Logger().Info("No coins to burn")
		return nil
	}
	err := k.bankKeeper.BurnCoins(ctx, moduleName, amt)
	if err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, types.SupplyAccount, moduleName, coin, memo, "")
	}
	return nil
}

// FundAccount mints amt through the bookkeeper module account and hands it
// to addr. Used by genesis and faucets.
func (k Keeper) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins, memo string) error {
	if amt.IsZero() {
		return nil
	}
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, amt); err != nil {
		return err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, amt); err != nil {
		return err
	}
	for _, coin := range amt {
		k.logTransaction(ctx, addr.String(), types.SupplyAccount, coin, memo, "")
	}
	return nil
}

func (k Keeper) LogSubAccountTransaction(ctx context.Context, recipient string, sender string, subAccount string, amt sdk.Coin, memo string) {
	k.logTransaction(ctx, recipient+"_"+subAccount, sender+"_"+subAccount, amt, memo, subAccount)
}

func (k Keeper) logTransaction(ctx context.Context, to string, from string, coin sdk.Coin, memo string, subAccount string) {
	if coin.Amount.IsZero() {
		return
	}
	height := sdk.UnwrapSDKContext(ctx).BlockHeight()
	logFunc := k.getLogFunction(k.logConfig.LogLevel)
	amount := coin.Amount.String()
	if k.logConfig.DoubleEntry {
		logFunc("TransactionAudit", "type", "debit", "account", to, "counteraccount", from, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", amount, "height", height)
		logFunc("TransactionAudit", "type", "credit", "account", from, "counteraccount", to, "amount", amount, "denom", coin.Denom, "memo", memo, "signedAmount", "-"+amount, "height", height)
	}
	if k.logConfig.SimpleEntry {
		heightString := fmt.Sprintf("%d", height)
		if subAccount != "" {
			// Extra space here to ensure alignment in logs
			logFunc(fmt.Sprintf("SubAccountEntry  to=%s from=%s amount=%20s %-10s height=%8s memo=%s subaccount=%s", fixedSize(to, 64), fixedSize(from, 64), amount, coin.Denom, heightString, memo, subAccount))
		} else {
			logFunc(fmt.Sprintf("TransactionEntry to=%s from=%s amount=%20s %-10s height=%8s memo=%s", fixedSize(to, 64), fixedSize(from, 64), amount, coin.Denom, heightString, memo))
		}
	}
}

func (k Keeper) getLogFunction(level string) func(msg string, keyvals ...interface{}) {
	switch strings.ToLower(level) {
	case "debug":
		return k.Logger().Debug
	case "error":
		return k.Logger().Error
	case "warn":
		return k.Logger().Warn
	default:
		return k.Logger().Info
	}
}

// no easy way to truncate AND pad a string in Sprintf
func fixedSize(to string, size int) string {
	if len(to) > size {
		return to[:size]
	}
	return to + strings.Repeat(" ", size-len(to))
}
