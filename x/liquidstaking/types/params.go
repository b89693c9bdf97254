package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const (
	DistributionMaxMin  = "max_min"
	DistributionAverage = "average"
)

// Default parameter values
var (
	DefaultStakingDenom                 = "ustake"
	DefaultLiquidDenom                  = "ulstake"
	DefaultCollateralDenom              = "ucollateral"
	DefaultNativeDenom                  = "unative"
	DefaultDerivativeIndexList          = []uint16{0, 1}
	DefaultBondingDuration              = uint32(28)
	DefaultEraLength                    = uint64(3600)
	DefaultElectionSolutionStoredOffset = uint64(3000)
	DefaultMinStake                     = math.NewInt(100)
	DefaultMinUnstake                   = math.NewInt(50)
	DefaultMinNominatorBond             = math.NewInt(100)
	DefaultStakingLedgerCap             = math.NewInt(1_000_000_000_000)
	DefaultRemoteFee                    = math.ZeroInt()
	DefaultIncentive                    = math.ZeroInt()
	DefaultReserveFactor                = math.LegacyNewDecWithPrec(5, 3)
	DefaultCommissionRate               = math.LegacyNewDecWithPrec(1, 1)
	DefaultFastUnstakeFeeRate           = math.LegacyNewDecWithPrec(1, 2)
	DefaultLoansInstantUnstakeFeeRate   = math.LegacyNewDecWithPrec(3, 2)
	DefaultNumSlashingSpans             = uint32(0)
	DefaultDistributionStrategy         = DistributionMaxMin
)

type Params struct {
	StakingDenom                 string         `json:"staking_denom"`
	LiquidDenom                  string         `json:"liquid_denom"`
	CollateralDenom              string         `json:"collateral_denom"`
	NativeDenom                  string         `json:"native_denom"`
	DerivativeIndexList          []uint16       `json:"derivative_index_list"`
	BondingDuration              uint32         `json:"bonding_duration"`
	EraLength                    uint64         `json:"era_length"`
	ElectionSolutionStoredOffset uint64         `json:"election_solution_stored_offset"`
	MinStake                     math.Int       `json:"min_stake"`
	MinUnstake                   math.Int       `json:"min_unstake"`
	MinNominatorBond             math.Int       `json:"min_nominator_bond"`
	StakingLedgerCap             math.Int       `json:"staking_ledger_cap"`
	RemoteFee                    math.Int       `json:"remote_fee"`
	Incentive                    math.Int       `json:"incentive"`
	ReserveFactor                math.LegacyDec `json:"reserve_factor"`
	CommissionRate               math.LegacyDec `json:"commission_rate"`
	FastUnstakeFeeRate           math.LegacyDec `json:"fast_unstake_fee_rate"`
	LoansInstantUnstakeFeeRate   math.LegacyDec `json:"loans_instant_unstake_fee_rate"`
	ProtocolFeeReceiver          string         `json:"protocol_fee_receiver"`
	NumSlashingSpans             uint32         `json:"num_slashing_spans"`
	DistributionStrategy         string         `json:"distribution_strategy"`
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		StakingDenom:                 DefaultStakingDenom,
		LiquidDenom:                  DefaultLiquidDenom,
		CollateralDenom:              DefaultCollateralDenom,
		NativeDenom:                  DefaultNativeDenom,
		DerivativeIndexList:          append([]uint16(nil), DefaultDerivativeIndexList...),
		BondingDuration:              DefaultBondingDuration,
		EraLength:                    DefaultEraLength,
		ElectionSolutionStoredOffset: DefaultElectionSolutionStoredOffset,
		MinStake:                     DefaultMinStake,
		MinUnstake:                   DefaultMinUnstake,
		MinNominatorBond:             DefaultMinNominatorBond,
		StakingLedgerCap:             DefaultStakingLedgerCap,
		RemoteFee:                    DefaultRemoteFee,
		Incentive:                    DefaultIncentive,
		ReserveFactor:                DefaultReserveFactor,
		CommissionRate:               DefaultCommissionRate,
		FastUnstakeFeeRate:           DefaultFastUnstakeFeeRate,
		LoansInstantUnstakeFeeRate:   DefaultLoansInstantUnstakeFeeRate,
		ProtocolFeeReceiver:          authtypes.NewModuleAddress(FeeReceiverModuleName).String(),
		NumSlashingSpans:             DefaultNumSlashingSpans,
		DistributionStrategy:         DefaultDistributionStrategy,
	}
}

// HasDerivativeIndex reports whether index is one of the configured delegate accounts.
func (p Params) HasDerivativeIndex(index uint16) bool {
	for _, i := range p.DerivativeIndexList {
		if i == index {
			return true
		}
	}
	return false
}

// MarketCap is the global bonding cap across all delegates.
func (p Params) MarketCap() math.Int {
	return p.StakingLedgerCap.MulRaw(int64(len(p.DerivativeIndexList)))
}

func (p Params) FeeReceiver() sdk.AccAddress {
	addr, err := sdk.AccAddressFromBech32(p.ProtocolFeeReceiver)
	if err != nil {
		panic(err)
	}
	return addr
}

// Validate validates the set of params
func (p Params) Validate() error {
	for _, denom := range []string{p.StakingDenom, p.LiquidDenom, p.CollateralDenom, p.NativeDenom} {
		if err := sdk.ValidateDenom(denom); err != nil {
			return err
		}
	}
	if p.StakingDenom == p.LiquidDenom {
		return ErrInvalidLiquidCurrency.Wrap("liquid denom must differ from staking denom")
	}
	if err := validateIndexList(p.DerivativeIndexList); err != nil {
		return err
	}
	if p.EraLength == 0 {
		return fmt.Errorf("era length must be positive")
	}
	if err := validateNonNegative("min stake", p.MinStake); err != nil {
		return err
	}
	if err := validateNonNegative("min unstake", p.MinUnstake); err != nil {
		return err
	}
	if err := validateNonNegative("min nominator bond", p.MinNominatorBond); err != nil {
		return err
	}
	if err := validateNonNegative("remote fee", p.RemoteFee); err != nil {
		return err
	}
	if err := validateNonNegative("incentive", p.Incentive); err != nil {
		return err
	}
	if p.StakingLedgerCap.IsNil() || !p.StakingLedgerCap.IsPositive() {
		return ErrInvalidCap.Wrap("staking ledger cap must be positive")
	}
	if err := validateFactor(p.ReserveFactor); err != nil {
		return err
	}
	if err := validateFactor(p.FastUnstakeFeeRate); err != nil {
		return err
	}
	if err := validateFactor(p.LoansInstantUnstakeFeeRate); err != nil {
		return err
	}
	if err := ValidateCommissionRate(p.CommissionRate); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(p.ProtocolFeeReceiver); err != nil {
		return fmt.Errorf("invalid protocol fee receiver: %w", err)
	}
	if _, err := NewDistributionStrategy(p.DistributionStrategy); err != nil {
		return err
	}
	return nil
}

func validateIndexList(list []uint16) error {
	if len(list) == 0 {
		return ErrInvalidDerivativeIndex.Wrap("derivative index list is empty")
	}
	seen := make(map[uint16]struct{}, len(list))
	for _, index := range list {
		if _, ok := seen[index]; ok {
			return ErrInvalidDerivativeIndex.Wrapf("duplicate derivative index %d", index)
		}
		seen[index] = struct{}{}
	}
	return nil
}

func validateNonNegative(name string, v math.Int) error {
	if v.IsNil() || v.IsNegative() {
		return fmt.Errorf("%s must be non-negative", name)
	}
	return nil
}

// validateFactor accepts [0, 1)
func validateFactor(v math.LegacyDec) error {
	if v.IsNil() || v.IsNegative() || v.GTE(math.LegacyOneDec()) {
		return ErrInvalidFactor.Wrapf("got %s", v)
	}
	return nil
}

// ValidateCommissionRate accepts [0, 1)
func ValidateCommissionRate(v math.LegacyDec) error {
	if v.IsNil() || v.IsNegative() || v.GTE(math.LegacyOneDec()) {
		return ErrInvalidCommissionRate.Wrapf("got %s", v)
	}
	return nil
}
