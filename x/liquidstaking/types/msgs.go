package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// UnstakeProvider selects how an unstake is settled.
type UnstakeProvider string

const (
	// ProviderRelayChain waits for the unbonding cycle.
	ProviderRelayChain UnstakeProvider = "relay_chain"
	// ProviderMatchingPool queues a fast unstake against pool liquidity.
	ProviderMatchingPool UnstakeProvider = "matching_pool"
	// ProviderLoans pays out immediately by borrowing against collateral.
	ProviderLoans UnstakeProvider = "loans"
)

func (p UnstakeProvider) Validate() error {
	switch p {
	case ProviderRelayChain, ProviderMatchingPool, ProviderLoans:
		return nil
	default:
		return ErrInvalidUnstakeProvider.Wrapf("%q", p)
	}
}

type MsgStake struct {
	Staker string   `json:"staker"`
	Amount math.Int `json:"amount"`
}

type MsgStakeResponse struct {
	LiquidAmount math.Int `json:"liquid_amount"`
}

func (msg *MsgStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Staker); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid staker address (%s)", err)
	}
	return validatePositive(msg.Amount, "stake amount")
}

type MsgUnstake struct {
	Unstaker     string          `json:"unstaker"`
	LiquidAmount math.Int        `json:"liquid_amount"`
	Provider     UnstakeProvider `json:"provider"`
}

type MsgUnstakeResponse struct {
	StakingAmount math.Int `json:"staking_amount"`
	TargetEra     uint32   `json:"target_era"`
}

func (msg *MsgUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Unstaker); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid unstaker address (%s)", err)
	}
	if err := msg.Provider.Validate(); err != nil {
		return err
	}
	return validatePositive(msg.LiquidAmount, "unstake amount")
}

type MsgCancelUnstake struct {
	Unstaker string   `json:"unstaker"`
	Amount   math.Int `json:"amount"`
}

type MsgCancelUnstakeResponse struct {
	Remaining math.Int `json:"remaining"`
}

func (msg *MsgCancelUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Unstaker); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid unstaker address (%s)", err)
	}
	return validatePositive(msg.Amount, "cancel amount")
}

type MsgClaimFor struct {
	Signer string `json:"signer"`
	Dest   string `json:"dest"`
}

type MsgClaimForResponse struct {
	Amount math.Int `json:"amount"`
}

func (msg *MsgClaimFor) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Dest); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid dest address (%s)", err)
	}
	return nil
}

type MsgFastMatchUnstake struct {
	Signer    string   `json:"signer"`
	Unstakers []string `json:"unstakers"`
}

type MsgFastMatchUnstakeResponse struct{}

func (msg *MsgFastMatchUnstake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Signer); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid signer address (%s)", err)
	}
	if len(msg.Unstakers) == 0 {
		return errors.Wrap(sdkerrors.ErrInvalidRequest, "no unstakers given")
	}
	for _, unstaker := range msg.Unstakers {
		if _, err := sdk.AccAddressFromBech32(unstaker); err != nil {
			return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid unstaker address (%s)", err)
		}
	}
	return nil
}

type MsgSetCurrentEra struct {
	Submitter string `json:"submitter"`
	Era       uint32 `json:"era"`
	Proof     []byte `json:"proof"`
}

type MsgSetCurrentEraResponse struct{}

func (msg *MsgSetCurrentEra) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid submitter address (%s)", err)
	}
	if len(msg.Proof) == 0 {
		return ErrInvalidProof.Wrap("empty proof")
	}
	return nil
}

type MsgSetStakingLedger struct {
	Submitter       string        `json:"submitter"`
	DerivativeIndex uint16        `json:"derivative_index"`
	Ledger          StakingLedger `json:"ledger"`
	Proof           []byte        `json:"proof"`
}

type MsgSetStakingLedgerResponse struct{}

func (msg *MsgSetStakingLedger) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Submitter); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid submitter address (%s)", err)
	}
	if len(msg.Proof) == 0 {
		return ErrInvalidProof.Wrap("empty proof")
	}
	return msg.Ledger.Validate()
}

func validatePositive(amount math.Int, what string) error {
	if amount.IsNil() || !amount.IsPositive() {
		return errors.Wrapf(sdkerrors.ErrInvalidCoins, "%s must be positive", what)
	}
	return nil
}

func validateAuthority(authority string) error {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}
	return nil
}
