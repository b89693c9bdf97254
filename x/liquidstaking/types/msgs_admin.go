package types

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

type MsgForceMatching struct {
	Authority string `json:"authority"`
}

func (msg *MsgForceMatching) ValidateBasic() error {
	return validateAuthority(msg.Authority)
}

type MsgForceAdvanceEra struct {
	Authority string `json:"authority"`
	Offset    uint32 `json:"offset"`
}

func (msg *MsgForceAdvanceEra) ValidateBasic() error {
	return validateAuthority(msg.Authority)
}

type MsgForceSetEraStartBlock struct {
	Authority string `json:"authority"`
	Height    uint64 `json:"height"`
}

func (msg *MsgForceSetEraStartBlock) ValidateBasic() error {
	return validateAuthority(msg.Authority)
}

type MsgForceSetCurrentEra struct {
	Authority string `json:"authority"`
	Era       uint32 `json:"era"`
}

func (msg *MsgForceSetCurrentEra) ValidateBasic() error {
	return validateAuthority(msg.Authority)
}

type MsgForceSetStakingLedger struct {
	Authority       string        `json:"authority"`
	DerivativeIndex uint16        `json:"derivative_index"`
	Ledger          StakingLedger `json:"ledger"`
}

func (msg *MsgForceSetStakingLedger) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	return msg.Ledger.Validate()
}

// MsgNotificationReceived delivers the outcome of a remote request.
type MsgNotificationReceived struct {
	Authority     string  `json:"authority"`
	CorrelationID uint64  `json:"correlation_id"`
	Outcome       Outcome `json:"outcome"`
}

func (msg *MsgNotificationReceived) ValidateBasic() error {
	return validateAuthority(msg.Authority)
}

type MsgReduceReserves struct {
	Authority string   `json:"authority"`
	Receiver  string   `json:"receiver"`
	Amount    math.Int `json:"amount"`
}

func (msg *MsgReduceReserves) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Receiver); err != nil {
		return errors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid receiver address (%s)", err)
	}
	return validatePositive(msg.Amount, "reduce amount")
}

// MsgRemoteOperation issues a single remote operation against one delegate.
type MsgRemoteOperation struct {
	Authority        string      `json:"authority"`
	Kind             RequestKind `json:"kind"`
	DerivativeIndex  uint16      `json:"derivative_index"`
	Amount           math.Int    `json:"amount"`
	NumSlashingSpans uint32      `json:"num_slashing_spans,omitempty"`
	Targets          []string    `json:"targets,omitempty"`
}

func (msg *MsgRemoteOperation) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	switch msg.Kind {
	case RequestKindBond, RequestKindBondExtra, RequestKindUnbond, RequestKindRebond:
		return validatePositive(msg.Amount, string(msg.Kind)+" amount")
	case RequestKindWithdrawUnbonded:
		return nil
	case RequestKindNominate:
		if len(msg.Targets) == 0 {
			return errors.Wrap(sdkerrors.ErrInvalidRequest, "no nomination targets")
		}
		return nil
	default:
		return ErrUnknownRequestKind.Wrapf("%q", msg.Kind)
	}
}

type MsgUpdateCommissionRate struct {
	Authority      string         `json:"authority"`
	CommissionRate math.LegacyDec `json:"commission_rate"`
}

func (msg *MsgUpdateCommissionRate) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	return ValidateCommissionRate(msg.CommissionRate)
}

type MsgUpdateIncentive struct {
	Authority string   `json:"authority"`
	Amount    math.Int `json:"amount"`
}

func (msg *MsgUpdateIncentive) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	return validateNonNegative("incentive", msg.Amount)
}

type MsgUpdateReserveFactor struct {
	Authority     string         `json:"authority"`
	ReserveFactor math.LegacyDec `json:"reserve_factor"`
}

func (msg *MsgUpdateReserveFactor) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	return validateFactor(msg.ReserveFactor)
}

type MsgUpdateStakingLedgerCap struct {
	Authority string   `json:"authority"`
	Cap       math.Int `json:"cap"`
}

func (msg *MsgUpdateStakingLedgerCap) ValidateBasic() error {
	if err := validateAuthority(msg.Authority); err != nil {
		return err
	}
	if msg.Cap.IsNil() || !msg.Cap.IsPositive() {
		return ErrInvalidCap.Wrap("cap must be positive")
	}
	return nil
}
