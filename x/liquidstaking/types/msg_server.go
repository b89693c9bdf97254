package types

import "context"

// MsgAdminResponse is returned by every authority message.
type MsgAdminResponse struct{}

// MsgServer is the set of entry points of the module. Each call either
// commits all of its state changes or none.
type MsgServer interface {
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Unstake(context.Context, *MsgUnstake) (*MsgUnstakeResponse, error)
	CancelUnstake(context.Context, *MsgCancelUnstake) (*MsgCancelUnstakeResponse, error)
	ClaimFor(context.Context, *MsgClaimFor) (*MsgClaimForResponse, error)
	FastMatchUnstake(context.Context, *MsgFastMatchUnstake) (*MsgFastMatchUnstakeResponse, error)
	SetCurrentEra(context.Context, *MsgSetCurrentEra) (*MsgSetCurrentEraResponse, error)
	SetStakingLedger(context.Context, *MsgSetStakingLedger) (*MsgSetStakingLedgerResponse, error)

	ForceMatching(context.Context, *MsgForceMatching) (*MsgAdminResponse, error)
	ForceAdvanceEra(context.Context, *MsgForceAdvanceEra) (*MsgAdminResponse, error)
	ForceSetEraStartBlock(context.Context, *MsgForceSetEraStartBlock) (*MsgAdminResponse, error)
	ForceSetCurrentEra(context.Context, *MsgForceSetCurrentEra) (*MsgAdminResponse, error)
	ForceSetStakingLedger(context.Context, *MsgForceSetStakingLedger) (*MsgAdminResponse, error)
	NotificationReceived(context.Context, *MsgNotificationReceived) (*MsgAdminResponse, error)
	ReduceReserves(context.Context, *MsgReduceReserves) (*MsgAdminResponse, error)
	RemoteOperation(context.Context, *MsgRemoteOperation) (*MsgAdminResponse, error)
	UpdateCommissionRate(context.Context, *MsgUpdateCommissionRate) (*MsgAdminResponse, error)
	UpdateIncentive(context.Context, *MsgUpdateIncentive) (*MsgAdminResponse, error)
	UpdateStakingLedgerCap(context.Context, *MsgUpdateStakingLedgerCap) (*MsgAdminResponse, error)
	UpdateReserveFactor(context.Context, *MsgUpdateReserveFactor) (*MsgAdminResponse, error)
}
