package types

// Event types
const (
	EventTypeStaked                  = "staked"
	EventTypeUnstaked                = "unstaked"
	EventTypeClaimedFor              = "claimed_for"
	EventTypeUnstakeCancelled        = "unstake_cancelled"
	EventTypeFastUnstakeMatched      = "fast_unstake_matched"
	EventTypeBonding                 = "bonding"
	EventTypeBondingExtra            = "bonding_extra"
	EventTypeUnbonding               = "unbonding"
	EventTypeRebonding               = "rebonding"
	EventTypeWithdrawingUnbonded     = "withdrawing_unbonded"
	EventTypeNominating              = "nominating"
	EventTypeMatching                = "matching"
	EventTypeNotificationReceived    = "notification_received"
	EventTypeRemoteRequestFailed     = "remote_request_failed"
	EventTypeStakingLedgerUpdated    = "staking_ledger_updated"
	EventTypeNonIdealStakingLedger   = "non_ideal_staking_ledger"
	EventTypeExchangeRateUpdated     = "exchange_rate_updated"
	EventTypeNewEra                  = "new_era"
	EventTypeEraStartBlockUpdated    = "era_start_block_updated"
	EventTypeReservesReduced         = "reserves_reduced"
	EventTypeCommissionRateUpdated   = "commission_rate_updated"
	EventTypeIncentiveUpdated        = "incentive_updated"
	EventTypeStakingLedgerCapUpdated = "staking_ledger_cap_updated"
	EventTypeReserveFactorUpdated    = "reserve_factor_updated"
)

// Event attribute keys
const (
	AttributeKeyAccount         = "account"
	AttributeKeyAmount          = "amount"
	AttributeKeyLiquidAmount    = "liquid_amount"
	AttributeKeyReserves        = "reserves"
	AttributeKeyFee             = "fee"
	AttributeKeyProvider        = "provider"
	AttributeKeyDerivativeIndex = "derivative_index"
	AttributeKeyDelegate        = "delegate"
	AttributeKeyCorrelationID   = "correlation_id"
	AttributeKeyRequestKind     = "request_kind"
	AttributeKeyReason          = "reason"
	AttributeKeyBondAmount      = "bond_amount"
	AttributeKeyRebondAmount    = "rebond_amount"
	AttributeKeyUnbondAmount    = "unbond_amount"
	AttributeKeyTargetEra       = "target_era"
	AttributeKeyEra             = "era"
	AttributeKeyHeight          = "height"
	AttributeKeyRate            = "rate"
	AttributeKeySlashingSpans   = "num_slashing_spans"
	AttributeKeyTargets         = "targets"
	AttributeKeyTotal           = "total"
	AttributeKeyActive          = "active"
	AttributeKeyReceiver        = "receiver"
)
