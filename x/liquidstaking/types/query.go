package types

import "cosmossdk.io/math"

// EraState is the era state machine as exposed to readers.
type EraState struct {
	CurrentEra    uint32 `json:"current_era"`
	EraStartBlock uint64 `json:"era_start_block"`
	IsMatched     bool   `json:"is_matched"`
}

// Summary collects the engine's aggregate accounting in one read.
type Summary struct {
	ExchangeRate      math.LegacyDec `json:"exchange_rate"`
	Era               EraState       `json:"era"`
	MatchingPool      MatchingLedger `json:"matching_pool"`
	TotalBonded       math.Int       `json:"total_bonded"`
	TotalActiveBonded math.Int       `json:"total_active_bonded"`
	TotalUnbonding    math.Int       `json:"total_unbonding"`
	TotalReserves     math.Int       `json:"total_reserves"`
	PendingRequests   int            `json:"pending_requests"`
	MarketCap         math.Int       `json:"market_cap"`
	LiquidTotalIssued math.Int       `json:"liquid_total_issued"`
}
