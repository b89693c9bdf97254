package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// DefaultExchangeRate is one base unit per derivative unit.
func DefaultExchangeRate() math.LegacyDec {
	return math.LegacyOneDec()
}

// StakingToLiquid converts a base-asset amount into derivative units at rate.
func StakingToLiquid(amount math.Int, rate math.LegacyDec) (liquid math.Int, err error) {
	if rate.IsNil() || !rate.IsPositive() {
		return math.ZeroInt(), ErrInvalidExchangeRate.Wrapf("rate %s has no reciprocal", rate)
	}
	defer recoverOverflow(&err)
	return math.LegacyNewDecFromInt(amount).Quo(rate).TruncateInt(), nil
}

// LiquidToStaking converts derivative units into the base asset at rate.
func LiquidToStaking(amount math.Int, rate math.LegacyDec) (staking math.Int, err error) {
	if rate.IsNil() || !rate.IsPositive() {
		return math.ZeroInt(), ErrInvalidExchangeRate.Wrapf("rate %s is not positive", rate)
	}
	defer recoverOverflow(&err)
	return rate.MulInt(amount).TruncateInt(), nil
}

// RecomputeExchangeRate returns (active + stake - unstake) / supply and whether
// it should replace current. The rate never decreases here and is left
// untouched while supply is zero.
func RecomputeExchangeRate(
	current math.LegacyDec,
	totalActiveBonded, stakeTotal, unstakeTotal, supply math.Int,
) (rate math.LegacyDec, updated bool, err error) {
	if supply.IsZero() {
		return current, false, nil
	}
	numerator, err := totalActiveBonded.SafeAdd(stakeTotal)
	if err != nil {
		return current, false, ErrArithmetic.Wrap(err.Error())
	}
	numerator, err = numerator.SafeSub(unstakeTotal)
	if err != nil || numerator.IsNegative() {
		return current, false, ErrArithmetic.Wrapf("unstake total %s exceeds bonded and staked amounts", unstakeTotal)
	}
	defer recoverOverflow(&err)
	rate = math.LegacyNewDecFromInt(numerator).QuoInt(supply)
	if rate.GT(current) {
		return rate, true, nil
	}
	return current, false, nil
}

// CommissionInflation is the derivative amount minted to the protocol so that
// it holds commission*rewards worth of the pool after rewards accrue:
// issuance * c*r / (totalStake + r - c*r).
func CommissionInflation(issuance, totalStake, rewards math.Int, commission math.LegacyDec) (amount math.Int, err error) {
	if issuance.IsZero() || commission.IsZero() || rewards.IsZero() {
		return math.ZeroInt(), nil
	}
	defer recoverOverflow(&err)
	commissionAmount := commission.MulInt(rewards).TruncateInt()
	denominator := totalStake.Add(rewards).Sub(commissionAmount)
	if !denominator.IsPositive() {
		return math.ZeroInt(), nil
	}
	inflateRate := math.LegacyNewDecFromInt(commissionAmount).QuoInt(denominator)
	return inflateRate.MulInt(issuance).TruncateInt(), nil
}

func recoverOverflow(err *error) {
	if r := recover(); r != nil {
		*err = ErrInvalidExchangeRate.Wrap(fmt.Sprint(r))
	}
}
