package types

import (
	"cosmossdk.io/math"
)

// BondingAmounts accumulates one direction of flow. Locked is the part of
// Total already committed to an in-flight remote operation.
type BondingAmounts struct {
	Total  math.Int `json:"total"`
	Locked math.Int `json:"locked"`
}

func NewBondingAmounts() BondingAmounts {
	return BondingAmounts{Total: math.ZeroInt(), Locked: math.ZeroInt()}
}

// Free is the part of Total not yet committed.
func (b BondingAmounts) Free() (math.Int, error) {
	free := b.Total.Sub(b.Locked)
	if free.IsNegative() {
		return math.ZeroInt(), ErrArithmetic.Wrapf("locked %s exceeds total %s", b.Locked, b.Total)
	}
	return free, nil
}

func (b *BondingAmounts) Add(amount math.Int) error {
	total, err := b.Total.SafeAdd(amount)
	if err != nil {
		return ErrArithmetic.Wrap(err.Error())
	}
	b.Total = total
	return nil
}

// SetLock commits amount of the free part.
func (b *BondingAmounts) SetLock(amount math.Int) error {
	locked, err := b.Locked.SafeAdd(amount)
	if err != nil {
		return ErrArithmetic.Wrap(err.Error())
	}
	if locked.GT(b.Total) {
		return ErrArithmetic.Wrapf("lock %s would exceed total %s", locked, b.Total)
	}
	b.Locked = locked
	return nil
}

// Consolidate removes a confirmed amount from both Total and Locked.
func (b *BondingAmounts) Consolidate(amount math.Int) error {
	total := b.Total.Sub(amount)
	locked := b.Locked.Sub(amount)
	if total.IsNegative() || locked.IsNegative() {
		return ErrArithmetic.Wrapf("consolidating %s from total %s locked %s", amount, b.Total, b.Locked)
	}
	b.Total = total
	b.Locked = locked
	return nil
}

// Sub removes amount from the free part.
func (b *BondingAmounts) Sub(amount math.Int) error {
	total := b.Total.Sub(amount)
	if total.LT(b.Locked) {
		return ErrArithmetic.Wrapf("removing %s from total %s would undercut locked %s", amount, b.Total, b.Locked)
	}
	b.Total = total
	return nil
}

func (b BondingAmounts) Validate() error {
	if b.Total.IsNil() || b.Locked.IsNil() || b.Locked.IsNegative() {
		return ErrArithmetic.Wrap("bonding amounts must be set and non-negative")
	}
	_, err := b.Free()
	return err
}

// MatchingLedger nets the stake and unstake flows of a round.
type MatchingLedger struct {
	TotalStakeAmount   BondingAmounts `json:"total_stake_amount"`
	TotalUnstakeAmount BondingAmounts `json:"total_unstake_amount"`
}

func NewMatchingLedger() MatchingLedger {
	return MatchingLedger{
		TotalStakeAmount:   NewBondingAmounts(),
		TotalUnstakeAmount: NewBondingAmounts(),
	}
}

func (m *MatchingLedger) AddStakeAmount(amount math.Int) error {
	return m.TotalStakeAmount.Add(amount)
}

func (m *MatchingLedger) AddUnstakeAmount(amount math.Int) error {
	return m.TotalUnstakeAmount.Add(amount)
}

func (m *MatchingLedger) SubStakeAmount(amount math.Int) error {
	return m.TotalStakeAmount.Sub(amount)
}

func (m *MatchingLedger) SetStakeAmountLock(amount math.Int) error {
	return m.TotalStakeAmount.SetLock(amount)
}

func (m *MatchingLedger) SetUnstakeAmountLock(amount math.Int) error {
	return m.TotalUnstakeAmount.SetLock(amount)
}

func (m *MatchingLedger) ConsolidateStake(amount math.Int) error {
	return m.TotalStakeAmount.Consolidate(amount)
}

func (m *MatchingLedger) ConsolidateUnstake(amount math.Int) error {
	return m.TotalUnstakeAmount.Consolidate(amount)
}

// Matching computes the bond, rebond and unbond amounts that settle the
// imbalance between free stake and free unstake. Only one of bond and
// unbond is ever nonzero.
func (m MatchingLedger) Matching(totalUnbonding math.Int) (bond, rebond, unbond math.Int, err error) {
	netStake, err := m.TotalStakeAmount.Free()
	if err != nil {
		return bond, rebond, unbond, err
	}
	netUnstake, err := m.TotalUnstakeAmount.Free()
	if err != nil {
		return bond, rebond, unbond, err
	}
	if netStake.GTE(netUnstake) {
		return netStake.Sub(netUnstake), math.MinInt(netUnstake, totalUnbonding), math.ZeroInt(), nil
	}
	rebond = math.MinInt(netStake, totalUnbonding)
	unbond = netUnstake.Sub(netStake).Sub(rebond)
	if unbond.IsNegative() {
		unbond = math.ZeroInt()
	}
	return math.ZeroInt(), rebond, unbond, nil
}

// Net removes the amount both sides can settle locally, leaving only
// committed amounts and the uncommitted imbalance.
func (m *MatchingLedger) Net() (math.Int, error) {
	freeStake, err := m.TotalStakeAmount.Free()
	if err != nil {
		return math.ZeroInt(), err
	}
	freeUnstake, err := m.TotalUnstakeAmount.Free()
	if err != nil {
		return math.ZeroInt(), err
	}
	netted := math.MinInt(freeStake, freeUnstake)
	if netted.IsZero() {
		return netted, nil
	}
	if err := m.TotalStakeAmount.Sub(netted); err != nil {
		return math.ZeroInt(), err
	}
	if err := m.TotalUnstakeAmount.Sub(netted); err != nil {
		return math.ZeroInt(), err
	}
	return netted, nil
}

func (m MatchingLedger) Validate() error {
	if err := m.TotalStakeAmount.Validate(); err != nil {
		return err
	}
	return m.TotalUnstakeAmount.Validate()
}
