package types

import (
	"sort"

	"cosmossdk.io/math"
)

// DelegateAmounts is the bonded state of one delegate as seen by a distribution strategy.
type DelegateAmounts struct {
	Index  uint16
	Active math.Int
	Total  math.Int
}

func (d DelegateAmounts) Unbonding() math.Int {
	return d.Total.Sub(d.Active)
}

// Distribution is the share of an aggregate amount assigned to one delegate.
type Distribution struct {
	Index  uint16
	Amount math.Int
}

// DistributionStrategy splits an aggregate bond, unbond or rebond amount
// across delegates. Amounts that cannot be placed are left out and stay in
// the matching pool for a later round.
type DistributionStrategy interface {
	BondDistributions(delegates []DelegateAmounts, total, ledgerCap, minBond math.Int) []Distribution
	UnbondDistributions(delegates []DelegateAmounts, total, minBond math.Int) []Distribution
	RebondDistributions(delegates []DelegateAmounts, total math.Int) []Distribution
}

func NewDistributionStrategy(name string) (DistributionStrategy, error) {
	switch name {
	case DistributionMaxMin:
		return MaxMinDistribution{}, nil
	case DistributionAverage:
		return AverageDistribution{}, nil
	default:
		return nil, ErrInvalidDistributionName.Wrapf("%q", name)
	}
}

// MaxMinDistribution fills the least bonded delegates first when bonding and
// drains the most bonded first when unbonding.
type MaxMinDistribution struct{}

func (MaxMinDistribution) BondDistributions(delegates []DelegateAmounts, total, ledgerCap, minBond math.Int) []Distribution {
	sorted := sortedBy(delegates, func(a, b DelegateAmounts) bool { return a.Total.LT(b.Total) })
	remaining := total
	var out []Distribution
	for _, d := range sorted {
		if !remaining.IsPositive() {
			break
		}
		capacity := ledgerCap.Sub(d.Total)
		if !capacity.IsPositive() {
			continue
		}
		amount := math.MinInt(remaining, capacity)
		if d.Total.IsZero() && amount.LT(minBond) {
			continue
		}
		out = append(out, Distribution{Index: d.Index, Amount: amount})
		remaining = remaining.Sub(amount)
	}
	return out
}

func (MaxMinDistribution) UnbondDistributions(delegates []DelegateAmounts, total, minBond math.Int) []Distribution {
	sorted := sortedBy(delegates, func(a, b DelegateAmounts) bool { return a.Active.GT(b.Active) })
	remaining := total
	var out []Distribution
	for _, d := range sorted {
		if !remaining.IsPositive() {
			break
		}
		amount := unbondable(d.Active, math.MinInt(remaining, d.Active), minBond)
		if !amount.IsPositive() {
			continue
		}
		out = append(out, Distribution{Index: d.Index, Amount: amount})
		remaining = remaining.Sub(amount)
	}
	return out
}

func (MaxMinDistribution) RebondDistributions(delegates []DelegateAmounts, total math.Int) []Distribution {
	sorted := sortedBy(delegates, func(a, b DelegateAmounts) bool { return a.Unbonding().GT(b.Unbonding()) })
	remaining := total
	var out []Distribution
	for _, d := range sorted {
		if !remaining.IsPositive() {
			break
		}
		amount := math.MinInt(remaining, d.Unbonding())
		if !amount.IsPositive() {
			continue
		}
		out = append(out, Distribution{Index: d.Index, Amount: amount})
		remaining = remaining.Sub(amount)
	}
	return out
}

// AverageDistribution spreads an amount evenly over the delegates able to take it.
type AverageDistribution struct{}

func (AverageDistribution) BondDistributions(delegates []DelegateAmounts, total, ledgerCap, minBond math.Int) []Distribution {
	var candidates []DelegateAmounts
	for _, d := range delegates {
		if ledgerCap.Sub(d.Total).IsPositive() {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	share := total.QuoRaw(int64(len(candidates)))
	var out []Distribution
	for _, d := range candidates {
		amount := math.MinInt(share, ledgerCap.Sub(d.Total))
		if !amount.IsPositive() || (d.Total.IsZero() && amount.LT(minBond)) {
			continue
		}
		out = append(out, Distribution{Index: d.Index, Amount: amount})
	}
	return out
}

func (AverageDistribution) UnbondDistributions(delegates []DelegateAmounts, total, minBond math.Int) []Distribution {
	var candidates []DelegateAmounts
	for _, d := range delegates {
		if d.Active.IsPositive() {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	share := total.QuoRaw(int64(len(candidates)))
	var out []Distribution
	for _, d := range candidates {
		amount := unbondable(d.Active, math.MinInt(share, d.Active), minBond)
		if !amount.IsPositive() {
			continue
		}
		out = append(out, Distribution{Index: d.Index, Amount: amount})
	}
	return out
}

func (AverageDistribution) RebondDistributions(delegates []DelegateAmounts, total math.Int) []Distribution {
	var candidates []DelegateAmounts
	for _, d := range delegates {
		if d.Unbonding().IsPositive() {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	share := total.QuoRaw(int64(len(candidates)))
	var out []Distribution
	for _, d := range candidates {
		amount := math.MinInt(share, d.Unbonding())
		if !amount.IsPositive() {
			continue
		}
		out = append(out, Distribution{Index: d.Index, Amount: amount})
	}
	return out
}

// unbondable trims amount so that active is either emptied or stays at or above minBond.
func unbondable(active, amount, minBond math.Int) math.Int {
	left := active.Sub(amount)
	if left.IsZero() || left.GTE(minBond) {
		return amount
	}
	return active.Sub(minBond)
}

func sortedBy(delegates []DelegateAmounts, less func(a, b DelegateAmounts) bool) []DelegateAmounts {
	out := append([]DelegateAmounts(nil), delegates...)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
