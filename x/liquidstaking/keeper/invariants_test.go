package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestInvariants_HoldThroughACycle() {
	invariant := keeper.AllInvariants(s.k)

	s.stake(s.alice, 1000)
	_, broken := invariant(s.ctx)
	s.False(broken)

	s.Require().NoError(s.k.DoMatching(s.ctx))
	_, broken = invariant(s.ctx)
	s.False(broken)

	s.confirmAll()
	_, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(400), types.ProviderRelayChain)
	s.Require().NoError(err)
	s.Require().NoError(s.k.AdvanceEra(s.ctx, 1))
	s.Require().NoError(s.k.DoMatching(s.ctx))
	s.confirmAll()

	msg, broken := invariant(s.ctx)
	s.False(broken, msg)
}

func (s *KeeperTestSuite) TestMatchingPoolInvariant_Broken() {
	s.k.SetMatchingPool(s.ctx, types.MatchingLedger{
		TotalStakeAmount:   types.BondingAmounts{Total: math.NewInt(10), Locked: math.NewInt(20)},
		TotalUnstakeAmount: types.NewBondingAmounts(),
	})
	msg, broken := keeper.MatchingPoolInvariant(s.k)(s.ctx)
	s.True(broken)
	s.Contains(msg, "matching-pool")
}

func (s *KeeperTestSuite) TestStakingLedgersInvariant_Broken() {
	ledger := types.NewStakingLedger("d1", math.NewInt(100))
	ledger.Total = math.NewInt(150)
	s.setLedger(1, ledger)

	msg, broken := keeper.StakingLedgersInvariant(s.k)(s.ctx)
	s.True(broken)
	s.Contains(msg, "delegate 1")
}
