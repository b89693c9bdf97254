package keeper_test

import (
	"encoding/json"
	"slices"

	"cosmossdk.io/math"

	testkeeper "github.com/productscience/liquidstaking/testutil/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type roundOutcome struct {
	pool    string
	ledgers []string
	module  string
	supply  string
}

// submitMixedRound leaves a bond, an unbond and a withdraw pending, each on
// its own delegate.
func (s *KeeperTestSuite) submitMixedRound() []testkeeper.SubmittedRequest {
	s.setParams(func(p *types.Params) { p.DerivativeIndexList = []uint16{0, 1, 2} })
	s.k.ForceSetCurrentEra(s.ctx, 5)

	s.setLedger(0, types.NewStakingLedger(types.DelegateAddress(0).String(), math.NewInt(1000)))
	unbonding := types.NewStakingLedger(types.DelegateAddress(1).String(), math.NewInt(600))
	s.Require().NoError(unbonding.Unbond(math.NewInt(200), 3))
	s.setLedger(1, unbonding)

	s.stake(s.alice, 2000)
	_, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(300), types.ProviderRelayChain)
	s.Require().NoError(err)

	s.Require().NoError(s.k.Bond(s.ctx, 2, math.NewInt(500)))
	s.Require().NoError(s.k.Unbond(s.ctx, 0, math.NewInt(300)))
	s.Require().NoError(s.k.WithdrawUnbonded(s.ctx, 1, 0))

	submitted := s.mocks.Transport.Drain()
	s.Require().Len(submitted, 3)
	kinds := []types.RequestKind{submitted[0].Request.Kind(), submitted[1].Request.Kind(), submitted[2].Request.Kind()}
	s.ElementsMatch([]types.RequestKind{types.RequestKindBond, types.RequestKindUnbond, types.RequestKindWithdrawUnbonded}, kinds)
	return submitted
}

func (s *KeeperTestSuite) confirmInOrder(submitted []testkeeper.SubmittedRequest) roundOutcome {
	for _, sub := range submitted {
		s.Require().NoError(s.k.OnConfirmation(s.ctx, sub.CorrelationID, types.SuccessOutcome()))
	}
	s.Empty(s.k.GetAllPendingRequests(s.ctx))

	pool, err := json.Marshal(s.k.GetMatchingPool(s.ctx))
	s.Require().NoError(err)
	return roundOutcome{
		pool:    string(pool),
		ledgers: jsonOf(s, s.k.GetAllStakingLedgers(s.ctx)),
		module:  s.balance(types.ModuleAddress(), s.params.StakingDenom).String(),
		supply:  s.mocks.Ledger.GetSupply(s.ctx, s.params.StakingDenom).Amount.String(),
	}
}

func (s *KeeperTestSuite) TestOnConfirmation_DisjointRequestsCommute() {
	forward := s.confirmInOrder(s.submitMixedRound())

	s.SetupTest()
	submitted := s.submitMixedRound()
	slices.Reverse(submitted)
	reversed := s.confirmInOrder(submitted)

	s.Equal(forward, reversed)
	// 2000 staked, 500 bonded away, 200 withdrawn back
	s.Equal("1700", forward.module)
	s.Len(forward.ledgers, 3)
}
