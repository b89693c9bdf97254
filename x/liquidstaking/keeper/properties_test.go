package keeper_test

import (
	"math/rand"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// TestInvariants_HoldOverRandomOperations drives seeded sequences of user
// and remote operations. Rejected operations roll back; the accounting
// invariants must hold after every step.
func (s *KeeperTestSuite) TestInvariants_HoldOverRandomOperations() {
	for _, seed := range []int64{1, 2, 3, 42} {
		s.SetupTest()
		s.fund(s.alice, s.params.StakingDenom, 1_000_000)
		s.fund(s.bob, s.params.StakingDenom, 1_000_000)

		r := rand.New(rand.NewSource(seed))
		accounts := []sdk.AccAddress{s.alice, s.bob}
		invariant := keeper.AllInvariants(s.k)
		rate := s.k.GetExchangeRate(s.ctx)

		for step := 0; step < 200; step++ {
			account := accounts[r.Intn(len(accounts))]
			amount := math.NewInt(1 + r.Int63n(20_000))

			_ = s.k.InTransaction(s.ctx, func(ctx sdk.Context) error {
				var err error
				switch r.Intn(7) {
				case 0, 1:
					_, err = s.k.Stake(ctx, account, amount)
				case 2:
					_, _, err = s.k.Unstake(ctx, account, amount, types.ProviderRelayChain)
				case 3:
					_, _, err = s.k.Unstake(ctx, account, amount, types.ProviderMatchingPool)
				case 4:
					err = s.k.DoMatching(ctx)
				case 5:
					err = s.k.AdvanceEra(ctx, uint32(1+r.Intn(10)))
				case 6:
					_, err = s.k.ClaimFor(ctx, account)
				}
				return err
			})

			if r.Intn(3) == 0 {
				for _, sub := range s.mocks.Transport.Drain() {
					outcome := types.SuccessOutcome()
					if r.Intn(10) == 0 {
						outcome = types.FailureOutcome("remote rejected")
					}
					_ = s.k.InTransaction(s.ctx, func(ctx sdk.Context) error {
						return s.k.OnConfirmation(ctx, sub.CorrelationID, outcome)
					})
				}
			}

			msg, broken := invariant(s.ctx)
			s.Require().False(broken, "seed %d step %d: %s", seed, step, msg)

			current := s.k.GetExchangeRate(s.ctx)
			s.Require().True(current.GTE(rate), "seed %d step %d: rate fell from %s to %s", seed, step, rate, current)
			rate = current
		}
	}
}
