package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (s *KeeperTestSuite) advanceTo(height uint64) {
	s.mocks.Oracle.SetHeight(height)
	s.k.BeginBlocker(s.ctx)
}

func (s *KeeperTestSuite) TestMatching_WaitsForElectionOffset() {
	s.stake(s.alice, 1000)

	s.advanceTo(s.params.ElectionSolutionStoredOffset - 1)
	s.Empty(s.mocks.Transport.Submitted())
	s.False(s.k.IsMatchedThisEra(s.ctx))

	s.advanceTo(s.params.ElectionSolutionStoredOffset)
	s.Len(s.mocks.Transport.Submitted(), 1)
	s.True(s.k.IsMatchedThisEra(s.ctx))
}

func (s *KeeperTestSuite) TestMatching_StakeIsBondedOnConfirmation() {
	s.stake(s.alice, 1000)
	s.advanceTo(s.params.ElectionSolutionStoredOffset)

	submitted := s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 1)
	bond, ok := submitted[0].Request.(types.BondRequest)
	s.Require().True(ok, "got %s", submitted[0].Request)
	s.Equal(uint16(0), bond.Index)
	s.requireInt(995, bond.Amount)
	s.requirePool(995, 995, 0, 0)
	s.requireEvent(types.EventTypeBonding)

	// matched for this era already
	s.advanceTo(s.params.ElectionSolutionStoredOffset + 1)
	s.Len(s.mocks.Transport.Submitted(), 1)

	s.confirmAll()

	ledger, found := s.k.GetStakingLedger(s.ctx, 0)
	s.Require().True(found)
	s.requireInt(995, ledger.Total)
	s.requireInt(995, ledger.Active)
	s.Equal(types.DelegateAddress(0).String(), ledger.Stash)
	s.requirePool(0, 0, 0, 0)
	s.Empty(s.k.GetAllPendingRequests(s.ctx))
	// the bonded amount left for the remote chain, reserves stay
	s.requireInt(5, s.balance(types.ModuleAddress(), s.params.StakingDenom))
	s.requireEvent(types.EventTypeNotificationReceived)
}

func (s *KeeperTestSuite) TestMatching_FullUnstakeCycle() {
	eraLength := s.params.EraLength
	offset := s.params.ElectionSolutionStoredOffset

	s.stake(s.alice, 1000)
	s.advanceTo(offset)
	s.confirmAll()

	s.advanceTo(eraLength)
	s.Equal(uint32(1), s.k.GetCurrentEra(s.ctx))
	s.False(s.k.IsMatchedThisEra(s.ctx))

	_, targetEra, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(500), types.ProviderRelayChain)
	s.Require().NoError(err)
	s.Equal(uint32(30), targetEra)

	s.advanceTo(eraLength + offset)
	submitted := s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 1)
	unbond, ok := submitted[0].Request.(types.UnbondRequest)
	s.Require().True(ok, "got %s", submitted[0].Request)
	s.requireInt(500, unbond.Amount)
	s.Equal("500", s.requireEvent(types.EventTypeMatching)[types.AttributeKeyUnbondAmount])
	s.requirePool(0, 0, 500, 500)

	s.confirmAll()
	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(995, ledger.Total)
	s.requireInt(495, ledger.Active)
	s.Require().Len(ledger.Unlocking, 1)
	s.Equal(uint32(29), ledger.Unlocking[0].Era)
	s.requirePool(0, 0, 0, 0)

	// 28 eras later the delegate's chunk has matured
	eraStart := eraLength + 28*eraLength + offset
	s.advanceTo(eraStart)
	s.Equal(uint32(29), s.k.GetCurrentEra(s.ctx))
	s.Equal(eraStart, s.k.GetEraStartBlock(s.ctx))

	_, err = s.k.ClaimFor(s.ctx, s.alice)
	s.Require().ErrorIs(err, types.ErrNothingToClaim)

	s.advanceTo(eraStart + offset)
	submitted = s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 1)
	_, ok = submitted[0].Request.(types.WithdrawUnbondedRequest)
	s.Require().True(ok, "got %s", submitted[0].Request)
	s.confirmAll()

	ledger, _ = s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(495, ledger.Total)
	s.Empty(ledger.Unlocking)
	s.requireInt(505, s.balance(types.ModuleAddress(), s.params.StakingDenom))

	s.advanceTo(eraStart + eraLength)
	s.Equal(uint32(30), s.k.GetCurrentEra(s.ctx))

	claimed, err := s.k.ClaimFor(s.ctx, s.alice)
	s.Require().NoError(err)
	s.requireInt(500, claimed)
	s.requireInt(9500, s.balance(s.alice, s.params.StakingDenom))
	s.requireInt(5, s.balance(types.ModuleAddress(), s.params.StakingDenom))
	_, found := s.k.GetUnlockings(s.ctx, s.alice)
	s.False(found)
	s.True(s.k.GetExchangeRate(s.ctx).Equal(math.LegacyOneDec()))
}

func (s *KeeperTestSuite) TestMatching_BondSplitsAtLedgerCap() {
	s.setParams(func(p *types.Params) { p.StakingLedgerCap = math.NewInt(800) })
	// 5 of 1005 goes to reserves
	s.stake(s.alice, 1005)
	s.requirePool(1000, 0, 0, 0)

	s.Require().NoError(s.k.DoMatching(s.ctx))
	submitted := s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 2)
	amounts := map[uint16]int64{}
	for _, sub := range submitted {
		bond, ok := sub.Request.(types.BondRequest)
		s.Require().True(ok, "got %s", sub.Request)
		amounts[bond.Index] = bond.Amount.Int64()
	}
	s.Equal(map[uint16]int64{0: 800, 1: 200}, amounts)
	s.requirePool(1000, 1000, 0, 0)

	s.confirmAll()
	s.requireInt(1000, s.k.GetTotalActiveBonded(s.ctx))
	s.Len(s.k.GetAllStakingLedgers(s.ctx), 2)
	s.requirePool(0, 0, 0, 0)
}

func (s *KeeperTestSuite) TestMatching_NetsStakeAgainstUnstake() {
	s.stake(s.alice, 1000)
	_, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(400), types.ProviderRelayChain)
	s.Require().NoError(err)

	s.Require().NoError(s.k.DoMatching(s.ctx))

	submitted := s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 1)
	bond, ok := submitted[0].Request.(types.BondRequest)
	s.Require().True(ok)
	s.requireInt(595, bond.Amount)
	// the 400 both sides had free settled locally
	s.requirePool(595, 595, 0, 0)

	s.confirmAll()
	s.requirePool(0, 0, 0, 0)
	s.requireInt(405, s.balance(types.ModuleAddress(), s.params.StakingDenom))

	s.k.ForceSetCurrentEra(s.ctx, 29)
	claimed, err := s.k.ClaimFor(s.ctx, s.alice)
	s.Require().NoError(err)
	s.requireInt(400, claimed)
	s.requireInt(9400, s.balance(s.alice, s.params.StakingDenom))
}

func (s *KeeperTestSuite) TestMatching_FailedBondKeepsLock() {
	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.DoMatching(s.ctx))
	submitted := s.mocks.Transport.Drain()
	s.Require().Len(submitted, 1)

	s.Require().NoError(s.k.OnConfirmation(s.ctx, submitted[0].CorrelationID, types.FailureOutcome("bond rejected")))

	attrs := s.requireEvent(types.EventTypeRemoteRequestFailed)
	s.Equal("bond rejected", attrs[types.AttributeKeyReason])
	s.Equal(string(types.RequestKindBond), attrs[types.AttributeKeyRequestKind])
	_, found := s.k.GetStakingLedger(s.ctx, 0)
	s.False(found)
	s.Empty(s.k.GetAllPendingRequests(s.ctx))
	s.requirePool(995, 995, 0, 0)

	// nothing free is left to match
	s.Require().NoError(s.k.DoMatching(s.ctx))
	s.Empty(s.mocks.Transport.Submitted())
}

func (s *KeeperTestSuite) TestOnConfirmation_UnknownAndDuplicateIDs() {
	s.Require().NoError(s.k.OnConfirmation(s.ctx, 999, types.SuccessOutcome()))

	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.DoMatching(s.ctx))
	submitted := s.confirmAll()
	s.Require().Len(submitted, 1)

	s.Require().NoError(s.k.OnConfirmation(s.ctx, submitted[0].CorrelationID, types.SuccessOutcome()))
	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(995, ledger.Total)
	s.requireInt(5, s.balance(types.ModuleAddress(), s.params.StakingDenom))
}

func (s *KeeperTestSuite) TestMatching_TransportFailureRollsBackRound() {
	s.stake(s.alice, 1000)
	s.mocks.Transport.FailWith(types.ErrTransportCongested)

	s.advanceTo(s.params.ElectionSolutionStoredOffset)
	s.False(s.k.IsMatchedThisEra(s.ctx))
	s.requirePool(995, 0, 0, 0)
	s.Empty(s.k.GetAllPendingRequests(s.ctx))

	s.mocks.Transport.FailWith(nil)
	s.advanceTo(s.params.ElectionSolutionStoredOffset + 1)
	s.True(s.k.IsMatchedThisEra(s.ctx))
	s.requirePool(995, 995, 0, 0)
	s.Len(s.k.GetAllPendingRequests(s.ctx), 1)
}

func (s *KeeperTestSuite) TestMultiBond_SkipsDelegatesWithPendingBond() {
	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.Bond(s.ctx, 0, math.NewInt(300)))

	err := s.k.Bond(s.ctx, 0, math.NewInt(300))
	s.Require().ErrorIs(err, types.ErrAlreadyBonded)

	s.Require().NoError(s.k.DoMatching(s.ctx))
	submitted := s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 2)
	second, ok := submitted[1].Request.(types.BondRequest)
	s.Require().True(ok)
	s.Equal(uint16(1), second.Index)
	s.requireInt(695, second.Amount)
	s.requirePool(995, 995, 0, 0)
}

func (s *KeeperTestSuite) TestBond_Validation() {
	s.stake(s.alice, 1000)

	s.Require().ErrorIs(s.k.Bond(s.ctx, 5, math.NewInt(200)), types.ErrInvalidDerivativeIndex)
	s.Require().ErrorIs(s.k.Bond(s.ctx, 0, math.NewInt(50)), types.ErrInsufficientBond)
	s.Require().ErrorIs(s.k.BondExtra(s.ctx, 0, math.NewInt(50)), types.ErrNotBonded)

	s.setParams(func(p *types.Params) { p.StakingLedgerCap = math.NewInt(500) })
	s.Require().ErrorIs(s.k.Bond(s.ctx, 0, math.NewInt(600)), types.ErrCapExceeded)

	// a zero amount is a no-op
	s.Require().NoError(s.k.Bond(s.ctx, 0, math.ZeroInt()))
	s.Empty(s.mocks.Transport.Submitted())
	s.requirePool(995, 0, 0, 0)
}

func (s *KeeperTestSuite) TestBond_BondedDelegateGetsBondExtra() {
	s.stake(s.alice, 1000)
	s.setLedger(0, types.NewStakingLedger(types.DelegateAddress(0).String(), math.NewInt(500)))

	s.Require().NoError(s.k.Bond(s.ctx, 0, math.NewInt(50)))
	submitted := s.confirmAll()
	s.Require().Len(submitted, 1)
	s.Equal(types.RequestKindBondExtra, submitted[0].Request.Kind())

	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(550, ledger.Active)
	s.requirePool(945, 0, 0, 0)
}

func (s *KeeperTestSuite) TestUnbond_KeepsMinimumOrNothing() {
	s.setLedger(0, types.NewStakingLedger(types.DelegateAddress(0).String(), math.NewInt(995)))
	pool := types.NewMatchingLedger()
	pool.TotalUnstakeAmount.Total = math.NewInt(995)
	s.k.SetMatchingPool(s.ctx, pool)

	s.Require().ErrorIs(s.k.Unbond(s.ctx, 0, math.NewInt(950)), types.ErrInsufficientBond)
	s.Require().ErrorIs(s.k.Unbond(s.ctx, 0, math.NewInt(1000)), types.ErrInsufficientBond)
	s.Require().ErrorIs(s.k.Unbond(s.ctx, 1, math.NewInt(100)), types.ErrNotBonded)

	s.Require().NoError(s.k.Unbond(s.ctx, 0, math.NewInt(995)))
	s.requirePool(0, 0, 995, 995)

	s.confirmAll()
	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.True(ledger.Active.IsZero())
	s.requireInt(995, ledger.Total)
	s.Equal(s.params.BondingDuration, ledger.Unlocking[0].Era)
	s.requirePool(0, 0, 0, 0)
}

func (s *KeeperTestSuite) TestMultiUnbond_DrainsLargestDelegateFirst() {
	s.setLedger(0, types.NewStakingLedger("d0", math.NewInt(1000)))
	s.setLedger(1, types.NewStakingLedger("d1", math.NewInt(400)))
	pool := types.NewMatchingLedger()
	pool.TotalUnstakeAmount.Total = math.NewInt(1200)
	s.k.SetMatchingPool(s.ctx, pool)

	s.Require().NoError(s.k.MultiUnbond(s.ctx, math.NewInt(1200)))

	submitted := s.mocks.Transport.Submitted()
	s.Require().Len(submitted, 2)
	s.Equal(uint16(0), submitted[0].Request.DerivativeIndex())
	s.requireInt(1000, submitted[0].Request.(types.UnbondRequest).Amount)
	s.Equal(uint16(1), submitted[1].Request.DerivativeIndex())
	s.requireInt(200, submitted[1].Request.(types.UnbondRequest).Amount)
	s.requirePool(0, 0, 1200, 1200)
}

func (s *KeeperTestSuite) TestRebond_MovesUnlockingBackToActive() {
	s.setLedger(0, types.StakingLedger{
		Stash:     "d0",
		Total:     math.NewInt(995),
		Active:    math.NewInt(495),
		Unlocking: types.UnlockChunks{{Value: math.NewInt(500), Era: 28}},
	})
	pool := types.NewMatchingLedger()
	pool.TotalStakeAmount.Total = math.NewInt(300)
	s.k.SetMatchingPool(s.ctx, pool)

	s.Require().NoError(s.k.Rebond(s.ctx, 0, math.NewInt(300)))
	s.requirePool(300, 300, 0, 0)
	s.confirmAll()

	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(795, ledger.Active)
	s.requireInt(995, ledger.Total)
	s.Require().Len(ledger.Unlocking, 1)
	s.requireInt(200, ledger.Unlocking[0].Value)
	s.requirePool(0, 0, 0, 0)
}

func (s *KeeperTestSuite) TestWithdrawUnbonded_SkipsWhileNothingMatured() {
	s.setLedger(0, types.StakingLedger{
		Stash:     "d0",
		Total:     math.NewInt(500),
		Active:    math.NewInt(400),
		Unlocking: types.UnlockChunks{{Value: math.NewInt(100), Era: 10}},
	})

	s.Require().NoError(s.k.WithdrawUnbonded(s.ctx, 0, 0))
	s.Empty(s.mocks.Transport.Submitted())

	s.k.ForceSetCurrentEra(s.ctx, 10)
	s.Require().NoError(s.k.WithdrawUnbonded(s.ctx, 0, 0))
	s.confirmAll()

	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(400, ledger.Total)
	s.requireInt(100, s.balance(types.ModuleAddress(), s.params.StakingDenom))
}
