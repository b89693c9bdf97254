package keeper_test

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestStake_MintsAtRateAndKeepsReserves() {
	liquid := s.stake(s.alice, 1000)

	// 0.5% of 1000 stays in reserves
	s.requireInt(995, liquid)
	s.requireInt(995, s.balance(s.alice, s.params.LiquidDenom))
	s.requireInt(9000, s.balance(s.alice, s.params.StakingDenom))
	s.requireInt(1000, s.balance(types.ModuleAddress(), s.params.StakingDenom))
	s.requireInt(5, s.k.GetTotalReserves(s.ctx))
	s.requirePool(995, 0, 0, 0)

	attrs := s.requireEvent(types.EventTypeStaked)
	s.Equal("995", attrs[types.AttributeKeyLiquidAmount])
	s.Equal("5", attrs[types.AttributeKeyReserves])
}

func (s *KeeperTestSuite) TestStake_UsesExchangeRate() {
	s.Require().NoError(s.k.SetExchangeRate(s.ctx, math.LegacyNewDec(2)))

	liquid := s.stake(s.alice, 1000)
	// 995 / 2 rounds down
	s.requireInt(497, liquid)
	s.requirePool(995, 0, 0, 0)
}

func (s *KeeperTestSuite) TestStake_BelowMinimum() {
	_, err := s.k.Stake(s.ctx, s.alice, math.NewInt(99))
	s.Require().ErrorIs(err, types.ErrStakeTooSmall)
	s.requirePool(0, 0, 0, 0)
}

func (s *KeeperTestSuite) TestStake_RemoteFeeMustBeCovered() {
	s.setParams(func(p *types.Params) { p.RemoteFee = math.NewInt(200) })

	_, err := s.k.Stake(s.ctx, s.alice, math.NewInt(150))
	s.Require().ErrorIs(err, types.ErrStakeTooSmall)

	liquid := s.stake(s.alice, 1000)
	s.requireInt(795, liquid)
	s.requireInt(200, s.balance(s.params.FeeReceiver(), s.params.StakingDenom))
	s.requireInt(800, s.balance(types.ModuleAddress(), s.params.StakingDenom))
	s.requireInt(9000, s.balance(s.alice, s.params.StakingDenom))
}

func (s *KeeperTestSuite) TestStake_RemoteFeeIsNotClaimable() {
	s.setParams(func(p *types.Params) {
		p.RemoteFee = math.NewInt(50)
		p.ReserveFactor = math.LegacyZeroDec()
	})
	s.stake(s.alice, 1000)
	s.requireInt(50, s.balance(s.params.FeeReceiver(), s.params.StakingDenom))
	s.requireInt(950, s.balance(types.ModuleAddress(), s.params.StakingDenom))

	s.Require().NoError(s.k.DoMatching(s.ctx))
	s.confirmAll()
	s.requireInt(0, s.balance(types.ModuleAddress(), s.params.StakingDenom))

	_, targetEra, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(100), types.ProviderRelayChain)
	s.Require().NoError(err)
	chunks, found := s.k.GetUnlockings(s.ctx, s.alice)
	s.Require().True(found)
	owed := chunks.Sum()

	s.k.ForceSetCurrentEra(s.ctx, targetEra)
	_, err = s.k.ClaimFor(s.ctx, s.alice)
	s.Require().ErrorIs(err, types.ErrNotWithdrawn)
	s.Require().ErrorContains(err, "withdrawn 0")

	// stand-in for the confirmed withdraw
	s.fund(types.ModuleAddress(), s.params.StakingDenom, owed.Int64())
	amount, err := s.k.ClaimFor(s.ctx, s.alice)
	s.Require().NoError(err)
	s.Equal(owed.String(), amount.String())
	s.requireInt(50, s.balance(s.params.FeeReceiver(), s.params.StakingDenom))
}

func (s *KeeperTestSuite) TestStake_InsufficientFunds() {
	poor := sdk.AccAddress([]byte("poor________________"))
	s.fund(poor, s.params.StakingDenom, 500)

	_, err := s.k.Stake(s.ctx, poor, math.NewInt(1000))
	s.Require().ErrorIs(err, types.ErrInsufficientFunds)
	s.requireInt(500, s.balance(poor, s.params.StakingDenom))
}

func (s *KeeperTestSuite) TestStake_MarketCap() {
	s.setParams(func(p *types.Params) { p.StakingLedgerCap = math.NewInt(500) })

	// two delegates, cap 1000 in total
	_, err := s.k.Stake(s.ctx, s.alice, math.NewInt(1100))
	s.Require().ErrorIs(err, types.ErrCapExceeded)

	s.setLedger(0, types.NewStakingLedger("d0", math.NewInt(500)))
	s.setLedger(1, types.NewStakingLedger("d1", math.NewInt(400)))
	_, err = s.k.Stake(s.ctx, s.alice, math.NewInt(200))
	s.Require().ErrorIs(err, types.ErrCapExceeded)

	s.stake(s.alice, 100)
}

func (s *KeeperTestSuite) TestUnstake_RelayChain() {
	s.stake(s.alice, 1000)

	amount, targetEra, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(400), types.ProviderRelayChain)
	s.Require().NoError(err)
	s.requireInt(400, amount)
	s.Equal(s.params.BondingDuration+1, targetEra)

	s.requireInt(595, s.balance(s.alice, s.params.LiquidDenom))
	s.requireInt(595, s.mocks.Ledger.GetSupply(s.ctx, s.params.LiquidDenom).Amount)
	s.requirePool(995, 0, 400, 0)

	chunks, found := s.k.GetUnlockings(s.ctx, s.alice)
	s.Require().True(found)
	s.Require().Len(chunks, 1)
	s.requireInt(400, chunks[0].Value)
	s.Equal(targetEra, chunks[0].Era)

	// a second unstake in the same era merges into the same chunk
	_, _, err = s.k.Unstake(s.ctx, s.alice, math.NewInt(100), types.ProviderRelayChain)
	s.Require().NoError(err)
	chunks, _ = s.k.GetUnlockings(s.ctx, s.alice)
	s.Require().Len(chunks, 1)
	s.requireInt(500, chunks[0].Value)
}

func (s *KeeperTestSuite) TestUnstake_UsesExchangeRate() {
	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.SetExchangeRate(s.ctx, math.LegacyNewDecWithPrec(15, 1)))

	amount, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(101), types.ProviderRelayChain)
	s.Require().NoError(err)
	// 101 * 1.5 rounds down
	s.requireInt(151, amount)
	s.requirePool(995, 0, 151, 0)
}

func (s *KeeperTestSuite) TestUnstake_Validation() {
	s.stake(s.alice, 1000)

	_, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(49), types.ProviderRelayChain)
	s.Require().ErrorIs(err, types.ErrUnstakeTooSmall)

	_, _, err = s.k.Unstake(s.ctx, s.alice, math.NewInt(100), types.UnstakeProvider("bridge"))
	s.Require().ErrorIs(err, types.ErrInvalidUnstakeProvider)

	_, _, err = s.k.Unstake(s.ctx, s.alice, math.NewInt(2000), types.ProviderRelayChain)
	s.Require().ErrorIs(err, types.ErrInsufficientFunds)

	s.requirePool(995, 0, 0, 0)
}

func (s *KeeperTestSuite) TestUnstake_NoMoreChunks() {
	s.stake(s.alice, 5000)
	for era := uint32(0); era < types.MaxUnlockingChunks; era++ {
		s.k.ForceSetCurrentEra(s.ctx, era)
		_, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(50), types.ProviderRelayChain)
		s.Require().NoError(err)
	}
	s.k.ForceSetCurrentEra(s.ctx, types.MaxUnlockingChunks)
	_, _, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(50), types.ProviderRelayChain)
	s.Require().ErrorIs(err, types.ErrNoMoreChunks)
}

func (s *KeeperTestSuite) TestUnstake_Loans() {
	s.stake(s.alice, 1000)
	module := types.ModuleAddress()

	s.mocks.Loans.EXPECT().
		GetMarketInfo(gomock.Any(), s.params.CollateralDenom).
		Return(types.MarketInfo{CollateralFactor: math.LegacyNewDecWithPrec(5, 1)}, nil)
	s.mocks.Loans.EXPECT().
		Mint(gomock.Any(), module, s.params.CollateralDenom, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sdk.AccAddress, _ string, amount math.Int) error {
			s.requireInt(1000, amount)
			return nil
		})
	s.mocks.Loans.EXPECT().
		CollateralAsset(gomock.Any(), module, s.params.CollateralDenom, true).
		Return(nil)
	s.mocks.Loans.EXPECT().
		Borrow(gomock.Any(), module, s.params.StakingDenom, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ sdk.AccAddress, _ string, amount math.Int) error {
			// 3% instant unstake fee
			s.requireInt(485, amount)
			return nil
		})

	amount, targetEra, err := s.k.Unstake(s.ctx, s.alice, math.NewInt(500), types.ProviderLoans)
	s.Require().NoError(err)
	s.requireInt(500, amount)

	s.requireInt(9485, s.balance(s.alice, s.params.StakingDenom))
	s.requireInt(1000, s.balance(module, s.params.CollateralDenom))

	_, found := s.k.GetUnlockings(s.ctx, s.alice)
	s.False(found)
	chunks, found := s.k.GetUnlockings(s.ctx, types.LoansAddress())
	s.Require().True(found)
	s.requireInt(500, chunks.Sum())
	s.Equal(targetEra, chunks[0].Era)
}

func (s *KeeperTestSuite) TestUnstake_LoansFailureRollsBackThroughMsgServer() {
	s.stake(s.alice, 1000)

	s.mocks.Loans.EXPECT().
		GetMarketInfo(gomock.Any(), s.params.CollateralDenom).
		Return(types.MarketInfo{}, types.ErrLoansUnavailable)

	_, err := s.msgServer.Unstake(s.ctx, &types.MsgUnstake{
		Unstaker:     s.alice.String(),
		LiquidAmount: math.NewInt(500),
		Provider:     types.ProviderLoans,
	})
	s.Require().ErrorIs(err, types.ErrLoansUnavailable)

	s.requireInt(995, s.balance(s.alice, s.params.LiquidDenom))
	s.requirePool(995, 0, 0, 0)
	_, found := s.k.GetUnlockings(s.ctx, types.LoansAddress())
	s.False(found)
}
