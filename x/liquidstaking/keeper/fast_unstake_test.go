package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestFastUnstake_MatchedAgainstFreeStake() {
	s.stake(s.alice, 1000)
	s.stake(s.bob, 1000)

	amount, targetEra, err := s.k.Unstake(s.ctx, s.bob, math.NewInt(500), types.ProviderMatchingPool)
	s.Require().NoError(err)
	s.True(amount.IsZero())
	s.Equal(uint32(0), targetEra)

	request, found := s.k.GetFastUnstakeRequest(s.ctx, s.bob)
	s.Require().True(found)
	s.requireInt(500, request)
	// nothing moves until matched
	s.requireInt(995, s.balance(s.bob, s.params.LiquidDenom))
	s.requirePool(1990, 0, 0, 0)

	s.Require().NoError(s.k.FastMatchUnstake(s.ctx, []sdk.AccAddress{s.bob}))

	// 1% fee on 500
	s.requireInt(495, s.balance(s.bob, s.params.LiquidDenom))
	s.requireInt(9495, s.balance(s.bob, s.params.StakingDenom))
	s.requireInt(5, s.balance(s.params.FeeReceiver(), s.params.LiquidDenom))
	s.requirePool(1495, 0, 0, 0)
	_, found = s.k.GetFastUnstakeRequest(s.ctx, s.bob)
	s.False(found)

	attrs := s.requireEvent(types.EventTypeFastUnstakeMatched)
	s.Equal("495", attrs[types.AttributeKeyAmount])
	s.Equal("5", attrs[types.AttributeKeyFee])
}

func (s *KeeperTestSuite) TestFastUnstake_PartialMatchKeepsRemainder() {
	s.stake(s.alice, 1000)
	s.fund(s.bob, s.params.LiquidDenom, 2000)

	_, _, err := s.k.Unstake(s.ctx, s.bob, math.NewInt(1500), types.ProviderMatchingPool)
	s.Require().NoError(err)

	s.Require().NoError(s.k.FastMatchUnstake(s.ctx, []sdk.AccAddress{s.bob}))

	// only 995 of free stake was available
	request, found := s.k.GetFastUnstakeRequest(s.ctx, s.bob)
	s.Require().True(found)
	s.requireInt(505, request)
	s.requireInt(1005, s.balance(s.bob, s.params.LiquidDenom))
	s.requireInt(10_986, s.balance(s.bob, s.params.StakingDenom))
	s.requirePool(9, 0, 0, 0)

	remaining, err := s.k.CancelUnstake(s.ctx, s.bob, math.NewInt(200))
	s.Require().NoError(err)
	s.requireInt(305, remaining)

	remaining, err = s.k.CancelUnstake(s.ctx, s.bob, math.NewInt(1000))
	s.Require().NoError(err)
	s.True(remaining.IsZero())
	_, found = s.k.GetFastUnstakeRequest(s.ctx, s.bob)
	s.False(found)
}

func (s *KeeperTestSuite) TestFastUnstake_LockedStakeIsNotAvailable() {
	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.DoMatching(s.ctx))
	s.fund(s.bob, s.params.LiquidDenom, 100)

	_, _, err := s.k.Unstake(s.ctx, s.bob, math.NewInt(100), types.ProviderMatchingPool)
	s.Require().NoError(err)
	s.Require().NoError(s.k.FastMatchUnstake(s.ctx, []sdk.AccAddress{s.bob}))

	request, _ := s.k.GetFastUnstakeRequest(s.ctx, s.bob)
	s.requireInt(100, request)
	s.requireInt(100, s.balance(s.bob, s.params.LiquidDenom))
	s.requirePool(995, 995, 0, 0)
}

func (s *KeeperTestSuite) TestFastUnstake_RequestCappedAtBalance() {
	s.fund(s.bob, s.params.LiquidDenom, 100)

	_, _, err := s.k.Unstake(s.ctx, s.bob, math.NewInt(80), types.ProviderMatchingPool)
	s.Require().NoError(err)
	_, _, err = s.k.Unstake(s.ctx, s.bob, math.NewInt(80), types.ProviderMatchingPool)
	s.Require().NoError(err)

	request, _ := s.k.GetFastUnstakeRequest(s.ctx, s.bob)
	s.requireInt(100, request)
}

func (s *KeeperTestSuite) TestCancelUnstake_WithoutRequest() {
	remaining, err := s.k.CancelUnstake(s.ctx, s.alice, math.NewInt(10))
	s.Require().NoError(err)
	s.True(remaining.IsZero())
}

func (s *KeeperTestSuite) TestFastMatchUnstake_IgnoresAccountsWithoutRequest() {
	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.FastMatchUnstake(s.ctx, []sdk.AccAddress{s.alice, s.bob}))
	s.requirePool(995, 0, 0, 0)
}
