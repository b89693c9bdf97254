package keeper_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	testkeeper "github.com/productscience/liquidstaking/testutil/keeper"
	"github.com/productscience/liquidstaking/testutil/sample"
	"github.com/productscience/liquidstaking/x/liquidstaking/keeper"
	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx       sdk.Context
	k         keeper.Keeper
	mocks     testkeeper.LiquidStakingMocks
	msgServer types.MsgServer
	params    types.Params

	alice sdk.AccAddress
	bob   sdk.AccAddress
}

func (s *KeeperTestSuite) SetupTest() {
	k, ctx, mocks := testkeeper.LiquidStakingKeeperReturningMocks(s.T())

	s.ctx = ctx
	s.k = k
	s.mocks = mocks
	s.msgServer = keeper.NewMsgServerImpl(s.k)
	s.params = k.GetParams(ctx)

	s.alice = sample.Account()
	s.bob = sample.Account()
	s.fund(s.alice, s.params.StakingDenom, 10_000)
	s.fund(s.bob, s.params.StakingDenom, 10_000)
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) fund(addr sdk.AccAddress, denom string, amount int64) {
	s.Require().NoError(s.mocks.Ledger.FundAccount(s.ctx, addr, sdk.NewCoins(sdk.NewInt64Coin(denom, amount)), "test funding"))
}

func (s *KeeperTestSuite) balance(addr sdk.AccAddress, denom string) math.Int {
	return s.mocks.Ledger.GetBalance(s.ctx, addr, denom).Amount
}

// requireInt compares by value; math.Int internals differ for equal numbers.
func (s *KeeperTestSuite) requireInt(expected int64, actual math.Int, msgAndArgs ...interface{}) {
	s.T().Helper()
	s.Require().Equal(math.NewInt(expected).String(), actual.String(), msgAndArgs...)
}

func (s *KeeperTestSuite) requirePool(stakeTotal, stakeLocked, unstakeTotal, unstakeLocked int64) {
	s.T().Helper()
	pool := s.k.GetMatchingPool(s.ctx)
	s.requireInt(stakeTotal, pool.TotalStakeAmount.Total, "stake total")
	s.requireInt(stakeLocked, pool.TotalStakeAmount.Locked, "stake locked")
	s.requireInt(unstakeTotal, pool.TotalUnstakeAmount.Total, "unstake total")
	s.requireInt(unstakeLocked, pool.TotalUnstakeAmount.Locked, "unstake locked")
}

func (s *KeeperTestSuite) stake(addr sdk.AccAddress, amount int64) math.Int {
	s.T().Helper()
	liquid, err := s.k.Stake(s.ctx, addr, math.NewInt(amount))
	s.Require().NoError(err)
	return liquid
}

// confirmAll delivers a successful outcome for every request submitted so far.
func (s *KeeperTestSuite) confirmAll() []testkeeper.SubmittedRequest {
	s.T().Helper()
	submitted := s.mocks.Transport.Drain()
	for _, sub := range submitted {
		s.Require().NoError(s.k.OnConfirmation(s.ctx, sub.CorrelationID, types.SuccessOutcome()))
	}
	return submitted
}

func (s *KeeperTestSuite) setParams(fn func(p *types.Params)) {
	params := s.k.GetParams(s.ctx)
	fn(&params)
	s.Require().NoError(s.k.SetParams(s.ctx, params))
	s.params = params
}

func (s *KeeperTestSuite) resetEvents() {
	s.ctx = s.ctx.WithEventManager(sdk.NewEventManager())
}

// findEvent returns the attributes of the last event of eventType.
func (s *KeeperTestSuite) findEvent(eventType string) (map[string]string, bool) {
	var attrs map[string]string
	for _, e := range s.ctx.EventManager().Events() {
		if e.Type != eventType {
			continue
		}
		attrs = make(map[string]string, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs[a.Key] = a.Value
		}
	}
	return attrs, attrs != nil
}

func (s *KeeperTestSuite) requireEvent(eventType string) map[string]string {
	s.T().Helper()
	attrs, found := s.findEvent(eventType)
	s.Require().True(found, "expected a %s event", eventType)
	return attrs
}

func (s *KeeperTestSuite) setLedger(index uint16, ledger types.StakingLedger) {
	s.Require().NoError(s.k.StakingLedgers.Set(s.ctx, index, ledger))
}

func jsonOf[T any](s *KeeperTestSuite, items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		bz, err := json.Marshal(item)
		s.Require().NoError(err)
		out = append(out, string(bz))
	}
	return out
}
