package keeper_test

import (
	stdmath "math"

	"cosmossdk.io/math"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

func (s *KeeperTestSuite) TestEraOffset() {
	eraLength := s.params.EraLength
	s.Equal(uint32(0), s.k.EraOffset(s.ctx, 0))
	s.Equal(uint32(0), s.k.EraOffset(s.ctx, eraLength-1))
	s.Equal(uint32(1), s.k.EraOffset(s.ctx, eraLength))
	s.Equal(uint32(2), s.k.EraOffset(s.ctx, 2*eraLength+1))

	s.k.ForceSetEraStartBlock(s.ctx, 5*eraLength)
	s.Equal(uint32(0), s.k.EraOffset(s.ctx, eraLength))
	s.Equal(uint32(1), s.k.EraOffset(s.ctx, 6*eraLength))
	s.requireEvent(types.EventTypeEraStartBlockUpdated)
}

func (s *KeeperTestSuite) TestBeginBlocker_AdvancesByWholeEras() {
	s.advanceTo(2*s.params.EraLength + 10)

	era := s.k.GetEraState(s.ctx)
	s.Equal(uint32(2), era.CurrentEra)
	s.Equal(2*s.params.EraLength+10, era.EraStartBlock)
	s.False(era.IsMatched)
	s.Equal("2", s.requireEvent(types.EventTypeNewEra)[types.AttributeKeyEra])
}

func (s *KeeperTestSuite) TestAdvanceEra_ZeroOffsetIsNoop() {
	s.mocks.Oracle.SetHeight(100)
	s.Require().NoError(s.k.AdvanceEra(s.ctx, 0))
	s.Equal(uint32(0), s.k.GetCurrentEra(s.ctx))
	s.Equal(uint64(0), s.k.GetEraStartBlock(s.ctx))
	_, found := s.findEvent(types.EventTypeNewEra)
	s.False(found)
}

func (s *KeeperTestSuite) TestAdvanceEra_Overflow() {
	s.k.ForceSetCurrentEra(s.ctx, stdmath.MaxUint32)
	s.Require().ErrorIs(s.k.AdvanceEra(s.ctx, 1), types.ErrArithmetic)
	s.Equal(uint32(stdmath.MaxUint32), s.k.GetCurrentEra(s.ctx))
}

func (s *KeeperTestSuite) TestAdvanceEra_RefusesOracleBehindEraStart() {
	s.k.ForceSetEraStartBlock(s.ctx, 1000)
	s.mocks.Oracle.SetHeight(999)
	s.Require().ErrorIs(s.k.AdvanceEra(s.ctx, 1), types.ErrOracleBehind)
	s.Equal(uint32(0), s.k.GetCurrentEra(s.ctx))
	s.Equal(uint64(1000), s.k.GetEraStartBlock(s.ctx))

	s.mocks.Oracle.SetHeight(1000)
	s.Require().NoError(s.k.AdvanceEra(s.ctx, 1))
	s.Equal(uint32(1), s.k.GetCurrentEra(s.ctx))
	s.Equal(uint64(1000), s.k.GetEraStartBlock(s.ctx))
}

func (s *KeeperTestSuite) TestAdvanceEra_ResetsMatchedFlag() {
	s.Require().NoError(s.k.DoMatching(s.ctx))
	s.True(s.k.IsMatchedThisEra(s.ctx))

	s.Require().NoError(s.k.AdvanceEra(s.ctx, 1))
	s.False(s.k.IsMatchedThisEra(s.ctx))
}

func (s *KeeperTestSuite) TestAdvanceEra_RaisesExchangeRate() {
	s.stake(s.alice, 1000)
	s.Require().NoError(s.k.DoMatching(s.ctx))
	s.confirmAll()

	// rewards doubled the bonded amount
	s.setLedger(0, types.NewStakingLedger("d0", math.NewInt(1990)))
	s.Require().NoError(s.k.AdvanceEra(s.ctx, 1))
	s.Equal(math.LegacyNewDec(2).String(), s.k.GetExchangeRate(s.ctx).String())
	s.requireEvent(types.EventTypeExchangeRateUpdated)

	// a slash never lowers it
	s.setLedger(0, types.NewStakingLedger("d0", math.NewInt(500)))
	s.Require().NoError(s.k.AdvanceEra(s.ctx, 1))
	s.Equal(math.LegacyNewDec(2).String(), s.k.GetExchangeRate(s.ctx).String())
}

func (s *KeeperTestSuite) TestForceSetCurrentEra_KeepsStartBlockAndRate() {
	s.k.ForceSetEraStartBlock(s.ctx, 42)
	s.Require().NoError(s.k.DoMatching(s.ctx))

	s.k.ForceSetCurrentEra(s.ctx, 7)
	era := s.k.GetEraState(s.ctx)
	s.Equal(uint32(7), era.CurrentEra)
	s.Equal(uint64(42), era.EraStartBlock)
	s.False(era.IsMatched)
	s.True(s.k.GetExchangeRate(s.ctx).Equal(math.LegacyOneDec()))
}
