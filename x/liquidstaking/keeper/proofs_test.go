package keeper_test

import (
	"errors"

	"cosmossdk.io/math"
	"go.uber.org/mock/gomock"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

var stateRoot = []byte("remote-state-root")

// admitSnapshot makes stateRoot the root proofs are checked against.
func (s *KeeperTestSuite) admitSnapshot(height uint64) {
	s.mocks.Oracle.SetSnapshot(types.ValidationSnapshot{Height: height, StateRoot: stateRoot})
	s.k.EndBlocker(s.ctx)
}

func (s *KeeperTestSuite) expectEraProof(era uint32, err error) {
	s.mocks.Verifier.EXPECT().
		VerifyMembership(stateRoot, types.RemoteStakingStoreKey, types.RemoteCurrentEraKey, types.EraProofValue(era), []byte("proof")).
		Return(err)
}

func (s *KeeperTestSuite) expectLedgerProof(index uint16, ledger types.StakingLedger) {
	value, err := types.StakingLedgerProofValue(ledger)
	s.Require().NoError(err)
	s.mocks.Verifier.EXPECT().
		VerifyMembership(stateRoot, types.RemoteStakingStoreKey, types.RemoteStakingLedgerKey(index), value, gomock.Any()).
		Return(nil)
}

func (s *KeeperTestSuite) TestProofs_RequireSnapshot() {
	err := s.k.SetCurrentEraWithProof(s.ctx, s.bob, 1, []byte("proof"))
	s.Require().ErrorIs(err, types.ErrNoValidationSnapshot)
}

func (s *KeeperTestSuite) TestEndBlocker_AdmitsSnapshotAndOpensRound() {
	s.Require().NoError(s.k.ForceSetStakingLedger(s.ctx, 0, types.NewStakingLedger("d0", math.NewInt(100))))
	s.True(s.k.IsLedgerUpdated(s.ctx, 0))

	s.admitSnapshot(12)

	s.False(s.k.IsLedgerUpdated(s.ctx, 0))
	snapshot, found := s.k.GetValidationData(s.ctx)
	s.Require().True(found)
	s.Equal(uint64(12), snapshot.Height)
	s.Equal(stateRoot, snapshot.StateRoot)
}

func (s *KeeperTestSuite) TestSetCurrentEraWithProof() {
	s.setParams(func(p *types.Params) { p.Incentive = math.NewInt(10) })
	s.fund(types.ModuleAddress(), s.params.NativeDenom, 15)
	s.admitSnapshot(1)

	s.expectEraProof(3, nil)
	s.Require().NoError(s.k.SetCurrentEraWithProof(s.ctx, s.bob, 3, []byte("proof")))
	s.Equal(uint32(3), s.k.GetCurrentEra(s.ctx))
	s.requireInt(10, s.balance(s.bob, s.params.NativeDenom))

	// a stale era changes nothing and earns nothing
	s.expectEraProof(2, nil)
	s.Require().NoError(s.k.SetCurrentEraWithProof(s.ctx, s.bob, 2, []byte("proof")))
	s.Equal(uint32(3), s.k.GetCurrentEra(s.ctx))
	s.requireInt(10, s.balance(s.bob, s.params.NativeDenom))

	// the incentive pool ran dry: the era still moves
	s.expectEraProof(4, nil)
	s.Require().NoError(s.k.SetCurrentEraWithProof(s.ctx, s.bob, 4, []byte("proof")))
	s.Equal(uint32(4), s.k.GetCurrentEra(s.ctx))
	s.requireInt(10, s.balance(s.bob, s.params.NativeDenom))
	s.requireInt(5, s.balance(types.ModuleAddress(), s.params.NativeDenom))
}

func (s *KeeperTestSuite) TestSetCurrentEraWithProof_InvalidProof() {
	s.admitSnapshot(1)
	s.expectEraProof(5, errors.New("root mismatch"))

	err := s.k.SetCurrentEraWithProof(s.ctx, s.bob, 5, []byte("proof"))
	s.Require().ErrorIs(err, types.ErrInvalidProof)
	s.Equal(uint32(0), s.k.GetCurrentEra(s.ctx))
}

func (s *KeeperTestSuite) TestSetStakingLedgerWithProof_InflatesCommission() {
	stash := types.DelegateAddress(0).String()
	s.setLedger(0, types.NewStakingLedger(stash, math.NewInt(1000)))
	s.fund(s.alice, s.params.LiquidDenom, 1000)
	s.admitSnapshot(1)

	rewarded := types.NewStakingLedger(stash, math.NewInt(1100))
	s.expectLedgerProof(0, rewarded)
	s.Require().NoError(s.k.SetStakingLedgerWithProof(s.ctx, s.bob, 0, rewarded, []byte("proof")))

	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(1100, ledger.Total)
	// 1000 * 10 / (1000 + 100 - 10)
	s.requireInt(9, s.balance(s.params.FeeReceiver(), s.params.LiquidDenom))
	_, found := s.findEvent(types.EventTypeNonIdealStakingLedger)
	s.False(found)

	// one update per round
	err := s.k.SetStakingLedgerWithProof(s.ctx, s.bob, 0, rewarded, []byte("proof"))
	s.Require().ErrorIs(err, types.ErrStakingLedgerLocked)
}

func (s *KeeperTestSuite) TestSetStakingLedgerWithProof_SlashIsNonIdeal() {
	stash := types.DelegateAddress(0).String()
	s.setLedger(0, types.NewStakingLedger(stash, math.NewInt(1000)))
	s.fund(s.alice, s.params.LiquidDenom, 1000)
	s.admitSnapshot(1)

	slashed := types.NewStakingLedger(stash, math.NewInt(900))
	s.expectLedgerProof(0, slashed)
	s.Require().NoError(s.k.SetStakingLedgerWithProof(s.ctx, s.bob, 0, slashed, []byte("proof")))

	s.Equal("0", s.requireEvent(types.EventTypeNonIdealStakingLedger)[types.AttributeKeyDerivativeIndex])
	s.True(s.balance(s.params.FeeReceiver(), s.params.LiquidDenom).IsZero())
	ledger, _ := s.k.GetStakingLedger(s.ctx, 0)
	s.requireInt(900, ledger.Active)
}

func (s *KeeperTestSuite) TestSetStakingLedgerWithProof_Validation() {
	s.admitSnapshot(1)
	ledger := types.NewStakingLedger("d0", math.NewInt(1000))

	err := s.k.SetStakingLedgerWithProof(s.ctx, s.bob, 7, ledger, nil)
	s.Require().ErrorIs(err, types.ErrInvalidDerivativeIndex)

	err = s.k.SetStakingLedgerWithProof(s.ctx, s.bob, 0, ledger, nil)
	s.Require().ErrorIs(err, types.ErrNotBonded)

	broken := ledger
	broken.Active = math.NewInt(2000)
	err = s.k.SetStakingLedgerWithProof(s.ctx, s.bob, 0, broken, nil)
	s.Require().ErrorIs(err, types.ErrInvalidStakingLedger)
}
