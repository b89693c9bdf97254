package types

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
)

func TestUnlockChunks_Add(t *testing.T) {
	var chunks UnlockChunks
	chunks, err := chunks.Add(math.NewInt(10), 5)
	require.NoError(t, err)
	merged, err := chunks.Add(math.NewInt(15), 5)
	require.NoError(t, err)

	require.Len(t, merged, 1)
	requireInt(t, 25, merged[0].Value)
	// the receiver is left alone
	requireInt(t, 10, chunks[0].Value)

	full := UnlockChunks{}
	for era := uint32(0); era < MaxUnlockingChunks; era++ {
		full, err = full.Add(math.OneInt(), era)
		require.NoError(t, err)
	}
	_, err = full.Add(math.OneInt(), MaxUnlockingChunks)
	require.ErrorIs(t, err, ErrNoMoreChunks)
	// same era still merges
	_, err = full.Add(math.OneInt(), MaxUnlockingChunks-1)
	require.NoError(t, err)
}

func TestUnlockChunks_Split(t *testing.T) {
	chunks := UnlockChunks{
		{Value: math.NewInt(10), Era: 3},
		{Value: math.NewInt(20), Era: 4},
		{Value: math.NewInt(30), Era: 6},
	}
	matured, pending := chunks.Split(4)
	requireInt(t, 30, matured)
	require.Len(t, pending, 1)
	require.Equal(t, uint32(6), pending[0].Era)
	requireInt(t, 60, chunks.Sum())
}

func TestStakingLedger_UnbondAndRebond(t *testing.T) {
	ledger := NewStakingLedger("stash", math.NewInt(1000))

	require.NoError(t, ledger.Unbond(math.NewInt(300), 10))
	require.NoError(t, ledger.Unbond(math.NewInt(200), 12))
	requireInt(t, 500, ledger.Active)
	requireInt(t, 500, ledger.Unbonding())
	require.NoError(t, ledger.Validate())

	// rebond takes from the latest chunks first
	rebonded := ledger.Rebond(math.NewInt(250))
	requireInt(t, 250, rebonded)
	requireInt(t, 750, ledger.Active)
	require.Len(t, ledger.Unlocking, 1)
	requireInt(t, 250, ledger.Unlocking[0].Value)
	require.Equal(t, uint32(10), ledger.Unlocking[0].Era)

	rebonded = ledger.Rebond(math.NewInt(1000))
	requireInt(t, 250, rebonded)
	requireInt(t, 1000, ledger.Active)
	require.Empty(t, ledger.Unlocking)
	require.NoError(t, ledger.Validate())

	require.ErrorIs(t, ledger.Unbond(math.NewInt(1001), 10), ErrArithmetic)
}

func TestStakingLedger_ConsolidateUnlocked(t *testing.T) {
	ledger := NewStakingLedger("stash", math.NewInt(1000))
	require.NoError(t, ledger.Unbond(math.NewInt(300), 10))
	require.NoError(t, ledger.Unbond(math.NewInt(200), 12))

	requireInt(t, 0, ledger.Unbonded(9))
	requireInt(t, 300, ledger.Unbonded(11))

	withdrawn := ledger.ConsolidateUnlocked(11)
	requireInt(t, 300, withdrawn)
	requireInt(t, 700, ledger.Total)
	requireInt(t, 500, ledger.Active)
	require.Len(t, ledger.Unlocking, 1)
	require.NoError(t, ledger.Validate())
}

func TestStakingLedger_Validate(t *testing.T) {
	tests := []struct {
		name   string
		ledger StakingLedger
		err    error
	}{
		{name: "valid", ledger: NewStakingLedger("stash", math.NewInt(10))},
		{name: "unset amounts", ledger: StakingLedger{Stash: "stash"}, err: ErrInvalidStakingLedger},
		{
			name:   "total mismatch",
			ledger: StakingLedger{Stash: "stash", Total: math.NewInt(10), Active: math.NewInt(5)},
			err:    ErrInvalidStakingLedger,
		},
		{
			name: "zero chunk",
			ledger: StakingLedger{
				Stash: "stash", Total: math.NewInt(5), Active: math.NewInt(5),
				Unlocking: UnlockChunks{{Value: math.ZeroInt(), Era: 1}},
			},
			err: ErrInvalidStakingLedger,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ledger.Validate()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}
