package types

import (
	"encoding/binary"
	"encoding/json"
)

// EraProofValue is the stored form of the remote current era that proofs commit to.
func EraProofValue(era uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, era)
	return bz
}

// StakingLedgerProofValue is the stored form of a remote staking ledger.
func StakingLedgerProofValue(ledger StakingLedger) ([]byte, error) {
	return json.Marshal(ledger)
}
