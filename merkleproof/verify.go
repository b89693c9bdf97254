package merkleproof

import (
	"cosmossdk.io/store/rootmulti"
	"github.com/cometbft/cometbft/crypto/merkle"
	cryptotypes "github.com/cometbft/cometbft/proto/tendermint/crypto"
	ibctypes "github.com/cosmos/ibc-go/v8/modules/core/23-commitment/types"
	"github.com/pkg/errors"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

// Verifier checks store proofs produced by a remote multistore query with
// prove=true. Proof bytes are the protobuf encoding of the returned ProofOps.
type Verifier struct {
	// UseProofRuntime verifies through the multistore proof runtime instead
	// of converting the operations to an ICS-23 merkle proof.
	UseProofRuntime bool
}

var _ types.ProofVerifier = Verifier{}

func NewVerifier() Verifier {
	return Verifier{}
}

func (v Verifier) VerifyMembership(root []byte, storeKey, key string, value []byte, proof []byte) error {
	proofOps, err := DecodeProofOps(proof)
	if err != nil {
		return err
	}
	if v.UseProofRuntime {
		return VerifyUsingProofRt(proofOps, root, KeyPath(storeKey, key), value)
	}
	return VerifyUsingMerkleProof(proofOps, root, storeKey, key, value)
}

func DecodeProofOps(proof []byte) (*cryptotypes.ProofOps, error) {
	if len(proof) == 0 {
		return nil, errors.New("empty proof")
	}
	var proofOps cryptotypes.ProofOps
	if err := proofOps.Unmarshal(proof); err != nil {
		return nil, errors.Wrap(err, "failed to decode proof ops")
	}
	if len(proofOps.Ops) == 0 {
		return nil, errors.New("proof has no operations")
	}
	return &proofOps, nil
}

// KeyPath renders the store and key as the URL-encoded path the proof
// runtime expects.
func KeyPath(storeKey, key string) string {
	return merkle.KeyPath{}.
		AppendKey([]byte(storeKey), merkle.KeyEncodingURL).
		AppendKey([]byte(key), merkle.KeyEncodingURL).
		String()
}

func VerifyUsingProofRt(proofOps *cryptotypes.ProofOps, root []byte, keypath string, value []byte) error {
	// the runtime from rootmulti knows the iavl and multistore operators
	proofRt := rootmulti.DefaultProofRuntime()
	return proofRt.VerifyValue(proofOps, root, keypath, value)
}

func VerifyUsingMerkleProof(proofOps *cryptotypes.ProofOps, root []byte, moduleKey string, valueKey string, value []byte) error {
	merkleProof, err := ibctypes.ConvertProofs(proofOps)
	if err != nil {
		return err
	}

	merkleRoot := ibctypes.MerkleRoot{Hash: root}
	path := ibctypes.MerklePath{KeyPath: []string{moduleKey, valueKey}}

	return merkleProof.VerifyMembership(ibctypes.GetSDKSpecs(), merkleRoot, path, value)
}
