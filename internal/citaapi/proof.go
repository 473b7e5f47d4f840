package citaapi

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/core/types"
	"github.com/rainchen/cita-common/rpc"
)

// ProofConverter turns the consensus proof carried by a header into its RPC
// form.
type ProofConverter interface {
	ConvertProof(proof *types.ProtoProof) (*rpc.Proof, error)
}

// ConsensusProofConverter understands the proofs written by the Raft, Bft and
// Tendermint engines. AuthorityRound proofs have no RPC form and are rejected.
type ConsensusProofConverter struct{}

// ConvertProof implements ProofConverter.
func (ConsensusProofConverter) ConvertProof(proof *types.ProtoProof) (*rpc.Proof, error) {
	switch typ := proof.GetType(); typ {
	case types.ProofTypeRaft:
		return &rpc.Proof{Raft: true}, nil
	case types.ProofTypeBft:
		bft, err := decodeBftProof(proof.GetContent())
		if err != nil {
			return nil, rpc.NewConversionError(err, "invalid %v proof", typ)
		}
		return &rpc.Proof{Bft: bft}, nil
	case types.ProofTypeTendermint:
		bft, err := decodeBftProof(proof.GetContent())
		if err != nil {
			return nil, rpc.NewConversionError(err, "invalid %v proof", typ)
		}
		return &rpc.Proof{Tendermint: bft}, nil
	default:
		return nil, rpc.NewConversionError(nil, "unsupported proof type %v", typ)
	}
}

func decodeBftProof(content []byte) (*rpc.BftProof, error) {
	var proof types.ProtoBftProof
	if err := proof.Unmarshal(content); err != nil {
		return nil, err
	}
	if len(proof.Proposal) != common.HashLength {
		return nil, errors.Errorf("proposal is %d bytes, want %d", len(proof.Proposal), common.HashLength)
	}
	commits := make(map[common.Address]hexutil.Bytes, len(proof.Commits))
	for i, commit := range proof.Commits {
		if len(commit.Address) != common.AddressLength {
			return nil, errors.Errorf("commit %d: address is %d bytes, want %d", i, len(commit.Address), common.AddressLength)
		}
		addr := common.BytesToAddress(commit.Address)
		if _, ok := commits[addr]; ok {
			return nil, errors.Errorf("commit %d: duplicate validator %v", i, addr)
		}
		commits[addr] = commit.Signature
	}
	return &rpc.BftProof{
		Proposal: common.BytesToHash(proof.Proposal),
		Height:   proof.Height,
		Round:    proof.Round,
		Commits:  commits,
	}, nil
}
