package citaapi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/core/types"
	"github.com/rainchen/cita-common/rpc"
)

func bftContent(proposal []byte, commits ...*types.ProtoCommit) []byte {
	proof := &types.ProtoBftProof{
		Proposal: proposal,
		Height:   10,
		Round:    2,
		Commits:  commits,
	}
	return proof.Marshal()
}

func TestConsensusProofConverter(t *testing.T) {
	proposal := common.HexToHash("0x1234")
	validator := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	content := bftContent(proposal.Bytes(), &types.ProtoCommit{Address: validator.Bytes(), Signature: []byte{0x01, 0x02}})
	want := &rpc.BftProof{
		Proposal: proposal,
		Height:   10,
		Round:    2,
		Commits:  map[common.Address]hexutil.Bytes{validator: {0x01, 0x02}},
	}

	tests := []struct {
		name  string
		proof *types.ProtoProof
		want  *rpc.Proof
	}{
		{"raft", &types.ProtoProof{Type: types.ProofTypeRaft}, &rpc.Proof{Raft: true}},
		{"bft", &types.ProtoProof{Type: types.ProofTypeBft, Content: content}, &rpc.Proof{Bft: want}},
		{"tendermint", &types.ProtoProof{Type: types.ProofTypeTendermint, Content: content}, &rpc.Proof{Tendermint: want}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConsensusProofConverter{}.ConvertProof(tt.proof)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConsensusProofConverterRejects(t *testing.T) {
	proposal := common.HexToHash("0x1234").Bytes()
	commit := &types.ProtoCommit{Address: common.HexToAddress("0xaa").Bytes(), Signature: []byte{0x01}}

	tests := []struct {
		name  string
		proof *types.ProtoProof
	}{
		{"authority round", &types.ProtoProof{Type: types.ProofTypeAuthorityRound, Content: []byte{0x01}}},
		{"unknown type", &types.ProtoProof{Type: types.ProofType(9)}},
		{"nil proof", nil},
		{"garbage content", &types.ProtoProof{Type: types.ProofTypeBft, Content: []byte{0xff, 0xff}}},
		{"empty content", &types.ProtoProof{Type: types.ProofTypeTendermint}},
		{"short proposal", &types.ProtoProof{Type: types.ProofTypeBft, Content: bftContent(proposal[:31])}},
		{"short address", &types.ProtoProof{Type: types.ProofTypeBft, Content: bftContent(proposal, &types.ProtoCommit{Address: []byte{0xaa}})}},
		{"duplicate validator", &types.ProtoProof{Type: types.ProofTypeBft, Content: bftContent(proposal, commit, commit)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConsensusProofConverter{}.ConvertProof(tt.proof)
			require.Nil(t, got)
			kind, ok := rpc.KindOf(err)
			require.True(t, ok)
			require.Equal(t, rpc.ConversionError, kind)
		})
	}
}
