package rpc

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/rainchen/cita-common/common"
)

var errEmptyProof = errors.New("proof has no consensus variant set")

// Proof is the consensus proof of a block. Exactly one variant is set.
//
// It encodes externally tagged: "Raft", {"Bft":{...}} or {"Tendermint":{...}}.
type Proof struct {
	Raft       bool
	Bft        *BftProof
	Tendermint *BftProof
}

// BftProof is the commit set collected for a block under BFT style consensus.
// Commits maps each validator address to its signature.
type BftProof struct {
	Proposal common.Hash                      `json:"proposal"`
	Height   uint64                           `json:"height"`
	Round    uint64                           `json:"round"`
	Commits  map[common.Address]hexutil.Bytes `json:"commits"`
}

// MarshalJSON implements json.Marshaler.
func (p Proof) MarshalJSON() ([]byte, error) {
	switch {
	case p.Raft:
		return []byte(`"Raft"`), nil
	case p.Bft != nil:
		return json.Marshal(struct {
			Bft *BftProof `json:"Bft"`
		}{p.Bft})
	case p.Tendermint != nil:
		return json.Marshal(struct {
			Tendermint *BftProof `json:"Tendermint"`
		}{p.Tendermint})
	default:
		return nil, errEmptyProof
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Proof) UnmarshalJSON(input []byte) error {
	*p = Proof{}
	input = bytes.TrimSpace(input)
	if len(input) > 0 && input[0] == '"' {
		var tag string
		if err := json.Unmarshal(input, &tag); err != nil {
			return err
		}
		if tag != "Raft" {
			return errors.Errorf("unknown proof variant %q", tag)
		}
		p.Raft = true
		return nil
	}
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(input, &tagged); err != nil {
		return err
	}
	if len(tagged) != 1 {
		return errors.Errorf("proof must carry exactly one variant, got %d", len(tagged))
	}
	for tag, content := range tagged {
		switch tag {
		case "Raft":
			p.Raft = true
		case "Bft":
			p.Bft = new(BftProof)
			return json.Unmarshal(content, p.Bft)
		case "Tendermint":
			p.Tendermint = new(BftProof)
			return json.Unmarshal(content, p.Tendermint)
		default:
			return errors.Errorf("unknown proof variant %q", tag)
		}
	}
	return nil
}
