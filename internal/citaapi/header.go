package citaapi

import (
	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/core/types"
	"github.com/rainchen/cita-common/log"
	"github.com/rainchen/cita-common/rpc"
)

// HeaderFromProto converts a stored header. Blocks 0 and 1 carry no proof;
// every later block must carry one the ProofConverter accepts, and its error
// is returned unchanged otherwise. The proof is moved out of header.
func (c *BlockConverter) HeaderFromProto(header *types.ProtoHeader) (*rpc.BlockHeader, error) {
	height := header.GetHeight()

	var proof *rpc.Proof
	if height > 1 {
		var err error
		proof, err = c.proofs.ConvertProof(header.TakeProof())
		if err != nil {
			return nil, err
		}
	}
	c.logger.WithFields(log.Fields{
		"number": height,
		"proof":  proof,
	}).Trace("Converted block header")

	return &rpc.BlockHeader{
		Timestamp:        header.GetTimestamp(),
		PrevHash:         common.BytesToHash(header.GetPrevhash()),
		Number:           common.NewU256(height),
		StateRoot:        common.BytesToHash(header.GetStateRoot()),
		TransactionsRoot: common.BytesToHash(header.GetTransactionsRoot()),
		ReceiptsRoot:     common.BytesToHash(header.GetReceiptsRoot()),
		QuotaUsed:        common.NewU256(header.GetQuotaUsed()),
		Proof:            proof,
		Proposer:         common.BytesToAddress(header.GetProposer()),
	}, nil
}
