//go:generate mockgen -package mock_citaapi -destination mocks/mock_backend.go github.com/rainchen/cita-common/internal/citaapi Backend,ProofConverter

// Package citaapi converts blocks read from the chain into the RPC block
// representation and serves them through the public block API.
package citaapi

import (
	"github.com/rainchen/cita-common/core/types"
	"github.com/rainchen/cita-common/log"
	"github.com/rainchen/cita-common/rpc"
)

// BlockConverter turns stored blocks into RPC blocks. It holds no mutable
// state and is safe for concurrent use.
type BlockConverter struct {
	proofs ProofConverter
	logger log.Logger
}

// NewBlockConverter returns a converter that renders header proofs with
// proofs. A nil logger falls back to log.Global.
func NewBlockConverter(proofs ProofConverter, logger log.Logger) *BlockConverter {
	if logger == nil {
		logger = log.Global
	}
	return &BlockConverter{proofs: proofs, logger: logger}
}

// BlockFromRPCBlock decodes req.Block and assembles the RPC block. The
// returned hash is req.Hash as given; it is not checked against the content.
// The error, if any, is an *rpc.Error and the block is nil.
func (c *BlockConverter) BlockFromRPCBlock(req *rpc.RPCBlock) (*rpc.Block, error) {
	block, err := types.DecodeBlock(req.Block)
	if err != nil {
		return nil, rpc.NewDecodeError(err)
	}
	version := block.GetVersion()
	txs := block.TakeBody().TakeTransactions()
	header := block.TakeHeader()

	transactions, err := c.ProjectTransactions(txs, req.IncludeTxs)
	if err != nil {
		return nil, asConversionError(err, "transaction conversion failed")
	}
	rpcHeader, err := c.HeaderFromProto(header)
	if err != nil {
		return nil, asConversionError(err, "header conversion failed")
	}
	return &rpc.Block{
		Version: version,
		Hash:    req.Hash,
		Header:  rpcHeader,
		Body:    rpc.BlockBody{Transactions: transactions},
	}, nil
}

// asConversionError tags err as a conversion failure unless it already
// carries a kind.
func asConversionError(err error, msg string) error {
	if _, ok := rpc.KindOf(err); ok {
		return err
	}
	return rpc.NewConversionError(err, "%s", msg)
}
