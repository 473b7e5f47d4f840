// Package rpc holds the client-facing block representation returned by the
// jsonrpc service, together with the error values it reports.
package rpc

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/rainchen/cita-common/common"
)

// RPCBlock is what the chain hands over for a block query: the block exactly
// as stored, the hash it is stored under and the requested body shape.
type RPCBlock struct {
	Block      hexutil.Bytes `json:"block"`
	Hash       common.Hash   `json:"hash"`
	IncludeTxs bool          `json:"include_txs"`
}

// ParseRPCBlock decodes an RPCBlock from its JSON form.
func ParseRPCBlock(data []byte) (*RPCBlock, error) {
	req := new(RPCBlock)
	if err := json.Unmarshal(data, req); err != nil {
		return nil, errors.Wrap(err, "invalid rpc block request")
	}
	return req, nil
}

// Block is the RPC view of a block. Hash is the one the block was requested
// with; it is never recomputed from the content.
type Block struct {
	Version uint32       `json:"version"`
	Hash    common.Hash  `json:"hash"`
	Header  *BlockHeader `json:"header"`
	Body    BlockBody    `json:"body"`
}

// BlockHeader is the RPC view of a block header. Proof is nil for the genesis
// block and its immediate successor.
type BlockHeader struct {
	Timestamp        uint64         `json:"timestamp"`
	PrevHash         common.Hash    `json:"prevHash"`
	Number           *common.U256   `json:"number"`
	StateRoot        common.Hash    `json:"stateRoot"`
	TransactionsRoot common.Hash    `json:"transactionsRoot"`
	ReceiptsRoot     common.Hash    `json:"receiptsRoot"`
	QuotaUsed        *common.U256   `json:"quotaUsed"`
	Proof            *Proof         `json:"proof"`
	Proposer         common.Address `json:"proposer"`
}

// BlockBody lists the block's transactions in block order, either all as
// *FullTransaction or all as TransactionHash.
type BlockBody struct {
	Transactions []BlockTransaction `json:"transactions"`
}

// UnmarshalJSON accepts both body shapes: hash strings and full transaction
// objects.
func (b *BlockBody) UnmarshalJSON(input []byte) error {
	var raw struct {
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(input, &raw); err != nil {
		return err
	}
	b.Transactions = make([]BlockTransaction, 0, len(raw.Transactions))
	for i, item := range raw.Transactions {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var hash TransactionHash
			if err := json.Unmarshal(item, &hash); err != nil {
				return errors.Wrapf(err, "transaction %d", i)
			}
			b.Transactions = append(b.Transactions, hash)
			continue
		}
		full := new(FullTransaction)
		if err := json.Unmarshal(item, full); err != nil {
			return errors.Wrapf(err, "transaction %d", i)
		}
		b.Transactions = append(b.Transactions, full)
	}
	return nil
}

// BlockTransaction is a closed union: *FullTransaction or TransactionHash.
type BlockTransaction interface {
	isBlockTransaction()
}

// FullTransaction is a transaction with its signed payload.
type FullTransaction struct {
	Hash    common.Hash    `json:"hash"`
	Content hexutil.Bytes  `json:"content"`
	From    common.Address `json:"from"`
}

func (*FullTransaction) isBlockTransaction() {}

// TransactionHash references a transaction by hash only.
type TransactionHash common.Hash

func (TransactionHash) isBlockTransaction() {}

// MarshalText returns the hex representation of h.
func (h TransactionHash) MarshalText() ([]byte, error) {
	return common.Hash(h).MarshalText()
}

// UnmarshalText parses a hash in hex syntax.
func (h *TransactionHash) UnmarshalText(input []byte) error {
	return (*common.Hash)(h).UnmarshalText(input)
}

// TransactionHashOf returns the hash of either variant.
func TransactionHashOf(tx BlockTransaction) common.Hash {
	switch tx := tx.(type) {
	case *FullTransaction:
		return tx.Hash
	case TransactionHash:
		return common.Hash(tx)
	default:
		return common.Hash{}
	}
}
