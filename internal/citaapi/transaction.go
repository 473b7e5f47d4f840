package citaapi

import (
	"github.com/pkg/errors"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/core/types"
	"github.com/rainchen/cita-common/rpc"
)

var errMissingPayload = errors.New("transaction has no signed payload")

// ProjectTransactions renders a block's transactions in block order. Without
// includeTxs only hashes are returned and the call cannot fail. With
// includeTxs the first transaction that fails to convert aborts the whole
// projection.
func (c *BlockConverter) ProjectTransactions(txs []*types.ProtoSignedTransaction, includeTxs bool) ([]rpc.BlockTransaction, error) {
	out := make([]rpc.BlockTransaction, 0, len(txs))
	if !includeTxs {
		for _, tx := range txs {
			out = append(out, rpc.TransactionHash(common.BytesToHash(tx.GetTxHash())))
		}
		return out, nil
	}
	for i, tx := range txs {
		full, err := FullTransactionFromProto(tx)
		if err != nil {
			c.logger.WithField("index", i).Debug("Failed to convert block transaction")
			return nil, err
		}
		out = append(out, full)
	}
	return out, nil
}

// FullTransactionFromProto converts one signed transaction, deriving the
// sender from the signer's public key.
func FullTransactionFromProto(tx *types.ProtoSignedTransaction) (*rpc.FullTransaction, error) {
	hash := common.BytesToHash(tx.GetTxHash())
	payload := tx.GetTransactionWithSig()
	if payload == nil {
		return nil, rpc.NewConversionError(errMissingPayload, "invalid transaction %v", hash)
	}
	from, err := common.PubkeyToAddress(tx.GetSigner())
	if err != nil {
		return nil, rpc.NewConversionError(err, "invalid transaction %v", hash)
	}
	return &rpc.FullTransaction{
		Hash:    hash,
		Content: payload.Marshal(),
		From:    from,
	}, nil
}
