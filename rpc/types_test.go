package rpc

import (
	"fmt"
	"io"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/rainchen/cita-common/common"
)

func TestBlockJSON(t *testing.T) {
	block := &Block{
		Version: 2,
		Hash:    common.HexToHash("0x01"),
		Header: &BlockHeader{
			Timestamp: 1524000000,
			PrevHash:  common.HexToHash("0x02"),
			Number:    common.NewU256(5),
			QuotaUsed: common.NewU256(21000),
			Proof:     &Proof{Raft: true},
			Proposer:  common.HexToAddress("0x03"),
		},
		Body: BlockBody{Transactions: []BlockTransaction{
			TransactionHash(common.HexToHash("0xaa")),
		}},
	}
	out, err := json.Marshal(block)
	require.NoError(t, err)

	zero := common.Hash{}.Hex()
	want := fmt.Sprintf(`{
		"version": 2,
		"hash": %q,
		"header": {
			"timestamp": 1524000000,
			"prevHash": %q,
			"number": "0x5",
			"stateRoot": %q,
			"transactionsRoot": %q,
			"receiptsRoot": %q,
			"quotaUsed": "0x5208",
			"proof": "Raft",
			"proposer": "0x0000000000000000000000000000000000000003"
		},
		"body": {"transactions": [%q]}
	}`, common.HexToHash("0x01").Hex(), common.HexToHash("0x02").Hex(), zero, zero, zero, common.HexToHash("0xaa").Hex())
	require.JSONEq(t, want, string(out))
}

func TestBlockHeaderNullProof(t *testing.T) {
	out, err := json.Marshal(&BlockHeader{Number: common.NewU256(0), QuotaUsed: common.NewU256(0)})
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &fields))
	require.Equal(t, "null", string(fields["proof"]))
	require.Equal(t, `"0x0"`, string(fields["number"]))
}

func TestBlockBodyUnmarshalBothShapes(t *testing.T) {
	full := &FullTransaction{
		Hash:    common.HexToHash("0x0b"),
		Content: hexutil.Bytes{0x0a, 0x01},
		From:    common.HexToAddress("0x0c"),
	}
	hashed := TransactionHash(common.HexToHash("0x0d"))

	for _, body := range []BlockBody{
		{Transactions: []BlockTransaction{full}},
		{Transactions: []BlockTransaction{hashed}},
		{Transactions: []BlockTransaction{}},
	} {
		out, err := json.Marshal(body)
		require.NoError(t, err)

		var decoded BlockBody
		require.NoError(t, json.Unmarshal(out, &decoded))
		require.Equal(t, body, decoded)
	}
}

func TestBlockBodyUnmarshalRejectsBadHash(t *testing.T) {
	var body BlockBody
	err := json.Unmarshal([]byte(`{"transactions":["0x01"]}`), &body)
	require.Error(t, err)
	require.Contains(t, err.Error(), "transaction 0")
}

func TestTransactionHashOf(t *testing.T) {
	hash := common.HexToHash("0x1234")
	require.Equal(t, hash, TransactionHashOf(TransactionHash(hash)))
	require.Equal(t, hash, TransactionHashOf(&FullTransaction{Hash: hash}))
}

func TestProofJSON(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	bft := &BftProof{
		Proposal: common.HexToHash("0x02"),
		Height:   7,
		Round:    1,
		Commits:  map[common.Address]hexutil.Bytes{addr: {0x01, 0x02}},
	}
	tests := []struct {
		name  string
		proof Proof
		want  string
	}{
		{"raft", Proof{Raft: true}, `"Raft"`},
		{"bft", Proof{Bft: bft}, fmt.Sprintf(`{"Bft":{"proposal":%q,"height":7,"round":1,"commits":{"0x0000000000000000000000000000000000000001":"0x0102"}}}`, bft.Proposal.Hex())},
		{"tendermint", Proof{Tendermint: bft}, fmt.Sprintf(`{"Tendermint":{"proposal":%q,"height":7,"round":1,"commits":{"0x0000000000000000000000000000000000000001":"0x0102"}}}`, bft.Proposal.Hex())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.proof)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(out))

			var decoded Proof
			require.NoError(t, json.Unmarshal(out, &decoded))
			require.Equal(t, tt.proof, decoded)
		})
	}
}

func TestProofJSONRejects(t *testing.T) {
	_, err := json.Marshal(Proof{})
	require.Error(t, err)

	for _, input := range []string{`"Poa"`, `{"Poa":{}}`, `{}`, `{"Bft":{},"Raft":{}}`} {
		var p Proof
		require.Error(t, json.Unmarshal([]byte(input), &p), input)
	}
}

func TestParseRPCBlock(t *testing.T) {
	hash := common.HexToHash("0xfe")
	input := fmt.Sprintf(`{"block":"0x0801","hash":%q,"include_txs":true}`, hash.Hex())

	req, err := ParseRPCBlock([]byte(input))
	require.NoError(t, err)
	require.Equal(t, hexutil.Bytes{0x08, 0x01}, req.Block)
	require.Equal(t, hash, req.Hash)
	require.True(t, req.IncludeTxs)

	_, err = ParseRPCBlock([]byte(`{"block":"zz"}`))
	require.Error(t, err)
}

func TestErrorKinds(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	tests := []struct {
		err  *Error
		kind ErrorKind
		code int
	}{
		{NewDecodeError(cause), DecodeError, -32006},
		{NewConversionError(cause, "transaction %d", 3), ConversionError, -32603},
		{NewNotFoundError("block %d", 9), NotFoundError, -32001},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require.Equal(t, tt.code, tt.err.ErrorCode())

			wrapped := errors.Wrap(tt.err, "api")
			kind, ok := KindOf(wrapped)
			require.True(t, ok)
			require.Equal(t, tt.kind, kind)
		})
	}

	conv := NewConversionError(cause, "transaction %d", 3)
	require.Equal(t, "transaction 3: unexpected EOF", conv.Error())
	require.ErrorIs(t, conv, io.ErrUnexpectedEOF)
	require.Equal(t, io.ErrUnexpectedEOF, errors.Cause(conv))
	require.Equal(t, "block 9", NewNotFoundError("block %d", 9).Error())

	_, ok := KindOf(cause)
	require.False(t, ok)
}
