package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func testHeader(height uint64) *ProtoHeader {
	return &ProtoHeader{
		Prevhash:         bytes.Repeat([]byte{0x01}, 32),
		Timestamp:        1524000000000,
		Height:           height,
		StateRoot:        bytes.Repeat([]byte{0x02}, 32),
		TransactionsRoot: bytes.Repeat([]byte{0x03}, 32),
		ReceiptsRoot:     bytes.Repeat([]byte{0x04}, 32),
		QuotaUsed:        21000,
		QuotaLimit:       1073741824,
		Proof: &ProtoProof{
			Content: []byte{0xde, 0xad},
			Type:    ProofTypeBft,
		},
		Proposer: bytes.Repeat([]byte{0x05}, 20),
	}
}

func testSignedTransaction(seed byte) *ProtoSignedTransaction {
	return &ProtoSignedTransaction{
		TransactionWithSig: &ProtoUnverifiedTransaction{
			Transaction: &ProtoTransaction{
				To:              "0x0000000000000000000000000000000000000001",
				Nonce:           "nonce",
				Quota:           100000,
				ValidUntilBlock: 99,
				Data:            []byte{seed, seed},
				Value:           []byte{0x01},
				Version:         2,
				ToV1:            bytes.Repeat([]byte{seed}, 20),
				ChainIdV1:       bytes.Repeat([]byte{0x01}, 32),
			},
			Signature: bytes.Repeat([]byte{seed}, 65),
			Crypto:    CryptoDefault,
		},
		TxHash: bytes.Repeat([]byte{seed}, 32),
		Signer: bytes.Repeat([]byte{seed}, 64),
	}
}

func testBlock() *ProtoBlock {
	return &ProtoBlock{
		Version: 1,
		Header:  testHeader(5),
		Body: &ProtoBody{
			Transactions: []*ProtoSignedTransaction{
				testSignedTransaction(0x0a),
				testSignedTransaction(0x0b),
			},
		},
	}
}

func TestBlockRoundTrip(t *testing.T) {
	block := testBlock()

	decoded, err := DecodeBlock(block.Marshal())
	require.NoError(t, err)
	assert.Equal(t, block, decoded)
}

func TestBlockEmptyMessagesKeepPresence(t *testing.T) {
	block := &ProtoBlock{Header: &ProtoHeader{}, Body: &ProtoBody{}}

	decoded, err := DecodeBlock(block.Marshal())
	require.NoError(t, err)
	assert.NotNil(t, decoded.Header)
	assert.NotNil(t, decoded.Body)
	assert.Empty(t, decoded.Body.Transactions)
}

func TestDecodeBlockErrors(t *testing.T) {
	valid := testBlock().Marshal()

	wrongType := protowire.AppendTag(nil, 3, protowire.BytesType)
	wrongType = protowire.AppendBytes(wrongType, []byte{0x01})
	wrongHeader := protowire.AppendTag(nil, 2, protowire.BytesType)
	wrongHeader = protowire.AppendBytes(wrongHeader, wrongType)

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated", valid[:len(valid)-1]},
		{"garbage", []byte{0xff, 0xff, 0xff}},
		{"zero field number", []byte{0x00, 0x01}},
		{"header is a varint", protowire.AppendVarint(protowire.AppendTag(nil, 2, protowire.VarintType), 7)},
		{"height is bytes", wrongHeader},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := DecodeBlock(tt.data)
			require.Error(t, err)
			assert.Nil(t, block)
		})
	}
}

func TestDecodeBlockWireTypeError(t *testing.T) {
	data := protowire.AppendVarint(protowire.AppendTag(nil, 2, protowire.VarintType), 7)

	_, err := DecodeBlock(data)
	require.ErrorIs(t, err, ErrWireType)
}

func TestDecodeBlockSkipsUnknownFields(t *testing.T) {
	block := testBlock()
	data := block.Marshal()
	data = protowire.AppendVarint(protowire.AppendTag(data, 15, protowire.VarintType), 42)
	data = protowire.AppendBytes(protowire.AppendTag(data, 16, protowire.BytesType), []byte("future"))

	decoded, err := DecodeBlock(data)
	require.NoError(t, err)
	assert.Equal(t, block, decoded)
}

func TestDecodeBlockDoesNotAliasInput(t *testing.T) {
	data := testBlock().Marshal()

	decoded, err := DecodeBlock(data)
	require.NoError(t, err)
	for i := range data {
		data[i] = 0
	}
	assert.Equal(t, bytes.Repeat([]byte{0x01}, 32), decoded.Header.Prevhash)
	assert.Equal(t, bytes.Repeat([]byte{0x0a}, 32), decoded.Body.Transactions[0].TxHash)
}

func TestTakeMovesOwnership(t *testing.T) {
	block := testBlock()
	header := block.Header
	body := block.Body

	assert.Same(t, body, block.TakeBody())
	assert.Nil(t, block.Body)
	assert.Same(t, header, block.TakeHeader())
	assert.Nil(t, block.Header)

	txs := body.TakeTransactions()
	assert.Len(t, txs, 2)
	assert.Nil(t, body.Transactions)

	proof := header.TakeProof()
	assert.Equal(t, ProofTypeBft, proof.Type)
	assert.Nil(t, header.Proof)
}

func TestTakeMissingFields(t *testing.T) {
	block := &ProtoBlock{Version: 3}

	header := block.TakeHeader()
	require.NotNil(t, header)
	assert.Zero(t, header.Height)

	body := block.TakeBody()
	require.NotNil(t, body)
	assert.Nil(t, body.TakeTransactions())

	proof := header.TakeProof()
	require.NotNil(t, proof)
	assert.Equal(t, ProofTypeAuthorityRound, proof.Type)
	assert.Empty(t, proof.Content)
}

func TestNilGetters(t *testing.T) {
	var block *ProtoBlock
	assert.Zero(t, block.GetVersion())
	assert.Nil(t, block.GetHeader())
	assert.Zero(t, block.GetHeader().GetHeight())
	assert.Nil(t, block.GetBody().GetTransactions())
	assert.Equal(t, ProofTypeAuthorityRound, block.GetHeader().GetProof().GetType())
}

func TestBftProofRoundTrip(t *testing.T) {
	proof := &ProtoBftProof{
		Proposal: bytes.Repeat([]byte{0x07}, 32),
		Height:   5,
		Round:    1,
		Commits: []*ProtoCommit{
			{Address: bytes.Repeat([]byte{0x01}, 20), Signature: bytes.Repeat([]byte{0x02}, 65)},
			{Address: bytes.Repeat([]byte{0x03}, 20), Signature: bytes.Repeat([]byte{0x04}, 65)},
		},
	}

	decoded := new(ProtoBftProof)
	require.NoError(t, decoded.Unmarshal(proof.Marshal()))
	assert.Equal(t, proof, decoded)
}

func TestProofTypeString(t *testing.T) {
	assert.Equal(t, "Bft", ProofTypeBft.String())
	assert.Equal(t, "ProofType(9)", ProofType(9).String())
}

func FuzzDecodeBlock(f *testing.F) {
	f.Add(testBlock().Marshal())
	f.Add([]byte{})
	f.Add([]byte{0x12, 0x02, 0x18})
	f.Fuzz(func(t *testing.T, data []byte) {
		block, err := DecodeBlock(data)
		if err != nil {
			return
		}
		// Anything that decodes must survive re-encoding.
		again, err := DecodeBlock(block.Marshal())
		require.NoError(t, err)
		assert.Equal(t, block.GetHeader().GetHeight(), again.GetHeader().GetHeight())
		assert.Len(t, again.GetBody().GetTransactions(), len(block.GetBody().GetTransactions()))
	})
}
