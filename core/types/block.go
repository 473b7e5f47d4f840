// Package types contains the wire-encoded block structures written by the
// chain module, together with their protobuf codec.
package types

import (
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// ProofType identifies the consensus engine that produced a block proof.
type ProofType int32

const (
	ProofTypeAuthorityRound ProofType = 0
	ProofTypeRaft           ProofType = 1
	ProofTypeBft            ProofType = 2
	ProofTypeTendermint     ProofType = 3
)

func (t ProofType) String() string {
	switch t {
	case ProofTypeAuthorityRound:
		return "AuthorityRound"
	case ProofTypeRaft:
		return "Raft"
	case ProofTypeBft:
		return "Bft"
	case ProofTypeTendermint:
		return "Tendermint"
	default:
		return fmt.Sprintf("ProofType(%d)", int32(t))
	}
}

// ProtoBlock is a block as stored by the chain: version, header and body.
type ProtoBlock struct {
	Version uint32
	Header  *ProtoHeader
	Body    *ProtoBody
}

func (m *ProtoBlock) GetVersion() uint32 {
	if m != nil {
		return m.Version
	}
	return 0
}

func (m *ProtoBlock) GetHeader() *ProtoHeader {
	if m != nil {
		return m.Header
	}
	return nil
}

func (m *ProtoBlock) GetBody() *ProtoBody {
	if m != nil {
		return m.Body
	}
	return nil
}

// TakeHeader moves the header out of the block. The block no longer
// references it afterwards. A missing header is returned as an empty one.
func (m *ProtoBlock) TakeHeader() *ProtoHeader {
	if m == nil || m.Header == nil {
		return new(ProtoHeader)
	}
	header := m.Header
	m.Header = nil
	return header
}

// TakeBody moves the body out of the block. A missing body is returned as an
// empty one.
func (m *ProtoBlock) TakeBody() *ProtoBody {
	if m == nil || m.Body == nil {
		return new(ProtoBody)
	}
	body := m.Body
	m.Body = nil
	return body
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoBlock) Marshal() []byte {
	var b []byte
	b = appendVarintField(b, 1, uint64(m.Version))
	if m.Header != nil {
		b = appendMessageField(b, 2, m.Header.Marshal())
	}
	if m.Body != nil {
		b = appendMessageField(b, 3, m.Body.Marshal())
	}
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoBlock) Unmarshal(b []byte) error {
	*m = ProtoBlock{}
	return m.merge(b)
}

func (m *ProtoBlock) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n, err := consumeVarint(typ, b)
			m.Version = uint32(v)
			return n, err
		case 2:
			if m.Header == nil {
				m.Header = new(ProtoHeader)
			}
			return consumeMessage(typ, b, m.Header.merge)
		case 3:
			if m.Body == nil {
				m.Body = new(ProtoBody)
			}
			return consumeMessage(typ, b, m.Body.merge)
		default:
			return skipField(num, typ, b)
		}
	})
}

// DecodeBlock decodes a raw block as handed out by the chain.
func DecodeBlock(data []byte) (*ProtoBlock, error) {
	block := new(ProtoBlock)
	if err := block.Unmarshal(data); err != nil {
		return nil, errors.Wrap(err, "invalid block encoding")
	}
	return block, nil
}

// ProtoHeader is the stored block header.
type ProtoHeader struct {
	Prevhash         []byte
	Timestamp        uint64
	Height           uint64
	StateRoot        []byte
	TransactionsRoot []byte
	ReceiptsRoot     []byte
	QuotaUsed        uint64
	QuotaLimit       uint64
	Proof            *ProtoProof
	Proposer         []byte
}

func (m *ProtoHeader) GetPrevhash() []byte {
	if m != nil {
		return m.Prevhash
	}
	return nil
}

func (m *ProtoHeader) GetTimestamp() uint64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *ProtoHeader) GetHeight() uint64 {
	if m != nil {
		return m.Height
	}
	return 0
}

func (m *ProtoHeader) GetStateRoot() []byte {
	if m != nil {
		return m.StateRoot
	}
	return nil
}

func (m *ProtoHeader) GetTransactionsRoot() []byte {
	if m != nil {
		return m.TransactionsRoot
	}
	return nil
}

func (m *ProtoHeader) GetReceiptsRoot() []byte {
	if m != nil {
		return m.ReceiptsRoot
	}
	return nil
}

func (m *ProtoHeader) GetQuotaUsed() uint64 {
	if m != nil {
		return m.QuotaUsed
	}
	return 0
}

func (m *ProtoHeader) GetQuotaLimit() uint64 {
	if m != nil {
		return m.QuotaLimit
	}
	return 0
}

func (m *ProtoHeader) GetProof() *ProtoProof {
	if m != nil {
		return m.Proof
	}
	return nil
}

func (m *ProtoHeader) GetProposer() []byte {
	if m != nil {
		return m.Proposer
	}
	return nil
}

// TakeProof moves the proof out of the header. A missing proof is returned as
// the zero proof (AuthorityRound, no content).
func (m *ProtoHeader) TakeProof() *ProtoProof {
	if m == nil || m.Proof == nil {
		return new(ProtoProof)
	}
	proof := m.Proof
	m.Proof = nil
	return proof
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoHeader) Marshal() []byte {
	var b []byte
	b = appendBytesField(b, 1, m.Prevhash)
	b = appendVarintField(b, 2, m.Timestamp)
	b = appendVarintField(b, 3, m.Height)
	b = appendBytesField(b, 4, m.StateRoot)
	b = appendBytesField(b, 5, m.TransactionsRoot)
	b = appendBytesField(b, 6, m.ReceiptsRoot)
	b = appendVarintField(b, 7, m.QuotaUsed)
	b = appendVarintField(b, 8, m.QuotaLimit)
	if m.Proof != nil {
		b = appendMessageField(b, 9, m.Proof.Marshal())
	}
	b = appendBytesField(b, 10, m.Proposer)
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoHeader) Unmarshal(b []byte) error {
	*m = ProtoHeader{}
	return m.merge(b)
}

func (m *ProtoHeader) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Prevhash, n, err = consumeBytes(typ, b)
		case 2:
			m.Timestamp, n, err = consumeVarint(typ, b)
		case 3:
			m.Height, n, err = consumeVarint(typ, b)
		case 4:
			m.StateRoot, n, err = consumeBytes(typ, b)
		case 5:
			m.TransactionsRoot, n, err = consumeBytes(typ, b)
		case 6:
			m.ReceiptsRoot, n, err = consumeBytes(typ, b)
		case 7:
			m.QuotaUsed, n, err = consumeVarint(typ, b)
		case 8:
			m.QuotaLimit, n, err = consumeVarint(typ, b)
		case 9:
			if m.Proof == nil {
				m.Proof = new(ProtoProof)
			}
			n, err = consumeMessage(typ, b, m.Proof.merge)
		case 10:
			m.Proposer, n, err = consumeBytes(typ, b)
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}

// ProtoProof is the consensus proof attached to a header. Content is
// interpreted according to Type.
type ProtoProof struct {
	Content []byte
	Type    ProofType
}

func (m *ProtoProof) GetContent() []byte {
	if m != nil {
		return m.Content
	}
	return nil
}

func (m *ProtoProof) GetType() ProofType {
	if m != nil {
		return m.Type
	}
	return ProofTypeAuthorityRound
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoProof) Marshal() []byte {
	var b []byte
	b = appendBytesField(b, 1, m.Content)
	b = appendVarintField(b, 2, uint64(int64(m.Type)))
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoProof) Unmarshal(b []byte) error {
	*m = ProtoProof{}
	return m.merge(b)
}

func (m *ProtoProof) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Content, n, err = consumeBytes(typ, b)
		case 2:
			var v uint64
			v, n, err = consumeVarint(typ, b)
			m.Type = ProofType(int32(v))
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}

// ProtoBftProof is the content of Bft and Tendermint proofs: the commit
// signatures collected for a proposal in a given round.
type ProtoBftProof struct {
	Proposal []byte
	Height   uint64
	Round    uint64
	Commits  []*ProtoCommit
}

// ProtoCommit is a single validator signature over a proposal.
type ProtoCommit struct {
	Address   []byte
	Signature []byte
}

func (m *ProtoBftProof) GetCommits() []*ProtoCommit {
	if m != nil {
		return m.Commits
	}
	return nil
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoBftProof) Marshal() []byte {
	var b []byte
	b = appendBytesField(b, 1, m.Proposal)
	b = appendVarintField(b, 2, m.Height)
	b = appendVarintField(b, 3, m.Round)
	for _, commit := range m.Commits {
		if commit == nil {
			commit = new(ProtoCommit)
		}
		b = appendMessageField(b, 4, commit.Marshal())
	}
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoBftProof) Unmarshal(b []byte) error {
	*m = ProtoBftProof{}
	return m.merge(b)
}

func (m *ProtoBftProof) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Proposal, n, err = consumeBytes(typ, b)
		case 2:
			m.Height, n, err = consumeVarint(typ, b)
		case 3:
			m.Round, n, err = consumeVarint(typ, b)
		case 4:
			commit := new(ProtoCommit)
			n, err = consumeMessage(typ, b, commit.merge)
			m.Commits = append(m.Commits, commit)
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoCommit) Marshal() []byte {
	var b []byte
	b = appendBytesField(b, 1, m.Address)
	b = appendBytesField(b, 2, m.Signature)
	return b
}

func (m *ProtoCommit) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			m.Address, n, err = consumeBytes(typ, b)
		case 2:
			m.Signature, n, err = consumeBytes(typ, b)
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}

// ProtoBody holds the block's signed transactions in block order.
type ProtoBody struct {
	Transactions []*ProtoSignedTransaction
}

func (m *ProtoBody) GetTransactions() []*ProtoSignedTransaction {
	if m != nil {
		return m.Transactions
	}
	return nil
}

// TakeTransactions moves the transaction list out of the body.
func (m *ProtoBody) TakeTransactions() []*ProtoSignedTransaction {
	if m == nil {
		return nil
	}
	txs := m.Transactions
	m.Transactions = nil
	return txs
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoBody) Marshal() []byte {
	var b []byte
	for _, tx := range m.Transactions {
		if tx == nil {
			tx = new(ProtoSignedTransaction)
		}
		b = appendMessageField(b, 1, tx.Marshal())
	}
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoBody) Unmarshal(b []byte) error {
	*m = ProtoBody{}
	return m.merge(b)
}

func (m *ProtoBody) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != 1 {
			return skipField(num, typ, b)
		}
		tx := new(ProtoSignedTransaction)
		n, err := consumeMessage(typ, b, tx.merge)
		m.Transactions = append(m.Transactions, tx)
		return n, err
	})
}
