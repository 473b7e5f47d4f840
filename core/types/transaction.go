package types

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Crypto names the signature scheme of an unverified transaction.
type Crypto int32

const (
	CryptoDefault  Crypto = 0
	CryptoReserved Crypto = 1
)

// ProtoTransaction is the unsigned transaction payload.
type ProtoTransaction struct {
	To              string
	Nonce           string
	Quota           uint64
	ValidUntilBlock uint64
	Data            []byte
	Value           []byte
	ChainId         uint32
	Version         uint32
	ToV1            []byte
	ChainIdV1       []byte
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoTransaction) Marshal() []byte {
	var b []byte
	b = appendStringField(b, 1, m.To)
	b = appendStringField(b, 2, m.Nonce)
	b = appendVarintField(b, 3, m.Quota)
	b = appendVarintField(b, 4, m.ValidUntilBlock)
	b = appendBytesField(b, 5, m.Data)
	b = appendBytesField(b, 6, m.Value)
	b = appendVarintField(b, 7, uint64(m.ChainId))
	b = appendVarintField(b, 8, uint64(m.Version))
	b = appendBytesField(b, 9, m.ToV1)
	b = appendBytesField(b, 10, m.ChainIdV1)
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoTransaction) Unmarshal(b []byte) error {
	*m = ProtoTransaction{}
	return m.merge(b)
}

func (m *ProtoTransaction) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		var v uint64
		var s []byte
		switch num {
		case 1:
			s, n, err = consumeBytes(typ, b)
			m.To = string(s)
		case 2:
			s, n, err = consumeBytes(typ, b)
			m.Nonce = string(s)
		case 3:
			m.Quota, n, err = consumeVarint(typ, b)
		case 4:
			m.ValidUntilBlock, n, err = consumeVarint(typ, b)
		case 5:
			m.Data, n, err = consumeBytes(typ, b)
		case 6:
			m.Value, n, err = consumeBytes(typ, b)
		case 7:
			v, n, err = consumeVarint(typ, b)
			m.ChainId = uint32(v)
		case 8:
			v, n, err = consumeVarint(typ, b)
			m.Version = uint32(v)
		case 9:
			m.ToV1, n, err = consumeBytes(typ, b)
		case 10:
			m.ChainIdV1, n, err = consumeBytes(typ, b)
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}

// ProtoUnverifiedTransaction is a transaction payload together with its
// signature.
type ProtoUnverifiedTransaction struct {
	Transaction *ProtoTransaction
	Signature   []byte
	Crypto      Crypto
}

func (m *ProtoUnverifiedTransaction) GetTransaction() *ProtoTransaction {
	if m != nil {
		return m.Transaction
	}
	return nil
}

func (m *ProtoUnverifiedTransaction) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoUnverifiedTransaction) Marshal() []byte {
	var b []byte
	if m.Transaction != nil {
		b = appendMessageField(b, 1, m.Transaction.Marshal())
	}
	b = appendBytesField(b, 2, m.Signature)
	b = appendVarintField(b, 3, uint64(int64(m.Crypto)))
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoUnverifiedTransaction) Unmarshal(b []byte) error {
	*m = ProtoUnverifiedTransaction{}
	return m.merge(b)
}

func (m *ProtoUnverifiedTransaction) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			if m.Transaction == nil {
				m.Transaction = new(ProtoTransaction)
			}
			n, err = consumeMessage(typ, b, m.Transaction.merge)
		case 2:
			m.Signature, n, err = consumeBytes(typ, b)
		case 3:
			var v uint64
			v, n, err = consumeVarint(typ, b)
			m.Crypto = Crypto(int32(v))
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}

// ProtoSignedTransaction is a block transaction: the signed payload, its hash
// and the public key of the signer.
type ProtoSignedTransaction struct {
	TransactionWithSig *ProtoUnverifiedTransaction
	TxHash             []byte
	Signer             []byte
}

func (m *ProtoSignedTransaction) GetTransactionWithSig() *ProtoUnverifiedTransaction {
	if m != nil {
		return m.TransactionWithSig
	}
	return nil
}

func (m *ProtoSignedTransaction) GetTxHash() []byte {
	if m != nil {
		return m.TxHash
	}
	return nil
}

func (m *ProtoSignedTransaction) GetSigner() []byte {
	if m != nil {
		return m.Signer
	}
	return nil
}

// Marshal returns the protobuf encoding of m.
func (m *ProtoSignedTransaction) Marshal() []byte {
	var b []byte
	if m.TransactionWithSig != nil {
		b = appendMessageField(b, 1, m.TransactionWithSig.Marshal())
	}
	b = appendBytesField(b, 2, m.TxHash)
	b = appendBytesField(b, 3, m.Signer)
	return b
}

// Unmarshal replaces the contents of m with the decoding of b.
func (m *ProtoSignedTransaction) Unmarshal(b []byte) error {
	*m = ProtoSignedTransaction{}
	return m.merge(b)
}

func (m *ProtoSignedTransaction) merge(b []byte) error {
	return decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (n int, err error) {
		switch num {
		case 1:
			if m.TransactionWithSig == nil {
				m.TransactionWithSig = new(ProtoUnverifiedTransaction)
			}
			n, err = consumeMessage(typ, b, m.TransactionWithSig.merge)
		case 2:
			m.TxHash, n, err = consumeBytes(typ, b)
		case 3:
			m.Signer, n, err = consumeBytes(typ, b)
		default:
			n, err = skipField(num, typ, b)
		}
		return n, err
	})
}
