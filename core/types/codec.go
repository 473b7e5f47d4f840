package types

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/rainchen/cita-common/common"
)

// ErrWireType is returned when a known field arrives with a wire type that
// does not match its declaration.
var ErrWireType = errors.New("unexpected wire type")

// fieldDecoder decodes the value of a single field from b and reports how
// many bytes it consumed.
type fieldDecoder func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// decodeFields walks every field in b, handing each one to decode.
func decodeFields(b []byte, decode fieldDecoder) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := decode(num, typ, b)
		if err != nil {
			return errors.Wrapf(err, "field %d", num)
		}
		b = b[n:]
	}
	return nil
}

// skipField consumes an unknown field so newer encoders stay readable.
func skipField(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	n := protowire.ConsumeFieldValue(num, typ, b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, nil
}

func consumeVarint(typ protowire.Type, b []byte) (uint64, int, error) {
	if typ != protowire.VarintType {
		return 0, 0, errors.Wrapf(ErrWireType, "got %d, want varint", typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

// consumeBytes returns a copy of a length-delimited value, so decoded
// messages never alias the caller's buffer.
func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errors.Wrapf(ErrWireType, "got %d, want bytes", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return common.CopyBytes(v), n, nil
}

// consumeMessage hands the raw encoding of an embedded message to merge.
func consumeMessage(typ protowire.Type, b []byte, merge func([]byte) error) (int, error) {
	if typ != protowire.BytesType {
		return 0, errors.Wrapf(ErrWireType, "got %d, want message", typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return n, merge(v)
}

func appendVarintField(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// appendMessageField always writes the field, even when the encoding is
// empty, so presence survives a round trip.
func appendMessageField(b []byte, num protowire.Number, encoded []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, encoded)
}
