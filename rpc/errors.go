package rpc

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies the failures the block conversion can report.
type ErrorKind int

const (
	// DecodeError means the raw bytes are not a valid encoded block.
	DecodeError ErrorKind = iota + 1
	// ConversionError means a proof or a transaction could not be converted.
	ConversionError
	// NotFoundError means no block is stored under the requested hash or number.
	NotFoundError
)

// JSON-RPC error codes reported for each kind.
const (
	decodeErrorCode     = -32006
	conversionErrorCode = -32603
	notFoundErrorCode   = -32001
)

func (k ErrorKind) String() string {
	switch k {
	case DecodeError:
		return "decode error"
	case ConversionError:
		return "conversion error"
	case NotFoundError:
		return "not found"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error value handed to the RPC layer for a failed
// request. The low-level cause stays reachable through errors.Unwrap and
// errors.Cause.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.cause.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.cause }

// Cause implements the github.com/pkg/errors causer interface.
func (e *Error) Cause() error { return e.cause }

// ErrorCode returns the JSON-RPC error code of the kind.
func (e *Error) ErrorCode() int {
	switch e.Kind {
	case DecodeError:
		return decodeErrorCode
	case NotFoundError:
		return notFoundErrorCode
	default:
		return conversionErrorCode
	}
}

// NewDecodeError reports raw block bytes that failed to decode.
func NewDecodeError(cause error) *Error {
	return &Error{Kind: DecodeError, Message: "rpc block decode error", cause: cause}
}

// NewConversionError reports a sub-structure that failed to convert.
func NewConversionError(cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: ConversionError, Message: fmt.Sprintf(format, args...), cause: cause}
}

// NewNotFoundError reports a block missing from the chain database.
func NewNotFoundError(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFoundError, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr.Kind, true
	}
	return 0, false
}
