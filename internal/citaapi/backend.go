package citaapi

import (
	"context"

	"github.com/rainchen/cita-common/common"
)

// Backend gives the block API access to the raw chain data. Lookups of
// missing entries are not errors: BlockByHash returns nil bytes and
// HashByNumber the zero hash.
type Backend interface {
	// BlockByHash returns the encoded block stored under hash.
	BlockByHash(ctx context.Context, hash common.Hash) ([]byte, error)
	// HashByNumber returns the canonical block hash at number.
	HashByNumber(ctx context.Context, number uint64) (common.Hash, error)
	// CurrentBlockNumber returns the height of the chain head.
	CurrentBlockNumber(ctx context.Context) (uint64, error)
}
