package citaapi

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/log"
	"github.com/rainchen/cita-common/rpc"
)

type blockCacheKey struct {
	hash       common.Hash
	includeTxs bool
}

// PublicBlockChainAPI provides an API to access stored blocks.
type PublicBlockChainAPI struct {
	b         Backend
	converter *BlockConverter
	cache     *lru.Cache[blockCacheKey, *rpc.Block]
	logger    log.Logger
}

// NewPublicBlockChainAPI creates a new block API. Converted blocks are kept in
// an LRU of cacheSize entries; a cacheSize of zero disables caching.
func NewPublicBlockChainAPI(b Backend, converter *BlockConverter, cacheSize int, logger log.Logger) (*PublicBlockChainAPI, error) {
	if logger == nil {
		logger = log.Global
	}
	api := &PublicBlockChainAPI{b: b, converter: converter, logger: logger}
	if cacheSize > 0 {
		cache, err := lru.New[blockCacheKey, *rpc.Block](cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create block cache")
		}
		api.cache = cache
	}
	return api, nil
}

// BlockNumber returns the height of the chain head.
func (s *PublicBlockChainAPI) BlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	number, err := s.b.CurrentBlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	return hexutil.Uint64(number), nil
}

// GetBlockByHash returns the block stored under hash. When fullTx is true all
// transactions are returned in full, otherwise only their hashes. Returned
// blocks may be shared with the cache and must not be modified.
func (s *PublicBlockChainAPI) GetBlockByHash(ctx context.Context, hash common.Hash, fullTx bool) (*rpc.Block, error) {
	block, err := s.blockByHash(ctx, hash, fullTx)
	observe(err)
	return block, err
}

// GetBlockByNumber returns the canonical block at number.
func (s *PublicBlockChainAPI) GetBlockByNumber(ctx context.Context, number hexutil.Uint64, fullTx bool) (*rpc.Block, error) {
	hash, err := s.b.HashByNumber(ctx, uint64(number))
	if err != nil {
		observe(err)
		return nil, err
	}
	if hash == (common.Hash{}) {
		err := rpc.NewNotFoundError("block #%d not found", uint64(number))
		observe(err)
		return nil, err
	}
	return s.GetBlockByHash(ctx, hash, fullTx)
}

func (s *PublicBlockChainAPI) blockByHash(ctx context.Context, hash common.Hash, fullTx bool) (*rpc.Block, error) {
	key := blockCacheKey{hash: hash, includeTxs: fullTx}
	if s.cache != nil {
		block, ok := s.cache.Get(key)
		observeCache(ok)
		if ok {
			return block, nil
		}
	}
	raw, err := s.b.BlockByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, rpc.NewNotFoundError("block %v not found", hash)
	}
	block, err := s.converter.BlockFromRPCBlock(&rpc.RPCBlock{Block: raw, Hash: hash, IncludeTxs: fullTx})
	if err != nil {
		s.logger.WithFields(log.Fields{
			"hash": hash,
			"err":  err,
		}).Warn("Failed to convert stored block")
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(key, block)
	}
	return block, nil
}
