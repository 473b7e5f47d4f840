package core

import (
	"context"

	"github.com/pkg/errors"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/core/rawdb"
	"github.com/rainchen/cita-common/core/types"
	"github.com/rainchen/cita-common/log"
)

// BlockChainVersion is the layout version of the chain database.
const BlockChainVersion uint64 = 1

// ChainReader serves the raw blocks kept in the chain database. It backs the
// block API and is safe for concurrent use.
type ChainReader struct {
	db     rawdb.Database
	logger log.Logger
}

// NewChainReader opens the chain stored in db, stamping an empty database with
// the current layout version.
func NewChainReader(db rawdb.Database, logger log.Logger) (*ChainReader, error) {
	if logger == nil {
		logger = log.Global
	}
	if version := rawdb.ReadDatabaseVersion(db); version == nil {
		rawdb.WriteDatabaseVersion(db, BlockChainVersion)
	} else if *version != BlockChainVersion {
		return nil, errors.Wrapf(ErrDatabaseVersion, "have %d, want %d", *version, BlockChainVersion)
	}
	return &ChainReader{db: db, logger: logger}, nil
}

// BlockByHash returns the encoded block stored under hash, or nil.
func (c *ChainReader) BlockByHash(ctx context.Context, hash common.Hash) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rawdb.ReadRawBlock(c.db, hash), nil
}

// HashByNumber returns the canonical hash at number, or the zero hash.
func (c *ChainReader) HashByNumber(ctx context.Context, number uint64) (common.Hash, error) {
	if err := ctx.Err(); err != nil {
		return common.Hash{}, err
	}
	return rawdb.ReadCanonicalHash(c.db, number), nil
}

// CurrentBlockNumber returns the number of the head block.
func (c *ChainReader) CurrentBlockNumber(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	head := rawdb.ReadHeadBlockHash(c.db)
	if head == (common.Hash{}) {
		return 0, ErrNoGenesis
	}
	number := rawdb.ReadBlockNumber(c.db, head)
	if number == nil {
		return 0, errors.Errorf("head block %v has no number", head)
	}
	return *number, nil
}

// InsertBlock stores an encoded block under hash. The block must decode; its
// height is taken from the header. The hash is trusted as given.
func (c *ChainReader) InsertBlock(hash common.Hash, raw []byte) (uint64, error) {
	if rawdb.HasBlock(c.db, hash) {
		return 0, ErrKnownBlock
	}
	block, err := types.DecodeBlock(raw)
	if err != nil {
		return 0, err
	}
	number := block.GetHeader().GetHeight()
	if err := rawdb.WriteBlock(c.db, hash, number, raw); err != nil {
		return 0, errors.Wrapf(err, "failed to write block %v", hash)
	}
	c.logger.WithFields(log.Fields{
		"number": number,
		"hash":   hash,
		"size":   common.StorageSize(len(raw)),
	}).Debug("Inserted block")
	return number, nil
}
