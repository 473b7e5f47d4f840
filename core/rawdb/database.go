// Copyright 2018 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.
// Package rawdb contains a collection of low level database accessors.
package rawdb

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/log"
)

const (
	// minCache is the minimum amount of memory in megabytes to allocate to leveldb
	// read and write caching, split half and half.
	minCache = 16

	// minHandles is the minimum number of files handles to allocate to the open
	// database files.
	minHandles = 16
)

// ErrNotFound is returned by Get for keys that are not stored.
var ErrNotFound = leveldb.ErrNotFound

// KeyValueReader wraps the Has and Get method of a backing data store.
type KeyValueReader interface {
	Has(key []byte) (bool, error)
	Get(key []byte) ([]byte, error)
	Logger() log.Logger
}

// KeyValueWriter wraps the Put and Delete method of a backing data store.
type KeyValueWriter interface {
	Put(key []byte, value []byte) error
	Delete(key []byte) error
	Logger() log.Logger
}

// Database contains all the methods required by the chain reader and the
// import tooling.
type Database interface {
	KeyValueReader
	KeyValueWriter
	NewBatch() Batch
	NewIterator(prefix []byte, start []byte) Iterator
	io.Closer
}

// Batch is a write-only database that commits changes to its host database
// when Write is called.
type Batch interface {
	KeyValueWriter
	ValueSize() int
	Write() error
	Reset()
}

// Iterator iterates over a database's key/value pairs in ascending key order.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Release()
}

// levelDatabase is a persistent key-value store on top of goleveldb.
type levelDatabase struct {
	fn     string
	db     *leveldb.DB
	logger log.Logger
}

// NewLevelDBDatabase opens the leveldb database at file, creating it if
// needed. cache is in megabytes.
func NewLevelDBDatabase(file string, cache int, handles int, readonly bool, logger log.Logger) (Database, error) {
	if logger == nil {
		logger = log.Global
	}
	if cache < minCache {
		cache = minCache
	}
	if handles < minHandles {
		handles = minHandles
	}
	logger.WithFields(log.Fields{
		"database": file,
		"cache":    common.StorageSize(cache * 1024 * 1024),
		"handles":  handles,
		"readonly": readonly,
	}).Info("Allocated cache and file handles")

	options := &opt.Options{
		Filter:                 nil,
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     cache / 2 * opt.MiB,
		WriteBuffer:            cache / 4 * opt.MiB,
		ReadOnly:               readonly,
	}
	db, err := leveldb.OpenFile(file, options)
	if _, corrupted := err.(*lerrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(file, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open database %s", file)
	}
	return &levelDatabase{fn: file, db: db, logger: logger}, nil
}

// NewMemoryDatabase creates an ephemeral in-memory key-value database.
func NewMemoryDatabase(logger log.Logger) Database {
	if logger == nil {
		logger = log.Global
	}
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		logger.WithField("err", err).Fatal("Failed to create memory database")
	}
	return &levelDatabase{fn: "memory", db: db, logger: logger}
}

func (db *levelDatabase) Has(key []byte) (bool, error) {
	return db.db.Has(key, nil)
}

func (db *levelDatabase) Get(key []byte) ([]byte, error) {
	return db.db.Get(key, nil)
}

func (db *levelDatabase) Put(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

func (db *levelDatabase) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

func (db *levelDatabase) Logger() log.Logger {
	return db.logger
}

func (db *levelDatabase) NewBatch() Batch {
	return &levelBatch{db: db.db, b: new(leveldb.Batch), logger: db.logger}
}

// NewIterator creates an iterator over the keys with the given prefix,
// starting at prefix+start.
func (db *levelDatabase) NewIterator(prefix []byte, start []byte) Iterator {
	return db.db.NewIterator(bytesPrefixRange(prefix, start), nil)
}

func (db *levelDatabase) Close() error {
	return db.db.Close()
}

// bytesPrefixRange returns key range that satisfy
// - the given prefix, and
// - the given seek position
func bytesPrefixRange(prefix, start []byte) *util.Range {
	r := util.BytesPrefix(prefix)
	r.Start = append(r.Start, start...)
	return r
}

// levelBatch is a write-only leveldb batch that commits changes to its host
// database when Write is called.
type levelBatch struct {
	db     *leveldb.DB
	b      *leveldb.Batch
	size   int
	logger log.Logger
}

func (b *levelBatch) Put(key, value []byte) error {
	b.b.Put(key, value)
	b.size += len(key) + len(value)
	return nil
}

func (b *levelBatch) Delete(key []byte) error {
	b.b.Delete(key)
	b.size += len(key)
	return nil
}

func (b *levelBatch) Logger() log.Logger {
	return b.logger
}

func (b *levelBatch) ValueSize() int {
	return b.size
}

func (b *levelBatch) Write() error {
	return b.db.Write(b.b, nil)
}

func (b *levelBatch) Reset() {
	b.b.Reset()
	b.size = 0
}

type counter uint64

func (c counter) String() string {
	return fmt.Sprintf("%d", c)
}

// stat stores sizes and count for a parameter
type stat struct {
	size  common.StorageSize
	count counter
}

// Add size to the stat and increase the counter by 1
func (s *stat) Add(size common.StorageSize) {
	s.size += size
	s.count++
}

func (s *stat) Size() string {
	return s.size.String()
}

func (s *stat) Count() string {
	return s.count.String()
}

// InspectDatabase traverses the entire database and writes the size of each
// category of data to out as a table.
func InspectDatabase(db Database, out io.Writer, logger log.Logger) error {
	it := db.NewIterator(nil, nil)
	defer it.Release()

	var (
		count  int64
		start  = time.Now()
		logged = time.Now()

		blocks          stat
		numHashPairings stat
		hashNumPairings stat
		metadata        stat
		unaccounted     stat

		total common.StorageSize
	)
	for it.Next() {
		var (
			key  = it.Key()
			size = common.StorageSize(len(key) + len(it.Value()))
		)
		total += size
		switch {
		case bytes.HasPrefix(key, blockPrefix) && len(key) == len(blockPrefix)+common.HashLength:
			blocks.Add(size)
		case bytes.HasPrefix(key, headerHashPrefix) && bytes.HasSuffix(key, headerHashSuffix) && len(key) == len(headerHashPrefix)+8+len(headerHashSuffix):
			numHashPairings.Add(size)
		case bytes.HasPrefix(key, blockNumberPrefix) && len(key) == len(blockNumberPrefix)+common.HashLength:
			hashNumPairings.Add(size)
		case bytes.Equal(key, databaseVersionKey) || bytes.Equal(key, headBlockKey):
			metadata.Add(size)
		default:
			unaccounted.Add(size)
		}
		count++
		if count%1000 == 0 && time.Since(logged) > 8*time.Second {
			logger.WithFields(log.Fields{
				"count":   count,
				"elapsed": time.Since(start),
			}).Info("Inspecting database")
			logged = time.Now()
		}
	}
	if err := it.Error(); err != nil {
		return errors.Wrap(err, "failed to iterate database")
	}
	stats := [][]string{
		{"Key-Value store", "Blocks", blocks.Size(), blocks.Count()},
		{"Key-Value store", "Block number->hash", numHashPairings.Size(), numHashPairings.Count()},
		{"Key-Value store", "Block hash->number", hashNumPairings.Size(), hashNumPairings.Count()},
		{"Key-Value store", "Singleton metadata", metadata.Size(), metadata.Count()},
	}
	if out == nil {
		out = os.Stdout
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Database", "Category", "Size", "Items"})
	table.SetFooter([]string{"", "Total", total.String(), " "})
	table.AppendBulk(stats)
	table.Render()

	if unaccounted.size > 0 {
		logger.WithFields(log.Fields{
			"size":  unaccounted.size,
			"count": unaccounted.count,
		}).Warn("Database contains unaccounted data")
	}
	return nil
}
