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
package rawdb

import (
	"encoding/binary"

	"github.com/rainchen/cita-common/common"
	"github.com/rainchen/cita-common/log"
)

// ReadCanonicalHash retrieves the hash assigned to a canonical block number.
func ReadCanonicalHash(db KeyValueReader, number uint64) common.Hash {
	data, _ := db.Get(headerHashKey(number))
	if len(data) == 0 {
		return common.Hash{}
	}
	return common.BytesToHash(data)
}

// WriteCanonicalHash stores the hash assigned to a canonical block number.
func WriteCanonicalHash(db KeyValueWriter, hash common.Hash, number uint64) {
	if err := db.Put(headerHashKey(number), hash.Bytes()); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to store number to hash mapping")
	}
}

// DeleteCanonicalHash removes the number to hash canonical mapping.
func DeleteCanonicalHash(db KeyValueWriter, number uint64) {
	if err := db.Delete(headerHashKey(number)); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to delete number to hash mapping")
	}
}

// ReadBlockNumber returns the block number assigned to a block hash.
func ReadBlockNumber(db KeyValueReader, hash common.Hash) *uint64 {
	data, _ := db.Get(blockNumberKey(hash))
	if len(data) != 8 {
		return nil
	}
	number := binary.BigEndian.Uint64(data)
	return &number
}

// WriteBlockNumber stores the hash->number mapping.
func WriteBlockNumber(db KeyValueWriter, hash common.Hash, number uint64) {
	if err := db.Put(blockNumberKey(hash), encodeBlockNumber(number)); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to store hash to number mapping")
	}
}

// DeleteBlockNumber removes the hash->number mapping.
func DeleteBlockNumber(db KeyValueWriter, hash common.Hash) {
	if err := db.Delete(blockNumberKey(hash)); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to delete hash to number mapping")
	}
}

// ReadHeadBlockHash retrieves the hash of the current canonical head block.
func ReadHeadBlockHash(db KeyValueReader) common.Hash {
	data, _ := db.Get(headBlockKey)
	if len(data) == 0 {
		return common.Hash{}
	}
	return common.BytesToHash(data)
}

// WriteHeadBlockHash stores the head block's hash.
func WriteHeadBlockHash(db KeyValueWriter, hash common.Hash) {
	if err := db.Put(headBlockKey, hash.Bytes()); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to store last block's hash")
	}
}

// HasBlock verifies the existence of a block corresponding to the hash.
func HasBlock(db KeyValueReader, hash common.Hash) bool {
	if has, err := db.Has(blockKey(hash)); !has || err != nil {
		return false
	}
	return true
}

// ReadRawBlock retrieves the encoded block stored under hash, or nil if there
// is none.
func ReadRawBlock(db KeyValueReader, hash common.Hash) []byte {
	data, _ := db.Get(blockKey(hash))
	if len(data) == 0 {
		return nil
	}
	return data
}

// WriteRawBlock stores an encoded block under hash. The content is stored as
// given; nothing checks that it hashes to hash.
func WriteRawBlock(db KeyValueWriter, hash common.Hash, data []byte) {
	if err := db.Put(blockKey(hash), data); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to store block")
	}
}

// DeleteRawBlock removes the encoded block stored under hash.
func DeleteRawBlock(db KeyValueWriter, hash common.Hash) {
	if err := db.Delete(blockKey(hash)); err != nil {
		db.Logger().WithFields(log.Fields{
			"hash": hash,
			"err":  err,
		}).Fatal("Failed to delete block")
	}
}

// WriteBlock stores an encoded block together with its number mappings, and
// advances the head if number is past the current head.
func WriteBlock(db Database, hash common.Hash, number uint64, data []byte) error {
	batch := db.NewBatch()
	WriteRawBlock(batch, hash, data)
	WriteBlockNumber(batch, hash, number)
	WriteCanonicalHash(batch, hash, number)

	head := ReadHeadBlockHash(db)
	if head == (common.Hash{}) {
		WriteHeadBlockHash(batch, hash)
	} else if headNumber := ReadBlockNumber(db, head); headNumber == nil || number >= *headNumber {
		WriteHeadBlockHash(batch, hash)
	}
	return batch.Write()
}
