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
	"google.golang.org/protobuf/encoding/protowire"
)

// ReadDatabaseVersion retrieves the version number of the database.
func ReadDatabaseVersion(db KeyValueReader) *uint64 {
	enc, _ := db.Get(databaseVersionKey)
	if len(enc) == 0 {
		return nil
	}
	version, n := protowire.ConsumeVarint(enc)
	if n < 0 {
		db.Logger().WithField("err", protowire.ParseError(n)).Fatal("Failed to decode database version")
	}
	return &version
}

// WriteDatabaseVersion stores the version number of the database
func WriteDatabaseVersion(db KeyValueWriter, version uint64) {
	if err := db.Put(databaseVersionKey, protowire.AppendVarint(nil, version)); err != nil {
		db.Logger().WithField("err", err).Fatal("Failed to store the database version")
	}
}
