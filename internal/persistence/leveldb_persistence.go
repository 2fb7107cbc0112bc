// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type leveldbPersistence struct {
	db         *leveldb.DB
	syncWrites bool
}

func NewLevelDBPersistence(ctx context.Context) (Persistence, error) {
	dbPath := config.GetString(kxconfig.PersistenceLevelDBPath)
	if dbPath == "" {
		return nil, i18n.NewError(ctx, kxmsgs.MsgLevelDBPathMissing)
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: config.GetInt(kxconfig.PersistenceLevelDBMaxHandles),
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceInitFailed, dbPath)
	}
	return &leveldbPersistence{
		db:         db,
		syncWrites: config.GetBool(kxconfig.PersistenceLevelDBSyncWrites),
	}, nil
}

const connectionsPrefix = "connections_0/"
const connectionsEnd = "connections_1"
const selectedConnectionKey = "selected_0"

func prefixedStrKey(prefix string, k string) []byte {
	return []byte(fmt.Sprintf("%s%s", prefix, k))
}

func (p *leveldbPersistence) writeJSON(ctx context.Context, key []byte, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceMarshalFailed)
	}
	if err := p.db.Put(key, b, &opt.WriteOptions{Sync: p.syncWrites}); err != nil {
		return i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceWriteFailed, key)
	}
	log.L(ctx).Debugf("Wrote %s", key)
	return nil
}

func (p *leveldbPersistence) readJSON(ctx context.Context, key []byte, target interface{}) error {
	b, err := p.db.Get(key, &opt.ReadOptions{})
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil
		}
		return i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceReadFailed, key)
	}
	err = json.Unmarshal(b, target)
	if err != nil {
		return i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceUnmarshalFailed)
	}
	log.L(ctx).Debugf("Read %s", key)
	return nil
}

// listJSON iterates a collection in ascending key order, starting after the given key if set
func (p *leveldbPersistence) listJSON(ctx context.Context, collectionPrefix, collectionEnd, after string, limit int,
	val func() interface{}, // return a pointer to a pointer variable, of the type to unmarshal
	add func(interface{}), // passes back the val() for adding to the list
) error {
	collectionRange := &util.Range{
		Start: []byte(collectionPrefix),
		Limit: []byte(collectionEnd),
	}
	if after != "" {
		// a zero byte sorts directly after the key itself
		collectionRange.Start = append([]byte(collectionPrefix+after), 0x00)
	}
	it := p.db.NewIterator(collectionRange, &opt.ReadOptions{DontFillCache: true})
	defer it.Release()
	count := 0
	for it.Next() {
		v := val()
		err := json.Unmarshal(it.Value(), v)
		if err != nil {
			return i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceUnmarshalFailed)
		}
		add(v)
		count++
		if limit > 0 && count >= limit {
			break
		}
	}
	log.L(ctx).Debugf("Listed %d items", count)
	return it.Error()
}

func (p *leveldbPersistence) deleteKeys(ctx context.Context, keys ...[]byte) error {
	for _, key := range keys {
		err := p.db.Delete(key, &opt.WriteOptions{Sync: p.syncWrites})
		if err != nil {
			return i18n.WrapError(ctx, err, kxmsgs.MsgPersistenceDeleteFailed, key)
		}
		log.L(ctx).Debugf("Deleted %s", key)
	}
	return nil
}

func (p *leveldbPersistence) ListConnections(ctx context.Context, after string, limit int) ([]*apitypes.Connection, error) {
	connections := make([]*apitypes.Connection, 0)
	if err := p.listJSON(ctx, connectionsPrefix, connectionsEnd, after, limit,
		func() interface{} { var v *apitypes.Connection; return &v },
		func(v interface{}) { connections = append(connections, *(v.(**apitypes.Connection))) },
	); err != nil {
		return nil, err
	}
	return connections, nil
}

func (p *leveldbPersistence) GetConnection(ctx context.Context, name string) (conn *apitypes.Connection, err error) {
	err = p.readJSON(ctx, prefixedStrKey(connectionsPrefix, name), &conn)
	return conn, err
}

func (p *leveldbPersistence) WriteConnection(ctx context.Context, conn *apitypes.Connection) error {
	return p.writeJSON(ctx, prefixedStrKey(connectionsPrefix, conn.Name), conn)
}

func (p *leveldbPersistence) DeleteConnection(ctx context.Context, name string) error {
	return p.deleteKeys(ctx, prefixedStrKey(connectionsPrefix, name))
}

func (p *leveldbPersistence) GetSelectedConnection(ctx context.Context) (name string, err error) {
	err = p.readJSON(ctx, []byte(selectedConnectionKey), &name)
	return name, err
}

func (p *leveldbPersistence) WriteSelectedConnection(ctx context.Context, name string) error {
	return p.writeJSON(ctx, []byte(selectedConnectionKey), name)
}

func (p *leveldbPersistence) Close(ctx context.Context) {
	err := p.db.Close()
	if err != nil {
		log.L(ctx).Warnf("Error closing leveldb: %s", err)
	}
}
