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

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

// Persistence stores the connections a user has configured, and which one is selected.
// Get functions return nil, without an error, when the item does not exist.
type Persistence interface {
	ListConnections(ctx context.Context, after string, limit int) ([]*apitypes.Connection, error)
	GetConnection(ctx context.Context, name string) (*apitypes.Connection, error)
	WriteConnection(ctx context.Context, conn *apitypes.Connection) error
	DeleteConnection(ctx context.Context, name string) error

	GetSelectedConnection(ctx context.Context) (string, error)
	WriteSelectedConnection(ctx context.Context, name string) error

	Close(ctx context.Context)
}

func NewPersistence(ctx context.Context) (Persistence, error) {
	pType := config.GetString(kxconfig.PersistenceType)
	switch pType {
	case "leveldb":
		return NewLevelDBPersistence(ctx)
	default:
		return nil, i18n.NewError(ctx, kxmsgs.MsgUnknownPersistence, pType)
	}
}
