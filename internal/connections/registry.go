// Copyright © 2025 Kaleido, Inc.
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

package connections

import (
	"context"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/internal/persistence"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

// Listener is told about every change to the selected connection, in order.
// The selected connection cannot be deleted, so it is never called with nil.
type Listener func(conn *apitypes.Connection)

// Registry is the set of connections a user can pick from, one of which is selected
type Registry interface {
	List(ctx context.Context) ([]*apitypes.Connection, error)
	Get(ctx context.Context, name string) (*apitypes.Connection, error)
	Put(ctx context.Context, conn *apitypes.Connection) (*apitypes.Connection, error)
	Delete(ctx context.Context, name string) error
	Select(ctx context.Context, name string) (*apitypes.Connection, error)
	Selected(ctx context.Context) (*apitypes.Connection, error)
	AddListener(l Listener)
}

type registry struct {
	mux       sync.Mutex
	p         persistence.Persistence
	listeners []Listener
}

// NewRegistry loads the registry from persistence. If a connection is defined in configuration,
// it is stored on first start and selected if nothing else is.
func NewRegistry(ctx context.Context, p persistence.Persistence) (Registry, error) {
	r := &registry{p: p}
	if config.GetString(kxconfig.ConnectionHorizonURL) != "" {
		if err := r.seedConfiguredConnection(ctx); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *registry) seedConfiguredConnection(ctx context.Context) error {
	conn := &apitypes.Connection{
		Name:              config.GetString(kxconfig.ConnectionName),
		NetworkPassphrase: config.GetString(kxconfig.ConnectionNetworkPassphrase),
		HorizonURL:        config.GetString(kxconfig.ConnectionHorizonURL),
	}
	if err := conn.Validate(ctx); err != nil {
		return err
	}
	existing, err := r.p.GetConnection(ctx, conn.Name)
	if err != nil {
		return err
	}
	if existing == nil {
		log.L(ctx).Infof("Adding configured connection '%s' to %s", conn.Name, conn.HorizonURL)
		now := fftypes.Now()
		conn.Created, conn.Updated = now, now
		if err := r.p.WriteConnection(ctx, conn); err != nil {
			return err
		}
	}
	selected, err := r.p.GetSelectedConnection(ctx)
	if err != nil {
		return err
	}
	if selected == "" {
		return r.p.WriteSelectedConnection(ctx, conn.Name)
	}
	return nil
}

func (r *registry) AddListener(l Listener) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.listeners = append(r.listeners, l)
}

func (r *registry) notifyLocked(conn *apitypes.Connection) {
	for _, l := range r.listeners {
		l(conn)
	}
}

func (r *registry) List(ctx context.Context) ([]*apitypes.Connection, error) {
	return r.p.ListConnections(ctx, "", 0)
}

func (r *registry) Get(ctx context.Context, name string) (*apitypes.Connection, error) {
	conn, err := r.p.GetConnection(ctx, name)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, i18n.NewError(ctx, kxmsgs.MsgConnectionNotFound, name)
	}
	return conn, nil
}

// Put adds or replaces a connection. Replacing the selected connection is a connection change.
func (r *registry) Put(ctx context.Context, conn *apitypes.Connection) (*apitypes.Connection, error) {
	if err := conn.Validate(ctx); err != nil {
		return nil, err
	}
	r.mux.Lock()
	defer r.mux.Unlock()

	existing, err := r.p.GetConnection(ctx, conn.Name)
	if err != nil {
		return nil, err
	}
	stored := *conn
	stored.Updated = fftypes.Now()
	stored.Created = stored.Updated
	if existing != nil {
		stored.Created = existing.Created
	}
	if err := r.p.WriteConnection(ctx, &stored); err != nil {
		return nil, err
	}

	selected, err := r.p.GetSelectedConnection(ctx)
	if err != nil {
		return nil, err
	}
	if selected == stored.Name {
		r.notifyLocked(&stored)
	}
	return &stored, nil
}

func (r *registry) Delete(ctx context.Context, name string) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	if _, err := r.Get(ctx, name); err != nil {
		return err
	}
	selected, err := r.p.GetSelectedConnection(ctx)
	if err != nil {
		return err
	}
	if selected == name {
		return i18n.NewError(ctx, kxmsgs.MsgConnectionIsSelected, name)
	}
	return r.p.DeleteConnection(ctx, name)
}

func (r *registry) Select(ctx context.Context, name string) (*apitypes.Connection, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	conn, err := r.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := r.p.WriteSelectedConnection(ctx, name); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Selected connection '%s'", name)
	r.notifyLocked(conn)
	return conn, nil
}

// Selected returns nil if no connection is selected
func (r *registry) Selected(ctx context.Context) (*apitypes.Connection, error) {
	name, err := r.p.GetSelectedConnection(ctx)
	if err != nil || name == "" {
		return nil, err
	}
	return r.p.GetConnection(ctx, name)
}
