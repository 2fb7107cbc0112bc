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

package ws

import (
	"context"
	"net/http"
	"sync"

	ws "github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

// Handler provides the dashboard to WebSocket clients, and accepts their connection changes
type Handler interface {
	Snapshot() *apitypes.DashboardSnapshot
	SelectConnection(ctx context.Context, name string) error
}

// WebSocketServer pushes dashboard snapshots to every client that has sent a "listen" command
type WebSocketServer interface {
	http.Handler
	Broadcast(snapshot *apitypes.DashboardSnapshot)
	Close()
}

type webSocketServer struct {
	ctx          context.Context
	handler      Handler
	processingWG sync.WaitGroup
	mux          sync.Mutex
	connections  map[string]*webSocketConnection
	upgrader     *ws.Upgrader
}

func NewWebSocketServer(bgCtx context.Context, handler Handler) WebSocketServer {
	s := &webSocketServer{
		ctx:         log.WithLogField(bgCtx, "role", "websockets"),
		handler:     handler,
		connections: make(map[string]*webSocketConnection),
		upgrader: &ws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Cross origin browser dashboards are allowed, CORS applies to the REST API
				return true
			},
		},
	}
	return s
}

func (s *webSocketServer) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(res, req, nil)
	if err != nil {
		log.L(s.ctx).Errorf("WebSocket upgrade failed: %s", err)
		return
	}
	s.mux.Lock()
	c := newConnection(s.ctx, s, conn)
	s.connections[c.id] = c
	s.processingWG.Add(1)
	s.mux.Unlock()
	c.start()
}

func (s *webSocketServer) connectionClosed(c *webSocketConnection) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if _, ok := s.connections[c.id]; ok {
		delete(s.connections, c.id)
		s.processingWG.Done()
	}
}

func (s *webSocketServer) Broadcast(snapshot *apitypes.DashboardSnapshot) {
	s.mux.Lock()
	connections := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		connections = append(connections, c)
	}
	s.mux.Unlock()
	for _, c := range connections {
		c.offerSnapshot(snapshot)
	}
}

func (s *webSocketServer) Close() {
	s.mux.Lock()
	connections := make([]*webSocketConnection, 0, len(s.connections))
	for _, c := range s.connections {
		connections = append(connections, c)
	}
	s.mux.Unlock()
	for _, c := range connections {
		c.close()
	}
	s.processingWG.Wait()
}
