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
	"strings"
	"sync"

	ws "github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

const maxPendingReplies = 10

type webSocketConnection struct {
	ctx       context.Context
	id        string
	server    *webSocketServer
	conn      *ws.Conn
	mux       sync.Mutex
	closed    bool
	listening bool
	broadcast bool
	snapshots chan *apitypes.WSMessage
	replies   chan *apitypes.WSMessage
	closing   chan struct{}
}

func newConnection(bgCtx context.Context, server *webSocketServer, conn *ws.Conn) *webSocketConnection {
	id := fftypes.NewUUID().String()
	wsc := &webSocketConnection{
		ctx:       log.WithLogField(bgCtx, "wsc", id),
		id:        id,
		server:    server,
		conn:      conn,
		snapshots: make(chan *apitypes.WSMessage, 1),
		replies:   make(chan *apitypes.WSMessage, maxPendingReplies),
		closing:   make(chan struct{}),
	}
	return wsc
}

func (c *webSocketConnection) start() {
	go c.listen()
	go c.sender()
}

func (c *webSocketConnection) close() {
	c.mux.Lock()
	alreadyClosed := c.closed
	if !c.closed {
		c.closed = true
		c.conn.Close()
		close(c.closing)
	}
	c.mux.Unlock()

	if !alreadyClosed {
		c.server.connectionClosed(c)
		log.L(c.ctx).Infof("Disconnected")
	}
}

// offerSnapshot replaces any snapshot the sender has not yet written, so a slow client
// only ever falls behind by one snapshot
func (c *webSocketConnection) offerSnapshot(snapshot *apitypes.DashboardSnapshot) {
	c.mux.Lock()
	defer c.mux.Unlock()
	if c.offerSnapshotLocked(snapshot) {
		c.broadcast = true
	}
}

func (c *webSocketConnection) offerSnapshotLocked(snapshot *apitypes.DashboardSnapshot) bool {
	if c.closed || !c.listening {
		return false
	}
	select {
	case <-c.snapshots:
		log.L(c.ctx).Debugf("Replacing unsent snapshot")
	default:
	}
	c.snapshots <- &apitypes.WSMessage{Type: apitypes.WSMessageSnapshot, Snapshot: snapshot}
	return true
}

func (c *webSocketConnection) replyError(err error) {
	select {
	case c.replies <- &apitypes.WSMessage{Type: apitypes.WSMessageError, Error: err.Error()}:
	default:
		log.L(c.ctx).Warnf("Dropped error reply to slow client: %s", err)
	}
}

func (c *webSocketConnection) sender() {
	defer c.close()
	for {
		var msg *apitypes.WSMessage
		select {
		case msg = <-c.snapshots:
		case msg = <-c.replies:
		case <-c.closing:
			log.L(c.ctx).Infof("Closing")
			return
		}
		if err := c.conn.WriteJSON(msg); err != nil {
			log.L(c.ctx).Errorf("Send failed: %s", err)
			return
		}
	}
}

func (c *webSocketConnection) startListening() {
	c.mux.Lock()
	c.listening = true
	c.broadcast = false
	c.mux.Unlock()

	snapshot := c.server.handler.Snapshot()

	// A broadcast queued since listening began is at least as new as snapshot,
	// and must not be overwritten by it
	c.mux.Lock()
	defer c.mux.Unlock()
	if !c.broadcast {
		c.offerSnapshotLocked(snapshot)
	}
}

func (c *webSocketConnection) listen() {
	defer c.close()
	log.L(c.ctx).Infof("Connected")
	for {
		var msg apitypes.WSCommand
		err := c.conn.ReadJSON(&msg)
		if err != nil {
			log.L(c.ctx).Errorf("Error: %s", err)
			return
		}
		log.L(c.ctx).Debugf("Received: %+v", msg)

		switch apitypes.WSCommandType(strings.ToLower(string(msg.Type))) {
		case apitypes.WSCommandListen:
			c.startListening()
		case apitypes.WSCommandSelect:
			if err := c.server.handler.SelectConnection(c.ctx, msg.Connection); err != nil {
				log.L(c.ctx).Errorf("Select of connection '%s' failed: %s", msg.Connection, err)
				c.replyError(err)
			}
		default:
			log.L(c.ctx).Errorf("Unexpected message type: %+v", msg)
			c.replyError(i18n.NewError(c.ctx, kxmsgs.MsgInvalidWebSocketMessage, msg.Type))
		}
	}
}
