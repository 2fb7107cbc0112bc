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

package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/wsclient"
	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/rivo/tview"
)

const footerHelp = "[gray]c[-] next connection  [gray]q[-] quit"

// Dashboard is a terminal view of a running explorer. It listens for snapshots on the
// explorer's WebSocket, and switches the selected connection over the same socket.
type Dashboard interface {
	Run() error
	Stop()
}

type dashboard struct {
	ctx             context.Context
	cancelCtx       func()
	client          apiclient.ExplorerClient
	wsClient        wsclient.WSClient
	templates       *rowTemplates
	app             *tview.Application
	statusView      *tview.TextView
	ledgerView      *tview.TextView
	transactionView *tview.TextView
	footerView      *tview.TextView
	mux             sync.Mutex
	snapshot        *apitypes.DashboardSnapshot
	status          string
	ledgers         string
	transactions    string
	footer          string
	dirty           chan struct{}
	receiveLoopDone chan struct{}
	stopOnce        sync.Once
}

func NewDashboard(ctx context.Context, client apiclient.ExplorerClient, wsConfig *wsclient.WSConfig) (Dashboard, error) {
	return newDashboard(ctx, client, wsConfig, nil)
}

func newDashboard(ctx context.Context, client apiclient.ExplorerClient, wsConfig *wsclient.WSConfig, screen tcell.Screen) (*dashboard, error) {
	templates, err := newRowTemplates(ctx)
	if err != nil {
		return nil, err
	}
	d := &dashboard{
		client:          client,
		templates:       templates,
		status:          renderStatus(&apitypes.DashboardSnapshot{}),
		footer:          footerHelp,
		dirty:           make(chan struct{}, 1),
		receiveLoopDone: make(chan struct{}),
	}
	d.ctx, d.cancelCtx = context.WithCancel(log.WithLogField(ctx, "role", "dashboard"))
	d.wsClient, err = wsclient.New(d.ctx, wsConfig, nil, d.afterConnect)
	if err != nil {
		d.cancelCtx()
		return nil, err
	}
	d.buildLayout(screen)
	return d, nil
}

func (d *dashboard) buildLayout(screen tcell.Screen) {
	makePane := func(title string) *tview.TextView {
		tv := tview.NewTextView().
			SetDynamicColors(true).
			SetWrap(false)
		tv.SetBorder(true)
		tv.SetTitle(title).SetTitleAlign(tview.AlignLeft)
		return tv
	}
	d.statusView = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
	d.ledgerView = makePane(" Ledgers ")
	d.transactionView = makePane(" Transactions ")
	d.footerView = tview.NewTextView().SetDynamicColors(true).SetText(footerHelp)

	feeds := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(d.ledgerView, 0, 1, false).
		AddItem(d.transactionView, 0, 1, false)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(d.statusView, 3, 0, false).
		AddItem(feeds, 0, 1, false).
		AddItem(d.footerView, 1, 0, false)

	d.app = tview.NewApplication().SetRoot(layout, true).EnableMouse(false)
	if screen != nil {
		d.app.SetScreen(screen)
	}
	d.app.SetInputCapture(d.handleKey)
}

func (d *dashboard) afterConnect(ctx context.Context, w wsclient.WSClient) error {
	b, _ := json.Marshal(&apitypes.WSCommand{Type: apitypes.WSCommandListen})
	log.L(ctx).Infof("Dashboard connected. Sent: %s", b)
	return w.Send(ctx, b)
}

// Run blocks until the user quits, or Stop is called
func (d *dashboard) Run() error {
	if err := d.wsClient.Connect(); err != nil {
		return err
	}
	go d.receiveLoop()
	go d.refreshLoop()
	err := d.app.Run()
	d.Stop()
	return err
}

func (d *dashboard) Stop() {
	d.stopOnce.Do(func() {
		d.cancelCtx()
		d.wsClient.Close()
		d.app.Stop()
	})
}

func (d *dashboard) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyRune {
		return event
	}
	switch event.Rune() {
	case 'q', 'Q':
		d.Stop()
		return nil
	case 'c', 'C':
		go func() {
			if err := d.nextConnection(); err != nil {
				d.setFooter(fmt.Sprintf("[red]%s[-]  %s", tview.Escape(err.Error()), footerHelp))
			}
		}()
		return nil
	}
	return event
}

// nextConnection selects the connection after the current one, in the order the explorer lists them
func (d *dashboard) nextConnection() error {
	conns, err := d.client.GetConnections(d.ctx)
	if err != nil {
		return err
	}
	if len(conns) == 0 {
		return nil
	}
	current := ""
	d.mux.Lock()
	if d.snapshot != nil && d.snapshot.Connection != nil {
		current = d.snapshot.Connection.Name
	}
	d.mux.Unlock()

	next := conns[0]
	for i, conn := range conns {
		if conn.Name == current {
			next = conns[(i+1)%len(conns)]
			break
		}
	}
	b, _ := json.Marshal(&apitypes.WSCommand{Type: apitypes.WSCommandSelect, Connection: next.Name})
	if err := d.wsClient.Send(d.ctx, b); err != nil {
		return i18n.WrapError(d.ctx, err, kxmsgs.MsgWebSocketSendFailed, apitypes.WSCommandSelect)
	}
	d.setFooter(fmt.Sprintf("Selecting %s  %s", tview.Escape(next.Name), footerHelp))
	return nil
}

func (d *dashboard) receiveLoop() {
	defer close(d.receiveLoopDone)
	for {
		select {
		case b, ok := <-d.wsClient.Receive():
			if !ok {
				log.L(d.ctx).Infof("Dashboard WebSocket closed")
				return
			}
			var msg apitypes.WSMessage
			if err := json.Unmarshal(b, &msg); err != nil {
				log.L(d.ctx).Errorf("%s", i18n.NewError(d.ctx, kxmsgs.MsgInvalidWebSocketMessage, err))
				continue
			}
			d.handleMessage(&msg)
		case <-d.ctx.Done():
			log.L(d.ctx).Debugf("Dashboard receive loop exiting")
			return
		}
	}
}

func (d *dashboard) handleMessage(msg *apitypes.WSMessage) {
	switch msg.Type {
	case apitypes.WSMessageSnapshot:
		if msg.Snapshot != nil {
			d.setSnapshot(msg.Snapshot)
		}
	case apitypes.WSMessageError:
		d.setFooter(fmt.Sprintf("[red]%s[-]  %s", tview.Escape(msg.Error), footerHelp))
	}
}

func (d *dashboard) setSnapshot(snapshot *apitypes.DashboardSnapshot) {
	status := renderStatus(snapshot)
	ledgers := d.templates.renderLedgers(snapshot)
	transactions := d.templates.renderTransactions(snapshot)
	d.mux.Lock()
	d.snapshot = snapshot
	d.status = status
	d.ledgers = ledgers
	d.transactions = transactions
	d.mux.Unlock()
	d.markDirty()
}

func (d *dashboard) setFooter(text string) {
	d.mux.Lock()
	d.footer = text
	d.mux.Unlock()
	d.markDirty()
}

// markDirty coalesces changes into a single pending refresh
func (d *dashboard) markDirty() {
	select {
	case d.dirty <- struct{}{}:
	default:
	}
}

func (d *dashboard) refreshLoop() {
	for {
		select {
		case <-d.dirty:
			d.app.QueueUpdateDraw(d.refreshViews)
		case <-d.ctx.Done():
			return
		}
	}
}

// refreshViews must run on the application goroutine
func (d *dashboard) refreshViews() {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.statusView.SetText(d.status)
	d.ledgerView.SetText(d.ledgers)
	d.transactionView.SetText(d.transactions)
	d.footerView.SetText(d.footer)
}

func (d *dashboard) currentSnapshot() *apitypes.DashboardSnapshot {
	d.mux.Lock()
	defer d.mux.Unlock()
	return d.snapshot
}

func (d *dashboard) rendered() (status, ledgers, transactions, footer string) {
	d.mux.Lock()
	defer d.mux.Unlock()
	return d.status, d.ledgers, d.transactions, d.footer
}
