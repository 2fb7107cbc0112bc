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

package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/feed"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/internal/metrics"
	"github.com/kinesis-explorer/kexplorer/internal/recordstream"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/kinesis-explorer/kexplorer/pkg/horizon"
)

// Controller keeps the ledger and transaction feeds of one connection up to date.
//
// It loads the most recent records of each kind, then follows a live stream of each from
// the newest record loaded. When the connection changes the streams are cancelled, and the
// cycle starts again for the new connection.
type Controller interface {
	// Start runs the controller, loading from the given connection if it is non-nil
	Start(conn *apitypes.Connection)
	// ConnectionChanged is how the presentation layer tells the controller a different connection was selected.
	// A nil connection stops all streams and empties the feeds.
	ConnectionChanged(conn *apitypes.Connection)
	// Snapshot returns the current state, which must not be modified
	Snapshot() *apitypes.DashboardSnapshot
	// AddObserver registers a function called with every new snapshot. Observers are called on the
	// controller's own goroutine, so must not block. The returned function removes the observer.
	AddObserver(o SnapshotObserver) (remove func())
	// Close cancels all streams, and waits for the controller to stop
	Close()
}

type SnapshotObserver func(snapshot *apitypes.DashboardSnapshot)

// cycle holds the results of the bulk fetches of one load cycle, until both have resolved
type cycle struct {
	outstanding     int
	ledgers         []*apitypes.Ledger
	ledgersErr      error
	transactions    []*apitypes.Transaction
	transactionsErr error
}

type controller struct {
	ctx       context.Context
	cancelCtx context.CancelFunc
	client    horizon.QueryClient
	metrics   metrics.DashboardMetrics
	capacity  int
	events    chan interface{}
	postLock  sync.Mutex
	started   bool
	closed    bool
	closeOnce sync.Once
	loopDone  chan struct{}

	// state below here is only touched by the event loop
	conn         *apitypes.Connection
	generation   uint64
	cycleID      *fftypes.UUID
	cycleCtx     context.Context
	cancelCycle  context.CancelFunc
	cycle        *cycle
	state        apitypes.DashboardState
	loading      bool
	errors       map[apitypes.RecordKind]error
	ledgerCancel recordstream.CancelFunc
	txCancel     recordstream.CancelFunc
	ledgers      *feed.Store[*apitypes.Ledger]
	transactions *feed.Store[*apitypes.Transaction]

	snapshotLock sync.RWMutex
	snapshot     *apitypes.DashboardSnapshot
	observers    map[int]SnapshotObserver
	nextObserver int
}

func NewController(bgCtx context.Context, client horizon.QueryClient, mm metrics.DashboardMetrics) Controller {
	c := &controller{
		client:    client,
		metrics:   mm,
		capacity:  config.GetInt(kxconfig.DashboardFeedCapacity),
		events:    make(chan interface{}, config.GetInt(kxconfig.DashboardEventQueueLength)),
		loopDone:  make(chan struct{}),
		state:     apitypes.DashboardStateIdle,
		errors:    make(map[apitypes.RecordKind]error),
		observers: make(map[int]SnapshotObserver),
	}
	c.ctx, c.cancelCtx = context.WithCancel(log.WithLogField(bgCtx, "role", "dashboard"))
	c.ledgers = feed.NewStore[*apitypes.Ledger](c.capacity)
	c.transactions = feed.NewStore[*apitypes.Transaction](c.capacity)
	c.capacity = c.ledgers.Capacity()
	c.ledgers.AddObserver(func(records []*apitypes.Ledger) {
		c.metrics.SetFeedLength(c.ctx, string(apitypes.RecordKindLedger), len(records))
	})
	c.transactions.AddObserver(func(records []*apitypes.Transaction) {
		c.metrics.SetFeedLength(c.ctx, string(apitypes.RecordKindTransaction), len(records))
	})
	c.snapshot = c.buildSnapshot()
	return c
}

func (c *controller) Start(conn *apitypes.Connection) {
	c.postLock.Lock()
	if c.started || c.closed {
		c.postLock.Unlock()
		return
	}
	c.started = true
	c.postLock.Unlock()

	go c.eventLoop()
	if conn != nil {
		c.post(&connectionChangedEvent{conn: conn})
	}
}

func (c *controller) ConnectionChanged(conn *apitypes.Connection) {
	if !c.post(&connectionChangedEvent{conn: conn}) {
		log.L(c.ctx).Warnf("Connection change ignored after dashboard stopped")
	}
}

func (c *controller) Snapshot() *apitypes.DashboardSnapshot {
	c.snapshotLock.RLock()
	defer c.snapshotLock.RUnlock()
	return c.snapshot
}

func (c *controller) AddObserver(o SnapshotObserver) func() {
	c.snapshotLock.Lock()
	defer c.snapshotLock.Unlock()
	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = o
	return func() {
		c.snapshotLock.Lock()
		defer c.snapshotLock.Unlock()
		delete(c.observers, id)
	}
}

func (c *controller) Close() {
	c.closeOnce.Do(func() {
		c.postLock.Lock()
		started := c.started
		c.postLock.Unlock()
		if !started {
			c.cancelCtx()
			c.postLock.Lock()
			c.closed = true
			c.postLock.Unlock()
			return
		}
		c.post(&teardownEvent{})
		<-c.loopDone
	})
}

// post queues an event for the loop. It returns false once the controller has stopped,
// in which case the caller still owns anything carried by the event.
func (c *controller) post(ev interface{}) bool {
	c.postLock.Lock()
	defer c.postLock.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.events <- ev:
		return true
	case <-c.ctx.Done():
		return false
	}
}

func (c *controller) eventLoop() {
	defer close(c.loopDone)
	for {
		select {
		case ev := <-c.events:
			if _, ok := ev.(*teardownEvent); ok {
				c.teardown()
				return
			}
			c.handleEvent(ev)
			c.publish()
		case <-c.ctx.Done():
			c.teardown()
			return
		}
	}
}

func (c *controller) handleEvent(ev interface{}) {
	switch ev := ev.(type) {
	case *connectionChangedEvent:
		c.handleConnectionChanged(ev.conn)
	case *ledgersFetchedEvent:
		c.handleLedgersFetched(ev)
	case *transactionsFetchedEvent:
		c.handleTransactionsFetched(ev)
	case *streamOpenedEvent:
		c.handleStreamOpened(ev)
	case *ledgerRecordEvent:
		if ev.generation == c.generation {
			c.ledgers.Push(ev.record)
		}
	case *transactionRecordEvent:
		if ev.generation == c.generation {
			c.transactions.Push(ev.record)
		}
	}
}

func (c *controller) handleConnectionChanged(conn *apitypes.Connection) {
	if c.conn.Equal(conn) {
		if conn != nil {
			// a relabelled connection does not need a reload
			c.conn = conn
		}
		return
	}
	log.L(c.ctx).Infof("Connection changed to %v", connectionName(conn))
	c.cancelStreams()
	c.conn = conn
	c.generation++
	if c.cancelCycle != nil {
		c.cancelCycle()
		c.cancelCycle = nil
	}
	c.errors = make(map[apitypes.RecordKind]error)
	if conn == nil {
		c.cycle = nil
		c.cycleID = nil
		c.state = apitypes.DashboardStateIdle
		c.loading = false
		c.ledgers.Clear()
		c.transactions.Clear()
		return
	}
	c.startLoading()
}

func (c *controller) startLoading() {
	c.cycleID = apitypes.NewCycleID()
	c.cycleCtx, c.cancelCycle = context.WithCancel(log.WithLogField(c.ctx, "cycle", c.cycleID.String()))
	c.cycle = &cycle{outstanding: 2}
	c.state = apitypes.DashboardStateLoading
	c.loading = true
	c.metrics.RecordLoadCycle(c.cycleCtx)
	log.L(c.cycleCtx).Debugf("Loading %d ledgers and transactions from %s", c.capacity, c.conn.HorizonURL)

	ctx, generation, conn := c.cycleCtx, c.generation, c.conn
	go c.fetchLedgers(ctx, generation, conn)
	go c.fetchTransactions(ctx, generation, conn)
}

func (c *controller) fetchLedgers(ctx context.Context, generation uint64, conn *apitypes.Connection) {
	start := time.Now()
	records, err := c.client.ListLedgers(ctx, conn, c.capacity, "")
	c.metrics.RecordFetch(ctx, string(apitypes.RecordKindLedger), err == nil, time.Since(start))
	c.post(&ledgersFetchedEvent{generation: generation, records: records, err: err})
}

func (c *controller) fetchTransactions(ctx context.Context, generation uint64, conn *apitypes.Connection) {
	start := time.Now()
	records, err := c.client.ListTransactions(ctx, conn, "", c.capacity, "")
	c.metrics.RecordFetch(ctx, string(apitypes.RecordKindTransaction), err == nil, time.Since(start))
	c.post(&transactionsFetchedEvent{generation: generation, records: records, err: err})
}

func (c *controller) handleLedgersFetched(ev *ledgersFetchedEvent) {
	if ev.generation != c.generation || c.cycle == nil {
		log.L(c.ctx).Debugf("Discarding ledgers loaded by superseded cycle")
		return
	}
	c.cycle.ledgers, c.cycle.ledgersErr = ev.records, ev.err
	c.cycle.outstanding--
	if c.cycle.outstanding == 0 {
		c.completeLoading()
	}
}

func (c *controller) handleTransactionsFetched(ev *transactionsFetchedEvent) {
	if ev.generation != c.generation || c.cycle == nil {
		log.L(c.ctx).Debugf("Discarding transactions loaded by superseded cycle")
		return
	}
	c.cycle.transactions, c.cycle.transactionsErr = ev.records, ev.err
	c.cycle.outstanding--
	if c.cycle.outstanding == 0 {
		c.completeLoading()
	}
}

// streamCursor resumes from the newest record loaded, or from now if there were none
func streamCursor[T apitypes.Record](records []T) string {
	if len(records) > 0 && records[0].Cursor() != "" {
		return records[0].Cursor()
	}
	return horizon.CursorNow
}

// completeLoading runs once both bulk fetches of the current cycle have resolved.
// Each kind that loaded replaces its feed and starts streaming, regardless of the other.
// The dashboard only goes live if both loaded.
func (c *controller) completeLoading() {
	ctx, generation, conn, res := c.cycleCtx, c.generation, c.conn, c.cycle
	c.cycle = nil

	if res.ledgersErr == nil {
		c.ledgers.Replace(res.ledgers)
		go c.openLedgerStream(ctx, generation, conn, streamCursor(res.ledgers))
	} else {
		log.L(ctx).Errorf("Failed to load ledgers: %s", res.ledgersErr)
		c.errors[apitypes.RecordKindLedger] = i18n.WrapError(ctx, res.ledgersErr, kxmsgs.MsgDashboardFetchFailed, apitypes.RecordKindLedger)
		c.ledgers.Clear()
	}

	if res.transactionsErr == nil {
		c.transactions.Replace(res.transactions)
		go c.openTransactionStream(ctx, generation, conn, streamCursor(res.transactions))
	} else {
		log.L(ctx).Errorf("Failed to load transactions: %s", res.transactionsErr)
		c.errors[apitypes.RecordKindTransaction] = i18n.WrapError(ctx, res.transactionsErr, kxmsgs.MsgDashboardFetchFailed, apitypes.RecordKindTransaction)
		c.transactions.Clear()
	}

	if res.ledgersErr == nil && res.transactionsErr == nil {
		c.state = apitypes.DashboardStateLive
		c.loading = false
		log.L(ctx).Infof("Dashboard live with %d ledgers and %d transactions", c.ledgers.Len(), c.transactions.Len())
	}
}

func (c *controller) openLedgerStream(ctx context.Context, generation uint64, conn *apitypes.Connection, cursor string) {
	kind := apitypes.RecordKindLedger
	source, err := c.client.OpenLedgerStream(ctx, conn, cursor)
	c.metrics.RecordStreamOpen(ctx, string(kind), err == nil)
	if err != nil {
		c.post(&streamOpenedEvent{generation: generation, kind: kind, err: err})
		return
	}
	cancel := recordstream.Subscribe(ctx, kind, source, c.metrics, func(l *apitypes.Ledger) {
		c.post(&ledgerRecordEvent{generation: generation, record: l})
	})
	if !c.post(&streamOpenedEvent{generation: generation, kind: kind, cancel: cancel}) {
		cancel()
	}
}

func (c *controller) openTransactionStream(ctx context.Context, generation uint64, conn *apitypes.Connection, cursor string) {
	kind := apitypes.RecordKindTransaction
	source, err := c.client.OpenTransactionStream(ctx, conn, cursor)
	c.metrics.RecordStreamOpen(ctx, string(kind), err == nil)
	if err != nil {
		c.post(&streamOpenedEvent{generation: generation, kind: kind, err: err})
		return
	}
	cancel := recordstream.Subscribe(ctx, kind, source, c.metrics, func(tx *apitypes.Transaction) {
		c.post(&transactionRecordEvent{generation: generation, record: tx})
	})
	if !c.post(&streamOpenedEvent{generation: generation, kind: kind, cancel: cancel}) {
		cancel()
	}
}

func (c *controller) handleStreamOpened(ev *streamOpenedEvent) {
	if ev.generation != c.generation {
		if ev.cancel != nil {
			log.L(c.ctx).Infof("Cancelling %s stream opened by superseded cycle", ev.kind)
			c.metrics.RecordStaleHandleCancelled(c.ctx, string(ev.kind))
			ev.cancel()
		}
		return
	}
	if ev.err != nil {
		log.L(c.cycleCtx).Errorf("Failed to open %s stream: %s", ev.kind, ev.err)
		c.errors[ev.kind] = i18n.WrapError(c.cycleCtx, ev.err, kxmsgs.MsgDashboardStreamFailed, ev.kind)
		return
	}
	switch ev.kind {
	case apitypes.RecordKindLedger:
		c.ledgerCancel = ev.cancel
	case apitypes.RecordKindTransaction:
		c.txCancel = ev.cancel
	}
}

// cancelStreams cancels transactions then ledgers, each handle exactly once
func (c *controller) cancelStreams() {
	if c.txCancel != nil {
		c.txCancel()
		c.txCancel = nil
	}
	if c.ledgerCancel != nil {
		c.ledgerCancel()
		c.ledgerCancel = nil
	}
}

func (c *controller) teardown() {
	log.L(c.ctx).Infof("Dashboard stopping")
	c.cancelStreams()
	c.generation++
	if c.cancelCycle != nil {
		c.cancelCycle()
		c.cancelCycle = nil
	}
	c.cycle = nil
	c.state = apitypes.DashboardStateIdle
	c.loading = false

	// Unblocks any poster waiting on a full queue, so the lock below can be taken
	c.cancelCtx()
	c.postLock.Lock()
	c.closed = true
	c.postLock.Unlock()

	// Nothing more can be queued. Streams that finished opening in the meantime are ours to cancel.
	for {
		select {
		case ev := <-c.events:
			if so, ok := ev.(*streamOpenedEvent); ok && so.cancel != nil {
				c.metrics.RecordStaleHandleCancelled(c.ctx, string(so.kind))
				so.cancel()
			}
		default:
			c.publish()
			return
		}
	}
}

func (c *controller) streaming() []apitypes.RecordKind {
	kinds := []apitypes.RecordKind{}
	if c.ledgerCancel != nil {
		kinds = append(kinds, apitypes.RecordKindLedger)
	}
	if c.txCancel != nil {
		kinds = append(kinds, apitypes.RecordKindTransaction)
	}
	return kinds
}

func (c *controller) errorString() string {
	var msgs []string
	for _, kind := range []apitypes.RecordKind{apitypes.RecordKindLedger, apitypes.RecordKindTransaction} {
		if err := c.errors[kind]; err != nil {
			msgs = append(msgs, err.Error())
		}
	}
	return strings.Join(msgs, "; ")
}

func (c *controller) buildSnapshot() *apitypes.DashboardSnapshot {
	return &apitypes.DashboardSnapshot{
		Connection:   c.conn,
		State:        c.state,
		Loading:      c.loading,
		Cycle:        c.cycleID,
		Ledgers:      c.ledgers.Records(),
		Transactions: c.transactions.Records(),
		Streaming:    c.streaming(),
		Error:        c.errorString(),
		Updated:      fftypes.Now(),
	}
}

func (c *controller) publish() {
	snapshot := c.buildSnapshot()
	c.snapshotLock.Lock()
	c.snapshot = snapshot
	observers := make([]SnapshotObserver, 0, len(c.observers))
	for _, o := range c.observers {
		observers = append(observers, o)
	}
	c.snapshotLock.Unlock()
	for _, o := range observers {
		o(snapshot)
	}
}

func connectionName(conn *apitypes.Connection) string {
	if conn == nil {
		return "<none>"
	}
	return conn.Name
}
