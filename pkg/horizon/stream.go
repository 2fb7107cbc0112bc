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

package horizon

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

const maxEventSize = 1024 * 1024

// RecordStream is an open server push of new records.
type RecordStream[T apitypes.Record] interface {
	// Stream starts delivering records to onRecord, one at a time in the order the server produced them,
	// and returns the function that stops delivery. Stream must only be called once.
	// Calling the returned cancel more than once is safe.
	Stream(onRecord func(T)) (cancel func())
}

type sseStream[T apitypes.Record] struct {
	ctx        context.Context
	cancelCtx  context.CancelFunc
	hc         *horizonClient
	url        string
	cursor     string
	body       io.ReadCloser
	cancelOnce sync.Once
	done       chan struct{}
}

func (hc *horizonClient) OpenLedgerStream(ctx context.Context, conn *apitypes.Connection, cursor string) (RecordStream[*apitypes.Ledger], error) {
	s, err := openStream[*apitypes.Ledger](ctx, hc, endpoint(conn, "/ledgers"), cursor)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (hc *horizonClient) OpenTransactionStream(ctx context.Context, conn *apitypes.Connection, cursor string) (RecordStream[*apitypes.Transaction], error) {
	s, err := openStream[*apitypes.Transaction](ctx, hc, endpoint(conn, "/transactions"), cursor)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// openStream makes the first connection synchronously, so a bad endpoint is reported to the caller.
// Once streaming, dropped connections are re-established from the last record received.
func openStream[T apitypes.Record](ctx context.Context, hc *horizonClient, u, cursor string) (*sseStream[T], error) {
	if cursor == "" {
		cursor = CursorNow
	}
	s := &sseStream[T]{
		hc:     hc,
		url:    u,
		cursor: cursor,
		done:   make(chan struct{}),
	}
	s.ctx, s.cancelCtx = context.WithCancel(log.WithLogField(ctx, "stream", u))
	body, err := s.connect()
	if err != nil {
		s.cancelCtx()
		close(s.done)
		return nil, err
	}
	s.body = body
	return s, nil
}

func (s *sseStream[T]) connect() (io.ReadCloser, error) {
	res, err := s.hc.streamClient.R().
		SetContext(s.ctx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream").
		SetHeader("Cache-Control", "no-cache").
		SetQueryParam("cursor", s.cursor).
		Get(s.url)
	if err != nil {
		return nil, i18n.WrapError(s.ctx, err, kxmsgs.MsgStreamConnectFailed, s.url)
	}
	if res.StatusCode() != http.StatusOK {
		_ = res.RawBody().Close()
		return nil, i18n.NewError(s.ctx, kxmsgs.MsgStreamBadStatus, s.url, res.StatusCode())
	}
	log.L(s.ctx).Debugf("Stream connected cursor=%s", s.cursor)
	return res.RawBody(), nil
}

func (s *sseStream[T]) Stream(onRecord func(T)) (cancel func()) {
	go s.run(onRecord)
	return s.cancel
}

func (s *sseStream[T]) cancel() {
	s.cancelOnce.Do(func() {
		log.L(s.ctx).Debugf("Stream cancelled")
		s.cancelCtx()
	})
}

func (s *sseStream[T]) run(onRecord func(T)) {
	defer close(s.done)
	body := s.body
	for {
		err := s.readEvents(body, onRecord)
		_ = body.Close()
		if s.ctx.Err() != nil {
			log.L(s.ctx).Debugf("Stream loop exiting")
			return
		}
		log.L(s.ctx).Warnf("Stream disconnected (will reconnect from cursor=%s): %v", s.cursor, err)
		err = s.hc.streamRetry.Do(s.ctx, "stream reconnect", func(attempt int) (bool, error) {
			var connectErr error
			body, connectErr = s.connect()
			return connectErr != nil, connectErr
		})
		if err != nil {
			log.L(s.ctx).Debugf("Stream loop exiting while reconnecting: %s", err)
			return
		}
	}
}

// readEvents parses the event-stream framing until the body ends. Only unnamed events carrying a
// JSON object are records. Horizon also sends a "hello" open event, and keep-alive comments.
func (s *sseStream[T]) readEvents(body io.Reader, onRecord func(T)) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)
	var eventType, eventID string
	var data strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if data.Len() > 0 && (eventType == "" || eventType == "message") {
				s.dispatch(eventID, data.String(), onRecord)
			}
			eventType, eventID = "", ""
			data.Reset()
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}
		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")
		switch field {
		case "event":
			eventType = value
		case "id":
			eventID = value
		case "data":
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.EOF
}

func (s *sseStream[T]) dispatch(eventID, data string, onRecord func(T)) {
	if !strings.HasPrefix(data, "{") {
		log.L(s.ctx).Tracef("Ignoring stream event id=%s data=%s", eventID, data)
		return
	}
	var record T
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		log.L(s.ctx).Errorf("%s: %s", i18n.NewError(s.ctx, kxmsgs.MsgStreamRecordParseFailed, s.url, eventID), err)
		return
	}
	if cursor := record.Cursor(); cursor != "" {
		s.cursor = cursor
	} else if eventID != "" {
		s.cursor = eventID
	}
	if s.ctx.Err() != nil {
		return
	}
	onRecord(record)
}
