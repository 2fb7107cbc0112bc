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

package apitypes

import (
	"github.com/hyperledger/firefly-common/pkg/fftypes"
)

type DashboardState = fftypes.FFEnum

var (
	DashboardStateIdle    = fftypes.FFEnumValue("dashstate", "idle")
	DashboardStateLoading = fftypes.FFEnumValue("dashstate", "loading")
	DashboardStateLive    = fftypes.FFEnumValue("dashstate", "live")
)

type RecordKind string

const (
	RecordKindLedger      RecordKind = "ledgers"
	RecordKindTransaction RecordKind = "transactions"
)

// DashboardSnapshot is an immutable copy of the dashboard state, handed to the presentation layer.
// Loading is true from the start of a load cycle, until both feeds have been replaced.
type DashboardSnapshot struct {
	Connection   *Connection     `ffstruct:"dashboard" json:"connection,omitempty"`
	State        DashboardState  `ffstruct:"dashboard" json:"state" ffenum:"dashstate"`
	Loading      bool            `ffstruct:"dashboard" json:"loading"`
	Cycle        *fftypes.UUID   `ffstruct:"dashboard" json:"cycle,omitempty"`
	Ledgers      []*Ledger       `ffstruct:"dashboard" json:"ledgers"`
	Transactions []*Transaction  `ffstruct:"dashboard" json:"transactions"`
	Streaming    []RecordKind    `ffstruct:"dashboard" json:"streaming"`
	Error        string          `ffstruct:"dashboard" json:"error,omitempty"`
	Updated      *fftypes.FFTime `ffstruct:"dashboard" json:"updated"`
}

type SearchResultType = fftypes.FFEnum

var (
	SearchResultTypeLedger      = fftypes.FFEnumValue("searchtype", "ledger")
	SearchResultTypeTransaction = fftypes.FFEnumValue("searchtype", "transaction")
	SearchResultTypeAccount     = fftypes.FFEnumValue("searchtype", "account")
)

// SearchResult is what a search query resolved to. Exactly one of the record fields is set.
type SearchResult struct {
	Type        SearchResultType `ffstruct:"searchresult" json:"type" ffenum:"searchtype"`
	Ledger      *Ledger          `ffstruct:"searchresult" json:"ledger,omitempty"`
	Transaction *Transaction     `ffstruct:"searchresult" json:"transaction,omitempty"`
	Account     *Account         `ffstruct:"searchresult" json:"account,omitempty"`
}

type LiveStatus struct {
	Up        bool            `ffstruct:"livestatus" json:"up"`
	Dashboard DashboardState  `ffstruct:"livestatus" json:"dashboard" ffenum:"dashstate"`
	Time      *fftypes.FFTime `ffstruct:"livestatus" json:"time"`
}

type WSCommandType string

const (
	WSCommandListen WSCommandType = "listen"
	WSCommandSelect WSCommandType = "select"
)

// WSCommand is sent by a WebSocket client to the explorer
type WSCommand struct {
	Type       WSCommandType `json:"type"`
	Connection string        `json:"connection,omitempty"`
}

type WSMessageType string

const (
	WSMessageSnapshot WSMessageType = "snapshot"
	WSMessageError    WSMessageType = "error"
)

// WSMessage is sent by the explorer to WebSocket clients
type WSMessage struct {
	Type     WSMessageType      `json:"type"`
	Snapshot *DashboardSnapshot `json:"snapshot,omitempty"`
	Error    string             `json:"error,omitempty"`
}
