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
	"github.com/kinesis-explorer/kexplorer/internal/recordstream"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

// Everything that changes controller state arrives on the event loop as one of these.
// Events that result from asynchronous work carry the generation of the load cycle that started it.

type connectionChangedEvent struct {
	conn *apitypes.Connection
}

type ledgersFetchedEvent struct {
	generation uint64
	records    []*apitypes.Ledger
	err        error
}

type transactionsFetchedEvent struct {
	generation uint64
	records    []*apitypes.Transaction
	err        error
}

type streamOpenedEvent struct {
	generation uint64
	kind       apitypes.RecordKind
	cancel     recordstream.CancelFunc
	err        error
}

type ledgerRecordEvent struct {
	generation uint64
	record     *apitypes.Ledger
}

type transactionRecordEvent struct {
	generation uint64
	record     *apitypes.Transaction
}

type teardownEvent struct{}
