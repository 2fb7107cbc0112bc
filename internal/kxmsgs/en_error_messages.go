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

package kxmsgs

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

const kexplorerPrefix = "KX10"

var registered sync.Once

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	registered.Do(func() {
		i18n.RegisterPrefix(kexplorerPrefix, "Kinesis Explorer")
	})
	if !strings.HasPrefix(key, kexplorerPrefix) {
		panic(fmt.Errorf("must have prefix '%s': %s", kexplorerPrefix, key))
	}
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	MsgConfigParamNotSet          = ffe("KX10100", "Configuration parameter '%s' must be set")
	MsgUnknownPersistence         = ffe("KX10101", "Unknown persistence type '%s'")
	MsgLevelDBPathMissing         = ffe("KX10102", "Path must be supplied for LevelDB persistence")
	MsgPersistenceInitFailed      = ffe("KX10103", "Failed to initialize persistence at path '%s'")
	MsgPersistenceMarshalFailed   = ffe("KX10104", "JSON serialization failed while writing to persistence")
	MsgPersistenceUnmarshalFailed = ffe("KX10105", "JSON parsing failed while reading from persistence")
	MsgPersistenceReadFailed      = ffe("KX10106", "Failed to read key '%s' from persistence")
	MsgPersistenceWriteFailed     = ffe("KX10107", "Failed to write key '%s' to persistence")
	MsgPersistenceDeleteFailed    = ffe("KX10108", "Failed to delete key '%s' from persistence")
	MsgCacheInitFailed            = ffe("KX10109", "Failed to initialize the %s cache")

	MsgHorizonRequestFailed    = ffe("KX10110", "Horizon request to '%s' failed")
	MsgHorizonError            = ffe("KX10111", "Horizon returned status %d for '%s': %s")
	MsgLedgerNotFound          = ffe("KX10112", "Ledger '%s' not found", http.StatusNotFound)
	MsgTransactionNotFound     = ffe("KX10113", "Transaction '%s' not found", http.StatusNotFound)
	MsgAccountNotFound         = ffe("KX10114", "Account '%s' not found", http.StatusNotFound)
	MsgInvalidPublicKey        = ffe("KX10115", "'%s' is not a valid account public key", http.StatusBadRequest)
	MsgInvalidLedgerSequence   = ffe("KX10116", "'%s' is not a valid ledger sequence", http.StatusBadRequest)
	MsgInvalidConnection       = ffe("KX10117", "A connection requires a name, a network passphrase and a Horizon URL", http.StatusBadRequest)
	MsgInvalidHorizonURL       = ffe("KX10118", "Invalid Horizon URL '%s'", http.StatusBadRequest)
	MsgStreamConnectFailed     = ffe("KX10119", "Failed to connect stream to '%s'")
	MsgStreamBadStatus         = ffe("KX10120", "Stream request to '%s' returned status %d")
	MsgStreamRecordParseFailed = ffe("KX10121", "Failed to parse '%s' stream record with id '%s'")
	MsgInvalidTransactionHash  = ffe("KX10122", "'%s' is not a valid transaction hash", http.StatusBadRequest)

	MsgConnectionNotFound   = ffe("KX10130", "Connection '%s' not found", http.StatusNotFound)
	MsgConnectionIsSelected = ffe("KX10131", "Connection '%s' is selected and cannot be deleted", http.StatusConflict)
	MsgNoConnectionSelected = ffe("KX10132", "No connection is selected", http.StatusConflict)

	MsgSearchQueryInvalid = ffe("KX10140", "Search query '%s' is not a ledger sequence, a transaction hash or an account ID", http.StatusBadRequest)
	MsgInvalidLimit       = ffe("KX10141", "Invalid limit '%s'", http.StatusBadRequest)

	MsgBadTemplate = ffe("KX10150", "Invalid Go template for '%s'")

	MsgDashboardFetchFailed  = ffe("KX10160", "Failed to load %s")
	MsgDashboardStreamFailed = ffe("KX10161", "Failed to open the %s stream")

	MsgExplorerRequestFailed   = ffe("KX10170", "Explorer API request failed with status %d: %s")
	MsgWebSocketClosed         = ffe("KX10171", "WebSocket '%s' closed")
	MsgWebSocketSendFailed     = ffe("KX10172", "Failed to send WebSocket command '%s'")
	MsgInvalidWebSocketMessage = ffe("KX10173", "Invalid message received from WebSocket: %s")
)
