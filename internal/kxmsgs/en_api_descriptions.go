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
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	APIEndpointGetDashboard          = ffm("api.endpoints.get.dashboard", "Get the current ledger and transaction feeds for the selected connection")
	APIEndpointGetConnections        = ffm("api.endpoints.get.connections", "List the known connections")
	APIEndpointPostConnection        = ffm("api.endpoints.post.connection", "Add or update a connection")
	APIEndpointDeleteConnection      = ffm("api.endpoints.delete.connection", "Delete a connection")
	APIEndpointGetSelectedConnection = ffm("api.endpoints.get.connection.selected", "Get the selected connection")
	APIEndpointPutSelectedConnection = ffm("api.endpoints.put.connection.selected", "Select the connection that drives the dashboard")
	APIEndpointGetLedgers            = ffm("api.endpoints.get.ledgers", "List ledgers, newest first, from the selected connection")
	APIEndpointGetLedger             = ffm("api.endpoints.get.ledger", "Get a ledger by sequence")
	APIEndpointGetTransactions       = ffm("api.endpoints.get.transactions", "List transactions, newest first, from the selected connection")
	APIEndpointGetTransaction        = ffm("api.endpoints.get.transaction", "Get a transaction by hash")
	APIEndpointGetAccount            = ffm("api.endpoints.get.account", "Get an account")
	APIEndpointGetSearch             = ffm("api.endpoints.get.search", "Resolve a search query to a ledger, a transaction or an account")
	APIEndpointGetLiveness           = ffm("api.endpoints.get.liveness", "Get the liveness status of the explorer")

	APIParamConnectionName = ffm("api.params.connectionName", "Connection name")
	APIParamLedgerSequence = ffm("api.params.sequence", "Ledger sequence")
	APIParamTxHash         = ffm("api.params.transactionHash", "Transaction hash")
	APIParamAccountID      = ffm("api.params.accountId", "Account ID (public key)")
	APIParamSearchQuery    = ffm("api.params.query", "A ledger sequence, transaction hash or account ID")
	APIParamLimit          = ffm("api.params.limit", "Maximum number of entries to return")
	APIParamCursor         = ffm("api.params.cursor", "Paging token to return entries before (for pagination)")
	APIParamAccountFilter  = ffm("api.params.account", "Only return transactions for this account")
)
