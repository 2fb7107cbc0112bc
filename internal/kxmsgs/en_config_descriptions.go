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

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigAPIDefaultRequestTimeout = ffc("config.api.defaultRequestTimeout", "Default server-side request timeout for API calls", i18n.TimeDurationType)
	ConfigAPIMaxRequestTimeout     = ffc("config.api.maxRequestTimeout", "Maximum server-side request timeout a caller can request with a Request-Timeout header", i18n.TimeDurationType)

	ConfigMetricsEnabled = ffc("config.metrics.enabled", "Enables the metrics server", i18n.BooleanType)
	ConfigMetricsPath    = ffc("config.metrics.path", "The path from which to serve the Prometheus metrics", i18n.StringType)

	ConfigDashboardFeedCapacity     = ffc("config.dashboard.feedCapacity", "The number of most recent ledgers and transactions kept in each dashboard feed", i18n.IntType)
	ConfigDashboardEventQueueLength = ffc("config.dashboard.eventQueueLength", "Internal queue length for events delivered to the dashboard controller", i18n.IntType)

	ConfigHorizonCacheSize          = ffc("config.horizon.cacheSize", "The maximum number of ledgers and transactions to keep in the lookup cache", i18n.IntType)
	ConfigHorizonPageLimit          = ffc("config.horizon.pageLimit", "Default number of records requested per page from Horizon", i18n.IntType)
	ConfigHorizonStreamRetryInitial = ffc("config.horizon.stream.retry.initialDelay", "Initial delay before reconnecting a dropped Horizon stream", i18n.TimeDurationType)
	ConfigHorizonStreamRetryMax     = ffc("config.horizon.stream.retry.maxDelay", "Maximum delay between Horizon stream reconnect attempts", i18n.TimeDurationType)
	ConfigHorizonStreamRetryFactor  = ffc("config.horizon.stream.retry.factor", "Factor to increase the delay by, between each stream reconnect attempt", i18n.FloatType)

	ConfigConnectionName              = ffc("config.connection.name", "Name of the connection defined in configuration", i18n.StringType)
	ConfigConnectionNetworkPassphrase = ffc("config.connection.networkPassphrase", "Network passphrase of the connection defined in configuration", i18n.StringType)
	ConfigConnectionHorizonURL        = ffc("config.connection.horizonURL", "Horizon URL of the connection defined in configuration", i18n.StringType)

	ConfigPersistenceType              = ffc("config.persistence.type", "The type of persistence to use for the connection registry", "Enum: leveldb")
	ConfigPersistenceLevelDBPath       = ffc("config.persistence.leveldb.path", "The path for the LevelDB persistence directory", i18n.StringType)
	ConfigPersistenceLevelDBMaxHandles = ffc("config.persistence.leveldb.maxHandles", "The maximum number of cached file handles LevelDB should keep open", i18n.IntType)
	ConfigPersistenceLevelDBSyncWrites = ffc("config.persistence.leveldb.syncWrites", "Whether to synchronously perform writes to the storage", i18n.BooleanType)

	ConfigUILedgerTemplate      = ffc("config.ui.ledgerTemplate", "Go template, with sprig functions, used to render a ledger row in the terminal dashboard", i18n.GoTemplateType)
	ConfigUITransactionTemplate = ffc("config.ui.transactionTemplate", "Go template, with sprig functions, used to render a transaction row in the terminal dashboard", i18n.GoTemplateType)
)
