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

package kxconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// APIDefaultRequestTimeout is the default server-side request timeout for API calls
	APIDefaultRequestTimeout = ffc("api.defaultRequestTimeout")
	// APIMaxRequestTimeout is the maximum timeout a caller can request with a Request-Timeout header
	APIMaxRequestTimeout = ffc("api.maxRequestTimeout")
	// MetricsEnabled turns on the Prometheus metrics server
	MetricsEnabled = ffc("metrics.enabled")
	// MetricsPath is the path the metrics are served on
	MetricsPath = ffc("metrics.path")
	// DashboardFeedCapacity is the number of records kept per feed
	DashboardFeedCapacity = ffc("dashboard.feedCapacity")
	// DashboardEventQueueLength is the length of the queue into the dashboard controller loop
	DashboardEventQueueLength = ffc("dashboard.eventQueueLength")
	// HorizonCacheSize is the size of the LRU cache of immutable ledgers and transactions
	HorizonCacheSize = ffc("horizon.cacheSize")
	// HorizonPageLimit is the default page size for list requests
	HorizonPageLimit = ffc("horizon.pageLimit")
	// HorizonStreamRetryInitialDelay is the first delay before a dropped stream reconnects
	HorizonStreamRetryInitialDelay = ffc("horizon.stream.retry.initialDelay")
	// HorizonStreamRetryMaxDelay caps the reconnect delay
	HorizonStreamRetryMaxDelay = ffc("horizon.stream.retry.maxDelay")
	// HorizonStreamRetryFactor is the reconnect backoff factor
	HorizonStreamRetryFactor = ffc("horizon.stream.retry.factor")
	// ConnectionName is the name of the connection defined in configuration
	ConnectionName = ffc("connection.name")
	// ConnectionNetworkPassphrase is the network passphrase of the configured connection
	ConnectionNetworkPassphrase = ffc("connection.networkPassphrase")
	// ConnectionHorizonURL is the Horizon URL of the configured connection
	ConnectionHorizonURL = ffc("connection.horizonURL")
	// PersistenceType is the type of persistence for the connection registry
	PersistenceType = ffc("persistence.type")
	// PersistenceLevelDBPath is the directory for the LevelDB persistence
	PersistenceLevelDBPath = ffc("persistence.leveldb.path")
	// PersistenceLevelDBMaxHandles is the number of open file handles LevelDB keeps cached
	PersistenceLevelDBMaxHandles = ffc("persistence.leveldb.maxHandles")
	// PersistenceLevelDBSyncWrites whether to sync each write to disk
	PersistenceLevelDBSyncWrites = ffc("persistence.leveldb.syncWrites")
	// UILedgerTemplate is the Go template for a ledger row in the terminal dashboard
	UILedgerTemplate = ffc("ui.ledgerTemplate")
	// UITransactionTemplate is the Go template for a transaction row in the terminal dashboard
	UITransactionTemplate = ffc("ui.transactionTemplate")
)

var APIConfig config.Section

var CorsConfig config.Section

var MetricsConfig config.Section

var HorizonConfig config.Section

const (
	DefaultLedgerTemplate      = `{{ .Sequence }}  {{ .SuccessfulTransactionCount }} txs  {{ .OperationCount }} ops  {{ ago .ClosedAt }}`
	DefaultTransactionTemplate = `{{ trunc 12 .Hash }}  ledger {{ .Ledger }}  {{ .OperationCount }} ops  fee {{ kinesis .FeeCharged }}  {{ ago .CreatedAt }}`
)

func setDefaults() {
	viper.SetDefault(string(APIDefaultRequestTimeout), "30s")
	viper.SetDefault(string(APIMaxRequestTimeout), "10m")
	viper.SetDefault(string(MetricsEnabled), true)
	viper.SetDefault(string(MetricsPath), "/metrics")
	viper.SetDefault(string(DashboardFeedCapacity), 10)
	viper.SetDefault(string(DashboardEventQueueLength), 50)
	viper.SetDefault(string(HorizonCacheSize), 1000)
	viper.SetDefault(string(HorizonPageLimit), 10)
	viper.SetDefault(string(HorizonStreamRetryInitialDelay), "250ms")
	viper.SetDefault(string(HorizonStreamRetryMaxDelay), "30s")
	viper.SetDefault(string(HorizonStreamRetryFactor), 2.0)
	viper.SetDefault(string(ConnectionName), "default")
	viper.SetDefault(string(PersistenceType), "leveldb")
	viper.SetDefault(string(PersistenceLevelDBMaxHandles), 100)
	viper.SetDefault(string(PersistenceLevelDBSyncWrites), false)
	viper.SetDefault(string(UILedgerTemplate), DefaultLedgerTemplate)
	viper.SetDefault(string(UITransactionTemplate), DefaultTransactionTemplate)
}

func Reset() {
	config.RootConfigReset(setDefaults)

	APIConfig = config.RootSection("api")
	httpserver.InitHTTPConfig(APIConfig, 5108)

	CorsConfig = config.RootSection("cors")
	httpserver.InitCORSConfig(CorsConfig)

	MetricsConfig = config.RootSection("metrics")
	httpserver.InitHTTPConfig(MetricsConfig, 6108)

	HorizonConfig = config.RootSection("horizon")
	ffresty.InitConfig(HorizonConfig)
}
