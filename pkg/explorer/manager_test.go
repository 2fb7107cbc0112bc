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

package explorer

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	ws "github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/metrics"
	"github.com/kinesis-explorer/kexplorer/mocks/horizonmocks"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAccount = "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7"
const testTxHash = "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889"

func initTestConfig(t *testing.T, withConnection, withMetrics bool) {
	InitConfig()
	metrics.Clear()
	config.Set(kxconfig.PersistenceLevelDBPath, t.TempDir())
	config.Set(kxconfig.MetricsEnabled, withMetrics)
	if withConnection {
		config.Set(kxconfig.ConnectionName, "mainnet")
		config.Set(kxconfig.ConnectionNetworkPassphrase, "Kinesis Live")
		config.Set(kxconfig.ConnectionHorizonURL, "https://horizon.example.com")
	}
	kxconfig.APIConfig.Set(httpserver.HTTPConfPort, 0)
	kxconfig.APIConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")
	kxconfig.MetricsConfig.Set(httpserver.HTTPConfPort, 0)
	kxconfig.MetricsConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")
}

func newTestManager(t *testing.T, withConnection, withMetrics bool) (string, *manager, *horizonmocks.QueryClient, func()) {
	initTestConfig(t, withConnection, withMetrics)
	qc := horizonmocks.NewQueryClient(t)
	mm, err := NewManager(context.Background(), qc)
	assert.NoError(t, err)
	m := mm.(*manager)
	return fmt.Sprintf("http://%s", m.apiServer.Addr()), m, qc, m.Close
}

func conn(name string) interface{} {
	return mock.MatchedBy(func(c *apitypes.Connection) bool { return c.Name == name })
}

// expectDashboard lets the dashboard load against any connection, without live streams
func expectDashboard(qc *horizonmocks.QueryClient) {
	qc.On("ListLedgers", mock.Anything, mock.Anything, 10, "").Return([]*apitypes.Ledger{{Sequence: 5, PagingToken: "5"}}, nil).Maybe()
	qc.On("ListTransactions", mock.Anything, mock.Anything, "", 10, "").Return([]*apitypes.Transaction{}, nil).Maybe()
	qc.On("OpenLedgerStream", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("no streams")).Maybe()
	qc.On("OpenTransactionStream", mock.Anything, mock.Anything, mock.Anything).Return(nil, fmt.Errorf("no streams")).Maybe()
}

func TestNewManagerBadHttpConfig(t *testing.T) {
	initTestConfig(t, false, false)
	kxconfig.APIConfig.Set(httpserver.HTTPConfAddress, "::::")
	_, err := NewManager(context.Background(), horizonmocks.NewQueryClient(t))
	assert.Regexp(t, "FF00151", err)
}

func TestNewManagerBadMetricsConfig(t *testing.T) {
	initTestConfig(t, false, true)
	kxconfig.MetricsConfig.Set(httpserver.HTTPConfAddress, "::::")
	_, err := NewManager(context.Background(), horizonmocks.NewQueryClient(t))
	assert.Regexp(t, "FF00151", err)
}

func TestNewManagerBadPersistenceConfig(t *testing.T) {
	initTestConfig(t, false, false)
	config.Set(kxconfig.PersistenceType, "wrong")
	_, err := NewManager(context.Background(), horizonmocks.NewQueryClient(t))
	assert.Regexp(t, "KX10101", err)
}

func TestNewManagerBadConfiguredConnection(t *testing.T) {
	initTestConfig(t, false, false)
	config.Set(kxconfig.ConnectionHorizonURL, "https://horizon.example.com")
	_, err := NewManager(context.Background(), horizonmocks.NewQueryClient(t))
	assert.Regexp(t, "KX10117", err)
}

func TestCloseBeforeStart(t *testing.T) {
	_, m, _, done := newTestManager(t, false, false)
	done()
	assert.False(t, m.started)
}

func TestStartNoConnectionSelected(t *testing.T) {
	url, m, _, done := newTestManager(t, false, false)
	defer done()
	err := m.Start()
	assert.NoError(t, err)

	var snapshot apitypes.DashboardSnapshot
	res, err := resty.New().R().SetResult(&snapshot).Get(url + "/dashboard")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.DashboardStateIdle, snapshot.State)

	var errRes fftypes.RESTError
	res, err = resty.New().R().SetError(&errRes).Get(url + "/connections/selected")
	assert.NoError(t, err)
	assert.Equal(t, 409, res.StatusCode())
	assert.Regexp(t, "KX10132", errRes.Error)

	res, err = resty.New().R().SetError(&errRes).Get(url + "/ledgers")
	assert.NoError(t, err)
	assert.Equal(t, 409, res.StatusCode())

	var live apitypes.LiveStatus
	res, err = resty.New().R().SetResult(&live).Get(url + "/livez")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.True(t, live.Up)
	assert.Equal(t, apitypes.DashboardStateIdle, live.Dashboard)
}

func TestStartSelectedFails(t *testing.T) {
	_, m, _, done := newTestManager(t, false, false)
	defer done()
	m.persistence.Close(context.Background())
	err := m.Start()
	assert.Error(t, err)
}

func TestConnectionsLifecycle(t *testing.T) {
	url, m, qc, done := newTestManager(t, true, false)
	defer done()
	expectDashboard(qc)
	err := m.Start()
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		s := m.dashboard.Snapshot()
		return s.State == apitypes.DashboardStateLive && s.Connection.Name == "mainnet"
	}, 5*time.Second, 5*time.Millisecond)

	var stored apitypes.Connection
	res, err := resty.New().R().
		SetBody(&apitypes.Connection{Name: "testnet", NetworkPassphrase: "Kinesis UAT", HorizonURL: "https://uat.example.com"}).
		SetResult(&stored).
		Post(url + "/connections")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.NotNil(t, stored.Created)

	var errRes fftypes.RESTError
	res, err = resty.New().R().
		SetBody(&apitypes.Connection{Name: "broken"}).
		SetError(&errRes).
		Post(url + "/connections")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "KX10117", errRes.Error)

	var conns []*apitypes.Connection
	res, err = resty.New().R().SetResult(&conns).Get(url + "/connections")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Len(t, conns, 2)

	var selected apitypes.Connection
	res, err = resty.New().R().
		SetBody(&apitypes.SelectConnectionRequest{Name: "testnet"}).
		SetResult(&selected).
		Put(url + "/connections/selected")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, "testnet", selected.Name)

	assert.Eventually(t, func() bool {
		s := m.dashboard.Snapshot()
		return s.State == apitypes.DashboardStateLive && s.Connection.Name == "testnet"
	}, 5*time.Second, 5*time.Millisecond)

	res, err = resty.New().R().SetError(&errRes).Delete(url + "/connections/testnet")
	assert.NoError(t, err)
	assert.Equal(t, 409, res.StatusCode())
	assert.Regexp(t, "KX10131", errRes.Error)

	res, err = resty.New().R().Delete(url + "/connections/mainnet")
	assert.NoError(t, err)
	assert.Equal(t, 204, res.StatusCode())

	res, err = resty.New().R().SetError(&errRes).
		SetBody(&apitypes.SelectConnectionRequest{Name: "mainnet"}).
		Put(url + "/connections/selected")
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
	assert.Regexp(t, "KX10130", errRes.Error)

	res, err = resty.New().R().SetResult(&selected).Get(url + "/connections/selected")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, "testnet", selected.Name)
}

func TestLedgerAndTransactionQueries(t *testing.T) {
	url, m, qc, done := newTestManager(t, true, false)
	defer done()
	expectDashboard(qc)
	err := m.Start()
	assert.NoError(t, err)

	qc.On("ListLedgers", mock.Anything, conn("mainnet"), 5, "abc").Return([]*apitypes.Ledger{{Sequence: 3}}, nil)
	qc.On("GetLedger", mock.Anything, conn("mainnet"), int64(3)).Return(&apitypes.Ledger{Sequence: 3}, nil)
	qc.On("IsValidPublicKey", testAccount).Return(true)
	qc.On("IsValidPublicKey", "bad").Return(false)
	qc.On("ListTransactions", mock.Anything, conn("mainnet"), testAccount, 0, "").Return([]*apitypes.Transaction{{Hash: testTxHash}}, nil)
	qc.On("GetTransaction", mock.Anything, conn("mainnet"), testTxHash).Return(&apitypes.Transaction{Hash: testTxHash}, nil)
	qc.On("LoadAccount", mock.Anything, conn("mainnet"), testAccount).Return(&apitypes.Account{AccountID: testAccount}, nil)

	var ledgers []*apitypes.Ledger
	res, err := resty.New().R().SetResult(&ledgers).Get(url + "/ledgers?limit=5&cursor=abc")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, int64(3), ledgers[0].Sequence)

	var ledger apitypes.Ledger
	res, err = resty.New().R().SetResult(&ledger).Get(url + "/ledgers/3")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, int64(3), ledger.Sequence)

	var txns []*apitypes.Transaction
	res, err = resty.New().R().SetResult(&txns).Get(url + "/transactions?account=" + testAccount)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, testTxHash, txns[0].Hash)

	var tx apitypes.Transaction
	res, err = resty.New().R().SetResult(&tx).Get(url + "/transactions/" + strings.ToUpper(testTxHash))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, testTxHash, tx.Hash)

	var account apitypes.Account
	res, err = resty.New().R().SetResult(&account).Get(url + "/accounts/" + testAccount)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, testAccount, account.AccountID)

	for path, code := range map[string]string{
		"/ledgers?limit=abc":        "KX10141",
		"/ledgers?limit=-1":         "KX10141",
		"/ledgers/abc":              "KX10116",
		"/ledgers/0":                "KX10116",
		"/transactions/xyz":         "KX10122",
		"/transactions?account=bad": "KX10115",
	} {
		var errRes fftypes.RESTError
		res, err = resty.New().R().SetError(&errRes).Get(url + path)
		assert.NoError(t, err)
		assert.Equal(t, 400, res.StatusCode(), path)
		assert.Regexp(t, code, errRes.Error, path)
	}
}

func TestSearch(t *testing.T) {
	url, m, qc, done := newTestManager(t, true, false)
	defer done()
	expectDashboard(qc)
	err := m.Start()
	assert.NoError(t, err)

	qc.On("GetLedger", mock.Anything, conn("mainnet"), int64(12345)).Return(&apitypes.Ledger{Sequence: 12345}, nil)
	qc.On("GetLedger", mock.Anything, conn("mainnet"), int64(99)).Return(nil, fmt.Errorf("pop"))
	qc.On("IsValidPublicKey", testAccount).Return(true)
	qc.On("IsValidPublicKey", mock.Anything).Return(false)
	qc.On("LoadAccount", mock.Anything, conn("mainnet"), testAccount).Return(&apitypes.Account{AccountID: testAccount}, nil)
	qc.On("GetTransaction", mock.Anything, conn("mainnet"), testTxHash).Return(&apitypes.Transaction{Hash: testTxHash}, nil)

	var result apitypes.SearchResult
	res, err := resty.New().R().SetResult(&result).Get(url + "/search/12345")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.SearchResultTypeLedger, result.Type)
	assert.Equal(t, int64(12345), result.Ledger.Sequence)

	result = apitypes.SearchResult{}
	res, err = resty.New().R().SetResult(&result).Get(url + "/search/" + testAccount)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.SearchResultTypeAccount, result.Type)
	assert.Equal(t, testAccount, result.Account.AccountID)

	result = apitypes.SearchResult{}
	res, err = resty.New().R().SetResult(&result).Get(url + "/search/" + testTxHash)
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, apitypes.SearchResultTypeTransaction, result.Type)
	assert.Equal(t, testTxHash, result.Transaction.Hash)

	var errRes fftypes.RESTError
	res, err = resty.New().R().SetError(&errRes).Get(url + "/search/nothing-here")
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode())
	assert.Regexp(t, "KX10140", errRes.Error)

	res, err = resty.New().R().SetError(&errRes).Get(url + "/search/99")
	assert.NoError(t, err)
	assert.Equal(t, 500, res.StatusCode())
	assert.Regexp(t, "pop", errRes.Error)
}

func TestSearchNoConnection(t *testing.T) {
	_, m, qc, done := newTestManager(t, false, false)
	defer done()
	qc.On("IsValidPublicKey", mock.Anything).Return(true)

	ctx := context.Background()
	for _, q := range []string{"12345", testAccount, testTxHash} {
		_, err := m.search(ctx, q)
		assert.Regexp(t, "KX10132", err)
	}
	_, err := m.getTransactions(ctx, "", "", "")
	assert.Regexp(t, "KX10132", err)
}

func TestSwaggerEndpoints(t *testing.T) {
	url, m, _, done := newTestManager(t, false, false)
	defer done()
	err := m.Start()
	assert.NoError(t, err)

	res, err := resty.New().R().SetDoNotParseResponse(true).Get(url + "/api/spec.json")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	res, err = resty.New().R().SetDoNotParseResponse(true).Get(url + "/api/spec.yaml")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())

	res, err = resty.New().R().SetDoNotParseResponse(true).Get(url + "/api")
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
}

func TestNotFound(t *testing.T) {
	url, m, _, done := newTestManager(t, false, false)
	defer done()
	err := m.Start()
	assert.NoError(t, err)

	var errRes fftypes.RESTError
	res, err := resty.New().R().SetError(&errRes).Get(url + "/not/a/path")
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode())
	assert.NotEmpty(t, errRes.Error)
}

func TestWebSocketDashboard(t *testing.T) {
	url, m, qc, done := newTestManager(t, true, false)
	defer done()
	expectDashboard(qc)
	err := m.Start()
	assert.NoError(t, err)

	client, _, err := ws.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http")+"/ws", nil)
	assert.NoError(t, err)
	defer client.Close()

	err = client.WriteJSON(&apitypes.WSCommand{Type: apitypes.WSCommandListen})
	assert.NoError(t, err)
	for {
		var msg apitypes.WSMessage
		_ = client.SetReadDeadline(time.Now().Add(5 * time.Second))
		err = client.ReadJSON(&msg)
		assert.NoError(t, err)
		if err != nil || (msg.Snapshot.State == apitypes.DashboardStateLive && len(msg.Snapshot.Ledgers) == 1) {
			break
		}
	}

	err = client.WriteJSON(&apitypes.WSCommand{Type: apitypes.WSCommandSelect, Connection: "unknown"})
	assert.NoError(t, err)
	for {
		var msg apitypes.WSMessage
		_ = client.SetReadDeadline(time.Now().Add(5 * time.Second))
		err = client.ReadJSON(&msg)
		assert.NoError(t, err)
		if err != nil || msg.Type == apitypes.WSMessageError {
			assert.Regexp(t, "KX10130", msg.Error)
			break
		}
	}
}

func TestMetricsServer(t *testing.T) {
	_, m, _, done := newTestManager(t, false, true)
	defer done()
	err := m.Start()
	assert.NoError(t, err)

	res, err := resty.New().R().Get(fmt.Sprintf("http://%s/metrics", m.metricsServer.Addr()))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Contains(t, res.String(), "kexplorer_")
}
