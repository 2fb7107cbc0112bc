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
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/stretchr/testify/assert"
)

const sampleLedgers = `{
	"_links": {"self": {"href": "https://horizon.example.com/ledgers?order=desc"}},
	"_embedded": {
		"records": [
			{
				"id": "e1ae2d6b6bc5d7ab5e1e0ab3ef0b4f7bb4e0f8d2d1c1e6a0c4d3b2a19f8e7d6c",
				"paging_token": "21474836480",
				"hash": "e1ae2d6b6bc5d7ab5e1e0ab3ef0b4f7bb4e0f8d2d1c1e6a0c4d3b2a19f8e7d6c",
				"prev_hash": "0c2a6d4b0f9e8d7c6b5a49382716f5e4d3c2b1a09f8e7d6c5b4a392817060504",
				"sequence": 5,
				"successful_transaction_count": 2,
				"failed_transaction_count": 0,
				"operation_count": 3,
				"closed_at": "2019-04-08T01:02:03Z",
				"total_coins": "100000000000.0000000",
				"fee_pool": "0.0001500",
				"base_fee_in_stroops": 100,
				"base_reserve_in_stroops": 5000000,
				"max_tx_set_size": 50,
				"protocol_version": 10
			},
			{
				"id": "0c2a6d4b0f9e8d7c6b5a49382716f5e4d3c2b1a09f8e7d6c5b4a392817060504",
				"paging_token": "17179869184",
				"hash": "0c2a6d4b0f9e8d7c6b5a49382716f5e4d3c2b1a09f8e7d6c5b4a392817060504",
				"sequence": 4,
				"successful_transaction_count": 0,
				"operation_count": 0,
				"closed_at": "2019-04-08T01:01:58Z"
			}
		]
	}
}`

const sampleTransaction = `{
	"id": "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889",
	"paging_token": "21474840576",
	"successful": true,
	"hash": "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889",
	"ledger": 5,
	"created_at": "2019-04-08T01:02:03Z",
	"source_account": "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7",
	"source_account_sequence": "4294967297",
	"fee_charged": 100,
	"max_fee": "200",
	"operation_count": 1,
	"memo_type": "none",
	"signatures": ["sig1"]
}`

func newTestQueryClient(t *testing.T, handler http.HandlerFunc) (*horizonClient, *apitypes.Connection, func()) {
	kxconfig.Reset()
	config.Set(kxconfig.HorizonStreamRetryInitialDelay, "1ms")
	config.Set(kxconfig.HorizonStreamRetryMaxDelay, "10ms")
	server := httptest.NewServer(handler)
	qc, err := NewQueryClient(context.Background(), kxconfig.HorizonConfig)
	assert.NoError(t, err)
	conn := &apitypes.Connection{
		Name:              "test",
		NetworkPassphrase: "Kinesis UAT",
		HorizonURL:        server.URL + "/",
	}
	return qc.(*horizonClient), conn, server.Close
}

func TestNewQueryClientBadCacheSize(t *testing.T) {
	kxconfig.Reset()
	config.Set(kxconfig.HorizonCacheSize, 0)
	_, err := NewQueryClient(context.Background(), kxconfig.HorizonConfig)
	assert.Regexp(t, "KX10109", err)
}

func TestListLedgersOK(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ledgers", r.URL.Path)
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("cursor"))
		w.Header().Set("Content-Type", "application/hal+json")
		_, _ = w.Write([]byte(sampleLedgers))
	})
	defer done()

	ledgers, err := hc.ListLedgers(context.Background(), conn, 0, "")
	assert.NoError(t, err)
	assert.Len(t, ledgers, 2)
	assert.Equal(t, int64(5), ledgers[0].Sequence)
	assert.Equal(t, "21474836480", ledgers[0].Cursor())
	assert.Equal(t, int64(2), ledgers[0].SuccessfulTransactionCount)
	assert.Equal(t, int64(1554685323), ledgers[0].ClosedAt.Time().Unix())
	assert.Equal(t, int64(4), ledgers[1].Sequence)
	assert.Nil(t, ledgers[1].FailedTransactionCount)
}

func TestListLedgersLimitAndCursor(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "21474836480", r.URL.Query().Get("cursor"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"_embedded":{"records":[]}}`))
	})
	defer done()

	ledgers, err := hc.ListLedgers(context.Background(), conn, 25, "21474836480")
	assert.NoError(t, err)
	assert.Empty(t, ledgers)
}

func TestListLedgersHorizonProblem(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"type":"stale_history","title":"Historical DB Is Too Stale","status":503,"detail":"ingestion is behind"}`))
	})
	defer done()

	_, err := hc.ListLedgers(context.Background(), conn, 0, "")
	assert.Regexp(t, "KX10111.*503.*ingestion is behind", err)
}

func TestListLedgersHorizonErrorNoDetail(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`upstream gone`))
	})
	defer done()

	_, err := hc.ListLedgers(context.Background(), conn, 0, "")
	assert.Regexp(t, "KX10111.*502.*upstream gone", err)
}

func TestListLedgersRequestFailed(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {})
	done()

	_, err := hc.ListLedgers(context.Background(), conn, 0, "")
	assert.Regexp(t, "KX10110", err)
}

func TestListTransactionsOK(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "desc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fmt.Sprintf(`{"_embedded":{"records":[%s]}}`, sampleTransaction)))
	})
	defer done()

	txs, err := hc.ListTransactions(context.Background(), conn, "", 0, "")
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	assert.Equal(t, "21474840576", txs[0].Cursor())
	assert.Equal(t, int64(100), txs[0].FeeCharged.Int().Int64())
	assert.Equal(t, int64(200), txs[0].MaxFee.Int().Int64())
	assert.True(t, *txs[0].Successful)
}

func TestListTransactionsForAccount(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/"+testAccountA+"/transactions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(fmt.Sprintf(`{"_embedded":{"records":[%s]}}`, sampleTransaction)))
	})
	defer done()

	txs, err := hc.ListTransactions(context.Background(), conn, testAccountA, 5, "")
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestListTransactionsForAccountNotFound(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"type":"not_found","title":"Resource Missing","status":404}`))
	})
	defer done()

	_, err := hc.ListTransactions(context.Background(), conn, testAccountB, 5, "")
	assert.Regexp(t, "KX10114", err)
}

func TestGetLedgerCached(t *testing.T) {
	requests := 0
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/ledgers/5", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"abc","paging_token":"21474836480","hash":"abc","sequence":5,"closed_at":"2019-04-08T01:02:03Z"}`))
	})
	defer done()

	l, err := hc.GetLedger(context.Background(), conn, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), l.Sequence)

	l2, err := hc.GetLedger(context.Background(), conn, 5)
	assert.NoError(t, err)
	assert.Same(t, l, l2)
	assert.Equal(t, 1, requests)
}

func TestGetLedgerNotFound(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer done()

	_, err := hc.GetLedger(context.Background(), conn, 999999)
	assert.Regexp(t, "KX10112.*999999", err)
}

func TestGetLedgerEmptyBody(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	})
	defer done()

	_, err := hc.GetLedger(context.Background(), conn, 1)
	assert.Regexp(t, "KX10112", err)
}

func TestGetTransactionCached(t *testing.T) {
	requests := 0
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/transactions/3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleTransaction))
	})
	defer done()

	hash := "3389e9f0f1a65f19736cacf544c2e825313e8447f569233bb8db39aa607c8889"
	tx, err := hc.GetTransaction(context.Background(), conn, hash)
	assert.NoError(t, err)
	assert.Equal(t, hash, tx.Hash)
	assert.Equal(t, int64(5), tx.Ledger)

	_, err = hc.GetTransaction(context.Background(), conn, hash)
	assert.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestGetTransactionNotFound(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer done()

	_, err := hc.GetTransaction(context.Background(), conn, "abcd")
	assert.Regexp(t, "KX10113", err)
}

func TestLoadAccountOK(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/"+testAccountA, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "` + testAccountA + `",
			"account_id": "` + testAccountA + `",
			"sequence": "4294967298",
			"subentry_count": 0,
			"thresholds": {"low_threshold": 0, "med_threshold": 0, "high_threshold": 0},
			"balances": [{"balance": "9999.9999800", "asset_type": "native"}],
			"signers": [{"key": "` + testAccountA + `", "weight": 1, "type": "ed25519_public_key"}]
		}`))
	})
	defer done()

	account, err := hc.LoadAccount(context.Background(), conn, testAccountA)
	assert.NoError(t, err)
	assert.Equal(t, testAccountA, account.AccountID)
	assert.Equal(t, "9999.9999800", account.Balances[0].Balance)
	assert.Equal(t, "native", account.Balances[0].AssetType)
	assert.Equal(t, 1, account.Signers[0].Weight)
}

func TestLoadAccountInvalidKey(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Fail(t, "should not be called")
	})
	defer done()

	_, err := hc.LoadAccount(context.Background(), conn, "not-a-key")
	assert.Regexp(t, "KX10115", err)
	assert.False(t, hc.IsValidPublicKey("not-a-key"))
	assert.True(t, hc.IsValidPublicKey(testAccountA))
}

func TestLoadAccountNotFound(t *testing.T) {
	hc, conn, done := newTestQueryClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer done()

	_, err := hc.LoadAccount(context.Background(), conn, testAccountB)
	assert.Regexp(t, "KX10114", err)
}
