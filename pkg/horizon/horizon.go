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
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/retry"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

// CursorNow asks a stream to start from the next record produced, rather than from a paging token
const CursorNow = "now"

// QueryClient is the read-only view of a network, through its Horizon endpoint.
// Every call takes the connection to use, so one client serves any number of networks.
type QueryClient interface {
	ListLedgers(ctx context.Context, conn *apitypes.Connection, limit int, cursor string) ([]*apitypes.Ledger, error)
	ListTransactions(ctx context.Context, conn *apitypes.Connection, accountID string, limit int, cursor string) ([]*apitypes.Transaction, error)
	OpenLedgerStream(ctx context.Context, conn *apitypes.Connection, cursor string) (RecordStream[*apitypes.Ledger], error)
	OpenTransactionStream(ctx context.Context, conn *apitypes.Connection, cursor string) (RecordStream[*apitypes.Transaction], error)
	GetLedger(ctx context.Context, conn *apitypes.Connection, sequence int64) (*apitypes.Ledger, error)
	GetTransaction(ctx context.Context, conn *apitypes.Connection, hash string) (*apitypes.Transaction, error)
	LoadAccount(ctx context.Context, conn *apitypes.Connection, accountID string) (*apitypes.Account, error)
	IsValidPublicKey(address string) bool
}

type horizonClient struct {
	client       *resty.Client
	streamClient *resty.Client
	pageLimit    int
	streamRetry  *retry.Retry
	ledgerCache  *lru.Cache[string, *apitypes.Ledger]
	txCache      *lru.Cache[string, *apitypes.Transaction]
}

type collection[T any] struct {
	Embedded struct {
		Records []T `json:"records"`
	} `json:"_embedded"`
}

// problem is the RFC 7807 error body Horizon returns
type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

func NewQueryClient(ctx context.Context, conf config.Section) (QueryClient, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	cacheSize := config.GetInt(kxconfig.HorizonCacheSize)
	ledgerCache, err := lru.New[string, *apitypes.Ledger](cacheSize)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, kxmsgs.MsgCacheInitFailed, "ledger")
	}
	txCache, err := lru.New[string, *apitypes.Transaction](cacheSize)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, kxmsgs.MsgCacheInitFailed, "transaction")
	}
	// Streams are long lived, so share the transport (TLS, proxy) and headers but not the request timeout
	streamClient := resty.NewWithClient(&http.Client{Transport: client.GetClient().Transport})
	for k := range client.Header {
		streamClient.SetHeader(k, client.Header.Get(k))
	}
	return &horizonClient{
		client:       client,
		streamClient: streamClient,
		pageLimit:    config.GetInt(kxconfig.HorizonPageLimit),
		streamRetry: &retry.Retry{
			InitialDelay: config.GetDuration(kxconfig.HorizonStreamRetryInitialDelay),
			MaximumDelay: config.GetDuration(kxconfig.HorizonStreamRetryMaxDelay),
			Factor:       config.GetFloat64(kxconfig.HorizonStreamRetryFactor),
		},
		ledgerCache: ledgerCache,
		txCache:     txCache,
	}, nil
}

func endpoint(conn *apitypes.Connection, path string) string {
	return strings.TrimSuffix(conn.HorizonURL, "/") + path
}

func (hc *horizonClient) get(ctx context.Context, conn *apitypes.Connection, path string, query url.Values, result interface{}, notFound error) error {
	u := endpoint(conn, path)
	var errorInfo problem
	res, err := hc.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParamsFromValues(query).
		SetResult(result).
		SetError(&errorInfo).
		Get(u)
	if err != nil {
		return i18n.WrapError(ctx, err, kxmsgs.MsgHorizonRequestFailed, u)
	}
	if res.IsError() {
		if res.StatusCode() == http.StatusNotFound && notFound != nil {
			return notFound
		}
		detail := errorInfo.Detail
		if detail == "" {
			detail = errorInfo.Title
		}
		if detail == "" {
			detail = string(res.Body())
		}
		return i18n.NewError(ctx, kxmsgs.MsgHorizonError, res.StatusCode(), u, detail)
	}
	return nil
}

func (hc *horizonClient) pageQuery(limit int, cursor string) url.Values {
	if limit <= 0 {
		limit = hc.pageLimit
	}
	query := url.Values{
		"order": []string{"desc"},
		"limit": []string{strconv.Itoa(limit)},
	}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	return query
}

func (hc *horizonClient) ListLedgers(ctx context.Context, conn *apitypes.Connection, limit int, cursor string) ([]*apitypes.Ledger, error) {
	var page collection[*apitypes.Ledger]
	if err := hc.get(ctx, conn, "/ledgers", hc.pageQuery(limit, cursor), &page, nil); err != nil {
		return nil, err
	}
	log.L(ctx).Debugf("Listed %d ledgers from %s cursor=%s", len(page.Embedded.Records), conn.HorizonURL, cursor)
	return page.Embedded.Records, nil
}

func (hc *horizonClient) ListTransactions(ctx context.Context, conn *apitypes.Connection, accountID string, limit int, cursor string) ([]*apitypes.Transaction, error) {
	path := "/transactions"
	var notFound error
	if accountID != "" {
		path = fmt.Sprintf("/accounts/%s/transactions", url.PathEscape(accountID))
		notFound = i18n.NewError(ctx, kxmsgs.MsgAccountNotFound, accountID)
	}
	var page collection[*apitypes.Transaction]
	if err := hc.get(ctx, conn, path, hc.pageQuery(limit, cursor), &page, notFound); err != nil {
		return nil, err
	}
	log.L(ctx).Debugf("Listed %d transactions from %s account=%s cursor=%s", len(page.Embedded.Records), conn.HorizonURL, accountID, cursor)
	return page.Embedded.Records, nil
}

// Closed ledgers and applied transactions never change, so lookups are cached per endpoint
func cacheKey(conn *apitypes.Connection, id string) string {
	return strings.TrimSuffix(conn.HorizonURL, "/") + "|" + id
}

func (hc *horizonClient) GetLedger(ctx context.Context, conn *apitypes.Connection, sequence int64) (*apitypes.Ledger, error) {
	seq := strconv.FormatInt(sequence, 10)
	key := cacheKey(conn, seq)
	if l, ok := hc.ledgerCache.Get(key); ok {
		return l, nil
	}
	var ledger *apitypes.Ledger
	if err := hc.get(ctx, conn, "/ledgers/"+seq, nil, &ledger, i18n.NewError(ctx, kxmsgs.MsgLedgerNotFound, seq)); err != nil {
		return nil, err
	}
	if ledger == nil {
		return nil, i18n.NewError(ctx, kxmsgs.MsgLedgerNotFound, seq)
	}
	hc.ledgerCache.Add(key, ledger)
	return ledger, nil
}

func (hc *horizonClient) GetTransaction(ctx context.Context, conn *apitypes.Connection, hash string) (*apitypes.Transaction, error) {
	key := cacheKey(conn, hash)
	if tx, ok := hc.txCache.Get(key); ok {
		return tx, nil
	}
	var tx *apitypes.Transaction
	if err := hc.get(ctx, conn, "/transactions/"+url.PathEscape(hash), nil, &tx, i18n.NewError(ctx, kxmsgs.MsgTransactionNotFound, hash)); err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, i18n.NewError(ctx, kxmsgs.MsgTransactionNotFound, hash)
	}
	hc.txCache.Add(key, tx)
	return tx, nil
}

func (hc *horizonClient) LoadAccount(ctx context.Context, conn *apitypes.Connection, accountID string) (*apitypes.Account, error) {
	if !IsValidPublicKey(accountID) {
		return nil, i18n.NewError(ctx, kxmsgs.MsgInvalidPublicKey, accountID)
	}
	var account *apitypes.Account
	if err := hc.get(ctx, conn, "/accounts/"+accountID, nil, &account, i18n.NewError(ctx, kxmsgs.MsgAccountNotFound, accountID)); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, i18n.NewError(ctx, kxmsgs.MsgAccountNotFound, accountID)
	}
	return account, nil
}

func (hc *horizonClient) IsValidPublicKey(address string) bool {
	return IsValidPublicKey(address)
}
