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
	"regexp"
	"strconv"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

var transactionHashRegex = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
var ledgerSequenceRegex = regexp.MustCompile(`^[0-9]+$`)

func (m *manager) selectedConnection(ctx context.Context) (*apitypes.Connection, error) {
	conn, err := m.registry.Selected(ctx)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, i18n.NewError(ctx, kxmsgs.MsgNoConnectionSelected)
	}
	return conn, nil
}

func parseLimit(ctx context.Context, limitStr string) (int, error) {
	if limitStr == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return 0, i18n.NewError(ctx, kxmsgs.MsgInvalidLimit, limitStr)
	}
	return limit, nil
}

func parseLedgerSequence(ctx context.Context, sequenceStr string) (int64, error) {
	if !ledgerSequenceRegex.MatchString(sequenceStr) {
		return 0, i18n.NewError(ctx, kxmsgs.MsgInvalidLedgerSequence, sequenceStr)
	}
	sequence, err := strconv.ParseInt(sequenceStr, 10, 64)
	if err != nil || sequence <= 0 {
		return 0, i18n.NewError(ctx, kxmsgs.MsgInvalidLedgerSequence, sequenceStr)
	}
	return sequence, nil
}

func (m *manager) getLedgers(ctx context.Context, limitStr, cursor string) ([]*apitypes.Ledger, error) {
	limit, err := parseLimit(ctx, limitStr)
	if err != nil {
		return nil, err
	}
	conn, err := m.selectedConnection(ctx)
	if err != nil {
		return nil, err
	}
	return m.client.ListLedgers(ctx, conn, limit, cursor)
}

func (m *manager) getLedger(ctx context.Context, sequenceStr string) (*apitypes.Ledger, error) {
	sequence, err := parseLedgerSequence(ctx, sequenceStr)
	if err != nil {
		return nil, err
	}
	conn, err := m.selectedConnection(ctx)
	if err != nil {
		return nil, err
	}
	return m.client.GetLedger(ctx, conn, sequence)
}

func (m *manager) getTransactions(ctx context.Context, accountID, limitStr, cursor string) ([]*apitypes.Transaction, error) {
	limit, err := parseLimit(ctx, limitStr)
	if err != nil {
		return nil, err
	}
	if accountID != "" && !m.client.IsValidPublicKey(accountID) {
		return nil, i18n.NewError(ctx, kxmsgs.MsgInvalidPublicKey, accountID)
	}
	conn, err := m.selectedConnection(ctx)
	if err != nil {
		return nil, err
	}
	return m.client.ListTransactions(ctx, conn, accountID, limit, cursor)
}

func (m *manager) getTransaction(ctx context.Context, hash string) (*apitypes.Transaction, error) {
	if !transactionHashRegex.MatchString(hash) {
		return nil, i18n.NewError(ctx, kxmsgs.MsgInvalidTransactionHash, hash)
	}
	conn, err := m.selectedConnection(ctx)
	if err != nil {
		return nil, err
	}
	return m.client.GetTransaction(ctx, conn, strings.ToLower(hash))
}

func (m *manager) getAccount(ctx context.Context, accountID string) (*apitypes.Account, error) {
	conn, err := m.selectedConnection(ctx)
	if err != nil {
		return nil, err
	}
	return m.client.LoadAccount(ctx, conn, accountID)
}

// search resolves a query the way the search bar does: digits are a ledger sequence, a valid
// public key is an account, and 64 hex characters are a transaction hash
func (m *manager) search(ctx context.Context, query string) (*apitypes.SearchResult, error) {
	query = strings.TrimSpace(query)
	switch {
	case ledgerSequenceRegex.MatchString(query):
		ledger, err := m.getLedger(ctx, query)
		if err != nil {
			return nil, err
		}
		return &apitypes.SearchResult{Type: apitypes.SearchResultTypeLedger, Ledger: ledger}, nil
	case m.client.IsValidPublicKey(query):
		account, err := m.getAccount(ctx, query)
		if err != nil {
			return nil, err
		}
		return &apitypes.SearchResult{Type: apitypes.SearchResultTypeAccount, Account: account}, nil
	case transactionHashRegex.MatchString(query):
		tx, err := m.getTransaction(ctx, query)
		if err != nil {
			return nil, err
		}
		return &apitypes.SearchResult{Type: apitypes.SearchResultTypeTransaction, Transaction: tx}, nil
	default:
		return nil, i18n.NewError(ctx, kxmsgs.MsgSearchQueryInvalid, query)
	}
}

func (m *manager) getLiveStatus(_ context.Context) (*apitypes.LiveStatus, error) {
	return &apitypes.LiveStatus{
		Up:        true,
		Dashboard: m.dashboard.Snapshot().State,
		Time:      fftypes.Now(),
	}, nil
}
