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

// Record is implemented by everything that can be delivered on a feed. The paging token is the
// opaque position of the record in its collection, and is used to resume a stream after it.
type Record interface {
	Cursor() string
}

// Ledger is a closed ledger, as returned by Horizon
type Ledger struct {
	ID                         string          `ffstruct:"ledger" json:"id"`
	PagingToken                string          `ffstruct:"ledger" json:"paging_token"`
	Hash                       string          `ffstruct:"ledger" json:"hash"`
	PrevHash                   string          `ffstruct:"ledger" json:"prev_hash,omitempty"`
	Sequence                   int64           `ffstruct:"ledger" json:"sequence"`
	SuccessfulTransactionCount int64           `ffstruct:"ledger" json:"successful_transaction_count"`
	FailedTransactionCount     *int64          `ffstruct:"ledger" json:"failed_transaction_count,omitempty"`
	OperationCount             int64           `ffstruct:"ledger" json:"operation_count"`
	ClosedAt                   *fftypes.FFTime `ffstruct:"ledger" json:"closed_at"`
	TotalCoins                 string          `ffstruct:"ledger" json:"total_coins,omitempty"`
	FeePool                    string          `ffstruct:"ledger" json:"fee_pool,omitempty"`
	BaseFeeInStroops           int64           `ffstruct:"ledger" json:"base_fee_in_stroops,omitempty"`
	BaseReserveInStroops       int64           `ffstruct:"ledger" json:"base_reserve_in_stroops,omitempty"`
	MaxTxSetSize               int64           `ffstruct:"ledger" json:"max_tx_set_size,omitempty"`
	ProtocolVersion            int64           `ffstruct:"ledger" json:"protocol_version,omitempty"`
	HeaderXDR                  string          `ffstruct:"ledger" json:"header_xdr,omitempty"`
}

func (l *Ledger) Cursor() string {
	return l.PagingToken
}

// Transaction is a transaction applied in a ledger, as returned by Horizon
type Transaction struct {
	ID                    string            `ffstruct:"transaction" json:"id"`
	PagingToken           string            `ffstruct:"transaction" json:"paging_token"`
	Successful            *bool             `ffstruct:"transaction" json:"successful,omitempty"`
	Hash                  string            `ffstruct:"transaction" json:"hash"`
	Ledger                int64             `ffstruct:"transaction" json:"ledger"`
	CreatedAt             *fftypes.FFTime   `ffstruct:"transaction" json:"created_at"`
	SourceAccount         string            `ffstruct:"transaction" json:"source_account"`
	SourceAccountSequence string            `ffstruct:"transaction" json:"source_account_sequence,omitempty"`
	FeeCharged            *fftypes.FFBigInt `ffstruct:"transaction" json:"fee_charged,omitempty"`
	MaxFee                *fftypes.FFBigInt `ffstruct:"transaction" json:"max_fee,omitempty"`
	OperationCount        int64             `ffstruct:"transaction" json:"operation_count"`
	MemoType              string            `ffstruct:"transaction" json:"memo_type,omitempty"`
	Memo                  string            `ffstruct:"transaction" json:"memo,omitempty"`
	Signatures            []string          `ffstruct:"transaction" json:"signatures,omitempty"`
	EnvelopeXDR           string            `ffstruct:"transaction" json:"envelope_xdr,omitempty"`
	ResultXDR             string            `ffstruct:"transaction" json:"result_xdr,omitempty"`
	ResultMetaXDR         string            `ffstruct:"transaction" json:"result_meta_xdr,omitempty"`
	FeeMetaXDR            string            `ffstruct:"transaction" json:"fee_meta_xdr,omitempty"`
}

func (t *Transaction) Cursor() string {
	return t.PagingToken
}

// Balance is one asset balance held by an account. Amounts are decimal strings in whole units.
type Balance struct {
	Balance     string `ffstruct:"balance" json:"balance"`
	Limit       string `ffstruct:"balance" json:"limit,omitempty"`
	AssetType   string `ffstruct:"balance" json:"asset_type"`
	AssetCode   string `ffstruct:"balance" json:"asset_code,omitempty"`
	AssetIssuer string `ffstruct:"balance" json:"asset_issuer,omitempty"`
}

type AccountThresholds struct {
	LowThreshold  int `ffstruct:"thresholds" json:"low_threshold"`
	MedThreshold  int `ffstruct:"thresholds" json:"med_threshold"`
	HighThreshold int `ffstruct:"thresholds" json:"high_threshold"`
}

type AccountSigner struct {
	Key    string `ffstruct:"signer" json:"key"`
	Weight int    `ffstruct:"signer" json:"weight"`
	Type   string `ffstruct:"signer" json:"type,omitempty"`
}

// Account is the current state of an account, as returned by Horizon
type Account struct {
	ID            string             `ffstruct:"account" json:"id"`
	AccountID     string             `ffstruct:"account" json:"account_id"`
	PagingToken   string             `ffstruct:"account" json:"paging_token,omitempty"`
	Sequence      string             `ffstruct:"account" json:"sequence"`
	SubentryCount int64              `ffstruct:"account" json:"subentry_count"`
	Thresholds    *AccountThresholds `ffstruct:"account" json:"thresholds,omitempty"`
	Balances      []*Balance         `ffstruct:"account" json:"balances"`
	Signers       []*AccountSigner   `ffstruct:"account" json:"signers,omitempty"`
	Data          map[string]string  `ffstruct:"account" json:"data,omitempty"`
}
