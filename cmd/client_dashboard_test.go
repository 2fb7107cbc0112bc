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

package cmd

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/kinesis-explorer/kexplorer/mocks/apiclientmocks"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestClientDashboard(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, nil })
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"dashboard"})
	mc.On("GetDashboard", mock.Anything).Return(&apitypes.DashboardSnapshot{
		Connection: &apitypes.Connection{Name: "testnet", HorizonURL: "http://horizon"},
		State:      apitypes.DashboardStateLive,
		Ledgers: []*apitypes.Ledger{
			{Sequence: 1234567, SuccessfulTransactionCount: 2, OperationCount: 4, ClosedAt: fftypes.Now()},
		},
		Transactions: []*apitypes.Transaction{
			{Hash: "b9d0b2292c4e09e8eb22d036171491e87b8d2086bf8b265874c8d182cb9c9020", Ledger: 1234567, FeeCharged: fftypes.NewFFBigInt(200)},
			{Hash: "a9d0b2292c4e09e8eb22d036171491e87b8d2086bf8b265874c8d182cb9c9020", Ledger: 1234567},
		},
		Error: "KX10161: stream failed",
	}, nil)
	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "testnet (http://horizon)")
	assert.Contains(t, out.String(), "1,234,567")
	assert.Contains(t, out.String(), "0.00002")
	assert.Contains(t, out.String(), "KX10161")
}

func TestClientDashboardNoConnection(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, nil })
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"dashboard"})
	mc.On("GetDashboard", mock.Anything).Return(&apitypes.DashboardSnapshot{State: apitypes.DashboardStateIdle}, nil)
	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "none selected")
}

func TestClientDashboardError(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, nil })
	cmd.SetArgs([]string{"dashboard"})
	mc.On("GetDashboard", mock.Anything).Return(nil, fmt.Errorf("pop"))
	err := cmd.Execute()
	assert.Regexp(t, "pop", err)
}

func TestClientDashboardBadClientConfig(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, fmt.Errorf("pop") })
	cmd.SetArgs([]string{"dashboard"})
	err := cmd.Execute()
	assert.Regexp(t, "pop", err)
}

func TestClientSearch(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, nil })
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"search", "12345"})
	mc.On("Search", mock.Anything, "12345").Return(&apitypes.SearchResult{
		Type:   apitypes.SearchResultTypeLedger,
		Ledger: &apitypes.Ledger{Sequence: 12345},
	}, nil)
	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, out.String(), `"type": "ledger"`)
}

func TestClientSearchError(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, nil })
	cmd.SetArgs([]string{"search", "nope"})
	mc.On("Search", mock.Anything, "nope").Return(nil, fmt.Errorf("pop"))
	err := cmd.Execute()
	assert.Regexp(t, "pop", err)
}

func TestClientSearchBadClientConfig(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, fmt.Errorf("pop") })
	cmd.SetArgs([]string{"search", "12345"})
	err := cmd.Execute()
	assert.Regexp(t, "pop", err)
}

func TestClientSearchNoQuery(t *testing.T) {
	mc := apiclientmocks.NewExplorerClient(t)
	cmd := buildClientCommand(func() (apiclient.ExplorerClient, error) { return mc, nil })
	cmd.SetArgs([]string{"search"})
	err := cmd.Execute()
	assert.Regexp(t, "accepts 1 arg", err)
}
