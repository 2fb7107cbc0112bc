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
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/kinesis-explorer/kexplorer/pkg/horizon"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func clientDashboardCommand(clientFactory func() (apiclient.ExplorerClient, error)) *cobra.Command {
	clientDashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the latest ledgers and transactions on the selected connection",
		Long:  "",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			snapshot, err := client.GetDashboard(context.Background())
			if err != nil {
				return err
			}
			out, err := renderSnapshot(snapshot)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	return clientDashboardCmd
}

func relativeTime(t *fftypes.FFTime) string {
	if t == nil {
		return ""
	}
	return humanize.Time(*t.Time())
}

func renderSnapshot(snapshot *apitypes.DashboardSnapshot) (string, error) {
	connection := "none selected"
	if snapshot.Connection != nil {
		connection = fmt.Sprintf("%s (%s)", snapshot.Connection.Name, snapshot.Connection.HorizonURL)
	}
	out := pterm.Sprintfln("Connection: %s", connection)
	out += pterm.Sprintfln("State: %s", snapshot.State)
	if snapshot.Error != "" {
		out += pterm.Sprintfln("Error: %s", snapshot.Error)
	}

	ledgers := pterm.TableData{{"Sequence", "Transactions", "Operations", "Closed"}}
	for _, l := range snapshot.Ledgers {
		ledgers = append(ledgers, []string{
			humanize.Comma(l.Sequence),
			strconv.FormatInt(l.SuccessfulTransactionCount, 10),
			strconv.FormatInt(l.OperationCount, 10),
			relativeTime(l.ClosedAt),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(ledgers).Srender()
	if err != nil {
		return "", err
	}
	out += pterm.Sprintfln("\nLedgers\n%s", table)

	transactions := pterm.TableData{{"Hash", "Ledger", "Operations", "Fee", "Created"}}
	for _, tx := range snapshot.Transactions {
		fee := "0"
		if tx.FeeCharged != nil {
			fee = horizon.FormatKinesis(tx.FeeCharged.Int().Int64())
		}
		transactions = append(transactions, []string{
			tx.Hash,
			humanize.Comma(tx.Ledger),
			strconv.FormatInt(tx.OperationCount, 10),
			fee,
			relativeTime(tx.CreatedAt),
		})
	}
	table, err = pterm.DefaultTable.WithHasHeader().WithData(transactions).Srender()
	if err != nil {
		return "", err
	}
	out += pterm.Sprintfln("\nTransactions\n%s", table)
	return out, nil
}
