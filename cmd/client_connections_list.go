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

	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func clientConnectionsListCommand(clientFactory func() (apiclient.ExplorerClient, error)) *cobra.Command {
	clientConnectionsListCmd := &cobra.Command{
		Use:   "list",
		Short: "List connections",
		Long:  "",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			connections, err := client.GetConnections(context.Background())
			if err != nil {
				return err
			}
			selected := ""
			if len(connections) > 0 {
				if conn, err := client.GetSelectedConnection(context.Background()); err == nil {
					selected = conn.Name
				}
			}
			data := pterm.TableData{{"", "Name", "Horizon URL", "Network passphrase"}}
			for _, conn := range connections {
				marker := ""
				if conn.Name == selected {
					marker = "*"
				}
				data = append(data, []string{marker, conn.Name, conn.HorizonURL, conn.NetworkPassphrase})
			}
			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
	return clientConnectionsListCmd
}
