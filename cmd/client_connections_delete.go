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
	"strings"

	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/spf13/cobra"
)

func clientConnectionsDeleteCommand(clientFactory func() (apiclient.ExplorerClient, error)) *cobra.Command {
	clientConnectionsDeleteCmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete connections",
		Long:  "",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			if len(args) == 0 && nameRegex == "" {
				return fmt.Errorf("connection name or name flag must be set")
			}
			if len(args) > 0 && nameRegex != "" {
				return fmt.Errorf("connection name and name flag cannot be combined")
			}
			if len(args) > 0 {
				err := client.DeleteConnection(context.Background(), args[0])
				if err != nil {
					if !(strings.Contains(err.Error(), "KX10130") && ignoreNotFound) {
						return err
					}
				}
			}
			if nameRegex != "" {
				deleted, err := client.DeleteConnectionsByName(context.Background(), nameRegex)
				for _, name := range deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	clientConnectionsDeleteCmd.Flags().StringVarP(&nameRegex, "name", "", "", "A regular expression for matching the connection name")
	return clientConnectionsDeleteCmd
}
