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
	"encoding/json"
	"fmt"

	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/spf13/cobra"
)

func clientSearchCommand(clientFactory func() (apiclient.ExplorerClient, error)) *cobra.Command {
	clientSearchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find a ledger by sequence, a transaction by hash, or an account by public key",
		Long:  "",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFactory()
			if err != nil {
				return err
			}
			result, err := client.Search(context.Background(), args[0])
			if err != nil {
				return err
			}
			json, _ := json.MarshalIndent(result, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(json))
			return nil
		},
	}
	return clientSearchCmd
}
