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
	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/spf13/cobra"
)

func clientConnectionsCommand(clientFactory func() (apiclient.ExplorerClient, error)) *cobra.Command {
	clientConnectionsCmd := &cobra.Command{
		Use:   "connections <subcommand>",
		Short: "Manage the network connections of an explorer",
	}
	clientConnectionsCmd.AddCommand(clientConnectionsListCommand(clientFactory))
	clientConnectionsCmd.AddCommand(clientConnectionsSelectCommand(clientFactory))
	clientConnectionsCmd.AddCommand(clientConnectionsDeleteCommand(clientFactory))
	return clientConnectionsCmd
}
