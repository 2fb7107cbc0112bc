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
	"time"

	"github.com/hyperledger/firefly-common/pkg/wsclient"
	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/kinesis-explorer/kexplorer/internal/tui"
	"github.com/spf13/cobra"
)

func DashboardCommand() *cobra.Command {
	return buildDashboardCommand(createClient, tui.NewDashboard)
}

func buildDashboardCommand(
	clientFactory func() (apiclient.ExplorerClient, error),
	dashboardFactory func(context.Context, apiclient.ExplorerClient, *wsclient.WSConfig) (tui.Dashboard, error),
) *cobra.Command {
	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Follow a running explorer in the terminal",
		Long:  "",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, err := readConfig(false)
			if err != nil {
				return err
			}
			client, err := clientFactory()
			if err != nil {
				return err
			}
			d, err := dashboardFactory(ctx, client, &wsclient.WSConfig{
				HTTPURL:                url,
				WSKeyPath:              "/ws",
				InitialDelay:           250 * time.Millisecond,
				MaximumDelay:           30 * time.Second,
				InitialConnectAttempts: 5,
			})
			if err != nil {
				return err
			}
			return d.Run()
		},
	}
	addClientFlags(dashboardCmd)
	return dashboardCmd
}
