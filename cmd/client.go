// Copyright © 2022 Kaleido, Inc.
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

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftls"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/kinesis-explorer/kexplorer/internal/apiclient"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/spf13/cobra"
)

var url string
var nameRegex string
var ignoreNotFound bool

var tlsEnabled bool
var caFile string
var certFile string
var keyFile string

func ClientCommand() *cobra.Command {
	return buildClientCommand(createClient)
}

func buildClientCommand(clientFactory func() (apiclient.ExplorerClient, error)) *cobra.Command {
	clientCmd := &cobra.Command{
		Use:   "client <subcommand>",
		Short: "Make API requests to an explorer instance",
	}
	addClientFlags(clientCmd)
	clientCmd.PersistentFlags().BoolVarP(&ignoreNotFound, "ignore-not-found", "", false, "Does not return an error if the resource is not found. Useful for idempotent delete functions.")

	clientCmd.AddCommand(clientDashboardCommand(clientFactory))
	clientCmd.AddCommand(clientConnectionsCommand(clientFactory))
	clientCmd.AddCommand(clientSearchCommand(clientFactory))

	return clientCmd
}

func addClientFlags(cmd *cobra.Command) {
	defaultURL := fmt.Sprintf("http://%s:%s", kxconfig.APIConfig.GetString(httpserver.HTTPConfAddress), kxconfig.APIConfig.GetString(httpserver.HTTPConfPort))
	cmd.PersistentFlags().StringVarP(&url, "url", "", defaultURL, "The URL of the explorer")

	cmd.PersistentFlags().BoolVarP(&tlsEnabled, "tls", "", false, "Enable TLS on client")
	cmd.PersistentFlags().StringVarP(&caFile, "cacert", "", "", "The tls CA cert file")
	cmd.PersistentFlags().StringVarP(&certFile, "cert", "", "", "The tls cert file")
	cmd.PersistentFlags().StringVarP(&keyFile, "key", "", "", "The tls key file")
}

func clientConfig() config.Section {
	cfg := config.RootSection("explorer_client")
	apiclient.InitConfig(cfg)
	if url != "" {
		cfg.Set("url", url)
	}
	if tlsEnabled {
		tlsConf := cfg.SubSection("tls")
		tlsConf.Set(fftls.HTTPConfTLSEnabled, true)
		if caFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSCAFile, caFile)
		}
		if certFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSCertFile, certFile)
		}
		if keyFile != "" {
			tlsConf.Set(fftls.HTTPConfTLSKeyFile, keyFile)
		}
	}
	return cfg
}

func createClient() (apiclient.ExplorerClient, error) {
	return apiclient.NewExplorerClient(context.Background(), clientConfig())
}

func init() {
	kxconfig.Reset()
}
