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
	"os"
	"os/signal"
	"syscall"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/pkg/explorer"
	"github.com/kinesis-explorer/kexplorer/pkg/horizon"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "kexplorer",
	Short: "Kinesis network explorer",
	Long:  ``,
	RunE: func(_ *cobra.Command, _ []string) error {
		return run()
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(ClientCommand())
	rootCmd.AddCommand(DashboardCommand())
}

func Execute() error {
	return rootCmd.Execute()
}

// readConfig returns a context with the root logger, and any failure reading the config.
// Logging is set up even if the read failed, so the error is reported in the configured format.
// When the config file is optional, the defaults apply unless a file is named with -f.
func readConfig(required bool) (context.Context, error) {
	explorer.InitConfig()
	var err error
	if required || cfgFile != "" {
		err = config.ReadConfig("kexplorer", cfgFile)
	}

	ctx := log.WithLogger(context.Background(), logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	ctx = log.WithLogger(ctx, logrus.WithField("prefix", "kexplorer"))
	config.SetupLogging(ctx)

	if err != nil {
		return ctx, i18n.WrapError(ctx, err, i18n.MsgConfigFailed)
	}
	return ctx, nil
}

func run() error {
	ctx, err := readConfig(true)
	if err != nil {
		return err
	}
	ctx, cancelCtx := context.WithCancel(ctx)
	defer cancelCtx()

	// Setup signal handling to cancel the context, which shuts down the API Server
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	client, err := horizon.NewQueryClient(ctx, kxconfig.HorizonConfig)
	if err != nil {
		return err
	}
	manager, err := explorer.NewManager(ctx, client)
	if err != nil {
		return err
	}
	defer manager.Close()
	if err = manager.Start(); err != nil {
		return err
	}
	sig := <-sigs
	log.L(ctx).Infof("Shutting down due to %s", sig.String())
	return nil
}
