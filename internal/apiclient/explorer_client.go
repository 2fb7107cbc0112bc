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

package apiclient

import (
	"context"

	resty "github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

type ExplorerClient interface {
	GetDashboard(ctx context.Context) (*apitypes.DashboardSnapshot, error)
	GetConnections(ctx context.Context) ([]*apitypes.Connection, error)
	GetSelectedConnection(ctx context.Context) (*apitypes.Connection, error)
	PutConnection(ctx context.Context, conn *apitypes.Connection) (*apitypes.Connection, error)
	SelectConnection(ctx context.Context, name string) (*apitypes.Connection, error)
	DeleteConnection(ctx context.Context, name string) error
	DeleteConnectionsByName(ctx context.Context, nameRegex string) ([]string, error)
	Search(ctx context.Context, query string) (*apitypes.SearchResult, error)
}

type explorerClient struct {
	client *resty.Client
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

func NewExplorerClient(ctx context.Context, staticConfig config.Section) (ExplorerClient, error) {
	client, err := ffresty.New(ctx, staticConfig)
	if err != nil {
		return nil, err
	}
	return &explorerClient{
		client: client,
	}, nil
}

// checkResponse prefers the error message from the explorer's REST error body
func checkResponse(ctx context.Context, resp *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		detail := string(resp.Body())
		if restErr, ok := resp.Error().(*fftypes.RESTError); ok && restErr.Error != "" {
			detail = restErr.Error
		}
		return i18n.NewError(ctx, kxmsgs.MsgExplorerRequestFailed, resp.StatusCode(), detail)
	}
	return nil
}

func (c *explorerClient) request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetError(&fftypes.RESTError{})
}
