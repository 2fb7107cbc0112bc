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
	"net/url"
	"regexp"

	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

func (c *explorerClient) GetDashboard(ctx context.Context) (*apitypes.DashboardSnapshot, error) {
	var snapshot apitypes.DashboardSnapshot
	resp, err := c.request(ctx).
		SetResult(&snapshot).
		Get("dashboard")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *explorerClient) Search(ctx context.Context, query string) (*apitypes.SearchResult, error) {
	var result apitypes.SearchResult
	resp, err := c.request(ctx).
		SetResult(&result).
		Get("search/" + url.PathEscape(query))
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *explorerClient) GetConnections(ctx context.Context) ([]*apitypes.Connection, error) {
	connections := []*apitypes.Connection{}
	resp, err := c.request(ctx).
		SetResult(&connections).
		Get("connections")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return connections, nil
}

func (c *explorerClient) GetSelectedConnection(ctx context.Context) (*apitypes.Connection, error) {
	var conn apitypes.Connection
	resp, err := c.request(ctx).
		SetResult(&conn).
		Get("connections/selected")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (c *explorerClient) PutConnection(ctx context.Context, conn *apitypes.Connection) (*apitypes.Connection, error) {
	var stored apitypes.Connection
	resp, err := c.request(ctx).
		SetBody(conn).
		SetResult(&stored).
		Post("connections")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (c *explorerClient) SelectConnection(ctx context.Context, name string) (*apitypes.Connection, error) {
	var conn apitypes.Connection
	resp, err := c.request(ctx).
		SetBody(&apitypes.SelectConnectionRequest{Name: name}).
		SetResult(&conn).
		Put("connections/selected")
	if err := checkResponse(ctx, resp, err); err != nil {
		return nil, err
	}
	return &conn, nil
}

func (c *explorerClient) DeleteConnection(ctx context.Context, name string) error {
	resp, err := c.request(ctx).
		Delete("connections/" + url.PathEscape(name))
	return checkResponse(ctx, resp, err)
}

// DeleteConnectionsByName deletes every connection with a matching name, and returns the names deleted.
// It stops at the first failure, which is usually the selected connection.
func (c *explorerClient) DeleteConnectionsByName(ctx context.Context, nameRegex string) ([]string, error) {
	regex, err := regexp.Compile(nameRegex)
	if err != nil {
		return nil, err
	}

	connections, err := c.GetConnections(ctx)
	if err != nil {
		return nil, err
	}

	deleted := []string{}
	for _, conn := range connections {
		if regex.MatchString(conn.Name) {
			if err := c.DeleteConnection(ctx, conn.Name); err != nil {
				return deleted, err
			}
			deleted = append(deleted, conn.Name)
		}
	}
	return deleted, nil
}
