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

package apitypes

import (
	"context"
	"net/url"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
)

// Connection identifies the network the dashboard is showing, and the Horizon endpoint used to query it.
// A Connection is replaced wholesale when the user selects a different one, and is never mutated in place.
type Connection struct {
	Name              string          `ffstruct:"connection" json:"name"`
	NetworkPassphrase string          `ffstruct:"connection" json:"networkPassphrase"`
	HorizonURL        string          `ffstruct:"connection" json:"horizonURL"`
	Created           *fftypes.FFTime `ffstruct:"connection" json:"created,omitempty"`
	Updated           *fftypes.FFTime `ffstruct:"connection" json:"updated,omitempty"`
}

// Equal compares the network and endpoint of two connections. The name is only a label,
// so renaming a connection does not cause the dashboard to reload.
func (c *Connection) Equal(c2 *Connection) bool {
	if c == nil || c2 == nil {
		return c == c2
	}
	return c.NetworkPassphrase == c2.NetworkPassphrase &&
		strings.TrimSuffix(c.HorizonURL, "/") == strings.TrimSuffix(c2.HorizonURL, "/")
}

func (c *Connection) GetID() string {
	return c.Name
}

func (c *Connection) SetCreated(t *fftypes.FFTime) {
	c.Created = t
}

func (c *Connection) SetUpdated(t *fftypes.FFTime) {
	c.Updated = t
}

// Validate checks the connection has everything required to reach a network
func (c *Connection) Validate(ctx context.Context) error {
	if c.Name == "" || c.NetworkPassphrase == "" || c.HorizonURL == "" {
		return i18n.NewError(ctx, kxmsgs.MsgInvalidConnection)
	}
	u, err := url.Parse(c.HorizonURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return i18n.NewError(ctx, kxmsgs.MsgInvalidHorizonURL, c.HorizonURL)
	}
	return nil
}

type SelectConnectionRequest struct {
	Name string `ffstruct:"selectconnection" json:"name"`
}
