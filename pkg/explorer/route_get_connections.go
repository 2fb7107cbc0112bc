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

package explorer

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

var getConnections = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:            "getConnections",
		Path:            "/connections",
		Method:          http.MethodGet,
		PathParams:      nil,
		QueryParams:     nil,
		Description:     kxmsgs.APIEndpointGetConnections,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return []*apitypes.Connection{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.registry.List(r.Req.Context())
		},
	}
}

var getSelectedConnection = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:            "getSelectedConnection",
		Path:            "/connections/selected",
		Method:          http.MethodGet,
		PathParams:      nil,
		QueryParams:     nil,
		Description:     kxmsgs.APIEndpointGetSelectedConnection,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return &apitypes.Connection{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.selectedConnection(r.Req.Context())
		},
	}
}
