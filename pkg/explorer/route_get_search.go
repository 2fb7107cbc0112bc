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
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/kinesis-explorer/kexplorer/internal/kxmsgs"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
)

var getSearch = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:   "getSearch",
		Path:   "/search/{query}",
		Method: http.MethodGet,
		PathParams: []*ffapi.PathParam{
			{Name: "query", Description: kxmsgs.APIParamSearchQuery},
		},
		QueryParams:     nil,
		Description:     kxmsgs.APIEndpointGetSearch,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return &apitypes.SearchResult{} },
		JSONOutputSchema: func(_ context.Context, schemaGen ffapi.SchemaGenerator) (*openapi3.SchemaRef, error) {
			schemas := openapi3.SchemaRefs{}
			for _, v := range []interface{}{
				&apitypes.SearchResult{Type: apitypes.SearchResultTypeLedger, Ledger: &apitypes.Ledger{}},
				&apitypes.SearchResult{Type: apitypes.SearchResultTypeTransaction, Transaction: &apitypes.Transaction{}},
				&apitypes.SearchResult{Type: apitypes.SearchResultTypeAccount, Account: &apitypes.Account{}},
			} {
				schema, err := schemaGen(v)
				if err != nil {
					return nil, err
				}
				schemas = append(schemas, schema)
			}
			return &openapi3.SchemaRef{
				Value: &openapi3.Schema{
					AnyOf: schemas,
				},
			}, nil
		},
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.search(r.Req.Context(), r.PP["query"])
		},
	}
}
