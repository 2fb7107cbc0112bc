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

package explorer

import (
	"encoding/json"
	"net/http"

	"github.com/ghodss/yaml"
	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/metrics"
)

func (m *manager) router() *mux.Router {
	mux := mux.NewRouter()
	if m.metricsEnabled {
		mux.Use(metrics.GetAPIServerInstrumentation().Middleware)
	}
	hf := ffapi.HandlerFactory{
		DefaultRequestTimeout: config.GetDuration(kxconfig.APIDefaultRequestTimeout),
		MaxTimeout:            config.GetDuration(kxconfig.APIMaxRequestTimeout),
	}
	routes := m.routes()
	for _, r := range routes {
		mux.Path(r.Path).Methods(r.Method).Handler(hf.RouteHandler(r))
	}
	mux.Path("/api").Methods(http.MethodGet).Handler(http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		url := req.URL.String() + "/spec.yaml"
		handler := hf.APIWrapper(hf.SwaggerUIHandler(url))
		handler(res, req)
	}))
	mux.Path("/api/spec.yaml").Methods(http.MethodGet).Handler(apiDocHandler(routes, "application/x-yaml", yaml.Marshal))
	mux.Path("/api/spec.json").Methods(http.MethodGet).Handler(apiDocHandler(routes, "application/json", json.Marshal))

	mux.Handle("/ws", m.wsServer)

	mux.NotFoundHandler = hf.APIWrapper(func(res http.ResponseWriter, req *http.Request) (status int, err error) {
		return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
	})
	return mux
}

// apiDocHandler serves the OpenAPI document for the routes, relative to the URL it was requested on
func apiDocHandler(routes []*ffapi.Route, contentType string, marshal func(interface{}) ([]byte, error)) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		baseURL := *req.URL
		baseURL.Path = ""
		doc := ffapi.NewSwaggerGen(&ffapi.Options{
			BaseURL: baseURL.String(),
		}).Generate(req.Context(), routes)
		b, err := marshal(doc)
		if err != nil {
			http.Error(res, err.Error(), http.StatusInternalServerError)
			return
		}
		res.Header().Add("Content-Type", contentType)
		_, _ = res.Write(b)
	})
}
