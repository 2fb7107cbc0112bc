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

package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/stretchr/testify/assert"
)

func TestConnectionsLifecycle(t *testing.T) {
	cli, server := newTestClientServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/connections":
			w.WriteHeader(200)
			w.Write([]byte(`[{"name":"testnet","networkPassphrase":"Kinesis KEM Testnet","horizonURL":"http://horizon"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/connections":
			var conn apitypes.Connection
			err := json.NewDecoder(r.Body).Decode(&conn)
			assert.NoError(t, err)
			w.WriteHeader(200)
			json.NewEncoder(w).Encode(&conn)
		case r.Method == http.MethodGet && r.URL.Path == "/connections/selected":
			w.WriteHeader(200)
			w.Write([]byte(`{"name":"testnet"}`))
		case r.Method == http.MethodPut && r.URL.Path == "/connections/selected":
			var req apitypes.SelectConnectionRequest
			err := json.NewDecoder(r.Body).Decode(&req)
			assert.NoError(t, err)
			w.WriteHeader(200)
			json.NewEncoder(w).Encode(&apitypes.Connection{Name: req.Name})
		case r.Method == http.MethodDelete && r.URL.Path == "/connections/testnet":
			w.WriteHeader(204)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(500)
		}
	})
	defer server.Close()
	ctx := context.Background()

	conns, err := cli.GetConnections(ctx)
	assert.NoError(t, err)
	assert.Len(t, conns, 1)
	assert.Equal(t, "http://horizon", conns[0].HorizonURL)

	stored, err := cli.PutConnection(ctx, &apitypes.Connection{Name: "mainnet", HorizonURL: "http://other"})
	assert.NoError(t, err)
	assert.Equal(t, "mainnet", stored.Name)

	selected, err := cli.GetSelectedConnection(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "testnet", selected.Name)

	selected, err = cli.SelectConnection(ctx, "mainnet")
	assert.NoError(t, err)
	assert.Equal(t, "mainnet", selected.Name)

	err = cli.DeleteConnection(ctx, "testnet")
	assert.NoError(t, err)
}

func TestConnectionErrors(t *testing.T) {
	cli, server := newTestClientServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(409)
		w.Write([]byte(`{"error":"KX10131: selected"}`))
	})
	defer server.Close()
	ctx := context.Background()

	_, err := cli.GetConnections(ctx)
	assert.Regexp(t, "KX10170.*409", err)
	_, err = cli.GetSelectedConnection(ctx)
	assert.Regexp(t, "KX10170", err)
	_, err = cli.PutConnection(ctx, &apitypes.Connection{})
	assert.Regexp(t, "KX10170", err)
	_, err = cli.SelectConnection(ctx, "a")
	assert.Regexp(t, "KX10170", err)
	err = cli.DeleteConnection(ctx, "a")
	assert.Regexp(t, "KX10131", err)
}

func TestDeleteConnectionsByName(t *testing.T) {
	deleted := []string{}
	cli, server := newTestClientServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(200)
			w.Write([]byte(`[{"name":"test-1"},{"name":"main"},{"name":"test-2"}]`))
		case http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			w.WriteHeader(204)
		}
	})
	defer server.Close()

	names, err := cli.DeleteConnectionsByName(context.Background(), "^test-")
	assert.NoError(t, err)
	assert.Equal(t, []string{"test-1", "test-2"}, names)
	assert.Equal(t, []string{"/connections/test-1", "/connections/test-2"}, deleted)
}

func TestDeleteConnectionsByNameStopsOnFailure(t *testing.T) {
	cli, server := newTestClientServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(200)
			w.Write([]byte(`[{"name":"a"},{"name":"b"}]`))
		case http.MethodDelete:
			if r.URL.Path == "/connections/b" {
				w.WriteHeader(409)
				w.Write([]byte(`{"error":"selected"}`))
				return
			}
			w.WriteHeader(204)
		}
	})
	defer server.Close()

	names, err := cli.DeleteConnectionsByName(context.Background(), ".*")
	assert.Regexp(t, "KX10170.*409.*selected", err)
	assert.Equal(t, []string{"a"}, names)
}

func TestDeleteConnectionsByNameBadRegex(t *testing.T) {
	cli, server := newTestClientServer(t, func(w http.ResponseWriter, r *http.Request) {})
	defer server.Close()

	_, err := cli.DeleteConnectionsByName(context.Background(), "[")
	assert.Error(t, err)
}

func TestDeleteConnectionsByNameListFail(t *testing.T) {
	cli, server := newTestClientServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	})
	defer server.Close()

	_, err := cli.DeleteConnectionsByName(context.Background(), ".*")
	assert.Regexp(t, "KX10170", err)
}
