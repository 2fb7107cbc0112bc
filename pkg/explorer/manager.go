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

	"github.com/gorilla/mux"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/connections"
	"github.com/kinesis-explorer/kexplorer/internal/dashboard"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
	"github.com/kinesis-explorer/kexplorer/internal/metrics"
	"github.com/kinesis-explorer/kexplorer/internal/persistence"
	"github.com/kinesis-explorer/kexplorer/internal/ws"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/kinesis-explorer/kexplorer/pkg/horizon"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Manager interface {
	Start() error
	Close()
}

type manager struct {
	ctx            context.Context
	cancelCtx      func()
	client         horizon.QueryClient
	persistence    persistence.Persistence
	registry       connections.Registry
	dashboard      dashboard.Controller
	wsServer       ws.WebSocketServer
	metricsManager metrics.Metrics
	removeObserver func()

	apiServer         httpserver.HTTPServer
	apiServerDone     chan error
	metricsEnabled    bool
	metricsServer     httpserver.HTTPServer
	metricsServerDone chan error
	started           bool
}

func InitConfig() {
	kxconfig.Reset()
}

// NewManager builds the explorer service around a query client, which is usually the Horizon client
func NewManager(ctx context.Context, client horizon.QueryClient) (Manager, error) {
	m := newManager(ctx, client)
	err := m.initServices(ctx)
	if err != nil {
		return nil, err
	}
	m.apiServer, err = httpserver.NewHTTPServer(ctx, "api", m.router(), m.apiServerDone, kxconfig.APIConfig, kxconfig.CorsConfig)
	if err != nil {
		return nil, err
	}
	if m.metricsEnabled {
		m.metricsServer, err = httpserver.NewHTTPServer(ctx, "metrics", m.createMetricsMuxRouter(), m.metricsServerDone, kxconfig.MetricsConfig, kxconfig.CorsConfig)
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func newManager(ctx context.Context, client horizon.QueryClient) *manager {
	m := &manager{
		client:            client,
		apiServerDone:     make(chan error),
		metricsServerDone: make(chan error),
		metricsEnabled:    config.GetBool(kxconfig.MetricsEnabled),
	}
	m.ctx, m.cancelCtx = context.WithCancel(ctx)
	m.metricsManager = metrics.NewMetricsManager(m.ctx)
	return m
}

func (m *manager) initServices(ctx context.Context) (err error) {
	if m.persistence, err = persistence.NewPersistence(ctx); err != nil {
		return err
	}
	if m.registry, err = connections.NewRegistry(ctx, m.persistence); err != nil {
		return err
	}
	m.dashboard = dashboard.NewController(m.ctx, m.client, m.metricsManager)
	m.wsServer = ws.NewWebSocketServer(m.ctx, m)
	return nil
}

func (m *manager) createMetricsMuxRouter() *mux.Router {
	r := mux.NewRouter()
	r.Path(config.GetString(kxconfig.MetricsPath)).Handler(promhttp.InstrumentMetricHandler(metrics.Registry(),
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
	r.NotFoundHandler = http.NotFoundHandler()
	return r
}

func (m *manager) Start() error {
	selected, err := m.registry.Selected(m.ctx)
	if err != nil {
		return err
	}
	m.removeObserver = m.dashboard.AddObserver(m.wsServer.Broadcast)
	m.registry.AddListener(m.dashboard.ConnectionChanged)
	m.dashboard.Start(selected)
	if selected == nil {
		log.L(m.ctx).Warnf("No connection selected. Add a connection and select it to start the dashboard")
	}

	go m.runAPIServer()
	if m.metricsEnabled {
		go m.runMetricsServer()
	}
	m.started = true
	return nil
}

func (m *manager) runAPIServer() {
	m.apiServer.ServeHTTP(m.ctx)
}

func (m *manager) runMetricsServer() {
	m.metricsServer.ServeHTTP(m.ctx)
}

func (m *manager) Close() {
	m.cancelCtx()
	if m.started {
		m.started = false
		<-m.apiServerDone
		if m.metricsEnabled {
			<-m.metricsServerDone
		}
		m.removeObserver()
		m.wsServer.Close()
	}
	if m.dashboard != nil {
		m.dashboard.Close()
	}
	if m.persistence != nil {
		m.persistence.Close(m.ctx)
	}
}

// Snapshot is the dashboard state pushed to WebSocket clients
func (m *manager) Snapshot() *apitypes.DashboardSnapshot {
	return m.dashboard.Snapshot()
}

func (m *manager) SelectConnection(ctx context.Context, name string) error {
	_, err := m.registry.Select(ctx, name)
	return err
}
