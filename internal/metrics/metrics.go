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

package metrics

import (
	"context"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/kinesis-explorer/kexplorer/internal/kxconfig"
)

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Metrics {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(kxconfig.MetricsEnabled),
	}
	if mm.metricsEnabled {
		Registry()
	}
	return mm
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

type Metrics interface {
	IsMetricsEnabled() bool

	DashboardMetrics
}

// DashboardMetrics are emitted by the dashboard controller as it loads and streams records
type DashboardMetrics interface {
	RecordLoadCycle(ctx context.Context)
	RecordFetch(ctx context.Context, kind string, success bool, duration time.Duration)
	RecordStreamOpen(ctx context.Context, kind string, success bool)
	RecordStreamRecord(ctx context.Context, kind string)
	RecordStaleHandleCancelled(ctx context.Context, kind string)
	SetFeedLength(ctx context.Context, kind string, length int)
}

func (mm *metricsManager) RecordLoadCycle(ctx context.Context) {
	if mm.metricsEnabled {
		loadCyclesTotal.Inc()
	}
}

func (mm *metricsManager) RecordFetch(ctx context.Context, kind string, success bool, duration time.Duration) {
	if mm.metricsEnabled {
		fetchDuration.WithLabelValues(kind, status(success)).Observe(duration.Seconds())
	}
}

func (mm *metricsManager) RecordStreamOpen(ctx context.Context, kind string, success bool) {
	if mm.metricsEnabled {
		streamOpensTotal.WithLabelValues(kind, status(success)).Inc()
	}
}

func (mm *metricsManager) RecordStreamRecord(ctx context.Context, kind string) {
	if mm.metricsEnabled {
		streamRecordsTotal.WithLabelValues(kind).Inc()
	}
}

func (mm *metricsManager) RecordStaleHandleCancelled(ctx context.Context, kind string) {
	if mm.metricsEnabled {
		staleHandlesTotal.WithLabelValues(kind).Inc()
	}
}

func (mm *metricsManager) SetFeedLength(ctx context.Context, kind string, length int) {
	if mm.metricsEnabled {
		feedLength.WithLabelValues(kind).Set(float64(length))
	}
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "error"
}
