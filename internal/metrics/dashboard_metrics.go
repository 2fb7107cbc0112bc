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
	"github.com/prometheus/client_golang/prometheus"
)

const metricsLabelKind = "kind"
const metricsLabelStatus = "status"

var loadCyclesTotal prometheus.Counter
var fetchDuration *prometheus.HistogramVec
var streamOpensTotal *prometheus.CounterVec
var streamRecordsTotal *prometheus.CounterVec
var staleHandlesTotal *prometheus.CounterVec
var feedLength *prometheus.GaugeVec

func initDashboardMetrics() {
	loadCyclesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "dashboard",
		Name:      "load_cycles_total",
		Help:      "Number of times the dashboard started loading, on startup or connection change",
	})
	fetchDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metricsNamespace,
		Subsystem: "dashboard",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of the initial bulk fetch grouped by record kind and status",
	}, []string{metricsLabelKind, metricsLabelStatus})
	streamOpensTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "dashboard",
		Name:      "stream_opens_total",
		Help:      "Number of live streams opened grouped by record kind and status",
	}, []string{metricsLabelKind, metricsLabelStatus})
	streamRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "dashboard",
		Name:      "stream_records_total",
		Help:      "Number of records pushed onto a feed from a live stream",
	}, []string{metricsLabelKind})
	staleHandlesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: "dashboard",
		Name:      "stale_streams_cancelled_total",
		Help:      "Number of streams cancelled as soon as they opened, because a newer load cycle had started",
	}, []string{metricsLabelKind})
	feedLength = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: "dashboard",
		Name:      "feed_length",
		Help:      "Number of records currently held in each feed",
	}, []string{metricsLabelKind})
}

func registerDashboardMetrics() {
	registry.MustRegister(loadCyclesTotal)
	registry.MustRegister(fetchDuration)
	registry.MustRegister(streamOpensTotal)
	registry.MustRegister(streamRecordsTotal)
	registry.MustRegister(staleHandlesTotal)
	registry.MustRegister(feedLength)
}
