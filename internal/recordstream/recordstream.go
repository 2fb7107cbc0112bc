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

package recordstream

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/kinesis-explorer/kexplorer/internal/metrics"
	"github.com/kinesis-explorer/kexplorer/pkg/apitypes"
	"github.com/kinesis-explorer/kexplorer/pkg/horizon"
)

// CancelFunc stops a subscription. Calling it twice has whatever effect the underlying stream gives it.
type CancelFunc func()

// Subscribe starts delivery from an open stream. onRecord is called once per record, in the order the
// stream delivers them.
func Subscribe[T apitypes.Record](ctx context.Context, kind apitypes.RecordKind, source horizon.RecordStream[T], mm metrics.DashboardMetrics, onRecord func(T)) CancelFunc {
	log.L(ctx).Debugf("Subscribing to %s stream", kind)
	cancel := source.Stream(func(record T) {
		log.L(ctx).Tracef("Received %s record cursor=%s", kind, record.Cursor())
		mm.RecordStreamRecord(ctx, string(kind))
		onRecord(record)
	})
	return func() {
		log.L(ctx).Debugf("Cancelling %s stream", kind)
		cancel()
	}
}
