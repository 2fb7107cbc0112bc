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
	"crypto/rand"
	"time"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	ulid "github.com/oklog/ulid/v2"
)

var cycleEntropy = &ulid.LockedMonotonicReader{
	MonotonicReader: &ulid.MonotonicEntropy{
		Reader: rand.Reader,
	},
}

// NewCycleID returns a ULID formatted as a UUID, so load cycles started later always sort after
// earlier ones, including those started within the same millisecond.
func NewCycleID() *fftypes.UUID {
	u := ulid.MustNew(ulid.Timestamp(time.Now()), cycleEntropy)
	return (*fftypes.UUID)(&u)
}
