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

package horizon

import (
	"strconv"
)

// StroopsInOneKinesis is the number of base units in one whole unit of a Kinesis currency
const StroopsInOneKinesis = 1e7

func ConvertStroopsToKinesis(stroops int64) float64 {
	return float64(stroops) / StroopsInOneKinesis
}

// FormatKinesis renders an amount in stroops as whole units, without trailing zeros
func FormatKinesis(stroops int64) string {
	return strconv.FormatFloat(ConvertStroopsToKinesis(stroops), 'f', -1, 64)
}
