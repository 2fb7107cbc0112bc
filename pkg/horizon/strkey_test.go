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
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testAccountA = "GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN7"
	testAccountB = "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"
)

func TestIsValidPublicKey(t *testing.T) {
	assert.True(t, IsValidPublicKey(testAccountA))
	assert.True(t, IsValidPublicKey(testAccountB))

	// checksum mismatch
	assert.False(t, IsValidPublicKey("GAAZI4TCR3TY5OJHCTJC2A4QSY6CJWJH5IAJTGKIN2ER7LBNVKOCCWN6"))
	// secret seed, not a public key
	assert.False(t, IsValidPublicKey("SBK2VIYYSVG76E7VC3QHYARNFLY2EAQXDHRC7BMXBBGIFG74ARPRMNQM"))
	// lower case is not base32
	assert.False(t, IsValidPublicKey("gaazi4tcr3ty5ojhctjc2a4qsy6cjwjh5iajtgkin2er7lbnvkoccwn7"))
	assert.False(t, IsValidPublicKey(testAccountA[:55]))
	assert.False(t, IsValidPublicKey(""))
	assert.False(t, IsValidPublicKey("12345"))
}

func TestCRC16XModemCheckValue(t *testing.T) {
	assert.Equal(t, uint16(0x31C3), crc16XModem([]byte("123456789")))
}

func TestConvertStroopsToKinesis(t *testing.T) {
	assert.Equal(t, 1.0, ConvertStroopsToKinesis(10000000))
	assert.Equal(t, 0.00001, ConvertStroopsToKinesis(100))
	assert.Equal(t, "0.00001", FormatKinesis(100))
	assert.Equal(t, "12.5", FormatKinesis(125000000))
	assert.Equal(t, "0", FormatKinesis(0))
}
