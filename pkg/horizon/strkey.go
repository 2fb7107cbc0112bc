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
	"encoding/base32"
)

const (
	// versionByteAccountID encodes as a leading 'G'
	versionByteAccountID = 6 << 3
	strKeyLength         = 56
	strKeyPayloadLength  = 33
)

var strKeyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsValidPublicKey checks an address is an ed25519 public key in StrKey form: base32 of
// a version byte, the 32 byte key, and a little-endian CRC16-XModem checksum of both.
func IsValidPublicKey(address string) bool {
	if len(address) != strKeyLength {
		return false
	}
	raw, err := strKeyEncoding.DecodeString(address)
	if err != nil || len(raw) != strKeyPayloadLength+2 {
		return false
	}
	if raw[0] != versionByteAccountID {
		return false
	}
	crc := crc16XModem(raw[:strKeyPayloadLength])
	return raw[strKeyPayloadLength] == byte(crc) && raw[strKeyPayloadLength+1] == byte(crc>>8)
}

func crc16XModem(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
