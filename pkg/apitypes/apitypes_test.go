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
	"context"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/stretchr/testify/assert"
)

func TestConnectionEqual(t *testing.T) {
	c1 := &Connection{Name: "a", NetworkPassphrase: "Kinesis UAT", HorizonURL: "https://horizon.example.com/"}
	c2 := &Connection{Name: "b", NetworkPassphrase: "Kinesis UAT", HorizonURL: "https://horizon.example.com"}
	c3 := &Connection{Name: "a", NetworkPassphrase: "Kinesis Live", HorizonURL: "https://horizon.example.com"}
	assert.True(t, c1.Equal(c2))
	assert.False(t, c1.Equal(c3))
	assert.False(t, c1.Equal(nil))
	var nilConn *Connection
	assert.True(t, nilConn.Equal(nil))
}

func TestConnectionValidate(t *testing.T) {
	ctx := context.Background()
	c := &Connection{Name: "a", NetworkPassphrase: "Kinesis UAT", HorizonURL: "https://horizon.example.com"}
	assert.NoError(t, c.Validate(ctx))

	c.Name = ""
	assert.Regexp(t, "KX10117", c.Validate(ctx))

	c.Name = "a"
	c.HorizonURL = "ftp://horizon.example.com"
	assert.Regexp(t, "KX10118", c.Validate(ctx))

	c.HorizonURL = "://bad"
	assert.Regexp(t, "KX10118", c.Validate(ctx))
}

func TestConnectionTimestamps(t *testing.T) {
	c := &Connection{Name: "a"}
	now := fftypes.Now()
	c.SetCreated(now)
	c.SetUpdated(now)
	assert.Equal(t, "a", c.GetID())
	assert.Equal(t, now, c.Created)
	assert.Equal(t, now, c.Updated)
}

func TestRecordCursors(t *testing.T) {
	var r Record = &Ledger{PagingToken: "12345"}
	assert.Equal(t, "12345", r.Cursor())
	r = &Transaction{PagingToken: "67890"}
	assert.Equal(t, "67890", r.Cursor())
}

func TestNewCycleIDSorts(t *testing.T) {
	id1 := NewCycleID()
	id2 := NewCycleID()
	assert.NotEqual(t, id1.String(), id2.String())
	assert.Less(t, id1.String(), id2.String())
}
