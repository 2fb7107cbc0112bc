// Copyright © 2022 Kaleido, Inc.
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

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTestConfig(t *testing.T, persistenceType string) string {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "kexplorer.yaml")
	err := os.WriteFile(cfgFile, []byte(fmt.Sprintf(`
api:
  address: 127.0.0.1
  port: 0
metrics:
  enabled: true
  address: 127.0.0.1
  port: 0
persistence:
  type: %s
  leveldb:
    path: %s
`, persistenceType, filepath.Join(dir, "leveldb"))), 0644)
	assert.NoError(t, err)
	return cfgFile
}

func TestRunOK(t *testing.T) {

	rootCmd.SetArgs([]string{"-f", writeTestConfig(t, "leveldb")})
	defer rootCmd.SetArgs([]string{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		err := Execute()
		assert.NoError(t, err)
	}()

	time.Sleep(10 * time.Millisecond)
	sigs <- os.Kill

	<-done

}

func TestRunMissingConfig(t *testing.T) {

	rootCmd.SetArgs([]string{"-f", "../test/does-not-exist.kexplorer.yaml"})
	defer rootCmd.SetArgs([]string{})

	err := Execute()
	assert.Regexp(t, "FF00101", err)

}

func TestRunBadConfig(t *testing.T) {

	rootCmd.SetArgs([]string{"-f", writeTestConfig(t, "wrong")})
	defer rootCmd.SetArgs([]string{})

	err := Execute()
	assert.Regexp(t, "KX10101", err)

}
