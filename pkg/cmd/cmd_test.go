// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"path/filepath"
	"testing"

	"github.com/consensys/go-memcount/pkg/chunk"
	"github.com/consensys/go-memcount/pkg/counter"
	"github.com/consensys/go-memcount/pkg/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Gen_00(t *testing.T) {
	var cfg = genConfig{seed: 7, accesses: 500, copies: 50, maxLen: 64, span: 4096}
	//
	ops := generateOps(cfg)
	assert.Equal(t, ops, generateOps(cfg))
	assert.GreaterOrEqual(t, len(ops), 500)
	//
	layout := memory.DefaultLayout()
	//
	for _, op := range ops {
		require.NoError(t, op.Validate())
		//
		_, err := layout.Classify(op.Addr)
		require.NoError(t, err)
	}
}

func Test_Gen_01(t *testing.T) {
	var (
		path = filepath.Join(t.TempDir(), "trace.bin")
		ops  = generateOps(genConfig{seed: 3, accesses: 2000, copies: 100, maxLen: 128, span: 2048})
		q    = chunk.NewQueue()
	)
	//
	require.NoError(t, chunk.WriteFile(path, ops))
	//
	n, err := chunk.LoadFile(path, 128, q)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(ops)), n)
	q.Close()
	//
	cfg := counter.DefaultConfig()
	cfg.Workers = 2
	cfg.PageBits = 12
	//
	result, err := counter.Run(cfg, q)
	require.NoError(t, err)
	assert.Equal(t, uint32(q.Len()), result.Summary.Chunks)
	assert.NotZero(t, result.Summary.Rows)
}

func Test_ParseAddress(t *testing.T) {
	n, err := parseAddress("0xA0000003")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xA000_0003), n)
	//
	n, err = parseAddress("10")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)
	//
	_, err = parseAddress("0x1_0000_0000")
	assert.Error(t, err)
	_, err = parseAddress("ram")
	assert.Error(t, err)
}
