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
package chunk

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/consensys/go-memcount/pkg/mops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Queue_00(t *testing.T) {
	q := NewQueue()
	assert.Equal(t, PENDING, q.TryChunk(0))
	//
	id := q.Push([]mops.MemOp{mops.AlignedRead(0xA000_0000)})
	assert.Equal(t, uint32(0), id)
	assert.Equal(t, READY, q.TryChunk(0))
	assert.Equal(t, PENDING, q.TryChunk(1))
	//
	q.Close()
	assert.Equal(t, EXHAUSTED, q.TryChunk(1))
	//
	c, _, err := q.Chunk(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), c.ID)
	assert.Len(t, c.Ops, 1)
	//
	_, _, err = q.Chunk(0, 1)
	assert.ErrorIs(t, err, ErrExhausted)
}

func Test_Queue_01(t *testing.T) {
	var (
		q   = NewQueue()
		ops = make([]mops.MemOp, 10)
	)
	//
	q.PushAll(ops, 4)
	q.Close()
	//
	assert.Equal(t, uint(3), q.Len())
	check_Chunks(t, q, 0, 4, 4, 2)
}

// Workers block until the producer catches up.
func Test_Queue_02(t *testing.T) {
	var (
		q       = NewQueue()
		wg      sync.WaitGroup
		workers = 4
		chunks  = 50
		seen    = make([]int, workers)
	)
	//
	for w := range workers {
		wg.Add(1)
		//
		go func() {
			defer wg.Done()
			//
			for id := uint32(0); ; id++ {
				c, _, err := q.Chunk(uint32(w), id)
				if errors.Is(err, ErrExhausted) {
					return
				}
				//
				assert.NoError(t, err)
				assert.Equal(t, id, c.ID)
				seen[w]++
			}
		}()
	}
	//
	for range chunks {
		q.Push(make([]mops.MemOp, 1))
	}
	//
	q.Close()
	wg.Wait()
	//
	for w := range workers {
		assert.Equal(t, chunks, seen[w])
	}
}

func Test_Queue_03(t *testing.T) {
	var (
		q     = NewQueue()
		fault = errors.New("fault")
		done  = make(chan error)
	)
	//
	go func() {
		_, _, err := q.Chunk(1, 0)
		done <- err
	}()
	//
	q.Abort(fault)
	q.Abort(errors.New("ignored"))
	//
	err := <-done
	assert.ErrorIs(t, err, fault)
	assert.NotErrorIs(t, err, ErrExhausted)
	assert.Equal(t, EXHAUSTED, q.TryChunk(0))
}

func Test_File_00(t *testing.T) {
	var (
		path = filepath.Join(t.TempDir(), "trace.bin")
		ops  = []mops.MemOp{
			mops.Read(0x8000_0003, 2), mops.Write(0xA000_0001, 8), mops.ClearWrite(0xA000_0010),
			mops.AlignedBlockWrite(0xA000_0100, 7), mops.BlockRead(0x9000_0005, 3),
		}
	)
	//
	require.NoError(t, WriteFile(path, ops))
	//
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(HEADER_SIZE+8*len(ops)), info.Size())
	//
	q := NewQueue()
	n, err := LoadFile(path, 2, q)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(ops)), n)
	q.Close()
	//
	check_Chunks(t, q, 0, 2, 2, 1)
	//
	var loaded []mops.MemOp
	//
	for id := range uint32(q.Len()) {
		c, _, err := q.Chunk(0, id)
		require.NoError(t, err)
		loaded = append(loaded, c.Ops...)
	}
	//
	assert.Equal(t, ops, loaded)
}

func Test_File_01(t *testing.T) {
	var (
		dir = t.TempDir()
		q   = NewQueue()
	)
	// Bad magic
	bad := filepath.Join(dir, "bad")
	require.NoError(t, os.WriteFile(bad, make([]byte, 24), 0600))
	_, err := LoadFile(bad, 4, q)
	assert.Error(t, err)
	// Count beyond end of file
	short := filepath.Join(dir, "short")
	bytes := append(FILE_MAGIC[:], 2, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	require.NoError(t, os.WriteFile(short, bytes, 0600))
	_, err = LoadFile(short, 4, q)
	assert.Error(t, err)
	// Truncated header
	trunc := filepath.Join(dir, "trunc")
	require.NoError(t, os.WriteFile(trunc, FILE_MAGIC[:], 0600))
	_, err = LoadFile(trunc, 4, q)
	assert.Error(t, err)
	//
	assert.Equal(t, uint(0), q.Len())
}

func Test_File_02(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, WriteFile(path, nil))
	//
	q := NewQueue()
	n, err := LoadFile(path, 8, q)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)
	assert.Equal(t, uint(0), q.Len())
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Chunks(t *testing.T, q *Queue, sizes ...int) {
	t.Helper()
	// first size is the starting identifier
	start := uint32(sizes[0])
	//
	for i, size := range sizes[1:] {
		c, _, err := q.Chunk(0, start+uint32(i))
		require.NoError(t, err)
		assert.Equal(t, start+uint32(i), c.ID)
		assert.Len(t, c.Ops, size)
	}
}
