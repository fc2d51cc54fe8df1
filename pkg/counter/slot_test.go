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
package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SlotArena_00(t *testing.T) {
	arena := NewSlotArena(3, 100)
	//
	a, err := arena.Anchor(0, pack(READ, 0))
	require.NoError(t, err)
	b, err := arena.Anchor(0, pack(WRITE, 0))
	require.NoError(t, err)
	// Indices strictly increase, skipping the reserved slot
	assert.Equal(t, uint32(1), a)
	assert.Equal(t, uint32(4), b)
	assert.Equal(t, uint32(6), arena.Len())
	// Append within group
	a1, err := arena.Append(a, 1, pack(INI, 1))
	require.NoError(t, err)
	a2, err := arena.Append(a1, 2, pack(INI, 2))
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 3}, []uint32{a1, a2})
	// Group overflow opens a new group
	a3, err := arena.Append(a2, 5, pack(WRITE, 0))
	require.NoError(t, err)
	assert.Equal(t, uint32(7), a3)
	assert.Equal(t, uint32(3), arena.Groups())
	//
	assert.Equal(t, Slot{a, a2, 5, pack(WRITE, 0)}, arena.Get(a3))
	//
	chain := arena.Chain(a3)
	require.Len(t, chain, 4)
	//
	for i, chunk := range []uint32{0, 1, 2, 5} {
		assert.Equal(t, chunk, chain[i].Chunk)
		assert.Equal(t, a, chain[i].Anchor)
	}
	//
	assert.Equal(t, uint32(NULL_SLOT), chain[0].Prev)
	assert.Len(t, arena.Chain(b), 1)
}

func Test_SlotArena_01(t *testing.T) {
	arena := NewSlotArena(4, 8)
	//
	_, err := arena.Anchor(0, 0)
	require.NoError(t, err)
	_, err = arena.Anchor(0, 0)
	require.NoError(t, err)
	_, err = arena.Anchor(0, 0)
	assert.ErrorIs(t, err, ErrArenaExhausted)
	//
	arena.Reset()
	assert.Equal(t, uint32(0), arena.Len())
	//
	index, err := arena.Anchor(3, pack(READ, 0))
	require.NoError(t, err)
	assert.Equal(t, uint32(1), index)
	assert.Equal(t, Slot{1, NULL_SLOT, 3, pack(READ, 0)}, arena.Get(index))
}

func Test_SlotArena_02(t *testing.T) {
	arena := NewSlotArena(1, 100)
	tip, err := arena.Anchor(0, 0)
	require.NoError(t, err)
	//
	arena.Update(tip, pack(WRITE, 2))
	//
	for i := range uint32(5) {
		tip, err = arena.Append(tip, i+1, pack(READ, 0))
		require.NoError(t, err)
	}
	// Groups of a single slot are always full
	assert.Equal(t, uint32(6), tip)
	assert.Equal(t, uint32(6), arena.Groups())
	assert.Equal(t, pack(WRITE, 2), arena.Chain(tip)[0].State)
}
