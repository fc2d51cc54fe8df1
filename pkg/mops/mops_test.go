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
package mops

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MemOp_Pack(t *testing.T) {
	op := AlignedBlockRead(0xA000_0010, 3)
	word := op.Pack()
	//
	assert.Equal(t, uint64(0x0000_003E_A000_0010), word)
	assert.Equal(t, op, Unpack(word))
	assert.Equal(t, uint32(3), op.Count())
	assert.True(t, op.IsBlock())
	assert.False(t, op.IsWrite())
}

func Test_MemOp_Write(t *testing.T) {
	assert.True(t, Write(0x100, 4).IsWrite())
	assert.False(t, Read(0x100, 4).IsWrite())
	assert.True(t, ClearWrite(0x101).IsWrite())
	assert.True(t, ClearWrite(0x101).IsClear())
	assert.True(t, AlignedWrite(0x100).IsWrite())
	// Block counts overlap the write flag
	assert.False(t, AlignedBlockRead(0x100, 1).IsWrite())
	assert.True(t, BlockWrite(0x103, 2).IsWrite())
	assert.False(t, BlockWrite(0x103, 2).IsClear())
	assert.Equal(t, uint32(1), Write(0x100, 8).Count())
}

func Test_MemOp_Validate_00(t *testing.T) {
	valid := []MemOp{
		Read(0x101, 1), Read(0x102, 2), Read(0x103, 4), Read(0x104, 8),
		Write(0x101, 1), Write(0x102, 2), Write(0x103, 4), Write(0x104, 8),
		ClearWrite(0x105), AlignedRead(0x108), AlignedWrite(0x108),
		AlignedBlockRead(0x108, 4), AlignedBlockWrite(0x108, 4),
		BlockRead(0x10B, 4), BlockWrite(0x10B, 4),
	}
	//
	for _, op := range valid {
		require.NoError(t, op.Validate(), "operation %s", op)
	}
}

func Test_MemOp_Validate_01(t *testing.T) {
	invalid := []MemOp{
		{0x100, 0x00}, {0x100, 0x03}, {0x100, 0x09}, {0x100, 0x21},
		{0x100, 0x38}, {0x100, 0x41}, {0x104, ALIGNED_READ},
		{0x104, ALIGNED_BLOCK_WRITE | (2 << BLOCK_COUNT_SHIFT)},
	}
	//
	for _, op := range invalid {
		err := op.Validate()
		require.Error(t, err, "operation %s", op)
		assert.True(t, errors.Is(err, ErrMalformedTag))
	}
}

func Test_MemOp_String(t *testing.T) {
	assert.Equal(t, "WR4 0x00000104", Write(0x104, 4).String())
	assert.Equal(t, "CWR1 0x00000105", ClearWrite(0x105).String())
	assert.Equal(t, "ABW[2] 0xa0000000", AlignedBlockWrite(0xA000_0000, 2).String())
	assert.Equal(t, "ARD 0x00000108", AlignedRead(0x108).String())
}
