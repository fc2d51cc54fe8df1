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
package memcpy

import (
	"encoding/binary"
	"testing"

	"github.com/consensys/go-memcount/pkg/mops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testBase = uint64(0xA000_0000)
	// distance between source and destination areas for non-overlapping copies
	testGap = 1024
)

func Test_Encode_00(t *testing.T) {
	for dstOffset := range uint64(8) {
		for srcOffset := range uint64(8) {
			for count := range uint64(128) {
				check_Encode_Lengths(t, testBase+dstOffset, testBase+testGap+srcOffset, count)
			}
		}
	}
}

func Test_Encode_01(t *testing.T) {
	enc := Encode(testBase+3, testBase+testGap+5, 10)
	//
	assert.Equal(t, uint8(5), enc.PreCount)
	assert.Equal(t, uint32(0), enc.LoopCount)
	assert.Equal(t, uint8(5), enc.PostCount)
	assert.Equal(t, uint8(2), enc.PreWrites)
	assert.True(t, enc.DoubleSrcPre)
	assert.False(t, enc.DoubleSrcPost)
	assert.True(t, enc.Src64IncByPre)
	assert.True(t, enc.UnalignedDstSrc)
	assert.Equal(t, uint8(2), enc.ExtraSrcReads)
}

func Test_Encode_02(t *testing.T) {
	// Empty copies
	for dstOffset := range uint64(8) {
		for srcOffset := range uint64(8) {
			enc := Encode(testBase+dstOffset, testBase+srcOffset, 0)
			//
			assert.Zero(t, enc.PreCount)
			assert.Zero(t, enc.PostCount)
			assert.Zero(t, enc.LoopCount)
			assert.Zero(t, enc.PreWrites)
			assert.Zero(t, enc.ExtraSrcReads)
			assert.False(t, enc.DoubleSrcPre || enc.DoubleSrcPost || enc.Src64IncByPre)
			assert.Empty(t, enc.Ops(testBase+dstOffset, testBase+srcOffset))
		}
	}
}

func Test_Encode_03(t *testing.T) {
	// Fully aligned copies are pure block operations
	enc := Encode(testBase, testBase+testGap, 64)
	//
	assert.Equal(t, Encoding{LoopCount: 8}, enc)
	assert.Equal(t, []mops.MemOp{
		mops.AlignedBlockRead(uint32(testBase+testGap), 8),
		mops.AlignedBlockWrite(uint32(testBase), 8),
	}, enc.Ops(testBase, testBase+testGap))
}

func Test_Encode_Pack(t *testing.T) {
	enc := Encode(testBase+3, testBase+testGap+5, 10)
	word := enc.Pack()
	//
	assert.Equal(t, uint64(0xA00E_6BAD), word)
	assert.Equal(t, enc, Unpack(word))
	// Large copy
	enc = Encode(testBase+1, testBase+7, 1<<30)
	assert.Equal(t, enc, Unpack(enc.Pack()))
	assert.Equal(t, uint64(1<<30), enc.Count())
	// Copy of pre_count sits directly below loop_count
	assert.Equal(t, enc.Count()-uint64(enc.PostCount), enc.Pack()>>PRE_COUNT_COPY_SHIFT)
}

func Test_FastEncode(t *testing.T) {
	for dst := range uint64(64) {
		for src := range uint64(64) {
			for count := range uint64(300) {
				expected := Encode(dst, src, count).Pack()
				actual := FastEncode(dst, src, count)
				//
				if expected != actual {
					t.Fatalf("encoding mismatch (dst=%d, src=%d, count=%d): 0x%016x vs 0x%016x",
						dst, src, count, expected, actual)
				}
			}
		}
	}
}

func Test_Ops_00(t *testing.T) {
	var (
		dst = testBase + 0x1003
		src = testBase + 0x2005
	)
	//
	assert.Equal(t, []mops.MemOp{
		mops.AlignedRead(uint32(testBase + 0x1000)),
		mops.AlignedBlockRead(uint32(testBase+0x2000), 2),
		mops.AlignedRead(uint32(testBase + 0x1008)),
		mops.AlignedRead(uint32(testBase + 0x2008)),
		mops.AlignedBlockWrite(uint32(testBase+0x1000), 2),
	}, Ops(dst, src, 10))
}

func Test_Ops_01(t *testing.T) {
	var (
		dst = testBase + 0x1002
		src = testBase + 0x2007
	)
	// pre=6 (double), loop=3, post=4 (double)
	assert.Equal(t, []mops.MemOp{
		mops.AlignedRead(uint32(testBase + 0x1000)),
		mops.AlignedBlockRead(uint32(testBase+0x2000), 2),
		mops.AlignedRead(uint32(testBase + 0x1020)),
		mops.AlignedBlockRead(uint32(testBase+0x2020), 2),
		mops.AlignedBlockRead(uint32(testBase+0x2008), 4),
		mops.AlignedBlockWrite(uint32(testBase+0x1000), 5),
	}, Ops(dst, src, 34))
	//
	enc := Encode(dst, src, 34)
	assert.Equal(t, uint8(6), enc.PreCount)
	assert.Equal(t, uint32(3), enc.LoopCount)
	assert.Equal(t, uint8(4), enc.PostCount)
	assert.True(t, enc.DoubleSrcPre)
	assert.True(t, enc.DoubleSrcPost)
}

func Test_WriteValue(t *testing.T) {
	var (
		src0 = uint64(0x0102030405060708)
		src1 = uint64(0x1112131415161718)
		pre  = uint64(0xAABBCCDDEEFF0011)
		srcs = []uint64{src0, src1}
	)
	//
	assert.Equal(t, src0, WriteValue(0, 0, 8, pre, srcs))
	assert.Equal(t, uint64(0xAABBCCDDEEFF0008), WriteValue(0, 0, 1, pre, srcs))
	assert.Equal(t, uint64(0x08BBCCDDEEFF0011), WriteValue(7, 0, 1, pre, srcs))
	assert.Equal(t, uint64(0xAABBCCDDEEFF1801), WriteValue(0, 7, 2, pre, srcs))
	// Exhaustively compare against byte-wise copy
	for dstOffset := range uint64(8) {
		for count := uint64(1); count <= 8-dstOffset; count++ {
			for srcOffset := range uint64(8) {
				expected := bytewiseWriteValue(dstOffset, srcOffset, count, pre, srcs)
				assert.Equal(t, expected, WriteValue(dstOffset, srcOffset, count, pre, srcs))
			}
		}
	}
}

func Test_Execute_00(t *testing.T) {
	for dstOffset := range uint64(8) {
		for srcOffset := range uint64(8) {
			for count := range uint64(128) {
				src := testBase + testGap + srcOffset
				dst := src + ((count+7)&ALIGN_MASK + testGap) - srcOffset + dstOffset
				check_Execute(t, dst, src, count)
			}
		}
	}
}

func Test_Execute_01(t *testing.T) {
	// Overlapping copies in both directions
	for srcOffset := range uint64(8) {
		for count := range uint64(80) {
			for overlap := int64(-24); overlap <= 24; overlap++ {
				src := testBase + testGap + srcOffset
				check_Execute(t, uint64(int64(src)+overlap), src, count)
			}
		}
	}
}

func Test_Trace_00(t *testing.T) {
	for dstOffset := range uint64(8) {
		for srcOffset := range uint64(8) {
			for count := range uint64(40) {
				var (
					mem   = newTestMemory(testBase, 4*testGap)
					src   = testBase + testGap + srcOffset
					dst   = testBase + 2*testGap + dstOffset
					enc   = Encode(dst, src, count)
					trace = Trace(mem, dst, src, count)
				)
				//
				require.Equal(t, enc.Pack(), trace[0])
				require.Equal(t, 1+int(enc.PreWrites)+int(enc.SrcWords()), len(trace))
				//
				if count > 0 {
					words := Apply(enc, trace)
					// Compare with actual copy
					Execute(mem, dst, src, count)
					//
					for i, w := range words {
						require.Equal(t, mem.ReadWord((dst&ALIGN_MASK)+8*uint64(i)), w)
					}
				}
			}
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

type testMemory struct {
	base  uint64
	bytes []byte
}

// Construct memory filled with a position-dependent pattern
func newTestMemory(base uint64, size uint64) *testMemory {
	bytes := make([]byte, size)
	//
	for i := range bytes {
		bytes[i] = byte(0x10 + i + (i >> 8))
	}
	//
	return &testMemory{base, bytes}
}

func (p *testMemory) ReadWord(addr uint64) uint64 {
	return binary.LittleEndian.Uint64(p.bytes[addr-p.base:])
}

func (p *testMemory) WriteWord(addr uint64, value uint64) {
	binary.LittleEndian.PutUint64(p.bytes[addr-p.base:], value)
}

func check_Encode_Lengths(t *testing.T, dst, src, count uint64) {
	enc := Encode(dst, src, count)
	//
	if enc.Count() != count {
		t.Errorf("invalid split for (dst=0x%x, src=0x%x, count=%d): %s", dst, src, count, enc.String())
	} else if enc.PreCount >= 8 || enc.PostCount >= 8 {
		t.Errorf("invalid head or tail for (dst=0x%x, src=0x%x, count=%d): %s", dst, src, count, enc.String())
	} else if (enc.PreCount > 0) != (dst&0x07 != 0 && count > 0) {
		t.Errorf("unexpected head for (dst=0x%x, src=0x%x, count=%d): %s", dst, src, count, enc.String())
	} else if count == 0 && (enc.PreCount != 0 || enc.PostCount != 0 || enc.LoopCount != 0) {
		t.Errorf("non-empty encoding for empty copy: %s", enc.String())
	} else if enc.SrcWords() != srcWords(src, count) {
		t.Errorf("invalid source words for (dst=0x%x, src=0x%x, count=%d): %s", dst, src, count, enc.String())
	}
}

func srcWords(src, count uint64) uint64 {
	if count == 0 {
		return 0
	}
	//
	return ((src+count-1)>>3 - src>>3) + 1
}

func check_Execute(t *testing.T, dst, src, count uint64) {
	var (
		mem      = newTestMemory(testBase, 4*testGap)
		original = append([]byte{}, mem.bytes...)
		dstIndex = dst - testBase
		srcIndex = src - testBase
	)
	//
	Execute(mem, dst, src, count)
	//
	for i := range uint64(len(mem.bytes)) {
		var expected = original[i]
		//
		if i >= dstIndex && i < dstIndex+count {
			expected = original[srcIndex+i-dstIndex]
		}
		//
		if mem.bytes[i] != expected {
			t.Fatalf("copy (dst=0x%x, src=0x%x, count=%d) mismatch at 0x%x: 0x%02x vs 0x%02x",
				dst, src, count, testBase+i, expected, mem.bytes[i])
		}
	}
}

func bytewiseWriteValue(dstOffset, srcOffset, count uint64, pre uint64, src []uint64) uint64 {
	var (
		result = binary.LittleEndian.AppendUint64(nil, pre)
		bytes  []byte
	)
	//
	for _, w := range src {
		bytes = binary.LittleEndian.AppendUint64(bytes, w)
	}
	//
	copy(result[dstOffset:dstOffset+count], bytes[srcOffset:srcOffset+count])
	//
	return binary.LittleEndian.Uint64(result)
}
