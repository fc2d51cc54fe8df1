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

import "fmt"

// Bit positions of the fields within a packed encoding.  These must agree
// exactly with the accelerated copy routine, since packed encodings are
// compared directly against it.
//
//	field              bits    position
//	pre_count            3       0-2
//	post_count           3       3-5
//	pre_writes           2       6-7
//	dst_offset           3       8-10
//	src_offset           3      11-13
//	double_src_pre       1      14
//	double_src_post      1      15
//	extra_src_reads      2      16-17
//	src64_inc_by_pre     1      18
//	unaligned_dst_src    1      19
//	pre_count (copy)     3      29-31
//	loop_count          32      32-63
const (
	PRE_COUNT_SHIFT         = 0
	POST_COUNT_SHIFT        = 3
	PRE_WRITES_SHIFT        = 6
	DST_OFFSET_SHIFT        = 8
	SRC_OFFSET_SHIFT        = 11
	DOUBLE_SRC_PRE_SHIFT    = 14
	DOUBLE_SRC_POST_SHIFT   = 15
	EXTRA_SRC_READS_SHIFT   = 16
	SRC64_INC_BY_PRE_SHIFT  = 18
	UNALIGNED_DST_SRC_SHIFT = 19
	PRE_COUNT_COPY_SHIFT    = 29
	LOOP_COUNT_SHIFT        = 32
)

// Encoding describes how a (possibly misaligned) copy of count bytes from src
// to dst decomposes into a head of partial-cell bytes, a loop of whole 8-byte
// cells and a tail of partial-cell bytes, together with the source reads
// required to feed them.
type Encoding struct {
	// Number of bytes copied into the (partial) first destination cell.
	PreCount uint8
	// Number of bytes copied into the (partial) last destination cell.
	PostCount uint8
	// Number of partial destination cells needing a read-modify-write.
	PreWrites uint8
	// Position of dst within its cell.
	DstOffset uint8
	// Position of src within its cell.
	SrcOffset uint8
	// Whether the head reads from two source cells.
	DoubleSrcPre bool
	// Whether the tail reads from two source cells.
	DoubleSrcPost bool
	// Source cells read beyond LoopCount.
	ExtraSrcReads uint8
	// Whether the head consumes the whole first source cell, such that the
	// loop starts from the following one.
	Src64IncByPre bool
	// Whether source and destination have different offsets within their
	// cells.
	UnalignedDstSrc bool
	// Number of whole destination cells written by the loop.
	LoopCount uint32
}

// Encode computes the encoding of a copy of count bytes from src to dst.
func Encode(dst, src, count uint64) Encoding {
	var (
		dstOffset                      = dst & 0x07
		srcOffset                      = src & 0x07
		preCount, loopCount, postCount uint64
		extraSrcReads                  uint64
	)
	// Split into head, loop and tail
	if dstOffset > 0 {
		preCount = 8 - dstOffset
		//
		if preCount >= count {
			preCount = count
		} else {
			pending := count - preCount
			loopCount, postCount = pending>>3, pending&0x07
		}
	} else {
		loopCount, postCount = count>>3, count&0x07
	}
	// Determine number of source cells covered, beyond the loop.
	if count > 0 {
		extraSrcReads = (((src + count - 1) >> 3) - (src >> 3) + 1) - loopCount
	}
	//
	srcOffsetAfterPre := (srcOffset + preCount) & 0x07
	//
	return Encoding{
		PreCount:        uint8(preCount),
		PostCount:       uint8(postCount),
		PreWrites:       b2u(preCount > 0) + b2u(postCount > 0),
		DstOffset:       uint8(dstOffset),
		SrcOffset:       uint8(srcOffset),
		DoubleSrcPre:    srcOffset+preCount > 8,
		DoubleSrcPost:   srcOffsetAfterPre+postCount > 8,
		ExtraSrcReads:   uint8(extraSrcReads),
		Src64IncByPre:   preCount > 0 && srcOffset+preCount >= 8,
		UnalignedDstSrc: srcOffset != dstOffset,
		LoopCount:       uint32(loopCount),
	}
}

// Unpack an encoding from its 64-bit packed form.  The duplicate copy of
// pre_count is ignored.
func Unpack(word uint64) Encoding {
	return Encoding{
		PreCount:        uint8(word>>PRE_COUNT_SHIFT) & 0x07,
		PostCount:       uint8(word>>POST_COUNT_SHIFT) & 0x07,
		PreWrites:       uint8(word>>PRE_WRITES_SHIFT) & 0x03,
		DstOffset:       uint8(word>>DST_OFFSET_SHIFT) & 0x07,
		SrcOffset:       uint8(word>>SRC_OFFSET_SHIFT) & 0x07,
		DoubleSrcPre:    (word>>DOUBLE_SRC_PRE_SHIFT)&1 != 0,
		DoubleSrcPost:   (word>>DOUBLE_SRC_POST_SHIFT)&1 != 0,
		ExtraSrcReads:   uint8(word>>EXTRA_SRC_READS_SHIFT) & 0x03,
		Src64IncByPre:   (word>>SRC64_INC_BY_PRE_SHIFT)&1 != 0,
		UnalignedDstSrc: (word>>UNALIGNED_DST_SRC_SHIFT)&1 != 0,
		LoopCount:       uint32(word >> LOOP_COUNT_SHIFT),
	}
}

// Pack this encoding into its 64-bit form.  The pre_count is stored twice: the
// copy at bit 29 sits immediately below loop_count, such that the upper bits
// read as loop_count*8 + pre_count when shifted down by 29.
func (p Encoding) Pack() uint64 {
	return uint64(p.PreCount)<<PRE_COUNT_SHIFT |
		uint64(p.PostCount)<<POST_COUNT_SHIFT |
		uint64(p.PreWrites)<<PRE_WRITES_SHIFT |
		uint64(p.DstOffset)<<DST_OFFSET_SHIFT |
		uint64(p.SrcOffset)<<SRC_OFFSET_SHIFT |
		uint64(b2u(p.DoubleSrcPre))<<DOUBLE_SRC_PRE_SHIFT |
		uint64(b2u(p.DoubleSrcPost))<<DOUBLE_SRC_POST_SHIFT |
		uint64(p.ExtraSrcReads)<<EXTRA_SRC_READS_SHIFT |
		uint64(b2u(p.Src64IncByPre))<<SRC64_INC_BY_PRE_SHIFT |
		uint64(b2u(p.UnalignedDstSrc))<<UNALIGNED_DST_SRC_SHIFT |
		uint64(p.PreCount)<<PRE_COUNT_COPY_SHIFT |
		uint64(p.LoopCount)<<LOOP_COUNT_SHIFT
}

// Count returns the total number of bytes copied.
func (p Encoding) Count() uint64 {
	return uint64(p.LoopCount)*8 + uint64(p.PreCount) + uint64(p.PostCount)
}

// SrcWords returns the number of source cells spanned by the copy.
func (p Encoding) SrcWords() uint64 {
	return uint64(p.LoopCount) + uint64(p.ExtraSrcReads)
}

// DstWords returns the number of destination cells written by the copy.
func (p Encoding) DstWords() uint64 {
	return uint64(p.LoopCount) + uint64(p.PreWrites)
}

// LoopSrcOffset returns the position within its cell of the first source byte
// consumed by the loop (and, hence, by the tail).
func (p Encoding) LoopSrcOffset() uint8 {
	return (p.SrcOffset + p.PreCount) & 0x07
}

// PreSrcReads returns the number of source cells read for the head.
func (p Encoding) PreSrcReads() uint8 {
	return b2u(p.PreCount > 0) + b2u(p.DoubleSrcPre)
}

// PostSrcReads returns the number of source cells read for the tail.
func (p Encoding) PostSrcReads() uint8 {
	return b2u(p.PostCount > 0) + b2u(p.DoubleSrcPost)
}

func (p Encoding) String() string {
	return fmt.Sprintf("loop_count: %d|pre_writes: %d|dst_offset: %d|src_offset: %d|pre_count: %d|"+
		"post_count: %d|extra_src_reads: %d", p.LoopCount, p.PreWrites, p.DstOffset, p.SrcOffset,
		p.PreCount, p.PostCount, p.ExtraSrcReads)
}

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	//
	return 0
}
