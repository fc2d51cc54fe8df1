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

// WriteValue merges count bytes taken from the source words, starting at byte
// srcOffset of src[0], into the destination word pre starting at byte dstOffset.
// Words are little endian, so byte i of a word occupies bits 8i..8i+7.  A second
// source word is only consulted when the bytes straddle the boundary of src[0].
func WriteValue(dstOffset, srcOffset, count uint64, pre uint64, src []uint64) uint64 {
	var (
		mask  = (^uint64(0) << ((8 - count) * 8)) >> ((8 - dstOffset - count) * 8)
		value uint64
	)
	//
	switch {
	case dstOffset == srcOffset:
		value = src[0]
	case dstOffset < srcOffset:
		value = src[0] >> ((srcOffset - dstOffset) * 8)
		// Take remaining bytes from following word
		if srcOffset+count > 8 {
			value |= src[1] << ((8 - srcOffset + dstOffset) * 8)
		}
	default:
		value = src[0] << ((dstOffset - srcOffset) * 8)
	}
	//
	return (pre &^ mask) | (value & mask)
}

// Apply computes the destination cells written by a copy from the verification
// trace of that copy (see Trace), returning them in address order starting from
// the cell containing dst.
func Apply(p Encoding, trace []uint64) []uint64 {
	var (
		words  = make([]uint64, 0, p.DstWords())
		index  = 1
		preDst uint64
		posDst uint64
	)
	// Extract prior destination values
	if p.PreCount > 0 {
		preDst = trace[index]
		index++
	}
	//
	if p.PostCount > 0 {
		posDst = trace[index]
		index++
	}
	//
	var (
		src = trace[index:]
		// byte position within src
		pos = uint64(p.SrcOffset)
	)
	// Head
	if p.PreCount > 0 {
		words = append(words, WriteValue(uint64(p.DstOffset), pos, uint64(p.PreCount), preDst, window(src, pos)))
		pos += uint64(p.PreCount)
	}
	// Loop
	for range p.LoopCount {
		var (
			shift = (pos & 0x07) * 8
			base  = pos >> 3
			word  = src[base] >> shift
		)
		//
		if shift != 0 {
			word |= src[base+1] << (64 - shift)
		}
		//
		words = append(words, word)
		pos += 8
	}
	// Tail
	if p.PostCount > 0 {
		words = append(words, WriteValue(0, pos&0x07, uint64(p.PostCount), posDst, window(src, pos)))
	}
	//
	return words
}

// Return the (at most) two source words starting from the word holding byte
// pos, padding with zero beyond the end of the source.
func window(src []uint64, pos uint64) []uint64 {
	var (
		base = pos >> 3
		pair = []uint64{src[base], 0}
	)
	//
	if base+1 < uint64(len(src)) {
		pair[1] = src[base+1]
	}
	//
	return pair
}
