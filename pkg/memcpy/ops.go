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

import "github.com/consensys/go-memcount/pkg/mops"

// ALIGN_MASK clears the position of an address within its cell.
const ALIGN_MASK = ^uint64(0x07)

// Ops returns the sequence of aligned memory operations performed by the
// accelerated copy routine when copying count bytes from src to dst.  All reads
// precede the single block write, which covers the whole destination footprint.
// Nothing is emitted for an empty copy.
func Ops(dst, src, count uint64) []mops.MemOp {
	return Encode(dst, src, count).Ops(dst, src)
}

// Ops returns the sequence of memory operations for this encoding, where dst and
// src are the unaligned addresses of the copy.
func (p Encoding) Ops(dst, src uint64) []mops.MemOp {
	var (
		ops   []mops.MemOp
		count = p.Count()
	)
	//
	if count == 0 {
		return nil
	}
	// Head: destination cell is read for merging, along with one or two
	// source cells.
	if p.PreCount > 0 {
		ops = append(ops, mops.AlignedRead(uint32(dst&ALIGN_MASK)))
		ops = append(ops, srcRead(src&ALIGN_MASK, p.DoubleSrcPre))
	}
	// Tail: likewise
	if p.PostCount > 0 {
		tail := src + uint64(p.PreCount) + uint64(p.LoopCount)*8
		ops = append(ops, mops.AlignedRead(uint32((dst+count-1)&ALIGN_MASK)))
		ops = append(ops, srcRead(tail&ALIGN_MASK, p.DoubleSrcPost))
	}
	// Loop: an extra source cell is required when source and destination are
	// not equally aligned, since every destination cell straddles two source
	// cells.
	if p.LoopCount > 0 {
		words := p.LoopCount + uint32(b2u(p.UnalignedDstSrc))
		start := (src + uint64(p.PreCount)) & ALIGN_MASK
		ops = append(ops, mops.AlignedBlockRead(uint32(start), words))
	}
	// Single write covering all destination cells
	return append(ops, mops.AlignedBlockWrite(uint32(dst&ALIGN_MASK), uint32(p.DstWords())))
}

func srcRead(addr uint64, double bool) mops.MemOp {
	if double {
		return mops.AlignedBlockRead(uint32(addr), 2)
	}
	//
	return mops.AlignedRead(uint32(addr))
}
