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
	"fmt"

	"github.com/consensys/go-memcount/pkg/mops"
)

// Memory abstracts a word addressable memory, where addresses are byte
// addresses of (aligned) 8-byte cells.
type Memory interface {
	// Read the cell at a given aligned address.
	ReadWord(addr uint64) uint64
	// Write the cell at a given aligned address.
	WriteWord(addr uint64, value uint64)
}

// Execute performs a copy of count bytes from src to dst by replaying the
// operation sequence returned by Ops against the given memory.  Every read is
// performed before the single block write, so the result is that of a correct
// move even when source and destination overlap (in either direction).
func Execute(mem Memory, dst, src, count uint64) Encoding {
	var (
		enc   = Encode(dst, src, count)
		cells = make(map[uint64]uint64)
	)
	//
	for _, op := range enc.Ops(dst, src) {
		var addr = uint64(op.Addr)
		//
		switch op.Width() {
		case mops.ALIGNED_READ, mops.ALIGNED_BLOCK_READ:
			for i := range uint64(op.Count()) {
				cells[addr+8*i] = mem.ReadWord(addr + 8*i)
			}
		case mops.ALIGNED_BLOCK_WRITE:
			words := Apply(enc, gather(enc, cells, dst, src))
			//
			for i, w := range words {
				mem.WriteWord(addr+8*uint64(i), w)
			}
		default:
			panic("unreachable")
		}
	}
	//
	return enc
}

// Trace returns the verification trace of a copy of count bytes from src to
// dst, as recorded by the accelerated routine: the packed encoding, followed by
// the prior value of the head destination cell (if any), the prior value of the
// tail destination cell (if any) and, finally, every source cell spanned by the
// copy.  The memory is not modified.
func Trace(mem Memory, dst, src, count uint64) []uint64 {
	var (
		enc   = Encode(dst, src, count)
		trace = []uint64{enc.Pack()}
	)
	//
	if enc.PreCount > 0 {
		trace = append(trace, mem.ReadWord(dst&ALIGN_MASK))
	}
	//
	if enc.PostCount > 0 {
		trace = append(trace, mem.ReadWord((dst+count-1)&ALIGN_MASK))
	}
	//
	for i := range enc.SrcWords() {
		trace = append(trace, mem.ReadWord((src&ALIGN_MASK)+8*i))
	}
	//
	return trace
}

// Assemble a verification trace from those cells read by the operation
// sequence.  Any cell not read indicates the sequence is incomplete, which is an
// internal failure.
func gather(enc Encoding, cells map[uint64]uint64, dst, src uint64) []uint64 {
	var trace = []uint64{enc.Pack()}
	//
	lookup := func(addr uint64) uint64 {
		if v, ok := cells[addr]; ok {
			return v
		}
		//
		panic(fmt.Sprintf("cell 0x%x not read by copy (dst=0x%x, src=0x%x, %s)", addr, dst, src, enc.String()))
	}
	//
	if enc.PreCount > 0 {
		trace = append(trace, lookup(dst&ALIGN_MASK))
	}
	//
	if enc.PostCount > 0 {
		trace = append(trace, lookup((dst+enc.Count()-1)&ALIGN_MASK))
	}
	//
	for i := range enc.SrcWords() {
		trace = append(trace, lookup((src&ALIGN_MASK)+8*i))
	}
	//
	return trace
}
