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
	"fmt"
)

// Tag layout of the flags word attached to every memory operation.  The low
// nibble selects the width (or class) of the operation, bit 4 marks a write and
// bit 5 marks a clearing write (i.e. a write which does not require the prior
// value of the cell).  For block forms, the bits from BLOCK_COUNT_SHIFT upwards
// hold the number of 8-byte words in the block, hence they overlap the write
// and clear bits.
const (
	WIDTH_MASK = 0x0F
	// WRITE_FLAG marks a write operation.
	WRITE_FLAG = 0x10
	// CLEAR_FLAG marks a write which does not depend upon the prior value.
	CLEAR_FLAG = 0x20
	// BLOCK_COUNT_SHIFT is the position of the word count in block forms.
	BLOCK_COUNT_SHIFT = 4
	// MAX_BLOCK_WORDS is the largest word count which a block form can carry.
	MAX_BLOCK_WORDS = (1 << (32 - BLOCK_COUNT_SHIFT)) - 1
)

// Single access tags.
const (
	READ_1   = 0x01
	READ_2   = 0x02
	READ_4   = 0x04
	READ_8   = 0x08
	WRITE_1  = WRITE_FLAG | READ_1
	WRITE_2  = WRITE_FLAG | READ_2
	WRITE_4  = WRITE_FLAG | READ_4
	WRITE_8  = WRITE_FLAG | READ_8
	CWRITE_1 = CLEAR_FLAG | WRITE_1
)

// Block and aligned tags (low nibble only).
const (
	BLOCK_READ          = 0x0A
	BLOCK_WRITE         = 0x0B
	ALIGNED_READ        = 0x0C
	ALIGNED_WRITE       = 0x0D
	ALIGNED_BLOCK_READ  = 0x0E
	ALIGNED_BLOCK_WRITE = 0x0F
)

// ErrMalformedTag signals an operation whose tag does not match any known
// operation.  This is a violation of the contract with the producer of the
// operation stream.
var ErrMalformedTag = errors.New("malformed operation tag")

// MemOp represents a single primitive memory operation, as produced either
// directly by the executor or by decomposing a block copy.
type MemOp struct {
	// Byte address of the operation
	Addr uint32
	// Tag describing width, direction and (for blocks) word count.
	Flags uint32
}

// Read constructs an unaligned read of a given width (1, 2, 4 or 8 bytes).
func Read(addr uint32, width uint8) MemOp {
	return MemOp{addr, uint32(width)}
}

// Write constructs an unaligned write of a given width (1, 2, 4 or 8 bytes).
func Write(addr uint32, width uint8) MemOp {
	return MemOp{addr, WRITE_FLAG | uint32(width)}
}

// ClearWrite constructs a single byte write which does not depend on the prior
// contents of the cell.
func ClearWrite(addr uint32) MemOp {
	return MemOp{addr, CWRITE_1}
}

// AlignedRead constructs a read of a whole cell.
func AlignedRead(addr uint32) MemOp {
	return MemOp{addr, ALIGNED_READ}
}

// AlignedWrite constructs a write of a whole cell.
func AlignedWrite(addr uint32) MemOp {
	return MemOp{addr, ALIGNED_WRITE}
}

// AlignedBlockRead constructs a read of n consecutive cells.
func AlignedBlockRead(addr uint32, n uint32) MemOp {
	return block(ALIGNED_BLOCK_READ, addr, n)
}

// AlignedBlockWrite constructs a write of n consecutive cells.
func AlignedBlockWrite(addr uint32, n uint32) MemOp {
	return block(ALIGNED_BLOCK_WRITE, addr, n)
}

// BlockRead constructs a read of n 8-byte words starting at a (not necessarily
// aligned) address.
func BlockRead(addr uint32, n uint32) MemOp {
	return block(BLOCK_READ, addr, n)
}

// BlockWrite constructs a write of n 8-byte words starting at a (not
// necessarily aligned) address.
func BlockWrite(addr uint32, n uint32) MemOp {
	return block(BLOCK_WRITE, addr, n)
}

func block(kind uint32, addr uint32, n uint32) MemOp {
	if n > MAX_BLOCK_WORDS {
		panic(fmt.Sprintf("block of %d words exceeds maximum", n))
	}
	//
	return MemOp{addr, kind | (n << BLOCK_COUNT_SHIFT)}
}

// Unpack a memory operation from its 64-bit wire format, where the flags occupy
// the upper 32 bits and the address the lower 32 bits.
func Unpack(word uint64) MemOp {
	return MemOp{uint32(word), uint32(word >> 32)}
}

// Pack this operation into its 64-bit wire format.
func (p MemOp) Pack() uint64 {
	return uint64(p.Flags)<<32 | uint64(p.Addr)
}

// Width returns the low nibble of the tag, which identifies either the number
// of bytes accessed (1, 2, 4 or 8) or the block / aligned class.
func (p MemOp) Width() uint8 {
	return uint8(p.Flags & WIDTH_MASK)
}

// IsBlock determines whether this is one of the block forms carrying a word
// count.
func (p MemOp) IsBlock() bool {
	switch p.Width() {
	case BLOCK_READ, BLOCK_WRITE, ALIGNED_BLOCK_READ, ALIGNED_BLOCK_WRITE:
		return true
	default:
		return false
	}
}

// IsWrite determines whether this operation writes memory.
func (p MemOp) IsWrite() bool {
	switch p.Width() {
	case BLOCK_WRITE, ALIGNED_WRITE, ALIGNED_BLOCK_WRITE:
		return true
	case BLOCK_READ, ALIGNED_READ, ALIGNED_BLOCK_READ:
		return false
	default:
		return p.Flags&WRITE_FLAG != 0
	}
}

// IsClear determines whether this is a clearing write.
func (p MemOp) IsClear() bool {
	return !p.IsBlock() && p.Flags&CLEAR_FLAG != 0
}

// Count returns the number of 8-byte words in a block operation, or 1 for any
// other operation.
func (p MemOp) Count() uint32 {
	if p.IsBlock() {
		return p.Flags >> BLOCK_COUNT_SHIFT
	}
	//
	return 1
}

// Offset returns the position of the address within its cell.
func (p MemOp) Offset() uint32 {
	return p.Addr & 0x07
}

// Validate checks that this operation is well formed.  Single accesses must
// have a width of 1, 2, 4 or 8 bytes and carry no bits beyond the write and
// clear flags, only single byte writes may clear, and aligned forms must sit on
// a cell boundary.
func (p MemOp) Validate() error {
	switch p.Width() {
	case READ_1, READ_2, READ_4, READ_8:
		if p.Flags>>6 != 0 || (p.Flags&CLEAR_FLAG != 0 && p.Flags != CWRITE_1) {
			return p.malformed()
		}
	case ALIGNED_READ, ALIGNED_WRITE, ALIGNED_BLOCK_READ, ALIGNED_BLOCK_WRITE:
		if p.Addr&0x07 != 0 {
			return p.malformed()
		}
	case BLOCK_READ, BLOCK_WRITE:
		// any word count is permitted
	default:
		return p.malformed()
	}
	//
	return nil
}

func (p MemOp) malformed() error {
	return fmt.Errorf("%w 0x%02x at 0x%08x", ErrMalformedTag, p.Flags, p.Addr)
}

var labels = [16]string{"NOP", "RD1", "RD2", "???", "RD4", "???", "???", "???", "RD8", "???",
	"BR", "BW", "ARD", "AWR", "ABR", "ABW"}

func (p MemOp) String() string {
	var label = labels[p.Width()]
	//
	switch {
	case p.IsBlock():
		return fmt.Sprintf("%s[%d] 0x%08x", label, p.Count(), p.Addr)
	case p.Flags == CWRITE_1:
		return fmt.Sprintf("CWR1 0x%08x", p.Addr)
	case p.Width() <= READ_8 && p.IsWrite():
		return fmt.Sprintf("WR%s 0x%08x", label[2:], p.Addr)
	default:
		return fmt.Sprintf("%s 0x%08x", label, p.Addr)
	}
}
