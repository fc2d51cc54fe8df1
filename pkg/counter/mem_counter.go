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
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/consensys/go-memcount/pkg/chunk"
	"github.com/consensys/go-memcount/pkg/memory"
	"github.com/consensys/go-memcount/pkg/mops"
	log "github.com/sirupsen/logrus"
)

// Entry is the table entry of a single cell.
type Entry struct {
	// Slot of the most recent chunk touching the cell, or NULL_SLOT if the
	// cell was never touched.
	Tip uint32
	// Rows charged by every slot of the chain except the tip.
	Rows uint64
}

// AddrCount associates a cell address with the number of rows it requires.
type AddrCount struct {
	Addr uint32
	Rows uint64
}

// ChunkCount associates a chunk with the number of rows a cell requires within
// it.
type ChunkCount struct {
	Chunk uint32
	Rows  uint64
}

// MemCounter counts the rows required by every cell owned by a single worker.
// A worker owns the cells whose index is congruent to its identifier modulo the
// number of workers, hence workers never share a cell and need no
// synchronisation between them.
type MemCounter struct {
	id     uint32
	config Config
	space  *memory.AddressSpace
	arena  *SlotArena
	// Table of entries for each materialised page
	table [][]Entry
	// Number of cells touched
	cells uint
	// Number of chunks processed
	chunks uint32
	// Statistics
	waited     time.Duration
	elapsed    time.Duration
	firstChunk time.Duration
}

// NewMemCounter constructs a counter for a given worker, where the
// configuration is assumed to be valid.
func NewMemCounter(id uint32, config Config) *MemCounter {
	return &MemCounter{
		id:     id,
		config: config,
		space:  memory.NewAddressSpace(id, config.WorkerBits(), config.PageBits, config.MaxPages),
		arena:  NewSlotArena(config.GroupSize, config.MaxSlots),
	}
}

// Id returns the identifier of the worker owning this counter.
func (p *MemCounter) Id() uint32 {
	return p.id
}

// Execute folds every chunk of the source, in order, until the source is
// exhausted.
func (p *MemCounter) Execute(source chunk.Source) error {
	var start = time.Now()
	//
	for id := uint32(0); ; id++ {
		c, waited, err := source.Chunk(p.id, id)
		//
		p.waited += waited
		//
		if errors.Is(err, chunk.ErrExhausted) {
			break
		} else if err != nil {
			return err
		} else if c.ID != id {
			return fmt.Errorf("worker %d expected chunk %d, got %d", p.id, id, c.ID)
		} else if err = p.ExecuteChunk(c.ID, c.Ops); err != nil {
			return err
		}
		//
		if id == 0 {
			p.firstChunk = time.Since(start)
		}
	}
	//
	p.elapsed = time.Since(start)
	//
	log.Debugf("worker %d counted %d cells over %d chunks in %s (waited %s)", p.id, p.cells, p.chunks,
		p.elapsed, p.waited)
	//
	return nil
}

// ExecuteChunk folds the operations of a single chunk.  Chunks must be given in
// increasing order of identifier.
func (p *MemCounter) ExecuteChunk(chunkID uint32, ops []mops.MemOp) error {
	for _, op := range ops {
		var (
			addr  = op.Addr
			write = op.IsWrite()
			err   error
		)
		//
		if err = op.Validate(); err != nil {
			return fmt.Errorf("chunk %d: %w", chunkID, err)
		}
		//
		switch op.Width() {
		case mops.READ_1:
			err = p.touch(addr&^7, 1, chunkID, false, write)
		case mops.READ_2, mops.READ_4, mops.READ_8:
			var (
				width   = uint32(op.Width())
				aligned = width == 8 && addr&7 == 0
				// cells spanned by the access
				cells = (addr&7 + width + 7) / 8
			)
			//
			err = p.touch(addr&^7, cells, chunkID, aligned, write)
		case mops.ALIGNED_READ, mops.ALIGNED_WRITE, mops.ALIGNED_BLOCK_READ, mops.ALIGNED_BLOCK_WRITE:
			err = p.touch(addr, op.Count(), chunkID, true, write)
		case mops.BLOCK_READ, mops.BLOCK_WRITE:
			if addr&7 == 0 {
				err = p.touch(addr, op.Count(), chunkID, true, write)
			} else {
				// each unaligned word straddles two cells
				err = p.touch(addr&^7, op.Count()+1, chunkID, false, write)
			}
		default:
			panic("unreachable")
		}
		//
		if err != nil {
			return fmt.Errorf("chunk %d: %s: %w", chunkID, op, err)
		}
	}
	//
	p.chunks = max(p.chunks, chunkID+1)
	//
	return nil
}

// Touch every owned cell within n consecutive cells from a given (aligned)
// address.
func (p *MemCounter) touch(base uint32, n uint32, chunkID uint32, aligned, write bool) error {
	var (
		stride = uint64(8) << p.config.WorkerBits()
		end    = uint64(base) + uint64(n)*8
		// first cell at or above base owned by this worker
		addr = uint64(base)&^(stride-1) | uint64(p.id)<<3
	)
	//
	if addr < uint64(base) {
		addr += stride
	}
	//
	for ; addr < end; addr += stride {
		if addr >= 1<<32 {
			return fmt.Errorf("%w: access wraps address space", memory.ErrAddressOutOfRange)
		} else if err := p.IncrCounter(uint32(addr), chunkID, aligned, write); err != nil {
			return err
		}
	}
	//
	return nil
}

// IncrCounter accounts for a single access to an owned cell.  The first access
// to a cell anchors its chain, further accesses within the same chunk update
// the tip of the chain, and the first access within a later chunk closes the
// tip and appends a new slot.
func (p *MemCounter) IncrCounter(addr uint32, chunkID uint32, aligned, write bool) error {
	region, err := p.config.Layout.Classify(addr)
	if err != nil {
		return err
	}
	//
	offset, err := p.space.Offset(addr)
	if err != nil {
		return err
	}
	//
	var (
		access = Access{region.Mutable, aligned, write}
		entry  = p.entry(offset)
	)
	//
	if entry.Tip == NULL_SLOT {
		state, err := Init(access)
		if err != nil {
			return err
		}
		//
		if entry.Tip, err = p.arena.Anchor(chunkID, state); err != nil {
			return err
		}
		//
		p.space.Touch(offset)
		p.cells++
		//
		return nil
	}
	//
	tip := p.arena.Get(entry.Tip)
	//
	switch {
	case tip.Chunk == chunkID:
		state, err := Step(tip.State, access)
		if err != nil {
			return err
		}
		//
		p.arena.Update(entry.Tip, state)
		//
		return nil
	case tip.Chunk > chunkID:
		return fmt.Errorf("%w: chunk %d follows chunk %d", ErrInvalidState, chunkID, tip.Chunk)
	}
	// Close the tip, whose pending access can no longer be paired.
	state, err := Init(access)
	if err != nil {
		return err
	}
	//
	next, err := p.arena.Append(entry.Tip, chunkID, state)
	if err != nil {
		return err
	}
	//
	entry.Rows += tip.State.Rows()
	entry.Tip = next
	//
	return nil
}

func (p *MemCounter) entry(offset uint32) *Entry {
	var page = offset >> p.config.PageBits
	//
	for uint32(len(p.table)) <= page {
		p.table = append(p.table, make([]Entry, p.space.PageSize()))
	}
	//
	return &p.table[page][offset&(p.space.PageSize()-1)]
}

// lookup returns the entry of an owned address, or nil if it was never
// touched.
func (p *MemCounter) lookup(addr uint32) *Entry {
	if !p.space.Owns(addr) {
		return nil
	} else if offset, ok := p.space.Find(addr); ok {
		if e := p.entry(offset); e.Tip != NULL_SLOT {
			return e
		}
	}
	//
	return nil
}

// Rows returns the total number of rows required by the cell holding a given
// address, including the row of any access still pending.
func (p *MemCounter) Rows(addr uint32) uint64 {
	if e := p.lookup(addr); e != nil {
		return e.Rows + p.arena.Get(e.Tip).State.Rows()
	}
	//
	return 0
}

// ChunkRows returns the rows required by the cell holding a given address
// within each chunk touching it, in chunk order.
func (p *MemCounter) ChunkRows(addr uint32) []ChunkCount {
	var counts []ChunkCount
	//
	if e := p.lookup(addr); e != nil {
		for _, slot := range p.arena.Chain(e.Tip) {
			counts = append(counts, ChunkCount{slot.Chunk, slot.State.Rows()})
		}
	}
	//
	return counts
}

// FirstChunk returns the first chunk touching the cell holding a given
// address, or false if it was never touched.
func (p *MemCounter) FirstChunk(addr uint32) (uint32, bool) {
	if e := p.lookup(addr); e != nil {
		anchor := p.arena.Get(e.Tip).Anchor
		return p.arena.Get(anchor).Chunk, true
	}
	//
	return 0, false
}

// All iterates every touched cell in increasing order of address, along with
// its total number of rows.
func (p *MemCounter) All() iter.Seq[AddrCount] {
	return func(yield func(AddrCount) bool) {
		for offset := range p.space.Offsets() {
			var e = p.table[offset>>p.config.PageBits][offset&(p.space.PageSize()-1)]
			//
			if e.Tip == NULL_SLOT {
				continue
			}
			//
			rows := e.Rows + p.arena.Get(e.Tip).State.Rows()
			//
			if !yield(AddrCount{p.space.Address(offset), rows}) {
				return
			}
		}
	}
}

// Summary returns the totals of this counter.
func (p *MemCounter) Summary() Summary {
	var summary = Summary{
		Workers:    1,
		Cells:      uint64(p.cells),
		Chunks:     p.chunks,
		Slots:      uint64(p.arena.Len()),
		Pages:      uint64(p.space.NumPages()),
		Waited:     p.waited,
		Elapsed:    p.elapsed,
		FirstChunk: p.firstChunk,
	}
	//
	for ac := range p.All() {
		summary.Rows += ac.Rows
	}
	//
	return summary
}
