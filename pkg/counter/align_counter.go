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
	"time"

	"github.com/consensys/go-memcount/pkg/chunk"
	"github.com/consensys/go-memcount/pkg/mops"
	log "github.com/sirupsen/logrus"
)

// AlignCounts holds the number of alignment fixup rows of each kind.
type AlignCounts struct {
	// Unaligned writes spanning two cells, and unaligned block words
	Full5 uint64
	// Unaligned reads spanning two cells, and unaligned writes within a cell
	Full3 uint64
	// Unaligned reads within a cell
	Full2 uint64
	// Single byte reads
	ReadByte uint64
	// Single byte clearing writes
	WriteByte uint64
}

// Add returns the sum of two sets of counts.
func (p AlignCounts) Add(o AlignCounts) AlignCounts {
	return AlignCounts{p.Full5 + o.Full5, p.Full3 + o.Full3, p.Full2 + o.Full2, p.ReadByte + o.ReadByte,
		p.WriteByte + o.WriteByte}
}

// Total returns the number of rows across all kinds.
func (p AlignCounts) Total() uint64 {
	return p.Full5 + p.Full3 + p.Full2 + p.ReadByte + p.WriteByte
}

func (p AlignCounts) String() string {
	return fmt.Sprintf("F5:%d F3:%d F2:%d RB:%d WB:%d", p.Full5, p.Full3, p.Full2, p.ReadByte, p.WriteByte)
}

// ChunkAlignCounts records the alignment counts of a single chunk.
type ChunkAlignCounts struct {
	Chunk uint32
	AlignCounts
}

// MemAlignCounter estimates the rows needed to fix up unaligned accesses.
// Unlike MemCounter, it keeps no state per cell and hence a single instance
// sees every operation.
type MemAlignCounter struct {
	totals AlignCounts
	// Counts of each chunk with a non-zero total
	chunks  []ChunkAlignCounts
	waited  time.Duration
	elapsed time.Duration
}

// NewMemAlignCounter constructs an empty counter.
func NewMemAlignCounter() *MemAlignCounter {
	return &MemAlignCounter{}
}

// Execute folds every chunk of the source, in order, until the source is
// exhausted.  The worker identifies this counter to the source.
func (p *MemAlignCounter) Execute(source chunk.Source, worker uint32) error {
	var start = time.Now()
	//
	for id := uint32(0); ; id++ {
		c, waited, err := source.Chunk(worker, id)
		//
		p.waited += waited
		//
		if errors.Is(err, chunk.ErrExhausted) {
			break
		} else if err != nil {
			return err
		} else if err = p.ExecuteChunk(c.ID, c.Ops); err != nil {
			return err
		}
	}
	//
	p.elapsed = time.Since(start)
	//
	log.Debugf("align counter finished in %s (waited %s): %s", p.elapsed, p.waited, p.totals)
	//
	return nil
}

// ExecuteChunk classifies the operations of a single chunk.  Counts are only
// added to the totals when the whole chunk is well formed.
func (p *MemAlignCounter) ExecuteChunk(chunkID uint32, ops []mops.MemOp) error {
	var counts AlignCounts
	//
	for _, op := range ops {
		var offset = op.Offset()
		//
		switch op.Flags & 0x3F {
		case mops.READ_1:
			counts.ReadByte++
		case mops.READ_2:
			fixup(offset > 6, &counts.Full3, &counts.Full2)
		case mops.READ_4:
			fixup(offset > 4, &counts.Full3, &counts.Full2)
		case mops.READ_8:
			if offset > 0 {
				counts.Full3++
			}
		case mops.CWRITE_1:
			counts.WriteByte++
		case mops.WRITE_1:
			counts.Full3++
		case mops.WRITE_2:
			fixup(offset > 6, &counts.Full5, &counts.Full3)
		case mops.WRITE_4:
			fixup(offset > 4, &counts.Full5, &counts.Full3)
		case mops.WRITE_8:
			if offset > 0 {
				counts.Full5++
			}
		default:
			switch op.Flags & mops.WIDTH_MASK {
			case mops.BLOCK_READ, mops.BLOCK_WRITE:
				if offset > 0 {
					counts.Full5 += uint64(op.Count())
				}
			case mops.ALIGNED_READ, mops.ALIGNED_WRITE, mops.ALIGNED_BLOCK_READ, mops.ALIGNED_BLOCK_WRITE:
				// no fixup required
			default:
				return fmt.Errorf("chunk %d: %w 0x%02x at 0x%08x", chunkID, mops.ErrMalformedTag, op.Flags,
					op.Addr)
			}
		}
	}
	//
	p.totals = p.totals.Add(counts)
	//
	if counts.Total() > 0 {
		p.chunks = append(p.chunks, ChunkAlignCounts{chunkID, counts})
	}
	//
	return nil
}

// Totals returns the counts over every chunk seen so far.
func (p *MemAlignCounter) Totals() AlignCounts {
	return p.totals
}

// Chunks returns the counts of every chunk requiring some fixup, in chunk
// order.
func (p *MemAlignCounter) Chunks() []ChunkAlignCounts {
	return p.chunks
}

// Summary returns the totals of this counter.
func (p *MemAlignCounter) Summary() Summary {
	return Summary{Align: p.totals, Waited: p.waited, Elapsed: p.elapsed}
}

// Increment one of two counters, depending on whether the access spans two
// cells.
func fixup(spans bool, spanning *uint64, within *uint64) {
	if spans {
		*spanning++
	} else {
		*within++
	}
}
