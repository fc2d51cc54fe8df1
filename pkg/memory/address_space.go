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
package memory

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// EMPTY_PAGE marks a page key which has not been materialised.
const EMPTY_PAGE = 0xFFFF_FFFF

// ErrPagesExhausted signals that more pages were touched than configured.
var ErrPagesExhausted = errors.New("address pages exhausted")

// AddressSpace maps the cell addresses owned by a single worker onto a bounded
// range of table offsets.  Cells are distributed across workers by the residue
// of their cell index, so consecutive cells belong to consecutive workers.  The
// cells of a worker are grouped into fixed-size pages, and a page is assigned
// an index (hence a range of offsets) only when first touched.  Thus, the
// offsets used by a worker are bounded by the number of pages it touches,
// rather than the size of the (sparse) address range.
type AddressSpace struct {
	// Identifier of the worker owning this space
	worker uint32
	// log2 of the number of workers
	workerBits uint
	// log2 of the number of cells in a page
	pageBits uint
	// Maximum number of pages which can be materialised
	maxPages uint32
	// Maps page keys to page indices (or EMPTY_PAGE)
	lookup []uint32
	// Maps page indices to page keys
	keys []uint32
	// Touched ranges for each page index
	ranges []PageRange
}

// NewAddressSpace constructs an empty address space for a given worker, where
// there are 2^workerBits workers, each page holds 2^pageBits cells and at most
// maxPages pages can be materialised.
func NewAddressSpace(worker uint32, workerBits uint, pageBits uint, maxPages uint32) *AddressSpace {
	if worker >= 1<<workerBits {
		panic(fmt.Sprintf("invalid worker %d (of %d)", worker, 1<<workerBits))
	} else if 3+workerBits+pageBits > 32 {
		panic(fmt.Sprintf("invalid page size (2^%d cells)", pageBits))
	}
	// Number of distinct page keys
	nkeys := 1 << (32 - 3 - workerBits - pageBits)
	lookup := make([]uint32, nkeys)
	//
	for i := range lookup {
		lookup[i] = EMPTY_PAGE
	}
	//
	return &AddressSpace{
		worker:     worker,
		workerBits: workerBits,
		pageBits:   pageBits,
		maxPages:   maxPages,
		lookup:     lookup,
	}
}

// Worker returns the identifier of the worker owning this space.
func (p *AddressSpace) Worker() uint32 {
	return p.worker
}

// PageSize returns the number of offsets in each page.
func (p *AddressSpace) PageSize() uint32 {
	return 1 << p.pageBits
}

// Owns determines whether the cell holding the given address belongs to this
// worker.
func (p *AddressSpace) Owns(addr uint32) bool {
	return (addr>>3)&((1<<p.workerBits)-1) == p.worker
}

// Offset returns the table offset of the cell holding a given address, which
// must be owned by this worker.  The page holding the cell is materialised if
// necessary, which fails if the maximum number of pages is exceeded.
func (p *AddressSpace) Offset(addr uint32) (uint32, error) {
	var (
		cell = addr >> (3 + p.workerBits)
		key  = cell >> p.pageBits
		page = p.lookup[key]
	)
	//
	if page == EMPTY_PAGE {
		if uint32(len(p.keys)) >= p.maxPages {
			return 0, fmt.Errorf("%w: worker %d touching 0x%08x (max %d pages)", ErrPagesExhausted,
				p.worker, addr, p.maxPages)
		}
		//
		page = uint32(len(p.keys))
		p.lookup[key] = page
		p.keys = append(p.keys, key)
		p.ranges = append(p.ranges, NewPageRange())
	}
	//
	return page<<p.pageBits | cell&(p.PageSize()-1), nil
}

// Find returns the table offset of the cell holding a given address, which
// must be owned by this worker, provided its page has been materialised.
func (p *AddressSpace) Find(addr uint32) (uint32, bool) {
	var (
		cell = addr >> (3 + p.workerBits)
		page = p.lookup[cell>>p.pageBits]
	)
	//
	if page == EMPTY_PAGE {
		return 0, false
	}
	//
	return page<<p.pageBits | cell&(p.PageSize()-1), true
}

// Touch records that a given offset has been used.
func (p *AddressSpace) Touch(offset uint32) {
	p.ranges[offset>>p.pageBits].Touch(offset)
}

// Address returns the (aligned) address of the cell at a given offset.
func (p *AddressSpace) Address(offset uint32) uint32 {
	var (
		key  = p.keys[offset>>p.pageBits]
		cell = key<<p.pageBits | offset&(p.PageSize()-1)
	)
	//
	return (cell<<p.workerBits | p.worker) << 3
}

// NumPages returns the number of materialised pages.
func (p *AddressSpace) NumPages() uint {
	return uint(len(p.keys))
}

// Range returns the touched range of a given page index.
func (p *AddressSpace) Range(page uint32) PageRange {
	return p.ranges[page]
}

// Pages returns the indices of all materialised pages, in increasing order of
// address.
func (p *AddressSpace) Pages() iter.Seq[uint32] {
	var order = make([]uint32, len(p.keys))
	//
	for i := range order {
		order[i] = uint32(i)
	}
	//
	slices.SortFunc(order, func(l, r uint32) int {
		return int(p.keys[l]) - int(p.keys[r])
	})
	//
	return slices.Values(order)
}

// Offsets returns every offset within the touched range of each materialised
// page, in increasing order of address.  Offsets within the range may not have
// been touched themselves.
func (p *AddressSpace) Offsets() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for page := range p.Pages() {
			var r = p.ranges[page]
			//
			if r.IsEmpty() {
				continue
			}
			//
			for offset := r.Min; offset <= r.Max; offset++ {
				if !yield(offset) {
					return
				}
			}
		}
	}
}
