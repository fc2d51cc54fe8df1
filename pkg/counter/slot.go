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
	"slices"
)

// ErrArenaExhausted signals that the slot arena is too small for the trace
// being counted.
var ErrArenaExhausted = errors.New("slot arena exhausted")

// NULL_SLOT is the index of the reserved slot, which marks the absence of a
// slot.
const NULL_SLOT = 0

// Slot records the state of a single cell within a single chunk.  The slots of
// a cell form a chain, where each slot refers to the slot of the previous chunk
// in which the cell was touched.
type Slot struct {
	// First slot of the chain
	Anchor uint32
	// Previous slot of the chain, or NULL_SLOT for the anchor.
	Prev uint32
	// Chunk to which this slot belongs
	Chunk uint32
	// Automaton state of the cell within the chunk
	State State
}

// SlotArena is a flat, bump allocated array of slots.  Each chain is given a
// group of consecutive slots, and subsequent slots of the chain are taken from
// that group until it is full, at which point a fresh group is allocated.
// Slots are never freed individually.
type SlotArena struct {
	groupSize uint32
	maxSlots  uint32
	slots     []Slot
}

// NewSlotArena constructs an empty arena holding at most maxSlots slots,
// allocated in groups of groupSize slots.
func NewSlotArena(groupSize uint32, maxSlots uint32) *SlotArena {
	if groupSize == 0 {
		panic("invalid slot group size")
	}
	//
	return &SlotArena{groupSize, maxSlots, []Slot{{}}}
}

// Anchor starts a new chain, returning the index of its first slot.
func (p *SlotArena) Anchor(chunk uint32, state State) (uint32, error) {
	index, err := p.group()
	if err != nil {
		return NULL_SLOT, err
	}
	//
	p.slots[index] = Slot{index, NULL_SLOT, chunk, state}
	//
	return index, nil
}

// Append extends the chain whose last slot is tip, returning the index of the
// new slot.
func (p *SlotArena) Append(tip uint32, chunk uint32, state State) (uint32, error) {
	var (
		anchor = p.slots[tip].Anchor
		index  = tip + 1
	)
	//
	if p.lastOfGroup(tip) {
		var err error
		//
		if index, err = p.group(); err != nil {
			return NULL_SLOT, err
		}
	}
	//
	p.slots[index] = Slot{anchor, tip, chunk, state}
	//
	return index, nil
}

// Get returns the slot at a given index.
func (p *SlotArena) Get(index uint32) Slot {
	return p.slots[index]
}

// Update the state of the slot at a given index.
func (p *SlotArena) Update(index uint32, state State) {
	p.slots[index].State = state
}

// Chain returns the slots of the chain ending at a given tip, from anchor to
// tip.
func (p *SlotArena) Chain(tip uint32) []Slot {
	var chain []Slot
	//
	for index := tip; index != NULL_SLOT; index = p.slots[index].Prev {
		chain = append(chain, p.slots[index])
	}
	//
	slices.Reverse(chain)
	//
	return chain
}

// Len returns the number of slots allocated, including unused slots within
// groups.
func (p *SlotArena) Len() uint32 {
	return uint32(len(p.slots) - 1)
}

// Groups returns the number of groups allocated.
func (p *SlotArena) Groups() uint32 {
	return p.Len() / p.groupSize
}

// Reset discards every slot.
func (p *SlotArena) Reset() {
	p.slots = p.slots[:1]
}

func (p *SlotArena) lastOfGroup(index uint32) bool {
	return (index-1)%p.groupSize == p.groupSize-1
}

func (p *SlotArena) group() (uint32, error) {
	var index = uint32(len(p.slots))
	//
	if uint64(p.Len())+uint64(p.groupSize) > uint64(p.maxSlots) {
		return NULL_SLOT, fmt.Errorf("%w: %d slots in use (max %d)", ErrArenaExhausted, p.Len(), p.maxSlots)
	}
	//
	p.slots = append(p.slots, make([]Slot, p.groupSize)...)
	//
	return index, nil
}
