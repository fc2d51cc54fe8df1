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
)

// Base addresses of the known memory regions.
const (
	ROM_ADDR   = 0x8000_0000
	INPUT_ADDR = 0x9000_0000
	RAM_ADDR   = 0xA000_0000
	RAM_END    = 0xC000_0000
)

// ErrAddressOutOfRange signals an access outside of every known region.
var ErrAddressOutOfRange = errors.New("address outside memory layout")

// Region describes a contiguous range [Base, Base+Size) of the address space.
type Region struct {
	Name string
	Base uint32
	Size uint32
	// Mutable regions can be written by the program, and accesses to them are
	// subject to compaction.  All other regions are read-only (or write-once).
	Mutable bool
}

// Contains determines whether the given address lies within this region.
func (p Region) Contains(addr uint32) bool {
	return addr >= p.Base && addr-p.Base < p.Size
}

// Layout is an ordered set of disjoint regions.
type Layout []Region

// DefaultLayout returns the standard layout of read-only code, program input and
// mutable memory.
func DefaultLayout() Layout {
	return Layout{
		{"rom", ROM_ADDR, INPUT_ADDR - ROM_ADDR, false},
		{"input", INPUT_ADDR, RAM_ADDR - INPUT_ADDR, false},
		{"ram", RAM_ADDR, RAM_END - RAM_ADDR, true},
	}
}

// Classify returns the region holding the given address.
func (p Layout) Classify(addr uint32) (*Region, error) {
	for i := range p {
		if p[i].Contains(addr) {
			return &p[i], nil
		}
	}
	//
	return nil, fmt.Errorf("%w: 0x%08x", ErrAddressOutOfRange, addr)
}

// Validate checks that regions are non-empty, do not wrap and do not overlap.
func (p Layout) Validate() error {
	for i, r := range p {
		if r.Size == 0 || uint64(r.Base)+uint64(r.Size) > 1<<32 {
			return fmt.Errorf("invalid region %s [0x%08x, +0x%x)", r.Name, r.Base, r.Size)
		} else if r.Base&0x07 != 0 || r.Size&0x07 != 0 {
			return fmt.Errorf("region %s not cell aligned", r.Name)
		}
		//
		for _, s := range p[:i] {
			if uint64(r.Base) < uint64(s.Base)+uint64(s.Size) && uint64(s.Base) < uint64(r.Base)+uint64(r.Size) {
				return fmt.Errorf("regions %s and %s overlap", s.Name, r.Name)
			}
		}
	}
	//
	return nil
}
