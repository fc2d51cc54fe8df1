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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Layout_00(t *testing.T) {
	layout := DefaultLayout()
	require.NoError(t, layout.Validate())
	//
	check_Classify(t, layout, ROM_ADDR, "rom", false)
	check_Classify(t, layout, INPUT_ADDR-8, "rom", false)
	check_Classify(t, layout, INPUT_ADDR, "input", false)
	check_Classify(t, layout, RAM_ADDR, "ram", true)
	check_Classify(t, layout, RAM_END-1, "ram", true)
	//
	for _, addr := range []uint32{0, ROM_ADDR - 8, RAM_END, 0xFFFF_FFF8} {
		_, err := layout.Classify(addr)
		assert.True(t, errors.Is(err, ErrAddressOutOfRange))
	}
}

func Test_Layout_01(t *testing.T) {
	assert.Error(t, Layout{{"a", 0x1000, 0x100, true}, {"b", 0x1080, 0x100, false}}.Validate())
	assert.Error(t, Layout{{"a", 0x1000, 0, true}}.Validate())
	assert.Error(t, Layout{{"a", 0x1004, 0x100, true}}.Validate())
	assert.Error(t, Layout{{"a", 0xFFFF_FF00, 0x200, true}}.Validate())
	assert.NoError(t, Layout{{"a", 0xFFFF_FF00, 0x100, true}, {"b", 0, 0x100, false}}.Validate())
}

func Test_AddressSpace_00(t *testing.T) {
	var (
		spaces = []*AddressSpace{NewAddressSpace(0, 2, 8, 4), NewAddressSpace(1, 2, 8, 4),
			NewAddressSpace(2, 2, 8, 4), NewAddressSpace(3, 2, 8, 4)}
	)
	// Every cell is owned by exactly one worker
	for addr := uint32(RAM_ADDR); addr < RAM_ADDR+1024; addr++ {
		var owners uint
		//
		for _, s := range spaces {
			if s.Owns(addr) {
				owners++
				//
				assert.Equal(t, s.Worker(), (addr/8)%4)
			}
		}
		//
		assert.Equal(t, uint(1), owners, "address 0x%08x", addr)
	}
}

func Test_AddressSpace_01(t *testing.T) {
	space := NewAddressSpace(1, 1, 4, 8)
	// Offsets map back to the aligned address
	for _, addr := range []uint32{RAM_ADDR + 8, RAM_ADDR + 0x1F, ROM_ADDR + 0x88, 0xFFFF_FFF8} {
		require.True(t, space.Owns(addr))
		//
		offset, err := space.Offset(addr)
		require.NoError(t, err)
		assert.Equal(t, addr&^7, space.Address(offset))
		// Stable
		again, _ := space.Offset(addr)
		assert.Equal(t, offset, again)
	}
	//
	assert.Equal(t, uint(3), space.NumPages())
}

func Test_AddressSpace_02(t *testing.T) {
	space := NewAddressSpace(0, 0, 4, 2)
	// Two pages of 16 cells (128 bytes) each
	_, err := space.Offset(RAM_ADDR)
	require.NoError(t, err)
	_, err = space.Offset(RAM_ADDR + 0x78)
	require.NoError(t, err)
	_, err = space.Offset(RAM_ADDR + 0x80)
	require.NoError(t, err)
	_, err = space.Offset(RAM_ADDR + 0x100)
	assert.True(t, errors.Is(err, ErrPagesExhausted))
}

func Test_AddressSpace_03(t *testing.T) {
	var (
		space = NewAddressSpace(0, 0, 4, 4)
		addrs = []uint32{RAM_ADDR + 0x98, ROM_ADDR + 0x10, RAM_ADDR + 0x88, ROM_ADDR + 0x18}
		seen  []uint32
	)
	//
	for _, addr := range addrs {
		offset, err := space.Offset(addr)
		require.NoError(t, err)
		space.Touch(offset)
	}
	// Scan visits only the touched sub-ranges, in address order
	for offset := range space.Offsets() {
		seen = append(seen, space.Address(offset))
	}
	//
	assert.Equal(t, []uint32{ROM_ADDR + 0x10, ROM_ADDR + 0x18, RAM_ADDR + 0x88, RAM_ADDR + 0x90,
		RAM_ADDR + 0x98}, seen)
	assert.Equal(t, []uint32{1, 0}, slices.Collect(space.Pages()))
}

func Test_AddressSpace_04(t *testing.T) {
	space := NewAddressSpace(0, 0, 4, 4)
	//
	_, ok := space.Find(RAM_ADDR)
	assert.False(t, ok)
	assert.Equal(t, uint(0), space.NumPages())
	//
	offset, err := space.Offset(RAM_ADDR + 0x13)
	require.NoError(t, err)
	// Other cells of a materialised page are found
	found, ok := space.Find(RAM_ADDR + 0x10)
	assert.True(t, ok)
	assert.Equal(t, offset, found)
	//
	found, ok = space.Find(RAM_ADDR + 0x40)
	assert.True(t, ok)
	assert.Equal(t, uint32(RAM_ADDR+0x40), space.Address(found))
	//
	_, ok = space.Find(RAM_ADDR + 0x80)
	assert.False(t, ok)
}

func Test_PageRange(t *testing.T) {
	r := NewPageRange()
	assert.True(t, r.IsEmpty())
	r.Touch(10)
	r.Touch(4)
	r.Touch(7)
	assert.False(t, r.IsEmpty())
	assert.Equal(t, PageRange{4, 10}, r)
}

func check_Classify(t *testing.T, layout Layout, addr uint32, name string, mutable bool) {
	region, err := layout.Classify(addr)
	//
	require.NoError(t, err)
	assert.Equal(t, name, region.Name)
	assert.Equal(t, mutable, region.Mutable)
}
