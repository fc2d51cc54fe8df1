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
	"math/bits"

	"github.com/consensys/go-memcount/pkg/memory"
)

// Default sizing of the counters.
const (
	DEFAULT_WORKERS    = 4
	DEFAULT_PAGE_BITS  = 21
	DEFAULT_MAX_PAGES  = 12
	DEFAULT_GROUP_SIZE = 16
	DEFAULT_MAX_SLOTS  = 1 << 26
	// DEFAULT_CHUNK_SIZE is the number of operations per chunk when splitting
	// a trace.
	DEFAULT_CHUNK_SIZE = 1 << 18
)

// ErrConfig signals an invalid configuration.
var ErrConfig = errors.New("invalid configuration")

// Config determines how the counting work is distributed and how much memory
// each worker may use.
type Config struct {
	// Number of workers, which must be a power of two.
	Workers uint32
	// log2 of the number of cells in each page of a worker's address space.
	PageBits uint
	// Maximum number of pages each worker may materialise.
	MaxPages uint32
	// Number of slots allocated at once for the chain of an address.
	GroupSize uint32
	// Maximum number of slots each worker may allocate.
	MaxSlots uint32
	// Memory regions which may be accessed.
	Layout memory.Layout
}

// DefaultConfig returns the configuration used by default.
func DefaultConfig() Config {
	return Config{
		Workers:   DEFAULT_WORKERS,
		PageBits:  DEFAULT_PAGE_BITS,
		MaxPages:  DEFAULT_MAX_PAGES,
		GroupSize: DEFAULT_GROUP_SIZE,
		MaxSlots:  DEFAULT_MAX_SLOTS,
		Layout:    memory.DefaultLayout(),
	}
}

// WorkerBits returns log2 of the number of workers.
func (p Config) WorkerBits() uint {
	return uint(bits.TrailingZeros32(p.Workers))
}

// Validate checks this configuration is usable.
func (p Config) Validate() error {
	switch {
	case p.Workers == 0 || p.Workers&(p.Workers-1) != 0:
		return fmt.Errorf("%w: %d workers (must be power of two)", ErrConfig, p.Workers)
	case p.PageBits == 0 || 3+p.WorkerBits()+p.PageBits > 32:
		return fmt.Errorf("%w: page bits %d for %d workers", ErrConfig, p.PageBits, p.Workers)
	case p.MaxPages == 0:
		return fmt.Errorf("%w: no pages", ErrConfig)
	case p.GroupSize == 0:
		return fmt.Errorf("%w: empty slot groups", ErrConfig)
	case p.MaxSlots < p.GroupSize:
		return fmt.Errorf("%w: %d slots cannot hold a group of %d", ErrConfig, p.MaxSlots, p.GroupSize)
	}
	//
	return p.Layout.Validate()
}
