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
)

// Layout of a packed automaton state.  The phase occupies the upper two bits,
// and the number of rows charged so far the remainder.
const (
	PHASE_SHIFT = 30
	COUNT_MASK  = (1 << PHASE_SHIFT) - 1
)

// ErrInvalidState signals that the automaton reached a state which should be
// unreachable.
var ErrInvalidState = errors.New("invalid counter state")

// Phase records which access (if any) is waiting to be paired.
type Phase uint8

const (
	// INI indicates no access is pending.
	INI Phase = iota
	// READ indicates a read is pending.
	READ
	// WRITE indicates a write is pending.
	WRITE
)

func (p Phase) String() string {
	switch p {
	case INI:
		return "ini"
	case READ:
		return "read"
	case WRITE:
		return "write"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Access classifies a single access to a cell.
type Access struct {
	// Whether the cell lies in a mutable region.
	Mutable bool
	// Whether the access covers the whole cell.
	Aligned bool
	// Whether the access writes the cell.
	Write bool
}

// State is the packed state of the automaton for a cell within one chunk.
type State uint32

// Phase returns the pending access of this state.
func (s State) Phase() Phase {
	return Phase(s >> PHASE_SHIFT)
}

// Count returns the number of rows charged so far.
func (s State) Count() uint32 {
	return uint32(s) & COUNT_MASK
}

// Rows returns the number of rows this state accounts for once no further
// accesses arrive, which includes the row of any pending access.
func (s State) Rows() uint64 {
	if s.Phase() == INI {
		return uint64(s.Count())
	}
	//
	return uint64(s.Count()) + 1
}

func (s State) String() string {
	return fmt.Sprintf("%s:%d", s.Phase(), s.Count())
}

func pack(phase Phase, count uint32) State {
	return State(uint32(phase)<<PHASE_SHIFT | count)
}

// Init returns the state of a cell after its first access within a chunk.
func Init(access Access) (State, error) {
	return Step(pack(INI, 0), access)
}

// Step returns the state of a cell after a further access.  Accesses to
// non-mutable cells are charged immediately, with unaligned writes costing an
// extra row.  Accesses to mutable cells are deferred so that a write followed
// by a read, or two reads, share a single row.  An unaligned write is a read of
// the cell followed by a write of the merged value.
func Step(s State, access Access) (State, error) {
	var (
		phase = s.Phase()
		count = s.Count()
	)
	//
	switch {
	case phase > WRITE:
		return s, fmt.Errorf("%w: %s", ErrInvalidState, s)
	case !access.Mutable:
		if phase != INI {
			return s, fmt.Errorf("%w: %s for non-mutable cell", ErrInvalidState, s)
		} else if access.Aligned || !access.Write {
			return charge(INI, count, 1)
		}
		//
		return charge(INI, count, 2)
	case access.Aligned || !access.Write:
		return step(phase, count, access.Write)
	}
	// read half
	s, err := step(phase, count, false)
	if err != nil {
		return s, err
	}
	// write half
	return step(s.Phase(), s.Count(), true)
}

// Aligned transition table.
func step(phase Phase, count uint32, write bool) (State, error) {
	switch phase {
	case INI:
		if write {
			return pack(WRITE, count), nil
		}
		//
		return pack(READ, count), nil
	case READ:
		if write {
			// stranded read
			return charge(WRITE, count, 1)
		}
		// read-read pair
		return charge(INI, count, 1)
	case WRITE:
		if write {
			// stranded write
			return charge(WRITE, count, 1)
		}
		// write-read pair
		return charge(INI, count, 1)
	}
	//
	panic("unreachable")
}

func charge(phase Phase, count uint32, rows uint32) (State, error) {
	if count+rows > COUNT_MASK {
		return pack(phase, count), fmt.Errorf("%w: row count overflow", ErrInvalidState)
	}
	//
	return pack(phase, count+rows), nil
}
