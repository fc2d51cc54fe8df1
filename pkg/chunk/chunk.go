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
package chunk

import (
	"errors"
	"time"

	"github.com/consensys/go-memcount/pkg/mops"
)

// ErrExhausted signals that no further chunks will be produced.  This is the
// normal way for a worker to learn that execution has finished.
var ErrExhausted = errors.New("chunks exhausted")

// Chunk is a contiguous batch of memory operations produced by the executor,
// identified by its position in the execution.
type Chunk struct {
	ID  uint32
	Ops []mops.MemOp
}

// Status describes the availability of a chunk at some moment.
type Status uint8

const (
	// READY indicates the chunk is available.
	READY Status = iota
	// PENDING indicates the chunk has not been produced yet.
	PENDING
	// EXHAUSTED indicates the chunk will never be produced.
	EXHAUSTED
)

func (p Status) String() string {
	switch p {
	case READY:
		return "ready"
	case PENDING:
		return "pending"
	case EXHAUSTED:
		return "exhausted"
	}
	//
	panic("unreachable")
}

// Source provides chunks to the workers folding them.  Each worker requests
// chunks in strictly increasing order of identifier.  A request blocks until
// the chunk is available, returning how long the caller was kept waiting.
// Once all chunks are consumed, ErrExhausted is returned.  Any other error
// indicates the execution was aborted.
type Source interface {
	Chunk(worker uint32, id uint32) (Chunk, time.Duration, error)
}
