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
	"fmt"
	"sync"
	"time"

	"github.com/consensys/go-memcount/pkg/mops"
)

// Queue is a Source fed by a single producer and shared by any number of
// workers.  Chunks are retained once pushed, since every worker folds every
// chunk.
type Queue struct {
	sync.Mutex
	cond   *sync.Cond
	chunks []Chunk
	// Set once the producer has finished
	closed bool
	// Set when the execution is aborted
	err error
}

// NewQueue constructs an empty queue.
func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.Mutex)
	//
	return q
}

// Push appends a chunk holding the given operations, returning its identifier.
func (q *Queue) Push(ops []mops.MemOp) uint32 {
	q.Lock()
	defer q.Unlock()
	//
	if q.closed {
		panic("push onto closed queue")
	}
	//
	id := uint32(len(q.chunks))
	q.chunks = append(q.chunks, Chunk{id, ops})
	q.cond.Broadcast()
	//
	return id
}

// PushAll splits a sequence of operations into chunks of (at most) the given
// size and pushes them in order.
func (q *Queue) PushAll(ops []mops.MemOp, chunkSize uint) {
	if chunkSize == 0 {
		panic("invalid chunk size")
	}
	//
	for len(ops) > 0 {
		n := min(uint(len(ops)), chunkSize)
		q.Push(ops[:n])
		ops = ops[n:]
	}
}

// Close signals that no further chunks will be pushed.
func (q *Queue) Close() {
	q.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.Unlock()
}

// Abort releases every waiting worker with the given error.  Only the first
// abort has any effect.
func (q *Queue) Abort(err error) {
	q.Lock()
	if q.err == nil {
		q.err = err
	}
	//
	q.cond.Broadcast()
	q.Unlock()
}

// Len returns the number of chunks pushed so far.
func (q *Queue) Len() uint {
	q.Lock()
	defer q.Unlock()
	//
	return uint(len(q.chunks))
}

// TryChunk determines the status of a given chunk without blocking.
func (q *Queue) TryChunk(id uint32) Status {
	q.Lock()
	defer q.Unlock()
	//
	switch {
	case id < uint32(len(q.chunks)):
		return READY
	case q.closed || q.err != nil:
		return EXHAUSTED
	default:
		return PENDING
	}
}

// Chunk returns a given chunk, blocking until it has been pushed.  The worker
// is only used to report an abort.
func (q *Queue) Chunk(worker uint32, id uint32) (Chunk, time.Duration, error) {
	var start = time.Now()
	//
	q.Lock()
	defer q.Unlock()
	//
	for q.err == nil && !q.closed && id >= uint32(len(q.chunks)) {
		q.cond.Wait()
	}
	//
	waited := time.Since(start)
	//
	switch {
	case q.err != nil:
		return Chunk{}, waited, fmt.Errorf("worker %d aborted at chunk %d: %w", worker, id, q.err)
	case id < uint32(len(q.chunks)):
		return q.chunks[id], waited, nil
	default:
		return Chunk{}, waited, ErrExhausted
	}
}
