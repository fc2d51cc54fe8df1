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
	"fmt"
	"time"
)

// Summary holds the totals of one or more workers.
type Summary struct {
	// Number of workers contributing
	Workers uint32
	// Number of distinct cells touched
	Cells uint64
	// Total rows required across all cells
	Rows uint64
	// Number of chunks processed
	Chunks uint32
	// Slots allocated (including unused slots of groups)
	Slots uint64
	// Pages materialised
	Pages uint64
	// Alignment fixup rows
	Align AlignCounts
	// Total time spent waiting for chunks
	Waited time.Duration
	// Longest time taken by any worker
	Elapsed time.Duration
	// Longest time taken by any worker to process its first chunk
	FirstChunk time.Duration
}

// Merge combines the summaries of individual workers into a single summary.
// Since workers count disjoint cells, their cell and row totals are simply
// added.
func Merge(summaries ...Summary) Summary {
	var total Summary
	//
	for _, s := range summaries {
		total.Workers += s.Workers
		total.Cells += s.Cells
		total.Rows += s.Rows
		total.Chunks = max(total.Chunks, s.Chunks)
		total.Slots += s.Slots
		total.Pages += s.Pages
		total.Align = total.Align.Add(s.Align)
		total.Waited += s.Waited
		total.Elapsed = max(total.Elapsed, s.Elapsed)
		total.FirstChunk = max(total.FirstChunk, s.FirstChunk)
	}
	//
	return total
}

func (p Summary) String() string {
	return fmt.Sprintf("%d cells, %d rows over %d chunks (%d workers, %d slots, %d pages); align %s",
		p.Cells, p.Rows, p.Chunks, p.Workers, p.Slots, p.Pages, p.Align)
}
