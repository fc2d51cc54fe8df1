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
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/consensys/go-memcount/pkg/chunk"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"
)

// Aborter is implemented by sources which can release blocked workers when
// the run fails.
type Aborter interface {
	Abort(err error)
}

// Result holds the counters of a completed run.
type Result struct {
	// Identifies the run in logs
	ID       xid.ID
	Counters []*MemCounter
	Align    *MemAlignCounter
	Summary  Summary
}

// Run counts every chunk of a source, using one worker per address residue
// class plus one worker for alignment fixups.  If any worker fails, the source
// is aborted (when supported) and the first error is returned.
func Run(config Config, source chunk.Source) (*Result, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	//
	var (
		result = &Result{
			ID:       xid.New(),
			Counters: make([]*MemCounter, config.Workers),
			Align:    NewMemAlignCounter(),
		}
		logger = log.WithField("run", result.ID.String())
		start  = time.Now()
		wg     sync.WaitGroup
		once   sync.Once
		first  error
	)
	//
	fail := func(err error) {
		once.Do(func() {
			first = err
			//
			if aborter, ok := source.(Aborter); ok {
				aborter.Abort(err)
			}
		})
	}
	//
	logger.Debugf("starting %d workers", config.Workers)
	//
	for i := range config.Workers {
		result.Counters[i] = NewMemCounter(i, config)
		//
		wg.Add(1)
		//
		go func(counter *MemCounter) {
			defer wg.Done()
			//
			if err := counter.Execute(source); err != nil {
				fail(err)
			}
		}(result.Counters[i])
	}
	//
	wg.Add(1)
	//
	go func() {
		defer wg.Done()
		//
		if err := result.Align.Execute(source, config.Workers); err != nil {
			fail(err)
		}
	}()
	//
	wg.Wait()
	//
	if first != nil {
		logger.Errorf("run failed: %s", first)
		return nil, first
	}
	//
	var summaries = []Summary{result.Align.Summary()}
	//
	for _, c := range result.Counters {
		summaries = append(summaries, c.Summary())
	}
	//
	result.Summary = Merge(summaries...)
	//
	logger.Debugf("counted %s in %s", result.Summary, time.Since(start))
	//
	return result, nil
}

// owner returns the counter owning the cell holding a given address.
func (p *Result) owner(addr uint32) *MemCounter {
	return p.Counters[(addr>>3)&uint32(len(p.Counters)-1)]
}

// Rows returns the total rows required by the cell holding a given address.
func (p *Result) Rows(addr uint32) uint64 {
	return p.owner(addr).Rows(addr)
}

// ChunkRows returns the per chunk rows of the cell holding a given address.
func (p *Result) ChunkRows(addr uint32) []ChunkCount {
	return p.owner(addr).ChunkRows(addr)
}

// All iterates every touched cell across all workers, in increasing order of
// address.
func (p *Result) All() iter.Seq[AddrCount] {
	var counts []AddrCount
	//
	for _, c := range p.Counters {
		counts = slices.AppendSeq(counts, c.All())
	}
	//
	slices.SortFunc(counts, func(l, r AddrCount) int {
		switch {
		case l.Addr < r.Addr:
			return -1
		case l.Addr > r.Addr:
			return 1
		default:
			return 0
		}
	})
	//
	return slices.Values(counts)
}
