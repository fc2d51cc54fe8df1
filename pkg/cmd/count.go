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
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/consensys/go-memcount/pkg/chunk"
	"github.com/consensys/go-memcount/pkg/counter"
	"github.com/consensys/go-memcount/pkg/memory"
	"github.com/consensys/go-memcount/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var countCmd = &cobra.Command{
	Use:   "count [flags] trace_file1 trace_file2 ...",
	Short: "Count the rows required by every memory cell of a trace.",
	Long: `Count the rows required by every memory cell of a trace.  Trace files
	are read in order, and split into chunks which are counted in parallel by
	several workers.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			atexit.Exit(1)
		}
		//
		var (
			cfg = counter.Config{
				Workers:   uint32(GetUint(cmd, "workers")),
				PageBits:  GetUint(cmd, "page-bits"),
				MaxPages:  uint32(GetUint(cmd, "max-pages")),
				GroupSize: uint32(GetUint(cmd, "group-size")),
				MaxSlots:  uint32(GetUint(cmd, "max-slots")),
				Layout:    memory.DefaultLayout(),
			}
			chunkSize = GetUint(cmd, "chunk-size")
			stats     = util.NewPerfStats()
		)
		//
		if err := cfg.Validate(); err != nil {
			fmt.Println(err)
			atexit.Exit(3)
		} else if chunkSize == 0 {
			fmt.Println("invalid chunk size")
			atexit.Exit(3)
		}
		//
		atexit.Register(func() { stats.Log("count") })
		//
		result := runCount(cfg, chunkSize, args)
		// Report
		printSummary(result.Summary)
		//
		if GetFlag(cmd, "cells") {
			printCells(result, GetFlag(cmd, "chunks"))
		}
		//
		if GetFlag(cmd, "align") {
			for _, c := range result.Align.Chunks() {
				fmt.Printf("align #%d %s\n", c.Chunk, c.AlignCounts)
			}
		}
		//
		if GetFlag(cmd, "fingerprint") {
			digest, err := counter.Fingerprint(result.All())
			if err != nil {
				log.Error(err)
				atexit.Exit(4)
			}
			//
			fmt.Printf("fingerprint: 0x%s\n", hex.EncodeToString(digest))
		}
	},
}

// Load the trace files on a separate goroutine, so counting can begin as soon
// as the first chunk is available.
func runCount(cfg counter.Config, chunkSize uint, filenames []string) *counter.Result {
	var (
		q      = chunk.NewQueue()
		loaded = make(chan error, 1)
	)
	//
	go func() {
		for _, filename := range filenames {
			if _, err := chunk.LoadFile(filename, chunkSize, q); err != nil {
				q.Abort(err)
				loaded <- err
				//
				return
			}
		}
		//
		q.Close()
		loaded <- nil
	}()
	//
	result, err := counter.Run(cfg, q)
	//
	if lerr := <-loaded; lerr != nil {
		fmt.Println(lerr)
		atexit.Exit(2)
	} else if err != nil {
		log.Error(err)
		atexit.Exit(4)
	}
	//
	return result
}

func printSummary(summary counter.Summary) {
	fmt.Printf("cells: %d\n", summary.Cells)
	fmt.Printf("rows: %d\n", summary.Rows)
	fmt.Printf("chunks: %d\n", summary.Chunks)
	fmt.Printf("slots: %d (%d pages)\n", summary.Slots, summary.Pages)
	fmt.Printf("align: %s (total %d)\n", summary.Align, summary.Align.Total())
	fmt.Printf("elapsed: %s (first chunk %s, waited %s)\n", summary.Elapsed, summary.FirstChunk, summary.Waited)
}

func printCells(result *counter.Result, chunks bool) {
	for ac := range result.All() {
		fmt.Printf("0x%08x %d", ac.Addr, ac.Rows)
		//
		if chunks {
			for _, cc := range result.ChunkRows(ac.Addr) {
				fmt.Printf(" #%d:%d", cc.Chunk, cc.Rows)
			}
		}
		//
		fmt.Println()
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().Uint("workers", counter.DEFAULT_WORKERS, "number of workers (power of two)")
	countCmd.Flags().Uint("page-bits", counter.DEFAULT_PAGE_BITS, "log2 of cells per page")
	countCmd.Flags().Uint("max-pages", counter.DEFAULT_MAX_PAGES, "maximum pages per worker")
	countCmd.Flags().Uint("group-size", counter.DEFAULT_GROUP_SIZE, "slots per group")
	countCmd.Flags().Uint("max-slots", counter.DEFAULT_MAX_SLOTS, "maximum slots per worker")
	countCmd.Flags().Uint("chunk-size", counter.DEFAULT_CHUNK_SIZE, "operations per chunk")
	countCmd.Flags().Bool("cells", false, "print rows of every cell")
	countCmd.Flags().Bool("chunks", false, "print rows of every cell by chunk (with --cells)")
	countCmd.Flags().Bool("align", false, "print alignment rows of every chunk")
	countCmd.Flags().Bool("fingerprint", false, "print digest of all cell counts")
}
