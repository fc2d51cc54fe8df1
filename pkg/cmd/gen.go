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
	"fmt"
	"math/rand"

	"github.com/consensys/go-memcount/pkg/chunk"
	"github.com/consensys/go-memcount/pkg/memcpy"
	"github.com/consensys/go-memcount/pkg/memory"
	"github.com/consensys/go-memcount/pkg/mops"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags] trace_file",
	Short: "Generate a random trace file.",
	Long: `Generate a random trace file of single accesses interleaved with
	decomposed memory copies, for testing and benchmarking.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			atexit.Exit(1)
		}
		//
		var cfg = genConfig{
			seed:     GetInt64(cmd, "seed"),
			accesses: GetUint(cmd, "accesses"),
			copies:   GetUint(cmd, "copies"),
			maxLen:   GetUint(cmd, "max-len"),
			span:     uint32(GetUint(cmd, "span")),
		}
		//
		if cfg.span < 32 || cfg.span > memory.RAM_END-memory.RAM_ADDR {
			fmt.Printf("invalid span %d\n", cfg.span)
			atexit.Exit(3)
		}
		//
		ops := generateOps(cfg)
		//
		if err := chunk.WriteFile(args[0], ops); err != nil {
			log.Error(err)
			atexit.Exit(4)
		}
		//
		log.Debugf("wrote %d operations to %s", len(ops), args[0])
	},
}

// genConfig determines the shape of a generated trace.
type genConfig struct {
	seed int64
	// Number of single accesses
	accesses uint
	// Number of copies
	copies uint
	// Maximum length of a copy
	maxLen uint
	// Number of bytes of each region accessed
	span uint32
}

// Generate a trace where accesses and copies are interleaved at random.  Copies
// stay within RAM, whilst reads may also target the read-only regions.
func generateOps(cfg genConfig) []mops.MemOp {
	var (
		rng    = rand.New(rand.NewSource(cfg.seed))
		ops    []mops.MemOp
		widths = []uint8{1, 2, 4, 8}
		// leave room for the largest access
		limit = int(cfg.span) - 16
	)
	//
	for accesses, copies := cfg.accesses, cfg.copies; accesses+copies > 0; {
		if copies > 0 && (accesses == 0 || rng.Intn(int(accesses+copies)) < int(copies)) {
			var (
				n   = uint64(rng.Intn(int(cfg.maxLen) + 1))
				dst = uint64(memory.RAM_ADDR) + uint64(rng.Intn(limit))
				src = uint64(memory.RAM_ADDR) + uint64(rng.Intn(limit))
			)
			// keep both ends within the span
			n = min(n, uint64(cfg.span)-(dst-memory.RAM_ADDR), uint64(cfg.span)-(src-memory.RAM_ADDR))
			ops = append(ops, memcpy.Ops(dst, src, n)...)
			copies--
			//
			continue
		}
		//
		var (
			width = widths[rng.Intn(len(widths))]
			addr  = uint32(memory.RAM_ADDR) + uint32(rng.Intn(limit))
		)
		//
		switch rng.Intn(4) {
		case 0:
			ops = append(ops, mops.Write(addr, width))
		case 1:
			ops = append(ops, mops.ClearWrite(addr))
		case 2:
			ops = append(ops, mops.Read(memory.ROM_ADDR+uint32(rng.Intn(limit)), width))
		default:
			ops = append(ops, mops.Read(addr, width))
		}
		//
		accesses--
	}
	//
	return ops
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(genCmd)
	genCmd.Flags().Int64("seed", 0, "random seed")
	genCmd.Flags().Uint("accesses", 1<<20, "number of single accesses")
	genCmd.Flags().Uint("copies", 1<<12, "number of memory copies")
	genCmd.Flags().Uint("max-len", 256, "maximum length of a memory copy")
	genCmd.Flags().Uint("span", 1<<20, "number of bytes of each region used")
}
