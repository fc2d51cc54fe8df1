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
package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
	"github.com/consensys/go-memcount/pkg/memcpy"
)

const copyrightHolder = "Consensys Software Inc."

// Number of distinct counts held per (dst, src) offset pair.  Any larger count
// shares the entry of (count & 7) | 8.
const tableCounts = 16

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-memcount")
	//
	assertNoError(bgen.Generate(config(), "memcpy", "templates",
		bavard.Entry{
			File:      "../../encode_table.go",
			Templates: []string{"encode_table.go.tmpl"},
		},
	), "for fast encode table")
	// run gofmt on generated file
	runCmd("gofmt", "-w", "../../encode_table.go")
}

type tableConfig struct {
	Counts int
	Size   int
	Rows   []string
}

// Compute table entries.  Each entry holds the low 32 bits of the encoding,
// plus its loop_count, minus count<<29.  The copy of pre_count at bit 29 sits
// immediately below loop_count, hence adding count<<29 at lookup time yields the
// correct loop_count (and pre_count) for any count congruent modulo 8.
func config() tableConfig {
	var (
		table []uint64
		rows  []string
	)
	//
	for dstOffset := range uint64(8) {
		for srcOffset := range uint64(8) {
			for count := range uint64(tableCounts) {
				value := memcpy.Encode(dstOffset, srcOffset, count).Pack()
				loopCount := value >> memcpy.LOOP_COUNT_SHIFT
				entry := (value & 0xFFFF_FFFF) + (loopCount << memcpy.LOOP_COUNT_SHIFT)
				table = append(table, entry-(count<<memcpy.PRE_COUNT_COPY_SHIFT))
			}
		}
	}
	// Format four entries per row
	for chunk := range slices.Chunk(table, 4) {
		var items = make([]string, len(chunk))
		//
		for i, v := range chunk {
			items[i] = fmt.Sprintf("0x%016x,", v)
		}
		//
		rows = append(rows, strings.Join(items, " "))
	}
	//
	return tableConfig{tableCounts, len(table), rows}
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
