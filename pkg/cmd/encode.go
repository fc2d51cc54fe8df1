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

	"github.com/consensys/go-memcount/pkg/memcpy"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] dst src count",
	Short: "Encode a memory copy.",
	Long: `Encode a memory copy, reporting the packed encoding used by the
	accelerated copy routine and the aligned operations it performs.`,
	Run: func(cmd *cobra.Command, args []string) {
		var values [3]uint64
		//
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			atexit.Exit(1)
		}
		//
		for i, arg := range args {
			var err error
			//
			if values[i], err = parseAddress(arg); err != nil {
				fmt.Println(err)
				atexit.Exit(2)
			}
		}
		//
		var (
			dst, src, count = values[0], values[1], values[2]
			enc             = memcpy.Encode(dst, src, count)
		)
		//
		fmt.Printf("%s\n", enc)
		fmt.Printf("packed: 0x%016x\n", enc.Pack())
		//
		if fast := memcpy.FastEncode(dst, src, count); fast != enc.Pack() {
			fmt.Printf("fast encoding differs: 0x%016x\n", fast)
			atexit.Exit(4)
		}
		//
		if GetFlag(cmd, "ops") {
			for _, op := range enc.Ops(dst, src) {
				fmt.Println(op)
			}
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().Bool("ops", true, "print aligned operations")
}
