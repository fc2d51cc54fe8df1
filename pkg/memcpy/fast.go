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
package memcpy

//go:generate go run ./internal/generator

// FastEncode computes the packed encoding of a copy of count bytes from src to
// dst using a lookup table, rather than evaluating each field.  The result is
// always identical to Encode(dst, src, count).Pack().
func FastEncode(dst, src, count uint64) uint64 {
	var tableCount = count
	//
	if count >= 16 {
		tableCount = (count & 0x07) | 0x08
	}
	//
	index := ((dst & 0x07) << 7) + ((src & 0x07) << 4) + tableCount
	//
	return fastEncodeTable[index] + (count << PRE_COUNT_COPY_SHIFT)
}
