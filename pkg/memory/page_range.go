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
package memory

// EMPTY_OFFSET marks a page range which has not been touched.
const EMPTY_OFFSET = 0xFFFF_FFFF

// PageRange records the smallest and largest offsets touched within a page,
// allowing a scan of the page to skip untouched leading and trailing parts.
type PageRange struct {
	Min uint32
	Max uint32
}

// NewPageRange constructs an empty page range.
func NewPageRange() PageRange {
	return PageRange{EMPTY_OFFSET, 0}
}

// IsEmpty determines whether any offset has been touched.
func (p *PageRange) IsEmpty() bool {
	return p.Min > p.Max
}

// Touch extends this range to include the given offset.
func (p *PageRange) Touch(offset uint32) {
	p.Min = min(p.Min, offset)
	p.Max = max(p.Max, offset)
}
