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
	"encoding/binary"
	"fmt"
	"os"

	"github.com/consensys/go-memcount/pkg/mmap"
	"github.com/consensys/go-memcount/pkg/mops"
	log "github.com/sirupsen/logrus"
)

// FILE_MAGIC identifies a memory operation trace file.
var FILE_MAGIC = [8]byte{'m', 'e', 'm', 'o', 'p', 's', 0, 1}

// HEADER_SIZE is the number of bytes preceding the first operation: the magic
// followed by the number of operations (little endian).
const HEADER_SIZE = 16

// LoadFile reads a trace file, pushing its operations onto the queue in chunks
// of the given size.  The queue is not closed, hence several files can be
// loaded in sequence.  This returns the number of operations loaded.
func LoadFile(path string, chunkSize uint, q *Queue) (uint64, error) {
	var header [HEADER_SIZE]byte
	//
	if chunkSize == 0 {
		return 0, fmt.Errorf("invalid chunk size %d", chunkSize)
	}
	//
	bd, err := mmap.Open(path)
	if err != nil {
		return 0, err
	}
	//
	defer bd.Close()
	//
	if _, err := bd.ReadAt(header[:], 0); err != nil {
		return 0, fmt.Errorf("trace file %s: truncated header", path)
	} else if [8]byte(header[:8]) != FILE_MAGIC {
		return 0, fmt.Errorf("trace file %s: invalid magic", path)
	}
	//
	var (
		count  = binary.LittleEndian.Uint64(header[8:])
		buffer = make([]byte, chunkSize*8)
		offset = int64(HEADER_SIZE)
	)
	//
	if count > uint64(bd.Size()-HEADER_SIZE)/8 {
		return 0, fmt.Errorf("trace file %s: %d operations exceed file size", path, count)
	}
	//
	for remaining := count; remaining > 0; {
		n := min(remaining, uint64(chunkSize))
		bytes := buffer[:n*8]
		//
		if _, err := bd.ReadAt(bytes, offset); err != nil {
			return 0, fmt.Errorf("trace file %s: %w", path, err)
		}
		// Chunks are retained by the queue, hence need their own storage
		ops := make([]mops.MemOp, n)
		for i := range ops {
			ops[i] = mops.Unpack(binary.LittleEndian.Uint64(bytes[i*8:]))
		}
		//
		q.Push(ops)
		//
		offset += int64(n * 8)
		remaining -= n
	}
	//
	log.Debugf("loaded %d operations from %s", count, path)
	//
	return count, nil
}

// WriteFile writes a sequence of operations into a trace file, replacing any
// existing file.
func WriteFile(path string, ops []mops.MemOp) error {
	var size = HEADER_SIZE + 8*len(ops)
	//
	file, err := mmap.NewFile(path, size)
	if err != nil {
		return err
	}
	//
	bytes := make([]byte, size)
	copy(bytes, FILE_MAGIC[:])
	binary.LittleEndian.PutUint64(bytes[8:], uint64(len(ops)))
	//
	for i, op := range ops {
		binary.LittleEndian.PutUint64(bytes[HEADER_SIZE+i*8:], op.Pack())
	}
	//
	if _, err = file.BlockDevice.WriteAt(bytes, 0); err == nil {
		err = file.BlockDevice.Sync()
	}
	//
	if cerr := file.BlockDevice.Close(); err == nil {
		err = cerr
	}
	//
	if err != nil {
		return fmt.Errorf("trace file %s: %w", path, err)
	}
	// Drop the padding up to the sector boundary
	return os.Truncate(path, int64(size))
}
