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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
)

// Fingerprint computes a MiMC digest of a sequence of (address, rows) pairs,
// allowing counts from separate runs (or separate implementations) to be
// compared cheaply.  Each value is absorbed as a single field element.
func Fingerprint(counts iter.Seq[AddrCount]) ([]byte, error) {
	var (
		hasher = mimc.NewMiMC()
		addr   fr.Element
		rows   fr.Element
	)
	//
	for ac := range counts {
		addr.SetUint64(uint64(ac.Addr))
		rows.SetUint64(ac.Rows)
		//
		bytes := addr.Bytes()
		if _, err := hasher.Write(bytes[:]); err != nil {
			return nil, err
		}
		//
		bytes = rows.Bytes()
		if _, err := hasher.Write(bytes[:]); err != nil {
			return nil, err
		}
	}
	//
	return hasher.Sum(nil), nil
}
