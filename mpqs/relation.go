//----------------------------------------------------------------------
// This file is part of Gospel.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// Gospel is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// Gospel is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package mpqs

import "github.com/bfix/nsieve/math"

// wordBits is the width of one packed bit-row word.
const wordBits = 64

// FactorExp is one (factor-base index, multiplicity) pair in a
// relation's smooth factorization. Index 0 is reserved for the sign
// of Q(x); indices 1..L refer to fb.Primes[index-1].
type FactorExp struct {
	Index int
	Exp   int
}

// Relation is one smooth (or large-prime-partial) value of Q(x),
// found by the sieve at offset X under polynomial Poly.
type Relation struct {
	X        int64
	Poly     *Poly
	Factors  []FactorExp
	Cofactor *math.Int // ONE for full relations, a prime <= lp_bound for partials
}

// IsFull reports whether this relation needs no large-prime partner.
func (r *Relation) IsFull() bool {
	return r.Cofactor.Equals(math.ONE)
}

// Row packs a relation's factor-exponent parities into a bit-vector
// of nwords 64-bit words: bit i set means fb-index i (0 = sign) has
// odd multiplicity in r.Factors.
func (r *Relation) Row(nwords int) []uint64 {
	row := make([]uint64, nwords)
	for _, fe := range r.Factors {
		if fe.Exp%2 != 0 {
			flipBit(row, fe.Index)
		}
	}
	return row
}

// MatRel is one row of the exponent matrix together with the
// relation(s) it was built from: r1 alone for a full relation, or r1
// and r2 for two partials combined over a shared large prime.
type MatRel struct {
	R1, R2 *Relation
	Row    []uint64
}

// NewMatRel builds a MatRel from a single full relation.
func NewMatRel(r1 *Relation, nwords int) *MatRel {
	return &MatRel{R1: r1, Row: r1.Row(nwords)}
}

// NewCombinedMatRel builds a MatRel from two partial relations that
// share the same large prime cofactor; the combined row is the XOR of
// both relations' rows (the shared large prime's own parity cancels).
func NewCombinedMatRel(r1, r2 *Relation, nwords int) *MatRel {
	row := r1.Row(nwords)
	xorRow(row, r2.Row(nwords), nwords)
	return &MatRel{R1: r1, R2: r2, Row: row}
}
