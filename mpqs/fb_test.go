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

import (
	"testing"

	"github.com/bfix/nsieve/math"
)

func TestFactorBaseQR(t *testing.T) {
	n := math.NewInt(1000007) // 29 * 34483
	fb := BuildFactorBase(n, 2000)

	if fb.Primes[0].Cmp(math.TWO) != 0 {
		t.Fatal("factor base must start with 2")
	}
	for i := 1; i < fb.Len(); i++ {
		p := fb.Primes[i]
		if n.Kronecker(p) != 1 {
			t.Fatalf("prime %s retained but not a quadratic residue of N", p.String())
		}
	}
}

func TestFactorBaseRoots(t *testing.T) {
	n := math.NewInt(1000007)
	fb := BuildFactorBase(n, 2000)

	for i := 1; i < fb.Len(); i++ {
		p := fb.Primes[i]
		r := fb.Roots[i]
		got := r.Mul(r).Mod(p)
		want := n.Mod(p)
		if !got.Equals(want) {
			t.Fatalf("root[%d]^2 != N mod %s", i, p.String())
		}
	}
}

func TestFactorBaseAscending(t *testing.T) {
	n := math.NewIntFromString("16921456439215439701") // 2860486313 * 5915587277
	fb := BuildFactorBase(n, 3000)
	for i := 1; i < fb.Len(); i++ {
		if fb.Primes[i-1].Cmp(fb.Primes[i]) >= 0 {
			t.Fatalf("factor base not strictly ascending at index %d", i)
		}
	}
}
