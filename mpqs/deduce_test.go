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

// TestHValueReducesToQxWhenSelfVictim exercises the identity
// A*Q(x) = (Ax+B)^2 - N that the H-value normalization of spec.md
// §4.7 step 3 relies on: when a relation normalizes against itself
// (v == r), H must reduce to Q(x) mod N, since
// (Ax+B)^2 * A^-1 = A*Q(x)*A^-1 + N*A^-1 = Q(x) (mod N).
func TestHValueReducesToQxWhenSelfVictim(t *testing.T) {
	n := math.NewInt(143) // 11 * 13
	a := math.ONE
	b := math.NewInt(12)
	c := b.Mul(b).Sub(n).Div(a) // (144 - 143)/1 = 1

	pg := &PolyGroup{A: a}
	p := &Poly{A: a, B: b, C: c, IStart: 0, Group: pg}

	r := &Relation{X: 5, Poly: p}
	pg.Victim = r

	h := hValue(n, r)
	qx := p.Eval(5)
	want := qx.Mod(n)
	if !h.Equals(want) {
		t.Fatalf("hValue = %s, want Q(x) mod N = %s", h.String(), want.String())
	}
}

// TestHValuePanicsOnMissingVictim locks in the invariant that a nil
// group victim is a bug, not a recoverable case: hValue must panic
// rather than silently return a value that would make Deduce drop a
// real congruence.
func TestHValuePanicsOnMissingVictim(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("hValue did not panic on a relation whose group has no victim")
		}
	}()
	pg := &PolyGroup{A: math.ONE}
	p := &Poly{A: math.ONE, B: math.NewInt(12), C: math.ONE, Group: pg}
	r := &Relation{X: 5, Poly: p}
	hValue(math.NewInt(143), r)
}

func TestConstructRHSRejectsOddParity(t *testing.T) {
	fb := &FactorBase{Primes: []*math.Int{math.TWO, math.THREE}}
	tbl := []int{0, 1, 2} // index 1 (prime 2) has odd total exponent
	_, ok := constructRHS(fb, tbl, math.ONE, math.NewInt(35))
	if ok {
		t.Fatal("constructRHS must reject a table with an odd exponent count")
	}
}

func TestConstructRHSBuildsProduct(t *testing.T) {
	n := math.NewInt(1000)
	fb := &FactorBase{Primes: []*math.Int{math.TWO, math.THREE, math.FIVE}}
	// T[0] (sign) = 0, T[1] (prime 2) = 2, T[2] (prime 3) = 4, T[3] (prime 5) = 0
	tbl := []int{0, 2, 4, 0}
	rhs, ok := constructRHS(fb, tbl, math.ONE, n)
	if !ok {
		t.Fatal("constructRHS rejected an all-even table")
	}
	// 2^1 * 3^2 = 18
	want := math.NewInt(18).Mod(n)
	if !rhs.Equals(want) {
		t.Fatalf("rhs = %s, want %s", rhs.String(), want.String())
	}
}

func TestAddFactorsAccumulates(t *testing.T) {
	tbl := make([]int, 4)
	addFactors(tbl, []FactorExp{{Index: 0, Exp: 1}, {Index: 2, Exp: 3}})
	addFactors(tbl, []FactorExp{{Index: 2, Exp: 1}, {Index: 3, Exp: 2}})
	want := []int{1, 0, 4, 2}
	for i, v := range want {
		if tbl[i] != v {
			t.Fatalf("tbl[%d] = %d, want %d", i, tbl[i], v)
		}
	}
}

func TestSplitAgainstNontrivialGCD(t *testing.T) {
	// diff shares factor 11 with c=143=11*13; must split into {11,13}.
	diff := math.NewInt(22)
	working := []*math.Int{math.NewInt(143)}
	next := splitAgainst(diff, working)

	if len(next) != 2 {
		t.Fatalf("expected a 2-way split, got %d chunks", len(next))
	}
	product := math.ONE
	for _, c := range next {
		product = product.Mul(c)
	}
	if !product.Equals(math.NewInt(143)) {
		t.Fatalf("split chunks do not multiply back to 143: got %s", product.String())
	}
}

func TestSplitAgainstTrivialGCDPassesThrough(t *testing.T) {
	diff := math.NewInt(7) // gcd(7, 143) == 1
	working := []*math.Int{math.NewInt(143)}
	next := splitAgainst(diff, working)
	if len(next) != 1 || !next[0].Equals(math.NewInt(143)) {
		t.Fatal("a trivial GCD must leave the working chunk untouched")
	}
}
