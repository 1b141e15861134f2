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

func TestBuildPolyGroupInvariants(t *testing.T) {
	n := math.NewInt(1000007)
	fb := BuildFactorBase(n, 2000)
	gp, err := BuildGPool(n, 32768)
	if err != nil {
		t.Fatalf("BuildGPool failed: %s", err)
	}
	gvals := gp.Next()
	pg := BuildPolyGroup(n, fb, gvals)

	wantA := math.ONE
	for _, g := range gvals {
		wantA = wantA.Mul(g)
	}
	if !pg.A.Equals(wantA) {
		t.Fatalf("A = %s, want product of gvals = %s", pg.A.String(), wantA.String())
	}

	wantCount := 1 << (len(gvals) - 1)
	if len(pg.BVals) != wantCount {
		t.Fatalf("got %d B-values, want 2^(k-1) = %d", len(pg.BVals), wantCount)
	}

	half := pg.A.Div(math.TWO)
	for _, b := range pg.BVals {
		if b.Cmp(half) > 0 {
			t.Fatalf("B = %s exceeds A/2 = %s", b.String(), half.String())
		}
		if !b.Mul(b).Mod(pg.A).Equals(n.Mod(pg.A)) {
			t.Fatalf("B^2 != N (mod A) for B = %s", b.String())
		}
	}
}

func TestBuildPolyExactDivision(t *testing.T) {
	n := math.NewInt(1000007)
	fb := BuildFactorBase(n, 2000)
	gp, err := BuildGPool(n, 32768)
	if err != nil {
		t.Fatalf("BuildGPool failed: %s", err)
	}
	pg := BuildPolyGroup(n, fb, gp.Next())

	for j := range pg.BVals {
		p := BuildPoly(n, pg, j, 32768)
		// A*C must equal B^2 - N exactly: verify via the remainder of
		// the division BuildPoly already performed.
		remainder := p.B.Mul(p.B).Sub(n).Sub(p.A.Mul(p.C))
		if remainder.Sign() != 0 {
			t.Fatalf("A*C != B^2 - N exactly for j=%d", j)
		}
	}
}

func TestPolyEvalMatchesDefinition(t *testing.T) {
	n := math.NewInt(1000007)
	fb := BuildFactorBase(n, 2000)
	gp, err := BuildGPool(n, 32768)
	if err != nil {
		t.Fatalf("BuildGPool failed: %s", err)
	}
	pg := BuildPolyGroup(n, fb, gp.Next())
	p := BuildPoly(n, pg, 0, 100)

	for _, offset := range []int64{0, 50, 150, 200} {
		x := math.NewInt(p.IStart + offset)
		want := p.A.Mul(x).Mul(x).Add(p.B.Mul(x).Mul(math.TWO)).Add(p.C)
		got := p.Eval(offset)
		if !got.Equals(want) {
			t.Fatalf("Eval(%d) = %s, want %s", offset, got.String(), want.String())
		}
	}
}
