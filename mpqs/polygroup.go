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

// PolyGroup is one choice of A (a product of k g-values) together
// with every B satisfying B^2 = N (mod A), |B| <= A/2, and the
// per-factor-base-prime inverses of A needed by the sieve.
type PolyGroup struct {
	A         *math.Int
	GVals     []*math.Int
	BVals     []*math.Int
	AInverses []*math.Int // AInverses[i] = A^-1 mod fb.Primes[i]; nil where fb.Primes[i] divides A
	Victim    *Relation   // anchor relation used to normalize H-values from this group
}

// BuildPolyGroup forms A = product(gvals) and derives its 2^(k-1)
// B-values via CRT, plus ainverses against the factor base. Grounded
// on original_source/src/poly.c's generate_polygroup.
func BuildPolyGroup(n *math.Int, fb *FactorBase, gvals []*math.Int) *PolyGroup {
	k := len(gvals)
	a := math.ONE
	for _, g := range gvals {
		a = a.Mul(g)
	}

	// r[i][0], r[i][1] are the two square roots of N mod gvals[i].
	r := make([][2]*math.Int, k)
	for i, g := range gvals {
		root, err := math.SqrtModP(n, g)
		if err != nil {
			// BuildGPool only admits g with (N/g) = 1, so this cannot fail.
			panic(err)
		}
		r[i][0] = root
		r[i][1] = g.Sub(root)
	}

	// jg[i] = j_i * (A / g_i), the per-g_i term whose only z-dependent
	// part is which of the two roots it's multiplied by; hoisted out of
	// the z loop since it doesn't depend on z.
	jg := make([]*math.Int, k)
	for i, g := range gvals {
		aOverG := a.Div(g)
		j := aOverG.ModInverse(g)
		jg[i] = j.Mul(aOverG)
	}

	nb := 1 << k
	half := a.Div(math.TWO)
	bvals := make([]*math.Int, 0, nb/2)
	for z := 0; z < nb; z++ {
		b := math.ZERO
		for i := range gvals {
			root := r[i][0]
			if z&(1<<uint(i)) != 0 {
				root = r[i][1]
			}
			b = b.Add(jg[i].Mul(root))
		}
		b = b.Mod(a)
		if b.Cmp(half) > 0 {
			continue
		}
		bvals = append(bvals, b)
	}

	ainverses := make([]*math.Int, fb.Len())
	for i, p := range fb.Primes {
		if p.GCD(a).Cmp(math.ONE) != 0 {
			ainverses[i] = nil
			continue
		}
		ainverses[i] = a.ModInverse(p)
	}

	return &PolyGroup{A: a, GVals: gvals, BVals: bvals, AInverses: ainverses}
}

// Poly is a single (A, B, C) triple with C = (B^2 - N)/A, evaluated
// over the sieve window [-M, M] via istart = -M.
type Poly struct {
	A, B, C *math.Int
	IStart  int64
	Group   *PolyGroup
}

// BuildPoly derives C for the j-th B-value of pg and sets the sieve
// window origin to -m, per original_source's generate_poly.
func BuildPoly(n *math.Int, pg *PolyGroup, j int, m int) *Poly {
	b := pg.BVals[j]
	c := b.Mul(b).Sub(n).Div(pg.A)
	return &Poly{A: pg.A, B: b, C: c, IStart: -int64(m), Group: pg}
}

// Eval computes Q(x) = A*x^2 + 2*B*x + C at x = istart + offset, via
// the Horner form ((A*x + 2B)*x) + C used by original_source/poly.c's
// poly().
func (p *Poly) Eval(offset int64) *math.Int {
	x := math.NewInt(p.IStart + offset)
	res := p.A.Mul(x)
	res = res.Add(p.B).Add(p.B)
	res = res.Mul(x)
	res = res.Add(p.C)
	return res
}
