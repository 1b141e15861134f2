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

// SievePoly sieves one polynomial's window [-M, M] against fb, using
// ainverses and the log-weighted threshold T, and returns every
// location whose smoothness survives trial division: fully smooth
// relations (cofactor 1) and large-prime partials (cofactor a prime
// <= lpBound). A candidate is selected for trial division once its
// accumulated sieve weight reaches log2|Q(x)|/T; trial division then
// confirms or rejects it exactly, so T only affects how much work the
// sieve does, never correctness.
func SievePoly(fb *FactorBase, p *Poly, m, lpBound int, t float64) []*Relation {
	width := 2*m + 1
	acc := make([]byte, width)

	for i := 1; i < fb.Len(); i++ {
		prime := fb.Primes[i]
		ainv := p.Group.AInverses[i]
		if ainv == nil {
			// A is not invertible mod this prime (it's one of the
			// g-values composing A); this column is skipped entirely,
			// per spec.md §4.4's "special-cased by the sieve" contract.
			continue
		}
		pp := prime.Int64()
		root := fb.Roots[i]

		// Mod always returns a value in [0, p) for positive p.
		soln1 := root.Sub(p.B).Mul(ainv).Mod(prime).Int64()
		soln2 := root.Neg().Sub(p.B).Mul(ainv).Mod(prime).Int64()

		off1 := (((soln1 - p.IStart) % pp) + pp) % pp
		off2 := (((soln2 - p.IStart) % pp) + pp) % pp

		lw := fb.Logs[i]
		for o := off1; o < int64(width); o += pp {
			acc[o] += lw
		}
		if off2 != off1 {
			for o := off2; o < int64(width); o += pp {
				acc[o] += lw
			}
		}
	}

	var relations []*Relation
	for offset := int64(0); offset < int64(width); offset++ {
		qx := p.Eval(offset)
		if qx.Sign() == 0 {
			continue
		}
		logQx := float64(qx.Abs().BitLen())
		threshold := logQx / t
		if float64(acc[offset]) < threshold {
			continue
		}
		if rel := tryFactor(fb, p, offset, qx, lpBound); rel != nil {
			relations = append(relations, rel)
		}
	}
	return relations
}

// tryFactor trial-divides qx by the full factor base and classifies
// the leftover cofactor: 1 yields a full relation, a prime <= lpBound
// yields a partial, anything else is rejected as insufficiently
// smooth (the sieve's threshold merely picked a candidate worth
// checking, it never guarantees smoothness).
func tryFactor(fb *FactorBase, p *Poly, offset int64, qx *math.Int, lpBound int) *Relation {
	var factors []FactorExp
	rem := qx
	if rem.Sign() < 0 {
		factors = append(factors, FactorExp{Index: 0, Exp: 1})
		rem = rem.Neg()
	}
	for i, prime := range fb.Primes {
		exp := 0
		for rem.Mod(prime).Sign() == 0 {
			rem = rem.Div(prime)
			exp++
		}
		if exp > 0 {
			factors = append(factors, FactorExp{Index: i + 1, Exp: exp})
		}
	}

	cofactor := math.ONE
	switch {
	case rem.Equals(math.ONE):
		// fully smooth
	case rem.Cmp(math.NewInt(int64(lpBound))) <= 0 && rem.ProbablyPrime(20):
		cofactor = rem
	default:
		return nil
	}

	return &Relation{
		X:        p.IStart + offset,
		Poly:     p,
		Factors:  factors,
		Cofactor: cofactor,
	}
}
