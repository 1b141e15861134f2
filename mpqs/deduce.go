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
	"github.com/bfix/nsieve/logger"
	"github.com/bfix/nsieve/math"
)

// Factor is one prime (or, if the zero rows ran out before it could be
// split further, composite) reported for the original N.
type Factor struct {
	Value *math.Int
	Prime bool // true if Value passed a probable-primality test
}

// Deduce walks every zero row of a solved Matrix, reconstructs the
// congruence of squares it encodes and tries to split N via
// gcd(X-Y, N). A held-aside composite splits further are kept in the
// working set and re-tested against every subsequent dependency, per
// spec.md §4.7 step 7's "may be further split by subsequent
// dependencies". Grounded on original_source/src/matrix.c's
// multiply_in_lhs/add_factors_to_table/construct_rhs and the tail of
// solve_matrix.
//
// The "multiplier" of spec.md §4.7 is left a no-op per SPEC_FULL.md's
// open-question decision, so the working set starts at N itself
// rather than N with a prepended multiplier divided back out.
func Deduce(n *math.Int, fb *FactorBase, matrels []*MatRel, m *Matrix) []*Factor {
	remaining := []*math.Int{n}

	for _, y := range m.ZeroRows() {
		if len(remaining) == 1 && remaining[0].Equals(math.ONE) {
			break
		}
		lhs, rhs, _, ok := assembleCongruence(n, fb, matrels, m.HistoryBits(y))
		if !ok {
			continue
		}
		if !lhs.Mul(lhs).Mod(n).Equals(rhs.Mul(rhs).Mod(n)) {
			logger.Println(logger.WARN, "[mpqs] deduce: LHS^2 != RHS^2 mod N, skipping dependency")
			continue
		}
		diff := rhs.Sub(lhs).Mod(n)
		if diff.Sign() == 0 {
			continue // trivial congruence (X == Y)
		}
		remaining = splitAgainst(diff, remaining)
	}

	factors := make([]*Factor, 0, len(remaining))
	for _, c := range remaining {
		if c.Equals(math.ONE) {
			continue
		}
		factors = append(factors, &Factor{Value: c, Prime: c.ProbablyPrime(20)})
	}
	return factors
}

// assembleCongruence builds LHS and RHS for one dependency (the set of
// original matrel indices in bits), per spec.md §4.7 steps 1-4.
func assembleCongruence(n *math.Int, fb *FactorBase, matrels []*MatRel, bits []int) (lhs, rhs *math.Int, t []int, ok bool) {
	lhs = math.ONE
	rhs = math.ONE
	t = make([]int, fb.Len()+1)

	for _, i := range bits {
		mr := matrels[i]
		lhs = lhs.Mul(hValue(n, mr.R1)).Mod(n)
		addFactors(t, mr.R1.Factors)

		if mr.R2 != nil {
			if mr.R1.Cofactor.Cmp(mr.R2.Cofactor) != 0 {
				// diagnostic only, per spec.md §7 taxonomy item 2
				logger.Println(logger.WARN, "[mpqs] deduce: combined partials disagree on cofactor")
			}
			lhs = lhs.Mul(hValue(n, mr.R2)).Mod(n)
			addFactors(t, mr.R2.Factors)
			rhs = rhs.Mul(mr.R1.Cofactor).Mod(n)
		}
	}

	rhs2, ok := constructRHS(fb, t, rhs, n)
	if !ok {
		logger.Println(logger.WARN, "[mpqs] deduce: odd exponent parity in dependency, skipping")
		return nil, nil, nil, false
	}
	return lhs, rhs2, t, true
}

// hValue computes the H-normalization value of spec.md §4.7 step 3 for
// relation r, using its polygroup's victim relation as the anchor that
// cancels the shared factor of A. Every relation reaching here came
// out of SievePoly for its own group (engine.go's sieve loop sets that
// group's Victim to the first such relation before ever recording it
// in a MatRel), so Group.Victim is never nil at this point; treat a
// nil victim as a broken invariant rather than a recoverable case, so
// a bug here surfaces loudly instead of silently discarding a valid
// congruence.
func hValue(n *math.Int, r *Relation) *math.Int {
	v := r.Poly.Group.Victim
	if v == nil {
		panic("mpqs: deduce: relation's polygroup has no victim")
	}
	p := v.Poly
	q := r.Poly
	aInv := p.A.ModInverse(n)
	vx := math.NewInt(v.X)
	rx := math.NewInt(r.X)
	left := p.A.Mul(vx).Add(p.B)
	right := q.A.Mul(rx).Add(q.B)
	h := left.Mul(right).Mod(n)
	h = h.Mul(aInv).Mod(n)
	return h
}

// addFactors accumulates a relation's factor-base exponents into the
// running total table T, indexed 0 (sign) .. L.
func addFactors(t []int, factors []FactorExp) {
	for _, fe := range factors {
		t[fe.Index] += fe.Exp
	}
}

// constructRHS builds RHS = product(fb[i-1]^(T[i]/2)) * (-1)^(T[0]/2
// mod 2) * cofactorRHS (mod N), per spec.md §4.7 step 4. Every T[i]
// must be even; if not, the dependency is defective and ok is false.
func constructRHS(fb *FactorBase, t []int, cofactorRHS, n *math.Int) (rhs *math.Int, ok bool) {
	for _, e := range t {
		if e%2 != 0 {
			return nil, false
		}
	}
	rhs = cofactorRHS
	for i := 1; i < len(t); i++ {
		half := t[i] / 2
		if half == 0 {
			continue
		}
		p := fb.Primes[i-1]
		rhs = rhs.Mul(p.ModPow(math.NewInt(int64(half)), n)).Mod(n)
	}
	if (t[0]/2)%2 != 0 {
		rhs = n.Sub(rhs).Mod(n)
	}
	return rhs, true
}

// splitAgainst tries gcd(diff, c) for every chunk c still held in the
// working set, replacing any chunk it splits nontrivially with its two
// factors. Chunks diff can't split pass through unchanged, per
// spec.md §4.7 step 7's "hold d aside" / step 3's "Trivial GCD" cases.
func splitAgainst(diff *math.Int, working []*math.Int) []*math.Int {
	next := make([]*math.Int, 0, len(working))
	for _, c := range working {
		if c.Equals(math.ONE) {
			continue
		}
		d := diff.GCD(c)
		if d.Cmp(math.ONE) <= 0 || d.Cmp(c) == 0 {
			next = append(next, c) // trivial GCD, per spec.md §7 taxonomy item 3
			continue
		}
		next = append(next, d, c.Div(d))
	}
	return next
}
