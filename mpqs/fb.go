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
	gmath "math"

	"github.com/bfix/nsieve/math"
)

// FactorBase is the ordered list of small primes over which a value is
// tested for smoothness, plus the modular square root of N and a
// log2-weight byte for each prime.
//
// Prime 2 is always admitted (N is always a quadratic residue mod 2).
// Every other retained prime p satisfies the Kronecker symbol (N/p) = 1.
type FactorBase struct {
	N      *math.Int   // number being factorized
	Primes []*math.Int // fb[0] == 2, ascending thereafter
	Roots  []*math.Int // Roots[i]^2 == N (mod Primes[i]); nil for 2
	Logs   []byte      // floor(log2(Primes[i]))
}

// BuildFactorBase sieves primes up to bound, retains those admitting N
// as a quadratic residue, and precomputes a modular square root and a
// log-weight for each. Grounded on the teacher's
// math/factorizer/sac/factorbase.go Init (Legendre filter + SqrtModP)
// and original_source's era_sieve/extract/generate_fb.
func BuildFactorBase(n *math.Int, bound int) *FactorBase {
	composite := sieveEratosthenes(bound)

	fb := &FactorBase{N: n}
	fb.Primes = append(fb.Primes, math.TWO)
	fb.Roots = append(fb.Roots, nil)
	fb.Logs = append(fb.Logs, fastLog2(2))

	for p := 3; p <= bound; p += 2 {
		if composite[p] {
			continue
		}
		pi := math.NewInt(int64(p))
		if n.Kronecker(pi) != 1 {
			continue
		}
		root, err := math.SqrtModP(n, pi)
		if err != nil {
			// Kronecker already guaranteed a residue; a failure here
			// would indicate a bug in SqrtModP, not bad input.
			continue
		}
		fb.Primes = append(fb.Primes, pi)
		fb.Roots = append(fb.Roots, root)
		fb.Logs = append(fb.Logs, fastLog2(p))
	}
	return fb
}

// Len returns the number of primes in the factor base.
func (fb *FactorBase) Len() int {
	return len(fb.Primes)
}

// sieveEratosthenes returns a boolean array indexed [0..bound] where
// composite[p] is true iff p is composite. Indices 0 and 1 are marked
// composite (neither is prime).
func sieveEratosthenes(bound int) []bool {
	composite := make([]bool, bound+1)
	if bound >= 0 {
		composite[0] = true
	}
	if bound >= 1 {
		composite[1] = true
	}
	for p := 2; p*p <= bound; p++ {
		if composite[p] {
			continue
		}
		for q := p * p; q <= bound; q += p {
			composite[q] = true
		}
	}
	return composite
}

// fastLog2 approximates floor(log2(p)) for sieve scoring.
func fastLog2(p int) byte {
	return byte(gmath.Floor(gmath.Log2(float64(p))))
}
