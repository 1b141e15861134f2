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
	"time"

	"github.com/bfix/nsieve/logger"
	"github.com/bfix/nsieve/math"
)

// Timings holds the cumulative duration of each pipeline stage, for
// the CLI's "timing reportage" per spec.md §6 (out of scope for the
// core itself, carried here as ambient stack the full repository
// needs around it).
type Timings struct {
	Init, Sieve, Solve, Deduce time.Duration
}

// Engine ties factor-base construction, self-initializing polynomial
// generation, sieving, GF(2) matrix solving and factor deduction into
// the single synchronous pipeline of spec.md §2/§5: init -> gpool ->
// loop{polygroup, sieve, combine} -> matrix solve -> deduce.
type Engine struct {
	N        *math.Int // cofactor of Original actually handed to the sieve
	Original *math.Int
	Stripped []*Factor // small prime factors divided out before sieving
	Params   Params
	FB       *FactorBase
	GPool    *GPool
	Timings  Timings
}

// smallFactorBound caps the trial division run before the sieve
// proper. Spec.md §8 scenario 5 ("engine may strip small primes
// trivially") and scenario 1 (15347 = 103*149, both well under this
// bound) are the cases this exists for: the factor base never admits
// a prime dividing N (BuildFactorBase's Kronecker filter rejects it
// outright, see fb.go), so without this pass such a factor could never
// be found by the sieve at all. Grounded on the teacher's own
// factorizer.Factorizer.smallPrimes, reused here for the sieve's own
// entry point rather than only the outer cascade.
const smallFactorBound = 25000

// NewEngine strips small prime factors from n, then builds the factor
// base and gpool for the remaining cofactor (spec.md §2's "init"/
// "gpool init" stages), selecting (fbBound, lpBound, M, T) from the
// parameter table unless overridden. Returns any error BuildGPool
// reports for the cofactor; when no k meets qTable's target, BuildGPool
// falls back to a k=1 pool rather than failing.
func NewEngine(n *math.Int, override Params) (*Engine, error) {
	t0 := time.Now()
	remaining, stripped := stripSmallFactors(n)
	e := &Engine{N: remaining, Original: n, Stripped: stripped}

	if remaining.Cmp(math.ONE) <= 0 || remaining.ProbablyPrime(20) {
		if remaining.Cmp(math.ONE) > 0 {
			e.Stripped = append(e.Stripped, &Factor{Value: remaining, Prime: true})
		}
		e.Timings.Init = time.Since(t0)
		return e, nil
	}

	p := SelectParams(remaining.BitLen(), override)
	fb := BuildFactorBase(remaining, p.FBBound)
	gpool, err := BuildGPool(remaining, p.M)
	if err != nil {
		return nil, err
	}
	e.Params = p
	e.FB = fb
	e.GPool = gpool
	e.Timings.Init = time.Since(t0)
	logger.Printf(logger.INFO, "[mpqs] factor base: %d primes, gpool k=%d (%d candidates)\n",
		fb.Len(), gpool.K, len(gpool.Values))
	return e, nil
}

// stripSmallFactors divides every prime below smallFactorBound out of
// n, returning the cofactor left for the sieve and the small factors
// found along the way.
func stripSmallFactors(n *math.Int) (remaining *math.Int, stripped []*Factor) {
	remaining = n
	bound := math.NewInt(smallFactorBound)
	for p := math.TWO; p.Cmp(bound) < 0; p = p.NextProbablePrime(20) {
		for remaining.Mod(p).Equals(math.ZERO) {
			remaining = remaining.Div(p)
			stripped = append(stripped, &Factor{Value: p, Prime: true})
		}
		if remaining.Equals(math.ONE) {
			break
		}
	}
	return remaining, stripped
}

// Run drives the sieve/combine loop until enough relations are
// collected, solves the resulting GF(2) matrix and deduces factors of
// the cofactor left after small-factor stripping. Safe to call once
// per Engine.
func (e *Engine) Run() ([]*Factor, error) {
	if e.FB == nil {
		// Small-factor stripping alone resolved N; nothing left to sieve.
		return e.Stripped, nil
	}
	fb := e.FB
	nwords := (fb.Len() + 1 + wordBits - 1) / wordBits
	relsNeeded := fb.Len() + ExtraRelations

	tSieve := time.Now()
	partials := NewPartialsTable()
	var matrels []*MatRel
	for len(matrels) < relsNeeded {
		gvals := e.GPool.Next()
		pg := BuildPolyGroup(e.N, fb, gvals)
		for j := range pg.BVals {
			poly := BuildPoly(e.N, pg, j, e.Params.M)
			rels := SievePoly(fb, poly, e.Params.M, e.Params.LPBound, e.Params.T)
			for _, r := range rels {
				if pg.Victim == nil {
					// The first relation ever sieved from this group
					// becomes its victim. Since every matrel handed to
					// Deduce was sieved from some group, that group's
					// Victim is always non-nil by the time deduce.go's
					// hValue looks it up.
					pg.Victim = r
				}
				if r.IsFull() {
					matrels = append(matrels, NewMatRel(r, nwords))
				} else {
					partials.Add(r)
				}
			}
			if len(matrels) >= relsNeeded {
				break
			}
		}
		matrels = append(matrels, partials.Combine(nwords)...)
	}
	logger.Printf(logger.INFO, "[mpqs] sieving done: %d relations (%d needed)\n", len(matrels), relsNeeded)
	e.Timings.Sieve = time.Since(tSieve)

	tSolve := time.Now()
	m := NewMatrix(matrels, nwords)
	m.Solve()
	zeros := m.ZeroRows()
	logger.Printf(logger.INFO, "[mpqs] matrix solved: %d dependencies\n", len(zeros))
	e.Timings.Solve = time.Since(tSolve)

	tDeduce := time.Now()
	factors := Deduce(e.N, fb, matrels, m)
	e.Timings.Deduce = time.Since(tDeduce)

	return append(e.Stripped, factors...), nil
}
