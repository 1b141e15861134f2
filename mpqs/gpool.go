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
	stderrors "errors"
	gmath "math"
	"strconv"

	gerr "github.com/bfix/nsieve/errors"
	"github.com/bfix/nsieve/math"
)

// ErrGPoolExhausted is returned by BuildGPool for an N of fewer than 2
// bits. When no value of k admits enough candidate g-values for a
// larger N and sieve width M, BuildGPool falls back to a k=1 pool
// instead of returning this error.
var ErrGPoolExhausted = stderrors.New("gpool: no viable k found for this N and M")

// minPolynomials is the minimum number of distinct A-values the gpool
// must be able to produce, per original_source's "minP = 10^6".
const minPolynomials = 1000000

// qTable gives, for k = 1..len(qTable), the minimum gpool size needed
// so that C(ng, k) reaches minPolynomials. Beyond k=12 the required
// pool size starts growing again, so the search below is capped there.
var qTable = []int{1000000, 1415, 183, 72, 44, 33, 28, 25, 24, 23, 23, 23}

// gRangeFraction is the "c" constant bounding how far g-values may
// stray from the ideal central root of A.
const gRangeFraction = 0.6

// fallbackPoolSize is the gpool size used when no k meets qTable's
// minPolynomials target (spec.md §8's small-N boundary case, where the
// parameter table's row-0 floor on M makes A_opt smaller than any
// qTable entry can be satisfied by). k=1 subsets of this many g-values
// still give plenty of distinct polynomials for an N this small.
const fallbackPoolSize = 64

// GPool is the pool of candidate g-values (primes admitting N as a
// quadratic residue) from which successive polygroups draw their k
// factors of A, plus the combinatorial state walking distinct
// k-subsets of the pool across calls to Next.
type GPool struct {
	N      *math.Int
	K      int         // number of g-factors making up each A
	Values []*math.Int // candidate g-values, ascending
	frogs  []int       // indices into Values selecting the current k-subset
	first  bool
}

// BuildGPool selects k (the number of prime factors of A) and the
// pool of candidate g-values around the ideal center
// center = (sqrt(2N)/M)^(1/k), following original_source's poly.c
// gpool_init: k is the largest value for which the estimated number of
// usable primes in the bounding range still exceeds qTable[k-1].
func BuildGPool(n *math.Int, m int) (*GPool, error) {
	// Computed in floating point rather than via an integer NthRoot
	// followed by an integer Div: for N well below the M the parameter
	// table hands out (spec.md §8's "small N" boundary case), sqrt(2N)
	// can be smaller than M itself, and truncating that through integer
	// division collapses A_opt to 0 before it ever reaches gmin/gmax.
	aOptF := gmath.Sqrt(bigIntToFloat(n.Mul(math.TWO))) / float64(m)

	k := len(qTable)
	var gmin, gmax float64
	var ng int
	for ; k >= 1; k-- {
		gmin = gmath.Pow(aOptF*gRangeFraction, 1.0/float64(k))
		gmax = gmath.Pow(aOptF/gRangeFraction, 1.0/float64(k))
		approx := (piEstimate(gmax) - piEstimate(gmin)) / 2
		ng = qTable[k-1]
		if approx >= float64(ng) {
			break
		}
	}
	if k == 0 {
		// No k satisfies qTable's minPolynomials target: fall back to
		// the smallest self-initializing family (k=1) sized to what's
		// actually reachable near A_opt, rather than refusing to
		// factor N just because it's too small to need a million
		// distinct polynomials in the first place.
		if n.BitLen() < 2 {
			return nil, gerr.New(ErrGPoolExhausted, "N has %d bits, M = %d", n.BitLen(), m)
		}
		return buildPoolAscending(n, fallbackPoolSize), nil
	}

	center := int64(gmath.Round(gmath.Pow(aOptF, 1.0/float64(k))))
	if center < 3 {
		center = 3
	}
	return buildPoolAround(n, k, ng, center), nil
}

// buildPoolAround fills a gpool of ng candidate g-values (primes
// admitting N as a quadratic residue) centered on center, then
// initializes the k-subset odometer over them.
func buildPoolAround(n *math.Int, k, ng int, center int64) *GPool {
	values := make([]*math.Int, ng)
	pos := ng / 2
	g := math.NewInt(center)
	for pos < ng {
		g = g.NextProbablePrime(20)
		if n.Kronecker(g) == 1 {
			values[pos] = g
			pos++
		}
	}
	pos = ng/2 - 1
	g = math.NewInt(center)
	for pos >= 0 {
		g = g.PrevProbablePrime(20)
		if n.Kronecker(g) == 1 {
			values[pos] = g
			pos--
		}
	}

	frogs := make([]int, k)
	for i := range frogs {
		frogs[i] = i
	}
	return &GPool{N: n, K: k, Values: values, frogs: frogs, first: true}
}

// buildPoolAscending fills a k=1 gpool by scanning upward from 3,
// rather than splitting a range around a center: the fallback path
// that calls this has a center too close to the smallest primes for
// buildPoolAround's symmetric above/below split to find ng distinct
// values below it (PrevProbablePrime bottoms out at 2 and cannot be
// asked for anything smaller). The prime 2 is never taken: its two
// roots of N coincide, so it cannot yield 2^(k-1) distinct B-values.
func buildPoolAscending(n *math.Int, ng int) *GPool {
	values := make([]*math.Int, ng)
	g := math.TWO
	for i := 0; i < ng; {
		g = g.NextProbablePrime(20)
		if n.Kronecker(g) == 1 {
			values[i] = g
			i++
		}
	}
	return &GPool{N: n, K: 1, Values: values, frogs: []int{0}, first: true}
}

// Next returns the k g-values of the next distinct combination drawn
// from the pool, advancing the internal odometer. The original C
// source allocates the `frogs` index array (poly.c's gpool_init) but
// never implements its advance step; the odometer walk here completes
// that gap so the engine can request more polygroups than fit in one
// k-subset once qTable's minPolynomials target is actually needed.
func (gp *GPool) Next() []*math.Int {
	if gp.first {
		gp.first = false
	} else {
		gp.advance()
	}
	g := make([]*math.Int, gp.K)
	for i, idx := range gp.frogs {
		g[i] = gp.Values[idx]
	}
	return g
}

// advance steps the frogs odometer to the next lexicographic k-subset
// of [0, len(Values)), wrapping back to the first subset if exhausted.
func (gp *GPool) advance() {
	n := len(gp.Values)
	k := gp.K
	i := k - 1
	for i >= 0 && gp.frogs[i] == n-k+i {
		i--
	}
	if i < 0 {
		for j := range gp.frogs {
			gp.frogs[j] = j
		}
		return
	}
	gp.frogs[i]++
	for j := i + 1; j < k; j++ {
		gp.frogs[j] = gp.frogs[j-1] + 1
	}
}

// piEstimate approximates the prime-counting function pi(x) as
// x / ln(x), as original_source's poly.c does.
func piEstimate(x float64) float64 {
	if x < 2 {
		return 0
	}
	return x / gmath.Log(x)
}

// bigIntToFloat converts a math.Int to a float64 via its decimal
// string; adequate here since aOpt is only used to pick an
// approximate search center, never in arithmetic requiring precision.
func bigIntToFloat(i *math.Int) float64 {
	v, err := strconv.ParseFloat(i.String(), 64)
	if err != nil {
		return 0
	}
	return v
}
