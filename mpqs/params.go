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

// Params holds the tunable knobs of one factorization run.
type Params struct {
	FBBound int     // factor-base bound: primes <= FBBound are candidates
	LPBound int     // large-prime bound; 0 disables the partial-relation variation
	M       int     // half-width of the sieve window [-M, M]
	T       float64 // smoothness log-threshold
}

// paramRow is one row of the bit-length-indexed parameter table.
type paramRow struct {
	bits    float64
	fbBound float64
	lpBound float64
	m       float64
	t       float64
}

// paramTable mirrors original_source's params[][], covering 100-160
// bit moduli; rows below/above the table clamp to the nearest end.
var paramTable = []paramRow{
	{100, 5000, 5000, 1 * 32768, 1.3},
	{120, 11000, 11000, 2 * 32768, 1.3},
	{140, 25000, 25000, 2 * 32768, 1.3},
	{160, 55000, 55000, 2 * 32768, 1.3},
}

// ExtraRelations is the cushion of extra relations collected beyond
// the factor-base size to make the GF(2) null space non-trivial.
const ExtraRelations = 48

// SelectParams derives (fbBound, lpBound, M, T) for a bits-bit modulus
// by linear interpolation between the two bracketing paramTable rows,
// clamping to the first/last row outside the table's range. Any field
// of override other than the -1 sentinel preempts the table value,
// matching spec.md's "-1 means unset" CLI contract, except that an
// LPBound of 0 sets the large-prime bound to the factor-base bound.
func SelectParams(bits int, override Params) Params {
	row := interpolateRow(float64(bits))

	p := Params{
		FBBound: int(row.fbBound),
		LPBound: int(row.lpBound),
		M:       int(row.m),
		T:       row.t,
	}
	if override.FBBound != -1 {
		p.FBBound = override.FBBound
	}
	if override.LPBound == 0 {
		p.LPBound = p.FBBound
	} else if override.LPBound != -1 {
		p.LPBound = override.LPBound
	}
	if override.M != -1 {
		p.M = override.M
	}
	if override.T != -1 {
		p.T = override.T
	}
	return p
}

func interpolateRow(bits float64) paramRow {
	n := len(paramTable)
	if bits <= paramTable[0].bits {
		return paramTable[0]
	}
	if bits >= paramTable[n-1].bits {
		return paramTable[n-1]
	}
	for i := 1; i < n; i++ {
		if bits > paramTable[i].bits {
			continue
		}
		lo, hi := paramTable[i-1], paramTable[i]
		frac := (bits - lo.bits) / (hi.bits - lo.bits)
		return paramRow{
			bits:    bits,
			fbBound: lo.fbBound + frac*(hi.fbBound-lo.fbBound),
			lpBound: lo.lpBound + frac*(hi.lpBound-lo.lpBound),
			m:       lo.m + frac*(hi.m-lo.m),
			t:       lo.t + frac*(hi.t-lo.t),
		}
	}
	return paramTable[n-1]
}

// DefaultOverride is the "nothing specified" sentinel for Params
// fields that use -1 to mean "fill from the table" (spec.md §6).
var DefaultOverride = Params{FBBound: -1, LPBound: -1, M: -1, T: -1}
