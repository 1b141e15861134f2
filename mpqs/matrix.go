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

// flipBit toggles bit i of a packed row.
func flipBit(row []uint64, i int) {
	row[i/wordBits] ^= 1 << (uint(i) % wordBits)
}

// getBit reads bit i of a packed row.
func getBit(row []uint64, i int) bool {
	return row[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// xorRow XORs src into dst over the first words machine words.
func xorRow(dst, src []uint64, words int) {
	for w := 0; w < words; w++ {
		dst[w] ^= src[w]
	}
}

// isZeroVec reports whether every one of the first words words is 0.
func isZeroVec(row []uint64, words int) bool {
	for w := 0; w < words; w++ {
		if row[w] != 0 {
			return false
		}
	}
	return true
}

// rightmostOne returns the highest-indexed set bit at position <=
// maxCol, or -1 if the row has no such bit.
func rightmostOne(row []uint64, maxCol int) int {
	for col := maxCol; col >= 0; col-- {
		if getBit(row, col) {
			return col
		}
	}
	return -1
}

// Matrix is the packed exponent matrix of relation rows together with
// the parallel history matrix tracking which original rows were
// XORed together to produce each current row.
type Matrix struct {
	Rows      [][]uint64 // exponent matrix, R rows x expWords words
	History   [][]uint64 // history matrix, R rows x histWords words, starts as identity
	R         int        // row count (= rels_needed)
	ExpWords  int        // words per exponent row, ceil((L+1)/64)
	HistWords int        // words per history row, ceil(R/64)
	rmo       []int      // cached rightmost-1 per row
}

// NewMatrix builds the exponent matrix from matrels (one row per
// MatRel) and initializes the history matrix to the identity, per
// spec's "Input: an exponent matrix ... Structure: alongside, a
// history matrix ... initialized to the identity."
func NewMatrix(matrels []*MatRel, expWords int) *Matrix {
	r := len(matrels)
	histWords := (r + wordBits - 1) / wordBits
	m := &Matrix{
		Rows:      make([][]uint64, r),
		History:   make([][]uint64, r),
		R:         r,
		ExpWords:  expWords,
		HistWords: histWords,
		rmo:       make([]int, r),
	}
	for i, mr := range matrels {
		row := make([]uint64, expWords)
		copy(row, mr.Row)
		m.Rows[i] = row

		h := make([]uint64, histWords)
		flipBit(h, i)
		m.History[i] = h

		m.rmo[i] = rightmostOne(row, expWords*wordBits-1)
	}
	return m
}

// Solve runs the right-to-left column sweep: for each column from
// high to low, the first row whose rightmost-1 equals that column
// becomes the pivot and is XORed into every later row sharing that
// rightmost-1, in both the exponent and history matrices. Pivots are
// always the lowest surviving row index, keeping the result
// deterministic. Verification of the resulting dependencies is done
// separately and on demand via CheckDependency, mirroring the
// source's MAT_CHECK being an optional development-time pass.
func (m *Matrix) Solve() {
	cols := m.ExpWords * wordBits
	for col := cols - 1; col >= 0; col-- {
		pivot := -1
		for y := 0; y < m.R; y++ {
			if m.rmo[y] == col {
				pivot = y
				break
			}
		}
		if pivot < 0 {
			continue
		}
		for y := pivot + 1; y < m.R; y++ {
			if m.rmo[y] != col {
				continue
			}
			xorRow(m.Rows[y], m.Rows[pivot], m.ExpWords)
			xorRow(m.History[y], m.History[pivot], m.HistWords)
			m.rmo[y] = rightmostOne(m.Rows[y], col-1)
		}
	}
}

// ZeroRows returns the indices of every row that reduced to the zero
// vector, in ascending order.
func (m *Matrix) ZeroRows() []int {
	var zeros []int
	for y := 0; y < m.R; y++ {
		if isZeroVec(m.Rows[y], m.ExpWords) {
			zeros = append(zeros, y)
		}
	}
	return zeros
}

// HistoryBits returns the indices of the original relation rows
// combined (via XOR) into the current row y, read off History[y].
func (m *Matrix) HistoryBits(y int) []int {
	var bits []int
	for i := 0; i < m.R; i++ {
		if getBit(m.History[y], i) {
			bits = append(bits, i)
		}
	}
	return bits
}

// CheckDependency re-XORs the original rows selected by history[y]
// and verifies the result is the zero vector, per spec §4.6's
// optional self-check pass. original must be the untouched rows
// captured before Solve ran.
func CheckDependency(history []int, original [][]uint64, expWords int) bool {
	acc := make([]uint64, expWords)
	for _, i := range history {
		xorRow(acc, original[i], expWords)
	}
	return isZeroVec(acc, expWords)
}
