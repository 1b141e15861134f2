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

func TestRelationIsFull(t *testing.T) {
	full := &Relation{Cofactor: math.ONE}
	if !full.IsFull() {
		t.Fatal("relation with cofactor 1 must be full")
	}
	partial := &Relation{Cofactor: math.NewInt(101)}
	if partial.IsFull() {
		t.Fatal("relation with a nontrivial cofactor must not be full")
	}
}

func TestRelationRowParity(t *testing.T) {
	r := &Relation{Factors: []FactorExp{
		{Index: 0, Exp: 1}, // sign
		{Index: 1, Exp: 2}, // even, should not set a bit
		{Index: 2, Exp: 3}, // odd, should set a bit
	}, Cofactor: math.ONE}

	row := r.Row(1)
	if !getBit(row, 0) {
		t.Fatal("sign bit not set")
	}
	if getBit(row, 1) {
		t.Fatal("even-exponent bit must not be set")
	}
	if !getBit(row, 2) {
		t.Fatal("odd-exponent bit must be set")
	}
}

func TestNewCombinedMatRelXorsBothRows(t *testing.T) {
	r1 := &Relation{Factors: []FactorExp{{Index: 1, Exp: 1}}, Cofactor: math.NewInt(101)}
	r2 := &Relation{Factors: []FactorExp{{Index: 1, Exp: 1}, {Index: 2, Exp: 1}}, Cofactor: math.NewInt(101)}

	mr := NewCombinedMatRel(r1, r2, 1)
	// bit 1 appears in both (parity cancels), bit 2 only in r2.
	if getBit(mr.Row, 1) {
		t.Fatal("shared odd exponent at index 1 should cancel under XOR")
	}
	if !getBit(mr.Row, 2) {
		t.Fatal("r2's exclusive odd exponent at index 2 should survive")
	}
	if mr.R1 != r1 || mr.R2 != r2 {
		t.Fatal("combined matrel must keep both source relations")
	}
}
