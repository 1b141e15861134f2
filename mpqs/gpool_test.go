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

func TestBuildGPoolValuesAreQR(t *testing.T) {
	n := math.NewInt(1000007)
	gp, err := BuildGPool(n, 32768)
	if err != nil {
		t.Fatalf("BuildGPool failed: %s", err)
	}
	if gp.K < 1 {
		t.Fatal("k must be at least 1")
	}
	for _, g := range gp.Values {
		if n.Kronecker(g) != 1 {
			t.Fatalf("gpool value %s is not a quadratic residue of N", g.String())
		}
	}
}

func TestGPoolNextDistinctSubsets(t *testing.T) {
	n := math.NewInt(1000007)
	gp, err := BuildGPool(n, 32768)
	if err != nil {
		t.Fatalf("BuildGPool failed: %s", err)
	}
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		gvals := gp.Next()
		if len(gvals) != gp.K {
			t.Fatalf("Next returned %d values, want k=%d", len(gvals), gp.K)
		}
		key := ""
		for _, g := range gvals {
			key += g.String() + ","
		}
		if seen[key] {
			t.Fatalf("Next returned a duplicate subset before exhausting the pool: %s", key)
		}
		seen[key] = true
	}
}
