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

// PartialsTable is the hash table merging large-prime partial
// relations: every relation sharing a large prime cofactor can be
// paired with any other relation sharing the same cofactor to form a
// combined, matrix-ready MatRel.
type PartialsTable struct {
	byPrime map[string][]*Relation
}

// NewPartialsTable returns an empty partials table.
func NewPartialsTable() *PartialsTable {
	return &PartialsTable{byPrime: make(map[string][]*Relation)}
}

// Add records a partial relation under its large-prime cofactor.
func (pt *PartialsTable) Add(r *Relation) {
	key := r.Cofactor.String()
	pt.byPrime[key] = append(pt.byPrime[key], r)
}

// Count returns the number of full-relation-equivalent pairs
// currently sitting in the table, matching original_source's
// ht_count (pairs per large prime, not the raw count of partial
// relations seen).
func (pt *PartialsTable) Count() int {
	n := 0
	for _, rels := range pt.byPrime {
		n += len(rels) / 2
	}
	return n
}

// Combine pairs up partials sharing a large prime into combined
// MatRels, one per pair; an odd relation out for any given prime is
// left uncombined and carried forward for a future pairing. Grounded
// on spec.md §1's "hash table that merges partial relations" and
// §6's Partials combiner contract (r1/r2 share a cofactor).
func (pt *PartialsTable) Combine(nwords int) []*MatRel {
	var combined []*MatRel
	for key, rels := range pt.byPrime {
		i := 0
		for i+1 < len(rels) {
			combined = append(combined, NewCombinedMatRel(rels[i], rels[i+1], nwords))
			i += 2
		}
		if i < len(rels) {
			pt.byPrime[key] = rels[i:]
		} else {
			delete(pt.byPrime, key)
		}
	}
	return combined
}
