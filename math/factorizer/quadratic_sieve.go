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

//********************************************************************/
//*    PGMID.        QUADRATIC SIEVE ALGORITHM.                      */
//*    AUTHOR.       BERND R. FIX   >Y<                              */
//*    DATE WRITTEN. 08/03/26.                                       */
//*    COPYRIGHT.    (C) BY BERND R. FIX. ALL RIGHTS RESERVED.       */
//*                  LICENSED MATERIAL - PROGRAM PROPERTY OF THE     */
//*                  AUTHOR. REFER TO COPYRIGHT INSTRUCTIONS.        */
//*    REMARKS.                                                      */
//********************************************************************/

package factorizer

import (
	"github.com/bfix/nsieve/logger"
	"github.com/bfix/nsieve/math"
	"github.com/bfix/nsieve/mpqs"
)

// Decompose integer into two (hopefully prime) factors using the
// self-initializing multiple-polynomial quadratic sieve.
type QuadraticSieve struct{}

// GetFactor runs the mpqs engine to completion and returns the first
// factor it reports (the cascading Factorizer decomposes any remaining
// composite cofactor itself, see Decompose).
// @param n - number to be factorized
// @return - factor of n (or nil)
func (qsieve *QuadraticSieve) GetFactor(n *math.Int) *math.Int {
	eng, err := mpqs.NewEngine(n, mpqs.DefaultOverride)
	if err != nil {
		logger.Printf(logger.ERROR, "[qs] %s\n", err.Error())
		return nil
	}
	factors, err := eng.Run()
	if err != nil || len(factors) == 0 {
		return nil
	}
	return factors[0].Value
}
