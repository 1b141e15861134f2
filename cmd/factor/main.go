package main

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

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/bfix/nsieve/math"
	"github.com/bfix/nsieve/math/factorizer"
)

// factor runs the cascading Factorizer (small primes, then Pollard
// rho as a cheap pre-filter, then the self-initializing quadratic
// sieve as the algorithm of last resort), per SPEC_FULL.md §3's
// "supplementing dropped features".
func main() {
	flag.Parse()
	n, err := readN(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "factor: %s\n", err)
		os.Exit(1)
	}

	fac := factorizer.NewFactorizer(
		factorizer.POLLARD_RHO,
		factorizer.QUADRATIC_SIEVE,
	)
	for _, f := range fac.Decompose(n) {
		fmt.Println(f.String())
	}
}

func readN(args []string) (*math.Int, error) {
	if len(args) > 0 {
		return math.NewIntFromString(args[0]), nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return nil, fmt.Errorf("no N given on the command line or stdin")
	}
	return math.NewIntFromString(scanner.Text()), nil
}
