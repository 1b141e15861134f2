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
	"github.com/bfix/nsieve/mpqs"
)

// sentinel is the "unset" value for flags whose real default is filled
// in from the bit-length-indexed parameter table, per spec.md §6.
const sentinel = -1

func main() {
	var T float64
	var fbb, lpb, m int
	var np bool
	flag.Float64Var(&T, "T", sentinel, "smoothness threshold T for sieve")
	flag.IntVar(&fbb, "fbb", sentinel, "factor-base bound")
	flag.IntVar(&lpb, "lpb", sentinel, "large-prime bound (0 = no partials)")
	flag.IntVar(&m, "M", sentinel, "half-width of the sieve window")
	flag.BoolVar(&np, "np", false, "disable partials (sets lp_bound = 0)")
	flag.Parse()

	n, err := readN(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "nsieve: %s\n", err)
		os.Exit(1)
	}

	override := mpqs.Params{FBBound: fbb, LPBound: lpb, M: m, T: T}
	if np {
		override.LPBound = 0
	}

	eng, err := mpqs.NewEngine(n, override)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nsieve: %s\n", err)
		os.Exit(1)
	}
	factors, err := eng.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nsieve: %s\n", err)
		os.Exit(1)
	}

	for _, f := range factors {
		if f.Prime {
			fmt.Printf("%s (prp)\n", f.Value.String())
		} else {
			fmt.Printf("%s (c)\n", f.Value.String())
		}
	}

	t := eng.Timings
	fmt.Printf("\nTiming summary: \n\tInitialization:   %s\n\tSieving:          %s\n\tMatrix solving:   %s\n\tFactor deduction: %s\n",
		t.Init, t.Sieve, t.Solve, t.Deduce)
}

// readN parses N from the first positional argument, falling back to a
// decimal integer read from stdin if none was given, per spec.md §6.
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
