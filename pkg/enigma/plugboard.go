// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package enigma

import (
	"fmt"
	"strings"
)

// plugboard is the Steckerbrett: an involutive letter map built from
// operator-chosen cable pairs. Unplugged letters map to themselves.
// It is applied twice per letter, at machine input and machine output.
type plugboard [alphabetSize]int

// newPlugboard compiles a pair list such as ["AB", "CD"] into the swap
// table. Pairs are case-insensitive. A letter may appear in at most
// one pair, and a cable cannot connect a socket to itself; violations
// are configuration errors, reported before any machine exists.
func newPlugboard(pairs []string) (plugboard, error) {
	var pb plugboard
	for i := range pb {
		pb[i] = i
	}

	for _, raw := range pairs {
		pair := strings.ToUpper(strings.TrimSpace(raw))
		if len(pair) != 2 || !isUpper(rune(pair[0])) || !isUpper(rune(pair[1])) {
			return pb, &ConfigError{
				Field:  "plugboard",
				Reason: fmt.Sprintf("pair %q must be two letters, e.g. \"AB\"", raw),
			}
		}
		a, b := letterIndex(pair[0]), letterIndex(pair[1])
		if a == b {
			return pb, &ConfigError{
				Field:  "plugboard",
				Reason: fmt.Sprintf("pair %q connects %c to itself", raw, pair[0]),
			}
		}
		if pb[a] != a || pb[b] != b {
			return pb, &ConfigError{
				Field:  "plugboard",
				Reason: fmt.Sprintf("pair %q reuses a letter already plugged", raw),
			}
		}
		pb[a], pb[b] = b, a
	}
	return pb, nil
}

// swap returns the plugged partner of a letter index, or the index
// itself when no cable is connected.
func (p *plugboard) swap(in int) int {
	return p[in]
}
