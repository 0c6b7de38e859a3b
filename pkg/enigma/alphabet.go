// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package enigma

// alphabetSize is the contact count of every wheel. All positional
// arithmetic in this package is modulo this value.
const alphabetSize = 26

// letterIndex maps an uppercase letter to its 0-25 contact index.
// Callers must pass 'A'..'Z'.
func letterIndex(b byte) int {
	return int(b - 'A')
}

// indexLetter is the inverse of letterIndex.
func indexLetter(i int) byte {
	return byte(i) + 'A'
}

// isUpper and isLower classify the ASCII letters the machine keyboard
// accepts. Everything else passes through Process untouched.
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

// mod26 wraps an offset into 0..25. The addend keeps intermediate
// values non-negative for inputs down to -26.
func mod26(i int) int {
	return (i + alphabetSize) % alphabetSize
}
