// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package enigma

// ReflectorID names an Umkehrwalze in the fixed catalog.
type ReflectorID string

const (
	// ReflectorB is UKW-B, the standard service reflector.
	ReflectorB ReflectorID = "B"
	// ReflectorC is UKW-C, issued alongside UKW-B from 1940 on.
	ReflectorC ReflectorID = "C"
)

// reflector is a fixed involutive permutation with no fixed point:
// reflect(x) == y implies reflect(y) == x, and reflect(x) != x for
// every x. This is what makes the machine reciprocal, and also what
// guarantees no letter ever enciphers to itself.
type reflector [alphabetSize]int

// reflect folds the signal back into the rotor stack.
func (f *reflector) reflect(in int) int {
	return f[in]
}

var reflectorCatalog = map[ReflectorID]*reflector{}

var reflectorWirings = []struct {
	id     ReflectorID
	wiring string
}{
	{ReflectorB, "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{ReflectorC, "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

func init() {
	for _, w := range reflectorWirings {
		var f reflector
		for i := 0; i < alphabetSize; i++ {
			f[i] = letterIndex(w.wiring[i])
		}
		reflectorCatalog[w.id] = &f
	}
}

// ReflectorInfo describes one catalog entry for display purposes.
type ReflectorInfo struct {
	ID     ReflectorID
	Wiring string
}

// Reflectors returns the reflector catalog in issue order.
func Reflectors() []ReflectorInfo {
	infos := make([]ReflectorInfo, 0, len(reflectorWirings))
	for _, w := range reflectorWirings {
		infos = append(infos, ReflectorInfo{ID: w.id, Wiring: w.wiring})
	}
	return infos
}
