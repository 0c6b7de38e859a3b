// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package enigma

// =============================================================================
// Rotor Catalog
// =============================================================================

// RotorID names a wheel in the fixed historical catalog.
type RotorID string

// The five wheels issued with the Enigma I. Wirings and turnover
// letters follow the surviving Wehrmacht documentation.
const (
	RotorI   RotorID = "I"
	RotorII  RotorID = "II"
	RotorIII RotorID = "III"
	RotorIV  RotorID = "IV"
	RotorV   RotorID = "V"
)

// rotorSpec is the immutable part of a wheel: its wiring permutation
// and the window position at which its pawl engages the next wheel.
type rotorSpec struct {
	id      RotorID
	wiring  [alphabetSize]int // contact index -> output letter index
	inverse [alphabetSize]int // output letter index -> contact index
	notch   int               // turnover position, 0-25
}

// rotorCatalog holds the compiled specs, keyed by ID. Populated in
// init from the wiring strings below.
var rotorCatalog = map[RotorID]rotorSpec{}

var rotorWirings = []struct {
	id       RotorID
	wiring   string
	turnover byte
}{
	{RotorI, "EKMFLGDQVZNTOWYHXUSPAIBRCJ", 'Q'},
	{RotorII, "AJDKSIRUXBLHWTMCQGZNPYFVOE", 'E'},
	{RotorIII, "BDFHJLCPRTXVZNYEIWGAKMUSQO", 'V'},
	{RotorIV, "ESOVPZJAYQUIRHXLNFTGKDCMWB", 'J'},
	{RotorV, "VZBRGITYUPSDNHLXAWMJQOFECK", 'Z'},
}

func init() {
	for _, w := range rotorWirings {
		spec := rotorSpec{id: w.id, notch: letterIndex(w.turnover)}
		for contact := 0; contact < alphabetSize; contact++ {
			out := letterIndex(w.wiring[contact])
			spec.wiring[contact] = out
			spec.inverse[out] = contact
		}
		rotorCatalog[w.id] = spec
	}
}

// RotorInfo describes one catalog entry for display purposes.
type RotorInfo struct {
	ID       RotorID
	Wiring   string
	Turnover byte // window letter at which the next wheel steps
}

// Rotors returns the wheel catalog in issue order (I..V).
func Rotors() []RotorInfo {
	infos := make([]RotorInfo, 0, len(rotorWirings))
	for _, w := range rotorWirings {
		infos = append(infos, RotorInfo{ID: w.id, Wiring: w.wiring, Turnover: w.turnover})
	}
	return infos
}

// =============================================================================
// Rotor State
// =============================================================================

// rotor is one mounted wheel: an immutable spec plus the mutable
// rotation and the fixed ring setting. Each rotor is owned exclusively
// by its Machine; nothing else mutates it.
type rotor struct {
	spec     rotorSpec
	position int // current rotation, 0-25, advances during operation
	ring     int // Ringstellung, fixed for the session
}

// atNotch reports whether the wheel currently sits at its turnover
// position. Pure query; the stepping algorithm reads every notch flag
// before moving any wheel.
func (r *rotor) atNotch() bool {
	return r.position == r.spec.notch
}

// step advances this wheel by one position.
func (r *rotor) step() {
	r.position = (r.position + 1) % alphabetSize
}

// forward passes a signal right-to-left through the wheel. The entry
// contact depends on both the rotation and the ring setting; the result
// is shifted back into the fixed frame of the machine.
func (r *rotor) forward(in int) int {
	contact := mod26(in + r.position - r.ring)
	return mod26(r.spec.wiring[contact] - r.position + r.ring)
}

// backward passes a signal left-to-right, after the reflector. It is
// the exact inverse of forward at the same rotation and ring:
// backward(forward(x)) == x.
func (r *rotor) backward(in int) int {
	contact := mod26(in + r.position - r.ring)
	return mod26(r.spec.inverse[contact] - r.position + r.ring)
}
