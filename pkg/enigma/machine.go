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
	"unicode"
)

// =============================================================================
// Configuration
// =============================================================================

// Config holds the daily key for one Machine. All fields are copied at
// construction; later changes to a Config do not affect an existing
// Machine.
type Config struct {
	// Rotors selects three wheels from the catalog, left to right as
	// an operator reads the machine. The same wheel may be mounted in
	// more than one slot; each slot keeps independent state.
	Rotors [3]RotorID

	// Positions is the initial rotation of each wheel, 0-25, in the
	// same left-to-right order. The zero value starts every window
	// at 'A'.
	Positions [3]int

	// Rings is the ring setting (Ringstellung) of each wheel, 0-25.
	Rings [3]int

	// Plugboard lists cable pairs as two-letter strings, e.g. "AB".
	// Empty means no cables.
	Plugboard []string

	// Reflector selects the Umkehrwalze. Empty defaults to UKW-B.
	Reflector ReflectorID
}

// =============================================================================
// Machine
// =============================================================================

// Machine is one fully assembled cipher machine. Its only mutable
// state across calls is the three rotor positions, so a Machine must
// be owned by a single logical user; construct one per conversation
// direction rather than sharing.
type Machine struct {
	left      rotor
	middle    rotor
	right     rotor
	reflector *reflector
	plugboard plugboard
}

// New assembles and validates a Machine. Validation is eager and
// complete: an out-of-range position or ring, an unknown rotor or
// reflector, or a malformed plugboard pair is reported here as a
// *ConfigError, and no partially valid Machine is ever returned.
func New(cfg Config) (*Machine, error) {
	slots := [3]string{"left", "middle", "right"}

	var specs [3]rotorSpec
	for i, id := range cfg.Rotors {
		spec, ok := rotorCatalog[id]
		if !ok {
			return nil, &ConfigError{
				Field:  "rotors",
				Reason: fmt.Sprintf("unknown rotor %q in %s slot (catalog: I-V)", string(id), slots[i]),
			}
		}
		specs[i] = spec
	}
	for i, p := range cfg.Positions {
		if p < 0 || p >= alphabetSize {
			return nil, &ConfigError{
				Field:  "positions",
				Reason: fmt.Sprintf("%s slot position %d outside 0-25", slots[i], p),
			}
		}
	}
	for i, r := range cfg.Rings {
		if r < 0 || r >= alphabetSize {
			return nil, &ConfigError{
				Field:  "rings",
				Reason: fmt.Sprintf("%s slot ring setting %d outside 0-25", slots[i], r),
			}
		}
	}

	refID := cfg.Reflector
	if refID == "" {
		refID = ReflectorB
	}
	ref, ok := reflectorCatalog[refID]
	if !ok {
		return nil, &ConfigError{
			Field:  "reflector",
			Reason: fmt.Sprintf("unknown reflector %q (catalog: B, C)", string(refID)),
		}
	}

	pb, err := newPlugboard(cfg.Plugboard)
	if err != nil {
		return nil, err
	}

	return &Machine{
		left:      rotor{spec: specs[0], position: cfg.Positions[0], ring: cfg.Rings[0]},
		middle:    rotor{spec: specs[1], position: cfg.Positions[1], ring: cfg.Rings[1]},
		right:     rotor{spec: specs[2], position: cfg.Positions[2], ring: cfg.Rings[2]},
		reflector: ref,
		plugboard: pb,
	}, nil
}

// Positions returns the current rotor positions, left to right. The
// CLI shows these as the rotor windows; tests use them to observe
// stepping.
func (m *Machine) Positions() [3]int {
	return [3]int{m.left.position, m.middle.position, m.right.position}
}

// step advances the rotors for one keystroke. The two phases are
// deliberate and must stay separate: every notch flag is read from the
// positions as they exist before this keystroke, then all steps are
// applied. Interleaving the reads with the moves silently loses the
// double-step.
func (m *Machine) step() {
	rightAtNotch := m.right.atNotch()
	middleAtNotch := m.middle.atNotch()

	// A middle wheel at its own notch drives the left wheel and, by
	// the pawl-and-ratchet double-step anomaly, steps itself again on
	// the same keystroke.
	stepLeft := middleAtNotch
	stepMiddle := rightAtNotch || middleAtNotch

	m.right.step()
	if stepMiddle {
		m.middle.step()
	}
	if stepLeft {
		m.left.step()
	}
}

// encryptLetter runs one letter index through the full signal path.
// The rotors have already stepped for this keystroke.
func (m *Machine) encryptLetter(in int) int {
	x := m.plugboard.swap(in)
	x = m.right.forward(x)
	x = m.middle.forward(x)
	x = m.left.forward(x)
	x = m.reflector.reflect(x)
	x = m.left.backward(x)
	x = m.middle.backward(x)
	x = m.right.backward(x)
	return m.plugboard.swap(x)
}

// Process transforms a message one character at a time, left to right.
// Letters are folded to uppercase, stepped and enciphered; everything
// else (digits, spaces, punctuation, non-ASCII) passes through
// unchanged without advancing any rotor. Process is total: it cannot
// fail on any input string.
//
// The pass is strictly sequential. Each letter's substitution depends
// on the rotor positions left behind by every previous letter, which
// is the entire point of the machine.
func (m *Machine) Process(text string) string {
	var out strings.Builder
	out.Grow(len(text))
	for _, r := range text {
		switch {
		case isLower(r):
			r = unicode.ToUpper(r)
			fallthrough
		case isUpper(r):
			m.step()
			c := m.encryptLetter(letterIndex(byte(r)))
			out.WriteByte(indexLetter(c))
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}
