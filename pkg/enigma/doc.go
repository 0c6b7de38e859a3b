// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package enigma simulates a three-rotor Enigma I cipher machine:
// rotors I-V with their historical wirings and turnover notches,
// reflectors UKW-B and UKW-C, ring settings, and a plugboard.
//
// A Machine is built once from a Config and validated eagerly; after
// construction the only mutable state is the three rotor positions,
// which advance as letters are enciphered. Because the signal path is
// symmetric (plugboard, rotors forward, reflector, rotors backward,
// plugboard), enciphering and deciphering are the same operation: feed
// the ciphertext to a machine constructed with the same settings.
//
//	m, err := enigma.New(enigma.Config{
//	    Rotors:    [3]enigma.RotorID{"I", "II", "III"},
//	    Reflector: enigma.ReflectorB,
//	})
//	if err != nil {
//	    // invalid settings are rejected here, never during Process
//	}
//	ciphertext := m.Process("ATTACK AT DAWN")
//
// A Machine is stateful and not safe for concurrent use. Give each
// conversation direction its own instance, the way a real operator had
// their own machine.
//
// This package performs no I/O and no logging. The rotorwerk CLI in
// cmd/rotorwerk is one consumer; any program that can supply a Config
// is another.
package enigma
