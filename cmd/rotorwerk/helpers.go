// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"
	"strings"

	"github.com/rotorwerk/rotorwerk/pkg/enigma"
	"github.com/rotorwerk/rotorwerk/pkg/keyfile"
	"github.com/rotorwerk/rotorwerk/pkg/ux"
)

// fail reports an error to the operator and exits. Configuration
// mistakes are the common case here; the engine has no runtime
// failures once a machine exists.
func fail(err error) {
	ux.Error("%v", err)
	os.Exit(1)
}

// splitList breaks "I,II,III" (or whitespace-separated) into parts,
// dropping empties so a trailing comma is harmless.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// splitPairs normalizes the plugboard flag: cobra already splits on
// commas, but operators also write "AB CD" inside one value.
func splitPairs(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, splitList(v)...)
	}
	return out
}

// sheetFromFlags assembles a key sheet from the wiring flags. The
// sheet and engine layers validate it; this function only collects.
func sheetFromFlags() *keyfile.Sheet {
	return &keyfile.Sheet{
		Rotors:    splitList(rotorsFlag),
		Positions: positionsFlag,
		Rings:     ringsFlag,
		Plugboard: splitPairs(plugboardFlag),
		Reflector: reflectorFlag,
	}
}

// resolveSheet returns the effective key sheet: the --key file when
// given, otherwise the wiring flags.
func resolveSheet() (*keyfile.Sheet, error) {
	if keyPath != "" {
		return keyfile.Load(keyPath)
	}
	return sheetFromFlags(), nil
}

// buildMachine turns the effective key sheet into a validated
// machine, optionally persisting the sheet via --save-key.
func buildMachine() (*enigma.Machine, *keyfile.Sheet, error) {
	sheet, err := resolveSheet()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := sheet.Config()
	if err != nil {
		return nil, nil, err
	}
	machine, err := enigma.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	if saveKeyPath != "" {
		if err := keyfile.Save(saveKeyPath, sheet); err != nil {
			return nil, nil, err
		}
		ux.Success("key sheet written to %s", saveKeyPath)
	}
	return machine, sheet, nil
}
