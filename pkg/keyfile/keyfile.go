// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package keyfile reads and writes key sheets: the daily machine
// settings both parties need to exchange messages. A sheet is a small
// YAML document with operator-facing values (window letters instead of
// 0-25 indexes):
//
//	rotors: [I, II, III]
//	positions: KDO
//	rings: AAB
//	plugboard: [AB, CD, EF]
//	reflector: B
//
// The package validates a sheet before handing it to the engine, but
// the engine re-validates everything in enigma.New; the file layer is
// never trusted to be the only gate.
package keyfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rotorwerk/rotorwerk/pkg/enigma"
)

// sheetValidate is the shared validator instance for key sheets.
var sheetValidate *validator.Validate

func init() {
	sheetValidate = validator.New()
}

// Sheet is the YAML form of one daily key. Positions and Rings are
// three window letters ("AAA"); both default to "AAA" when omitted.
type Sheet struct {
	Rotors    []string `yaml:"rotors" validate:"required,len=3,dive,required"`
	Positions string   `yaml:"positions,omitempty" validate:"omitempty,len=3,alpha"`
	Rings     string   `yaml:"rings,omitempty" validate:"omitempty,len=3,alpha"`
	Plugboard []string `yaml:"plugboard,omitempty" validate:"omitempty,max=13,dive,len=2,alpha"`
	Reflector string   `yaml:"reflector,omitempty" validate:"omitempty,oneof=B C b c"`
}

// Validate checks the sheet's shape. Wiring-level checks (unknown
// rotor names, plugboard letter reuse) are left to enigma.New so the
// two layers cannot drift apart.
func (s *Sheet) Validate() error {
	if err := sheetValidate.Struct(s); err != nil {
		return fmt.Errorf("keyfile: invalid sheet: %w", err)
	}
	return nil
}

// Config converts the sheet into an engine configuration. The engine
// performs its own eager validation, so a Config derived from a bad
// sheet still cannot produce a machine.
func (s *Sheet) Config() (enigma.Config, error) {
	var cfg enigma.Config
	if err := s.Validate(); err != nil {
		return cfg, err
	}

	for i, name := range s.Rotors {
		cfg.Rotors[i] = enigma.RotorID(strings.ToUpper(strings.TrimSpace(name)))
	}

	positions, err := parseWindows(s.Positions, "positions")
	if err != nil {
		return cfg, err
	}
	rings, err := parseWindows(s.Rings, "rings")
	if err != nil {
		return cfg, err
	}
	cfg.Positions = positions
	cfg.Rings = rings
	cfg.Plugboard = s.Plugboard
	cfg.Reflector = enigma.ReflectorID(strings.ToUpper(s.Reflector))
	return cfg, nil
}

// parseWindows maps three window letters to rotor indexes. An empty
// value means the operator left the wheels at AAA.
func parseWindows(windows, field string) ([3]int, error) {
	var out [3]int
	if windows == "" {
		return out, nil
	}
	letters := strings.ToUpper(windows)
	if len(letters) != 3 {
		return out, fmt.Errorf("keyfile: %s must be three letters, got %q", field, windows)
	}
	for i := 0; i < 3; i++ {
		c := letters[i]
		if c < 'A' || c > 'Z' {
			return out, fmt.Errorf("keyfile: %s contains %q, want A-Z", field, windows[i])
		}
		out[i] = int(c - 'A')
	}
	return out, nil
}

// FormatWindows is the inverse of the window parsing: it renders rotor
// indexes as the three letters an operator reads off the machine.
func FormatWindows(positions [3]int) string {
	b := make([]byte, 3)
	for i, p := range positions {
		b[i] = byte(p%26) + 'A'
	}
	return string(b)
}

// Load reads and validates a key sheet from disk.
func Load(path string) (*Sheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keyfile: read %s: %w", path, err)
	}
	var sheet Sheet
	if err := yaml.Unmarshal(raw, &sheet); err != nil {
		return nil, fmt.Errorf("keyfile: parse %s: %w", path, err)
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// Save validates and writes a key sheet. The file is created 0600:
// a key sheet is a secret.
func Save(path string, sheet *Sheet) error {
	if err := sheet.Validate(); err != nil {
		return err
	}
	raw, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("keyfile: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return fmt.Errorf("keyfile: write %s: %w", path, err)
	}
	return nil
}
