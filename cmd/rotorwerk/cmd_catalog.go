// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rotorwerk/rotorwerk/pkg/enigma"
	"github.com/rotorwerk/rotorwerk/pkg/ux"
)

// runCatalog prints the fixed wheel catalog. Rows go through
// ux.Result so the output stays grep-able in scripts.
func runCatalog(cmd *cobra.Command, args []string) {
	ux.Title("Rotors")
	for _, info := range enigma.Rotors() {
		ux.Result(fmt.Sprintf("%-4s %s  turnover %c", info.ID, info.Wiring, info.Turnover))
	}

	fmt.Println()
	ux.Title("Reflectors")
	for _, info := range enigma.Reflectors() {
		ux.Result(fmt.Sprintf("%-4s %s", info.ID, info.Wiring))
	}
}
