// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"

	"github.com/rotorwerk/rotorwerk/pkg/logging"
	"github.com/rotorwerk/rotorwerk/pkg/ux"
)

// --- Global Command Variables ---
var (
	rotorsFlag    string // comma-separated rotor names, left to right
	positionsFlag string // three window letters, e.g. "KDO"
	ringsFlag     string // three ring letters
	plugboardFlag []string
	reflectorFlag string
	keyPath       string // key sheet to load; wins over the wiring flags
	saveKeyPath   string // write the effective settings as a key sheet
	inputFile     string
	outputFile    string
	plainFlag     bool
	verboseFlag   bool
	logDirFlag    string

	rootCmd = &cobra.Command{
		Use:   "rotorwerk",
		Short: "A cli to simulate the Enigma I rotor cipher machine",
		Long: `Rotorwerk simulates a three-rotor Enigma I: rotors I-V, reflectors
UKW-B and UKW-C, ring settings and plugboard. The machine is
reciprocal, so encrypt and decrypt are the same operation under the
same key sheet.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ux.Init()
			if plainFlag {
				ux.SetPlain(true)
			}

			level := logging.LevelWarn
			if verboseFlag {
				level = logging.LevelDebug
			}
			logger = logging.New(logging.Config{
				Level:   level,
				LogDir:  logDirFlag,
				Service: "cli",
			})
		},
	}

	encryptCmd = &cobra.Command{
		Use:   "encrypt [message]",
		Short: "Encipher a message with the configured machine",
		Run:   runEncrypt, // Defined in cmd_encrypt.go
	}

	// The machine is reciprocal; decrypt exists so transcripts and
	// shell history read sensibly.
	decryptCmd = &cobra.Command{
		Use:   "decrypt [message]",
		Short: "Decipher a message (same operation as encrypt)",
		Run:   runEncrypt, // Defined in cmd_encrypt.go
	}

	sessionCmd = &cobra.Command{
		Use:   "session",
		Short: "Start an interactive operator session",
		Run:   runSession, // Defined in cmd_session.go
	}

	catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "List the rotor and reflector catalog",
		Run:   runCatalog, // Defined in cmd_catalog.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logDirFlag, "log-dir", "", "Also write JSON logs to this directory")

	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd, sessionCmd} {
		cmd.Flags().StringVarP(&rotorsFlag, "rotors", "r", "I,II,III", "Rotor order, left to right (catalog I-V)")
		cmd.Flags().StringVarP(&positionsFlag, "positions", "p", "AAA", "Start positions as window letters")
		cmd.Flags().StringVar(&ringsFlag, "rings", "AAA", "Ring settings as letters")
		cmd.Flags().StringSliceVar(&plugboardFlag, "plugboard", nil, "Plugboard pairs (e.g. AB,CD)")
		cmd.Flags().StringVar(&reflectorFlag, "reflector", "B", "Reflector (B or C)")
		cmd.Flags().StringVarP(&keyPath, "key", "k", "", "Load settings from a key sheet (overrides wiring flags)")
		cmd.Flags().StringVar(&saveKeyPath, "save-key", "", "Write the effective settings to a key sheet")
	}
	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read the message from a file")
		cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the result to a file (default: stdout)")
	}

	rootCmd.AddCommand(encryptCmd)
	rootCmd.AddCommand(decryptCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(catalogCmd)
}
