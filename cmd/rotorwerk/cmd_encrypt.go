// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rotorwerk/rotorwerk/pkg/keyfile"
	"github.com/rotorwerk/rotorwerk/pkg/ux"
)

// runEncrypt handles both encrypt and decrypt: the machine is
// reciprocal, so the only difference is the word the operator typed.
func runEncrypt(cmd *cobra.Command, args []string) {
	machine, _, err := buildMachine()
	if err != nil {
		fail(err)
	}

	message, err := readMessage(args)
	if err != nil {
		fail(err)
	}

	opLog := logger.With("op_id", uuid.NewString(), "op", cmd.Name())
	opLog.Debug("machine configured", "windows", keyfile.FormatWindows(machine.Positions()))

	result := machine.Process(message)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(result), 0644); err != nil {
			fail(fmt.Errorf("write %s: %w", outputFile, err))
		}
		ux.Success("wrote %d characters to %s", len(result), outputFile)
	} else {
		ux.Result(result)
	}

	opLog.Info("message processed",
		"characters", len(message),
		"windows_after", keyfile.FormatWindows(machine.Positions()),
	)
}

// readMessage picks the message source: positional arguments, then
// --file, then stdin. Positional arguments are joined with spaces, so
// quoting the whole message is optional.
func readMessage(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if inputFile != "" {
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", inputFile, err)
		}
		return string(raw), nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(raw), nil
}
