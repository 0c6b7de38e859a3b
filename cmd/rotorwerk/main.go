// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/rotorwerk/rotorwerk/pkg/logging"
)

// logger is the process-wide logger, reconfigured in the root
// command's PersistentPreRun once flags are parsed.
var logger = logging.Default()

func main() {
	// The root command swaps the logger once flags are parsed, so
	// resolve it at exit time rather than here.
	defer func() { logger.Close() }()

	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}
