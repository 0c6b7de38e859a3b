// Copyright (C) 2026 Rotorwerk Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package enigma

import "fmt"

// ConfigError reports an invalid machine setting at construction time.
// Process never fails: once New returns a Machine, every input string
// is valid, so this is the package's only error type.
type ConfigError struct {
	// Field names the offending setting ("rotors", "positions",
	// "rings", "plugboard", "reflector").
	Field string

	// Reason is a human-readable description of the violation.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("enigma: invalid %s: %s", e.Field, e.Reason)
}
