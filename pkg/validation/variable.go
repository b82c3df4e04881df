// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation for user-supplied identifiers.
//
// Variable names arrive from YAML model files and CLI arguments and end up
// as map keys, log attributes, and parts of rendered output. Validating them
// up front keeps error messages sane and rules out control characters that
// would collide with internal encodings.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// variablePattern matches valid variable names.
// Allows: letters, digits, underscores, hyphens, dots; must start with a
// letter. Max length: 64 characters.
var variablePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.\-]{0,63}$`)

// ValidateVariable validates a variable name.
//
// Valid names:
//   - 1-64 characters
//   - start with a letter
//   - letters, digits, underscores, dots, or hyphens after that
//
// Returns an error if the name is invalid.
func ValidateVariable(name string) error {
	if name == "" {
		return fmt.Errorf("variable name cannot be empty")
	}

	if !variablePattern.MatchString(name) {
		return fmt.Errorf("invalid variable name: %q (must be 1-64 chars, start with a letter, and contain only letters, digits, '_', '.', '-')", name)
	}

	return nil
}

// ValidateVariables validates multiple variable names.
// Returns an error listing all invalid names if any fail validation.
func ValidateVariables(names []string) error {
	var invalid []string
	for _, n := range names {
		if err := ValidateVariable(n); err != nil {
			invalid = append(invalid, n)
		}
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid variable names: %v", invalid)
	}
	return nil
}

// SanitizeVariable trims surrounding whitespace and validates the result.
// Returns the trimmed name if valid, or an error if invalid.
func SanitizeVariable(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := ValidateVariable(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
