// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"strings"
	"testing"
)

func TestValidateVariable(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		wantErr  bool
	}{
		// Valid names
		{"simple", "Rain", false},
		{"single char", "A", false},
		{"with digit", "X1", false},
		{"underscore", "H_alexey", false},
		{"dotted", "node.state", false},
		{"hyphenated", "gene-m", false},
		{"max length", "A" + strings.Repeat("b", 63), false},

		// Invalid names
		{"empty", "", true},
		{"starts with digit", "1A", true},
		{"starts with underscore", "_A", true},
		{"space", "H alexey", true},
		{"control char", "A\x1fB", true},
		{"newline", "A\nB", true},
		{"unicode", "变量", true},
		{"too long", "A" + strings.Repeat("b", 64), true},
		{"equals sign", "A=B", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariable(tt.variable)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariable(%q) error = %v, wantErr %v", tt.variable, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVariables(t *testing.T) {
	tests := []struct {
		name    string
		vars    []string
		wantErr bool
	}{
		{"all valid", []string{"A", "B", "C"}, false},
		{"one invalid", []string{"A", "", "C"}, true},
		{"all invalid", []string{"1a", "2b"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariables(tt.vars)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariables(%v) error = %v, wantErr %v", tt.vars, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeVariable(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		want     string
		wantErr  bool
	}{
		{"passthrough", "Rain", "Rain", false},
		{"trimmed", "  Rain  ", "Rain", false},
		{"invalid rejected", "bad name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeVariable(tt.variable)
			if (err != nil) != tt.wantErr {
				t.Errorf("SanitizeVariable(%q) error = %v, wantErr %v", tt.variable, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SanitizeVariable(%q) = %q, want %q", tt.variable, got, tt.want)
			}
		})
	}
}
