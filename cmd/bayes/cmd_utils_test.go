// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"testing"

	"github.com/AleutianAI/AleutianBayes/pkg/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	event, err := parseAssignments([]string{"H_alexey=+", "G_alexandra=xX"})
	require.NoError(t, err)
	assert.Equal(t, factor.Event{
		"H_alexey":    "+",
		"G_alexandra": "xX",
	}, event)
}

func TestParseAssignmentsEmpty(t *testing.T) {
	event, err := parseAssignments(nil)
	require.NoError(t, err)
	assert.Empty(t, event)
}

func TestParseAssignmentsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no equals", []string{"H_alexey"}},
		{"empty value", []string{"H_alexey="}},
		{"blank value", []string{"H_alexey=   "}},
		{"invalid variable", []string{"1bad=+"}},
		{"empty variable", []string{"=+"}},
		{"duplicate variable", []string{"A=x", "A=y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAssignments(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseAssignmentsTrimsWhitespace(t *testing.T) {
	event, err := parseAssignments([]string{" Rain = yes "})
	require.NoError(t, err)
	assert.Equal(t, factor.Event{"Rain": "yes"}, event)
}
