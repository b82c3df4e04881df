// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"strings"
	"testing"

	"github.com/AleutianAI/AleutianBayes/pkg/factor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatProb(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "0.000000"},
		{1, "1.000000"},
		{0.472, "0.472000"},
		{1.0 / 30000.0, "3.333333e-05"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatProb(tt.p))
	}
}

func TestRenderFactorPlain(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { SetPlain(detectPlain()) })

	f := factor.MustNew([]string{"Rain", "Wet"}, []factor.Row{
		{Assignment: []string{"yes", "yes"}, Value: 0.9},
		{Assignment: []string{"no", "yes"}, Value: 0.3},
	})

	out := RenderFactor(f)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Rain  Wet  p", lines[0])
	assert.Contains(t, lines[1], "yes")
	assert.Contains(t, lines[1], "0.900000")
	assert.Contains(t, lines[2], "no")

	// Columns align: every line ends at the same value column.
	assert.Equal(t, strings.Index(lines[1], "0.900000"), strings.Index(lines[2], "0.300000"))
}

func TestRenderDomains(t *testing.T) {
	SetPlain(true)
	t.Cleanup(func() { SetPlain(detectPlain()) })

	domains := factor.Domains{
		"A": {"0", "1"},
		"B": {"x", "y"},
	}
	out := RenderDomains([]string{"A", "B"}, domains)
	assert.Equal(t, "A: 0, 1\nB: x, y", out)
}
