// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package ux

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AleutianAI/AleutianBayes/pkg/factor"
)

// Title prints a styled section title.
func Title(text string) {
	fmt.Println(render(Styles.Title, text))
}

// Success prints a success message with checkmark.
func Success(text string) {
	if plain {
		fmt.Printf("OK: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Success.Render("✓"), Styles.Success.Render(text))
}

// Warning prints a warning message.
func Warning(text string) {
	if plain {
		fmt.Printf("WARN: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Warning.Render("⚠"), Styles.Warning.Render(text))
}

// Errorf prints a formatted error message.
func Errorf(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if plain {
		fmt.Printf("ERROR: %s\n", text)
		return
	}
	fmt.Printf("%s %s\n", Styles.Error.Render("✗"), Styles.Error.Render(text))
}

// Muted prints muted/secondary text.
func Muted(text string) {
	fmt.Println(render(Styles.Muted, text))
}

// FormatProb renders a probability compactly: fixed six decimal places for
// ordinary magnitudes, scientific notation for the very small ones that
// pedigree priors produce.
func FormatProb(p float64) string {
	if p != 0 && p < 1e-4 {
		return strconv.FormatFloat(p, 'e', 6, 64)
	}
	return strconv.FormatFloat(p, 'f', 6, 64)
}

// RenderFactor renders a factor's table with one aligned row per entry, in
// the factor's own row order: scope variables as header columns, values in
// the last column.
func RenderFactor(f *factor.Factor) string {
	scope := f.Scope()

	header := append(append([]string(nil), scope...), "p")
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}

	cells := make([][]string, 0, f.Len())
	for _, r := range f.Rows() {
		row := make([]string, 0, len(header))
		row = append(row, r.Assignment...)
		row = append(row, FormatProb(r.Value))
		for i, c := range row {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
		cells = append(cells, row)
	}

	var b strings.Builder
	b.WriteString(render(Styles.Header, padRow(header, widths)))
	for _, row := range cells {
		b.WriteString("\n")
		b.WriteString(padRow(row, widths))
	}
	return b.String()
}

// RenderDomains renders a domain mapping, one variable per line, in the
// given variable order.
func RenderDomains(vars []string, domains factor.Domains) string {
	var b strings.Builder
	for i, v := range vars {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(render(Styles.Bold, v))
		b.WriteString(": ")
		b.WriteString(strings.Join(domains[v], ", "))
	}
	return b.String()
}

func padRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c + strings.Repeat(" ", widths[i]-len(c))
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
