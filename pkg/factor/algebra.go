// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package factor

import (
	"fmt"
	"strings"
)

// MaxTableEntries bounds the size of a table produced by Multiply. The
// product table is exponential in the number of distinct scope variables;
// past this bound Multiply fails with ErrTableTooLarge instead of exhausting
// memory. 2^24 entries is roughly 1 GiB of rows, far beyond any pedigree
// network we build.
const MaxTableEntries = 1 << 24

// Multiply combines factors into a single factor over the ordered union of
// their scopes (first appearance order, duplicates removed).
//
// The value table is built by enumerating the full cartesian product of the
// union scope's domains; each joint assignment's value is the product of
// every input factor's value at its own restriction of that assignment. A
// joint assignment unsupported by some input's table aborts the whole
// multiply with that factor's lookup error.
//
// A single-factor input is a no-op returning an equivalent copy. An empty
// input returns ErrNoFactors. A union-scope variable absent from domains
// (or with an empty domain) returns ErrEmptyDomain. If the output table
// would exceed MaxTableEntries, Multiply returns ErrTableTooLarge before
// allocating it.
func Multiply(factors []*Factor, domains Domains) (*Factor, error) {
	if len(factors) == 0 {
		return nil, ErrNoFactors
	}
	if len(factors) == 1 {
		return New(factors[0].scope, factors[0].rows)
	}

	var union []string
	seen := make(map[string]bool)
	for _, f := range factors {
		for _, v := range f.scope {
			if !seen[v] {
				seen[v] = true
				union = append(union, v)
			}
		}
	}

	size := 1
	for _, v := range union {
		if len(domains[v]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyDomain, v)
		}
		size *= len(domains[v])
		if size > MaxTableEntries {
			return nil, fmt.Errorf("%w: scope %v", ErrTableTooLarge, union)
		}
	}

	out := &Factor{
		scope: union,
		rows:  make([]Row, 0, size),
		index: make(map[string]float64, size),
	}
	event := make(Event, len(union))
	for _, assignment := range enumerate(union, func(v string) []string { return domains[v] }) {
		for i, v := range union {
			event[v] = assignment[i]
		}
		product := 1.0
		for _, f := range factors {
			value, err := f.Lookup(event)
			if err != nil {
				return nil, fmt.Errorf("multiplying factor over %v: %w", f.scope, err)
			}
			product *= value
		}
		out.rows = append(out.rows, Row{Assignment: assignment, Value: product})
		out.index[strings.Join(assignment, keySep)] = product
	}
	return out, nil
}

// Marginalize sums the given variable out of the factor.
//
// The result's scope is the input scope minus variable; each remaining
// assignment's value is the sum of the input's values over every value the
// eliminated variable attains in the input's own rows. Summation is over
// observed values, not the declared domain: a sparse input silently omits
// never-seen values rather than treating them as zero. For fully-populated
// CPTs the two are identical; changing this would change results for
// incomplete tables, so the observed-rows behavior is kept.
//
// Observed values are enumerated in first-seen row order, so summation order
// and output row order are deterministic. A combination of observed values
// absent from the input's table surfaces as ErrUndefinedAssignment.
func Marginalize(f *Factor, variable string) (*Factor, error) {
	if !f.InScope(variable) {
		return nil, fmt.Errorf("%w: %s not in %v", ErrVariableNotInScope, variable, f.scope)
	}

	newScope := make([]string, 0, len(f.scope)-1)
	for _, v := range f.scope {
		if v != variable {
			newScope = append(newScope, v)
		}
	}

	observed := observedValues(f)

	out := &Factor{
		scope: newScope,
		index: make(map[string]float64),
	}
	event := make(Event, len(f.scope))
	for _, assignment := range enumerate(newScope, func(v string) []string { return observed[v] }) {
		for i, v := range newScope {
			event[v] = assignment[i]
		}
		sum := 0.0
		for _, val := range observed[variable] {
			event[variable] = val
			value, err := f.Lookup(event)
			if err != nil {
				return nil, fmt.Errorf("marginalizing %s: %w", variable, err)
			}
			sum += value
		}
		out.rows = append(out.rows, Row{Assignment: assignment, Value: sum})
		out.index[strings.Join(assignment, keySep)] = sum
	}
	return out, nil
}

// observedValues collects, per scope variable, the distinct values present
// in the factor's rows, in first-seen order.
func observedValues(f *Factor) map[string][]string {
	observed := make(map[string][]string, len(f.scope))
	seen := make(map[string]map[string]bool, len(f.scope))
	for _, v := range f.scope {
		seen[v] = make(map[string]bool)
	}
	for _, r := range f.rows {
		for i, v := range f.scope {
			if !seen[v][r.Assignment[i]] {
				seen[v][r.Assignment[i]] = true
				observed[v] = append(observed[v], r.Assignment[i])
			}
		}
	}
	return observed
}
