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
	"sort"
	"strings"
)

// Event is a partial assignment of variables to value labels. An event may
// under-specify a factor's scope (in which case Lookup fails) or assign
// variables outside the scope (which Lookup ignores).
type Event map[string]string

// Domains maps each variable to its ordered, non-empty list of distinct
// value labels. Domain order determines enumeration order of generated
// assignments, nothing more.
type Domains map[string][]string

// Row is one entry of a factor's value table: an assignment tuple (one label
// per scope variable, in scope order) and its value.
type Row struct {
	Assignment []string
	Value      float64
}

// keySep separates assignment labels inside internal table keys. Value
// labels never contain it (it is a control character rejected by the
// validation package and never produced by the pedigree builders).
const keySep = "\x1f"

// Factor is a tabulated function from assignments of its scope variables to
// real values.
//
// The scope fixes the positional meaning of assignment tuples. Rows are kept
// in insertion order; the table index exists only for O(1) lookup. A factor
// used as a CPT should carry one row per combination of its variables'
// domains, but construction does not enforce completeness (callers own that,
// and Marginalize deliberately operates on observed rows only).
type Factor struct {
	scope []string
	rows  []Row
	index map[string]float64
}

// New builds a factor from an ordered scope and explicit rows.
//
// Inputs:
//
//	scope - The ordered variables the factor is defined over.
//	rows  - Assignment tuples (scope order) with their values.
//
// Outputs:
//
//	*Factor - The constructed factor.
//	error   - ErrBadRowWidth or ErrDuplicateAssignment on malformed rows.
//
// Assignments and scope are copied; the caller keeps ownership of its
// slices. Completeness against any domain mapping is not validated.
func New(scope []string, rows []Row) (*Factor, error) {
	f := &Factor{
		scope: append([]string(nil), scope...),
		rows:  make([]Row, 0, len(rows)),
		index: make(map[string]float64, len(rows)),
	}
	for _, r := range rows {
		if len(r.Assignment) != len(scope) {
			return nil, fmt.Errorf("%w: got %d labels for scope %v", ErrBadRowWidth, len(r.Assignment), scope)
		}
		key := strings.Join(r.Assignment, keySep)
		if _, ok := f.index[key]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateAssignment, r.Assignment)
		}
		f.index[key] = r.Value
		f.rows = append(f.rows, Row{
			Assignment: append([]string(nil), r.Assignment...),
			Value:      r.Value,
		})
	}
	return f, nil
}

// MustNew is New but panics on error. Intended for hand-authored tables
// (CPT builders, tests) where a malformed row is a programming bug.
func MustNew(scope []string, rows []Row) *Factor {
	f, err := New(scope, rows)
	if err != nil {
		panic(err)
	}
	return f
}

// Scope returns a copy of the factor's ordered scope.
func (f *Factor) Scope() []string {
	return append([]string(nil), f.scope...)
}

// Rows returns the factor's rows in insertion order. The returned slice is
// shared; callers must not mutate it.
func (f *Factor) Rows() []Row {
	return f.rows
}

// Len returns the number of table entries.
func (f *Factor) Len() int {
	return len(f.rows)
}

// InScope reports whether the variable is part of the factor's scope.
func (f *Factor) InScope(variable string) bool {
	for _, v := range f.scope {
		if v == variable {
			return true
		}
	}
	return false
}

// Lookup returns the factor's value at the given event.
//
// The event must assign a value to every scope variable; extra variables are
// ignored. Failure modes:
//
//   - ErrMissingVariable if a scope variable is absent from the event.
//   - ErrUndefinedAssignment if the assembled assignment has no table entry.
func (f *Factor) Lookup(event Event) (float64, error) {
	labels := make([]string, len(f.scope))
	for i, v := range f.scope {
		val, ok := event[v]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingVariable, v)
		}
		labels[i] = val
	}
	value, ok := f.index[strings.Join(labels, keySep)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedAssignment, formatEvent(event, f.scope))
	}
	return value, nil
}

// String renders the factor for debugging: scope header, then one line per
// row in insertion order.
func (f *Factor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v:", f.scope)
	for _, r := range f.rows {
		fmt.Fprintf(&b, "\n  %v: %v", r.Assignment, r.Value)
	}
	return b.String()
}

// formatEvent renders an event restricted to the given scope, scope order
// first, then any remaining variables sorted for stable error messages.
func formatEvent(event Event, scope []string) string {
	parts := make([]string, 0, len(event))
	seen := make(map[string]bool, len(scope))
	for _, v := range scope {
		if val, ok := event[v]; ok {
			parts = append(parts, fmt.Sprintf("%s=%s", v, val))
			seen[v] = true
		}
	}
	rest := make([]string, 0, len(event))
	for v := range event {
		if !seen[v] {
			rest = append(rest, v)
		}
	}
	sort.Strings(rest)
	for _, v := range rest {
		parts = append(parts, fmt.Sprintf("%s=%s", v, event[v]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Events enumerates every full assignment of the given variables, taking
// values from the domain mapping. Enumeration is in domain order with the
// last variable cycling fastest, matching the row order produced by the
// algebra operations. Variables with empty domains yield no events.
func Events(vars []string, domains Domains) []Event {
	assignments := enumerate(vars, func(v string) []string { return domains[v] })
	events := make([]Event, len(assignments))
	for i, a := range assignments {
		e := make(Event, len(vars))
		for j, v := range vars {
			e[v] = a[j]
		}
		events[i] = e
	}
	return events
}

// enumerate returns the cartesian product of values(v) across vars, last
// variable fastest. An empty vars list yields a single empty assignment.
func enumerate(vars []string, values func(string) []string) [][]string {
	total := 1
	for _, v := range vars {
		total *= len(values(v))
	}
	out := make([][]string, 0, total)
	if total == 0 {
		return out
	}
	current := make([]string, len(vars))
	var walk func(i int)
	walk = func(i int) {
		if i == len(vars) {
			out = append(out, append([]string(nil), current...))
			return
		}
		for _, val := range values(vars[i]) {
			current[i] = val
			walk(i + 1)
		}
	}
	walk(0)
	return out
}
