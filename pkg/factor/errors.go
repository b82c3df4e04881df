// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package factor provides tabulated factors over discrete variables and the
// algebra (multiplication, marginalization) used by exact inference.
//
// A Factor maps assignments of a fixed, ordered set of variables (its scope)
// to real values. Conditional probability tables (CPTs) are factors whose
// values sum to one over the child variable for each fixed parent assignment,
// but the algebra itself never assumes or enforces that.
//
// # Ownership Model
//
// Factors are read-only after construction. Every algebra operation returns a
// new Factor; inputs are never mutated. Row insertion order is preserved so
// iteration and floating-point summation are deterministic across runs.
//
// # Thread Safety
//
// A constructed Factor is safe for concurrent reads. Construction itself is
// single-goroutine.
package factor

import "errors"

// Sentinel errors for factor operations.
var (
	// ErrMissingVariable is returned by Lookup when the event does not
	// assign a value to one of the factor's scope variables.
	ErrMissingVariable = errors.New("variable not found in given event")

	// ErrUndefinedAssignment is returned by Lookup when the event fully
	// specifies the scope but the assignment has no table entry. This
	// usually means an incomplete CPT or a typo in a value label.
	ErrUndefinedAssignment = errors.New("no value assigned to event")

	// ErrNoFactors is returned by Multiply when given an empty input.
	ErrNoFactors = errors.New("no factors to multiply")

	// ErrVariableNotInScope is returned by Marginalize when asked to sum
	// out a variable the factor is not defined over.
	ErrVariableNotInScope = errors.New("variable not in factor scope")

	// ErrEmptyDomain is returned by Multiply when a scope variable has no
	// values in the domain map, which would otherwise collapse the product
	// table to nothing and fail far from the cause.
	ErrEmptyDomain = errors.New("variable has empty or missing domain")

	// ErrTableTooLarge is returned by Multiply when the output table would
	// exceed MaxTableEntries. Exact inference is exponential in the number
	// of distinct variables; this bound fails fast instead of exhausting
	// memory.
	ErrTableTooLarge = errors.New("product table exceeds maximum size")

	// ErrDuplicateAssignment is returned by New when two rows carry the
	// same assignment tuple.
	ErrDuplicateAssignment = errors.New("duplicate assignment in factor rows")

	// ErrBadRowWidth is returned by New when a row's assignment length
	// does not match the scope length.
	ErrBadRowWidth = errors.New("assignment width does not match scope")
)
