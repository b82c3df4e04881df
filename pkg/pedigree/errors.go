// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package pedigree builds hemophilia inheritance networks from family
// trees.
//
// The package is a pure producer for the inference core: it turns a flat
// registry of family members into the factors and domains of a Bayesian
// network modeling X-linked recessive inheritance. The core (pkg/factor,
// pkg/bayes) knows nothing about families; only this package does.
//
// Members reference their parents by name into the registry rather than by
// pointer, which keeps the tree trivially serializable and free of
// ownership cycles.
package pedigree

import "errors"

// Sentinel errors for registry construction and validation.
var (
	// ErrDuplicateMember is returned when adding a member whose name is
	// already registered.
	ErrDuplicateMember = errors.New("duplicate family member")

	// ErrUnknownMember is returned when a parent reference does not
	// resolve to a registered member.
	ErrUnknownMember = errors.New("unknown family member")

	// ErrUnknownSex is returned for a sex value outside female/male.
	ErrUnknownSex = errors.New("unknown sex")

	// ErrSexMismatch is returned when a mother reference resolves to a
	// male member or a father reference to a female one.
	ErrSexMismatch = errors.New("parent sex mismatch")

	// ErrPedigreeCycle is returned when parent references form a cycle.
	ErrPedigreeCycle = errors.New("pedigree contains a cycle")
)
