// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package pedigree

import (
	"fmt"

	"github.com/AleutianAI/AleutianBayes/pkg/validation"
)

// Sex is the biological sex of a family member, which determines the
// member's genotype domain and whether a paternal gene variable exists.
type Sex int

const (
	// SexFemale members carry two X chromosomes (genotypes xx, xX, XX).
	SexFemale Sex = iota

	// SexMale members carry one X chromosome (genotypes xy, Xy).
	SexMale
)

// String returns "female" or "male".
func (s Sex) String() string {
	switch s {
	case SexFemale:
		return "female"
	case SexMale:
		return "male"
	default:
		return "unknown"
	}
}

// ParseSex converts a string label to a Sex.
func ParseSex(s string) (Sex, error) {
	switch s {
	case "female":
		return SexFemale, nil
	case "male":
		return SexMale, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSex, s)
	}
}

// Member is a single member of a family tree. Mother and Father name other
// members of the same registry; an empty reference means the parent is
// unknown and the member is treated as a founder on that side.
type Member struct {
	Name   string
	Sex    Sex
	Mother string
	Father string
}

// Registry is a flat, insertion-ordered collection of family members.
// Parent references are resolved and validated by Validate (called from
// BuildNetwork), not at Add time, so members may be added in any order.
type Registry struct {
	order   []string
	members map[string]Member
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{members: make(map[string]Member)}
}

// Add registers a member. Names must be unique and valid identifiers
// (they become part of the network's variable names).
func (r *Registry) Add(m Member) error {
	if err := validation.ValidateVariable(m.Name); err != nil {
		return fmt.Errorf("member name: %w", err)
	}
	if m.Sex != SexFemale && m.Sex != SexMale {
		return fmt.Errorf("%w: member %s", ErrUnknownSex, m.Name)
	}
	if _, ok := r.members[m.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateMember, m.Name)
	}
	r.members[m.Name] = m
	r.order = append(r.order, m.Name)
	return nil
}

// Member returns the named member.
func (r *Registry) Member(name string) (Member, bool) {
	m, ok := r.members[name]
	return m, ok
}

// Members returns all members in insertion order.
func (r *Registry) Members() []Member {
	out := make([]Member, len(r.order))
	for i, name := range r.order {
		out[i] = r.members[name]
	}
	return out
}

// Len returns the number of registered members.
func (r *Registry) Len() int {
	return len(r.order)
}

// Validate checks that every parent reference resolves to a member of the
// right sex and that the references are acyclic.
func (r *Registry) Validate() error {
	for _, m := range r.Members() {
		if m.Mother != "" {
			mother, ok := r.members[m.Mother]
			if !ok {
				return fmt.Errorf("%w: mother %q of %s", ErrUnknownMember, m.Mother, m.Name)
			}
			if mother.Sex != SexFemale {
				return fmt.Errorf("%w: mother %q of %s is not female", ErrSexMismatch, m.Mother, m.Name)
			}
		}
		if m.Father != "" {
			father, ok := r.members[m.Father]
			if !ok {
				return fmt.Errorf("%w: father %q of %s", ErrUnknownMember, m.Father, m.Name)
			}
			if father.Sex != SexMale {
				return fmt.Errorf("%w: father %q of %s is not male", ErrSexMismatch, m.Father, m.Name)
			}
		}
	}
	return r.checkAcyclic()
}

// checkAcyclic walks parent references depth-first, failing on a back edge.
func (r *Registry) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(r.order))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: via %s", ErrPedigreeCycle, name)
		}
		state[name] = visiting
		m := r.members[name]
		for _, parent := range []string{m.Mother, m.Father} {
			if parent == "" {
				continue
			}
			if err := visit(parent); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, name := range r.order {
		if err := visit(name); err != nil {
			return err
		}
	}
	return nil
}
