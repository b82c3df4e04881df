// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package bayes implements exact inference over discrete Bayesian networks
// by variable elimination.
//
// A Network is a bag of factors (typically CPTs) plus the domain mapping
// that governs them. Eliminate removes one variable by multiplying the
// factors that mention it and summing it out of the product; the query
// functions drive repeated elimination to answer marginal and conditional
// probability queries.
//
// # Lifecycle
//
// Networks are constructed once and never mutated. Eliminate returns a new
// Network; each query call owns its private chain of derived networks, so
// concurrent queries against the same Network are safe.
package bayes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AleutianAI/AleutianBayes/pkg/factor"
)

// Network is an unordered collection of factors plus the governing domain
// mapping. Its variable set is the union of all factor scopes.
type Network struct {
	factors []*factor.Factor
	domains factor.Domains
}

// New constructs a network from factors and a domain mapping. The factors
// slice is copied; the factors themselves are shared and must not be
// mutated (they are read-only after construction anyway).
func New(factors []*factor.Factor, domains factor.Domains) *Network {
	return &Network{
		factors: append([]*factor.Factor(nil), factors...),
		domains: domains,
	}
}

// Factors returns the network's factors. The returned slice is shared;
// callers must not mutate it.
func (n *Network) Factors() []*factor.Factor {
	return n.factors
}

// Domains returns the network's domain mapping.
func (n *Network) Domains() factor.Domains {
	return n.domains
}

// Variables returns the union of all factor scopes, sorted. Sorting keeps
// the derived elimination order deterministic across runs.
func (n *Network) Variables() []string {
	seen := make(map[string]bool)
	var vars []string
	for _, f := range n.factors {
		for _, v := range f.Scope() {
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}
	sort.Strings(vars)
	return vars
}

// String renders every factor, for debugging.
func (n *Network) String() string {
	parts := make([]string, len(n.factors))
	for i, f := range n.factors {
		parts[i] = f.String()
	}
	return strings.Join(parts, "\n\n")
}

// Eliminate removes a variable from the network.
//
// The factors mentioning the variable are multiplied into one, the variable
// is summed out of the product, and the reduced factor replaces them
// (appended after the untouched factors, whose order is preserved). Domains
// are unchanged. If no factor mentions the variable, the network is
// returned as-is; this is the terminal no-op case.
func Eliminate(n *Network, variable string) (*Network, error) {
	var with, without []*factor.Factor
	for _, f := range n.factors {
		if f.InScope(variable) {
			with = append(with, f)
		} else {
			without = append(without, f)
		}
	}
	if len(with) == 0 {
		return n, nil
	}

	product, err := factor.Multiply(with, n.domains)
	if err != nil {
		return nil, fmt.Errorf("eliminating %s: %w", variable, err)
	}
	reduced, err := factor.Marginalize(product, variable)
	if err != nil {
		return nil, fmt.Errorf("eliminating %s: %w", variable, err)
	}

	return New(append(without, reduced), n.domains), nil
}
