// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package bayes

import (
	"fmt"
	"sort"

	"github.com/AleutianAI/AleutianBayes/pkg/factor"
)

// ComputeMarginal computes the joint distribution over the query variables
// by eliminating every other variable of the network.
//
// Elimination order is the lexicographic order of the network's variables
// with the query variables skipped. The order affects intermediate table
// sizes and floating-point summation at the margins, not the distribution;
// fixing it keeps results reproducible across runs. The returned factor's
// value at any full assignment of the query variables is that assignment's
// joint probability.
func ComputeMarginal(n *Network, queryVars []string) (*factor.Factor, error) {
	query := make(map[string]bool, len(queryVars))
	for _, v := range queryVars {
		query[v] = true
	}

	var err error
	for _, v := range n.Variables() {
		if query[v] {
			continue
		}
		n, err = Eliminate(n, v)
		if err != nil {
			return nil, err
		}
	}

	result, err := factor.Multiply(n.Factors(), n.Domains())
	if err != nil {
		return nil, fmt.Errorf("combining remaining factors: %w", err)
	}
	return result, nil
}

// ComputeConditional computes P(event | evidence).
//
// Event and evidence are partial assignments; on a variable assigned by
// both, the evidence value wins. If the evidence has probability exactly
// zero, the result is 0 rather than an error (impossible evidence, not a
// fault). Otherwise the result is the merged event's joint probability
// divided by the evidence probability.
func ComputeConditional(n *Network, event, evidence factor.Event) (float64, error) {
	combined := make(factor.Event, len(event)+len(evidence))
	for k, v := range event {
		combined[k] = v
	}
	for k, v := range evidence {
		combined[k] = v
	}

	jointFactor, err := ComputeMarginal(n, variables(combined))
	if err != nil {
		return 0, fmt.Errorf("computing joint marginal: %w", err)
	}
	jointProb, err := jointFactor.Lookup(combined)
	if err != nil {
		return 0, fmt.Errorf("looking up joint event: %w", err)
	}

	evidenceFactor, err := ComputeMarginal(n, variables(evidence))
	if err != nil {
		return 0, fmt.Errorf("computing evidence marginal: %w", err)
	}
	evidenceProb, err := evidenceFactor.Lookup(evidence)
	if err != nil {
		return 0, fmt.Errorf("looking up evidence event: %w", err)
	}

	if evidenceProb == 0 {
		return 0, nil
	}
	return jointProb / evidenceProb, nil
}

// variables returns an event's variable names, sorted.
func variables(e factor.Event) []string {
	vars := make([]string, 0, len(e))
	for v := range e {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}
