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
	"fmt"
	"os"
	"strings"

	"github.com/AleutianAI/AleutianBayes/pkg/bayes"
	"github.com/AleutianAI/AleutianBayes/pkg/factor"
	"github.com/AleutianAI/AleutianBayes/pkg/netdef"
	"github.com/AleutianAI/AleutianBayes/pkg/pedigree"
	"github.com/AleutianAI/AleutianBayes/pkg/ux"
	"github.com/AleutianAI/AleutianBayes/pkg/validation"
)

// fatalf reports an error and exits. Command handlers call this instead of
// returning; the process is one-shot.
func fatalf(format string, args ...any) {
	ux.Errorf(format, args...)
	logger.Close()
	os.Exit(1)
}

// loadNetwork resolves the network source flags: exactly one of --model,
// --pedigree, or --sample must be set.
func loadNetwork() *bayes.Network {
	sources := 0
	for _, set := range []bool{modelPath != "", pedigreePath != "", useSample} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		fatalf("exactly one of --model, --pedigree, or --sample is required")
	}

	switch {
	case modelPath != "":
		n, err := netdef.LoadNetwork(modelPath)
		if err != nil {
			fatalf("loading model: %v", err)
		}
		return n
	case pedigreePath != "":
		r, err := pedigree.LoadRegistry(pedigreePath)
		if err != nil {
			fatalf("loading pedigree: %v", err)
		}
		n, err := pedigree.BuildNetwork(r)
		if err != nil {
			fatalf("building pedigree network: %v", err)
		}
		return n
	default:
		n, err := pedigree.BuildNetwork(pedigree.Romanoffs())
		if err != nil {
			fatalf("building sample network: %v", err)
		}
		return n
	}
}

// parseAssignments converts VAR=VALUE arguments into an event.
func parseAssignments(args []string) (factor.Event, error) {
	event := make(factor.Event, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected VAR=VALUE, got %q", arg)
		}
		name, err := validation.SanitizeVariable(name)
		if err != nil {
			return nil, err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Errorf("empty value for variable %s", name)
		}
		if _, ok := event[name]; ok {
			return nil, fmt.Errorf("variable %s assigned twice", name)
		}
		event[name] = value
	}
	return event, nil
}
