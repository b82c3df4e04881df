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
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianBayes/pkg/bayes"
	"github.com/AleutianAI/AleutianBayes/pkg/ux"
	"github.com/AleutianAI/AleutianBayes/pkg/validation"
)

func runMarginalCommand(cmd *cobra.Command, args []string) {
	queryLog := logger.With("query_id", uuid.NewString())

	vars := make([]string, len(args))
	for i, arg := range args {
		v, err := validation.SanitizeVariable(arg)
		if err != nil {
			fatalf("query variable: %v", err)
		}
		vars[i] = v
	}

	n := loadNetwork()
	queryLog.Info("computing marginal", "variables", vars, "factors", len(n.Factors()))

	start := time.Now()
	f, err := bayes.ComputeMarginal(n, vars)
	if err != nil {
		queryLog.Error("marginal failed", "error", err)
		fatalf("computing marginal: %v", err)
	}
	queryLog.Info("marginal computed", "rows", f.Len(), "duration_ms", time.Since(start).Milliseconds())

	ux.Title(fmt.Sprintf("P(%s)", strings.Join(vars, ", ")))
	fmt.Println(ux.RenderFactor(f))
}

func runConditionalCommand(cmd *cobra.Command, args []string) {
	queryLog := logger.With("query_id", uuid.NewString())

	event, err := parseAssignments(eventArgs)
	if err != nil {
		fatalf("--event: %v", err)
	}
	if len(event) == 0 {
		fatalf("--event: at least one VAR=VALUE assignment is required")
	}
	evidence, err := parseAssignments(evidenceArgs)
	if err != nil {
		fatalf("--evidence: %v", err)
	}
	if len(evidence) == 0 {
		fatalf("--evidence: at least one VAR=VALUE assignment is required")
	}

	n := loadNetwork()
	queryLog.Info("computing conditional", "event", eventArgs, "evidence", evidenceArgs)

	start := time.Now()
	p, err := bayes.ComputeConditional(n, event, evidence)
	if err != nil {
		queryLog.Error("conditional failed", "error", err)
		fatalf("computing conditional: %v", err)
	}
	queryLog.Info("conditional computed", "probability", p, "duration_ms", time.Since(start).Milliseconds())

	fmt.Printf("P(%s | %s) = %s\n",
		strings.Join(eventArgs, ", "), strings.Join(evidenceArgs, ", "), ux.FormatProb(p))
}
