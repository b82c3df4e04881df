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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianBayes/pkg/netdef"
	"github.com/AleutianAI/AleutianBayes/pkg/pedigree"
	"github.com/AleutianAI/AleutianBayes/pkg/ux"
)

// runPedigreeQueryCommand answers one query on a pedigree network without
// an export step in between. It reuses the marginal/conditional handlers;
// the network source must be --pedigree or --sample.
func runPedigreeQueryCommand(cmd *cobra.Command, args []string) {
	if modelPath != "" {
		fatalf("pedigree query reads --pedigree or --sample; use marginal or conditional with --model")
	}
	if pedigreePath == "" && !useSample {
		fatalf("one of --pedigree or --sample is required")
	}
	if len(eventArgs) > 0 || len(evidenceArgs) > 0 {
		runConditionalCommand(cmd, args)
		return
	}
	if len(args) == 0 {
		fatalf("name query variables for a marginal, or pass --event and --evidence for a conditional")
	}
	runMarginalCommand(cmd, args)
}

func runPedigreeExportCommand(cmd *cobra.Command, args []string) {
	var (
		registry *pedigree.Registry
		name     string
		err      error
	)
	switch {
	case pedigreePath != "":
		registry, err = pedigree.LoadRegistry(pedigreePath)
		if err != nil {
			fatalf("loading pedigree: %v", err)
		}
		name = strings.TrimSuffix(filepath.Base(pedigreePath), filepath.Ext(pedigreePath))
	case useSample:
		registry = pedigree.Romanoffs()
		name = "romanoffs"
	default:
		fatalf("one of --pedigree or --sample is required")
	}

	n, err := pedigree.BuildNetwork(registry)
	if err != nil {
		fatalf("building pedigree network: %v", err)
	}
	logger.Info("pedigree network built",
		"members", registry.Len(),
		"variables", len(n.Variables()),
		"factors", len(n.Factors()),
	)

	doc := netdef.FromNetwork(name, n)
	if outputPath == "" {
		data, err := doc.Marshal()
		if err != nil {
			fatalf("exporting network: %v", err)
		}
		fmt.Print(string(data))
		return
	}
	if err := doc.Write(outputPath); err != nil {
		fatalf("exporting network: %v", err)
	}
	ux.Success(fmt.Sprintf("wrote %s (%d variables, %d factors)",
		outputPath, len(doc.Variables), len(doc.Factors)))
}
