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
	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianBayes/pkg/logging"
	"github.com/AleutianAI/AleutianBayes/pkg/ux"
)

// --- Global Command Variables ---
var (
	modelPath    string // Network definition file (netdef YAML)
	pedigreePath string // Pedigree file, converted to a hemophilia network
	useSample    bool   // Use the built-in Romanoff sample pedigree
	eventArgs    []string
	evidenceArgs []string
	outputPath   string
	logLevel     string
	logDir       string
	plainOutput  bool

	logger = logging.Default()

	rootCmd = &cobra.Command{
		Use:   "bayes",
		Short: "Exact inference over discrete Bayesian networks",
		Long: `bayes answers marginal and conditional probability queries over
discrete Bayesian networks by variable elimination. Networks come from a
YAML definition file (--model), a pedigree file (--pedigree), or the
built-in sample family (--sample).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(logging.Config{
				Level:   logging.ParseLevel(logLevel),
				LogDir:  logDir,
				Service: "cli",
			})
			if plainOutput {
				ux.SetPlain(true)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
	}

	// --- Queries ---
	marginalCmd = &cobra.Command{
		Use:   "marginal [variable...]",
		Short: "Compute the joint marginal distribution over the given variables",
		Args:  cobra.MinimumNArgs(1),
		Run:   runMarginalCommand, // Defined in cmd_query.go
	}
	conditionalCmd = &cobra.Command{
		Use:   "conditional",
		Short: "Compute P(event | evidence) for partial assignments",
		Run:   runConditionalCommand, // Defined in cmd_query.go
	}

	// --- Inspection ---
	showCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the network's variables, domains, and factors",
		Run:   runShowCommand, // Defined in cmd_show.go
	}

	// --- Pedigree ---
	pedigreeCmd = &cobra.Command{
		Use:   "pedigree",
		Short: "Work with hemophilia pedigree networks",
	}
	pedigreeExportCmd = &cobra.Command{
		Use:   "export",
		Short: "Build the hemophilia network for a pedigree and write it as a model file",
		Run:   runPedigreeExportCommand, // Defined in cmd_pedigree.go
	}
	pedigreeQueryCmd = &cobra.Command{
		Use:   "query [variable...]",
		Short: "Answer a marginal or conditional query directly on a pedigree network",
		Long: `query builds the hemophilia network for a pedigree (--pedigree or
--sample) and answers one query against it. Plain variable arguments give
a marginal; --event and --evidence give a conditional.`,
		Run: runPedigreeQueryCommand, // Defined in cmd_pedigree.go
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "Path to a network definition file (YAML)")
	rootCmd.PersistentFlags().StringVar(&pedigreePath, "pedigree", "", "Path to a pedigree file (YAML); builds the hemophilia network")
	rootCmd.PersistentFlags().BoolVar(&useSample, "sample", false, "Use the built-in Romanoff sample pedigree")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for JSON log files (disabled when empty)")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Disable styled terminal output")

	rootCmd.AddCommand(marginalCmd)

	rootCmd.AddCommand(conditionalCmd)
	conditionalCmd.Flags().StringSliceVar(&eventArgs, "event", nil, "Event assignments as VAR=VALUE (repeatable)")
	conditionalCmd.Flags().StringSliceVar(&evidenceArgs, "evidence", nil, "Evidence assignments as VAR=VALUE (repeatable)")

	rootCmd.AddCommand(showCmd)

	rootCmd.AddCommand(pedigreeCmd)
	pedigreeCmd.AddCommand(pedigreeExportCmd)
	pedigreeExportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output model file (default: stdout)")
	pedigreeCmd.AddCommand(pedigreeQueryCmd)
	pedigreeQueryCmd.Flags().StringSliceVar(&eventArgs, "event", nil, "Event assignments as VAR=VALUE (repeatable)")
	pedigreeQueryCmd.Flags().StringSliceVar(&evidenceArgs, "evidence", nil, "Evidence assignments as VAR=VALUE (repeatable)")
}
