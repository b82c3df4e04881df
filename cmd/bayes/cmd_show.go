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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianBayes/pkg/ux"
)

func runShowCommand(cmd *cobra.Command, args []string) {
	n := loadNetwork()
	vars := n.Variables()

	ux.Title(fmt.Sprintf("Variables (%d)", len(vars)))
	fmt.Println(ux.RenderDomains(vars, n.Domains()))

	ux.Title(fmt.Sprintf("Factors (%d)", len(n.Factors())))
	for i, f := range n.Factors() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(ux.RenderFactor(f))
	}
}
