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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPedigreeSubcommandsRegistered(t *testing.T) {
	queryCmd, _, err := rootCmd.Find([]string{"pedigree", "query"})
	require.NoError(t, err)
	assert.Equal(t, "query", queryCmd.Name())
	assert.NotNil(t, queryCmd.Flags().Lookup("event"))
	assert.NotNil(t, queryCmd.Flags().Lookup("evidence"))

	exportCmd, _, err := rootCmd.Find([]string{"pedigree", "export"})
	require.NoError(t, err)
	assert.Equal(t, "export", exportCmd.Name())
	assert.NotNil(t, exportCmd.Flags().Lookup("output"))
}

func TestPedigreeQueryMarginalOnSample(t *testing.T) {
	rootCmd.SetArgs([]string{"pedigree", "query", "--sample", "--plain", "H_alexey"})
	defer rootCmd.SetArgs(nil)

	assert.NoError(t, rootCmd.Execute())
}
