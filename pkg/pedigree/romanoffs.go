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

// Romanoffs returns the sample family: four members of the Russian royal
// family, historically notable for hemophilia in the male line.
func Romanoffs() *Registry {
	r := NewRegistry()
	for _, m := range []Member{
		{Name: "alexandra", Sex: SexFemale},
		{Name: "nicholas", Sex: SexMale},
		{Name: "alexey", Sex: SexMale, Mother: "alexandra", Father: "nicholas"},
		{Name: "anastasia", Sex: SexFemale, Mother: "alexandra", Father: "nicholas"},
	} {
		// Add only fails on duplicate or invalid names; these are fixed.
		if err := r.Add(m); err != nil {
			panic(err)
		}
	}
	return r
}
