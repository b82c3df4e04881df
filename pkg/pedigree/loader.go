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
	"os"

	"gopkg.in/yaml.v3"
)

// pedigreeFile is the on-disk YAML shape of a family tree:
//
//	members:
//	  - name: alexandra
//	    sex: female
//	  - name: alexey
//	    sex: male
//	    mother: alexandra
//	    father: nicholas
type pedigreeFile struct {
	Members []memberEntry `yaml:"members"`
}

type memberEntry struct {
	Name   string `yaml:"name"`
	Sex    string `yaml:"sex"`
	Mother string `yaml:"mother,omitempty"`
	Father string `yaml:"father,omitempty"`
}

// ParseRegistry decodes a pedigree YAML document into a validated registry.
func ParseRegistry(data []byte) (*Registry, error) {
	var doc pedigreeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing pedigree: %w", err)
	}
	if len(doc.Members) == 0 {
		return nil, fmt.Errorf("pedigree has no members")
	}

	r := NewRegistry()
	for _, e := range doc.Members {
		sex, err := ParseSex(e.Sex)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", e.Name, err)
		}
		if err := r.Add(Member{Name: e.Name, Sex: sex, Mother: e.Mother, Father: e.Father}); err != nil {
			return nil, err
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadRegistry reads and parses a pedigree YAML file.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pedigree file: %w", err)
	}
	return ParseRegistry(data)
}
