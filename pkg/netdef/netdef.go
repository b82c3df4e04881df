// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package netdef reads and writes Bayesian network definition files.
//
// A definition file is a YAML document listing variable domains and factor
// tables:
//
//	name: sprinkler
//	variables:
//	  - name: Rain
//	    domain: ["yes", "no"]
//	factors:
//	  - scope: [Rain]
//	    rows:
//	      - assignment: ["yes"]
//	        p: 0.2
//	      - assignment: ["no"]
//	        p: 0.8
//
// Parsing validates structure (go-playground/validator tags) and semantics
// (declared variables, domain membership, assignment widths) before any
// factor is built, so the inference core only ever sees well-formed input.
package netdef

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/AleutianBayes/pkg/bayes"
	"github.com/AleutianAI/AleutianBayes/pkg/factor"
	"github.com/AleutianAI/AleutianBayes/pkg/validation"
)

// Sentinel errors for definition-file semantics.
var (
	// ErrUnknownVariable is returned when a factor scope references a
	// variable that is not declared in the variables section.
	ErrUnknownVariable = errors.New("scope references undeclared variable")

	// ErrLabelNotInDomain is returned when a row assignment uses a value
	// label outside the declared domain of its variable.
	ErrLabelNotInDomain = errors.New("value label not in variable domain")

	// ErrDuplicateVariable is returned when the same variable is declared
	// twice in the variables section.
	ErrDuplicateVariable = errors.New("variable declared twice")

	// ErrBadLabel is returned when a domain value label is empty or
	// contains control characters. Factor tables key assignments on a
	// control-character separator, so such labels could collide.
	ErrBadLabel = errors.New("invalid domain value label")
)

// Document is the top-level shape of a network definition file.
type Document struct {
	Name      string        `yaml:"name,omitempty"`
	Variables []VariableDef `yaml:"variables" validate:"required,min=1,dive"`
	Factors   []FactorDef   `yaml:"factors" validate:"required,min=1,dive"`
}

// VariableDef declares one variable and its ordered domain.
type VariableDef struct {
	Name   string   `yaml:"name" validate:"required"`
	Domain []string `yaml:"domain" validate:"required,min=1,unique"`
}

// FactorDef declares one factor: its ordered scope and value table.
type FactorDef struct {
	Scope []string `yaml:"scope" validate:"required,min=1,unique"`
	Rows  []RowDef `yaml:"rows" validate:"required,min=1,dive"`
}

// RowDef is one table entry: an assignment tuple in scope order and its
// value. Values are non-negative weights; for CPTs they are probabilities.
type RowDef struct {
	Assignment []string `yaml:"assignment" validate:"required,min=1"`
	P          float64  `yaml:"p" validate:"gte=0"`
}

var structValidator = validator.New()

// Parse decodes and validates a definition document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing network definition: %w", err)
	}
	if err := structValidator.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid network definition: %w", err)
	}
	if err := doc.validateSemantics(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load reads and parses a definition file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network definition: %w", err)
	}
	return Parse(data)
}

// validateSemantics checks the cross-references the struct tags cannot:
// variable names, scope declarations, domain membership, and row widths.
func (d *Document) validateSemantics() error {
	domains := make(map[string][]string, len(d.Variables))
	for _, v := range d.Variables {
		if err := validation.ValidateVariable(v.Name); err != nil {
			return err
		}
		if _, ok := domains[v.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateVariable, v.Name)
		}
		for _, label := range v.Domain {
			if label == "" || strings.ContainsFunc(label, unicode.IsControl) {
				return fmt.Errorf("%w: variable %s, label %q", ErrBadLabel, v.Name, label)
			}
		}
		domains[v.Name] = v.Domain
	}

	for i, f := range d.Factors {
		for _, v := range f.Scope {
			if _, ok := domains[v]; !ok {
				return fmt.Errorf("%w: factor %d references %q", ErrUnknownVariable, i, v)
			}
		}
		for _, r := range f.Rows {
			if len(r.Assignment) != len(f.Scope) {
				return fmt.Errorf("factor %d: assignment %v does not match scope %v",
					i, r.Assignment, f.Scope)
			}
			for j, label := range r.Assignment {
				if !contains(domains[f.Scope[j]], label) {
					return fmt.Errorf("%w: factor %d assigns %s=%q, domain is %v",
						ErrLabelNotInDomain, i, f.Scope[j], label, domains[f.Scope[j]])
				}
			}
		}
	}
	return nil
}

// Network builds the Bayesian network the document describes.
func (d *Document) Network() (*bayes.Network, error) {
	domains := make(factor.Domains, len(d.Variables))
	for _, v := range d.Variables {
		domains[v.Name] = v.Domain
	}

	factors := make([]*factor.Factor, 0, len(d.Factors))
	for i, fd := range d.Factors {
		rows := make([]factor.Row, len(fd.Rows))
		for j, r := range fd.Rows {
			rows[j] = factor.Row{Assignment: r.Assignment, Value: r.P}
		}
		f, err := factor.New(fd.Scope, rows)
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", i, err)
		}
		factors = append(factors, f)
	}
	return bayes.New(factors, domains), nil
}

// LoadNetwork is the common path: read, validate, and build in one call.
func LoadNetwork(path string) (*bayes.Network, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return doc.Network()
}

// FromNetwork converts a network back into a document, variables sorted by
// name and factors in network order. Used to export generated networks
// (e.g. from a pedigree) into the interchange format.
func FromNetwork(name string, n *bayes.Network) *Document {
	doc := &Document{Name: name}
	domains := n.Domains()
	for _, v := range n.Variables() {
		doc.Variables = append(doc.Variables, VariableDef{Name: v, Domain: domains[v]})
	}
	for _, f := range n.Factors() {
		fd := FactorDef{Scope: f.Scope()}
		for _, r := range f.Rows() {
			fd.Rows = append(fd.Rows, RowDef{Assignment: r.Assignment, P: r.Value})
		}
		doc.Factors = append(doc.Factors, fd)
	}
	return doc
}

// Marshal renders the document as YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshaling network definition: %w", err)
	}
	return data, nil
}

// Write marshals the document to a file.
func (d *Document) Write(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing network definition: %w", err)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
