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

	"github.com/AleutianAI/AleutianBayes/pkg/bayes"
	"github.com/AleutianAI/AleutianBayes/pkg/factor"
)

// CarrierFrequency is the population frequency of the hemophilia allele,
// used as the founder prior for inherited genes with an unknown parent.
const CarrierFrequency = 1.0 / 30000.0

// Gene value labels: lowercase x is the healthy allele, uppercase X the
// hemophilia allele.
var geneDomain = []string{"x", "X"}

// Variable name builders. For a member named N the network carries:
//
//	M_N - maternally inherited gene (x/X)
//	P_N - paternally inherited gene (females only, x/X)
//	G_N - genotype (xx/xX/XX for females, xy/Xy for males)
//	H_N - hemophilia phenotype (-/+)
func MaternalVar(name string) string { return "M_" + name }
func PaternalVar(name string) string { return "P_" + name }
func GenotypeVar(name string) string { return "G_" + name }
func PhenotypeVar(name string) string { return "H_" + name }

// Domains returns the variable domains for the hemophilia network over the
// given registry: three variables per male member, four per female.
func Domains(r *Registry) factor.Domains {
	domains := make(factor.Domains, 4*r.Len())
	for _, m := range r.Members() {
		domains[MaternalVar(m.Name)] = geneDomain
		domains[PhenotypeVar(m.Name)] = []string{"-", "+"}
		if m.Sex == SexFemale {
			domains[PaternalVar(m.Name)] = geneDomain
			domains[GenotypeVar(m.Name)] = []string{"xx", "xX", "XX"}
		} else {
			domains[GenotypeVar(m.Name)] = []string{"xy", "Xy"}
		}
	}
	return domains
}

// PhenotypeCPT gives P(H | G): hemophilia is recessive, so females express
// it only with genotype XX, males with Xy.
func PhenotypeCPT(m Member) *factor.Factor {
	scope := []string{GenotypeVar(m.Name), PhenotypeVar(m.Name)}
	if m.Sex == SexFemale {
		return factor.MustNew(scope, []factor.Row{
			{Assignment: []string{"xx", "-"}, Value: 1.0},
			{Assignment: []string{"xx", "+"}, Value: 0.0},
			{Assignment: []string{"xX", "-"}, Value: 1.0},
			{Assignment: []string{"xX", "+"}, Value: 0.0},
			{Assignment: []string{"XX", "-"}, Value: 0.0},
			{Assignment: []string{"XX", "+"}, Value: 1.0},
		})
	}
	return factor.MustNew(scope, []factor.Row{
		{Assignment: []string{"xy", "-"}, Value: 1.0},
		{Assignment: []string{"xy", "+"}, Value: 0.0},
		{Assignment: []string{"Xy", "-"}, Value: 0.0},
		{Assignment: []string{"Xy", "+"}, Value: 1.0},
	})
}

// GenotypeCPT gives P(G | inherited genes). The mapping is deterministic:
// a male's genotype is fixed by his maternal gene, a female's by the
// unordered pair of her maternal and paternal genes.
func GenotypeCPT(m Member) *factor.Factor {
	if m.Sex == SexMale {
		scope := []string{GenotypeVar(m.Name), MaternalVar(m.Name)}
		return factor.MustNew(scope, []factor.Row{
			{Assignment: []string{"xy", "x"}, Value: 1.0},
			{Assignment: []string{"Xy", "x"}, Value: 0.0},
			{Assignment: []string{"xy", "X"}, Value: 0.0},
			{Assignment: []string{"Xy", "X"}, Value: 1.0},
		})
	}

	scope := []string{GenotypeVar(m.Name), MaternalVar(m.Name), PaternalVar(m.Name)}
	rows := make([]factor.Row, 0, 12)
	for _, mat := range geneDomain {
		for _, pat := range geneDomain {
			genotype := combineGenes(mat, pat)
			for _, g := range []string{"xx", "xX", "XX"} {
				p := 0.0
				if g == genotype {
					p = 1.0
				}
				rows = append(rows, factor.Row{
					Assignment: []string{g, mat, pat},
					Value:      p,
				})
			}
		}
	}
	return factor.MustNew(scope, rows)
}

// combineGenes maps an allele pair to the female genotype label; the
// heterozygous cases collapse to xX regardless of which side carried X.
func combineGenes(maternal, paternal string) string {
	switch {
	case maternal == "x" && paternal == "x":
		return "xx"
	case maternal == "X" && paternal == "X":
		return "XX"
	default:
		return "xX"
	}
}

// MaternalInheritanceCPT gives P(M | mother's genotype). With no known
// mother, the gene follows the population prior. Otherwise the mother
// passes one of her two X alleles uniformly at random. The mother
// reference must already be validated (BuildNetwork does).
func MaternalInheritanceCPT(m Member) *factor.Factor {
	if m.Mother == "" {
		return founderPrior(MaternalVar(m.Name))
	}
	scope := []string{MaternalVar(m.Name), GenotypeVar(m.Mother)}
	return factor.MustNew(scope, []factor.Row{
		{Assignment: []string{"x", "xx"}, Value: 1.0},
		{Assignment: []string{"X", "xx"}, Value: 0.0},
		{Assignment: []string{"x", "xX"}, Value: 0.5},
		{Assignment: []string{"X", "xX"}, Value: 0.5},
		{Assignment: []string{"x", "XX"}, Value: 0.0},
		{Assignment: []string{"X", "XX"}, Value: 1.0},
	})
}

// PaternalInheritanceCPT gives P(P | father's genotype) for a female
// member; males inherit their father's Y chromosome and carry no paternal
// gene variable. With no known father, the gene follows the population
// prior. Otherwise the daughter receives the father's single X allele.
func PaternalInheritanceCPT(m Member) (*factor.Factor, error) {
	if m.Sex != SexFemale {
		return nil, fmt.Errorf("%w: paternal gene variable only exists for females, got %s (%s)",
			ErrSexMismatch, m.Name, m.Sex)
	}
	if m.Father == "" {
		return founderPrior(PaternalVar(m.Name)), nil
	}
	scope := []string{PaternalVar(m.Name), GenotypeVar(m.Father)}
	return factor.MustNew(scope, []factor.Row{
		{Assignment: []string{"x", "xy"}, Value: 1.0},
		{Assignment: []string{"X", "xy"}, Value: 0.0},
		{Assignment: []string{"x", "Xy"}, Value: 0.0},
		{Assignment: []string{"X", "Xy"}, Value: 1.0},
	}), nil
}

// founderPrior is the population-frequency prior over a single gene
// variable with no known parent.
func founderPrior(variable string) *factor.Factor {
	return factor.MustNew([]string{variable}, []factor.Row{
		{Assignment: []string{"x"}, Value: 1.0 - CarrierFrequency},
		{Assignment: []string{"X"}, Value: CarrierFrequency},
	})
}

// BuildNetwork assembles the hemophilia Bayesian network for a family:
// per member, the inheritance CPTs, the genotype CPT, and the phenotype
// CPT, over the domains from Domains. The registry is validated first.
func BuildNetwork(r *Registry) (*bayes.Network, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pedigree: %w", err)
	}

	var factors []*factor.Factor
	for _, m := range r.Members() {
		if m.Sex == SexFemale {
			paternal, err := PaternalInheritanceCPT(m)
			if err != nil {
				return nil, err
			}
			factors = append(factors, paternal)
		}
		factors = append(factors,
			MaternalInheritanceCPT(m),
			GenotypeCPT(m),
			PhenotypeCPT(m),
		)
	}
	return bayes.New(factors, Domains(r)), nil
}
