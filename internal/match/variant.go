// Package match resolves parsed records against the allele-definition catalog.
package match

import (
	"fmt"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/vcf"
)

// Zygosity describes how many chromosome copies carry a detected variant.
type Zygosity string

// Zygosity values.
const (
	Heterozygous Zygosity = "heterozygous"
	Homozygous   Zygosity = "homozygous"
)

// Strategy names the matching strategy that resolved a record.
type Strategy string

// Matching strategies, in fallback order.
const (
	StrategyIdentifier Strategy = "identifier"
	StrategyCoordinate Strategy = "coordinate"
	StrategyFuzzy      Strategy = "fuzzy_coordinate"
	StrategyGeneTag    Strategy = "gene_tag"
)

// DetectedVariant is a record that matched the catalog (or the gene-tag
// fallback) and is actually carried by the patient.
type DetectedVariant struct {
	Gene         catalog.Gene
	StarAllele   string // empty for gene-tag fallback matches
	RSID         string
	Chrom        string
	Pos          int64 // position as reported in the input file
	Ref          string
	Alt          string
	Genotype     vcf.Genotype
	Zygosity     Zygosity
	Activity     float64
	Function     catalog.FunctionClass
	Significance string
	Strategy     Strategy
}

// Coordinates renders the variant's location for display.
func (v *DetectedVariant) Coordinates() string {
	return fmt.Sprintf("%s:%d", v.Chrom, v.Pos)
}

// HasCatalogEntry reports whether the variant was resolved against a curated
// catalog entry, as opposed to the gene-tag fallback.
func (v *DetectedVariant) HasCatalogEntry() bool {
	return v.Strategy != StrategyGeneTag
}
