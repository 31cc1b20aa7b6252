// Package catalog provides the pharmacogenomic allele-definition catalog.
package catalog

import "fmt"

// Gene identifies one of the supported pharmacogenes.
type Gene string

// Supported pharmacogenes.
const (
	CYP2D6  Gene = "CYP2D6"
	CYP2C19 Gene = "CYP2C19"
	CYP2C9  Gene = "CYP2C9"
	SLCO1B1 Gene = "SLCO1B1"
	TPMT    Gene = "TPMT"
	DPYD    Gene = "DPYD"
)

// Genes lists all supported pharmacogenes in a stable order.
func Genes() []Gene {
	return []Gene{CYP2D6, CYP2C19, CYP2C9, SLCO1B1, TPMT, DPYD}
}

// ParseGene returns the Gene matching the given symbol, or false if the
// symbol is not a supported pharmacogene.
func ParseGene(symbol string) (Gene, bool) {
	for _, g := range Genes() {
		if string(g) == symbol {
			return g, true
		}
	}
	return "", false
}

// Build identifies a reference genome assembly.
type Build string

// Supported genome builds.
const (
	GRCh37 Build = "GRCh37"
	GRCh38 Build = "GRCh38"
)

// Builds lists the supported genome builds.
func Builds() []Build {
	return []Build{GRCh37, GRCh38}
}

// FunctionClass describes the functional consequence of a star allele.
type FunctionClass string

// Functional classes per CPIC allele-function nomenclature.
const (
	NoFunction        FunctionClass = "no_function"
	DecreasedFunction FunctionClass = "decreased_function"
	NormalFunction    FunctionClass = "normal_function"
	IncreasedFunction FunctionClass = "increased_function"
	UnknownFunction   FunctionClass = "unknown_function"
)

// ParseFunctionClass parses a functional class string as found in catalog
// overlay files.
func ParseFunctionClass(s string) (FunctionClass, error) {
	switch FunctionClass(s) {
	case NoFunction, DecreasedFunction, NormalFunction, IncreasedFunction, UnknownFunction:
		return FunctionClass(s), nil
	}
	return "", fmt.Errorf("unknown function class %q", s)
}

// Entry is one allele-defining variant in the catalog. Entries are immutable
// after the catalog is sealed.
type Entry struct {
	RSID         string  // dbSNP identifier (e.g. "rs3892097")
	Gene         Gene    // pharmacogene the allele belongs to
	Chrom        string  // chromosome without "chr" prefix
	PosGRCh37    int64   // 1-based position on GRCh37
	PosGRCh38    int64   // 1-based position on GRCh38
	Ref          string  // reference allele
	Alt          string  // accepted alternate allele
	StarAllele   string  // star-allele label (e.g. "*4")
	Activity     float64 // per-allele activity value (0, 0.25, 0.5, 1.0, 1.5)
	Function     FunctionClass
	Significance string // free-text clinical significance note
}

// Pos returns the entry's position on the given build.
func (e *Entry) Pos(b Build) int64 {
	if b == GRCh37 {
		return e.PosGRCh37
	}
	return e.PosGRCh38
}
