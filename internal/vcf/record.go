// Package vcf parses variant-call format text into structured records.
package vcf

import "strings"

// Genotype is a diploid genotype call string, e.g. "0/1" or "1|1".
type Genotype string

// HomozygousAlt is the genotype assumed when a record carries no genotype
// information. Treating an uncalled site as homozygous-variant is the
// conservative reading for safety screening.
const HomozygousAlt Genotype = "1/1"

// alleles splits the genotype on either phased or unphased separators.
func (g Genotype) alleles() []string {
	if strings.Contains(string(g), "|") {
		return strings.Split(string(g), "|")
	}
	return strings.Split(string(g), "/")
}

// IsHomozygousRef reports whether the genotype is a homozygous reference
// call (0/0 or 0|0).
func (g Genotype) IsHomozygousRef() bool {
	parts := g.alleles()
	if len(parts) < 2 {
		return false
	}
	return parts[0] == "0" && parts[1] == "0"
}

// IsHeterozygous reports whether exactly one chromosome copy carries the
// alternate allele.
func (g Genotype) IsHeterozygous() bool {
	parts := g.alleles()
	if len(parts) < 2 {
		return false
	}
	return (parts[0] == "0") != (parts[1] == "0")
}

// IsHomozygousAlt reports whether both chromosome copies carry an alternate
// allele.
func (g Genotype) IsHomozygousAlt() bool {
	parts := g.alleles()
	if len(parts) < 2 {
		return false
	}
	return parts[0] != "0" && parts[1] != "0" && parts[0] != "." && parts[1] != "."
}

// Info is the parsed annotation field. Known keys become named fields;
// everything else is preserved in Extra.
type Info struct {
	Gene     string            // GENE key, if present
	GeneInfo string            // GENEINFO key (SYMBOL:id form), if present
	Extra    map[string]string // remaining KEY=VALUE pairs; bare flags map to ""
}

// GeneSymbol returns the gene symbol named by the annotation, preferring the
// GENE key and falling back to the symbol portion of GENEINFO. Empty when the
// annotation names no gene.
func (i Info) GeneSymbol() string {
	if i.Gene != "" {
		return i.Gene
	}
	if i.GeneInfo != "" {
		return strings.SplitN(i.GeneInfo, ":", 2)[0]
	}
	return ""
}

// Record is one parsed variant-call line. Records are immutable once emitted
// by the parser.
type Record struct {
	Line     int      // 1-based input line number
	Chrom    string   // chromosome, "chr" prefix stripped
	Pos      int64    // 1-based position
	IDs      []string // identifiers from the ID column (split on ";"), empty if missing
	Ref      string   // reference base(s)
	Alt      string   // alternate base(s)
	Qual     float64  // quality score; meaningful only when HasQual
	HasQual  bool
	Filter   string // filter status ("." or "PASS" for kept records)
	Info     Info
	Genotype Genotype
	Depth    int // sample read depth, -1 when absent
	GQ       int // genotype quality, -1 when absent
}
