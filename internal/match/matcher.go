package match

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/vcf"
)

// fuzzyWindow is the maximum coordinate offset probed when no exact
// coordinate match exists. Small indel representation differences between
// callers shift positions by a few bases.
const fuzzyWindow = 5

// Matcher resolves parsed records against a sealed catalog.
type Matcher struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// New creates a matcher over the given catalog.
func New(c *catalog.Catalog) *Matcher {
	return &Matcher{catalog: c, logger: zap.NewNop()}
}

// SetLogger sets the logger for match tracing.
func (m *Matcher) SetLogger(l *zap.Logger) {
	m.logger = l
}

// Result holds the matcher output for one file.
type Result struct {
	// Variants are the detected variants in input order.
	Variants []*DetectedVariant
	// Covered marks genes whose loci were present in the input, whether or
	// not a variant was detected there. "Tested, found wild-type" must stay
	// distinct from "never tested".
	Covered map[catalog.Gene]bool
	// Records is the number of records examined.
	Records int
}

// IsCovered reports whether any record landed on one of the gene's loci.
func (r *Result) IsCovered(g catalog.Gene) bool {
	return r.Covered[g]
}

// TotalVariants returns the number of detected variants across all genes.
func (r *Result) TotalVariants() int {
	return len(r.Variants)
}

// ByGene returns the detected variants for a gene, in input order.
func (r *Result) ByGene(g catalog.Gene) []*DetectedVariant {
	var out []*DetectedVariant
	for _, v := range r.Variants {
		if v.Gene == g {
			out = append(out, v)
		}
	}
	return out
}

// Match resolves every record through the ordered strategy chain:
// identifier, exact coordinate, fuzzy coordinate, gene-tag fallback.
// Homozygous-reference records mark their gene covered but never become
// detected variants. Duplicate star alleles and duplicate (gene, chrom, pos)
// combinations are dropped.
func (m *Matcher) Match(records []*vcf.Record) *Result {
	result := &Result{
		Covered: make(map[catalog.Gene]bool),
		Records: len(records),
	}
	seenAllele := make(map[string]bool)
	seenLocus := make(map[string]bool)

	for _, rec := range records {
		entry, strategy := m.resolve(rec)
		if entry != nil {
			result.Covered[entry.Gene] = true
			if rec.Genotype.IsHomozygousRef() {
				continue
			}
			m.add(result, seenAllele, seenLocus, variantFromEntry(entry, rec, strategy))
			continue
		}

		// Gene-tag fallback: the curated catalog lacks this exact mutation
		// but the file's own annotation names a supported gene.
		if gene, ok := catalog.ParseGene(rec.Info.GeneSymbol()); ok {
			result.Covered[gene] = true
			if rec.Genotype.IsHomozygousRef() {
				continue
			}
			m.add(result, seenAllele, seenLocus, variantFromGeneTag(gene, rec))
		}
	}

	return result
}

// resolve runs the catalog-backed strategies in order, returning the first
// hit.
func (m *Matcher) resolve(rec *vcf.Record) (*catalog.Entry, Strategy) {
	for _, id := range rec.IDs {
		if e := m.catalog.ByID(id); e != nil {
			return e, StrategyIdentifier
		}
	}

	// Both builds are probed: the file's declared build may be absent or
	// wrong.
	for _, build := range catalog.Builds() {
		if e := m.catalog.ByCoordinate(build, rec.Chrom, rec.Pos); e != nil {
			return e, StrategyCoordinate
		}
	}

	for offset := int64(1); offset <= fuzzyWindow; offset++ {
		for _, delta := range []int64{-offset, offset} {
			for _, build := range catalog.Builds() {
				if e := m.catalog.ByCoordinate(build, rec.Chrom, rec.Pos+delta); e != nil {
					m.logger.Debug("fuzzy coordinate match",
						zap.String("chrom", rec.Chrom),
						zap.Int64("pos", rec.Pos),
						zap.Int64("offset", delta),
						zap.String("allele", e.StarAllele))
					return e, StrategyFuzzy
				}
			}
		}
	}

	return nil, ""
}

// add appends a variant unless its star allele or locus was already seen.
// A record reachable through both an identifier and a coordinate match must
// not count twice.
func (m *Matcher) add(result *Result, seenAllele, seenLocus map[string]bool, v *DetectedVariant) {
	locusKey := fmt.Sprintf("%s|%s|%d", v.Gene, v.Chrom, v.Pos)
	if seenLocus[locusKey] {
		return
	}
	if v.StarAllele != "" {
		alleleKey := fmt.Sprintf("%s|%s", v.Gene, v.StarAllele)
		if seenAllele[alleleKey] {
			return
		}
		seenAllele[alleleKey] = true
	}
	seenLocus[locusKey] = true
	result.Variants = append(result.Variants, v)
}

func variantFromEntry(e *catalog.Entry, rec *vcf.Record, strategy Strategy) *DetectedVariant {
	return &DetectedVariant{
		Gene:         e.Gene,
		StarAllele:   e.StarAllele,
		RSID:         e.RSID,
		Chrom:        rec.Chrom,
		Pos:          rec.Pos,
		Ref:          rec.Ref,
		Alt:          rec.Alt,
		Genotype:     rec.Genotype,
		Zygosity:     zygosityOf(rec.Genotype),
		Activity:     e.Activity,
		Function:     e.Function,
		Significance: e.Significance,
		Strategy:     strategy,
	}
}

func variantFromGeneTag(gene catalog.Gene, rec *vcf.Record) *DetectedVariant {
	rsid := ""
	if len(rec.IDs) > 0 {
		rsid = rec.IDs[0]
	}
	return &DetectedVariant{
		Gene:         gene,
		RSID:         rsid,
		Chrom:        rec.Chrom,
		Pos:          rec.Pos,
		Ref:          rec.Ref,
		Alt:          rec.Alt,
		Genotype:     rec.Genotype,
		Zygosity:     zygosityOf(rec.Genotype),
		Activity:     1.0,
		Function:     catalog.UnknownFunction,
		Significance: fmt.Sprintf("Variant in %s identified by file annotation; allele not in curated catalog", gene),
		Strategy:     StrategyGeneTag,
	}
}

func zygosityOf(g vcf.Genotype) Zygosity {
	if g.IsHomozygousAlt() {
		return Homozygous
	}
	return Heterozygous
}
