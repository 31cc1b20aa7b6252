package catalog

// defaultEntries is the embedded allele-definition table, derived from the
// CPIC allele definition and functionality files for the six supported genes.
// Positions are 1-based; minus-strand genes are expressed in genomic (plus
// strand) ref/alt orientation, matching what variant callers emit.
var defaultEntries = []*Entry{
	// CYP2D6 (chr22, minus strand)
	{
		RSID: "rs35742686", Gene: CYP2D6, Chrom: "22",
		PosGRCh37: 42524244, PosGRCh38: 42128242,
		Ref: "AG", Alt: "A", StarAllele: "*3",
		Activity: 0, Function: NoFunction,
		Significance: "Frameshift variant (2549delA); no enzyme activity",
	},
	{
		RSID: "rs3892097", Gene: CYP2D6, Chrom: "22",
		PosGRCh37: 42524947, PosGRCh38: 42128945,
		Ref: "C", Alt: "T", StarAllele: "*4",
		Activity: 0, Function: NoFunction,
		Significance: "Splicing defect (1846G>A); most common CYP2D6 null allele in Europeans",
	},
	{
		RSID: "rs5030655", Gene: CYP2D6, Chrom: "22",
		PosGRCh37: 42525086, PosGRCh38: 42129084,
		Ref: "TA", Alt: "T", StarAllele: "*6",
		Activity: 0, Function: NoFunction,
		Significance: "Frameshift variant (1707delT); no enzyme activity",
	},
	{
		RSID: "rs1065852", Gene: CYP2D6, Chrom: "22",
		PosGRCh37: 42526694, PosGRCh38: 42130692,
		Ref: "G", Alt: "A", StarAllele: "*10",
		Activity: 0.25, Function: DecreasedFunction,
		Significance: "P34S; unstable enzyme with markedly reduced activity, common in East Asians",
	},
	{
		RSID: "rs28371725", Gene: CYP2D6, Chrom: "22",
		PosGRCh37: 42523805, PosGRCh38: 42127803,
		Ref: "C", Alt: "T", StarAllele: "*41",
		Activity: 0.5, Function: DecreasedFunction,
		Significance: "Splicing variant (2988G>A); reduced expression of functional enzyme",
	},

	// CYP2C19 (chr10)
	{
		RSID: "rs4244285", Gene: CYP2C19, Chrom: "10",
		PosGRCh37: 96541616, PosGRCh38: 94781859,
		Ref: "G", Alt: "A", StarAllele: "*2",
		Activity: 0, Function: NoFunction,
		Significance: "Splicing defect (681G>A); most common CYP2C19 loss-of-function allele",
	},
	{
		RSID: "rs4986893", Gene: CYP2C19, Chrom: "10",
		PosGRCh37: 96540410, PosGRCh38: 94780653,
		Ref: "G", Alt: "A", StarAllele: "*3",
		Activity: 0, Function: NoFunction,
		Significance: "Premature stop codon (W212X); no enzyme activity",
	},
	{
		RSID: "rs12248560", Gene: CYP2C19, Chrom: "10",
		PosGRCh37: 96521657, PosGRCh38: 94761900,
		Ref: "C", Alt: "T", StarAllele: "*17",
		Activity: 1.5, Function: IncreasedFunction,
		Significance: "Promoter variant (-806C>T); increased transcription and enzyme activity",
	},

	// CYP2C9 (chr10)
	{
		RSID: "rs1799853", Gene: CYP2C9, Chrom: "10",
		PosGRCh37: 96702047, PosGRCh38: 94942290,
		Ref: "C", Alt: "T", StarAllele: "*2",
		Activity: 0.5, Function: DecreasedFunction,
		Significance: "R144C; ~30-50% reduction in warfarin clearance per allele",
	},
	{
		RSID: "rs1057910", Gene: CYP2C9, Chrom: "10",
		PosGRCh37: 96741053, PosGRCh38: 94981296,
		Ref: "A", Alt: "C", StarAllele: "*3",
		Activity: 0, Function: NoFunction,
		Significance: "I359L; severely reduced intrinsic clearance of CYP2C9 substrates",
	},

	// SLCO1B1 (chr12)
	{
		RSID: "rs4149056", Gene: SLCO1B1, Chrom: "12",
		PosGRCh37: 21331549, PosGRCh38: 21178615,
		Ref: "T", Alt: "C", StarAllele: "*5",
		Activity: 0, Function: NoFunction,
		Significance: "V174A; markedly decreased OATP1B1 hepatic uptake, raises statin exposure",
	},
	{
		RSID: "rs2306283", Gene: SLCO1B1, Chrom: "12",
		PosGRCh37: 21329738, PosGRCh38: 21176804,
		Ref: "A", Alt: "G", StarAllele: "*1B",
		Activity: 1.0, Function: NormalFunction,
		Significance: "N130D; normal transporter function",
	},

	// TPMT (chr6, minus strand)
	{
		RSID: "rs1800462", Gene: TPMT, Chrom: "6",
		PosGRCh37: 18143955, PosGRCh38: 18143724,
		Ref: "C", Alt: "G", StarAllele: "*2",
		Activity: 0, Function: NoFunction,
		Significance: "A80P; catalytically inactive methyltransferase",
	},
	{
		RSID: "rs1800460", Gene: TPMT, Chrom: "6",
		PosGRCh37: 18139228, PosGRCh38: 18138997,
		Ref: "C", Alt: "T", StarAllele: "*3B",
		Activity: 0, Function: NoFunction,
		Significance: "A154T; enhanced protein degradation, negligible activity",
	},
	{
		RSID: "rs1142345", Gene: TPMT, Chrom: "6",
		PosGRCh37: 18130918, PosGRCh38: 18130687,
		Ref: "T", Alt: "C", StarAllele: "*3C",
		Activity: 0, Function: NoFunction,
		Significance: "Y240C; enhanced protein degradation, negligible activity",
	},

	// DPYD (chr1, minus strand)
	{
		RSID: "rs3918290", Gene: DPYD, Chrom: "1",
		PosGRCh37: 97915614, PosGRCh38: 97450058,
		Ref: "C", Alt: "T", StarAllele: "*2A",
		Activity: 0, Function: NoFunction,
		Significance: "IVS14+1G>A splice donor variant; exon 14 skipping, no enzyme activity",
	},
	{
		RSID: "rs55886062", Gene: DPYD, Chrom: "1",
		PosGRCh37: 97981343, PosGRCh38: 97515787,
		Ref: "A", Alt: "C", StarAllele: "*13",
		Activity: 0, Function: NoFunction,
		Significance: "I560S; no dihydropyrimidine dehydrogenase activity",
	},
	{
		RSID: "rs67376798", Gene: DPYD, Chrom: "1",
		PosGRCh37: 97547947, PosGRCh38: 97082391,
		Ref: "T", Alt: "A", StarAllele: "c.2846A>T",
		Activity: 0.5, Function: DecreasedFunction,
		Significance: "D949V; partial enzyme deficiency, reduced fluoropyrimidine clearance",
	},
}

// DefaultBuilder returns a builder pre-seeded with the embedded
// allele-definition table, ready for overlay loading before sealing.
func DefaultBuilder() *Builder {
	b := NewBuilder()
	for _, e := range defaultEntries {
		b.Add(e)
	}
	return b
}

// Default returns the catalog built from the embedded allele-definition
// table. The catalog is immutable and may be shared across goroutines.
func Default() *Catalog {
	c, err := DefaultBuilder().Build()
	if err != nil {
		// The embedded table is validated by tests; a failure here is a
		// programming error, not an input condition.
		panic(err)
	}
	return c
}
