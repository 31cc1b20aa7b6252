// Package diplotype resolves per-gene diplotypes and metabolizer phenotypes.
package diplotype

import (
	"math"

	"github.com/pgxguard/pgxguard/internal/catalog"
)

// Phenotype is a metabolizer (or transporter function) category.
type Phenotype string

// Phenotype categories. Indeterminate is the explicit fallback for genes
// where only uncurated variants were found.
const (
	PoorMetabolizer         Phenotype = "Poor Metabolizer"
	IntermediateMetabolizer Phenotype = "Intermediate Metabolizer"
	NormalMetabolizer       Phenotype = "Normal Metabolizer"
	RapidMetabolizer        Phenotype = "Rapid Metabolizer"
	UltrarapidMetabolizer   Phenotype = "Ultrarapid Metabolizer"
	Indeterminate           Phenotype = "Indeterminate"
)

// band is one inclusive activity-score interval mapped to a phenotype.
type band struct {
	lo, hi    float64
	phenotype Phenotype
}

// geneThresholds holds the consensus threshold table for one gene. Bands are
// checked in order, first match wins; scores above rapidAbove map to the
// rapid category; anything else falls through to Intermediate.
type geneThresholds struct {
	bands      []band
	rapidAbove float64 // math.Inf(1) when the gene has no rapid category
	rapid      Phenotype
}

// thresholds reproduces the consensus activity-score tables per gene.
// These values are clinical input data and must not be adjusted in code.
var thresholds = map[catalog.Gene]geneThresholds{
	catalog.CYP2D6: {
		bands: []band{
			{0, 0, PoorMetabolizer},
			{0.25, 1.0, IntermediateMetabolizer},
			{1.25, 2.25, NormalMetabolizer},
		},
		rapidAbove: 2.25,
		rapid:      UltrarapidMetabolizer,
	},
	catalog.CYP2C19: {
		bands: []band{
			{0, 0, PoorMetabolizer},
			{0.5, 1.0, IntermediateMetabolizer},
			{1.5, 2.0, NormalMetabolizer},
		},
		rapidAbove: 2.0,
		rapid:      RapidMetabolizer,
	},
	catalog.CYP2C9: {
		bands: []band{
			{0, 0.5, PoorMetabolizer},
			{1.0, 1.5, IntermediateMetabolizer},
			{2.0, 2.0, NormalMetabolizer},
		},
		rapidAbove: math.Inf(1),
	},
	catalog.SLCO1B1: {
		bands: []band{
			{0, 0, PoorMetabolizer},
			{0, 1.0, IntermediateMetabolizer},
			{1.5, math.Inf(1), NormalMetabolizer},
		},
		rapidAbove: math.Inf(1),
	},
	catalog.TPMT: {
		bands: []band{
			{0, 0, PoorMetabolizer},
			{0, 1.0, IntermediateMetabolizer},
			{1.5, math.Inf(1), NormalMetabolizer},
		},
		rapidAbove: math.Inf(1),
	},
	catalog.DPYD: {
		bands: []band{
			{0, 0.5, PoorMetabolizer},
			{1.0, 1.5, IntermediateMetabolizer},
			{2.0, 2.0, NormalMetabolizer},
		},
		rapidAbove: math.Inf(1),
	},
}

// Classify maps (gene, activity score) to a phenotype via the gene's
// threshold table. A score outside every enumerated band resolves to
// Intermediate; the safe default is never Normal.
func Classify(gene catalog.Gene, score float64) Phenotype {
	t, ok := thresholds[gene]
	if !ok {
		return Indeterminate
	}
	if score > t.rapidAbove {
		return t.rapid
	}
	for _, b := range t.bands {
		if score >= b.lo && score <= b.hi {
			return b.phenotype
		}
	}
	return IntermediateMetabolizer
}
