package risk

import "github.com/pgxguard/pgxguard/internal/diplotype"

// Confidence calibration constants. The additive model starts from a base,
// rewards corroborating evidence, and is clamped below certainty.
const (
	confidenceBase        = 0.40
	confidenceMax         = 0.98
	perVariantBonus       = 0.07
	variantBonusCap       = 0.15
	extremityBonus        = 0.05
	allNoFunctionBonus    = 0.05
	wildTypeBase          = 0.50
	wildTypePerVariant    = 0.03
	wildTypeConfidenceCap = 0.80
)

// phenotypeBonus grades how decisively the phenotype call supports the risk
// classification. Poor and ultrarapid calls backed by multiple no-function
// variants are the strongest evidence; intermediate calls are the most
// ambiguous.
func phenotypeBonus(p *diplotype.Profile) float64 {
	noFunc := p.NoFunctionCount()
	switch p.Phenotype {
	case diplotype.PoorMetabolizer, diplotype.UltrarapidMetabolizer:
		if noFunc >= 2 {
			return 0.20
		}
		return 0.15
	case diplotype.NormalMetabolizer:
		return 0.12
	case diplotype.RapidMetabolizer:
		return 0.10
	case diplotype.IntermediateMetabolizer:
		return 0.08
	default:
		return 0.02
	}
}

// confidence computes the calibrated confidence for a profile with at least
// one detected variant.
func confidence(p *diplotype.Profile) float64 {
	c := confidenceBase

	variantBonus := perVariantBonus * float64(len(p.Variants))
	if variantBonus > variantBonusCap {
		variantBonus = variantBonusCap
	}
	c += variantBonus

	c += phenotypeBonus(p)

	// Extreme activity scores sit far from every threshold boundary.
	if p.ActivityScore <= 0.5 || p.ActivityScore >= 3.0 {
		c += extremityBonus
	}

	if len(p.Variants) >= 2 && p.AllNoFunction() {
		c += allNoFunctionBonus
	}

	if c > confidenceMax {
		c = confidenceMax
	}
	return c
}

// wildTypeConfidence grades a covered, variant-free gene. Confidence in the
// wild-type inference scales with how much usable signal the file produced
// overall.
func wildTypeConfidence(totalVariants int) float64 {
	c := wildTypeBase + wildTypePerVariant*float64(totalVariants)
	if c > wildTypeConfidenceCap {
		c = wildTypeConfidenceCap
	}
	return c
}
