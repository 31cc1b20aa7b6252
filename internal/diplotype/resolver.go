package diplotype

import (
	"fmt"
	"math"
	"sort"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/match"
)

// wildTypeActivity is the per-allele activity of the *1 reference allele.
const wildTypeActivity = 1.0

// Profile is the resolved two-allele profile for one gene.
type Profile struct {
	Gene            catalog.Gene
	Diplotype       string
	Phenotype       Phenotype
	ActivityScore   float64 // Allele1Activity + Allele2Activity, rounded to 2dp
	Allele1Activity float64
	Allele2Activity float64
	// Variants are all detected variants contributing to (or listed with)
	// this profile, in input order.
	Variants []*match.DetectedVariant
}

// Resolve computes the two-allele activity profile for a gene from its
// detected variants.
//
// Ambiguous multi-variant genotypes are deliberately resolved toward the
// lower-function interpretation: with no phasing information, the two
// lowest-activity alleles are assigned to the two slots, and a homozygous
// allele occupies both. This is a conservative heuristic, not haplotype
// phasing.
func Resolve(gene catalog.Gene, variants []*match.DetectedVariant) *Profile {
	p := &Profile{Gene: gene, Variants: variants}

	// Only curated catalog matches carry a usable activity value.
	var candidates []*match.DetectedVariant
	for _, v := range variants {
		if v.HasCatalogEntry() {
			candidates = append(candidates, v)
		}
	}

	switch {
	case len(candidates) == 0 && len(variants) == 0:
		// Wild-type inference.
		p.assign(wildTypeActivity, wildTypeActivity)
		p.Diplotype = "*1/*1"
		p.Phenotype = Classify(gene, p.ActivityScore)

	case len(candidates) == 0:
		// Only uncurated gene-tag variants: an allele is present but its
		// functional effect is unknown. Named fallback, never silently
		// normal.
		p.assign(wildTypeActivity, wildTypeActivity)
		p.Diplotype = "*1/*?"
		p.Phenotype = Indeterminate

	case len(candidates) == 1:
		v := candidates[0]
		if v.Zygosity == match.Homozygous {
			p.assign(v.Activity, v.Activity)
			p.Diplotype = fmt.Sprintf("%s/%s", v.StarAllele, v.StarAllele)
		} else {
			p.assign(wildTypeActivity, v.Activity)
			p.Diplotype = fmt.Sprintf("*1/%s", v.StarAllele)
		}
		p.Phenotype = Classify(gene, p.ActivityScore)

	default:
		// Compound heterozygous case.
		if hom := lowestHomozygous(candidates); hom != nil {
			// A homozygous allele occupies both slots regardless of what
			// else matched.
			p.assign(hom.Activity, hom.Activity)
			p.Diplotype = fmt.Sprintf("%s/%s", hom.StarAllele, hom.StarAllele)
		} else {
			sorted := make([]*match.DetectedVariant, len(candidates))
			copy(sorted, candidates)
			sort.SliceStable(sorted, func(i, j int) bool {
				if sorted[i].Activity != sorted[j].Activity {
					return sorted[i].Activity < sorted[j].Activity
				}
				return sorted[i].StarAllele < sorted[j].StarAllele
			})
			p.assign(sorted[0].Activity, sorted[1].Activity)
			p.Diplotype = fmt.Sprintf("%s/%s", sorted[0].StarAllele, sorted[1].StarAllele)
		}
		p.Phenotype = Classify(gene, p.ActivityScore)
	}

	return p
}

// assign sets the allele activities and the rounded total score.
func (p *Profile) assign(a1, a2 float64) {
	p.Allele1Activity = a1
	p.Allele2Activity = a2
	p.ActivityScore = math.Round((a1+a2)*100) / 100
}

// lowestHomozygous returns the lowest-activity homozygous candidate, or nil.
func lowestHomozygous(candidates []*match.DetectedVariant) *match.DetectedVariant {
	var hom *match.DetectedVariant
	for _, v := range candidates {
		if v.Zygosity != match.Homozygous {
			continue
		}
		if hom == nil || v.Activity < hom.Activity {
			hom = v
		}
	}
	return hom
}

// NoFunctionCount returns how many of the profile's variants are
// independently classified no-function.
func (p *Profile) NoFunctionCount() int {
	n := 0
	for _, v := range p.Variants {
		if v.Function == catalog.NoFunction {
			n++
		}
	}
	return n
}

// AllNoFunction reports whether every variant in the profile is no-function.
// False when the profile has no variants.
func (p *Profile) AllNoFunction() bool {
	if len(p.Variants) == 0 {
		return false
	}
	for _, v := range p.Variants {
		if v.Function != catalog.NoFunction {
			return false
		}
	}
	return true
}
