package risk

import (
	"fmt"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/diplotype"
)

// Entry is the per-drug evaluation result. Entries are derived values,
// recomputed per request and never persisted.
type Entry struct {
	Drug         Drug
	Gene         catalog.Gene
	Label        Label
	Severity     Severity
	Confidence   float64
	Action       string
	Dosing       string
	Alternatives []string
	Monitoring   string
	Mechanism    string
	Citation     string
}

// Evaluate classifies one drug against the resolved gene profile.
//
// covered reports whether the gene's loci were present in the input at all;
// totalVariants is the number of variants detected anywhere in the file.
// Absence of coverage is never conflated with evidence of wild-type: an
// uncovered gene yields an explicit Unknown entry with zero confidence.
func Evaluate(drug Drug, profile *diplotype.Profile, covered bool, totalVariants int) Entry {
	dp := drugProfiles[drug]
	entry := Entry{
		Drug:         drug,
		Gene:         dp.gene,
		Mechanism:    dp.mechanism,
		Alternatives: dp.alternatives,
		Monitoring:   dp.monitoring,
		Citation:     dp.citation,
	}

	if len(profile.Variants) == 0 {
		if covered {
			// Loci were sequenced and every call was reference:
			// wild-type inference.
			out := dp.outcomes[diplotype.NormalMetabolizer]
			entry.Label = Safe
			entry.Severity = out.severity
			entry.Action = out.action
			entry.Dosing = out.dosing
			entry.Confidence = wildTypeConfidence(totalVariants)
			return entry
		}
		entry.Label = Unknown
		entry.Severity = SeverityLow
		entry.Confidence = 0
		entry.Action = fmt.Sprintf("No %s coverage in this file", dp.gene)
		entry.Dosing = fmt.Sprintf("%s was not sequenced; pharmacogenomic guidance for %s is unavailable", dp.gene, drug)
		return entry
	}

	out, ok := dp.outcomes[profile.Phenotype]
	if !ok {
		// Every phenotype has a table row; reaching this means a phenotype
		// was added without extending the tables.
		out = dp.outcomes[diplotype.Indeterminate]
	}

	entry.Label = out.label
	entry.Severity = out.severity
	entry.Action = out.action
	entry.Dosing = out.dosing

	// Two independently no-function variants in one gene move the severity
	// up a tier: the conservative compound-heterozygote reading.
	if profile.NoFunctionCount() >= 2 {
		entry.Severity = entry.Severity.Escalate()
	}

	entry.Confidence = confidence(profile)
	return entry
}
