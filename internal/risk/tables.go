package risk

import (
	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/diplotype"
)

// outcome is the table-driven result for one (drug, phenotype) pair.
type outcome struct {
	label    Label
	severity Severity
	action   string
	dosing   string
}

// drugProfile encodes the published consensus pharmacology for one drug.
// The tables, not branching code, carry the drug-specific behavior; every
// phenotype has an explicit row so an omission is a compile-visible gap in
// this file rather than a silent default at runtime.
type drugProfile struct {
	gene         catalog.Gene
	outcomes     map[diplotype.Phenotype]outcome
	mechanism    string
	alternatives []string
	monitoring   string
	citation     string
}

// drugProfiles is the declarative per-drug consensus table. Guidance text
// follows the CPIC dosing guidelines for each gene-drug pair.
var drugProfiles = map[Drug]drugProfile{
	Codeine: {
		gene: catalog.CYP2D6,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityCritical,
				"Avoid codeine",
				"Do not prescribe codeine; absent CYP2D6 activity produces an unpredictable and unsafe response"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityModerate,
				"Use codeine with caution",
				"Start at the lowest effective dose and titrate to response; analgesia may be reduced"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use codeine at standard dosing",
				"Age- or weight-specific label dosing applies"},
			diplotype.RapidMetabolizer: {AdjustDosage, SeverityModerate,
				"Use codeine with caution",
				"Monitor for opioid adverse effects; consider a non-tramadol alternative"},
			diplotype.UltrarapidMetabolizer: {Toxic, SeverityCritical,
				"Avoid codeine",
				"Greatly increased morphine formation; risk of life-threatening respiratory depression"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use codeine with caution",
				"CYP2D6 allele information is incomplete; prefer an alternative analgesic"},
		},
		mechanism: "Codeine is a prodrug bioactivated to morphine by CYP2D6 O-demethylation; " +
			"CYP2D6 activity therefore determines both analgesic efficacy and opioid toxicity risk.",
		alternatives: []string{"morphine", "hydromorphone", "non-opioid analgesics"},
		monitoring:   "Monitor for inadequate analgesia and for signs of opioid toxicity (sedation, respiratory depression).",
		citation:     "CPIC Guideline for Codeine and CYP2D6 (Crews et al., 2021)",
	},
	Tramadol: {
		gene: catalog.CYP2D6,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Ineffective, SeverityHigh,
				"Avoid tramadol",
				"Absent O-desmethyltramadol formation; analgesia is unlikely at any dose"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityModerate,
				"Use tramadol with caution",
				"Reduced active metabolite formation; titrate to clinical response"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use tramadol at standard dosing",
				"Label dosing applies"},
			diplotype.RapidMetabolizer: {AdjustDosage, SeverityModerate,
				"Use tramadol with caution",
				"Monitor for opioid adverse effects"},
			diplotype.UltrarapidMetabolizer: {Toxic, SeverityCritical,
				"Avoid tramadol",
				"Increased active metabolite exposure; risk of respiratory depression"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use tramadol with caution",
				"CYP2D6 allele information is incomplete; prefer an alternative analgesic"},
		},
		mechanism: "Tramadol requires CYP2D6-mediated O-demethylation to its active metabolite " +
			"O-desmethyltramadol for mu-opioid analgesia.",
		alternatives: []string{"morphine", "non-opioid analgesics"},
		monitoring:   "Monitor analgesic response; watch for opioid toxicity in rapid metabolizers.",
		citation:     "CPIC Guideline for Tramadol and CYP2D6 (Crews et al., 2021)",
	},
	Clopidogrel: {
		gene: catalog.CYP2C19,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Ineffective, SeverityHigh,
				"Avoid clopidogrel",
				"Insufficient active metabolite formation; use prasugrel or ticagrelor if not contraindicated"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityModerate,
				"Consider alternative antiplatelet therapy",
				"Reduced platelet inhibition; prasugrel or ticagrelor preferred for acute coronary syndromes"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use clopidogrel at standard dosing",
				"Label dosing applies"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use clopidogrel at standard dosing",
				"Label dosing applies"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use clopidogrel at standard dosing",
				"Label dosing applies"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use clopidogrel with caution",
				"CYP2C19 allele information is incomplete; consider platelet function testing"},
		},
		mechanism: "Clopidogrel is a prodrug requiring CYP2C19-mediated bioactivation; loss-of-function " +
			"alleles reduce active metabolite exposure and platelet inhibition.",
		alternatives: []string{"prasugrel", "ticagrelor"},
		monitoring:   "Consider platelet function testing when efficacy is uncertain.",
		citation:     "CPIC Guideline for Clopidogrel and CYP2C19 (Lee et al., 2022)",
	},
	Warfarin: {
		gene: catalog.CYP2C9,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityHigh,
				"Reduce warfarin dose substantially",
				"Severely reduced S-warfarin clearance; initiate at 20-40% of standard dose with close INR monitoring"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityModerate,
				"Reduce warfarin starting dose",
				"Use a pharmacogenetic dosing algorithm; expect a lower maintenance dose"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use warfarin at standard dosing",
				"Standard induction with routine INR monitoring"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use warfarin at standard dosing",
				"Standard induction with routine INR monitoring"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use warfarin at standard dosing",
				"Standard induction with routine INR monitoring"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use warfarin with caution",
				"CYP2C9 allele information is incomplete; monitor INR closely during induction"},
		},
		mechanism: "CYP2C9 clears the more potent S-enantiomer of warfarin; decreased-function alleles " +
			"raise drug exposure and bleeding risk at standard doses.",
		alternatives: []string{"direct oral anticoagulants (apixaban, rivaroxaban)"},
		monitoring:   "Frequent INR monitoring during dose induction; watch for bleeding.",
		citation:     "CPIC Guideline for Warfarin and CYP2C9/VKORC1 (Johnson et al., 2017)",
	},
	Simvastatin: {
		gene: catalog.SLCO1B1,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityHigh,
				"Avoid simvastatin",
				"Markedly increased simvastatin acid exposure; prescribe an alternative statin at low dose"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityModerate,
				"Limit simvastatin dose",
				"Do not exceed 20 mg daily, or switch to rosuvastatin or pravastatin"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use simvastatin at standard dosing",
				"Label dosing applies"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use simvastatin at standard dosing",
				"Label dosing applies"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use simvastatin at standard dosing",
				"Label dosing applies"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use simvastatin with caution",
				"SLCO1B1 allele information is incomplete; consider an alternative statin"},
		},
		mechanism: "OATP1B1 (SLCO1B1) mediates hepatic uptake of simvastatin acid; decreased transport " +
			"raises systemic exposure and the risk of myopathy.",
		alternatives: []string{"rosuvastatin", "pravastatin", "fluvastatin"},
		monitoring:   "Monitor for muscle pain and weakness; check creatine kinase if symptomatic.",
		citation:     "CPIC Guideline for Statins and SLCO1B1 (Cooper-DeHoff et al., 2022)",
	},
	Azathioprine: {
		gene: catalog.TPMT,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityCritical,
				"Avoid azathioprine or reduce dose drastically",
				"Reduce to 10% of standard dose given thrice weekly, or select a non-thiopurine agent"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityHigh,
				"Reduce azathioprine starting dose",
				"Start at 30-80% of standard dose and titrate by tolerance"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use azathioprine at standard dosing",
				"Label dosing applies"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use azathioprine at standard dosing",
				"Label dosing applies"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use azathioprine at standard dosing",
				"Label dosing applies"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use azathioprine with caution",
				"TPMT allele information is incomplete; consider enzyme activity testing before dosing"},
		},
		mechanism: "TPMT inactivates thiopurine metabolites; deficient methylation shunts azathioprine " +
			"toward cytotoxic thioguanine nucleotides, causing severe myelosuppression.",
		alternatives: []string{"mycophenolate", "methotrexate"},
		monitoring:   "Weekly complete blood counts during dose titration.",
		citation:     "CPIC Guideline for Thiopurines and TPMT/NUDT15 (Relling et al., 2019)",
	},
	Mercaptopurine: {
		gene: catalog.TPMT,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityCritical,
				"Reduce mercaptopurine dose drastically",
				"Reduce to 10% of standard dose given thrice weekly with close hematologic monitoring"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityHigh,
				"Reduce mercaptopurine starting dose",
				"Start at 30-80% of standard dose and titrate by tolerance"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use mercaptopurine at standard dosing",
				"Protocol dosing applies"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use mercaptopurine at standard dosing",
				"Protocol dosing applies"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use mercaptopurine at standard dosing",
				"Protocol dosing applies"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use mercaptopurine with caution",
				"TPMT allele information is incomplete; consider enzyme activity testing before dosing"},
		},
		mechanism: "TPMT methylates mercaptopurine away from the cytotoxic thioguanine nucleotide " +
			"pathway; deficiency causes accumulation and life-threatening myelosuppression.",
		alternatives: []string{"dose-reduced protocol per TPMT status"},
		monitoring:   "Weekly complete blood counts during dose titration.",
		citation:     "CPIC Guideline for Thiopurines and TPMT/NUDT15 (Relling et al., 2019)",
	},
	Fluorouracil: {
		gene: catalog.DPYD,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityCritical,
				"Avoid fluorouracil",
				"Complete DPD deficiency; fluoropyrimidines are contraindicated"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityHigh,
				"Reduce fluorouracil starting dose",
				"Start at 50% of standard dose and titrate by toxicity with therapeutic drug monitoring"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use fluorouracil at standard dosing",
				"Protocol dosing applies"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use fluorouracil at standard dosing",
				"Protocol dosing applies"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use fluorouracil at standard dosing",
				"Protocol dosing applies"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use fluorouracil with caution",
				"DPYD allele information is incomplete; consider uracil breath or enzyme testing"},
		},
		mechanism: "DPD (DPYD) catabolizes over 80% of administered fluorouracil; deficient catabolism " +
			"causes severe mucositis, neutropenia, and neurotoxicity at standard doses.",
		alternatives: []string{"non-fluoropyrimidine regimens"},
		monitoring:   "Early-cycle toxicity review; therapeutic drug monitoring where available.",
		citation:     "CPIC Guideline for Fluoropyrimidines and DPYD (Amstutz et al., 2018)",
	},
	Capecitabine: {
		gene: catalog.DPYD,
		outcomes: map[diplotype.Phenotype]outcome{
			diplotype.PoorMetabolizer: {Toxic, SeverityCritical,
				"Avoid capecitabine",
				"Complete DPD deficiency; fluoropyrimidines are contraindicated"},
			diplotype.IntermediateMetabolizer: {AdjustDosage, SeverityHigh,
				"Reduce capecitabine starting dose",
				"Start at 50% of standard dose and titrate by toxicity"},
			diplotype.NormalMetabolizer: {Safe, SeverityNone,
				"Use capecitabine at standard dosing",
				"Protocol dosing applies"},
			diplotype.RapidMetabolizer: {Safe, SeverityNone,
				"Use capecitabine at standard dosing",
				"Protocol dosing applies"},
			diplotype.UltrarapidMetabolizer: {Safe, SeverityNone,
				"Use capecitabine at standard dosing",
				"Protocol dosing applies"},
			diplotype.Indeterminate: {AdjustDosage, SeverityModerate,
				"Use capecitabine with caution",
				"DPYD allele information is incomplete; consider enzyme testing before dosing"},
		},
		mechanism: "Capecitabine is converted to fluorouracil, which depends on DPD (DPYD) for " +
			"catabolism; deficiency causes severe fluoropyrimidine toxicity.",
		alternatives: []string{"non-fluoropyrimidine regimens"},
		monitoring:   "Early-cycle toxicity review.",
		citation:     "CPIC Guideline for Fluoropyrimidines and DPYD (Amstutz et al., 2018)",
	},
}
