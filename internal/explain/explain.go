// Package explain generates patient-friendly explanations of risk results
// through an external text-generation service, with a deterministic local
// fallback.
package explain

import "context"

// Summary is the anonymized payload sent to the explanation service. It
// carries only already-derived, non-identifying fields: no raw variant file
// content ever leaves the core.
type Summary struct {
	Drug      string   `json:"drug"`
	Gene      string   `json:"gene"`
	Diplotype string   `json:"diplotype"`
	Phenotype string   `json:"phenotype"`
	RiskLabel string   `json:"risk_label"`
	Severity  string   `json:"severity"`
	Variants  []string `json:"variants"` // "rsid: significance" strings
}

// Explanation is the five-field narrative returned by the service (or built
// locally by Fallback).
type Explanation struct {
	Summary        string `json:"summary"`
	Mechanism      string `json:"mechanism"`
	VariantEffects string `json:"variant_effects"`
	ClinicalNotes  string `json:"clinical_context"`
	References     string `json:"references"`
	// Generated is false when the explanation came from the local fallback.
	Generated bool `json:"generated"`
}

// Explainer produces an explanation for a risk summary. Implementations must
// be safe for concurrent use.
type Explainer interface {
	Explain(ctx context.Context, s Summary) (*Explanation, error)
}
