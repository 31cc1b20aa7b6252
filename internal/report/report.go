// Package report assembles and renders analysis output.
package report

import (
	"time"

	"github.com/pgxguard/pgxguard/internal/explain"
	"github.com/pgxguard/pgxguard/internal/vcf"
)

// Report is the full output of one analysis invocation: one result per
// requested drug plus batch-level warnings and quality metrics.
type Report struct {
	AnalysisID string        `json:"analysis_id"`
	CreatedAt  time.Time     `json:"created_at"`
	Results    []DrugResult  `json:"results"`
	Warnings   []vcf.Warning `json:"warnings"`
	Metrics    Metrics       `json:"quality_metrics"`
}

// DrugResult is the per-drug output block set.
type DrugResult struct {
	Risk           RiskBlock            `json:"risk_assessment"`
	Profile        ProfileBlock         `json:"pharmacogenomic_profile"`
	Recommendation RecommendationBlock  `json:"clinical_recommendation"`
	Explanation    *explain.Explanation `json:"explanation,omitempty"`
}

// RiskBlock is the risk-assessment output block.
type RiskBlock struct {
	Drug       string  `json:"drug"`
	Label      string  `json:"label"`
	Severity   string  `json:"severity"`
	Confidence float64 `json:"confidence"`
	Action     string  `json:"action"`
}

// ProfileBlock is the pharmacogenomic-profile output block.
type ProfileBlock struct {
	Gene          string         `json:"gene"`
	Diplotype     string         `json:"diplotype"`
	Phenotype     string         `json:"phenotype"`
	ActivityScore float64        `json:"activity_score"`
	Covered       bool           `json:"covered"`
	Variants      []VariantBlock `json:"detected_variants"`
}

// VariantBlock is one detected variant as surfaced in output.
type VariantBlock struct {
	RSID         string `json:"id"`
	Location     string `json:"location"`
	Ref          string `json:"ref"`
	Alt          string `json:"alt"`
	Genotype     string `json:"genotype"`
	Zygosity     string `json:"zygosity"`
	StarAllele   string `json:"star_allele,omitempty"`
	Significance string `json:"significance"`
}

// RecommendationBlock is the clinical-recommendation output block.
type RecommendationBlock struct {
	Action       string   `json:"action"`
	Dosing       string   `json:"dosing_guidance"`
	Alternatives []string `json:"alternatives"`
	Monitoring   string   `json:"monitoring"`
	Citation     string   `json:"citation"`
}

// Metrics is the quality-metrics output block.
type Metrics struct {
	Parsed       bool  `json:"parsing_successful"`
	DataLines    int   `json:"data_lines"`
	RecordCount  int   `json:"record_count"`
	VariantCount int   `json:"variant_count"`
	GeneCount    int   `json:"gene_count"`
	ElapsedMS    int64 `json:"elapsed_ms"`
}
