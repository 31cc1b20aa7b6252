package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/explain"
	"github.com/pgxguard/pgxguard/internal/risk"
	"github.com/pgxguard/pgxguard/internal/vcf"
)

const vcfHeader = "##fileformat=VCFv4.2\n#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tSAMPLE1\n"

func line(cols ...string) string {
	return strings.Join(cols, "\t") + "\n"
}

func newAnalyzer() *Analyzer {
	return New(catalog.Default())
}

func TestAnalyze_PoorMetabolizerCodeine(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", "GENE=CYP2D6", "GT:DP:GQ", "1/1:30:99")

	rep, err := newAnalyzer().Analyze(context.Background(), text, []risk.Drug{risk.Codeine})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)

	res := rep.Results[0]
	assert.Equal(t, "codeine", res.Risk.Drug)
	assert.Equal(t, "Toxic", res.Risk.Label)
	assert.Equal(t, "critical", res.Risk.Severity)
	assert.Equal(t, "*4/*4", res.Profile.Diplotype)
	assert.Equal(t, "Poor Metabolizer", res.Profile.Phenotype)
	assert.True(t, res.Profile.Covered)
	require.Len(t, res.Profile.Variants, 1)
	assert.Equal(t, "rs3892097", res.Profile.Variants[0].RSID)
	assert.Equal(t, "homozygous", res.Profile.Variants[0].Zygosity)
	assert.Nil(t, res.Explanation, "explanation is off by default")

	assert.NotEmpty(t, rep.AnalysisID)
	assert.True(t, rep.Metrics.Parsed)
	assert.Equal(t, 1, rep.Metrics.RecordCount)
	assert.Equal(t, 1, rep.Metrics.VariantCount)
	assert.Equal(t, 1, rep.Metrics.GeneCount)
}

func TestAnalyze_FatalInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty file", ""},
		{"headers only", vcfHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := newAnalyzer().Analyze(context.Background(), tt.text, risk.Drugs())
			require.Error(t, err)
			assert.Nil(t, rep, "fatal input produces no partial report")

			var fatal *vcf.FatalInputError
			assert.True(t, errors.As(err, &fatal))
		})
	}
}

func TestAnalyze_AllRecordsExcluded(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "4", "PASS", ".", "GT", "1/1")

	rep, err := newAnalyzer().Analyze(context.Background(), text, risk.Drugs())
	require.NoError(t, err, "quality exclusion is not fatal")
	assert.False(t, rep.Metrics.Parsed)
	assert.Empty(t, rep.Results)
	assert.Equal(t, 1, rep.Metrics.DataLines)
	require.NotEmpty(t, rep.Warnings)
	assert.Contains(t, rep.Warnings[len(rep.Warnings)-1].Message, "no records remain")
}

func TestAnalyze_WildTypeVersusUncovered(t *testing.T) {
	// CYP2C9 locus sequenced homozygous-reference; CYP2D6 never appears.
	text := vcfHeader +
		line("10", "96702047", "rs1799853", "C", "C", "99", "PASS", ".", "GT:DP", "0/0:40")

	rep, err := newAnalyzer().Analyze(context.Background(), text,
		[]risk.Drug{risk.Warfarin, risk.Codeine})
	require.NoError(t, err)
	require.Len(t, rep.Results, 2)

	warfarin := rep.Results[0]
	assert.Equal(t, "Safe", warfarin.Risk.Label)
	assert.Equal(t, "*1/*1", warfarin.Profile.Diplotype)
	assert.Equal(t, "Normal Metabolizer", warfarin.Profile.Phenotype)
	assert.True(t, warfarin.Profile.Covered)
	assert.Greater(t, warfarin.Risk.Confidence, 0.0)

	codeine := rep.Results[1]
	assert.Equal(t, "Unknown", codeine.Risk.Label)
	assert.False(t, codeine.Profile.Covered)
	assert.Zero(t, codeine.Risk.Confidence)
	assert.Contains(t, codeine.Risk.Action, "No CYP2D6 coverage")

	assert.Equal(t, 0, rep.Metrics.VariantCount)
	assert.Equal(t, 1, rep.Metrics.GeneCount, "only the covered gene is resolved")
}

func TestAnalyze_MultiGene(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT:DP", "0/1:30") +
		line("10", "94781859", "rs4244285", "G", "A", "99", "PASS", ".", "GT:DP", "0/1:30") +
		line("1", "97450058", "rs3918290", "C", "T", "99", "PASS", ".", "GT:DP", "1/1:30")

	rep, err := newAnalyzer().Analyze(context.Background(), text,
		[]risk.Drug{risk.Codeine, risk.Clopidogrel, risk.Fluorouracil})
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)

	assert.Equal(t, "Adjust Dosage", rep.Results[0].Risk.Label, "CYP2D6 *1/*4 intermediate")
	assert.Equal(t, "Adjust Dosage", rep.Results[1].Risk.Label, "CYP2C19 *1/*2 intermediate")
	assert.Equal(t, "Toxic", rep.Results[2].Risk.Label, "DPYD *2A/*2A poor")
	assert.Equal(t, "critical", rep.Results[2].Risk.Severity)
	assert.Equal(t, 3, rep.Metrics.GeneCount)
}

func TestAnalyze_ResultsFollowRequestOrder(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT", "0/1")

	drugs := []risk.Drug{risk.Capecitabine, risk.Codeine, risk.Azathioprine}
	rep, err := newAnalyzer().Analyze(context.Background(), text, drugs)
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)
	for i, d := range drugs {
		assert.Equal(t, string(d), rep.Results[i].Risk.Drug)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT:DP:GQ", "0/1:30:99") +
		line("10", "94761900", "rs12248560", "C", "T", "99", "PASS", ".", "GT:DP:GQ", "1/1:25:80")

	a := newAnalyzer()
	first, err := a.Analyze(context.Background(), text, risk.Drugs())
	require.NoError(t, err)
	second, err := a.Analyze(context.Background(), text, risk.Drugs())
	require.NoError(t, err)

	assert.NotEqual(t, first.AnalysisID, second.AnalysisID)
	assert.Equal(t, first.Results, second.Results)
	assert.Equal(t, first.Warnings, second.Warnings)
}

// stubExplainer returns a fixed explanation or error.
type stubExplainer struct {
	explanation *explain.Explanation
	err         error
	calls       int
}

func (s *stubExplainer) Explain(ctx context.Context, _ explain.Summary) (*explain.Explanation, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.explanation, nil
}

func TestAnalyze_ExplainerAttached(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT", "1/1")

	stub := &stubExplainer{explanation: &explain.Explanation{
		Summary:   "Codeine is classified Toxic for this patient.",
		Mechanism: "CYP2D6 bioactivates codeine.",
		Generated: true,
	}}

	a := newAnalyzer()
	a.SetExplainer(stub)

	rep, err := a.Analyze(context.Background(), text, []risk.Drug{risk.Codeine})
	require.NoError(t, err)
	require.Len(t, rep.Results, 1)
	require.NotNil(t, rep.Results[0].Explanation)
	assert.True(t, rep.Results[0].Explanation.Generated)
	assert.Equal(t, 1, stub.calls)
}

func TestAnalyze_ExplainerFailureFallsBack(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT", "1/1")

	a := newAnalyzer()
	a.SetExplainer(&stubExplainer{err: errors.New("service unavailable")})

	rep, err := a.Analyze(context.Background(), text, []risk.Drug{risk.Codeine})
	require.NoError(t, err, "explanation failure never fails the analysis")

	exp := rep.Results[0].Explanation
	require.NotNil(t, exp)
	assert.False(t, exp.Generated, "fallback marks itself as locally built")
	assert.NotEmpty(t, exp.Mechanism)
	assert.Contains(t, exp.Summary, "codeine")
}

func TestAnalyze_WorkerOverride(t *testing.T) {
	text := vcfHeader +
		line("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT", "0/1")

	a := newAnalyzer()
	a.SetWorkers(1)

	rep, err := a.Analyze(context.Background(), text, risk.Drugs())
	require.NoError(t, err)
	assert.Len(t, rep.Results, len(risk.Drugs()))
}
