// Package pipeline orchestrates the analysis: parse, match, resolve,
// evaluate.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pgxguard/pgxguard/internal/catalog"
	"github.com/pgxguard/pgxguard/internal/diplotype"
	"github.com/pgxguard/pgxguard/internal/explain"
	"github.com/pgxguard/pgxguard/internal/match"
	"github.com/pgxguard/pgxguard/internal/report"
	"github.com/pgxguard/pgxguard/internal/risk"
	"github.com/pgxguard/pgxguard/internal/vcf"
)

// Analyzer runs complete analyses over a shared, read-only catalog. One
// Analyzer may serve concurrent invocations; each Analyze call is fully
// independent of every other.
type Analyzer struct {
	catalog   *catalog.Catalog
	parser    *vcf.Parser
	matcher   *match.Matcher
	explainer explain.Explainer
	logger    *zap.Logger
	workers   int
}

// New creates an analyzer over the given catalog.
func New(c *catalog.Catalog) *Analyzer {
	return &Analyzer{
		catalog: c,
		parser:  vcf.NewParser(),
		matcher: match.New(c),
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for pipeline tracing.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
	a.matcher.SetLogger(l)
}

// SetParser replaces the record parser, e.g. to adjust quality thresholds.
func (a *Analyzer) SetParser(p *vcf.Parser) {
	a.parser = p
}

// SetExplainer enables external explanation generation. When the service
// fails for a result, the deterministic local fallback is used instead.
func (a *Analyzer) SetExplainer(e explain.Explainer) {
	a.explainer = e
}

// SetWorkers overrides the per-drug evaluation worker count.
func (a *Analyzer) SetWorkers(n int) {
	a.workers = n
}

// Analyze runs the full pipeline for one file against the requested drugs.
// Fatal input conditions (empty file, headers only, no parseable columns)
// return an error and no partial results. Every other condition surfaces as
// warnings inside the report.
func (a *Analyzer) Analyze(ctx context.Context, fileText string, drugs []risk.Drug) (*report.Report, error) {
	start := time.Now()

	rep := &report.Report{
		AnalysisID: uuid.NewString(),
		CreatedAt:  start.UTC(),
	}

	parsed, err := a.parser.Parse(fileText)
	if err != nil {
		return nil, err
	}
	rep.Warnings = parsed.Warnings
	rep.Metrics.DataLines = parsed.DataLines
	rep.Metrics.RecordCount = len(parsed.Records)

	if len(parsed.Records) == 0 {
		// Every data line was excluded; the summary warning is already in
		// place and there is nothing to classify.
		rep.Metrics.ElapsedMS = time.Since(start).Milliseconds()
		a.logger.Warn("no records survived parsing",
			zap.Int("data_lines", parsed.DataLines),
			zap.Int("warnings", len(parsed.Warnings)))
		return rep, nil
	}
	rep.Metrics.Parsed = true

	matched := a.matcher.Match(parsed.Records)
	rep.Metrics.VariantCount = len(matched.Variants)

	// Resolve each gene once; drug evaluations share the profile.
	profiles := make(map[catalog.Gene]*diplotype.Profile)
	for _, gene := range catalog.Genes() {
		variants := matched.ByGene(gene)
		if len(variants) > 0 || matched.IsCovered(gene) {
			profiles[gene] = diplotype.Resolve(gene, variants)
			rep.Metrics.GeneCount++
		}
	}

	rep.Results = a.evaluateDrugs(ctx, drugs, profiles, matched)
	rep.Metrics.ElapsedMS = time.Since(start).Milliseconds()

	a.logger.Info("analysis complete",
		zap.String("analysis_id", rep.AnalysisID),
		zap.Int("records", len(parsed.Records)),
		zap.Int("variants", len(matched.Variants)),
		zap.Int("genes", rep.Metrics.GeneCount),
		zap.Int("drugs", len(drugs)))

	return rep, nil
}

// evaluateDrugs runs per-drug evaluation through the worker pool and
// reassembles results in request order. A failure in one drug's evaluation
// never affects another's.
func (a *Analyzer) evaluateDrugs(ctx context.Context, drugs []risk.Drug,
	profiles map[catalog.Gene]*diplotype.Profile, matched *match.Result) []report.DrugResult {

	items := make(chan WorkItem, len(drugs))
	for i, d := range drugs {
		items <- WorkItem{Seq: i, Drug: d}
	}
	close(items)

	eval := func(ctx context.Context, d risk.Drug) (report.DrugResult, error) {
		return a.evaluateDrug(ctx, d, profiles, matched), nil
	}

	var results []report.DrugResult
	orderedCollect(parallelEvaluate(ctx, items, a.workers, eval), func(r WorkResult) {
		if r.Err != nil {
			a.logger.Warn("drug evaluation failed",
				zap.String("drug", string(r.Drug)),
				zap.Error(r.Err))
			return
		}
		results = append(results, r.Result)
	})
	return results
}

// evaluateDrug classifies one drug and assembles its output blocks.
func (a *Analyzer) evaluateDrug(ctx context.Context, drug risk.Drug,
	profiles map[catalog.Gene]*diplotype.Profile, matched *match.Result) report.DrugResult {

	gene := drug.Gene()
	covered := matched.IsCovered(gene)

	profile, ok := profiles[gene]
	if !ok {
		// Never covered and no variants: resolve an empty profile so the
		// entry carries a well-formed (wild-type shaped) profile block.
		profile = diplotype.Resolve(gene, nil)
	}

	entry := risk.Evaluate(drug, profile, covered, matched.TotalVariants())

	result := report.DrugResult{
		Risk: report.RiskBlock{
			Drug:       string(drug),
			Label:      string(entry.Label),
			Severity:   string(entry.Severity),
			Confidence: entry.Confidence,
			Action:     entry.Action,
		},
		Profile: report.ProfileBlock{
			Gene:          string(gene),
			Diplotype:     profile.Diplotype,
			Phenotype:     string(profile.Phenotype),
			ActivityScore: profile.ActivityScore,
			Covered:       covered,
			Variants:      variantBlocks(profile.Variants),
		},
		Recommendation: report.RecommendationBlock{
			Action:       entry.Action,
			Dosing:       entry.Dosing,
			Alternatives: entry.Alternatives,
			Monitoring:   entry.Monitoring,
			Citation:     entry.Citation,
		},
	}

	result.Explanation = a.explainResult(ctx, entry, profile)
	return result
}

// explainResult produces the narrative block: the external service when
// configured, the deterministic fallback when it fails, nothing when
// explanation is disabled.
func (a *Analyzer) explainResult(ctx context.Context, entry risk.Entry, profile *diplotype.Profile) *explain.Explanation {
	if a.explainer == nil {
		return nil
	}

	summary := explain.Summary{
		Drug:      string(entry.Drug),
		Gene:      string(entry.Gene),
		Diplotype: profile.Diplotype,
		Phenotype: string(profile.Phenotype),
		RiskLabel: string(entry.Label),
		Severity:  string(entry.Severity),
	}
	for _, v := range profile.Variants {
		summary.Variants = append(summary.Variants, fmt.Sprintf("%s: %s", v.RSID, v.Significance))
	}

	e, err := a.explainer.Explain(ctx, summary)
	if err != nil {
		a.logger.Warn("explanation service unavailable; using fallback",
			zap.String("drug", summary.Drug),
			zap.Error(err))
		return explain.Fallback(summary, entry.Mechanism)
	}
	return e
}

func variantBlocks(variants []*match.DetectedVariant) []report.VariantBlock {
	blocks := make([]report.VariantBlock, 0, len(variants))
	for _, v := range variants {
		blocks = append(blocks, report.VariantBlock{
			RSID:         v.RSID,
			Location:     v.Coordinates(),
			Ref:          v.Ref,
			Alt:          v.Alt,
			Genotype:     string(v.Genotype),
			Zygosity:     string(v.Zygosity),
			StarAllele:   v.StarAllele,
			Significance: v.Significance,
		})
	}
	return blocks
}
