package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Writer renders a report to an output stream.
type Writer interface {
	Write(r *Report) error
}

// JSONWriter renders the report as indented JSON.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a JSON report writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Write marshals the full report.
func (jw *JSONWriter) Write(r *Report) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// TextWriter renders a human-readable summary.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a text report writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Write renders the report and flushes.
func (tw *TextWriter) Write(r *Report) error {
	p := func(format string, args ...interface{}) {
		fmt.Fprintf(tw.w, format, args...)
	}

	p("Pharmacogenomic analysis %s\n", r.AnalysisID)
	p("%s\n\n", strings.Repeat("=", 60))

	for _, res := range r.Results {
		p("%s (%s)\n", res.Risk.Drug, res.Profile.Gene)
		p("  Risk:       %s [%s]  confidence %.2f\n", res.Risk.Label, res.Risk.Severity, res.Risk.Confidence)
		p("  Diplotype:  %s  (%s, activity score %.2f)\n",
			res.Profile.Diplotype, res.Profile.Phenotype, res.Profile.ActivityScore)
		p("  Action:     %s\n", res.Risk.Action)
		p("  Dosing:     %s\n", res.Recommendation.Dosing)
		if len(res.Recommendation.Alternatives) > 0 {
			p("  Options:    %s\n", strings.Join(res.Recommendation.Alternatives, ", "))
		}
		for _, v := range res.Profile.Variants {
			label := v.RSID
			if v.StarAllele != "" {
				label = fmt.Sprintf("%s (%s)", v.RSID, v.StarAllele)
			}
			p("  Variant:    %s %s %s>%s %s: %s\n", label, v.Location, v.Ref, v.Alt, v.Genotype, v.Significance)
		}
		p("  Guideline:  %s\n\n", res.Recommendation.Citation)
	}

	if len(r.Warnings) > 0 {
		p("Warnings (%d)\n", len(r.Warnings))
		for _, w := range r.Warnings {
			p("  %s\n", w)
		}
		p("\n")
	}

	p("Quality: parsed=%v records=%d variants=%d genes=%d elapsed=%dms\n",
		r.Metrics.Parsed, r.Metrics.RecordCount, r.Metrics.VariantCount,
		r.Metrics.GeneCount, r.Metrics.ElapsedMS)

	return tw.w.Flush()
}
