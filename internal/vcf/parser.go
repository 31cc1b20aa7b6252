package vcf

import (
	"fmt"
	"strconv"
	"strings"
)

// Default thresholds for the quality gates. Values below them are treated as
// likely sequencing artifacts rather than clinical calls.
const (
	DefaultMinQuality      = 20.0
	DefaultMinDepth        = 10
	DefaultMinGenotypeQual = 15
)

// minColumns is the minimum number of fields a data line must carry:
// chromosome, position, identifier, ref, alt.
const minColumns = 5

// Parser converts variant-call text into records plus warnings. The zero
// value is not usable; construct with NewParser.
type Parser struct {
	MinQuality      float64
	MinDepth        int
	MinGenotypeQual int
}

// NewParser returns a parser with the default quality thresholds.
func NewParser() *Parser {
	return &Parser{
		MinQuality:      DefaultMinQuality,
		MinDepth:        DefaultMinDepth,
		MinGenotypeQual: DefaultMinGenotypeQual,
	}
}

// Result holds the outcome of parsing one file.
type Result struct {
	Records  []*Record
	Warnings []Warning
	// DataLines counts non-header, non-blank lines seen, surviving or not.
	DataLines int
}

func (r *Result) warn(line int, field, message string, sev Severity) {
	r.Warnings = append(r.Warnings, Warning{Line: line, Field: field, Message: message, Severity: sev})
}

// Parse parses the full file text. It returns a *FatalInputError for the
// fatal input class (empty file, headers only, no line with the minimum
// column count); every other condition is reported as a warning, and no
// single malformed line ever fails the batch.
func (p *Parser) Parse(text string) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &FatalInputError{Reason: "file is empty"}
	}

	lines := strings.Split(text, "\n")

	// Validation pre-pass: the fatal class is decided before any per-line
	// parsing begins.
	sawData := false
	sawEnoughColumns := false
	for _, raw := range lines {
		line := strings.TrimRight(raw, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sawData = true
		if len(splitColumns(line)) >= minColumns {
			sawEnoughColumns = true
			break
		}
	}
	if !sawData {
		return nil, &FatalInputError{Reason: "file contains only header lines"}
	}
	if !sawEnoughColumns {
		return nil, &FatalInputError{Reason: fmt.Sprintf("no line has the minimum %d columns", minColumns)}
	}

	result := &Result{}
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		result.DataLines++

		if rec := p.parseLine(lineNo, line, result); rec != nil {
			result.Records = append(result.Records, rec)
		}
	}

	if len(result.Records) == 0 {
		result.warn(0, "file",
			fmt.Sprintf("all %d data lines were excluded by quality and format checks; no records remain", result.DataLines),
			SeverityWarning)
	}

	return result, nil
}

// splitColumns splits a data line on tabs, falling back to generic whitespace
// when the tab split yields too few fields. Some clinical exports are
// space-aligned rather than tab-delimited.
func splitColumns(line string) []string {
	fields := strings.Split(line, "\t")
	if len(fields) >= minColumns {
		return fields
	}
	return strings.Fields(line)
}

// parseLine parses one data line, appending warnings to result. Returns nil
// when the line is skipped.
func (p *Parser) parseLine(lineNo int, line string, result *Result) *Record {
	fields := splitColumns(line)
	if len(fields) < minColumns {
		result.warn(lineNo, "line",
			fmt.Sprintf("too few columns: expected at least %d, found %d", minColumns, len(fields)),
			SeverityError)
		return nil
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		result.warn(lineNo, "POS", fmt.Sprintf("invalid position %q", fields[1]), SeverityError)
		return nil
	}

	rec := &Record{
		Line:  lineNo,
		Chrom: normalizeChrom(fields[0]),
		Pos:   pos,
		Ref:   fields[3],
		Alt:   fields[4],
		Depth: -1,
		GQ:    -1,
	}

	// Quality gate before anything else: a low-quality call is a possible
	// sequencing artifact and is excluded wholesale.
	if len(fields) > 5 && fields[5] != "." && fields[5] != "" {
		qual, err := strconv.ParseFloat(fields[5], 64)
		if err == nil {
			if qual < p.MinQuality {
				result.warn(lineNo, "QUAL",
					fmt.Sprintf("quality %.1f below threshold %.0f; possible sequencing artifact", qual, p.MinQuality),
					SeverityWarning)
				return nil
			}
			rec.Qual = qual
			rec.HasQual = true
		} else {
			result.warn(lineNo, "QUAL", fmt.Sprintf("unparseable quality %q", fields[5]), SeverityInfo)
		}
	}

	if len(fields) > 6 && fields[6] != "" {
		rec.Filter = fields[6]
		if rec.Filter != "." && rec.Filter != "PASS" {
			result.warn(lineNo, "FILTER",
				fmt.Sprintf("record failed filter %q", rec.Filter), SeverityWarning)
			return nil
		}
	}

	// Missing identifier or quality lowers downstream confidence but never
	// blocks processing.
	if fields[2] != "." && fields[2] != "" {
		rec.IDs = strings.Split(fields[2], ";")
	} else {
		result.warn(lineNo, "ID", "missing variant identifier", SeverityInfo)
	}
	if !rec.HasQual {
		result.warn(lineNo, "QUAL", "missing quality score", SeverityInfo)
	}

	if len(fields) > 7 {
		rec.Info = parseInfo(fields[7])
	}

	if len(fields) > 9 && fields[8] != "" && fields[9] != "" {
		if !p.parseSample(lineNo, fields[8], fields[9], rec, result) {
			return nil
		}
	} else {
		rec.Genotype = HomozygousAlt
		result.warn(lineNo, "FORMAT", "no FORMAT/SAMPLE columns; assuming homozygous variant genotype", SeverityInfo)
	}

	return rec
}

// parseSample extracts genotype fields from the FORMAT and SAMPLE columns.
// Returns false when the record must be skipped (insufficient read depth).
func (p *Parser) parseSample(lineNo int, format, sample string, rec *Record, result *Result) bool {
	keys := strings.Split(format, ":")
	values := strings.Split(sample, ":")

	if len(keys) != len(values) {
		result.warn(lineNo, "FORMAT",
			fmt.Sprintf("FORMAT has %d fields but SAMPLE has %d; using overlapping fields", len(keys), len(values)),
			SeverityWarning)
	}

	n := min(len(keys), len(values))
	sampleFields := make(map[string]string, n)
	for i := 0; i < n; i++ {
		sampleFields[strings.ToUpper(keys[i])] = values[i]
	}

	if gt, ok := sampleFields["GT"]; ok && gt != "" && gt != "./." {
		rec.Genotype = Genotype(gt)
	} else {
		rec.Genotype = HomozygousAlt
		result.warn(lineNo, "GT", "no genotype call; assuming homozygous variant genotype", SeverityWarning)
	}

	if dp, ok := sampleFields["DP"]; ok {
		if depth, err := strconv.Atoi(dp); err == nil {
			rec.Depth = depth
			if depth < p.MinDepth {
				result.warn(lineNo, "DP",
					fmt.Sprintf("read depth %d below threshold %d; insufficient coverage", depth, p.MinDepth),
					SeverityWarning)
				return false
			}
		}
	}

	if gq, ok := sampleFields["GQ"]; ok {
		if q, err := strconv.Atoi(gq); err == nil {
			rec.GQ = q
			if q < p.MinGenotypeQual {
				result.warn(lineNo, "GQ",
					fmt.Sprintf("genotype quality %d below threshold %d; call retained with reduced confidence", q, p.MinGenotypeQual),
					SeverityWarning)
			}
		}
	}

	return true
}

// parseInfo parses the annotation field: semicolon-separated KEY=VALUE pairs
// or bare flags, keys case-normalized to upper.
func parseInfo(info string) Info {
	parsed := Info{Extra: make(map[string]string)}
	if info == "." || info == "" {
		return parsed
	}

	for _, kv := range strings.Split(info, ";") {
		parts := strings.SplitN(kv, "=", 2)
		key := strings.ToUpper(strings.TrimSpace(parts[0]))
		if key == "" {
			continue
		}
		value := ""
		if len(parts) == 2 {
			value = parts[1]
		}
		switch key {
		case "GENE":
			parsed.Gene = value
		case "GENEINFO":
			parsed.GeneInfo = value
		default:
			parsed.Extra[key] = value
		}
	}

	return parsed
}

// normalizeChrom strips a leading case-insensitive "chr" prefix.
func normalizeChrom(chrom string) string {
	if len(chrom) > 3 && strings.EqualFold(chrom[:3], "chr") {
		return chrom[3:]
	}
	return chrom
}
