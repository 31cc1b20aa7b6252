package vcf

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHeader = `##fileformat=VCFv4.2
##reference=GRCh38
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO	FORMAT	SAMPLE1
`

func dataLine(cols ...string) string {
	return strings.Join(cols, "\t") + "\n"
}

func TestParse_FatalInputs(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		reason string
	}{
		{"empty string", "", "file is empty"},
		{"whitespace only", "  \n\t\n", "file is empty"},
		{"headers only", sampleHeader, "only header lines"},
		{"no line with enough columns", sampleHeader + "22\t42128945\n1\t97450058\n", "minimum 5 columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse(tt.text)
			require.Error(t, err)

			var fatal *FatalInputError
			require.True(t, errors.As(err, &fatal))
			assert.Contains(t, fatal.Reason, tt.reason)
		})
	}
}

func TestParse_CompleteRecord(t *testing.T) {
	text := sampleHeader +
		dataLine("chr22", "42128945", "rs3892097", "C", "T", "99", "PASS", "GENE=CYP2D6;DP=30", "GT:DP:GQ", "0/1:30:99")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, 1, result.DataLines)
	assert.Empty(t, result.Warnings)

	rec := result.Records[0]
	assert.Equal(t, "22", rec.Chrom, "chr prefix is stripped")
	assert.Equal(t, int64(42128945), rec.Pos)
	assert.Equal(t, []string{"rs3892097"}, rec.IDs)
	assert.Equal(t, "C", rec.Ref)
	assert.Equal(t, "T", rec.Alt)
	assert.Equal(t, 99.0, rec.Qual)
	assert.True(t, rec.HasQual)
	assert.Equal(t, "PASS", rec.Filter)
	assert.Equal(t, "CYP2D6", rec.Info.Gene)
	assert.Equal(t, Genotype("0/1"), rec.Genotype)
	assert.Equal(t, 30, rec.Depth)
	assert.Equal(t, 99, rec.GQ)
}

func TestParse_SpaceDelimitedFallback(t *testing.T) {
	text := sampleHeader +
		"22 42128945 rs3892097 C T 99 PASS GENE=CYP2D6 GT 1/1\n"

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, Genotype("1/1"), result.Records[0].Genotype)
}

func TestParse_QualityGate(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "12.5", "PASS", ".", "GT", "0/1") +
		dataLine("10", "94781859", "rs4244285", "G", "A", "80", "PASS", ".", "GT", "0/1")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, []string{"rs4244285"}, result.Records[0].IDs)

	require.Len(t, result.Warnings, 1)
	w := result.Warnings[0]
	assert.Equal(t, "QUAL", w.Field)
	assert.Equal(t, SeverityWarning, w.Severity)
	assert.Contains(t, w.Message, "12.5")
}

func TestParse_AllLinesExcluded(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "5", "PASS", ".", "GT", "0/1") +
		dataLine("10", "94781859", "rs4244285", "G", "A", "3", "PASS", ".", "GT", "0/1")

	result, err := NewParser().Parse(text)
	require.NoError(t, err, "quality exclusion is not fatal")
	assert.Empty(t, result.Records)
	assert.Equal(t, 2, result.DataLines)

	last := result.Warnings[len(result.Warnings)-1]
	assert.Equal(t, "file", last.Field)
	assert.Contains(t, last.Message, "all 2 data lines were excluded")
}

func TestParse_FailedFilter(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "99", "q10", ".", "GT", "0/1") +
		dataLine("10", "94781859", "rs4244285", "G", "A", "99", ".", ".", "GT", "0/1")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, ".", result.Records[0].Filter)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "FILTER", result.Warnings[0].Field)
	assert.Contains(t, result.Warnings[0].Message, "q10")
}

func TestParse_MissingOptionalFields(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", ".", "C", "T")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Nil(t, rec.IDs)
	assert.False(t, rec.HasQual)
	assert.Equal(t, HomozygousAlt, rec.Genotype, "no sample data defaults to homozygous variant")
	assert.Equal(t, -1, rec.Depth)
	assert.Equal(t, -1, rec.GQ)

	fields := make(map[string]Severity)
	for _, w := range result.Warnings {
		fields[w.Field] = w.Severity
	}
	assert.Equal(t, SeverityInfo, fields["ID"])
	assert.Equal(t, SeverityInfo, fields["QUAL"])
	assert.Equal(t, SeverityInfo, fields["FORMAT"])
}

func TestParse_InvalidPosition(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "not-a-number", "rs3892097", "C", "T", "99", "PASS", ".", "GT", "0/1") +
		dataLine("10", "94781859", "rs4244285", "G", "A", "99", "PASS", ".", "GT", "0/1")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, "POS", result.Warnings[0].Field)
	assert.Equal(t, SeverityError, result.Warnings[0].Severity)
}

func TestParse_FormatSampleMismatch(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT:DP:GQ", "0/1:30")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	rec := result.Records[0]
	assert.Equal(t, Genotype("0/1"), rec.Genotype)
	assert.Equal(t, 30, rec.Depth)
	assert.Equal(t, -1, rec.GQ, "field beyond the overlap is absent")

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "FORMAT", result.Warnings[0].Field)
	assert.Contains(t, result.Warnings[0].Message, "using overlapping fields")
}

func TestParse_MissingGenotypeCall(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT:DP", "./.:30")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, HomozygousAlt, result.Records[0].Genotype)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "GT", result.Warnings[0].Field)
}

func TestParse_DepthGate(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT:DP", "0/1:4") +
		dataLine("10", "94781859", "rs4244285", "G", "A", "99", "PASS", ".", "GT:DP", "0/1:25")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, []string{"rs4244285"}, result.Records[0].IDs)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "DP", result.Warnings[0].Field)
	assert.Contains(t, result.Warnings[0].Message, "insufficient coverage")
}

func TestParse_GenotypeQualityWarnsOnly(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "99", "PASS", ".", "GT:GQ", "0/1:8")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1, "low genotype quality retains the record")
	assert.Equal(t, 8, result.Records[0].GQ)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "GQ", result.Warnings[0].Field)
	assert.Contains(t, result.Warnings[0].Message, "reduced confidence")
}

func TestParse_CustomThresholds(t *testing.T) {
	p := NewParser()
	p.MinQuality = 50
	p.MinDepth = 40

	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097", "C", "T", "45", "PASS", ".", "GT:DP", "0/1:30")

	result, err := p.Parse(text)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
}

func TestParse_MultipleIdentifiers(t *testing.T) {
	text := sampleHeader +
		dataLine("22", "42128945", "rs3892097;rs999", "C", "T", "99", "PASS", ".", "GT", "0/1")

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, []string{"rs3892097", "rs999"}, result.Records[0].IDs)
}

func TestParse_CRLFLineEndings(t *testing.T) {
	text := "##fileformat=VCFv4.2\r\n" +
		"22\t42128945\trs3892097\tC\tT\t99\tPASS\t.\tGT\t0/1\r\n"

	result, err := NewParser().Parse(text)
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, Genotype("0/1"), result.Records[0].Genotype)
}

func TestParseInfo(t *testing.T) {
	tests := []struct {
		name string
		info string
		want Info
	}{
		{
			name: "gene tag",
			info: "GENE=CYP2D6;DP=30",
			want: Info{Gene: "CYP2D6", Extra: map[string]string{"DP": "30"}},
		},
		{
			name: "lowercase keys normalized",
			info: "gene=TPMT;geneinfo=TPMT:7172",
			want: Info{Gene: "TPMT", GeneInfo: "TPMT:7172", Extra: map[string]string{}},
		},
		{
			name: "bare flag",
			info: "DB;GENE=DPYD",
			want: Info{Gene: "DPYD", Extra: map[string]string{"DB": ""}},
		},
		{
			name: "empty info",
			info: ".",
			want: Info{Extra: map[string]string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseInfo(tt.info))
		})
	}
}

func TestNormalizeChrom(t *testing.T) {
	assert.Equal(t, "22", normalizeChrom("chr22"))
	assert.Equal(t, "22", normalizeChrom("CHR22"))
	assert.Equal(t, "22", normalizeChrom("22"))
	assert.Equal(t, "X", normalizeChrom("chrX"))
	assert.Equal(t, "chr", normalizeChrom("chr"))
}
