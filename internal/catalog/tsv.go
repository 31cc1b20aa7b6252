package catalog

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// tsvColumns are the required header columns of a catalog overlay TSV, in any
// order.
var tsvColumns = []string{
	"rsid", "gene", "chrom", "pos_grch37", "pos_grch38",
	"ref", "alt", "star_allele", "activity", "function", "significance",
}

// LoadTSV appends entries from a tab-separated overlay file to the builder.
// The file must carry a header row naming all required columns; rows for
// unsupported genes are rejected rather than skipped, since an overlay is
// curated input.
func (b *Builder) LoadTSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog overlay: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() {
		return fmt.Errorf("catalog overlay %s: empty file", path)
	}
	header := strings.Split(scanner.Text(), "\t")

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range tsvColumns {
		if _, ok := idx[col]; !ok {
			return fmt.Errorf("catalog overlay %s: missing %q column", path, col)
		}
	}

	line := 1
	for scanner.Scan() {
		line++
		row := strings.Split(scanner.Text(), "\t")
		if len(strings.TrimSpace(scanner.Text())) == 0 {
			continue
		}
		if len(row) < len(tsvColumns) {
			return fmt.Errorf("catalog overlay %s line %d: expected %d columns, found %d",
				path, line, len(tsvColumns), len(row))
		}

		field := func(name string) string {
			return strings.TrimSpace(row[idx[name]])
		}

		gene, ok := ParseGene(field("gene"))
		if !ok {
			return fmt.Errorf("catalog overlay %s line %d: unsupported gene %q", path, line, field("gene"))
		}
		fn, err := ParseFunctionClass(field("function"))
		if err != nil {
			return fmt.Errorf("catalog overlay %s line %d: %w", path, line, err)
		}
		pos37, err := strconv.ParseInt(field("pos_grch37"), 10, 64)
		if err != nil {
			return fmt.Errorf("catalog overlay %s line %d: invalid pos_grch37: %w", path, line, err)
		}
		pos38, err := strconv.ParseInt(field("pos_grch38"), 10, 64)
		if err != nil {
			return fmt.Errorf("catalog overlay %s line %d: invalid pos_grch38: %w", path, line, err)
		}
		activity, err := strconv.ParseFloat(field("activity"), 64)
		if err != nil {
			return fmt.Errorf("catalog overlay %s line %d: invalid activity: %w", path, line, err)
		}

		b.Add(&Entry{
			RSID:         field("rsid"),
			Gene:         gene,
			Chrom:        strings.TrimPrefix(strings.ToLower(field("chrom")), "chr"),
			PosGRCh37:    pos37,
			PosGRCh38:    pos38,
			Ref:          field("ref"),
			Alt:          field("alt"),
			StarAllele:   field("star_allele"),
			Activity:     activity,
			Function:     fn,
			Significance: field("significance"),
		})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading catalog overlay: %w", err)
	}

	return nil
}
