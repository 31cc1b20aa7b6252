package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
)

// DuckDBLoader reads catalog overlay entries from a DuckDB database, the
// exchange format used for site-curated allele-definition exports.
type DuckDBLoader struct {
	db   *sql.DB
	path string
}

// NewDuckDBLoader opens a DuckDB-backed catalog overlay.
func NewDuckDBLoader(path string) (*DuckDBLoader, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &DuckDBLoader{db: db, path: path}, nil
}

// Close closes the database connection.
func (l *DuckDBLoader) Close() error {
	return l.db.Close()
}

// Load appends all overlay entries to the builder.
func (l *DuckDBLoader) Load(b *Builder) error {
	rows, err := l.db.Query(`
		SELECT rsid, gene, chrom, pos_grch37, pos_grch38, ref, alt,
		       star_allele, activity, function, significance
		FROM allele_definitions
		ORDER BY gene, star_allele
	`)
	if err != nil {
		return fmt.Errorf("query allele definitions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return err
		}
		b.Add(e)
	}
	return rows.Err()
}

// EntryCount returns the number of overlay entries in the database.
func (l *DuckDBLoader) EntryCount() (int, error) {
	var count int
	err := l.db.QueryRow("SELECT COUNT(*) FROM allele_definitions").Scan(&count)
	return count, err
}

// scanEntry scans an overlay row into an Entry.
func scanEntry(rows *sql.Rows) (*Entry, error) {
	var (
		e            Entry
		gene, fn     string
		significance sql.NullString
	)
	err := rows.Scan(
		&e.RSID, &gene, &e.Chrom, &e.PosGRCh37, &e.PosGRCh38,
		&e.Ref, &e.Alt, &e.StarAllele, &e.Activity, &fn, &significance,
	)
	if err != nil {
		return nil, fmt.Errorf("scan allele definition: %w", err)
	}

	g, ok := ParseGene(gene)
	if !ok {
		return nil, fmt.Errorf("allele definition %s: unsupported gene %q", e.RSID, gene)
	}
	e.Gene = g

	f, err := ParseFunctionClass(fn)
	if err != nil {
		return nil, fmt.Errorf("allele definition %s: %w", e.RSID, err)
	}
	e.Function = f
	e.Chrom = strings.TrimPrefix(strings.ToLower(e.Chrom), "chr")
	e.Significance = significance.String

	return &e, nil
}

// CreateSchema creates the overlay schema. Used by export tooling and tests.
func (l *DuckDBLoader) CreateSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS allele_definitions (
			rsid VARCHAR PRIMARY KEY,
			gene VARCHAR,
			chrom VARCHAR,
			pos_grch37 BIGINT,
			pos_grch38 BIGINT,
			ref VARCHAR,
			alt VARCHAR,
			star_allele VARCHAR,
			activity DOUBLE,
			function VARCHAR,
			significance VARCHAR
		);

		CREATE INDEX IF NOT EXISTS idx_allele_gene ON allele_definitions(gene);
	`
	_, err := l.db.Exec(schema)
	return err
}

// InsertEntry inserts an overlay entry. Used by export tooling and tests.
func (l *DuckDBLoader) InsertEntry(e *Entry) error {
	_, err := l.db.Exec(`
		INSERT INTO allele_definitions (rsid, gene, chrom, pos_grch37, pos_grch38,
		                                ref, alt, star_allele, activity, function, significance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.RSID, string(e.Gene), e.Chrom, e.PosGRCh37, e.PosGRCh38,
		e.Ref, e.Alt, e.StarAllele, e.Activity, string(e.Function), nullString(e.Significance))
	if err != nil {
		return fmt.Errorf("insert allele definition: %w", err)
	}
	return nil
}

// IsDuckDB reports whether a catalog overlay path looks like a DuckDB file.
func IsDuckDB(path string) bool {
	return strings.HasSuffix(path, ".duckdb") || strings.HasSuffix(path, ".db")
}

// nullString returns nil if s is empty, otherwise s.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
