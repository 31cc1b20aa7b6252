package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLoader opens an in-memory database with the overlay schema created.
func newTestLoader(t *testing.T) *DuckDBLoader {
	t.Helper()
	loader, err := NewDuckDBLoader("")
	require.NoError(t, err)
	t.Cleanup(func() { loader.Close() })
	require.NoError(t, loader.CreateSchema())
	return loader
}

func TestDuckDBLoader_RoundTrip(t *testing.T) {
	loader := newTestLoader(t)

	want := &Entry{
		RSID: "rs5030865", Gene: CYP2D6, Chrom: "22",
		PosGRCh37: 42525134, PosGRCh38: 42129132,
		Ref: "C", Alt: "A", StarAllele: "*8",
		Activity: 0, Function: NoFunction,
		Significance: "G169X stop gain",
	}
	require.NoError(t, loader.InsertEntry(want))

	count, err := loader.EntryCount()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	b := NewBuilder()
	require.NoError(t, loader.Load(b))
	require.Equal(t, 1, b.Len())

	c, err := b.Build()
	require.NoError(t, err)

	got := c.ByID("rs5030865")
	require.NotNil(t, got)
	assert.Equal(t, want.Gene, got.Gene)
	assert.Equal(t, want.StarAllele, got.StarAllele)
	assert.Equal(t, want.PosGRCh37, got.PosGRCh37)
	assert.Equal(t, want.PosGRCh38, got.PosGRCh38)
	assert.Equal(t, want.Function, got.Function)
	assert.Equal(t, want.Significance, got.Significance)
}

func TestDuckDBLoader_NormalizesChrPrefix(t *testing.T) {
	loader := newTestLoader(t)

	require.NoError(t, loader.InsertEntry(&Entry{
		RSID: "rs1800584", Gene: TPMT, Chrom: "chr6",
		PosGRCh37: 18147915, PosGRCh38: 18147684,
		Ref: "G", Alt: "A", StarAllele: "*4",
		Activity: 0, Function: NoFunction,
	}))

	b := NewBuilder()
	require.NoError(t, loader.Load(b))
	require.Equal(t, 1, b.Len())

	c, err := b.Build()
	require.NoError(t, err)
	e := c.ByID("rs1800584")
	require.NotNil(t, e)
	assert.Equal(t, "6", e.Chrom)
	assert.NotNil(t, c.ByCoordinate(GRCh37, "chr6", 18147915))
}

func TestDuckDBLoader_RejectsUnsupportedGene(t *testing.T) {
	loader := newTestLoader(t)

	_, err := loader.db.Exec(`
		INSERT INTO allele_definitions (rsid, gene, chrom, pos_grch37, pos_grch38,
		                                ref, alt, star_allele, activity, function, significance)
		VALUES ('rs1', 'VKORC1', '16', 100, 90, 'A', 'G', '*2', 0, 'no_function', NULL)
	`)
	require.NoError(t, err)

	err = loader.Load(NewBuilder())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported gene")
}

func TestIsDuckDB(t *testing.T) {
	assert.True(t, IsDuckDB("overlay.duckdb"))
	assert.True(t, IsDuckDB("overlay.db"))
	assert.False(t, IsDuckDB("overlay.tsv"))
	assert.False(t, IsDuckDB("overlay"))
}
