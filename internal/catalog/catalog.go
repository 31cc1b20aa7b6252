package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Locus is a genomic position known to the catalog on a specific build.
type Locus struct {
	Gene  Gene
	Chrom string
	Pos   int64
	Build Build
}

// Catalog is the sealed, read-only allele-definition catalog. It is safe for
// concurrent use without synchronization.
type Catalog struct {
	entries []*Entry
	byID    map[string]*Entry
	byCoord map[Build]map[string]*Entry
}

// Builder accumulates entries before sealing them into an immutable Catalog.
type Builder struct {
	entries []*Entry
}

// NewBuilder creates an empty catalog builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an entry to the builder.
func (b *Builder) Add(e *Entry) {
	b.entries = append(b.entries, e)
}

// Len returns the number of entries accumulated so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// Build seals the accumulated entries into a Catalog, constructing the
// identifier and per-build coordinate indices.
func (b *Builder) Build() (*Catalog, error) {
	c := &Catalog{
		entries: b.entries,
		byID:    make(map[string]*Entry, len(b.entries)),
		byCoord: map[Build]map[string]*Entry{
			GRCh37: make(map[string]*Entry),
			GRCh38: make(map[string]*Entry),
		},
	}

	for _, e := range b.entries {
		if e.RSID == "" {
			return nil, fmt.Errorf("catalog entry for %s %s has no identifier", e.Gene, e.StarAllele)
		}
		id := strings.ToLower(e.RSID)
		if prev, ok := c.byID[id]; ok {
			return nil, fmt.Errorf("duplicate catalog identifier %s (%s %s and %s %s)",
				e.RSID, prev.Gene, prev.StarAllele, e.Gene, e.StarAllele)
		}
		c.byID[id] = e

		for _, build := range Builds() {
			// Index both chromosome spellings so lookups need no
			// normalization pass of their own.
			for _, key := range coordKeys(e.Chrom, e.Pos(build)) {
				c.byCoord[build][key] = e
			}
		}
	}

	return c, nil
}

// coordKeys returns the composite coordinate keys for a position, with and
// without the "chr" prefix.
func coordKeys(chrom string, pos int64) []string {
	bare := strings.TrimPrefix(strings.ToLower(chrom), "chr")
	return []string{
		fmt.Sprintf("%s:%d", bare, pos),
		fmt.Sprintf("chr%s:%d", bare, pos),
	}
}

// ByID returns the entry with the given identifier (case-insensitive),
// or nil if unknown.
func (c *Catalog) ByID(id string) *Entry {
	return c.byID[strings.ToLower(id)]
}

// ByCoordinate returns the entry at chrom:pos on the given build, or nil.
// The chromosome may carry a "chr" prefix in any case.
func (c *Catalog) ByCoordinate(build Build, chrom string, pos int64) *Entry {
	idx, ok := c.byCoord[build]
	if !ok {
		return nil
	}
	return idx[fmt.Sprintf("%s:%d", strings.ToLower(chrom), pos)]
}

// Entries returns all entries for a gene in star-allele order.
func (c *Catalog) Entries(gene Gene) []*Entry {
	var result []*Entry
	for _, e := range c.entries {
		if e.Gene == gene {
			result = append(result, e)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StarAllele < result[j].StarAllele
	})
	return result
}

// ActivityDomain returns the sorted set of distinct per-allele activity
// values defined for a gene, always including the wild-type value 1.0.
func (c *Catalog) ActivityDomain(gene Gene) []float64 {
	seen := map[float64]bool{1.0: true}
	for _, e := range c.entries {
		if e.Gene == gene {
			seen[e.Activity] = true
		}
	}
	values := make([]float64, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Float64s(values)
	return values
}

// Loci returns every (gene, chrom, pos, build) position the catalog knows
// about. Used to decide whether a gene was covered by sequencing.
func (c *Catalog) Loci() []Locus {
	loci := make([]Locus, 0, 2*len(c.entries))
	for _, e := range c.entries {
		for _, build := range Builds() {
			loci = append(loci, Locus{Gene: e.Gene, Chrom: e.Chrom, Pos: e.Pos(build), Build: build})
		}
	}
	return loci
}

// Size returns the total number of entries.
func (c *Catalog) Size() int {
	return len(c.entries)
}
