package diplotype

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgxguard/pgxguard/internal/catalog"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		gene  catalog.Gene
		score float64
		want  Phenotype
	}{
		{catalog.CYP2D6, 0, PoorMetabolizer},
		{catalog.CYP2D6, 0.25, IntermediateMetabolizer},
		{catalog.CYP2D6, 1.0, IntermediateMetabolizer},
		{catalog.CYP2D6, 1.25, NormalMetabolizer},
		{catalog.CYP2D6, 2.0, NormalMetabolizer},
		{catalog.CYP2D6, 2.25, NormalMetabolizer},
		{catalog.CYP2D6, 2.5, UltrarapidMetabolizer},
		{catalog.CYP2D6, 3.0, UltrarapidMetabolizer},

		{catalog.CYP2C19, 0, PoorMetabolizer},
		{catalog.CYP2C19, 0.5, IntermediateMetabolizer},
		{catalog.CYP2C19, 1.0, IntermediateMetabolizer},
		{catalog.CYP2C19, 1.5, NormalMetabolizer},
		{catalog.CYP2C19, 2.0, NormalMetabolizer},
		{catalog.CYP2C19, 2.5, RapidMetabolizer},
		{catalog.CYP2C19, 3.5, RapidMetabolizer},

		{catalog.CYP2C9, 0, PoorMetabolizer},
		{catalog.CYP2C9, 0.5, PoorMetabolizer},
		{catalog.CYP2C9, 1.0, IntermediateMetabolizer},
		{catalog.CYP2C9, 1.5, IntermediateMetabolizer},
		{catalog.CYP2C9, 2.0, NormalMetabolizer},
		// No rapid category; anything above the normal band stays
		// Intermediate by the fallthrough rule.
		{catalog.CYP2C9, 2.5, IntermediateMetabolizer},

		{catalog.SLCO1B1, 0, PoorMetabolizer},
		{catalog.SLCO1B1, 1.0, IntermediateMetabolizer},
		{catalog.SLCO1B1, 1.5, NormalMetabolizer},
		{catalog.SLCO1B1, 2.0, NormalMetabolizer},

		{catalog.TPMT, 0, PoorMetabolizer},
		{catalog.TPMT, 1.0, IntermediateMetabolizer},
		{catalog.TPMT, 2.0, NormalMetabolizer},

		{catalog.DPYD, 0, PoorMetabolizer},
		{catalog.DPYD, 0.5, PoorMetabolizer},
		{catalog.DPYD, 1.0, IntermediateMetabolizer},
		{catalog.DPYD, 1.5, IntermediateMetabolizer},
		{catalog.DPYD, 2.0, NormalMetabolizer},

		// Gap between bands resolves to Intermediate, never Normal.
		{catalog.CYP2D6, 1.1, IntermediateMetabolizer},
		{catalog.CYP2C19, 1.25, IntermediateMetabolizer},
		{catalog.CYP2C9, 0.75, IntermediateMetabolizer},
	}

	for _, tt := range tests {
		t.Run(string(tt.gene), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.gene, tt.score),
				"gene=%s score=%.2f", tt.gene, tt.score)
		})
	}
}

func TestClassify_UnknownGene(t *testing.T) {
	assert.Equal(t, Indeterminate, Classify(catalog.Gene("HLA-B"), 2.0))
}
