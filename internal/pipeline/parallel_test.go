package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgxguard/pgxguard/internal/report"
	"github.com/pgxguard/pgxguard/internal/risk"
)

func TestParallelEvaluate_PreservesOrder(t *testing.T) {
	drugs := risk.Drugs()
	items := make(chan WorkItem, len(drugs))
	for i, d := range drugs {
		items <- WorkItem{Seq: i, Drug: d}
	}
	close(items)

	eval := func(ctx context.Context, d risk.Drug) (report.DrugResult, error) {
		return report.DrugResult{Risk: report.RiskBlock{Drug: string(d)}}, nil
	}

	var collected []string
	orderedCollect(parallelEvaluate(context.Background(), items, 4, eval), func(r WorkResult) {
		require.NoError(t, r.Err)
		collected = append(collected, r.Result.Risk.Drug)
	})

	require.Len(t, collected, len(drugs))
	for i, d := range drugs {
		assert.Equal(t, string(d), collected[i])
	}
}

func TestParallelEvaluate_ErrorsAreIsolated(t *testing.T) {
	items := make(chan WorkItem, 3)
	items <- WorkItem{Seq: 0, Drug: risk.Codeine}
	items <- WorkItem{Seq: 1, Drug: risk.Warfarin}
	items <- WorkItem{Seq: 2, Drug: risk.Tramadol}
	close(items)

	boom := errors.New("boom")
	eval := func(ctx context.Context, d risk.Drug) (report.DrugResult, error) {
		if d == risk.Warfarin {
			return report.DrugResult{}, boom
		}
		return report.DrugResult{Risk: report.RiskBlock{Drug: string(d)}}, nil
	}

	var ok, failed int
	orderedCollect(parallelEvaluate(context.Background(), items, 2, eval), func(r WorkResult) {
		if r.Err != nil {
			failed++
			assert.Equal(t, risk.Warfarin, r.Drug)
			return
		}
		ok++
	})

	assert.Equal(t, 2, ok)
	assert.Equal(t, 1, failed)
}

func TestParallelEvaluate_DefaultWorkerCount(t *testing.T) {
	items := make(chan WorkItem, 1)
	items <- WorkItem{Seq: 0, Drug: risk.Codeine}
	close(items)

	eval := func(ctx context.Context, d risk.Drug) (report.DrugResult, error) {
		return report.DrugResult{}, nil
	}

	n := 0
	orderedCollect(parallelEvaluate(context.Background(), items, 0, eval), func(r WorkResult) { n++ })
	assert.Equal(t, 1, n)
}
