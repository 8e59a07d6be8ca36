package sizing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_ThresholdsNonDecreasing(t *testing.T) {
	for name, table := range map[string]Table{"breaker": BreakerTable, "wire": WireTable} {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, table)
			for i := 1; i < len(table); i++ {
				assert.GreaterOrEqual(t, table[i].Threshold, table[i-1].Threshold,
					"entry %d (%v) below entry %d (%v)", i, table[i], i-1, table[i-1])
			}
		})
	}
}

func TestLookup_ExactThresholdTakesOwnLabel(t *testing.T) {
	for name, table := range map[string]Table{"breaker": BreakerTable, "wire": WireTable} {
		t.Run(name, func(t *testing.T) {
			for i, e := range table {
				t.Run(fmt.Sprintf("entry_%d_%g", i, e.Threshold), func(t *testing.T) {
					require.Equal(t, e.Label, table.Lookup(e.Threshold))
				})
			}
		})
	}
}

func TestLookup_JustBelowThresholdTakesPreviousLabel(t *testing.T) {
	const eps = 1e-6
	for name, table := range map[string]Table{"breaker": BreakerTable, "wire": WireTable} {
		t.Run(name, func(t *testing.T) {
			for i := 1; i < len(table); i++ {
				// skip duplicate thresholds; value-eps would land two back
				if table[i].Threshold == table[i-1].Threshold {
					continue
				}
				got := table.Lookup(table[i].Threshold - eps)
				assert.Equal(t, table[i-1].Label, got, "threshold %g", table[i].Threshold)
			}
		})
	}
}

func TestLookup_BelowFirstThresholdReturnsFirstLabel(t *testing.T) {
	assert.Equal(t, "Check", BreakerTable.Lookup(-5))
	assert.Equal(t, "#10", WireTable.Lookup(-5))
}

func TestLookup_LiteralCases(t *testing.T) {
	assert.Equal(t, "70", BreakerTable.Lookup(64))
	assert.Equal(t, "#2", WireTable.Lookup(121))

	// between thresholds: take the lower entry's label
	assert.Equal(t, "70", BreakerTable.Lookup(66))
	assert.Equal(t, "#3/0 2x", WireTable.Lookup(450))

	// fudge-factor thresholds are literal, not nominal
	assert.Equal(t, "Check", BreakerTable.Lookup(1.0))
	assert.Equal(t, "5", BreakerTable.Lookup(1.004))
	assert.Equal(t, "#3/0 2x", WireTable.Lookup(499.19))
	assert.Equal(t, "#4/0 2x", WireTable.Lookup(499.2))
}

func TestLookup_EmptyTablePanics(t *testing.T) {
	require.PanicsWithError(t, ErrEmptyTable.Error(), func() {
		Table{}.Lookup(10)
	})
}
