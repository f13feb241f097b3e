package cmdat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/cmdat/internal/block"
	"github.com/meigma/cmdat/internal/dattype"
	"github.com/meigma/cmdat/internal/source"
	"github.com/meigma/cmdat/internal/testutil"
)

func newNameTable(tb testing.TB, entries ...NameEntry) *NameTable {
	tb.Helper()
	src := source.FromBytes("names.dat", testutil.BuildNames(tb, entries))
	repo, err := block.Build(src, dattype.RecordLocation{Length: src.Size()}, NameLayout)
	require.NoError(tb, err)
	return NewNameTable(repo)
}

func TestNameTableResolve(t *testing.T) {
	t.Parallel()

	table := newNameTable(t,
		NameEntry{Name: "Alan", IDField: 5},
		NameEntry{Name: "Bob", IDField: 0},
		NameEntry{Name: "", IDField: 7},
		NameEntry{Name: "Carl", IDField: 9},
	)

	tests := []struct {
		name     string
		ref      int32
		want     string
		strategy Strategy
	}{
		{"negative", -1, "", StrategyNone},
		{"id beats position", 0, "Bob", StrategyID},
		{"id match", 9, "Carl", StrategyID},
		{"zero-based fallback", 3, "Carl", StrategyZeroBased},
		{"one-based fallback", 4, "Carl", StrategyOneBased},
		{"one-based skips empty zero-based", 2, "Bob", StrategyOneBased},
		{"empty name under id is ignored", 7, "", StrategyNone},
		{"out of range", 100, "", StrategyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, strategy := table.ResolveWith(tt.ref)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.strategy, strategy)
			assert.Equal(t, tt.want, table.Resolve(tt.ref))
		})
	}
}

func TestNameTableFirstNonEmptyIDWins(t *testing.T) {
	t.Parallel()

	table := newNameTable(t,
		NameEntry{Name: "", IDField: 3},
		NameEntry{Name: "First", IDField: 3},
		NameEntry{Name: "Second", IDField: 3},
	)
	got, strategy := table.ResolveWith(3)
	assert.Equal(t, "First", got)
	assert.Equal(t, StrategyID, strategy)
	assert.Equal(t, 3, table.Len())
}

func TestNilNameTable(t *testing.T) {
	t.Parallel()

	var table *NameTable
	assert.Equal(t, "", table.Resolve(1))
	assert.Equal(t, 0, table.Len())
}

func TestStrategyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "id", StrategyID.String())
	assert.Equal(t, "zero-based", StrategyZeroBased.String())
	assert.Equal(t, "one-based", StrategyOneBased.String())
	assert.Equal(t, "none", StrategyNone.String())
}
