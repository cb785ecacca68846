package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/ledger"
)

var seq int

// entry builds a test entry; created-at order follows call order so the
// (date, createdAt) tie-break is deterministic.
func entry(id, date string, issued, wastage, added int64) *entity.StockEntry {
	seq++
	typ := entity.EntryTypeIssue
	if added > 0 {
		typ = entity.EntryTypeAddition
	}
	return &entity.StockEntry{
		ID:          id,
		Date:        date,
		EntryType:   typ,
		IssuedPaper: decimal.NewFromInt(issued),
		Wastage:     decimal.NewFromInt(wastage),
		AddedStock:  decimal.NewFromInt(added),
		CreatedAt:   time.Unix(int64(seq), 0),
	}
}

func remaining(t *testing.T, e *entity.StockEntry) int64 {
	t.Helper()
	return e.Remaining.IntPart()
}

func TestRecompute_IssueThenAddition(t *testing.T) {
	original := decimal.NewFromInt(1000)
	a := entry("a", "2081-01-01", 100, 10, 0)
	b := entry("b", "2081-01-05", 0, 0, 200)
	entries := []*entity.StockEntry{a, b}

	ledger.Sort(entries)
	changed := ledger.RecomputeFrom(original, entries, 0)

	require.Len(t, changed, 2)
	assert.EqualValues(t, 890, remaining(t, a))
	assert.EqualValues(t, 1090, remaining(t, b))
	assert.False(t, a.Clamped)
	assert.False(t, b.Clamped)
}

func TestRecompute_EditCascadesForward(t *testing.T) {
	original := decimal.NewFromInt(1000)
	a := entry("a", "2081-01-01", 100, 10, 0)
	b := entry("b", "2081-01-05", 0, 0, 200)
	entries := []*entity.StockEntry{a, b}
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, 0)

	// Edit A: issued 100 -> 50. Cascade runs from A's position.
	a.IssuedPaper = decimal.NewFromInt(50)
	changed := ledger.RecomputeFrom(original, entries, ledger.IndexOf(entries, "a"))

	require.Len(t, changed, 2)
	assert.EqualValues(t, 940, remaining(t, a))
	assert.EqualValues(t, 1140, remaining(t, b))
}

func TestRecompute_BackdatedInsertRecomputesSuffix(t *testing.T) {
	original := decimal.NewFromInt(1000)
	a := entry("a", "2081-01-01", 50, 10, 0)
	b := entry("b", "2081-01-05", 0, 0, 200)
	entries := []*entity.StockEntry{a, b}
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, 0)

	// C dates between A and B: cascade must rewrite C and B, not just C.
	c := entry("c", "2081-01-03", 40, 0, 0)
	entries = append(entries, c)
	ledger.Sort(entries)
	require.Equal(t, []string{"a", "c", "b"}, ids(entries))

	ledger.RecomputeFrom(original, entries, ledger.IndexOf(entries, "c"))

	assert.EqualValues(t, 940, remaining(t, a))
	assert.EqualValues(t, 900, remaining(t, c))
	assert.EqualValues(t, 1100, remaining(t, b))
}

func TestRecompute_DeleteReseedsFromPredecessor(t *testing.T) {
	original := decimal.NewFromInt(1000)
	a := entry("a", "2081-01-01", 50, 10, 0)
	c := entry("c", "2081-01-03", 40, 0, 0)
	b := entry("b", "2081-01-05", 0, 0, 200)
	entries := []*entity.StockEntry{a, c, b}
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, 0)

	// Delete C; the suffix reseeds from A's remaining.
	pos := ledger.IndexOf(entries, "c")
	entries = append(entries[:pos], entries[pos+1:]...)
	ledger.RecomputeFrom(original, entries, pos)

	assert.EqualValues(t, 940, remaining(t, a))
	assert.EqualValues(t, 1140, remaining(t, b))
}

func TestRecompute_DeleteFirstUsesOriginalStock(t *testing.T) {
	original := decimal.NewFromInt(500)
	a := entry("a", "2081-01-01", 100, 0, 0)
	b := entry("b", "2081-01-02", 50, 0, 0)
	entries := []*entity.StockEntry{a, b}
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, 0)

	entries = entries[1:]
	ledger.RecomputeFrom(original, entries, 0)

	assert.EqualValues(t, 450, remaining(t, b))
}

func TestRecompute_OverdrawClampsToZero(t *testing.T) {
	original := decimal.NewFromInt(100)
	a := entry("a", "2081-01-01", 2000, 0, 0)
	entries := []*entity.StockEntry{a}
	ledger.RecomputeFrom(original, entries, 0)

	assert.True(t, a.Remaining.IsZero())
	assert.True(t, a.Clamped)

	// A later addition recovers from the floored balance, not from -1900.
	b := entry("b", "2081-01-02", 0, 0, 300)
	entries = append(entries, b)
	ledger.RecomputeFrom(original, entries, 1)
	assert.EqualValues(t, 300, remaining(t, b))
	assert.False(t, b.Clamped)
}

func TestRecompute_Idempotent(t *testing.T) {
	original := decimal.NewFromInt(1000)
	entries := []*entity.StockEntry{
		entry("a", "2081-01-01", 100, 10, 0),
		entry("b", "2081-01-03", 40, 0, 0),
		entry("c", "2081-01-05", 0, 0, 200),
	}
	ledger.Sort(entries)
	changed := ledger.RecomputeFrom(original, entries, 0)
	require.NotEmpty(t, changed)

	// Second pass over a consistent sequence changes nothing.
	changed = ledger.RecomputeFrom(original, entries, 0)
	assert.Empty(t, changed)
}

func TestRecompute_DeleteThenReinsertRoundTrips(t *testing.T) {
	original := decimal.NewFromInt(1000)
	a := entry("a", "2081-01-01", 100, 10, 0)
	c := entry("c", "2081-01-03", 40, 0, 0)
	b := entry("b", "2081-01-05", 0, 0, 200)
	entries := []*entity.StockEntry{a, c, b}
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, 0)
	want := []int64{remaining(t, a), remaining(t, c), remaining(t, b)}

	pos := ledger.IndexOf(entries, "c")
	entries = append(entries[:pos], entries[pos+1:]...)
	ledger.RecomputeFrom(original, entries, pos)

	c2 := entry("c2", "2081-01-03", 40, 0, 0)
	entries = append(entries, c2)
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, ledger.IndexOf(entries, "c2"))

	got := []int64{remaining(t, entries[0]), remaining(t, entries[1]), remaining(t, entries[2])}
	assert.Equal(t, want, got)
}

func TestRecompute_PrefixUntouched(t *testing.T) {
	original := decimal.NewFromInt(1000)
	a := entry("a", "2081-01-01", 100, 0, 0)
	b := entry("b", "2081-01-02", 50, 0, 0)
	c := entry("c", "2081-01-03", 25, 0, 0)
	entries := []*entity.StockEntry{a, b, c}
	ledger.Sort(entries)
	ledger.RecomputeFrom(original, entries, 0)

	// Recompute from B over the already-consistent sequence: nothing changes
	// and A is never touched.
	changed := ledger.RecomputeFrom(original, entries, 1)
	assert.Empty(t, changed)
	assert.EqualValues(t, 900, remaining(t, a))

	// Overwrite A's remaining, then recompute from B: the suffix reseeds from
	// A's stored value and propagates forward, while A itself stays as set.
	a.Remaining = decimal.NewFromInt(7777)
	changed = ledger.RecomputeFrom(original, entries, 1)
	require.Len(t, changed, 2)
	assert.EqualValues(t, 7777, remaining(t, a))
	assert.EqualValues(t, 7727, remaining(t, b))
	assert.EqualValues(t, 7702, remaining(t, c))
}

func TestValidateEntry(t *testing.T) {
	cases := []struct {
		name  string
		entry *entity.StockEntry
		ok    bool
	}{
		{"valid issue", entry("", "2081-01-01", 10, 2, 0), true},
		{"valid addition", entry("", "2081-01-01", 0, 0, 50), true},
		{"bad date", entry("", "2081-13-01", 10, 0, 0), false},
		{"negative issued", &entity.StockEntry{
			Date: "2081-01-01", EntryType: entity.EntryTypeIssue,
			IssuedPaper: decimal.NewFromInt(-5),
		}, false},
		{"issue with added stock", &entity.StockEntry{
			Date: "2081-01-01", EntryType: entity.EntryTypeIssue,
			IssuedPaper: decimal.NewFromInt(5), AddedStock: decimal.NewFromInt(10),
		}, false},
		{"addition with issued paper", &entity.StockEntry{
			Date: "2081-01-01", EntryType: entity.EntryTypeAddition,
			AddedStock: decimal.NewFromInt(10), IssuedPaper: decimal.NewFromInt(5),
		}, false},
		{"addition with zero amount", &entity.StockEntry{
			Date: "2081-01-01", EntryType: entity.EntryTypeAddition,
		}, false},
		{"unknown type", &entity.StockEntry{
			Date: "2081-01-01", EntryType: "transfer",
		}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ledger.ValidateEntry(tc.entry)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			}
		})
	}
}

func ids(entries []*entity.StockEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
