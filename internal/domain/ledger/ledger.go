// Package ledger holds the paper stock running-balance logic: the ordering of
// entries, the base-balance rule and the forward-only recomputation pass that
// keeps every entry's Remaining consistent after an insert, edit or delete.
//
// Invariant over the entries E1..En of one paper, sorted by (date, createdAt):
//
//	E1.remaining = clamp0(originalStock + E1.delta)
//	Ei.remaining = clamp0(E(i-1).remaining + Ei.delta)   for i > 1
//
// where delta = addedStock - issuedPaper - wastage and clamp0 floors at zero.
// A floored row is marked Clamped so the overdrawn balance stays observable.
package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/pkg/bsdate"
)

// Sort orders entries by (date ascending, createdAt ascending). CreatedAt is
// the tie-break for same-date entries. The sort is stable so equal keys keep
// their relative order.
func Sort(entries []*entity.StockEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := bsdate.Compare(entries[i].Date, entries[j].Date); c != 0 {
			return c < 0
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
}

// IndexOf returns the position of the entry with the given id in entries, or
// -1 when absent.
func IndexOf(entries []*entity.StockEntry, id string) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// BaseBalance returns the balance in effect just before position idx: the
// preceding entry's Remaining, or the paper's original stock for the first
// position.
func BaseBalance(originalStock decimal.Decimal, entries []*entity.StockEntry, idx int) decimal.Decimal {
	if idx <= 0 {
		return originalStock
	}
	return entries[idx-1].Remaining
}

// RecomputeFrom restores the invariant for entries[from:] in a single forward
// pass, seeding from BaseBalance at position from. Entries before from are
// never touched. It returns the entries whose Remaining or Clamped actually
// changed, so running it over an already-consistent sequence returns nothing.
func RecomputeFrom(originalStock decimal.Decimal, entries []*entity.StockEntry, from int) []*entity.StockEntry {
	if from < 0 {
		from = 0
	}
	var changed []*entity.StockEntry
	balance := BaseBalance(originalStock, entries, from)
	for i := from; i < len(entries); i++ {
		e := entries[i]
		next := balance.Add(e.Delta())
		clamped := next.IsNegative()
		if clamped {
			next = decimal.Zero
		}
		if !e.Remaining.Equal(next) || e.Clamped != clamped {
			e.Remaining = next
			e.Clamped = clamped
			changed = append(changed, e)
		}
		balance = next
	}
	return changed
}

// ValidateEntry checks the field constraints of a stock entry: a valid BS
// date, non-negative quantities, and the issue/addition exclusivity rule.
func ValidateEntry(e *entity.StockEntry) error {
	if !bsdate.Valid(e.Date) {
		return domain.ErrInvalidInput
	}
	if e.IssuedPaper.IsNegative() || e.Wastage.IsNegative() || e.AddedStock.IsNegative() {
		return domain.ErrInvalidInput
	}
	switch e.EntryType {
	case entity.EntryTypeIssue:
		if e.AddedStock.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.EntryTypeAddition:
		if e.IssuedPaper.IsPositive() || e.Wastage.IsPositive() {
			return domain.ErrInvalidInput
		}
		if !e.AddedStock.IsPositive() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
