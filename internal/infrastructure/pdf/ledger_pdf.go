package pdf

import (
	"context"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/sajiloprint/press-api/internal/domain/entity"
)

// GenerateLedgerPDF renders the full stock ledger of one paper. Entries must
// arrive in ledger order (date ascending); rows are printed as received.
func (g *MarotoGenerator) GenerateLedgerPDF(
	ctx context.Context,
	settings *entity.Settings,
	paper *entity.Paper,
	entries []*entity.StockEntry,
) ([]byte, error) {
	m := newDocument("Paper Stock Ledger", settings)

	m.AddRows(headerRow(settings, "PAPER STOCK LEDGER", paperLabel(paper), todayOrDash(entries)))
	m.AddRows(pressContactRow(settings))
	m.AddRows(dividerRow(0.5))
	m.AddRows(ledgerSubjectRow(paper))
	m.AddRows(dividerRow(0.3))

	m.AddRows(ledgerTableHeaderRow())
	for _, e := range entries {
		m.AddRows(ledgerEntryRow(e))
	}

	m.AddRows(dividerRow(0.3))
	m.AddRows(ledgerClosingRow(paper, entries))

	return render(ctx, m, "stock ledger")
}

// todayOrDash: the header date slot shows the last entry's date.
func todayOrDash(entries []*entity.StockEntry) string {
	if len(entries) == 0 {
		return "—"
	}
	return entries[len(entries)-1].Date
}

// ledgerSubjectRow: paper identification and opening stock.
func ledgerSubjectRow(paper *entity.Paper) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("PAPER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(paperLabel(paper), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
		col.New(4).Add(
			text.New("Opening stock", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(paper.OriginalStock.String()+" "+paper.Unit, props.Text{
				Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

func ledgerTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Date (BS)", 2, align.Left),
		h("Job", 3, align.Left),
		h("Issued", 1, align.Right),
		h("Wastage", 1, align.Right),
		h("Added", 2, align.Right),
		h("Remaining", 2, align.Right),
		h("Remarks", 1, align.Left),
	)
}

func ledgerEntryRow(e *entity.StockEntry) core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}

	job := "—"
	if e.JobNo != "" {
		job = e.JobNo + " " + e.JobName
	} else if e.EntryType == entity.EntryTypeAddition {
		job = "(stock added)"
	}

	remaining := text.New(e.Remaining.String(), props.Text{
		Size: 8, Align: align.Right, Top: 1, Right: 1,
	})
	if e.Clamped {
		// Clamped balances print in red so overdraws stay visible on paper.
		remaining = text.New(e.Remaining.String()+" !", props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
			Style: fontstyle.Bold, Color: colorDanger,
		})
	}

	return row.New(7).Add(
		cell(e.Date, 2, align.Left),
		cell(job, 3, align.Left),
		cell(dashIfZero(e.IssuedPaper), 1, align.Right),
		cell(dashIfZero(e.Wastage), 1, align.Right),
		cell(dashIfZero(e.AddedStock), 2, align.Right),
		col.New(2).Add(remaining),
		cell(nonEmpty(e.Remarks, ""), 1, align.Left),
	)
}

// ledgerClosingRow: closing balance (last entry's running balance, or the
// opening stock when the ledger is empty).
func ledgerClosingRow(paper *entity.Paper, entries []*entity.StockEntry) core.Row {
	closing := paper.OriginalStock
	if len(entries) > 0 {
		closing = entries[len(entries)-1].Remaining
	}
	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New("CLOSING BALANCE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(2).Add(text.New(closing.String()+" "+paper.Unit, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

func dashIfZero(d decimal.Decimal) string {
	if d.IsZero() {
		return "—"
	}
	return d.String()
}
