package pdf

import (
	"context"
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sajiloprint/press-api/internal/domain/entity"
)

// GenerateQuotationPDF renders a quotation with its priced lines and the
// stored totals block.
func (g *MarotoGenerator) GenerateQuotationPDF(
	ctx context.Context,
	settings *entity.Settings,
	quotation *entity.Quotation,
) ([]byte, error) {
	m := newDocument("Quotation "+quotation.QuotationNo, settings)

	m.AddRows(headerRow(settings, "QUOTATION", quotation.QuotationNo, quotation.Date))
	m.AddRows(pressContactRow(settings))
	m.AddRows(dividerRow(0.5))
	m.AddRows(clientRow(quotation.ClientName))
	m.AddRows(dividerRow(0.3))

	m.AddRows(quotationTableHeaderRow())
	for i := range quotation.Items {
		m.AddRows(quotationItemRow(i+1, &quotation.Items[i]))
	}

	m.AddRows(dividerRow(0.3))
	m.AddRows(quotationTotalsRow(quotation))

	if quotation.Remarks != "" {
		m.AddRows(remarksRow(quotation.Remarks))
	}

	return render(ctx, m, "quotation")
}

// clientRow: the addressee block.
func clientRow(clientName string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLIENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(clientName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
	)
}

func quotationTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("S.N.", 1, align.Center),
		h("Particulars", 6, align.Left),
		h("Qty", 1, align.Right),
		h("Rate", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

func quotationItemRow(sn int, it *entity.QuotationItem) core.Row {
	return itemRow(sn, it.Particular, it.Quantity.String(), it.Rate.StringFixed(2), it.Amount.StringFixed(2))
}

func itemRow(sn int, particular, qty, rate, amount string) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(sn), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(6).Add(text.New(particular, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(1).Add(text.New(qty, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(rate, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(amount, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// quotationTotalsRow: subtotal, discount, VAT and grand total, right aligned.
func quotationTotalsRow(q *entity.Quotation) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	labels := col.New(3).Add(
		label("Subtotal:"),
		label("Discount:"),
		label("VAT ("+q.VATRate.String()+"%):"),
		text.New("GRAND TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		}),
	)
	values := col.New(3).Add(
		value(q.Subtotal.StringFixed(2)),
		value(q.Discount.StringFixed(2)),
		value(q.VATAmount.StringFixed(2)),
		text.New(q.GrandTotal.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		}),
	)

	return row.New(30).Add(col.New(3), labels, values, col.New(3))
}

func remarksRow(remarks string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Remarks: "+remarks, props.Text{Size: 8, Color: colorGray, Top: 3}),
	))
}
