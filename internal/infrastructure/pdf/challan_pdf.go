package pdf

import (
	"context"
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sajiloprint/press-api/internal/domain/entity"
)

// GenerateChallanPDF renders a delivery note. The footer carries a QR of the
// challan number and date for verification at the client's gate.
func (g *MarotoGenerator) GenerateChallanPDF(
	ctx context.Context,
	settings *entity.Settings,
	challan *entity.Challan,
) ([]byte, error) {
	m := newDocument("Delivery Challan "+challan.ChallanNo, settings)

	m.AddRows(headerRow(settings, "DELIVERY CHALLAN", challan.ChallanNo, challan.Date))
	m.AddRows(pressContactRow(settings))
	m.AddRows(dividerRow(0.5))
	m.AddRows(challanSubjectRow(challan))
	m.AddRows(dividerRow(0.3))

	m.AddRows(challanTableHeaderRow())
	for i := range challan.Items {
		m.AddRows(challanItemRow(i+1, &challan.Items[i]))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range challanFooterRows(challan) {
		m.AddRows(r)
	}

	return render(ctx, m, "challan")
}

// challanSubjectRow: consignee and the job being delivered.
func challanSubjectRow(ch *entity.Challan) core.Row {
	job := "—"
	if ch.JobNo != "" {
		job = ch.JobNo + "  " + ch.JobName
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New("DELIVERED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(ch.ClientName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
		),
		col.New(5).Add(
			text.New("JOB", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(job, props.Text{
				Size: 9, Align: align.Right, Top: 6,
			}),
		),
	)
}

func challanTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("S.N.", 1, align.Center),
		h("Description", 6, align.Left),
		h("Qty", 2, align.Right),
		h("Unit", 1, align.Left),
		h("Remarks", 2, align.Left),
	)
}

func challanItemRow(sn int, it *entity.ChallanItem) core.Row {
	return row.New(7).Add(
		col.New(1).Add(text.New(strconv.Itoa(sn), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(6).Add(text.New(it.Description, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(it.Quantity.String(), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(1).Add(text.New(it.Unit, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(2).Add(text.New(it.Remarks, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
	)
}

// challanFooterRows: QR + signature lines.
func challanFooterRows(ch *entity.Challan) []core.Row {
	qrData := fmt.Sprintf("CHALLAN|%s|%s|%s", ch.ChallanNo, ch.Date, ch.ClientName)

	return []core.Row{
		row.New(40).Add(
			col.New(3).Add(code.NewQr(qrData, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(4).Add(
				text.New("Received in good condition by:", props.Text{
					Size: 8, Top: 24, Color: colorGray,
				}),
				text.New("_______________________", props.Text{
					Size: 9, Top: 34,
				}),
			),
			col.New(1),
			col.New(4).Add(
				text.New("For "+nonEmpty(ch.ClientName, "client")+":", props.Text{
					Size: 8, Top: 24, Color: colorGray,
				}),
				text.New("_______________________", props.Text{
					Size: 9, Top: 34,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Goods listed above were dispatched against the referenced job. "+
					"Keep this challan for verification against the invoice.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
