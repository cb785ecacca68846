// Package pdf renders the press's printable documents (stock ledger,
// quotation, delivery challan) with Maroto v2.
//
// A4 page layout shared by all three:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Press name + PAN  │  Document n° + Date (BS)       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUBJECT: paper / client / job identification                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: document-specific columns                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totals or closing balance, QR on challans           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sajiloprint/press-api/internal/application/export"
	"github.com/sajiloprint/press-api/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 127, Green: 29, Blue: 29}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 185, Green: 28, Blue: 28}
)

var titleCaser = cases.Title(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ export.LedgerPDFGenerator = (*MarotoGenerator)(nil)
var _ export.QuotationPDFGenerator = (*MarotoGenerator)(nil)
var _ export.ChallanPDFGenerator = (*MarotoGenerator)(nil)

// MarotoGenerator renders the press documents using Maroto v2.
type MarotoGenerator struct{}

// NewMarotoGenerator builds the generator.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

func newDocument(title string, settings *entity.Settings) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(settings.PressName, "press-api"), true).
		Build()
	return maroto.New(cfg)
}

// headerRow: press name + PAN (left), document title + n° + BS date (right).
func headerRow(settings *entity.Settings, docTitle, docNo, date string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(settings.PressName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("PAN: "+nonEmpty(settings.PANNo, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(docTitle, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(docNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date (BS): "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// pressContactRow: address and phone under the header.
func pressContactRow(settings *entity.Settings) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Address: %s   |   Tel: %s",
				nonEmpty(settings.Address, "—"),
				nonEmpty(settings.Phone, "—"),
			), props.Text{Size: 8, Top: 1, Color: colorGray}),
		),
	)
}

func dividerRow(thickness float64) core.Row {
	return line.NewRow(1, props.Line{Color: colorPrimary, Thickness: thickness})
}

// render closes the document and returns its bytes.
func render(_ context.Context, m core.Maroto, what string) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate %s: %w", what, err)
	}
	return doc.GetBytes(), nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// paperLabel builds the display line for a paper, e.g.
// "Art Paper · 25x36 · 80gsm".
func paperLabel(paper *entity.Paper) string {
	label := titleCaser.String(paper.TypeLabel())
	if paper.Type != entity.PaperTypeOther {
		label += " Paper"
	}
	if paper.Size != "" {
		label += " · " + paper.Size
	}
	if paper.Weight != "" {
		label += " · " + paper.Weight
	}
	return label
}
