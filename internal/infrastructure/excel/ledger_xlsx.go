// Package excel renders the stock ledger as an XLSX workbook with Excelize.
package excel

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/sajiloprint/press-api/internal/application/export"
	"github.com/sajiloprint/press-api/internal/domain/entity"
)

var _ export.LedgerSpreadsheetGenerator = (*LedgerExporter)(nil)

// LedgerExporter implements export.LedgerSpreadsheetGenerator.
type LedgerExporter struct{}

// NewLedgerExporter builds the exporter.
func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

const sheetName = "Stock Ledger"

// GenerateLedgerXLSX writes one sheet: a title block, a header row and one
// row per ledger entry in the given (date ascending) order, with a closing
// balance row at the bottom.
func (e *LedgerExporter) GenerateLedgerXLSX(
	_ context.Context,
	settings *entity.Settings,
	paper *entity.Paper,
	entries []*entity.StockEntry,
) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	clampedStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: "B91C1C"}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	// Title block.
	setCell(f, "A1", nonEmpty(settings.PressName, "Paper Stock Ledger"))
	setCell(f, "A2", paperTitle(paper))
	setCell(f, "A3", "Opening stock: "+paper.OriginalStock.String()+" "+paper.Unit)
	_ = f.SetCellStyle(sheetName, "A1", "A2", boldStyle)

	// Header row.
	headers := []string{"Date (BS)", "Type", "Job No", "Job Name", "Issued", "Wastage", "Added", "Remaining", "Clamped", "Remarks"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 5)
		setCell(f, cell, h)
	}
	first, _ := excelize.CoordinatesToCellName(1, 5)
	last, _ := excelize.CoordinatesToCellName(len(headers), 5)
	_ = f.SetCellStyle(sheetName, first, last, boldStyle)

	// One row per entry.
	rowN := 6
	for _, en := range entries {
		values := []any{
			en.Date, en.EntryType, en.JobNo, en.JobName,
			decimalCell(en.IssuedPaper.String()),
			decimalCell(en.Wastage.String()),
			decimalCell(en.AddedStock.String()),
			decimalCell(en.Remaining.String()),
			clampedLabel(en.Clamped),
			en.Remarks,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowN)
			setCell(f, cell, v)
		}
		if en.Clamped {
			cell, _ := excelize.CoordinatesToCellName(8, rowN)
			_ = f.SetCellStyle(sheetName, cell, cell, clampedStyle)
		}
		rowN++
	}

	// Closing balance.
	closing := paper.OriginalStock
	if len(entries) > 0 {
		closing = entries[len(entries)-1].Remaining
	}
	labelCell, _ := excelize.CoordinatesToCellName(7, rowN+1)
	valueCell, _ := excelize.CoordinatesToCellName(8, rowN+1)
	setCell(f, labelCell, "Closing balance")
	setCell(f, valueCell, decimalCell(closing.String()))
	_ = f.SetCellStyle(sheetName, labelCell, valueCell, boldStyle)

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "D", "D", 24)
	_ = f.SetColWidth(sheetName, "J", "J", 28)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, cell string, value any) {
	_ = f.SetCellValue(sheetName, cell, value)
}

// decimalCell converts a decimal string to float64 so Excel treats the column
// as numeric. Stock quantities stay well inside float precision.
func decimalCell(s string) any {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

func clampedLabel(clamped bool) string {
	if clamped {
		return "yes"
	}
	return ""
}

func paperTitle(paper *entity.Paper) string {
	label := paper.TypeLabel()
	if paper.Size != "" {
		label += " " + paper.Size
	}
	if paper.Weight != "" {
		label += " " + paper.Weight
	}
	return label
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
