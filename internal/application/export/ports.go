package export

import (
	"context"

	"github.com/sajiloprint/press-api/internal/domain/entity"
)

// LedgerPDFGenerator renders a paper's ledger as a PDF. Entries arrive in
// ledger order (date ascending); the generator is a pure reader of
// already-consistent state.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, settings *entity.Settings, paper *entity.Paper, entries []*entity.StockEntry) ([]byte, error)
}

// LedgerSpreadsheetGenerator renders a paper's ledger as an XLSX workbook.
type LedgerSpreadsheetGenerator interface {
	GenerateLedgerXLSX(ctx context.Context, settings *entity.Settings, paper *entity.Paper, entries []*entity.StockEntry) ([]byte, error)
}

// QuotationPDFGenerator renders a quotation as a PDF.
type QuotationPDFGenerator interface {
	GenerateQuotationPDF(ctx context.Context, settings *entity.Settings, quotation *entity.Quotation) ([]byte, error)
}

// ChallanPDFGenerator renders a delivery note as a PDF with a QR of its
// number for gate verification.
type ChallanPDFGenerator interface {
	GenerateChallanPDF(ctx context.Context, settings *entity.Settings, challan *entity.Challan) ([]byte, error)
}
