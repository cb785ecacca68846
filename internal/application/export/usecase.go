package export

import (
	"context"
	"fmt"

	"github.com/sajiloprint/press-api/internal/domain"
	"github.com/sajiloprint/press-api/internal/domain/entity"
	"github.com/sajiloprint/press-api/internal/domain/repository"
)

// UseCase produces downloadable documents from already-consistent state:
// ledger PDF/XLSX per paper, quotation PDF, challan PDF. Exports never
// recompute anything.
type UseCase struct {
	paperRepo     repository.PaperRepository
	entryRepo     repository.StockEntryRepository
	quotationRepo repository.QuotationRepository
	challanRepo   repository.ChallanRepository
	settingsRepo  repository.SettingsRepository
	ledgerPDF     LedgerPDFGenerator
	ledgerXLSX    LedgerSpreadsheetGenerator
	quotationPDF  QuotationPDFGenerator
	challanPDF    ChallanPDFGenerator
}

// NewUseCase builds the exporter with its generators.
func NewUseCase(
	paperRepo repository.PaperRepository,
	entryRepo repository.StockEntryRepository,
	quotationRepo repository.QuotationRepository,
	challanRepo repository.ChallanRepository,
	settingsRepo repository.SettingsRepository,
	ledgerPDF LedgerPDFGenerator,
	ledgerXLSX LedgerSpreadsheetGenerator,
	quotationPDF QuotationPDFGenerator,
	challanPDF ChallanPDFGenerator,
) *UseCase {
	return &UseCase{
		paperRepo:     paperRepo,
		entryRepo:     entryRepo,
		quotationRepo: quotationRepo,
		challanRepo:   challanRepo,
		settingsRepo:  settingsRepo,
		ledgerPDF:     ledgerPDF,
		ledgerXLSX:    ledgerXLSX,
		quotationPDF:  quotationPDF,
		challanPDF:    challanPDF,
	}
}

// LedgerPDF renders the paper's full ledger as a PDF.
func (uc *UseCase) LedgerPDF(ctx context.Context, adminID, paperID string) ([]byte, string, error) {
	settings, paper, entries, err := uc.loadLedger(adminID, paperID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.ledgerPDF.GenerateLedgerPDF(ctx, settings, paper, entries)
	if err != nil {
		return nil, "", fmt.Errorf("export: ledger pdf: %w", err)
	}
	return pdf, fmt.Sprintf("paper-ledger-%s.pdf", paper.ID), nil
}

// LedgerXLSX renders the paper's full ledger as a spreadsheet.
func (uc *UseCase) LedgerXLSX(ctx context.Context, adminID, paperID string) ([]byte, string, error) {
	settings, paper, entries, err := uc.loadLedger(adminID, paperID)
	if err != nil {
		return nil, "", err
	}
	book, err := uc.ledgerXLSX.GenerateLedgerXLSX(ctx, settings, paper, entries)
	if err != nil {
		return nil, "", fmt.Errorf("export: ledger xlsx: %w", err)
	}
	return book, fmt.Sprintf("paper-ledger-%s.xlsx", paper.ID), nil
}

// QuotationPDF renders a quotation as a PDF.
func (uc *UseCase) QuotationPDF(ctx context.Context, adminID, quotationID string) ([]byte, string, error) {
	q, err := uc.quotationRepo.GetByID(adminID, quotationID)
	if err != nil {
		return nil, "", err
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}
	settings, err := uc.loadSettings(adminID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.quotationPDF.GenerateQuotationPDF(ctx, settings, q)
	if err != nil {
		return nil, "", fmt.Errorf("export: quotation pdf: %w", err)
	}
	return pdf, fmt.Sprintf("%s.pdf", q.QuotationNo), nil
}

// ChallanPDF renders a delivery note as a PDF.
func (uc *UseCase) ChallanPDF(ctx context.Context, adminID, challanID string) ([]byte, string, error) {
	ch, err := uc.challanRepo.GetByID(adminID, challanID)
	if err != nil {
		return nil, "", err
	}
	if ch == nil {
		return nil, "", domain.ErrNotFound
	}
	settings, err := uc.loadSettings(adminID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.challanPDF.GenerateChallanPDF(ctx, settings, ch)
	if err != nil {
		return nil, "", fmt.Errorf("export: challan pdf: %w", err)
	}
	return pdf, fmt.Sprintf("%s.pdf", ch.ChallanNo), nil
}

func (uc *UseCase) loadLedger(adminID, paperID string) (*entity.Settings, *entity.Paper, []*entity.StockEntry, error) {
	paper, err := uc.paperRepo.GetByID(adminID, paperID)
	if err != nil {
		return nil, nil, nil, err
	}
	if paper == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	entries, err := uc.entryRepo.ListByPaperAsc(adminID, paperID)
	if err != nil {
		return nil, nil, nil, err
	}
	settings, err := uc.loadSettings(adminID)
	if err != nil {
		return nil, nil, nil, err
	}
	return settings, paper, entries, nil
}

func (uc *UseCase) loadSettings(adminID string) (*entity.Settings, error) {
	settings, err := uc.settingsRepo.Get(adminID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(adminID)
	}
	return settings, nil
}
